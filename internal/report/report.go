// Package report materializes the result set of an analyst-supplied SELECT
// statement into the reserved report_output table, fully replacing any prior
// snapshot.
//
// The query file is trusted input: its text is embedded verbatim into a
// CREATE TABLE ... AS statement with no parameterization or sanitization.
package report

import (
	"fmt"
	"os"
	"strings"

	"gorm.io/gorm"

	"github.com/vvka-141/dmart/pkg/dmart"
)

// ReadQuery reads the report SELECT statement from path, discarding
// surrounding whitespace and a trailing statement terminator so the text can
// be embedded into a CREATE TABLE ... AS statement.
//
// Returns dmart.ErrQueryFileMissing when the file does not exist; callers
// treat that as a recoverable early exit.
func ReadQuery(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%s: %w", path, dmart.ErrQueryFileMissing)
		}
		return "", fmt.Errorf("read query file %s: %w", path, err)
	}

	query := strings.TrimSpace(string(data))
	query = strings.TrimSuffix(query, ";")
	query = strings.TrimSpace(query)
	if query == "" {
		return "", fmt.Errorf("query file %s is empty: %w", path, dmart.ErrExecutionFailed)
	}
	return query, nil
}

// Materialize replaces the report_output table with the result set of query
// and returns the new table's row count.
//
// Two strictly ordered steps, each its own unit of work: drop the previous
// snapshot if present, then create the table from the query. There is no
// retry and no atomicity across the steps: if the create fails (malformed
// SQL, nonexistent source table) the destination is left absent. A stale
// snapshot must never survive a failed refresh.
func Materialize(db *gorm.DB, query string, logger dmart.Logger) (int64, error) {
	logger.Verbose("dropping %s if present", dmart.ReportTableName)
	if err := db.Exec("DROP TABLE IF EXISTS " + dmart.ReportTableName).Error; err != nil {
		return 0, fmt.Errorf("drop %s: %w", dmart.ReportTableName, err)
	}

	logger.Verbose("materializing query into %s", dmart.ReportTableName)
	create := fmt.Sprintf("CREATE TABLE %s AS %s", dmart.ReportTableName, query)
	if err := db.Exec(create).Error; err != nil {
		return 0, fmt.Errorf("materialize %s: %w: %v", dmart.ReportTableName, dmart.ErrExecutionFailed, err)
	}

	var count int64
	if err := db.Table(dmart.ReportTableName).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count %s: %w", dmart.ReportTableName, err)
	}
	return count, nil
}
