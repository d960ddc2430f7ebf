package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vvka-141/dmart/internal/logging"
	"github.com/vvka-141/dmart/internal/report"
	"github.com/vvka-141/dmart/internal/store"
	"github.com/vvka-141/dmart/pkg/dmart"
)

var reportCmd = &cobra.Command{
	Use:   "report [project_path]",
	Short: "Materialize the report query into the store",
	Long: `Report snapshots an analyst-supplied SELECT statement into the store.

The report command:
1. Reads the SQL query from the project's report.sql (trailing semicolon
   tolerated)
2. Drops the previous report_output table if present
3. Creates report_output as the query's result set
4. Prints the number of rows in the new table

The two SQL steps are separate units of work: a failed refresh (malformed
SQL, nonexistent source table) leaves report_output absent rather than stale.
The query file is trusted input and is embedded verbatim, so do not point
this command at files you do not control.

A missing store file or missing query file is reported and exits successfully
with no action taken.

Arguments:
  project_path    Directory containing report.sql and optional dmart.yaml
                  (default: current directory)

Examples:
  # Materialize ./report.sql into ./ecom.db
  dmart report

  # Use an explicit query file and store
  dmart report ./sales-data --query monthly.sql --store /tmp/mart.db`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReport,
}

type reportFlagValues struct {
	store string
	query string
}

var reportFlags reportFlagValues

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().StringVar(&reportFlags.store, "store", "",
		"Path of the SQLite store file (default: 'store' from dmart.yaml, or ecom.db)\n"+
			"Precedence: --store > $DMART_STORE > dmart.yaml > ecom.db")
	reportCmd.Flags().StringVar(&reportFlags.query, "query", "",
		"Path of the report query file (default: 'report' from dmart.yaml, or report.sql)\n"+
			"Precedence: --query > $DMART_REPORT_SQL > dmart.yaml > report.sql")
}

func runReport(cmd *cobra.Command, args []string) error {
	projectPath := projectPathFromArgs(args)
	verbose := getVerboseFlag(cmd)
	logger := logging.NewConsoleLogger(verbose)

	resolved, err := resolveProjectConfig(projectPath, logger)
	if err != nil {
		return err
	}
	if reportFlags.store != "" {
		resolved.StorePath = reportFlags.store
	}
	if reportFlags.query != "" {
		resolved.QueryPath = reportFlags.query
	}

	cfg := &dmart.ReportConfig{
		StorePath: resolved.StorePath,
		QueryPath: resolved.QueryPath,
		Verbose:   verbose,
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Unlike the loader, report never creates the store: a query against a
	// mart that was never loaded is a no-op, not an error.
	if _, err := os.Stat(cfg.StorePath); err != nil {
		if os.IsNotExist(err) {
			logger.Info("Database not found: %s", cfg.StorePath)
			return nil
		}
		return err
	}

	query, err := report.ReadQuery(cfg.QueryPath)
	if err != nil {
		if errors.Is(err, dmart.ErrQueryFileMissing) {
			logger.Info("SQL file not found: %s", cfg.QueryPath)
			return nil
		}
		return err
	}

	db, err := store.Open(cfg.StorePath)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := store.Close(db); cerr != nil {
			logger.Error("closing store: %v", cerr)
		}
	}()

	count, err := report.Materialize(db, query, logger)
	if err != nil {
		return err
	}

	fmt.Printf("Inserted %d rows into %s\n", count, dmart.ReportTableName)
	return nil
}
