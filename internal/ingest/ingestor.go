package ingest

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/vvka-141/dmart/internal/checksum"
	"github.com/vvka-141/dmart/pkg/dmart"
)

// createBatchSize bounds the number of rows per INSERT so large files stay
// under SQLite's bound-parameter limit. All batches for one entity still
// commit inside a single transaction.
const createBatchSize = 200

// Result reports the outcome of ingesting one entity.
type Result struct {
	// Entity is the ingested entity
	Entity Entity

	// Inserted is the number of newly inserted rows, computed as the
	// row-count delta across the operation. This is only correct under the
	// single-writer, no-concurrent-mutation batch model this tool is built
	// for; it is a documented constraint, not a bug.
	Inserted int64

	// Skipped is true when the source file was absent and the entity was
	// skipped with a warning.
	Skipped bool

	// Digest is the SHA-256 of the source file's raw content, empty when
	// the entity was skipped. Recorded for load-run auditing.
	Digest string
}

// Ingestor inserts CSV rows into the store entity by entity.
//
// Not safe for concurrent use: the inserted-count bookkeeping assumes no
// other writer touches the store during a run.
type Ingestor struct {
	db     *gorm.DB
	logger dmart.Logger
	calc   checksum.SHA256
}

// New creates an Ingestor.
//
// Panics if any dependency is nil. This is intentional fail-fast behavior
// to prevent cryptic nil pointer dereferences later. Panics indicate
// programmer error (incorrect dependency injection setup).
func New(db *gorm.DB, logger dmart.Logger) *Ingestor {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Ingestor{db: db, logger: logger, calc: checksum.New()}
}

// Run ingests every entity in foreign-key dependency order, reading each
// entity's rows from files[entity]. It returns one Result per entity, in
// ingestion order. The first failure aborts the remaining entities; rows
// already committed for earlier entities stay committed.
func (ing *Ingestor) Run(files map[Entity]string) ([]Result, error) {
	results := make([]Result, 0, len(IngestOrder))
	for _, e := range IngestOrder {
		res, err := ing.IngestFile(e, files[e])
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}

// IngestFile inserts the rows of one CSV file into the entity's table.
//
// Rows whose id already exists are silently skipped (INSERT OR IGNORE).
// All insertions for the entity happen in a single transaction: a malformed
// numeric field or a foreign-key violation fails the whole batch and leaves
// the table untouched. A missing source file is a non-fatal warning with an
// inserted count of zero.
func (ing *Ingestor) IngestFile(e Entity, path string) (Result, error) {
	desc := e.descriptor()

	var before int64
	if err := ing.db.Model(desc.model).Count(&before).Error; err != nil {
		return Result{}, fmt.Errorf("%s: count before insert: %w", desc.name, err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			ing.logger.Warn("%s not found, skipping %s.", path, desc.name)
			return Result{Entity: e, Skipped: true}, nil
		}
		return Result{}, fmt.Errorf("%s: %w", desc.name, err)
	}
	digest := ing.calc.CalculateRaw(content)

	rows, err := parseRecords(path, content)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", desc.name, err)
	}
	ing.logger.Verbose("%s: read %d rows from %s (sha256 %.12s)", desc.name, len(rows), path, digest)

	batch, n, err := desc.decode(rows)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", desc.name, err)
	}

	if n > 0 {
		err = ing.db.Transaction(func(tx *gorm.DB) error {
			return tx.Clauses(clause.OnConflict{DoNothing: true}).
				CreateInBatches(batch, createBatchSize).Error
		})
		if err != nil {
			return Result{}, classifyStoreError(desc.name, err)
		}
	}

	var after int64
	if err := ing.db.Model(desc.model).Count(&after).Error; err != nil {
		return Result{}, fmt.Errorf("%s: count after insert: %w", desc.name, err)
	}

	return Result{Entity: e, Inserted: after - before, Digest: digest}, nil
}

// classifyStoreError maps storage-layer failures onto the package's sentinel
// errors so callers can distinguish constraint violations with errors.Is.
func classifyStoreError(entity string, err error) error {
	if errors.Is(err, gorm.ErrForeignKeyViolated) ||
		strings.Contains(err.Error(), "constraint failed") {
		return fmt.Errorf("%s: %w: %v", entity, dmart.ErrConstraint, err)
	}
	return fmt.Errorf("%s: insert: %w", entity, err)
}
