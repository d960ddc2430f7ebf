// Package store owns the on-disk SQLite file shared by the load and report
// commands. It opens connections with foreign-key enforcement enabled and
// performs the idempotent schema initialization for the five base tables.
//
// The store is strictly single-writer: both commands are synchronous batch
// programs and are never run concurrently against the same file. Simultaneous
// writers are out of scope and undefined behavior.
package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/vvka-141/dmart/pkg/dmart"
)

// Open opens the SQLite store at path, creating the file if absent.
// Foreign-key constraint enforcement is enabled for the connection's
// lifetime via the DSN pragma; SQLite does not enforce it by default.
//
// The caller is responsible for releasing the connection with Close on all
// paths, including error paths.
func Open(path string) (*gorm.DB, error) {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on", path)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open store %s: %w: %v", path, dmart.ErrConnectionFailed, err)
	}
	return db, nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// EnsureSchema creates the five base tables plus the load-run audit table if
// they do not exist. Safe to call on an existing store; fails only when an
// existing table is incompatible with the expected shape.
func EnsureSchema(db *gorm.DB) error {
	// Referenced tables first so their foreign keys can be declared.
	err := db.AutoMigrate(
		&Category{},
		&Product{},
		&Customer{},
		&Order{},
		&Review{},
		&LoadRun{},
	)
	if err != nil {
		return fmt.Errorf("schema initialization: %w", err)
	}
	return nil
}

// RecordLoadRun appends one audit row describing a completed load invocation
// and returns its generated run id.
func RecordLoadRun(db *gorm.DB, startedAt time.Time, rowsInserted int64, inputsDigest string) (string, error) {
	run := LoadRun{
		ID:           uuid.NewString(),
		StartedAt:    startedAt,
		FinishedAt:   time.Now(),
		RowsInserted: rowsInserted,
		InputsDigest: inputsDigest,
	}
	if err := db.Create(&run).Error; err != nil {
		return "", fmt.Errorf("record load run: %w", err)
	}
	return run.ID, nil
}
