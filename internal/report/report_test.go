package report

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/vvka-141/dmart/internal/logging"
	"github.com/vvka-141/dmart/internal/store"
	"github.com/vvka-141/dmart/pkg/dmart"
)

func newTestStore(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close(db) })
	require.NoError(t, store.EnsureSchema(db))
	return db
}

func seedProduct(t *testing.T, db *gorm.DB, id int64, name string, price float64) {
	t.Helper()
	require.NoError(t, db.Create(&store.Product{ID: id, Name: name, Price: &price}).Error)
}

func TestReadQuery_TrimsTerminator(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.sql")
	require.NoError(t, os.WriteFile(path, []byte("SELECT id, name FROM products WHERE price > 5;\n"), 0644))

	query, err := ReadQuery(path)
	require.NoError(t, err)
	assert.Equal(t, "SELECT id, name FROM products WHERE price > 5", query)
}

func TestReadQuery_NoTerminator(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.sql")
	require.NoError(t, os.WriteFile(path, []byte("SELECT 1"), 0644))

	query, err := ReadQuery(path)
	require.NoError(t, err)
	assert.Equal(t, "SELECT 1", query)
}

func TestReadQuery_MissingFile(t *testing.T) {
	_, err := ReadQuery(filepath.Join(t.TempDir(), "report.sql"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, dmart.ErrQueryFileMissing), "expected missing-file sentinel, got: %v", err)
}

func TestReadQuery_EmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.sql")
	require.NoError(t, os.WriteFile(path, []byte(" ;\n"), 0644))

	_, err := ReadQuery(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, dmart.ErrExecutionFailed))
}

func TestMaterialize_ScenarioC_SnapshotReplaced(t *testing.T) {
	db := newTestStore(t)
	logger := logging.NewNullLogger()
	seedProduct(t, db, 10, "Novel", 9.99)

	query := "SELECT id, name FROM products WHERE price > 5"

	count, err := Materialize(db, query, logger)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	var row struct {
		ID   int64
		Name string
	}
	require.NoError(t, db.Raw("SELECT id, name FROM report_output").Scan(&row).Error)
	assert.Equal(t, int64(10), row.ID)
	assert.Equal(t, "Novel", row.Name)

	// A second qualifying product and a rerun: the stale single-row snapshot
	// is fully replaced, not appended to.
	seedProduct(t, db, 11, "Atlas", 19.99)
	count, err = Materialize(db, query, logger)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	var total int64
	require.NoError(t, db.Table(dmart.ReportTableName).Count(&total).Error)
	assert.Equal(t, int64(2), total)
}

func TestMaterialize_MalformedQueryLeavesTableAbsent(t *testing.T) {
	db := newTestStore(t)
	logger := logging.NewNullLogger()
	seedProduct(t, db, 10, "Novel", 9.99)

	// Seed a valid snapshot first.
	_, err := Materialize(db, "SELECT id FROM products", logger)
	require.NoError(t, err)
	assert.True(t, db.Migrator().HasTable(dmart.ReportTableName))

	// The failed refresh drops the old snapshot and creates nothing.
	_, err = Materialize(db, "SELECT id FROM no_such_table", logger)
	require.Error(t, err)
	assert.True(t, errors.Is(err, dmart.ErrExecutionFailed), "expected execution sentinel, got: %v", err)
	assert.False(t, db.Migrator().HasTable(dmart.ReportTableName),
		"destination table must be absent after a failed materialization")
}

func TestMaterialize_QueryOverEmptyTable(t *testing.T) {
	db := newTestStore(t)

	count, err := Materialize(db, "SELECT id, name FROM products", logging.NewNullLogger())
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
	assert.True(t, db.Migrator().HasTable(dmart.ReportTableName))
}
