// Package querytest provides throwaway databases for tests.
package querytest

import (
	"path/filepath"
	"testing"

	"devplatform/dao/migrate"
	"devplatform/dao/query"

	"gorm.io/gorm"
)

// NewTestDB creates a migrated sqlite database in a temporary directory.
// It is closed automatically when the test completes.
func NewTestDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := query.OpenSQLite(filepath.Join(t.TempDir(), "test.db"), nil)
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	t.Cleanup(func() {
		if err := query.Close(db); err != nil {
			t.Errorf("closing test database: %v", err)
		}
	})

	if err := migrate.Run(db); err != nil {
		t.Fatalf("migrating test database: %v", err)
	}
	return db
}

// NewTestQuery wraps NewTestDB in a query object.
func NewTestQuery(t testing.TB) *query.Query {
	t.Helper()
	return query.Use(NewTestDB(t))
}
