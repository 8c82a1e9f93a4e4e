// Package storetest provides throwaway stores for tests.
package storetest

import (
	"context"
	"path/filepath"
	"testing"

	"catalog-backend/internal/store"
)

// NewSQLite opens a fresh file-backed SQLite store under t.TempDir and
// closes it when the test ends.
func NewSQLite(t testing.TB) *store.SQLiteStore {
	t.Helper()

	path := filepath.Join(t.TempDir(), "catalog.db")
	s, err := store.OpenSQLiteStore(context.Background(), path)
	if err != nil {
		t.Fatalf("open sqlite store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })

	return s
}

// CountRows returns the number of rows in table.
func CountRows(t testing.TB, s *store.SQLiteStore, table string) int {
	t.Helper()

	var n int
	if err := s.DB().QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		t.Fatalf("count %s: %v", table, err)
	}
	return n
}
