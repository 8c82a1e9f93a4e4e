package store

import (
	"context"
	"database/sql"
	"fmt"

	authorrepo "catalog-backend/internal/domains/author/repository"
	bookrepo "catalog-backend/internal/domains/book/repository"
	infradb "catalog-backend/internal/infrastructure/database"
	"catalog-backend/pkg/database"
)

// SQLiteStore runs repositories over the embedded SQLite driver
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLiteStore opens path and creates missing tables
func OpenSQLiteStore(ctx context.Context, path string) (*SQLiteStore, error) {
	db, err := infradb.OpenSQLite(ctx, path)
	if err != nil {
		return nil, err
	}

	s := &SQLiteStore{db: db}
	if err := s.ApplySchema(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func sqliteRepositories(q database.SQLQuerier) Repositories {
	return Repositories{
		Authors:     authorrepo.NewSQLiteRepository(q),
		Books:       bookrepo.NewSQLiteRepository(q),
		Authorships: bookrepo.NewSQLiteAuthorshipRepository(q),
	}
}

func (s *SQLiteStore) WithTx(ctx context.Context, fn TxFunc) error {
	return database.WithSQLTransaction(ctx, s.db, func(tx *sql.Tx) error {
		return fn(sqliteRepositories(tx))
	})
}

func (s *SQLiteStore) Repositories() Repositories {
	return sqliteRepositories(s.db)
}

func (s *SQLiteStore) ApplySchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, SQLiteSchema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

// DB exposes the underlying handle for tooling and tests
func (s *SQLiteStore) DB() *sql.DB {
	return s.db
}

func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
