package store

import (
	"context"
	"fmt"

	authorrepo "catalog-backend/internal/domains/author/repository"
	bookrepo "catalog-backend/internal/domains/book/repository"
	infradb "catalog-backend/internal/infrastructure/database"
	"catalog-backend/pkg/database"

	"github.com/jackc/pgx/v5"
)

// PostgresStore runs repositories over a pgx pool
type PostgresStore struct {
	db *infradb.PostgresDB
}

func NewPostgresStore(db *infradb.PostgresDB) *PostgresStore {
	return &PostgresStore{db: db}
}

func postgresRepositories(q database.PgxQuerier) Repositories {
	return Repositories{
		Authors:     authorrepo.NewPostgresRepository(q),
		Books:       bookrepo.NewPostgresRepository(q),
		Authorships: bookrepo.NewPostgresAuthorshipRepository(q),
	}
}

func (s *PostgresStore) WithTx(ctx context.Context, fn TxFunc) error {
	return database.WithTransaction(ctx, s.db.Pool, func(tx pgx.Tx) error {
		return fn(postgresRepositories(tx))
	})
}

func (s *PostgresStore) Repositories() Repositories {
	return postgresRepositories(s.db.Pool)
}

func (s *PostgresStore) ApplySchema(ctx context.Context) error {
	if _, err := s.db.Pool.Exec(ctx, PostgresSchema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}

// DB exposes the pool owner for health checks and metrics
func (s *PostgresStore) DB() *infradb.PostgresDB {
	return s.db
}
