// Package store is the transactional boundary of the catalog. Services run
// every mutating operation through Store.WithTx and only ever see the
// repositories bound to that transaction.
package store

import (
	"context"
	"fmt"

	"catalog-backend/internal/config"
	"catalog-backend/internal/domains/author"
	bookrepo "catalog-backend/internal/domains/book/repository"
	infradb "catalog-backend/internal/infrastructure/database"
)

// Repositories bound to one connection or transaction
type Repositories struct {
	Authors     author.Repository
	Books       bookrepo.RepositoryInterface
	Authorships bookrepo.AuthorshipRepository
}

// TxFunc runs inside a transaction. Returning an error, or panicking,
// rolls back every write made through repos.
type TxFunc func(repos Repositories) error

type Store interface {
	WithTx(ctx context.Context, fn TxFunc) error
	// Repositories returns non-transactional repositories for reads
	Repositories() Repositories
	ApplySchema(ctx context.Context) error
	Ping(ctx context.Context) error
	Close() error
}

// Open builds the store selected by cfg.Driver
func Open(ctx context.Context, cfg config.DatabaseConfig) (Store, error) {
	var (
		s   Store
		err error
	)

	switch cfg.Driver {
	case config.DriverPostgres:
		pg := infradb.NewPostgresDB(cfg.PostgresConfig())
		if err = pg.Connect(ctx); err != nil {
			return nil, err
		}
		s = NewPostgresStore(pg)
	case config.DriverSQLite:
		s, err = OpenSQLiteStore(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	if cfg.ApplySchema {
		if err := s.ApplySchema(ctx); err != nil {
			s.Close()
			return nil, err
		}
	}

	return s, nil
}
