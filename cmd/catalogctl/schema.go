package main

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/spf13/cobra"

	"catalog-backend/internal/config"
	"catalog-backend/internal/store"
)

func newSchemaCmd(cli *cliContext) *cobra.Command {
	schema := &cobra.Command{
		Use:   "schema",
		Short: "Inspect or create the catalog tables",
	}

	schema.AddCommand(&cobra.Command{
		Use:   "apply",
		Short: "Create missing tables (idempotent)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := applySchema(cmd.Context(), cli.cfg.Database); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "schema applied (%s)\n", cli.cfg.Database.Driver)
			return nil
		},
	})

	schema.AddCommand(&cobra.Command{
		Use:   "print",
		Short: "Print the DDL for the configured driver",
		RunE: func(cmd *cobra.Command, args []string) error {
			ddl := store.PostgresSchema
			if cli.cfg.Database.Driver == config.DriverSQLite {
				ddl = store.SQLiteSchema
			}
			fmt.Fprint(cmd.OutOrStdout(), ddl)
			return nil
		},
	})

	return schema
}

// applySchema runs the DDL over database/sql with lib/pq for Postgres so
// the CLI does not need the pool settings; SQLite applies it on open.
func applySchema(ctx context.Context, cfg config.DatabaseConfig) error {
	switch cfg.Driver {
	case config.DriverPostgres:
		db, err := sql.Open("postgres", cfg.PostgresConfig().DSN())
		if err != nil {
			return fmt.Errorf("open postgres: %w", err)
		}
		defer db.Close()

		if _, err := db.ExecContext(ctx, store.PostgresSchema); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
		return nil
	case config.DriverSQLite:
		s, err := store.OpenSQLiteStore(ctx, cfg.SQLitePath)
		if err != nil {
			return err
		}
		return s.Close()
	default:
		return fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}
