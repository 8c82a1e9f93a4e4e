package database

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, Classify(nil))
	})

	t.Run("no rows becomes ErrNotFound", func(t *testing.T) {
		assert.ErrorIs(t, Classify(pgx.ErrNoRows), ErrNotFound)
		assert.ErrorIs(t, Classify(fmt.Errorf("scan: %w", sql.ErrNoRows)), ErrNotFound)
	})

	t.Run("pgconn unique violation", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "uq_authors_name_birth_date"}
		err := Classify(fmt.Errorf("insert author: %w", pgErr))

		require.ErrorIs(t, err, ErrUniqueViolation)
		assert.NotErrorIs(t, err, ErrForeignKeyViolation)

		var ce *ConstraintError
		require.True(t, errors.As(err, &ce))
		assert.Equal(t, "uq_authors_name_birth_date", ce.Constraint)

		var original *pgconn.PgError
		assert.True(t, errors.As(err, &original), "driver error stays reachable")
	})

	t.Run("pgconn foreign key violation", func(t *testing.T) {
		err := Classify(&pgconn.PgError{Code: "23503"})
		assert.ErrorIs(t, err, ErrForeignKeyViolation)
	})

	t.Run("lib/pq errors", func(t *testing.T) {
		assert.ErrorIs(t, Classify(&pq.Error{Code: "23505"}), ErrUniqueViolation)
		assert.ErrorIs(t, Classify(&pq.Error{Code: "23503"}), ErrForeignKeyViolation)
	})

	t.Run("other postgres errors pass through", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: "42P01"}
		err := Classify(pgErr)
		assert.Same(t, pgErr, err)
	})

	t.Run("classifying twice is stable", func(t *testing.T) {
		once := Classify(&pgconn.PgError{Code: "23505"})
		assert.Same(t, once, Classify(once))
	})

	t.Run("helpers", func(t *testing.T) {
		assert.True(t, IsUniqueViolation(&pgconn.PgError{Code: "23505"}))
		assert.False(t, IsUniqueViolation(errors.New("boom")))
		assert.True(t, IsForeignKeyViolation(&pq.Error{Code: "23503"}))
	})
}
