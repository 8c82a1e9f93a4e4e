package database

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// PostgreSQL SQLSTATE codes
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

var (
	// ErrNotFound is returned by repositories when a row does not exist
	ErrNotFound = errors.New("record not found")

	// ErrUniqueViolation marks a unique or primary key constraint failure
	ErrUniqueViolation = errors.New("unique constraint violation")

	// ErrForeignKeyViolation marks a foreign key constraint failure
	ErrForeignKeyViolation = errors.New("foreign key constraint violation")
)

// ConstraintError keeps the driver error behind a classified sentinel.
type ConstraintError struct {
	Kind       error
	Constraint string
	Err        error
}

func (e *ConstraintError) Error() string {
	if e.Constraint != "" {
		return e.Kind.Error() + " (" + e.Constraint + "): " + e.Err.Error()
	}
	return e.Kind.Error() + ": " + e.Err.Error()
}

func (e *ConstraintError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// Classify converts driver specific constraint failures into a
// *ConstraintError wrapping ErrUniqueViolation or ErrForeignKeyViolation,
// and no-row errors into ErrNotFound. Other errors are returned unchanged.
func Classify(err error) error {
	if err == nil {
		return nil
	}

	var classified *ConstraintError
	if errors.As(err, &classified) {
		return err
	}

	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return &ConstraintError{Kind: ErrUniqueViolation, Constraint: pgErr.ConstraintName, Err: err}
		case pgForeignKeyViolation:
			return &ConstraintError{Kind: ErrForeignKeyViolation, Constraint: pgErr.ConstraintName, Err: err}
		}
		return err
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case pgUniqueViolation:
			return &ConstraintError{Kind: ErrUniqueViolation, Constraint: pqErr.Constraint, Err: err}
		case pgForeignKeyViolation:
			return &ConstraintError{Kind: ErrForeignKeyViolation, Constraint: pqErr.Constraint, Err: err}
		}
		return err
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		if kind := sqliteConstraintKind(liteErr); kind != nil {
			return &ConstraintError{Kind: kind, Err: err}
		}
	}

	return err
}

func sqliteConstraintKind(err *sqlite.Error) error {
	switch err.Code() {
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
		return ErrUniqueViolation
	case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
		return ErrForeignKeyViolation
	case sqlite3.SQLITE_CONSTRAINT:
		// extended result codes disabled on this connection
		msg := err.Error()
		switch {
		case strings.Contains(msg, "UNIQUE constraint failed"):
			return ErrUniqueViolation
		case strings.Contains(msg, "FOREIGN KEY constraint failed"):
			return ErrForeignKeyViolation
		}
	}
	return nil
}

// IsUniqueViolation reports whether err is a classified unique violation
func IsUniqueViolation(err error) bool {
	return errors.Is(Classify(err), ErrUniqueViolation)
}

// IsForeignKeyViolation reports whether err is a classified foreign key violation
func IsForeignKeyViolation(err error) bool {
	return errors.Is(Classify(err), ErrForeignKeyViolation)
}
