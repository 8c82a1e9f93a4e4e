package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog-backend/internal/config"
	"catalog-backend/internal/store"
	"catalog-backend/pkg/jwt"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config-dir", t.TempDir()}, args...))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func useSQLite(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.db")
	t.Setenv("DB_DRIVER", config.DriverSQLite)
	t.Setenv("SQLITE_PATH", path)
	return path
}

func TestSchemaApply_SQLite(t *testing.T) {
	path := useSQLite(t)

	out, err := run(t, "schema", "apply")
	require.NoError(t, err)
	assert.Contains(t, out, "schema applied (sqlite)")

	_, err = run(t, "schema", "apply")
	require.NoError(t, err, "apply is idempotent")

	s, err := store.OpenSQLiteStore(context.Background(), path)
	require.NoError(t, err)
	defer s.Close()
	_, err = s.Repositories().Authorships.ListUnauthoredBookIDs(context.Background())
	assert.NoError(t, err)
}

func TestSchemaPrint(t *testing.T) {
	useSQLite(t)

	out, err := run(t, "schema", "print")
	require.NoError(t, err)
	assert.Equal(t, store.SQLiteSchema, out)
}

func TestTokenIssue(t *testing.T) {
	useSQLite(t)
	t.Setenv("JWT_SECRET", "cli-secret")

	out, err := run(t, "token", "issue", "--subject", "ops", "--ttl", "1h")
	require.NoError(t, err)

	claims, err := jwt.NewManager("cli-secret").ValidateAccessToken(strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, "ops", claims.Subject)
	assert.Equal(t, jwt.RoleWriter, claims.Role)

	_, err = run(t, "token", "issue", "--role", "admin")
	assert.Error(t, err)
}
