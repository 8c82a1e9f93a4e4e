package container

import (
	"context"
	"path/filepath"
	"testing"

	"catalog-backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sqliteConfig(t *testing.T) *config.Config {
	t.Helper()
	t.Setenv("DB_DRIVER", config.DriverSQLite)
	t.Setenv("SQLITE_PATH", filepath.Join(t.TempDir(), "catalog.db"))

	cfg, err := config.Load()
	require.NoError(t, err)
	return cfg
}

func TestNewContainer_SQLite(t *testing.T) {
	ctx := context.Background()

	c, err := NewContainer(ctx, sqliteConfig(t))
	require.NoError(t, err)
	defer c.Cleanup()

	assert.NotNil(t, c.AuthorHandler)
	assert.NotNil(t, c.BookHandler)
	assert.Nil(t, c.AsynqClient, "events are off by default")

	checks := c.HealthCheck(ctx)
	assert.Equal(t, map[string]error{"database": nil}, checks)
}

func TestNewContainer_EventsNeedRedis(t *testing.T) {
	cfg := sqliteConfig(t)
	cfg.Events.Enabled = true
	cfg.Redis.Host = "127.0.0.1:1"

	_, err := NewContainer(context.Background(), cfg)
	assert.Error(t, err)
}
