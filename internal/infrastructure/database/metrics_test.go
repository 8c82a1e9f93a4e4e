package database

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterPoolMetrics_UnconnectedPool(t *testing.T) {
	reg := prometheus.NewRegistry()
	require.NoError(t, RegisterPoolMetrics(reg, NewPostgresDB(&DBConfig{})))

	n, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	assert.Error(t, RegisterPoolMetrics(reg, NewPostgresDB(&DBConfig{})), "duplicate registration")
}
