package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Empty(t, cfg.ClientPath)
	assert.Empty(t, cfg.Home)
	assert.Equal(t, 7, cfg.Debug.RetentionDays)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("TRACECTL_CLIENT_PATH", "/opt/lttng/bin/lttng")
	t.Setenv("TRACECTL_HOME", "/var/lib/tracing")
	t.Setenv("TRACECTL_DEBUG_RETENTION_DAYS", "30")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/opt/lttng/bin/lttng", cfg.ClientPath)
	assert.Equal(t, "/var/lib/tracing", cfg.Home)
	assert.Equal(t, 30, cfg.Debug.RetentionDays)
}

func TestLoadBadRetentionIgnored(t *testing.T) {
	t.Setenv("TRACECTL_DEBUG_RETENTION_DAYS", "soon")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Debug.RetentionDays)
}

func TestDirNotEmpty(t *testing.T) {
	assert.NotEmpty(t, Dir())
}
