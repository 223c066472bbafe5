package cmd

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_LoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, StorageMemory, cfg.StorageDriver)
	assert.Equal(t, 720*time.Hour, cfg.SnapshotTTL)
	assert.Equal(t, "@hourly", cfg.SweepSchedule)
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
}

func Test_LoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("STORAGE_DRIVER", "postgres")
	t.Setenv("DB_USER", "booking")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "booking")
	t.Setenv("SNAPSHOT_TTL", "48h")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, 48*time.Hour, cfg.SnapshotTTL)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
	assert.Equal(t, "host=localhost port=5432 user=booking password=secret dbname=booking sslmode=disable", cfg.PostgresDSN())
}

func Test_ConfigValidate(t *testing.T) {
	base := Config{StorageDriver: StorageMemory, SnapshotTTL: time.Hour}
	require.NoError(t, base.Validate())

	unknown := base
	unknown.StorageDriver = "cassandra"
	require.ErrorContains(t, unknown.Validate(), "unsupported STORAGE_DRIVER")

	pg := base
	pg.StorageDriver = StoragePostgres
	require.ErrorContains(t, pg.Validate(), "DB_USER and DB_NAME")

	ttl := base
	ttl.SnapshotTTL = 0
	require.ErrorContains(t, ttl.Validate(), "SNAPSHOT_TTL")
}
