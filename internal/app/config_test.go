package app

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join("testdata")
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	require.Equal(t, 9090, cfg.Server.Port)
	require.Equal(t, "debug", cfg.Server.LogLevel)

	require.Equal(t, "postgres", cfg.Database.Driver)
	require.Equal(t, "db.example.com", cfg.Database.Postgres.Host)
	require.Equal(t, 5433, cfg.Database.Postgres.Port)
	require.Equal(t, "estateview", cfg.Database.Postgres.Database)
	require.Equal(t, "estate", cfg.Database.Postgres.Username)
	require.Equal(t, "secret", cfg.Database.Postgres.Password)

	require.Equal(t, "https://ai.example.com", cfg.Content.Provider.BaseURL)
	require.Equal(t, "test-key", cfg.Content.Provider.APIKey)
	require.Equal(t, 30*time.Second, cfg.Content.Provider.Timeout)

	require.Equal(t, "$", cfg.Dashboard.CurrencySymbol)

	require.True(t, cfg.Maintenance.Enabled)
	require.Equal(t, "@hourly", cfg.Maintenance.Schedule)
	require.Equal(t, 168*time.Hour, cfg.Maintenance.MaxAge)

	require.False(t, cfg.Monitoring.Prometheus.Enabled)
	// Untouched sections keep their defaults.
	require.Equal(t, "/metrics", cfg.Monitoring.Prometheus.Endpoint)
	require.True(t, cfg.Monitoring.Health.Enabled)
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	require.Equal(t, 8000, cfg.Server.Port)
	require.Equal(t, "info", cfg.Server.LogLevel)
	require.Equal(t, "sqlite", cfg.Database.Driver)
	require.Equal(t, "./data/estateview.sqlite", cfg.Database.Path)
	require.Equal(t, 10*time.Second, cfg.Content.Provider.Timeout)
	require.Equal(t, "₹", cfg.Dashboard.CurrencySymbol)
	require.False(t, cfg.Maintenance.Enabled)
	require.Equal(t, "@daily", cfg.Maintenance.Schedule)
	require.Equal(t, 720*time.Hour, cfg.Maintenance.MaxAge)
	require.True(t, cfg.Monitoring.Prometheus.Enabled)
}
