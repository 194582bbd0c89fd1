package main

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/estateview/estateview/internal/app"
)

func testConfig(t *testing.T) *app.Config {
	t.Helper()

	cfg := &app.Config{}
	cfg.Database.Driver = "sqlite"
	cfg.Database.Path = filepath.Join(t.TempDir(), "estateview.sqlite")
	cfg.Dashboard.CurrencySymbol = "₹"
	cfg.Monitoring.Health.Enabled = true
	return cfg
}

func TestBootstrapRuntimeWithoutProvider(t *testing.T) {
	cfg := testConfig(t)

	stack, err := bootstrapRuntime(cfg, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { stack.Shutdown(zap.NewNop()) })

	require.NotNil(t, stack.DB)
	require.NotNil(t, stack.Content)
	require.NotNil(t, stack.Router)
	require.Nil(t, stack.Cleaner)

	// Unconfigured provider degrades to empty content rather than an error.
	w := httptest.NewRecorder()
	stack.Router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/investment-news?city=Mumbai", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"news":""`)
}

func TestBootstrapRuntimeStartsCleaner(t *testing.T) {
	cfg := testConfig(t)
	cfg.Maintenance.Enabled = true
	cfg.Maintenance.Schedule = "@daily"

	stack, err := bootstrapRuntime(cfg, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { stack.Shutdown(zap.NewNop()) })

	require.NotNil(t, stack.Cleaner)
}

func TestConvertDatabaseConfig(t *testing.T) {
	cfg := &app.Config{}
	cfg.Database.Driver = "PostgreSQL"
	cfg.Database.Postgres.Host = "db.example.com"
	cfg.Database.Postgres.Port = 5433
	cfg.Database.Postgres.Database = "estateview"
	cfg.Database.Postgres.Username = "estate"
	cfg.Database.Postgres.Password = "secret"

	dbCfg := convertDatabaseConfig(cfg)
	require.Equal(t, "postgres", dbCfg.Driver)
	require.Equal(t, "db.example.com", dbCfg.Host)
	require.Equal(t, 5433, dbCfg.Port)
	require.Equal(t, "estateview", dbCfg.Name)
	require.Equal(t, "estate", dbCfg.User)
	require.Equal(t, "secret", dbCfg.Password)

	cfg = &app.Config{}
	dbCfg = convertDatabaseConfig(cfg)
	require.Equal(t, "sqlite", dbCfg.Driver)
}
