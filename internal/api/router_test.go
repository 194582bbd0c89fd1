package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/estateview/estateview/internal/app"
	"github.com/estateview/estateview/internal/content"
	"github.com/estateview/estateview/internal/database/testutil"
	"github.com/estateview/estateview/internal/services"
	"github.com/estateview/estateview/internal/stats"
)

type staticProvider struct{}

func (staticProvider) FetchCityNews(context.Context, string) (string, error) {
	return "city news", nil
}

func (staticProvider) FetchTrendingNews(context.Context) (string, error) {
	return "trending news", nil
}

func (staticProvider) FetchCityInvestmentInfo(context.Context, string) (string, error) {
	return "investment info", nil
}

func newTestRouter(t *testing.T, cfg *app.Config) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.MustOpenTestDB(t, testutil.WithSeedData())

	store, err := content.NewStore(db)
	require.NoError(t, err)
	contentSvc, err := content.NewService(store, staticProvider{})
	require.NoError(t, err)

	reader, err := stats.NewReader(db)
	require.NoError(t, err)
	aggregator, err := stats.NewAggregator(reader, "₹")
	require.NoError(t, err)

	propertySvc, err := services.NewPropertyService(db)
	require.NoError(t, err)

	if cfg == nil {
		cfg = &app.Config{}
		cfg.Monitoring.Prometheus.Enabled = true
		cfg.Monitoring.Health.Enabled = true
	}

	r, err := NewRouter(db, cfg, contentSvc, aggregator, propertySvc)
	require.NoError(t, err)
	return r, db
}

func get(t *testing.T, r *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestRouterRegistersCoreRoutes(t *testing.T) {
	r, _ := newTestRouter(t, nil)

	require.Equal(t, http.StatusOK, get(t, r, "/health").Code)
	require.Equal(t, http.StatusOK, get(t, r, "/metrics").Code)
	require.Equal(t, http.StatusOK, get(t, r, "/api/dashboard").Code)
	require.Equal(t, http.StatusOK, get(t, r, "/api/properties").Code)
	require.Equal(t, http.StatusOK, get(t, r, "/api/properties/featured").Code)
	require.Equal(t, http.StatusOK, get(t, r, "/api/cities").Code)
	require.Equal(t, http.StatusOK, get(t, r, "/api/investment-news?city=Mumbai").Code)
	require.Equal(t, http.StatusOK, get(t, r, "/api/investment-news").Code)
	require.Equal(t, http.StatusOK, get(t, r, "/api/investment-info?city=Pune").Code)
}

func TestRouterUnknownRoute(t *testing.T) {
	r, _ := newTestRouter(t, nil)

	w := get(t, r, "/api/unknown")
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Contains(t, w.Body.String(), "route /api/unknown not found")
}

func TestRouterDisablesOptionalEndpoints(t *testing.T) {
	cfg := &app.Config{}
	r, _ := newTestRouter(t, cfg)

	require.Equal(t, http.StatusNotFound, get(t, r, "/metrics").Code)
	require.Equal(t, http.StatusNotFound, get(t, r, "/health").Code)
	// Core API routes stay up regardless.
	require.Equal(t, http.StatusOK, get(t, r, "/api/dashboard").Code)
}

func TestRouterRequiresDependencies(t *testing.T) {
	gin.SetMode(gin.TestMode)

	_, err := NewRouter(nil, &app.Config{}, nil, nil, nil)
	require.Error(t, err)
}
