package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/estateview/estateview/internal/app"
	"github.com/estateview/estateview/internal/content"
	"github.com/estateview/estateview/internal/handlers"
	"github.com/estateview/estateview/internal/middleware"
	"github.com/estateview/estateview/internal/services"
	"github.com/estateview/estateview/internal/stats"
)

// NewRouter builds the Gin engine, wires middleware and registers all routes.
func NewRouter(db *gorm.DB, cfg *app.Config, contentSvc *content.Service, aggregator *stats.Aggregator, properties *services.PropertyService) (*gin.Engine, error) {
	if db == nil {
		return nil, fmt.Errorf("database handle must be provided")
	}
	if cfg == nil {
		return nil, fmt.Errorf("config must be provided")
	}
	if contentSvc == nil {
		return nil, fmt.Errorf("content service must be provided")
	}
	if aggregator == nil {
		return nil, fmt.Errorf("dashboard aggregator must be provided")
	}
	if properties == nil {
		return nil, fmt.Errorf("property service must be provided")
	}

	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.Metrics())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS())

	// Health endpoint (public)
	if cfg.Monitoring.Health.Enabled {
		r.GET("/health", handlers.Health(db))
	}

	api := r.Group("/api")

	if err := registerContentRoutes(api, contentSvc); err != nil {
		return nil, err
	}
	if err := registerDashboardRoutes(api, aggregator); err != nil {
		return nil, err
	}
	if err := registerPropertyRoutes(api, properties); err != nil {
		return nil, err
	}

	// Metrics endpoint
	if cfg.Monitoring.Prometheus.Enabled {
		endpoint := cfg.Monitoring.Prometheus.Endpoint
		if endpoint == "" {
			endpoint = "/metrics"
		}
		r.GET(endpoint, gin.WrapH(promhttp.Handler()))
	}

	// NotFound fallback
	r.NoRoute(middleware.NotFoundHandler)

	return r, nil
}
