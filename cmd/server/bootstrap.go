package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/estateview/estateview/internal/api"
	"github.com/estateview/estateview/internal/app"
	"github.com/estateview/estateview/internal/app/maintenance"
	"github.com/estateview/estateview/internal/content"
	"github.com/estateview/estateview/internal/database"
	"github.com/estateview/estateview/internal/services"
	"github.com/estateview/estateview/internal/stats"
	"github.com/estateview/estateview/pkg/logger"
)

// runtimeStack bundles long-lived services used by the HTTP server.
type runtimeStack struct {
	DB      *gorm.DB
	Content *content.Service
	Cleaner *maintenance.Cleaner
	Router  *gin.Engine
}

// bootstrapRuntime initialises the database, content cache, dashboard
// aggregation, and the HTTP router.
func bootstrapRuntime(cfg *app.Config, log *zap.Logger) (*runtimeStack, error) {
	stack := &runtimeStack{}
	var err error
	success := false

	defer func() {
		if !success {
			stack.Shutdown(log)
		}
	}()

	if debug, _ := os.LookupEnv("GIN_DEBUG"); debug != "true" {
		gin.SetMode(gin.ReleaseMode)
	}

	stack.DB, err = initialiseDatabase(cfg)
	if err != nil {
		return nil, err
	}

	store, err := content.NewStore(stack.DB)
	if err != nil {
		return nil, fmt.Errorf("initialise content store: %w", err)
	}

	provider, err := buildContentProvider(cfg, log)
	if err != nil {
		return nil, err
	}

	stack.Content, err = content.NewService(store, provider)
	if err != nil {
		return nil, fmt.Errorf("initialise content service: %w", err)
	}

	reader, err := stats.NewReader(stack.DB)
	if err != nil {
		return nil, fmt.Errorf("initialise stats reader: %w", err)
	}

	aggregator, err := stats.NewAggregator(reader, cfg.Dashboard.CurrencySymbol)
	if err != nil {
		return nil, fmt.Errorf("initialise dashboard aggregator: %w", err)
	}

	propertySvc, err := services.NewPropertyService(stack.DB)
	if err != nil {
		return nil, fmt.Errorf("initialise property service: %w", err)
	}

	if cfg.Maintenance.Enabled {
		stack.Cleaner = maintenance.NewCleaner(store,
			maintenance.WithSchedule(cfg.Maintenance.Schedule),
			maintenance.WithMaxAge(cfg.Maintenance.MaxAge),
		)
		if err := stack.Cleaner.Start(); err != nil {
			return nil, fmt.Errorf("start maintenance jobs: %w", err)
		}
	}

	stack.Router, err = api.NewRouter(stack.DB, cfg, stack.Content, aggregator, propertySvc)
	if err != nil {
		return nil, fmt.Errorf("build api router: %w", err)
	}

	success = true
	return stack, nil
}

// Shutdown stops background jobs and closes the database.
func (s *runtimeStack) Shutdown(log *zap.Logger) {
	if s == nil {
		return
	}

	if s.Cleaner != nil {
		stopCtx := s.Cleaner.Stop()
		<-stopCtx.Done()
	}

	closeDatabase(s.DB, log)
}

// buildContentProvider wires the AI content endpoint, falling back to a
// disabled provider when no base URL is configured. The cache service
// degrades fetch failures to empty content, so an unconfigured provider
// yields empty tickers instead of startup failure.
func buildContentProvider(cfg *app.Config, log *zap.Logger) (content.Provider, error) {
	if strings.TrimSpace(cfg.Content.Provider.BaseURL) == "" {
		log.Warn("content provider base url not configured; serving empty content")
		return disabledProvider{}, nil
	}

	provider, err := content.NewHTTPProvider(content.HTTPProviderConfig{
		BaseURL: cfg.Content.Provider.BaseURL,
		APIKey:  cfg.Content.Provider.APIKey,
		Timeout: cfg.Content.Provider.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("initialise content provider: %w", err)
	}
	return provider, nil
}

// disabledProvider fails every fetch; the content service turns those
// failures into empty strings without caching them.
type disabledProvider struct{}

func (disabledProvider) FetchCityNews(context.Context, string) (string, error) {
	return "", fmt.Errorf("content provider not configured")
}

func (disabledProvider) FetchTrendingNews(context.Context) (string, error) {
	return "", fmt.Errorf("content provider not configured")
}

func (disabledProvider) FetchCityInvestmentInfo(context.Context, string) (string, error) {
	return "", fmt.Errorf("content provider not configured")
}

func initialiseDatabase(cfg *app.Config) (*gorm.DB, error) {
	dbCfg := convertDatabaseConfig(cfg)
	db, err := database.Open(dbCfg)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := database.AutoMigrateAndSeed(db); err != nil {
		return nil, fmt.Errorf("auto-migrate database: %w", err)
	}

	log := logger.WithModule("database")
	log.Info("database connected", zap.String("driver", strings.ToLower(strings.TrimSpace(dbCfg.Driver))))

	return db, nil
}

func convertDatabaseConfig(cfg *app.Config) database.Config {
	dbCfg := database.Config{
		Driver: strings.ToLower(strings.TrimSpace(cfg.Database.Driver)),
		Path:   strings.TrimSpace(cfg.Database.Path),
		DSN:    strings.TrimSpace(cfg.Database.DSN),
	}

	switch dbCfg.Driver {
	case "", "sqlite":
		dbCfg.Driver = "sqlite"
	case "postgres", "postgresql":
		dbCfg.Driver = "postgres"
		dbCfg.Host = strings.TrimSpace(cfg.Database.Postgres.Host)
		dbCfg.Port = cfg.Database.Postgres.Port
		dbCfg.Name = strings.TrimSpace(cfg.Database.Postgres.Database)
		dbCfg.User = strings.TrimSpace(cfg.Database.Postgres.Username)
		dbCfg.Password = strings.TrimSpace(cfg.Database.Postgres.Password)
	case "mysql":
		dbCfg.Host = strings.TrimSpace(cfg.Database.MySQL.Host)
		dbCfg.Port = cfg.Database.MySQL.Port
		dbCfg.Name = strings.TrimSpace(cfg.Database.MySQL.Database)
		dbCfg.User = strings.TrimSpace(cfg.Database.MySQL.Username)
		dbCfg.Password = strings.TrimSpace(cfg.Database.MySQL.Password)
	default:
		// Leave driver as-is to surface unsupported driver error during open.
	}

	return dbCfg
}

func closeDatabase(db *gorm.DB, log *zap.Logger) {
	if db == nil {
		return
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Warn("failed to obtain underlying sql DB for closing", zap.Error(err))
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Warn("failed to close database", zap.Error(err))
	}
}
