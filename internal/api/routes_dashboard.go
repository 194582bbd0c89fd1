package api

import (
	"github.com/gin-gonic/gin"

	"github.com/estateview/estateview/internal/handlers"
	"github.com/estateview/estateview/internal/stats"
)

func registerDashboardRoutes(api *gin.RouterGroup, aggregator *stats.Aggregator) error {
	handler, err := handlers.NewDashboardHandler(aggregator)
	if err != nil {
		return err
	}

	api.GET("/dashboard", handler.Snapshot)
	return nil
}
