package api

import (
	"github.com/gin-gonic/gin"

	"github.com/estateview/estateview/internal/content"
	"github.com/estateview/estateview/internal/handlers"
)

func registerContentRoutes(api *gin.RouterGroup, svc *content.Service) error {
	handler, err := handlers.NewContentHandler(svc)
	if err != nil {
		return err
	}

	api.GET("/investment-news", handler.News)
	api.GET("/investment-info", handler.InvestmentInfo)
	api.DELETE("/content-cache", handler.Invalidate)
	return nil
}
