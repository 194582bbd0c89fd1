package api

import (
	"github.com/gin-gonic/gin"

	"github.com/estateview/estateview/internal/handlers"
	"github.com/estateview/estateview/internal/services"
)

func registerPropertyRoutes(api *gin.RouterGroup, svc *services.PropertyService) error {
	handler, err := handlers.NewPropertyHandler(svc)
	if err != nil {
		return err
	}

	props := api.Group("/properties")
	{
		props.GET("", handler.List)
		props.GET("/featured", handler.Featured)
		props.GET("/:id", handler.Get)
		props.POST("", handler.Create)
	}
	api.GET("/cities", handler.Cities)
	return nil
}
