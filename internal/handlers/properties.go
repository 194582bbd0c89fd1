package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/estateview/estateview/internal/models"
	"github.com/estateview/estateview/internal/services"
	appErrors "github.com/estateview/estateview/pkg/errors"
	"github.com/estateview/estateview/pkg/logger"
	"github.com/estateview/estateview/pkg/response"
	"github.com/estateview/estateview/pkg/validator"
)

// PropertyHandler exposes the public listing endpoints.
type PropertyHandler struct {
	svc *services.PropertyService
	log *zap.Logger
}

// NewPropertyHandler constructs the property handler.
func NewPropertyHandler(svc *services.PropertyService) (*PropertyHandler, error) {
	if svc == nil {
		return nil, errors.New("property handler: service is required")
	}
	return &PropertyHandler{svc: svc, log: logger.WithModule("handlers.properties")}, nil
}

type propertyView struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	ShortDescription string   `json:"short_description,omitempty"`
	Street           string   `json:"street,omitempty"`
	City             string   `json:"city"`
	ZipCode          string   `json:"zip_code,omitempty"`
	Price            float64  `json:"price"`
	Status           string   `json:"status"`
	Category         string   `json:"category,omitempty"`
	IsFeatured       bool     `json:"is_featured"`
	Latitude         *float64 `json:"latitude,omitempty"`
	Longitude        *float64 `json:"longitude,omitempty"`
	Views            int      `json:"views"`
}

func toPropertyView(p models.Property) propertyView {
	view := propertyView{
		ID:               p.ID,
		Name:             p.Name,
		ShortDescription: p.ShortDescription,
		Street:           p.Street,
		City:             p.City,
		ZipCode:          p.ZipCode,
		Price:            p.Price,
		Status:           p.Status,
		IsFeatured:       p.IsFeatured,
		Latitude:         p.Latitude,
		Longitude:        p.Longitude,
		Views:            p.Views,
	}
	if p.Category != nil {
		view.Category = p.Category.Name
	}
	return view
}

// List returns published listings, optionally filtered by city, featured
// flag, or presence of map coordinates.
func (h *PropertyHandler) List(c *gin.Context) {
	opts := services.ListPublishedOptions{
		City:         strings.TrimSpace(c.Query("city")),
		FeaturedOnly: c.Query("featured") == "true",
		MappableOnly: c.Query("mappable") == "true",
	}

	properties, err := h.svc.ListPublished(c.Request.Context(), opts)
	if err != nil {
		h.log.Error("list properties failed", zap.Error(err))
		response.Error(c, err)
		return
	}

	views := make([]propertyView, 0, len(properties))
	for _, p := range properties {
		views = append(views, toPropertyView(p))
	}
	response.SuccessWithMeta(c, http.StatusOK, views, &response.Meta{Total: len(views)})
}

// Featured returns published featured listings, optionally city-filtered.
func (h *PropertyHandler) Featured(c *gin.Context) {
	opts := services.ListPublishedOptions{
		City:         strings.TrimSpace(c.Query("city")),
		FeaturedOnly: true,
	}

	properties, err := h.svc.ListPublished(c.Request.Context(), opts)
	if err != nil {
		h.log.Error("list featured properties failed", zap.Error(err))
		response.Error(c, err)
		return
	}

	views := make([]propertyView, 0, len(properties))
	for _, p := range properties {
		views = append(views, toPropertyView(p))
	}
	response.SuccessWithMeta(c, http.StatusOK, views, &response.Meta{Total: len(views)})
}

// Get returns a single property and records the page view. A failed view
// count is logged and swallowed; it must not break the detail page.
func (h *PropertyHandler) Get(c *gin.Context) {
	id := c.Param("id")

	property, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrPropertyNotFound) {
			response.Error(c, appErrors.ErrPropertyNotFound)
			return
		}
		response.Error(c, err)
		return
	}

	if err := h.svc.RecordView(c.Request.Context(), id); err != nil {
		h.log.Warn("record view failed", zap.String("property_id", id), zap.Error(err))
	}

	response.Success(c, http.StatusOK, toPropertyView(*property))
}

// Create persists a new listing.
func (h *PropertyHandler) Create(c *gin.Context) {
	var input services.CreatePropertyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, appErrors.NewBadRequest("invalid request body"))
		return
	}

	property, err := h.svc.Create(c.Request.Context(), input)
	if err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			response.Error(c, appErrors.NewBadRequest(verrs.Error()))
			return
		}
		if errors.Is(err, services.ErrUnknownCategory) {
			response.Error(c, appErrors.NewBadRequest(err.Error()))
			return
		}
		h.log.Error("create property failed", zap.Error(err))
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, toPropertyView(*property))
}

// Cities returns the distinct cities with published listings, feeding the
// portal's city filter dropdown.
func (h *PropertyHandler) Cities(c *gin.Context) {
	cities, err := h.svc.Cities(c.Request.Context())
	if err != nil {
		h.log.Error("list cities failed", zap.Error(err))
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, cities)
}
