package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/estateview/estateview/internal/models"
	"github.com/estateview/estateview/pkg/validator"
)

var (
	// ErrPropertyNotFound indicates the requested property does not exist.
	ErrPropertyNotFound = errors.New("property service: property not found")

	// ErrUnknownCategory indicates a create referenced a category that does not exist.
	ErrUnknownCategory = errors.New("property service: unknown category")
)

// PropertyService manages listing-facing reads and owner-facing writes for
// properties. Dashboard aggregates live in the stats package.
type PropertyService struct {
	db *gorm.DB
}

// NewPropertyService constructs a property service once a database handle is supplied.
func NewPropertyService(db *gorm.DB) (*PropertyService, error) {
	if db == nil {
		return nil, errors.New("property service: db is required")
	}
	return &PropertyService{db: db}, nil
}

func ensuredContext(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}

// ListPublishedOptions controls how published listings are filtered.
type ListPublishedOptions struct {
	City         string
	FeaturedOnly bool
	MappableOnly bool
}

// ListPublished retrieves published properties for the portal, newest first.
// MappableOnly restricts results to rows carrying coordinates, matching the
// map view which cannot place a property without them.
func (s *PropertyService) ListPublished(ctx context.Context, opts ListPublishedOptions) ([]models.Property, error) {
	if s == nil {
		return nil, errors.New("property service: service not initialised")
	}
	ctx = ensuredContext(ctx)

	q := s.db.WithContext(ctx).
		Preload("Category").
		Where("is_published = ?", true)

	if city := strings.TrimSpace(opts.City); city != "" {
		q = q.Where("city = ?", city)
	}
	if opts.FeaturedOnly {
		q = q.Where("is_featured = ?", true)
	}
	if opts.MappableOnly {
		q = q.Where("latitude IS NOT NULL AND longitude IS NOT NULL")
	}

	var properties []models.Property
	if err := q.Order("created_at DESC").Find(&properties).Error; err != nil {
		return nil, err
	}
	return properties, nil
}

// Cities returns the distinct, sorted set of cities with published listings.
func (s *PropertyService) Cities(ctx context.Context) ([]string, error) {
	if s == nil {
		return nil, errors.New("property service: service not initialised")
	}
	ctx = ensuredContext(ctx)

	var cities []string
	err := s.db.WithContext(ctx).
		Model(&models.Property{}).
		Where("is_published = ? AND city <> ''", true).
		Distinct("city").
		Order("city").
		Pluck("city", &cities).Error
	if err != nil {
		return nil, err
	}
	return cities, nil
}

// Get retrieves a property by identifier.
func (s *PropertyService) Get(ctx context.Context, id string) (*models.Property, error) {
	if s == nil {
		return nil, errors.New("property service: service not initialised")
	}
	ctx = ensuredContext(ctx)

	id = strings.TrimSpace(id)
	if id == "" {
		return nil, errors.New("property service: id is required")
	}

	var property models.Property
	err := s.db.WithContext(ctx).Preload("Category").First(&property, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPropertyNotFound
	}
	if err != nil {
		return nil, err
	}
	return &property, nil
}

// RecordView increments the view counter for a property. Callers treat a
// failure here as non-fatal; a lost count must not break the detail page.
func (s *PropertyService) RecordView(ctx context.Context, id string) error {
	if s == nil {
		return errors.New("property service: service not initialised")
	}
	ctx = ensuredContext(ctx)

	id = strings.TrimSpace(id)
	if id == "" {
		return errors.New("property service: id is required")
	}

	result := s.db.WithContext(ctx).
		Model(&models.Property{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPropertyNotFound
	}
	return nil
}

// CreatePropertyInput captures required fields when creating a listing.
type CreatePropertyInput struct {
	Name             string   `json:"name" validate:"required"`
	ShortDescription string   `json:"short_description"`
	Street           string   `json:"street"`
	City             string   `json:"city" validate:"required"`
	ZipCode          string   `json:"zip_code"`
	Price            float64  `json:"price" validate:"gte=0"`
	Status           string   `json:"status" validate:"omitempty,oneof=available sold rented"`
	CategoryID       string   `json:"category_id"`
	IsFeatured       bool     `json:"is_featured"`
	IsPublished      bool     `json:"is_published"`
	Latitude         *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude        *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
	ContactName      string   `json:"contact_name"`
	ContactPhone     string   `json:"contact_phone"`
	ContactEmail     string   `json:"contact_email" validate:"omitempty,email"`
}

// Create persists a new property listing.
func (s *PropertyService) Create(ctx context.Context, input CreatePropertyInput) (*models.Property, error) {
	if s == nil {
		return nil, errors.New("property service: service not initialised")
	}
	ctx = ensuredContext(ctx)

	if err := validator.ValidateStruct(input); err != nil {
		return nil, err
	}

	property := models.Property{
		Name:             input.Name,
		ShortDescription: strings.TrimSpace(input.ShortDescription),
		Street:           strings.TrimSpace(input.Street),
		City:             input.City,
		ZipCode:          strings.TrimSpace(input.ZipCode),
		Price:            input.Price,
		Status:           input.Status,
		IsFeatured:       input.IsFeatured,
		IsPublished:      input.IsPublished,
		Latitude:         input.Latitude,
		Longitude:        input.Longitude,
		ContactName:      strings.TrimSpace(input.ContactName),
		ContactPhone:     strings.TrimSpace(input.ContactPhone),
		ContactEmail:     strings.TrimSpace(input.ContactEmail),
	}
	property.Normalise()
	if property.Status == "" {
		property.Status = models.PropertyStatusAvailable
	}

	if categoryID := strings.TrimSpace(input.CategoryID); categoryID != "" {
		var category models.Category
		err := s.db.WithContext(ctx).First(&category, "id = ?", categoryID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownCategory, categoryID)
		}
		if err != nil {
			return nil, err
		}
		property.CategoryID = &category.ID
	}

	if err := s.db.WithContext(ctx).Create(&property).Error; err != nil {
		return nil, err
	}
	return &property, nil
}
