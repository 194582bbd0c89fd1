package database

import (
	"gorm.io/gorm"

	"github.com/estateview/estateview/internal/models"
)

// AutoMigrate creates or updates the database schema for all models.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Category{},
		&models.Property{},
		&models.Agent{},
		&models.Registration{},
		&models.ContentCacheEntry{},
	)
}

// SeedData populates the default property categories.
func SeedData(db *gorm.DB) error {
	categories := []models.Category{
		{
			BaseModel:   models.BaseModel{ID: "apartment"},
			Name:        "Apartment",
			Description: "Flats and apartment units",
		},
		{
			BaseModel:   models.BaseModel{ID: "villa"},
			Name:        "Villa",
			Description: "Independent villas and bungalows",
		},
		{
			BaseModel:   models.BaseModel{ID: "plot"},
			Name:        "Plot",
			Description: "Residential and commercial plots",
		},
		{
			BaseModel:   models.BaseModel{ID: "commercial"},
			Name:        "Commercial",
			Description: "Offices, shops and warehouses",
		},
	}

	for _, category := range categories {
		if err := db.Where(models.Category{BaseModel: models.BaseModel{ID: category.ID}}).
			Attrs(category).
			FirstOrCreate(&models.Category{}).Error; err != nil {
			return err
		}
	}

	return nil
}
