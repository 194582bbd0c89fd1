package models

import (
	"strings"

	"gorm.io/datatypes"
)

// Property status values.
const (
	PropertyStatusAvailable = "available"
	PropertyStatusSold      = "sold"
	PropertyStatusRented    = "rented"
)

// Property represents a single listing shown on the portal map and dashboard.
type Property struct {
	BaseModel

	Name             string  `gorm:"type:varchar(200);not null" json:"name"`
	ShortDescription string  `gorm:"type:text" json:"short_description,omitempty"`
	Street           string  `gorm:"type:varchar(200)" json:"street,omitempty"`
	City             string  `gorm:"type:varchar(120);index" json:"city"`
	ZipCode          string  `gorm:"type:varchar(20)" json:"zip_code,omitempty"`
	Price            float64 `gorm:"not null;default:0" json:"price"`
	Status           string  `gorm:"type:varchar(20);not null;default:available;index" json:"status"`

	CategoryID *string   `gorm:"type:uuid;index" json:"category_id,omitempty"`
	Category   *Category `json:"category,omitempty"`

	IsFeatured  bool `gorm:"default:false;index" json:"is_featured"`
	IsPublished bool `gorm:"default:false;index" json:"is_published"`

	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`

	ContactName  string `gorm:"type:varchar(120)" json:"contact_name,omitempty"`
	ContactPhone string `gorm:"type:varchar(40)" json:"contact_phone,omitempty"`
	ContactEmail string `gorm:"type:varchar(200)" json:"contact_email,omitempty"`

	NearbyLandmarks string         `gorm:"type:text" json:"nearby_landmarks,omitempty"`
	Amenities       datatypes.JSON `json:"amenities,omitempty"`

	Views    int    `gorm:"default:0" json:"views"`
	SEOTitle string `gorm:"type:varchar(200)" json:"seo_title,omitempty"`
}

// Normalise trims identity fields and lower-cases the status value.
func (p *Property) Normalise() {
	p.Name = strings.TrimSpace(p.Name)
	p.City = strings.TrimSpace(p.City)
	p.Status = strings.ToLower(strings.TrimSpace(p.Status))
}

// Mappable reports whether the property carries coordinates for map display.
func (p *Property) Mappable() bool {
	return p.Latitude != nil && p.Longitude != nil
}
