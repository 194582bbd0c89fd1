package models

// Category groups properties for charting and filtering (villa, apartment, plot, ...).
type Category struct {
	BaseModel

	Name        string `gorm:"type:varchar(120);uniqueIndex;not null" json:"name"`
	Description string `gorm:"type:text" json:"description,omitempty"`

	Properties []Property `gorm:"foreignKey:CategoryID" json:"properties,omitempty"`
}
