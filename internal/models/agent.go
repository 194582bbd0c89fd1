package models

// Agent describes a real-estate agent ranked on the dashboard by closed deals.
type Agent struct {
	BaseModel

	Name  string `gorm:"type:varchar(120);not null" json:"name"`
	Email string `gorm:"type:varchar(200)" json:"email,omitempty"`
	Phone string `gorm:"type:varchar(40)" json:"phone,omitempty"`

	TotalDeals          int     `gorm:"default:0" json:"total_deals"`
	TotalSalesVolume    float64 `gorm:"default:0" json:"total_sales_volume"`
	ActivePropertyCount int     `gorm:"default:0" json:"active_property_count"`

	IsActive bool `gorm:"default:true;index" json:"is_active"`
}
