package models

import (
	"time"

	"gorm.io/gorm"
)

// Product represents an auto part in the catalog
type Product struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	Name          string         `gorm:"not null" json:"name"`
	Description   string         `gorm:"type:text;not null" json:"description"`
	Image         string         `gorm:"not null" json:"image"` // external image URL
	Category      string         `gorm:"not null;index" json:"category"`
	Brand         string         `json:"brand"`
	RetailPrice   float64        `gorm:"not null;check:retail_price >= 0" json:"retail_price"`
	MechanicPrice float64        `gorm:"not null;check:mechanic_price >= 0" json:"mechanic_price"`
	Stock         int            `gorm:"not null;default:0;check:stock >= 0" json:"stock"`
	Compatibility []string       `gorm:"serializer:json" json:"compatibility"` // vehicle makes this part fits
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the Product model
func (Product) TableName() string {
	return "products"
}
