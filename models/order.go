package models

import (
	"time"
)

// Order origin types
const (
	OrderTypeManual   = "manual"
	OrderTypeReminder = "reminder"
)

// Order represents a placed order. Orders are append-only: once created they
// are never updated or deleted.
type Order struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"` // foreign key to users table
	User      User      `gorm:"foreignKey:UserID" json:"-"`
	ProductID uint      `gorm:"not null;index" json:"product_id"` // foreign key to products table
	Product   Product   `gorm:"foreignKey:ProductID" json:"product"`
	Quantity  int       `gorm:"not null;check:quantity > 0" json:"quantity"`
	OrderType string    `gorm:"not null" json:"order_type"` // "manual" or "reminder"
	Status    string    `gorm:"not null;default:'ordered'" json:"status"`
	OrderDate time.Time `gorm:"not null;index" json:"order_date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for the Order model
func (Order) TableName() string {
	return "orders"
}
