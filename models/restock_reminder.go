package models

import (
	"time"
)

// RestockReminder is a recurring restock instruction owned by a mechanic and
// tied to one product. A reminder is "due" when it is active and its
// NextReminderDate has arrived or passed; reminders with AutoOrder set are
// additionally eligible for unattended batch reordering.
type RestockReminder struct {
	ID                uint       `gorm:"primaryKey" json:"id"`
	UserID            uint       `gorm:"not null;index" json:"user_id"` // owning mechanic
	User              User       `gorm:"foreignKey:UserID" json:"-"`
	ProductID         uint       `gorm:"not null;index" json:"product_id"`
	Product           Product    `gorm:"foreignKey:ProductID" json:"product"`
	Quantity          int        `gorm:"not null;check:quantity > 0" json:"quantity"`
	IntervalDays      int        `gorm:"not null;check:interval_days > 0" json:"interval_days"`
	NextReminderDate  time.Time  `gorm:"not null;index" json:"next_reminder_date"`
	IsActive          bool       `gorm:"not null;default:true" json:"is_active"`
	AutoOrder         bool       `gorm:"not null;default:false" json:"auto_order"`
	LastAutoOrderDate *time.Time `json:"last_auto_order_date"` // set only by a successful automatic order
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// TableName specifies the table name for the RestockReminder model
func (RestockReminder) TableName() string {
	return "restock_reminders"
}

// IsDue reports whether the reminder is eligible for reorder at the given time
func (r *RestockReminder) IsDue(now time.Time) bool {
	return r.IsActive && !r.NextReminderDate.After(now)
}
