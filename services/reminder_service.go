package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/geargrid/geargrid-api/cache"
	"github.com/geargrid/geargrid-api/models"
)

// ReminderService implements the restock-reminder engine: reminder creation,
// due-date scheduling, reorder-on-demand and batch automatic ordering.
//
// Every reorder is one logical unit of order creation, stock decrement and
// due-date rollover: the three steps commit together or not at all. The new
// due date is always computed from the stored previous due date, never from
// the execution time, so a late run does not shift future cycles.
type ReminderService struct {
	db  *gorm.DB
	now func() time.Time
}

// NewReminderService creates a ReminderService backed by the given database
func NewReminderService(db *gorm.DB) *ReminderService {
	return &ReminderService{db: db, now: time.Now}
}

// CreateReminderInput is the input for creating a restock reminder
type CreateReminderInput struct {
	ProductID    uint
	Quantity     int
	IntervalDays int
	AutoOrder    bool
}

// CreateReminder validates and persists a new restock reminder for the
// calling mechanic. The first due date is IntervalDays from now.
func (s *ReminderService) CreateReminder(caller Identity, in CreateReminderInput) (*models.RestockReminder, error) {
	if in.ProductID == 0 || in.Quantity < 1 || in.IntervalDays < 1 {
		return nil, &ValidationError{Message: "Please provide productId, quantity, and intervalDays (all positive)"}
	}

	if !caller.IsMechanic() {
		return nil, &AuthorizationError{Message: "Only mechanics can create restock reminders"}
	}

	var product models.Product
	if err := s.db.First(&product, in.ProductID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Message: "Product not found"}
		}
		return nil, err
	}

	reminder := models.RestockReminder{
		UserID:           caller.UserID,
		ProductID:        in.ProductID,
		Quantity:         in.Quantity,
		IntervalDays:     in.IntervalDays,
		NextReminderDate: s.now().AddDate(0, 0, in.IntervalDays),
		IsActive:         true,
		AutoOrder:        in.AutoOrder,
	}
	if err := s.db.Create(&reminder).Error; err != nil {
		return nil, err
	}

	if err := s.db.Preload("Product").First(&reminder, reminder.ID).Error; err != nil {
		return nil, err
	}
	return &reminder, nil
}

// ListUserReminders returns the active reminders owned by userID, soonest-due
// first. The ascending next_reminder_date ordering is part of the contract;
// dashboards rely on it to show urgency. Strict self-access only.
func (s *ReminderService) ListUserReminders(caller Identity, userID uint) ([]models.RestockReminder, error) {
	if caller.UserID != userID {
		return nil, &AuthorizationError{Message: "Access denied"}
	}

	var reminders []models.RestockReminder
	err := s.db.
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("next_reminder_date ASC").
		Preload("Product").
		Find(&reminders).Error
	if err != nil {
		return nil, err
	}
	return reminders, nil
}

// ReorderResult is the outcome of a manual reorder from a reminder
type ReorderResult struct {
	Order            *models.Order `json:"order"`
	NextReminderDate time.Time     `json:"next_reminder_date"`
}

// ReorderFromReminder places an order for the reminder's product and quantity
// on behalf of the owning mechanic and rolls the due date forward by the
// reminder's interval. Available regardless of the AutoOrder flag.
func (s *ReminderService) ReorderFromReminder(caller Identity, reminderID uint) (*ReorderResult, error) {
	if reminderID == 0 {
		return nil, &ValidationError{Message: "Please provide reminderId"}
	}

	var reminder models.RestockReminder
	if err := s.db.First(&reminder, reminderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Message: "Reminder not found"}
		}
		return nil, err
	}

	if !caller.IsMechanic() {
		return nil, &AuthorizationError{Message: "Only mechanics can reorder from reminders"}
	}

	if reminder.UserID != caller.UserID {
		return nil, &AuthorizationError{Message: "Access denied"}
	}

	if !reminder.IsActive {
		return nil, &ValidationError{Message: "Reminder is not active"}
	}

	var product models.Product
	if err := s.db.First(&product, reminder.ProductID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Message: "Product not found"}
		}
		return nil, err
	}

	if product.Stock < reminder.Quantity {
		return nil, &ValidationError{Message: "Insufficient stock"}
	}

	var order *models.Order
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		order, err = placeOrderTx(tx, caller.UserID, reminder.ProductID, reminder.Quantity, models.OrderTypeReminder, s.now())
		if err != nil {
			return err
		}

		reminder.NextReminderDate = reminder.NextReminderDate.AddDate(0, 0, reminder.IntervalDays)
		return tx.Save(&reminder).Error
	})
	if err != nil {
		return nil, err
	}

	cache.Products.InvalidateProduct(context.Background(), reminder.ProductID)

	if err := s.db.Preload("Product").First(order, order.ID).Error; err != nil {
		return nil, err
	}

	return &ReorderResult{Order: order, NextReminderDate: reminder.NextReminderDate}, nil
}

// BatchOrder describes one successful automatic order in a batch run
type BatchOrder struct {
	OrderID          uint      `json:"order_id"`
	ProductName      string    `json:"product_name"`
	Quantity         int       `json:"quantity"`
	UserID           uint      `json:"user_id"`
	NextReminderDate time.Time `json:"next_reminder_date"`
}

// BatchError describes one failed reminder in a batch run
type BatchError struct {
	ReminderID  uint   `json:"reminder_id"`
	ProductName string `json:"product_name,omitempty"`
	Error       string `json:"error"`
}

// BatchResult aggregates a batch run. Every due auto-reminder examined by the
// run yields exactly one entry in Orders or Errors, so for the examined set
// Processed + Failed always equals its size.
type BatchResult struct {
	RunID     string       `json:"run_id"`
	Processed int          `json:"processed"`
	Failed    int          `json:"failed"`
	Orders    []BatchOrder `json:"orders"`
	Errors    []BatchError `json:"errors"`
}

func (r *BatchResult) fail(reminderID uint, productName, reason string) {
	r.Errors = append(r.Errors, BatchError{ReminderID: reminderID, ProductName: productName, Error: reason})
	r.Failed++
}

// ProcessDueReminders runs one batch pass over every active auto-order
// reminder whose due date has arrived. Items are processed sequentially and
// independently: a failed item is recorded and skipped, its due date left
// untouched so it stays due for the next run. The context bounds the run;
// once it is done, remaining items are recorded as failed and the partial
// result is returned.
func (s *ReminderService) ProcessDueReminders(ctx context.Context) (*BatchResult, error) {
	now := s.now()

	var due []models.RestockReminder
	err := s.db.
		Where("is_active = ? AND auto_order = ? AND next_reminder_date <= ?", true, true, now).
		Order("next_reminder_date ASC").
		Find(&due).Error
	if err != nil {
		return nil, err
	}

	result := &BatchResult{
		RunID:  uuid.NewString(),
		Orders: []BatchOrder{},
		Errors: []BatchError{},
	}

	for i := range due {
		if ctx.Err() != nil {
			for _, skipped := range due[i:] {
				result.fail(skipped.ID, "", "run canceled before processing")
			}
			break
		}
		s.processDueReminder(&due[i], now, result)
	}

	return result, nil
}

// processDueReminder attempts the automatic order for one due reminder and
// records exactly one success or failure entry on the result.
func (s *ReminderService) processDueReminder(reminder *models.RestockReminder, now time.Time, result *BatchResult) {
	var product models.Product
	if err := s.db.First(&product, reminder.ProductID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			result.fail(reminder.ID, "", "Product not found")
		} else {
			result.fail(reminder.ID, "", err.Error())
		}
		return
	}

	if product.Stock < reminder.Quantity {
		result.fail(reminder.ID, product.Name,
			fmt.Sprintf("Insufficient stock (Available: %d, Required: %d)", product.Stock, reminder.Quantity))
		return
	}

	var order *models.Order
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		order, err = placeOrderTx(tx, reminder.UserID, reminder.ProductID, reminder.Quantity, models.OrderTypeReminder, now)
		if err != nil {
			return err
		}

		reminder.NextReminderDate = reminder.NextReminderDate.AddDate(0, 0, reminder.IntervalDays)
		lastAuto := now
		reminder.LastAutoOrderDate = &lastAuto
		return tx.Save(reminder).Error
	})
	if err != nil {
		// Rolled back: either a concurrent writer drained the stock between
		// the check and the guarded decrement, or the store faulted. The
		// reminder stays due and is retried on the next run.
		result.fail(reminder.ID, product.Name, err.Error())
		return
	}

	cache.Products.InvalidateProduct(context.Background(), reminder.ProductID)

	result.Orders = append(result.Orders, BatchOrder{
		OrderID:          order.ID,
		ProductName:      product.Name,
		Quantity:         reminder.Quantity,
		UserID:           reminder.UserID,
		NextReminderDate: reminder.NextReminderDate,
	})
	result.Processed++
}
