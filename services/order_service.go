package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/geargrid/geargrid-api/cache"
	"github.com/geargrid/geargrid-api/models"
)

// OrderService places manual orders and reads the per-user order ledger.
// Orders are append-only: nothing here updates or deletes one.
type OrderService struct {
	db  *gorm.DB
	now func() time.Time
}

// NewOrderService creates an OrderService backed by the given database
func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db, now: time.Now}
}

// PlaceOrderInput is the input for placing an order directly
type PlaceOrderInput struct {
	ProductID uint
	Quantity  int
	OrderType string // defaults to "manual"
}

// PlaceOrder validates the input, checks stock sufficiency and creates the
// order together with the stock decrement in a single transaction.
func (s *OrderService) PlaceOrder(caller Identity, in PlaceOrderInput) (*models.Order, error) {
	if in.ProductID == 0 || in.Quantity < 1 {
		return nil, &ValidationError{Message: "Please provide productId and a positive quantity"}
	}

	orderType := in.OrderType
	if orderType == "" {
		orderType = models.OrderTypeManual
	}
	if orderType != models.OrderTypeManual && orderType != models.OrderTypeReminder {
		return nil, &ValidationError{Message: "Order type must be manual or reminder"}
	}

	var product models.Product
	if err := s.db.First(&product, in.ProductID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Message: "Product not found"}
		}
		return nil, err
	}

	if product.Stock < in.Quantity {
		return nil, &ValidationError{Message: "Insufficient stock"}
	}

	var order *models.Order
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		order, err = placeOrderTx(tx, caller.UserID, in.ProductID, in.Quantity, orderType, s.now())
		return err
	})
	if err != nil {
		return nil, err
	}

	cache.Products.InvalidateProduct(context.Background(), in.ProductID)

	if err := s.db.Preload("Product").First(order, order.ID).Error; err != nil {
		return nil, err
	}
	return order, nil
}

// ListUserOrders returns the caller's order history, newest first. Strict
// self-access: callers may only read their own ledger.
func (s *OrderService) ListUserOrders(caller Identity, userID uint) ([]models.Order, error) {
	if caller.UserID != userID {
		return nil, &AuthorizationError{Message: "Access denied"}
	}

	var orders []models.Order
	err := s.db.
		Where("user_id = ?", userID).
		Order("order_date DESC").
		Preload("Product").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// placeOrderTx appends an order and decrements product stock inside the given
// transaction. The decrement is guarded by a stock >= quantity predicate so a
// racing writer cannot oversell: zero affected rows means the stock moved
// under us and the whole transaction rolls back.
func placeOrderTx(tx *gorm.DB, userID, productID uint, quantity int, orderType string, now time.Time) (*models.Order, error) {
	order := &models.Order{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
		OrderType: orderType,
		Status:    "ordered",
		OrderDate: now,
	}
	if err := tx.Create(order).Error; err != nil {
		return nil, err
	}

	res := tx.Model(&models.Product{}).
		Where("id = ? AND stock >= ?", productID, quantity).
		UpdateColumn("stock", gorm.Expr("stock - ?", quantity))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, &ValidationError{Message: "Insufficient stock"}
	}

	return order, nil
}
