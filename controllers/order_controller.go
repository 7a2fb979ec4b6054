package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/geargrid/geargrid-api/config"
	"github.com/geargrid/geargrid-api/middleware"
	"github.com/geargrid/geargrid-api/services"
)

// CreateOrderRequest represents the request body for placing an order
type CreateOrderRequest struct {
	ProductID uint   `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
	OrderType string `json:"order_type" binding:"omitempty,oneof=manual reminder"`
}

// CreateOrder handles POST /api/v1/orders - places an order for the
// authenticated user and decrements product stock
func CreateOrder(c *gin.Context) {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		respondUnauthorized(c)
		return
	}

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Please provide product_id and quantity",
				"details": err.Error(),
			},
		})
		return
	}

	svc := services.NewOrderService(config.GetDB())
	order, err := svc.PlaceOrder(services.IdentityOf(user), services.PlaceOrderInput{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		OrderType: req.OrderType,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    order,
	})
}

// GetUserOrders handles GET /api/v1/orders/user/:userId - returns a user's
// order history, newest first (strict self-access)
func GetUserOrders(c *gin.Context) {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		respondUnauthorized(c)
		return
	}

	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	svc := services.NewOrderService(config.GetDB())
	orders, err := svc.ListUserOrders(services.IdentityOf(user), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    orders,
	})
}
