package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/geargrid/geargrid-api/config"
	"github.com/geargrid/geargrid-api/middleware"
	"github.com/geargrid/geargrid-api/services"
)

// CreateReminderRequest represents the request body for creating a restock reminder
type CreateReminderRequest struct {
	ProductID    uint `json:"product_id" binding:"required"`
	Quantity     int  `json:"quantity" binding:"required,gt=0"`
	IntervalDays int  `json:"interval_days" binding:"required,gt=0"`
	AutoOrder    bool `json:"auto_order"`
}

// ReorderRequest represents the request body for reordering from a reminder
type ReorderRequest struct {
	ReminderID uint `json:"reminder_id" binding:"required"`
}

// CreateReminder handles POST /api/v1/reminders - creates a restock reminder (mechanics only)
func CreateReminder(c *gin.Context) {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		respondUnauthorized(c)
		return
	}

	var req CreateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Please provide product_id, quantity, and interval_days",
				"details": err.Error(),
			},
		})
		return
	}

	svc := services.NewReminderService(config.GetDB())
	reminder, err := svc.CreateReminder(services.IdentityOf(user), services.CreateReminderInput{
		ProductID:    req.ProductID,
		Quantity:     req.Quantity,
		IntervalDays: req.IntervalDays,
		AutoOrder:    req.AutoOrder,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    reminder,
	})
}

// GetUserReminders handles GET /api/v1/reminders/user/:userId - lists a user's
// active reminders, soonest-due first
func GetUserReminders(c *gin.Context) {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		respondUnauthorized(c)
		return
	}

	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	svc := services.NewReminderService(config.GetDB())
	reminders, err := svc.ListUserReminders(services.IdentityOf(user), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    reminders,
	})
}

// ReorderFromReminder handles POST /api/v1/reminders/reorder - places an order
// from a reminder and advances its due date (mechanics only)
func ReorderFromReminder(c *gin.Context) {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		respondUnauthorized(c)
		return
	}

	var req ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Please provide reminder_id",
				"details": err.Error(),
			},
		})
		return
	}

	svc := services.NewReminderService(config.GetDB())
	result, err := svc.ReorderFromReminder(services.IdentityOf(user), req.ReminderID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Order created successfully from reminder",
		"data": gin.H{
			"order":              result.Order,
			"next_reminder_date": result.NextReminderDate,
		},
	})
}

// ProcessAutoOrders handles POST /api/v1/reminders/process-auto-orders - runs
// one batch pass over all due auto-order reminders. Intended to be invoked by
// an external scheduler or an operator; there is no internal timer.
func ProcessAutoOrders(c *gin.Context) {
	if _, err := middleware.CurrentUser(c); err != nil {
		respondUnauthorized(c)
		return
	}

	svc := services.NewReminderService(config.GetDB())
	result, err := svc.ProcessDueReminders(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("Processed %d automatic orders", result.Processed),
		"data":    result,
	})
}
