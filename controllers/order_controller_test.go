package controllers

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geargrid/geargrid-api/models"
)

func TestCreateOrder(t *testing.T) {
	db := setupControllerTestDB(t)
	customer := seedUser(t, db, "customer", models.RoleCustomer)
	product := seedProduct(t, db, "Castrol 5W-30 Engine Oil (4L)", 150)

	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		expectedStatus int
		expectedError  string
		checkResponse  func(t *testing.T, response map[string]interface{})
	}{
		{
			name: "successfully place order",
			requestBody: map[string]interface{}{
				"product_id": product.ID,
				"quantity":   3,
			},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, response map[string]interface{}) {
				assert.True(t, response["success"].(bool))
				data := response["data"].(map[string]interface{})
				assert.Equal(t, "manual", data["order_type"])
				assert.Equal(t, "ordered", data["status"])
				assert.Equal(t, float64(3), data["quantity"])
				assert.Equal(t, float64(customer.ID), data["user_id"])

				productData := data["product"].(map[string]interface{})
				assert.Equal(t, product.Name, productData["name"])
			},
		},
		{
			name: "fail with missing quantity",
			requestBody: map[string]interface{}{
				"product_id": product.ID,
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "VALIDATION_ERROR",
		},
		{
			name: "fail with negative quantity",
			requestBody: map[string]interface{}{
				"product_id": product.ID,
				"quantity":   -1,
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "VALIDATION_ERROR",
		},
		{
			name: "fail with unknown product",
			requestBody: map[string]interface{}{
				"product_id": 9999,
				"quantity":   1,
			},
			expectedStatus: http.StatusNotFound,
			expectedError:  "NOT_FOUND",
		},
		{
			name: "fail with insufficient stock",
			requestBody: map[string]interface{}{
				"product_id": product.ID,
				"quantity":   100000,
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "VALIDATION_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupTestRouter()
			router.POST("/orders", mockAuthMiddleware(customer), CreateOrder)

			w := doJSON(t, router, http.MethodPost, "/orders", tt.requestBody)
			assert.Equal(t, tt.expectedStatus, w.Code)

			response := parseResponse(t, w)
			if tt.expectedError != "" {
				assert.False(t, response["success"].(bool))
				errorData := response["error"].(map[string]interface{})
				assert.Equal(t, tt.expectedError, errorData["code"])
			}
			if tt.checkResponse != nil {
				tt.checkResponse(t, response)
			}
		})
	}

	t.Run("stock reflects the one successful order", func(t *testing.T) {
		var freshProduct models.Product
		require.NoError(t, db.First(&freshProduct, product.ID).Error)
		assert.Equal(t, 147, freshProduct.Stock)
	})
}

func TestGetUserOrders(t *testing.T) {
	db := setupControllerTestDB(t)
	customer := seedUser(t, db, "customer", models.RoleCustomer)
	other := seedUser(t, db, "other", models.RoleCustomer)
	product := seedProduct(t, db, "NGK Iridium Spark Plug Set", 110)

	base := time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 2; i++ {
		order := &models.Order{
			UserID: customer.ID, ProductID: product.ID,
			Quantity: 1, OrderType: models.OrderTypeManual,
			Status: "ordered", OrderDate: base.AddDate(0, 0, i),
		}
		require.NoError(t, db.Create(order).Error)
	}

	path := fmt.Sprintf("/orders/user/%d", customer.ID)

	t.Run("returns own order history newest first", func(t *testing.T) {
		router := setupTestRouter()
		router.GET("/orders/user/:userId", mockAuthMiddleware(customer), GetUserOrders)

		w := doJSON(t, router, http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, w.Code)

		response := parseResponse(t, w)
		data := response["data"].([]interface{})
		require.Len(t, data, 2)

		first, err := time.Parse(time.RFC3339, data[0].(map[string]interface{})["order_date"].(string))
		require.NoError(t, err)
		second, err := time.Parse(time.RFC3339, data[1].(map[string]interface{})["order_date"].(string))
		require.NoError(t, err)
		assert.True(t, first.After(second))
	})

	t.Run("denies access to another user's history", func(t *testing.T) {
		router := setupTestRouter()
		router.GET("/orders/user/:userId", mockAuthMiddleware(other), GetUserOrders)

		w := doJSON(t, router, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
