package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/geargrid/geargrid-api/config"
	"github.com/geargrid/geargrid-api/models"
)

func setupControllerTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Product{}, &models.Order{}, &models.RestockReminder{}); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	config.SetDB(db)
	config.SetConfig(&config.Config{
		DatabaseURL: "sqlite::memory:",
		JWTSecret:   "test-secret",
		GoEnv:       "test",
	})
	return db
}

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

// mockAuthMiddleware simulates RequireAuth for testing: it loads the given
// user onto the context exactly as the real middleware does.
func mockAuthMiddleware(user *models.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", user.ID)
		c.Set("current_user", user)
		c.Next()
	}
}

func seedUser(t *testing.T, db *gorm.DB, name, role string) *models.User {
	t.Helper()

	user := &models.User{Name: name, Email: name + "@example.com", Role: role}
	if err := user.SetPassword("secret123"); err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	return user
}

func seedProduct(t *testing.T, db *gorm.DB, name string, stock int) *models.Product {
	t.Helper()

	product := &models.Product{
		Name:          name,
		Description:   "test part",
		Image:         "https://example.com/part.jpg",
		Category:      "Engine",
		Brand:         "Denso",
		RetailPrice:   49.99,
		MechanicPrice: 34.99,
		Stock:         stock,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("Failed to create test product: %v", err)
	}
	return product
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("Failed to encode request body: %v", err)
		}
	}

	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func parseResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var response map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Response should be valid JSON: %v", err)
	}
	return response
}

func TestRegister(t *testing.T) {
	db := setupControllerTestDB(t)
	seedUser(t, db, "existing", models.RoleCustomer)

	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		expectedStatus int
		expectedError  string
		checkResponse  func(t *testing.T, response map[string]interface{})
	}{
		{
			name: "register customer by default",
			requestBody: map[string]interface{}{
				"name":     "New Customer",
				"email":    "new.customer@example.com",
				"password": "secret123",
			},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, response map[string]interface{}) {
				assert.True(t, response["success"].(bool))
				data := response["data"].(map[string]interface{})
				user := data["user"].(map[string]interface{})
				assert.Equal(t, "customer", user["role"])
				assert.Equal(t, "new.customer@example.com", user["email"])
				assert.NotEmpty(t, data["token"])
				assert.NotContains(t, user, "password_hash")
			},
		},
		{
			name: "register mechanic",
			requestBody: map[string]interface{}{
				"name":     "New Mechanic",
				"email":    "new.mechanic@example.com",
				"password": "secret123",
				"role":     "mechanic",
			},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, response map[string]interface{}) {
				data := response["data"].(map[string]interface{})
				user := data["user"].(map[string]interface{})
				assert.Equal(t, "mechanic", user["role"])
			},
		},
		{
			name: "reject unknown role",
			requestBody: map[string]interface{}{
				"name":     "Admin Wannabe",
				"email":    "admin@example.com",
				"password": "secret123",
				"role":     "admin",
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "VALIDATION_ERROR",
		},
		{
			name: "reject short password",
			requestBody: map[string]interface{}{
				"name":     "Short",
				"email":    "short@example.com",
				"password": "abc",
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "VALIDATION_ERROR",
		},
		{
			name: "reject duplicate email",
			requestBody: map[string]interface{}{
				"name":     "Existing",
				"email":    "existing@example.com",
				"password": "secret123",
			},
			expectedStatus: http.StatusConflict,
			expectedError:  "USER_EXISTS",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupTestRouter()
			router.POST("/auth/register", Register)

			w := doJSON(t, router, http.MethodPost, "/auth/register", tt.requestBody)
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
}

func TestLogin(t *testing.T) {
	db := setupControllerTestDB(t)
	seedUser(t, db, "mechanic", models.RoleMechanic)

	router := setupTestRouter()
	router.POST("/auth/login", Login)

	t.Run("valid credentials", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/auth/login", map[string]interface{}{
			"email":    "mechanic@example.com",
			"password": "secret123",
		})
		require.Equal(t, http.StatusOK, w.Code)

		response := parseResponse(t, w)
		assert.True(t, response["success"].(bool))
		data := response["data"].(map[string]interface{})
		assert.NotEmpty(t, data["token"])

		// Session cookie is set
		cookies := w.Result().Cookies()
		found := false
		for _, cookie := range cookies {
			if cookie.Name == "token" && cookie.Value != "" {
				found = true
			}
		}
		assert.True(t, found, "token cookie should be set")
	})

	t.Run("wrong password", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/auth/login", map[string]interface{}{
			"email":    "mechanic@example.com",
			"password": "wrong-password",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		response := parseResponse(t, w)
		errorData := response["error"].(map[string]interface{})
		assert.Equal(t, "INVALID_CREDENTIALS", errorData["code"])
	})

	t.Run("unknown email", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/auth/login", map[string]interface{}{
			"email":    "nobody@example.com",
			"password": "secret123",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestMe(t *testing.T) {
	db := setupControllerTestDB(t)
	mechanic := seedUser(t, db, "mechanic", models.RoleMechanic)

	router := setupTestRouter()
	router.GET("/auth/me", mockAuthMiddleware(mechanic), Me)

	w := doJSON(t, router, http.MethodGet, "/auth/me", nil)
	require.Equal(t, http.StatusOK, w.Code)

	response := parseResponse(t, w)
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "mechanic@example.com", data["email"])
	assert.Equal(t, "mechanic", data["role"])
}

func TestLogout(t *testing.T) {
	db := setupControllerTestDB(t)
	customer := seedUser(t, db, "customer", models.RoleCustomer)

	router := setupTestRouter()
	router.POST("/auth/logout", mockAuthMiddleware(customer), Logout)

	w := doJSON(t, router, http.MethodPost, "/auth/logout", nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Cookie is cleared
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == "token" {
			assert.Empty(t, cookie.Value)
			assert.Negative(t, cookie.MaxAge)
		}
	}
}
