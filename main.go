package main

import (
	"flag"
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/geargrid/geargrid-api/cache"
	"github.com/geargrid/geargrid-api/config"
	"github.com/geargrid/geargrid-api/controllers"
	"github.com/geargrid/geargrid-api/data"
	"github.com/geargrid/geargrid-api/middleware"
	"github.com/geargrid/geargrid-api/models"
)

func main() {
	seed := flag.Bool("seed", false, "seed the product catalog and exit")
	clearOrders := flag.Bool("clear-orders", false, "clear the order ledger and exit")
	flag.Parse()

	// Basic logging
	log.Println("Starting GearGrid API server...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database models
	db := config.GetDB()
	if err := db.AutoMigrate(&models.User{}, &models.Product{}, &models.Order{}, &models.RestockReminder{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed successfully")

	// One-shot maintenance modes
	if *seed {
		if err := data.SeedProducts(db); err != nil {
			log.Fatalf("Failed to seed products: %v", err)
		}
		log.Printf("Successfully seeded %d products", len(data.Products))
		return
	}
	if *clearOrders {
		if err := data.ClearOrders(db); err != nil {
			log.Fatalf("Failed to clear orders: %v", err)
		}
		log.Println("Successfully cleared orders")
		return
	}

	// Connect the optional product cache
	if err := cache.Setup(cfg.RedisURL); err != nil {
		log.Fatalf("Failed to set up product cache: %v", err)
	}

	router := setupRouter(cfg)

	// Start server
	addr := ":" + cfg.Port
	log.Printf("Server is running on http://localhost%s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// setupRouter wires middleware and routes onto a Gin engine
func setupRouter(cfg *config.Config) *gin.Engine {
	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.CORSOrigin}
	corsConfig.AllowCredentials = true
	router.Use(cors.New(corsConfig))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Health check endpoint
		v1.GET("/health", healthCheck)

		// Database status endpoint
		v1.GET("/database/status", databaseStatus)

		// Public catalog
		v1.GET("/products", controllers.GetProducts)
		v1.GET("/products/:id", controllers.GetProduct)

		// Authentication
		auth := v1.Group("/auth")
		{
			auth.POST("/register", controllers.Register)
			auth.POST("/login", controllers.Login)
			auth.GET("/me", middleware.RequireAuth(cfg), controllers.Me)
			auth.POST("/logout", middleware.RequireAuth(cfg), controllers.Logout)
		}

		// Authenticated routes
		authed := v1.Group("", middleware.RequireAuth(cfg))
		{
			authed.POST("/orders", controllers.CreateOrder)
			authed.GET("/orders/user/:userId", controllers.GetUserOrders)

			authed.POST("/reminders", controllers.CreateReminder)
			authed.GET("/reminders/user/:userId", controllers.GetUserReminders)
			authed.POST("/reminders/reorder", controllers.ReorderFromReminder)
			authed.POST("/reminders/process-auto-orders", controllers.ProcessAutoOrders)
		}
	}

	return router
}

// healthCheck handles the health check endpoint
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "GearGrid API is running",
	})
}

// databaseStatus checks database connectivity and returns table information
func databaseStatus(c *gin.Context) {
	db := config.GetDB()

	// Get the underlying SQL database to check connection
	sqlDB, err := db.DB()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to get database instance",
			},
		})
		return
	}

	// Ping the database to verify connection
	if err := sqlDB.Ping(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_CONNECTION_ERROR",
				"message": "Database connection failed",
			},
		})
		return
	}

	// Get list of tables
	var tables []string
	if err := db.Raw("SELECT tablename FROM pg_tables WHERE schemaname = 'public'").Scan(&tables).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_QUERY_ERROR",
				"message": "Failed to query tables",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Database connected",
		"tables":  tables,
	})
}
