package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/geargrid/geargrid-api/cache"
	"github.com/geargrid/geargrid-api/config"
	"github.com/geargrid/geargrid-api/models"
)

// GetProducts handles GET /api/v1/products - lists the catalog (public)
func GetProducts(c *gin.Context) {
	ctx := c.Request.Context()

	if products, ok := cache.Products.GetAll(ctx); ok {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    products,
		})
		return
	}

	db := config.GetDB()
	var products []models.Product
	if err := db.Order("name ASC").Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to load products",
			},
		})
		return
	}

	cache.Products.SetAll(ctx, products)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    products,
	})
}

// GetProduct handles GET /api/v1/products/:id - returns a single product (public)
func GetProduct(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if product, found := cache.Products.GetProduct(ctx, id); found {
		if product == nil {
			// cached notfound tombstone
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "NOT_FOUND",
					"message": "Product not found",
				},
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    product,
		})
		return
	}

	db := config.GetDB()
	var product models.Product
	if err := db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			cache.Products.SetProductNotFound(ctx, id)
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "NOT_FOUND",
					"message": "Product not found",
				},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to load product",
			},
		})
		return
	}

	cache.Products.SetProduct(ctx, &product)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    product,
	})
}
