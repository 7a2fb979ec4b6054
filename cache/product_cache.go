package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/geargrid/geargrid-api/models"
)

// Products is the shared product cache. It is nil until Setup is called with
// a Redis URL; every method is safe to call on a nil cache, so callers never
// need to check whether caching is enabled.
var Products *ProductCache

const (
	productTTL  = 5 * time.Minute
	notFoundTTL = 1 * time.Minute

	allProductsKey = "products:all"
	notFoundValue  = "notfound"
)

// ProductCache is a read-through Redis cache for the product catalog. Redis
// failures are logged and treated as misses so the database stays the source
// of truth.
type ProductCache struct {
	client *redis.Client
}

// Setup connects the shared product cache to Redis. An empty URL leaves
// caching disabled.
func Setup(redisURL string) error {
	if redisURL == "" {
		log.Println("REDIS_URL not set, product cache disabled")
		return nil
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return fmt.Errorf("invalid REDIS_URL: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(context.Background()).Err(); err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}

	Products = &ProductCache{client: client}
	log.Println("Product cache connected to Redis")
	return nil
}

func productKey(id uint) string {
	return fmt.Sprintf("product:%d", id)
}

// GetProduct returns the cached product and whether it was found. The second
// return is false on a miss; a cached "notfound" tombstone yields (nil, true).
func (c *ProductCache) GetProduct(ctx context.Context, id uint) (*models.Product, bool) {
	if c == nil {
		return nil, false
	}

	data, err := c.client.Get(ctx, productKey(id)).Bytes()
	switch {
	case err == nil:
		if string(data) == notFoundValue {
			return nil, true
		}

		var product models.Product
		if err := json.Unmarshal(data, &product); err != nil {
			log.Printf("Failed to unmarshal cached product (continuing with DB): %v", err)
			return nil, false
		}
		return &product, true

	case errors.Is(err, redis.Nil):
		return nil, false

	default:
		log.Printf("Redis error (continuing with DB): %v", err)
		return nil, false
	}
}

// SetProduct stores a product under its ID key
func (c *ProductCache) SetProduct(ctx context.Context, product *models.Product) {
	if c == nil {
		return
	}

	data, err := json.Marshal(product)
	if err != nil {
		log.Printf("Failed to marshal product: %v", err)
		return
	}

	if err := c.client.Set(ctx, productKey(product.ID), data, productTTL).Err(); err != nil {
		log.Printf("Failed to cache product: %v", err)
	}
}

// SetProductNotFound stores a short-lived tombstone for a missing product ID
func (c *ProductCache) SetProductNotFound(ctx context.Context, id uint) {
	if c == nil {
		return
	}

	if err := c.client.Set(ctx, productKey(id), notFoundValue, notFoundTTL).Err(); err != nil {
		log.Printf("Failed to cache notfound: %v", err)
	}
}

// GetAll returns the cached catalog listing and whether it was found
func (c *ProductCache) GetAll(ctx context.Context) ([]models.Product, bool) {
	if c == nil {
		return nil, false
	}

	data, err := c.client.Get(ctx, allProductsKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("Redis error (continuing with DB): %v", err)
		}
		return nil, false
	}

	var products []models.Product
	if err := json.Unmarshal(data, &products); err != nil {
		log.Printf("Failed to unmarshal cached products (continuing with DB): %v", err)
		return nil, false
	}
	return products, true
}

// SetAll stores the full catalog listing
func (c *ProductCache) SetAll(ctx context.Context, products []models.Product) {
	if c == nil {
		return
	}

	data, err := json.Marshal(products)
	if err != nil {
		log.Printf("Failed to marshal products: %v", err)
		return
	}

	if err := c.client.Set(ctx, allProductsKey, data, productTTL).Err(); err != nil {
		log.Printf("Failed to cache products: %v", err)
	}
}

// InvalidateProduct drops the cached entry for a product and the catalog
// listing. Called after any stock mutation.
func (c *ProductCache) InvalidateProduct(ctx context.Context, id uint) {
	if c == nil {
		return
	}

	if err := c.client.Del(ctx, productKey(id)).Err(); err != nil {
		log.Printf("Failed to delete product cache %s: %v", productKey(id), err)
	}
	if err := c.client.Del(ctx, allProductsKey).Err(); err != nil {
		log.Printf("Failed to delete %s cache: %v", allProductsKey, err)
	}
}
