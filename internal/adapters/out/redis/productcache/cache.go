// Package productcache provides a Redis-backed read-through cache for product
// aggregates. Queries consult it before the database; commands that change or
// archive a product invalidate its entry so a stale snapshot never outlives
// the next read by more than the TTL.
package productcache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/product"
)

// DefaultTTL bounds staleness for entries whose invalidation was missed.
const DefaultTTL = 5 * time.Minute

// snapshot is the cached wire form of a product aggregate. The price travels
// as its exact decimal string to avoid float drift.
type snapshot struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	SKU           string `json:"sku"`
	Price         string `json:"price"`
	StockQuantity int    `json:"stock_quantity"`
	Category      string `json:"category"`
}

// ProductCache caches product aggregates in Redis under product:<id> keys.
type ProductCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewProductCache creates a cache using the given client and entry TTL.
// A non-positive ttl falls back to DefaultTTL.
func NewProductCache(rdb *redis.Client, ttl time.Duration) *ProductCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &ProductCache{rdb: rdb, ttl: ttl}
}

// Get returns the cached product and true on a hit. A miss is not an error;
// it returns (nil, false, nil).
func (c *ProductCache) Get(ctx context.Context, id int64) (*product.Product, bool, error) {
	val, err := c.rdb.Get(ctx, key(id)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("get cached product: %w", err)
	}

	var snap snapshot
	if err := json.Unmarshal([]byte(val), &snap); err != nil {
		return nil, false, fmt.Errorf("unmarshal cached product: %w", err)
	}

	price, err := kernel.NewMoneyFromString(snap.Price)
	if err != nil {
		return nil, false, err
	}

	p, err := product.RestoreProduct(
		snap.ID, snap.Name, snap.Description, snap.SKU, price, snap.StockQuantity, snap.Category,
	)
	if err != nil {
		return nil, false, err
	}

	return p, true, nil
}

// Set stores a snapshot of the product under its id.
func (c *ProductCache) Set(ctx context.Context, aggregate *product.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	data, err := json.Marshal(snapshot{
		ID:            aggregate.ID(),
		Name:          aggregate.Name(),
		Description:   aggregate.Description(),
		SKU:           aggregate.SKU(),
		Price:         aggregate.Price().String(),
		StockQuantity: aggregate.StockQuantity(),
		Category:      aggregate.Category(),
	})
	if err != nil {
		return fmt.Errorf("marshal cached product: %w", err)
	}

	return c.rdb.Set(ctx, key(aggregate.ID()), data, c.ttl).Err()
}

// Invalidate drops the cached entry for the given product id. Deleting an
// absent key is not an error.
func (c *ProductCache) Invalidate(ctx context.Context, id int64) error {
	return c.rdb.Del(ctx, key(id)).Err()
}

func key(id int64) string {
	return fmt.Sprintf("product:%d", id)
}
