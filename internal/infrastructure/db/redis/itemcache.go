package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/coleLenting/theSpotWeb/internal/api/metrics"
	"github.com/coleLenting/theSpotWeb/internal/core/domain"
)

const itemTTL = 5 * time.Minute

// ItemCache provides a read-through cache for single item lookups.
// Key format: item:<id>
type ItemCache struct {
	client *redis.Client
}

// NewItemCache creates an ItemCache wrapping the given Redis client.
func NewItemCache(client *redis.Client) *ItemCache {
	return &ItemCache{client: client}
}

// Get returns the cached item, or (nil, nil) on a miss.
func (c *ItemCache) Get(ctx context.Context, id string) (*domain.Item, error) {
	raw, err := c.client.Get(ctx, c.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.ItemCacheTotal.WithLabelValues("miss").Inc()
			return nil, nil
		}
		return nil, fmt.Errorf("item cache get: %w", err)
	}

	var item domain.Item
	if err := json.Unmarshal(raw, &item); err != nil {
		return nil, fmt.Errorf("item cache decode: %w", err)
	}

	metrics.ItemCacheTotal.WithLabelValues("hit").Inc()
	return &item, nil
}

// Set stores the item with a short TTL.
func (c *ItemCache) Set(ctx context.Context, item *domain.Item) error {
	raw, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("item cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(item.ID), raw, itemTTL).Err()
}

// Invalidate drops the cached entry after an update or delete.
func (c *ItemCache) Invalidate(ctx context.Context, id string) error {
	return c.client.Del(ctx, c.key(id)).Err()
}

func (c *ItemCache) key(id string) string {
	return "item:" + id
}
