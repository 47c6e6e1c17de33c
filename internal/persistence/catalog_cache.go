package persistence

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sabbebasta/booking-platform/internal/domain"
)

const catalogCacheKey = "catalog:active-services"

// CatalogCache stores the active-service listing in Redis so the public
// catalog endpoint avoids a database round trip between admin mutations.
type CatalogCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCatalogCache builds the cache over an existing Redis handle.
func NewCatalogCache(r *Redis, ttlSeconds int) *CatalogCache {
	if ttlSeconds <= 0 {
		ttlSeconds = 300
	}
	var client *redis.Client
	if r != nil {
		client = r.Client
	}
	return &CatalogCache{client: client, ttl: time.Duration(ttlSeconds) * time.Second}
}

// GetActiveServices returns the cached listing, or (nil, nil) on a miss.
func (c *CatalogCache) GetActiveServices(ctx context.Context) ([]domain.Service, error) {
	if c == nil || c.client == nil {
		return nil, nil
	}
	raw, err := c.client.Get(ctx, catalogCacheKey).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var services []domain.Service
	if err := json.Unmarshal(raw, &services); err != nil {
		return nil, err
	}
	return services, nil
}

// SetActiveServices caches the listing with the configured TTL.
func (c *CatalogCache) SetActiveServices(ctx context.Context, services []domain.Service) error {
	if c == nil || c.client == nil {
		return nil
	}
	raw, err := json.Marshal(services)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, catalogCacheKey, raw, c.ttl).Err()
}

// Invalidate drops the cached listing after an admin mutation.
func (c *CatalogCache) Invalidate(ctx context.Context) error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Del(ctx, catalogCacheKey).Err()
}
