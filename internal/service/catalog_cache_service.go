package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go-doctors-portal/internal/domain/entity"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	// CatalogCacheKey holds the JSON encoded service list.
	CatalogCacheKey = "catalog:services"

	// Timeout for individual Redis operations
	catalogCacheTimeout = 2 * time.Second
)

// CatalogCache keeps the read-mostly service catalog in Redis so /services
// and /available do not hit Postgres on every request. Every failure is
// treated as a miss; the database stays the source of truth.
//
// A CatalogCache built with a nil client is a no-op.
type CatalogCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *logrus.Logger
}

func NewCatalogCache(client *redis.Client, ttl time.Duration, log *logrus.Logger) *CatalogCache {
	return &CatalogCache{client: client, ttl: ttl, log: log}
}

func (c *CatalogCache) Enabled() bool {
	return c != nil && c.client != nil
}

// GetServices reports ok=false on a miss or any Redis error.
func (c *CatalogCache) GetServices(ctx context.Context) ([]entity.Service, bool) {
	if !c.Enabled() {
		return nil, false
	}

	ctx, cancel := context.WithTimeout(ctx, catalogCacheTimeout)
	defer cancel()

	raw, err := c.client.Get(ctx, CatalogCacheKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warnf("Failed to read service catalog from Redis: %+v", err)
		}
		return nil, false
	}

	var services []entity.Service
	if err := json.Unmarshal(raw, &services); err != nil {
		c.log.Warnf("Discarding corrupt service catalog cache entry: %+v", err)
		c.Invalidate(ctx)
		return nil, false
	}

	return services, true
}

func (c *CatalogCache) SetServices(ctx context.Context, services []entity.Service) {
	if !c.Enabled() {
		return
	}

	raw, err := json.Marshal(services)
	if err != nil {
		c.log.Warnf("Failed to encode service catalog: %+v", err)
		return
	}

	ctx, cancel := context.WithTimeout(ctx, catalogCacheTimeout)
	defer cancel()

	if err := c.client.Set(ctx, CatalogCacheKey, raw, c.ttl).Err(); err != nil {
		c.log.Warnf("Failed to write service catalog to Redis: %+v", err)
		return
	}
	c.log.Debugf("Cached %d services for %v", len(services), c.ttl)
}

func (c *CatalogCache) Invalidate(ctx context.Context) {
	if !c.Enabled() {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, catalogCacheTimeout)
	defer cancel()

	if err := c.client.Del(ctx, CatalogCacheKey).Err(); err != nil {
		c.log.Warnf("Failed to invalidate service catalog cache: %+v", err)
	}
}
