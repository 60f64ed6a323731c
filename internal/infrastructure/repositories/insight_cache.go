package repositories

import (
	"context"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/balamt/bagmytrip/domain"
)

// InsightCacheImpl implements domain.InsightCache using Redis.
// Destination insights are stable over hours, and each generation call
// is a paid upstream round trip, so they are cached with a TTL.
type InsightCacheImpl struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewInsightCache creates a new insight cache
func NewInsightCache(client *redis.Client, ttl time.Duration) domain.InsightCache {
	return &InsightCacheImpl{
		client: client,
		prefix: "insights:",
		ttl:    ttl,
	}
}

func (c *InsightCacheImpl) key(destination string) string {
	return c.prefix + strings.ToLower(strings.TrimSpace(destination))
}

// Get implements domain.InsightCache
func (c *InsightCacheImpl) Get(ctx context.Context, destination string) (string, error) {
	data, err := c.client.Get(ctx, c.key(destination)).Result()
	if err != nil {
		if err == redis.Nil {
			return "", domain.ErrCacheMiss
		}
		return "", err
	}
	return data, nil
}

// Set implements domain.InsightCache
func (c *InsightCacheImpl) Set(ctx context.Context, destination, insights string) error {
	return c.client.Set(ctx, c.key(destination), insights, c.ttl).Err()
}
