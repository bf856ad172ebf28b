package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const availabilityCacheKeyPrefix = "availability"

// AvailabilityCache pins one availability verdict per domain name for a TTL
// window so repeated lookups of the same name agree with each other.
// Key format: "availability:{name}", value "1" (available) or "0" (taken).
type AvailabilityCache struct {
	client *RedisClient
	ttl    time.Duration
}

// NewAvailabilityCache creates an AvailabilityCache with the given TTL.
func NewAvailabilityCache(r *RedisClient, ttl time.Duration) *AvailabilityCache {
	return &AvailabilityCache{client: r, ttl: ttl}
}

// Get returns the cached verdict for name.
// Returns redis.Nil error when the key does not exist or has expired.
func (c *AvailabilityCache) Get(ctx context.Context, name string) (bool, error) {
	val, err := c.client.Client().Get(ctx, c.key(name)).Result()
	if err != nil {
		if err == redis.Nil {
			return false, redis.Nil
		}
		return false, fmt.Errorf("cache get: %w", err)
	}
	return val == "1", nil
}

// GetMany returns the cached verdicts for names in one MGET round trip.
// Names without a cached verdict are absent from the result.
func (c *AvailabilityCache) GetMany(ctx context.Context, names []string) (map[string]bool, error) {
	out := make(map[string]bool, len(names))
	if len(names) == 0 {
		return out, nil
	}
	keys := make([]string, len(names))
	for i, n := range names {
		keys[i] = c.key(n)
	}
	vals, err := c.client.Client().MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("cache mget: %w", err)
	}
	for i, v := range vals {
		s, ok := v.(string)
		if !ok {
			continue
		}
		out[names[i]] = s == "1"
	}
	return out, nil
}

// Set stores a verdict only if none is cached yet, so the first verdict wins
// for the whole TTL window. Returns the verdict that ends up cached.
func (c *AvailabilityCache) Set(ctx context.Context, name string, available bool) (bool, error) {
	key := c.key(name)
	ok, err := c.client.Client().SetNX(ctx, key, encodeVerdict(available), c.ttl).Result()
	if err != nil {
		return available, fmt.Errorf("cache setnx: %w", err)
	}
	if ok {
		return available, nil
	}
	return c.Get(ctx, name)
}

// Overwrite replaces the cached verdict. Used by explicit re-checks.
func (c *AvailabilityCache) Overwrite(ctx context.Context, name string, available bool) error {
	if err := c.client.Client().Set(ctx, c.key(name), encodeVerdict(available), c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// key builds the Redis key: "availability:{name}"
func (c *AvailabilityCache) key(name string) string {
	return fmt.Sprintf("%s:%s", availabilityCacheKeyPrefix, name)
}

func encodeVerdict(available bool) string {
	if available {
		return "1"
	}
	return "0"
}
