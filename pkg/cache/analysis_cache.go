package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const analysisCacheKeyPrefix = "analysis"

// CachedAnalysis is the denormalized read model of an owner's latest analysis
// for a domain. Payload is the analysis JSON exactly as served over HTTP.
// Fields are stored as a Redis hash.
type CachedAnalysis struct {
	OwnerID    uuid.UUID       `json:"owner_id"`
	Domain     string          `json:"domain"`
	Payload    json.RawMessage `json:"payload"`
	RecordedAt time.Time       `json:"recorded_at"`
}

// AnalysisCache provides structured read/write operations for analysis cache entries.
// Keys are scoped by owner to prevent cross-session data leakage.
// Key format: "analysis:{ownerID}:{domain}"
type AnalysisCache struct {
	client *RedisClient
	ttl    time.Duration
}

// NewAnalysisCache creates a new AnalysisCache backed by the given RedisClient.
func NewAnalysisCache(r *RedisClient, ttl time.Duration) *AnalysisCache {
	return &AnalysisCache{client: r, ttl: ttl}
}

// Get retrieves a cached analysis by owner + domain.
// Returns redis.Nil error when the key does not exist or has expired.
func (c *AnalysisCache) Get(ctx context.Context, ownerID uuid.UUID, domain string) (*CachedAnalysis, error) {
	vals, err := c.client.Client().HGetAll(ctx, c.key(ownerID, domain)).Result()
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}
	if len(vals) == 0 {
		return nil, redis.Nil // key not found
	}

	oid, err := uuid.Parse(vals["owner_id"])
	if err != nil {
		return nil, fmt.Errorf("cache parse owner_id: %w", err)
	}
	recordedAt, err := time.Parse(time.RFC3339Nano, vals["recorded_at"])
	if err != nil {
		return nil, fmt.Errorf("cache parse recorded_at: %w", err)
	}

	return &CachedAnalysis{
		OwnerID:    oid,
		Domain:     vals["domain"],
		Payload:    json.RawMessage(vals["payload"]),
		RecordedAt: recordedAt,
	}, nil
}

// Set writes a cached analysis as a Redis hash with the configured TTL.
// Uses a pipeline to set all fields and the TTL atomically.
func (c *AnalysisCache) Set(ctx context.Context, a *CachedAnalysis) error {
	key := c.key(a.OwnerID, a.Domain)
	pipe := c.client.Client().Pipeline()
	pipe.HSet(ctx, key,
		"owner_id", a.OwnerID.String(),
		"domain", a.Domain,
		"payload", string(a.Payload),
		"recorded_at", a.RecordedAt.UTC().Format(time.RFC3339Nano),
	)
	pipe.Expire(ctx, key, c.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// DeleteOwner removes every cached analysis for an owner. Used when history is cleared.
func (c *AnalysisCache) DeleteOwner(ctx context.Context, ownerID uuid.UUID) error {
	rdb := c.client.Client()
	iter := rdb.Scan(ctx, 0, fmt.Sprintf("%s:%s:*", analysisCacheKeyPrefix, ownerID), 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("cache scan: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := rdb.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

// key builds the Redis key: "analysis:{ownerID}:{domain}"
func (c *AnalysisCache) key(ownerID uuid.UUID, domain string) string {
	return fmt.Sprintf("%s:%s:%s", analysisCacheKeyPrefix, ownerID, domain)
}
