package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ReportCache keeps serialized report payloads in Redis for a short TTL.
// Reports are read-only aggregates over seed data, so a cached copy can only
// go stale for at most the TTL after a reseed.
type ReportCache struct {
	redis *RedisClient
	ttl   time.Duration
}

// NewReportCache creates a ReportCache with the given entry TTL.
func NewReportCache(redis *RedisClient, ttl time.Duration) *ReportCache {
	return &ReportCache{redis: redis, ttl: ttl}
}

// key namespaces report entries by report name and its parameters.
func (c *ReportCache) key(report string, params ...any) string {
	k := "report:" + report
	for _, p := range params {
		k += fmt.Sprintf(":%v", p)
	}
	return k
}

// Get returns the cached payload for a report, or ok=false on a miss.
// Redis errors are reported so the caller can log and fall through to the store.
func (c *ReportCache) Get(ctx context.Context, report string, params ...any) ([]byte, bool, error) {
	v, err := c.redis.Get(ctx, c.key(report, params...))
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(v), true, nil
}

// Set stores a serialized report payload.
func (c *ReportCache) Set(ctx context.Context, payload []byte, report string, params ...any) error {
	return c.redis.Set(ctx, c.key(report, params...), string(payload), c.ttl)
}
