package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taskboard/taskboard-api/internal/core/domain"
)

const defaultCacheTTL = 30 * time.Minute

// SnapshotCache stores weather snapshots in Redis.
// Key format: weather:<city>
type SnapshotCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSnapshotCache creates a SnapshotCache wrapping the given Redis client.
func NewSnapshotCache(client *redis.Client, ttl time.Duration) *SnapshotCache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &SnapshotCache{client: client, ttl: ttl}
}

// Get returns the cached snapshot for city, reporting a miss when absent.
func (c *SnapshotCache) Get(ctx context.Context, city string) (*domain.WeatherSnapshot, bool, error) {
	raw, err := c.client.Get(ctx, c.key(city)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("weather cache get: %w", err)
	}

	var snap domain.WeatherSnapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		return nil, false, fmt.Errorf("weather cache decode: %w", err)
	}
	return &snap, true, nil
}

// Set records the snapshot for city (expires after the configured TTL).
func (c *SnapshotCache) Set(ctx context.Context, city string, snap *domain.WeatherSnapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("weather cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(city), raw, c.ttl).Err()
}

func (c *SnapshotCache) key(city string) string {
	return fmt.Sprintf("weather:%s", city)
}
