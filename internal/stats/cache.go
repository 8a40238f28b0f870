package stats

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	cacheKey        = "interview:stats"
	defaultCacheTTL = 30 * time.Second
)

// Cache stores the last computed Stats in Redis.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

var _ StatsCache = (*Cache)(nil)

func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &Cache{client: client, ttl: ttl}
}

// Get returns nil, nil on a miss.
func (c *Cache) Get(ctx context.Context) (*Stats, error) {
	data, err := c.client.Get(ctx, cacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	var s Stats
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *Cache) Set(ctx context.Context, s Stats) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, cacheKey, data, c.ttl).Err()
}

func (c *Cache) Delete(ctx context.Context) error {
	return c.client.Del(ctx, cacheKey).Err()
}
