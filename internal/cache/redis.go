package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/alphabot-ai/bloglist/internal/model"

	"github.com/redis/go-redis/v9"
)

const statsKey = "bloglist:stats"

// RedisStats shares the summary between every server instance pointed at
// the same Redis.
type RedisStats struct {
	R   *redis.Client
	ttl time.Duration
}

func NewRedis(addr string, ttl time.Duration) *RedisStats {
	rdb := redis.NewClient(&redis.Options{Addr: addr, DB: 0})
	return &RedisStats{R: rdb, ttl: ttl}
}

func (c *RedisStats) Get(ctx context.Context) (model.BlogStats, bool, error) {
	raw, err := c.R.Get(ctx, statsKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return model.BlogStats{}, false, nil
		}
		return model.BlogStats{}, false, err
	}
	var stats model.BlogStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		return model.BlogStats{}, false, err
	}
	return stats, true, nil
}

func (c *RedisStats) Set(ctx context.Context, stats model.BlogStats) error {
	raw, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	ttl := c.ttl
	if ttl < 0 {
		ttl = 0
	}
	return c.R.Set(ctx, statsKey, raw, ttl).Err()
}

func (c *RedisStats) Invalidate(ctx context.Context) error {
	return c.R.Del(ctx, statsKey).Err()
}

func (c *RedisStats) Ping(ctx context.Context) error {
	return c.R.Ping(ctx).Err()
}

func (c *RedisStats) Close() error {
	return c.R.Close()
}
