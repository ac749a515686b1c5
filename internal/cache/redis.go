package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/oggyb/golf-buddy/internal/config"
	"github.com/redis/go-redis/v9"
)

const coursesKey = "courses:all"

type RedisCache struct {
	Client *redis.Client
	ttl    time.Duration
}

// NewRedisCache initializes Redis client from config.
// Only Addr is mandatory, Password/DB are optional.
func NewRedisCache(cfg *config.Config) *RedisCache {
	opts := &redis.Options{
		Addr: cfg.Redis.Addr,
	}
	if cfg.Redis.Password != "" {
		opts.Password = cfg.Redis.Password
	}
	if cfg.Redis.DB != 0 {
		opts.DB = cfg.Redis.DB
	}
	ttl := cfg.Cache.TTL
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &RedisCache{Client: redis.NewClient(opts), ttl: ttl}
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.Client.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	return c.Client.Close()
}

// KeyForPendingCount generates Redis key for a user's incoming pending buddy requests.
func (c *RedisCache) KeyForPendingCount(userID uint64) string {
	return fmt.Sprintf("buddy:pending:count:%d", userID)
}

// GetPendingCount returns the cached count; ok is false on a cache miss.
// A hit refreshes the TTL since the user is active.
func (c *RedisCache) GetPendingCount(ctx context.Context, userID uint64) (count int64, ok bool, err error) {
	key := c.KeyForPendingCount(userID)
	val, err := c.Client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	} else if err != nil {
		return 0, false, err
	}
	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false, nil
	}
	_ = c.Client.Expire(ctx, key, c.ttl).Err()
	return n, true, nil
}

func (c *RedisCache) SetPendingCount(ctx context.Context, userID uint64, count int64) error {
	return c.Client.Set(ctx, c.KeyForPendingCount(userID), count, c.ttl).Err()
}

// InvalidatePendingCount drops the cached count so the next read recounts.
func (c *RedisCache) InvalidatePendingCount(ctx context.Context, userID uint64) error {
	return c.Client.Del(ctx, c.KeyForPendingCount(userID)).Err()
}

// GetJSON decodes a cached JSON value into dst; ok is false on a miss.
func (c *RedisCache) GetJSON(ctx context.Context, key string, dst any) (ok bool, err error) {
	raw, err := c.Client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	} else if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		// corrupt entry: treat as a miss and let the caller overwrite it
		return false, nil
	}
	return true, nil
}

func (c *RedisCache) SetJSON(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value: %w", err)
	}
	return c.Client.Set(ctx, key, raw, c.ttl).Err()
}

// CoursesKey is the key holding the full course list.
func (c *RedisCache) CoursesKey() string { return coursesKey }

func (c *RedisCache) InvalidateCourses(ctx context.Context) error {
	return c.Client.Del(ctx, coursesKey).Err()
}
