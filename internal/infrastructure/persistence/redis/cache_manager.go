package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/praxisgrc/praxis/pkg/logger"
)

// CacheManager is the generic JSON cache over Redis. A miss is reported
// through the found flag, not an error.
type CacheManager interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

type cacheManagerImpl struct {
	conn *RedisConnection
	log  logger.Logger
}

// NewCacheManager creates the Redis-backed cache manager.
func NewCacheManager(conn *RedisConnection, log logger.Logger) CacheManager {
	return &cacheManagerImpl{
		conn: conn,
		log:  log.WithComponent("cache_manager"),
	}
}

func (c *cacheManagerImpl) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	val, err := c.conn.Client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, err
	}

	if err := json.Unmarshal(val, dest); err != nil {
		// A corrupt entry behaves like a miss so the caller falls back to the
		// source of truth; the entry is dropped to stop it recurring.
		c.log.Warn(ctx, "Dropping corrupt cache entry", logger.Fields{"key": key})
		_ = c.conn.Client.Del(ctx, key).Err()
		return false, nil
	}
	return true, nil
}

func (c *cacheManagerImpl) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.conn.Client.Set(ctx, key, b, ttl).Err()
}

func (c *cacheManagerImpl) Delete(ctx context.Context, key string) error {
	return c.conn.Client.Del(ctx, key).Err()
}
