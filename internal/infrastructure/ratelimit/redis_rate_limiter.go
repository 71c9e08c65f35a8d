// Package ratelimit provides distributed per-tenant rate limiting backed by
// Redis.
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/praxisgrc/praxis/internal/config"
	"github.com/praxisgrc/praxis/pkg/logger"
)

// Result is the outcome of one rate limit check.
type Result struct {
	Allowed    bool
	Limit      int64
	Remaining  int64
	RetryAfter time.Duration
}

// Token bucket refill and take, atomic in Redis.
const tokenBucketScript = `
local key = KEYS[1]
local capacity = tonumber(ARGV[1])
local rate = tonumber(ARGV[2])
local now = tonumber(ARGV[3])

local bucket = redis.call('HMGET', key, 'tokens', 'last_refill')
local tokens = tonumber(bucket[1]) or capacity
local last_refill = tonumber(bucket[2]) or now

local elapsed = math.max(0, now - last_refill)
tokens = math.min(capacity, tokens + elapsed * rate)

local allowed = 0
if tokens >= 1 then
  allowed = 1
  tokens = tokens - 1
end

redis.call('HMSET', key, 'tokens', tokens, 'last_refill', now)
redis.call('EXPIRE', key, math.ceil(capacity / rate) * 2)
return {allowed, tokens}
`

// RedisRateLimiter applies a token bucket per key across all service
// instances. Redis faults fail open so a cache outage never takes the API
// down with it.
type RedisRateLimiter struct {
	client redis.UniversalClient
	script *redis.Script
	cfg    *config.RateLimitConfig
	logger logger.Logger
}

// NewRedisRateLimiter creates a limiter with the configured per-minute rate.
func NewRedisRateLimiter(client redis.UniversalClient, cfg *config.RateLimitConfig, log logger.Logger) *RedisRateLimiter {
	return &RedisRateLimiter{
		client: client,
		script: redis.NewScript(tokenBucketScript),
		cfg:    cfg,
		logger: log.WithComponent("rate_limiter"),
	}
}

// Allow runs one token bucket check for the key.
func (l *RedisRateLimiter) Allow(ctx context.Context, key string) (*Result, error) {
	capacity := l.cfg.Burst
	if capacity <= 0 {
		capacity = l.cfg.RequestsPerMinute
	}
	ratePerSecond := float64(l.cfg.RequestsPerMinute) / 60.0

	values, err := l.script.Run(ctx, l.client,
		[]string{fmt.Sprintf("ratelimit:%s", key)},
		capacity, ratePerSecond, time.Now().Unix(),
	).Int64Slice()
	if err != nil {
		l.logger.Warn(ctx, "rate limit check failed, allowing request", logger.Fields{
			"key":   key,
			"error": err.Error(),
		})
		return &Result{Allowed: true, Limit: int64(capacity), Remaining: int64(capacity)}, nil
	}

	result := &Result{
		Allowed:   values[0] == 1,
		Limit:     int64(capacity),
		Remaining: values[1],
	}
	if !result.Allowed {
		result.RetryAfter = time.Duration(float64(time.Second) / ratePerSecond)
	}
	return result, nil
}
