package ratelimit

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praxisgrc/praxis/internal/config"
	"github.com/praxisgrc/praxis/pkg/logger"
)

func newTestLimiter(t *testing.T, cfg *config.RateLimitConfig) (*RedisRateLimiter, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisRateLimiter(client, cfg, logger.NewNoopLogger()), mr
}

func TestRedisRateLimiter_BurstThenDeny(t *testing.T) {
	limiter, _ := newTestLimiter(t, &config.RateLimitConfig{
		Enabled:           true,
		RequestsPerMinute: 60,
		Burst:             2,
	})
	ctx := context.Background()

	first, err := limiter.Allow(ctx, "tenant-1")
	require.NoError(t, err)
	assert.True(t, first.Allowed)

	second, err := limiter.Allow(ctx, "tenant-1")
	require.NoError(t, err)
	assert.True(t, second.Allowed)

	third, err := limiter.Allow(ctx, "tenant-1")
	require.NoError(t, err)
	assert.False(t, third.Allowed)
	assert.Positive(t, third.RetryAfter)
}

func TestRedisRateLimiter_KeysAreIndependent(t *testing.T) {
	limiter, _ := newTestLimiter(t, &config.RateLimitConfig{
		Enabled:           true,
		RequestsPerMinute: 60,
		Burst:             1,
	})
	ctx := context.Background()

	first, err := limiter.Allow(ctx, "tenant-1")
	require.NoError(t, err)
	require.True(t, first.Allowed)

	blocked, err := limiter.Allow(ctx, "tenant-1")
	require.NoError(t, err)
	assert.False(t, blocked.Allowed)

	other, err := limiter.Allow(ctx, "tenant-2")
	require.NoError(t, err)
	assert.True(t, other.Allowed)
}

func TestRedisRateLimiter_FailsOpenWhenRedisDown(t *testing.T) {
	limiter, mr := newTestLimiter(t, &config.RateLimitConfig{
		Enabled:           true,
		RequestsPerMinute: 60,
		Burst:             1,
	})
	mr.Close()

	result, err := limiter.Allow(context.Background(), "tenant-1")

	require.NoError(t, err)
	assert.True(t, result.Allowed)
}
