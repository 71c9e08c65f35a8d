// Package redis provides the Redis connection and the cache decorators
// layered over the PostgreSQL repositories.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/praxisgrc/praxis/internal/config"
	"github.com/praxisgrc/praxis/pkg/logger"
)

// RedisConnection wraps the go-redis client lifecycle.
type RedisConnection struct {
	Client *redis.Client
	logger logger.Logger
}

// NewRedisConnection connects to a standalone Redis and verifies the
// connection with a ping.
func NewRedisConnection(ctx context.Context, cfg *config.RedisConfig, log logger.Logger) (*RedisConnection, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Address,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		MinIdleConns: cfg.MinIdleConns,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	log.Info(ctx, "Redis connection established", logger.Fields{"address": cfg.Address})
	return &RedisConnection{
		Client: client,
		logger: log.WithComponent("redis"),
	}, nil
}

// HealthCheck verifies Redis responsiveness for the readiness endpoint.
func (r *RedisConnection) HealthCheck(ctx context.Context) error {
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return r.Client.Ping(pingCtx).Err()
}

// Close shuts down the client.
func (r *RedisConnection) Close() error {
	return r.Client.Close()
}
