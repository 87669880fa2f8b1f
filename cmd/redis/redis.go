package redisclient

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/muhammadheryan/agri-market/cmd/config"
	"github.com/redis/go-redis/v9"
)

var client *redis.Client

// ErrNotInitialized is returned by session calls made before New succeeded.
var ErrNotInitialized = stderrors.New("redis client not initialized")

// New initializes the Redis client using provided configuration and verifies connectivity.
func New(cfg *config.Config) error {
	if cfg == nil {
		return fmt.Errorf("nil config provided")
	}

	addr := fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port)
	c := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := c.Ping(ctx).Err(); err != nil {
		_ = c.Close()
		return fmt.Errorf("unable to ping redis at %s: %w", addr, err)
	}

	client = c
	return nil
}

func Get() *redis.Client {
	return client
}

// Ping reports session store health.
func Ping(ctx context.Context) error {
	if client == nil {
		return ErrNotInitialized
	}
	return client.Ping(ctx).Err()
}

// IsNil reports a missing key.
func IsNil(err error) bool {
	return stderrors.Is(err, redis.Nil)
}

func Close() error {
	if client == nil {
		return nil
	}
	return client.Close()
}
