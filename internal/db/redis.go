package db

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"biz-awards/internal/config/configs"
)

// NewRedisClient creates a go-redis client from the provided
// configuration and verifies connectivity with a 5 second ping.
func NewRedisClient(ctx context.Context, cfg configs.Redis) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctxPing, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(ctxPing).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}
