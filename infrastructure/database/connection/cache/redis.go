package cache

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"kyc.gateman.io/infrastructure/logger"
)

// Connect opens a client and pings the server before returning it.
func Connect(ctx context.Context, addr string, password string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
		PoolSize: 10,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to reach redis at %s: %w", addr, err)
	}
	logger.Info("connected to redis successfully", logger.LoggerOptions{
		Key:  "addr",
		Data: addr,
	})
	return client, nil
}
