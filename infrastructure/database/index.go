package database

import (
	"context"

	"kyc.gateman.io/infrastructure/database/connection/cache"
	cache_repository "kyc.gateman.io/infrastructure/database/repository/cache"
	"kyc.gateman.io/infrastructure/env"
)

// SetUpCache connects to the redis instance backing queued jobs.
func SetUpCache(ctx context.Context, cfg *env.Config) (*cache_repository.RedisRepository, error) {
	client, err := cache.Connect(ctx, cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		return nil, err
	}
	return &cache_repository.RedisRepository{Client: client}, nil
}
