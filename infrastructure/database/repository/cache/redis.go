package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"kyc.gateman.io/infrastructure/logger"
)

type RedisRepository struct {
	Client *redis.Client
}

func (redisRepo *RedisRepository) CreateEntry(ctx context.Context, key string, payload interface{}, ttl time.Duration) error {
	if err := redisRepo.Client.Set(ctx, key, payload, ttl).Err(); err != nil {
		logger.Error("redis error occured while running CreateEntry", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		}, logger.LoggerOptions{
			Key:  "key",
			Data: key,
		})
		return err
	}
	return nil
}

// FindOneByteArray returns nil, nil when the key does not exist.
func (redisRepo *RedisRepository) FindOneByteArray(ctx context.Context, key string) ([]byte, error) {
	result, err := redisRepo.Client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		logger.Error("redis error occured while running FindOneByteArray", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		}, logger.LoggerOptions{
			Key:  "key",
			Data: key,
		})
		return nil, err
	}
	return result, nil
}

func (redisRepo *RedisRepository) DeleteOne(ctx context.Context, key string) (bool, error) {
	result, err := redisRepo.Client.Del(ctx, key).Result()
	if err != nil {
		logger.Error("redis error occured while running DeleteOne", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		}, logger.LoggerOptions{
			Key:  "key",
			Data: key,
		})
		return false, err
	}
	return result == 1, nil
}
