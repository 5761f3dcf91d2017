package repository

import (
	"context"
	"encoding/json"
	"time"

	"kyc.gateman.io/entities"
	"kyc.gateman.io/infrastructure/database/repository/cache"
)

const kycJobKeyPrefix = "kyc-job-"

// KycJobRepository stores queued run state in redis. Entries expire after TTL.
type KycJobRepository struct {
	Cache *cache.RedisRepository
	TTL   time.Duration
}

func NewKycJobRepo(cache *cache.RedisRepository, ttl time.Duration) *KycJobRepository {
	return &KycJobRepository{Cache: cache, TTL: ttl}
}

func (repo *KycJobRepository) Save(ctx context.Context, job *entities.KycJob) error {
	payload, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return repo.Cache.CreateEntry(ctx, kycJobKeyPrefix+job.ID, payload, repo.TTL)
}

// FindByID returns nil, nil for unknown or expired jobs.
func (repo *KycJobRepository) FindByID(ctx context.Context, id string) (*entities.KycJob, error) {
	payload, err := repo.Cache.FindOneByteArray(ctx, kycJobKeyPrefix+id)
	if err != nil || payload == nil {
		return nil, err
	}
	var job entities.KycJob
	if err := json.Unmarshal(payload, &job); err != nil {
		return nil, err
	}
	return &job, nil
}
