package types

//go:generate mockgen -source=index.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"kyc.gateman.io/entities"
)

type KycJobRepoType interface {
	Save(ctx context.Context, job *entities.KycJob) error
	FindByID(ctx context.Context, id string) (*entities.KycJob, error)
}
