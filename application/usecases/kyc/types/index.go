package types

//go:generate mockgen -source=index.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"kyc.gateman.io/application/services/document"
	"kyc.gateman.io/entities"
)

type IdentityExtractorType interface {
	ExtractIdentity(ctx context.Context, imagePath string) (*entities.IdentityRecord, error)
	ExtractDocumentAddress(ctx context.Context, imagePath string, workdir string) (string, error)
}

type SelfieVerifierType interface {
	Verify(ctx context.Context, selfiePath string, idImagePath string, workdir string) (*entities.MatchResult, error)
}

type VideoVerifierType interface {
	Verify(ctx context.Context, videoPath string, name string, workdir string) (*entities.MatchResult, error)
}

type PipelineRunnerType interface {
	Run(ctx context.Context, submission entities.KycSubmission) (*entities.KycVerdict, error)
}

type QRReaderType interface {
	ReadQR(ctx context.Context, imagePath string) (*document.QRExtraction, error)
}
