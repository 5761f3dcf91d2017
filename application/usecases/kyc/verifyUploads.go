package kyc_usecases

import (
	"context"

	kyc_types "kyc.gateman.io/application/usecases/kyc/types"
	"kyc.gateman.io/entities"
	file_upload_types "kyc.gateman.io/infrastructure/file_upload/types"
	"kyc.gateman.io/infrastructure/logger"
)

// VerifyUploadsUseCase runs the pipeline on stored uploads. With discardUploads
// set the files are removed afterwards, whatever the outcome.
func VerifyUploadsUseCase(ctx context.Context, pipeline kyc_types.PipelineRunnerType, uploads file_upload_types.FileStoreType, submission entities.KycSubmission, discardUploads bool) (*entities.KycVerdict, error) {
	if discardUploads {
		defer DiscardUploads(uploads, submission.Paths())
	}
	return pipeline.Run(ctx, submission)
}

// UploadVerifier is a PipelineRunnerType that owns the uploads it verifies.
// Put it inside the Pool so files outlive callers that stop waiting.
type UploadVerifier struct {
	Pipeline       kyc_types.PipelineRunnerType
	Uploads        file_upload_types.FileStoreType
	DiscardUploads bool
}

func (v *UploadVerifier) Run(ctx context.Context, submission entities.KycSubmission) (*entities.KycVerdict, error) {
	return VerifyUploadsUseCase(ctx, v.Pipeline, v.Uploads, submission, v.DiscardUploads)
}

// Abandon discards the uploads of a submission that will never run.
func (v *UploadVerifier) Abandon(submission entities.KycSubmission) {
	if v.DiscardUploads {
		DiscardUploads(v.Uploads, submission.Paths())
	}
}

func DiscardUploads(uploads file_upload_types.FileStoreType, paths []string) {
	for _, path := range paths {
		if err := uploads.Delete(path); err != nil {
			logger.Warning("failed to delete upload", logger.LoggerOptions{
				Key:  "path",
				Data: path,
			}, logger.LoggerOptions{
				Key:  "error",
				Data: err.Error(),
			})
		}
	}
}
