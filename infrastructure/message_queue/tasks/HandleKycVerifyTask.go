package queue_tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"kyc.gateman.io/application/constants"
	repository_types "kyc.gateman.io/application/repository/types"
	kyc_types "kyc.gateman.io/application/usecases/kyc/types"
	"kyc.gateman.io/entities"
	"kyc.gateman.io/infrastructure/logger"
	mq_types "kyc.gateman.io/infrastructure/message_queue/types"
)

var HandleKycVerifyTaskName = mq_types.Queues(constants.KYC_VERIFY_TASK)

type KycVerifyPayload struct {
	JobID      string                 `json:"job_id"`
	Submission entities.KycSubmission `json:"submission"`
}

// KycVerifyHandler runs queued submissions and records the outcome on the job.
// Failed runs are not retried.
type KycVerifyHandler struct {
	Pipeline kyc_types.PipelineRunnerType
	Jobs     repository_types.KycJobRepoType
}

func (h *KycVerifyHandler) HandleKycVerifyTask(ctx context.Context, t *asynq.Task) error {
	var payload KycVerifyPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		logger.Error("an error occured while unmarshalling kyc verify payload", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return fmt.Errorf("%w: %v", asynq.SkipRetry, err)
	}

	job, err := h.Jobs.FindByID(ctx, payload.JobID)
	if err != nil {
		return err
	}
	if job == nil {
		job = &entities.KycJob{ID: payload.JobID, CreatedAt: time.Now().UTC()}
	}

	verdict, runErr := h.Pipeline.Run(ctx, payload.Submission)
	job.UpdatedAt = time.Now().UTC()
	if runErr != nil {
		message := runErr.Error()
		job.Status = entities.JobFailed
		job.Error = &message
	} else {
		job.Status = entities.JobCompleted
		job.Result = verdict
	}

	if err := h.Jobs.Save(ctx, job); err != nil {
		return err
	}
	if runErr != nil {
		return fmt.Errorf("%w: %v", asynq.SkipRetry, runErr)
	}
	return nil
}
