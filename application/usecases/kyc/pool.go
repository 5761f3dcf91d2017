package kyc_usecases

import (
	"context"

	"golang.org/x/sync/semaphore"
	kyc_types "kyc.gateman.io/application/usecases/kyc/types"
	"kyc.gateman.io/entities"
	"kyc.gateman.io/infrastructure/logger"
)

// Pool bounds how many pipeline runs execute at once. Callers wait for a free
// slot; once a run has started it is not cancelled, even if the caller leaves.
type Pool struct {
	runner kyc_types.PipelineRunnerType
	size   int64
	slots  *semaphore.Weighted
}

func NewPool(runner kyc_types.PipelineRunnerType, size int64) *Pool {
	return &Pool{runner: runner, size: size, slots: semaphore.NewWeighted(size)}
}

// abandoner is implemented by runners that own a submission's resources and
// must release them when the submission never gets a slot.
type abandoner interface {
	Abandon(submission entities.KycSubmission)
}

type runOutcome struct {
	verdict *entities.KycVerdict
	err     error
}

func (p *Pool) Run(ctx context.Context, submission entities.KycSubmission) (*entities.KycVerdict, error) {
	if err := p.slots.Acquire(ctx, 1); err != nil {
		if owner, ok := p.runner.(abandoner); ok {
			owner.Abandon(submission)
		}
		return nil, err
	}

	done := make(chan runOutcome, 1)
	go func() {
		defer p.slots.Release(1)
		verdict, err := p.runner.Run(context.WithoutCancel(ctx), submission)
		done <- runOutcome{verdict: verdict, err: err}
	}()

	select {
	case outcome := <-done:
		return outcome.verdict, outcome.err
	case <-ctx.Done():
		logger.Warning("caller left before the kyc run finished, result will be discarded", logger.LoggerOptions{
			Key:  "error",
			Data: ctx.Err().Error(),
		})
		return nil, ctx.Err()
	}
}

// Drain waits for every started run to finish and stops new runs from
// starting. It gives up when ctx is done.
func (p *Pool) Drain(ctx context.Context) error {
	return p.slots.Acquire(ctx, p.size)
}
