package entities

import "time"

type JobStatus string

const (
	JobPending   JobStatus = "pending"
	JobCompleted JobStatus = "completed"
	JobFailed    JobStatus = "failed"
)

// KycJob tracks a queued verification run.
type KycJob struct {
	ID        string      `json:"job_id"`
	Status    JobStatus   `json:"status"`
	Result    *KycVerdict `json:"result,omitempty"`
	Error     *string     `json:"error,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}
