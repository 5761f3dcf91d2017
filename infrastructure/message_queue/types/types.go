package mq_types

//go:generate mockgen -source=types.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"
)

type TaskQueueBroker interface {
	Enqueue(ctx context.Context, task QueueTask) error
}

type Queues string

type QueueTask struct {
	ID        string
	Name      Queues
	Payload   []byte
	Priority  TaskPriority
	ProcessIn time.Duration
	TimeOut   time.Duration
	MaxRetry  int
}

type TaskPriority string

const (
	Low    TaskPriority = "low"
	Medium TaskPriority = "medium"
	High   TaskPriority = "high"
)
