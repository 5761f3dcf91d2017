package asynq

import (
	"context"
	"os"
	"time"

	"github.com/hibiken/asynq"
	"kyc.gateman.io/infrastructure/logger"
	mq_types "kyc.gateman.io/infrastructure/message_queue/types"
)

const defaultTaskTimeout = 10 * time.Minute

type AsynqBroker struct {
	Client *asynq.Client
	Server *asynq.Server
}

func NewAsynqBroker(addr string, password string, concurrency int) *AsynqBroker {
	redisConnOpt := asynq.RedisClientOpt{
		Addr:     addr,
		Password: password,
	}
	return &AsynqBroker{
		Client: asynq.NewClient(redisConnOpt),
		Server: asynq.NewServer(redisConnOpt, asynq.Config{
			Concurrency: concurrency,
			Queues: map[string]int{
				string(mq_types.High):   7,
				string(mq_types.Medium): 2,
				string(mq_types.Low):    1,
			},
			Logger: asynqLogger{exit: os.Exit},
		}),
	}
}

// Start begins processing tasks in the background.
func (aq *AsynqBroker) Start(handlers map[mq_types.Queues]asynq.HandlerFunc) error {
	mux := asynq.NewServeMux()
	for name, handler := range handlers {
		mux.HandleFunc(string(name), handler)
	}
	return aq.Server.Start(mux)
}

func (aq *AsynqBroker) Enqueue(ctx context.Context, task mq_types.QueueTask) error {
	if task.TimeOut == 0 {
		task.TimeOut = defaultTaskTimeout
	}
	if task.Priority == "" {
		task.Priority = mq_types.Medium
	}
	opts := []asynq.Option{
		asynq.ProcessIn(task.ProcessIn),
		asynq.MaxRetry(task.MaxRetry),
		asynq.Timeout(task.TimeOut),
		asynq.Queue(string(task.Priority)),
	}
	if task.ID != "" {
		opts = append(opts, asynq.TaskID(task.ID))
	}
	info, err := aq.Client.EnqueueContext(ctx, asynq.NewTask(string(task.Name), task.Payload), opts...)
	if err != nil {
		logger.Error("failed to enqueue task", logger.LoggerOptions{
			Key:  "task",
			Data: task.Name,
		}, logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return err
	}
	logger.Info("task enqueued", logger.LoggerOptions{
		Key:  "task_id",
		Data: info.ID,
	})
	return nil
}

func (aq *AsynqBroker) Shutdown() error {
	aq.Server.Shutdown()
	return aq.Client.Close()
}

// asynqLogger routes the queue server's own logs through zap.
type asynqLogger struct {
	exit func(code int)
}

func (asynqLogger) Debug(args ...interface{}) {}

func (asynqLogger) Info(args ...interface{}) {
	logger.Info("asynq", logger.LoggerOptions{Key: "message", Data: args})
}

func (asynqLogger) Warn(args ...interface{}) {
	logger.Warning("asynq", logger.LoggerOptions{Key: "message", Data: args})
}

func (asynqLogger) Error(args ...interface{}) {
	logger.Error("asynq", logger.LoggerOptions{Key: "message", Data: args})
}

// Fatal ends the process, as asynq expects.
func (l asynqLogger) Fatal(args ...interface{}) {
	logger.Error("asynq fatal", logger.LoggerOptions{Key: "message", Data: args})
	logger.Sync()
	l.exit(1)
}
