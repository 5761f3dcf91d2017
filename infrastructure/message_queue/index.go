package messagequeue

import (
	"github.com/hibiken/asynq"
	"kyc.gateman.io/infrastructure/env"
	mq_asynq "kyc.gateman.io/infrastructure/message_queue/asynq"
	queue_tasks "kyc.gateman.io/infrastructure/message_queue/tasks"
	mq_types "kyc.gateman.io/infrastructure/message_queue/types"
)

// StartQueue connects the broker and starts consuming verification tasks.
func StartQueue(cfg *env.Config, handler *queue_tasks.KycVerifyHandler) (*mq_asynq.AsynqBroker, error) {
	broker := mq_asynq.NewAsynqBroker(cfg.RedisAddr, cfg.RedisPassword, int(cfg.WorkerPoolSize))
	err := broker.Start(map[mq_types.Queues]asynq.HandlerFunc{
		queue_tasks.HandleKycVerifyTaskName: handler.HandleKycVerifyTask,
	})
	if err != nil {
		broker.Client.Close()
		return nil, err
	}
	return broker, nil
}
