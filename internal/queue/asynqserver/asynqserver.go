package asynqserver

import (
	"github.com/hibiken/asynq"
	"github.com/maslahat/backend/internal/cache"
	"github.com/maslahat/backend/internal/config"
	"github.com/maslahat/backend/internal/queue/processor"
	"github.com/maslahat/backend/internal/queue/task"
	"github.com/maslahat/backend/internal/worker"
)

func New(cfg config.Cache, workers *worker.Workers) (*asynq.Server, *asynq.ServeMux) {
	mux, queues := getQueues(workers)
	srv := asynq.NewServer(
		RedisOptions(cfg),
		asynq.Config{
			Concurrency: 10,
			LogLevel:    asynq.ErrorLevel,
			Queues:      queues,
		},
	)

	return srv, mux
}

func RedisOptions(cfg config.Cache) asynq.RedisConnOpt {
	var opts asynq.RedisConnOpt
	if cfg.Type == cache.RedisTypeCluster {
		opts = asynq.RedisClusterClientOpt{Addrs: cfg.RedisCluster.Addresses}
	} else {
		opts = asynq.RedisClientOpt{Addr: cfg.Redis.Address}
	}
	return opts
}

func getQueues(workers *worker.Workers) (*asynq.ServeMux, map[string]int) {
	mux := asynq.NewServeMux()
	mux.Handle(task.SendSMSTaskName, processor.NewSendSMSProcessor(workers))
	mux.Handle(task.NotifyAppealTaskName, processor.NewNotifyAppealProcessor(workers))
	queues := map[string]int{
		task.SendSMSQueueName:      2,
		task.NotifyAppealQueueName: 1,
	}
	return mux, queues
}
