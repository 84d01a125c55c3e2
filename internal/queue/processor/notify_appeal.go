package processor

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/maslahat/backend/internal/queue/task"
	"github.com/maslahat/backend/internal/worker"

	"github.com/hibiken/asynq"
)

type notifyAppealProcessor struct {
	workers *worker.Workers
}

func NewNotifyAppealProcessor(workers *worker.Workers) *notifyAppealProcessor {
	return &notifyAppealProcessor{
		workers: workers,
	}
}

func (p *notifyAppealProcessor) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var data task.NotifyAppeal
	err := json.Unmarshal(t.Payload(), &data)
	if err != nil {
		return fmt.Errorf("process notify appeal task json unmarshal failed: %w", err)
	}

	if err = p.workers.AppealNotifier.NotifyStaff(ctx, data); err != nil {
		return fmt.Errorf("notify staff about appeal failed: %w", err)
	}

	return nil
}
