package processor

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/maslahat/backend/internal/queue/task"
	"github.com/maslahat/backend/internal/worker"

	"github.com/hibiken/asynq"
)

type sendSMSProcessor struct {
	workers *worker.Workers
}

func NewSendSMSProcessor(workers *worker.Workers) *sendSMSProcessor {
	return &sendSMSProcessor{
		workers: workers,
	}
}

func (p *sendSMSProcessor) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var data task.SendSMS
	err := json.Unmarshal(t.Payload(), &data)
	if err != nil {
		return fmt.Errorf("process send sms task json unmarshal failed: %w", err)
	}

	if err = p.workers.SMSSender.SendVerificationCode(ctx, data.PhoneNumber, data.VerificationCode); err != nil {
		return fmt.Errorf("send verification code failed: %w", err)
	}

	return nil
}
