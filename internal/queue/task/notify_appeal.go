package task

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

const (
	NotifyAppealTaskName  = "notifyAppealTask"
	NotifyAppealQueueName = "notifyAppealQueue"
)

type NotifyAppeal struct {
	AppealID    string `json:"appeal_id"`
	ExpertName  string `json:"expert_name"`
	FullName    string `json:"full_name"`
	PhoneNumber string `json:"phone_number"`
	Description string `json:"description"`
}

func NewNotifyAppealTask(data NotifyAppeal) (*asynq.Task, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("json data marshal failed: %w", err)
	}

	return asynq.NewTask(
		NotifyAppealTaskName,
		payload,
		asynq.MaxRetry(5),
		asynq.Queue(NotifyAppealQueueName),
	), nil
}
