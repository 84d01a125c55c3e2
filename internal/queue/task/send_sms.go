package task

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

const (
	SendSMSTaskName  = "sendSmsTask"
	SendSMSQueueName = "sendSmsQueue"
)

type SendSMS struct {
	PhoneNumber      string `json:"phone_number"`
	VerificationCode string `json:"verification_code"`
}

func NewSendSMSTask(phoneNumber string, verificationCode string) (*asynq.Task, error) {
	var data SendSMS
	data.PhoneNumber = phoneNumber
	data.VerificationCode = verificationCode

	payload, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("json data marshal failed: %w", err)
	}

	return asynq.NewTask(
		SendSMSTaskName,
		payload,
		asynq.MaxRetry(5),
		asynq.Queue(SendSMSQueueName),
	), nil
}
