package worker

import (
	"context"

	"github.com/maslahat/backend/internal/config"
	"github.com/maslahat/backend/internal/queue/task"
	emailProvider "github.com/maslahat/backend/pkg/email"
	"github.com/maslahat/backend/pkg/sms"
)

type Workers struct {
	SMSSender      SMSSender
	AppealNotifier AppealNotifier
}

type Deps struct {
	SMSSender   sms.Sender
	EmailSender emailProvider.Sender
	Config      *config.Config
}

type SMSSender interface {
	SendVerificationCode(ctx context.Context, phoneNumber string, verificationCode string) error
}

type AppealNotifier interface {
	NotifyStaff(ctx context.Context, appeal task.NotifyAppeal) error
}

func NewWorkers(deps Deps) *Workers {
	return &Workers{
		SMSSender:      newSMSSender(deps.SMSSender, deps.Config.SMS),
		AppealNotifier: newAppealNotifier(deps.EmailSender, deps.Config.Email),
	}
}
