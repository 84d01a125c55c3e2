package worker

import (
	"context"
	"fmt"

	"github.com/maslahat/backend/internal/config"
	"github.com/maslahat/backend/internal/queue/task"
	emailProvider "github.com/maslahat/backend/pkg/email"
)

type appealNotifier struct {
	sender emailProvider.Sender
	config config.EmailConfig
}

func newAppealNotifier(sender emailProvider.Sender, config config.EmailConfig) *appealNotifier {
	return &appealNotifier{
		sender: sender,
		config: config,
	}
}

func (n *appealNotifier) NotifyStaff(ctx context.Context, appeal task.NotifyAppeal) error {
	if !n.config.Enabled {
		return nil
	}

	subject := fmt.Sprintf("New appeal from %s", appeal.FullName)

	sendInput := emailProvider.SendEmailInput{Subject: subject, To: n.config.AppealRecipient}
	if err := sendInput.GenerateBodyFromHTML(n.config.Templates.AppealNotification, appeal); err != nil {
		return fmt.Errorf("generate email failed: %w", err)
	}

	if err := n.sender.Send(sendInput); err != nil {
		return fmt.Errorf("send email failed: %w", err)
	}

	return nil
}
