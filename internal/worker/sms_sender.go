package worker

import (
	"context"
	"fmt"

	"github.com/maslahat/backend/internal/config"
	"github.com/maslahat/backend/pkg/logger"
	"github.com/maslahat/backend/pkg/sms"

	"go.uber.org/zap"
)

type smsSender struct {
	sender sms.Sender
	config config.SMSConfig
}

func newSMSSender(sender sms.Sender, config config.SMSConfig) *smsSender {
	return &smsSender{
		sender: sender,
		config: config,
	}
}

func (s *smsSender) SendVerificationCode(ctx context.Context, phoneNumber string, verificationCode string) error {
	if !s.config.Enabled {
		// Local and CI environments have no gateway credentials.
		logger.Info("sms disabled, skipping verification code dispatch",
			zap.String("phone_number", phoneNumber))
		return nil
	}

	text := fmt.Sprintf("Tasdiqlash kodi: %s", verificationCode)

	if err := s.sender.Send(ctx, phoneNumber, text); err != nil {
		return fmt.Errorf("send sms failed: %w", err)
	}

	return nil
}
