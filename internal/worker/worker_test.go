package worker

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/maslahat/backend/internal/config"
	"github.com/maslahat/backend/internal/queue/task"
	"github.com/maslahat/backend/pkg/email"
	mockEmail "github.com/maslahat/backend/pkg/email/mock"
	mockSMS "github.com/maslahat/backend/pkg/sms/mock"
)

func TestSMSSender_Send(t *testing.T) {
	sender := new(mockSMS.SMSSender)
	sender.On("Send", mock.Anything, "+998901234567", "Tasdiqlash kodi: 1234").Return(nil)

	s := newSMSSender(sender, config.SMSConfig{Enabled: true})

	err := s.SendVerificationCode(context.Background(), "+998901234567", "1234")
	require.NoError(t, err)
	sender.AssertExpectations(t)
}

func TestSMSSender_DisabledSkipsGateway(t *testing.T) {
	sender := new(mockSMS.SMSSender)

	s := newSMSSender(sender, config.SMSConfig{Enabled: false})

	err := s.SendVerificationCode(context.Background(), "+998901234567", "1234")
	require.NoError(t, err)
	sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}

func TestAppealNotifier_DisabledSkipsEmail(t *testing.T) {
	sender := new(mockEmail.EmailSender)

	n := newAppealNotifier(sender, config.EmailConfig{Enabled: false})

	err := n.NotifyStaff(context.Background(), task.NotifyAppeal{FullName: "Ali Valiyev"})
	require.NoError(t, err)
	sender.AssertNotCalled(t, "Send", mock.Anything)
}

func TestAppealNotifier_SendsToRecipient(t *testing.T) {
	tmp := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(tmp, "templates"), 0o755))
	tpl := []byte("<p>{{.ExpertName}} / {{.FullName}} / {{.PhoneNumber}}: {{.Description}}</p>")
	require.NoError(t, os.WriteFile(filepath.Join(tmp, "templates", "appeal_notification.html"), tpl, 0o644))
	t.Chdir(tmp)

	sender := new(mockEmail.EmailSender)
	sender.On("Send", mock.MatchedBy(func(inp email.SendEmailInput) bool {
		return inp.To == "staff@maslahat.uz" && inp.Subject == "New appeal from Ali Valiyev" && inp.Body != ""
	})).Return(nil)

	n := newAppealNotifier(sender, config.EmailConfig{
		Enabled:         true,
		AppealRecipient: "staff@maslahat.uz",
		Templates:       config.EmailTemplates{AppealNotification: "appeal_notification.html"},
	})

	err := n.NotifyStaff(context.Background(), task.NotifyAppeal{
		AppealID:    uuid.New().String(),
		ExpertName:  "Olim Karimov",
		FullName:    "Ali Valiyev",
		PhoneNumber: "+998901234567",
		Description: "Need a consultation",
	})
	require.NoError(t, err)
	sender.AssertExpectations(t)
}
