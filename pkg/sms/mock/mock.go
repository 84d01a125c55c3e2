package mock_sms

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type SMSSender struct {
	mock.Mock
}

func (m *SMSSender) Send(ctx context.Context, phoneNumber string, text string) error {
	args := m.Called(ctx, phoneNumber, text)

	return args.Error(0)
}
