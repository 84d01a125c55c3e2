package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/mock"

	"github.com/maslahat/backend/internal/domain"
)

type usersRepoMock struct {
	mock.Mock
}

func (m *usersRepoMock) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *usersRepoMock) GetByPhone(ctx context.Context, phoneNumber string) (*domain.User, error) {
	args := m.Called(ctx, phoneNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *usersRepoMock) GetOneByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *usersRepoMock) UpdatePasswordHash(ctx context.Context, id uuid.UUID, passwordHash string) error {
	args := m.Called(ctx, id, passwordHash)
	return args.Error(0)
}

type verificationsRepoMock struct {
	mock.Mock
}

func (m *verificationsRepoMock) Upsert(ctx context.Context, verification *domain.UserVerification) error {
	args := m.Called(ctx, verification)
	return args.Error(0)
}

func (m *verificationsRepoMock) Confirm(ctx context.Context, userID uuid.UUID, code string, now time.Time) error {
	args := m.Called(ctx, userID, code, now)
	return args.Error(0)
}

type sessionsRepoMock struct {
	mock.Mock
}

func (m *sessionsRepoMock) Create(ctx context.Context, session *domain.RefreshSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *sessionsRepoMock) GetByToken(ctx context.Context, refreshToken uuid.UUID) (*domain.RefreshSession, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RefreshSession), args.Error(1)
}

func (m *sessionsRepoMock) DeleteByID(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type expertsRepoMock struct {
	mock.Mock
}

func (m *expertsRepoMock) GetOneByID(ctx context.Context, id uuid.UUID) (*domain.Expert, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expert), args.Error(1)
}

type appealsRepoMock struct {
	mock.Mock
}

func (m *appealsRepoMock) Create(ctx context.Context, appeal *domain.Appeal) error {
	args := m.Called(ctx, appeal)
	return args.Error(0)
}

type commentsRepoMock struct {
	mock.Mock
}

func (m *commentsRepoMock) Create(ctx context.Context, comment *domain.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

type enqueuerMock struct {
	mock.Mock
}

func (m *enqueuerMock) Enqueue(ctx context.Context, task *asynq.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

type throttleMock struct {
	mock.Mock
}

func (m *throttleMock) Allow(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

// fixedOtp returns the same code on every call.
type fixedOtp struct {
	code string
}

func (g fixedOtp) RandomCode() string {
	return g.code
}
