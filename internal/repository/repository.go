package repository

import (
	"context"
	"time"

	"github.com/maslahat/backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type Repositories struct {
	Users             Users
	UserVerifications UserVerifications
	RefreshSessions   RefreshSessions
	Experts           Experts
	Appeals           Appeals
	Comments          Comments
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		Users:             newUserRepository(db),
		UserVerifications: newUserVerificationRepository(db),
		RefreshSessions:   newRefreshSessionRepository(db),
		Experts:           newExpertRepository(db),
		Appeals:           newAppealRepository(db),
		Comments:          newCommentRepository(db),
	}
}

type Users interface {
	Create(ctx context.Context, user *domain.User) error
	GetByPhone(ctx context.Context, phoneNumber string) (*domain.User, error)
	GetOneByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, passwordHash string) error
}

type UserVerifications interface {
	Upsert(ctx context.Context, verification *domain.UserVerification) error
	Confirm(ctx context.Context, userID uuid.UUID, code string, now time.Time) error
}

type RefreshSessions interface {
	Create(ctx context.Context, session *domain.RefreshSession) error
	GetByToken(ctx context.Context, refreshToken uuid.UUID) (*domain.RefreshSession, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

type Experts interface {
	GetOneByID(ctx context.Context, id uuid.UUID) (*domain.Expert, error)
}

type Appeals interface {
	Create(ctx context.Context, appeal *domain.Appeal) error
}

type Comments interface {
	Create(ctx context.Context, comment *domain.Comment) error
}
