package service

import (
	"context"

	"github.com/maslahat/backend/internal/config"
	"github.com/maslahat/backend/internal/domain"
	"github.com/maslahat/backend/internal/queue/client"
	"github.com/maslahat/backend/internal/repository"
	"github.com/maslahat/backend/pkg/auth"
	"github.com/maslahat/backend/pkg/hash"
	"github.com/maslahat/backend/pkg/otp"

	"github.com/google/uuid"
)

type Services struct {
	Users    Users
	Appeals  Appeals
	Comments Comments
}

// ResendThrottle bounds how often a verification code may be issued for
// one user. Implemented by internal/cache on top of redis.
type ResendThrottle interface {
	Allow(ctx context.Context, key string) (bool, error)
}

type Deps struct {
	Config       *config.Config
	Hasher       hash.PasswordHasher
	TokenManager auth.TokenManager
	OtpGenerator otp.Generator
	Queue        client.Enqueuer
	Throttle     ResendThrottle
	Repos        *repository.Repositories
}

func NewServices(deps Deps) *Services {
	return &Services{
		Users: newUserService(deps.Repos.Users,
			deps.Repos.UserVerifications,
			deps.Repos.RefreshSessions,
			deps.Hasher,
			deps.TokenManager,
			deps.OtpGenerator,
			deps.Queue,
			deps.Throttle,
			deps.Config.Auth,
		),
		Appeals:  newAppealService(deps.Repos.Appeals, deps.Repos.Experts, deps.Queue),
		Comments: newCommentService(deps.Repos.Comments, deps.Repos.Experts, deps.Repos.Users),
	}
}

type SignUpInput struct {
	PhoneNumber string
	Password    string
	UserAgent   string
	IP          string
}

type SignInInput struct {
	PhoneNumber string
	Password    string
	UserAgent   string
	IP          string
}

type AuthResult struct {
	User   *domain.User
	Tokens Tokens
}

type Users interface {
	SignUp(ctx context.Context, input SignUpInput) (*AuthResult, error)
	SignIn(ctx context.Context, input SignInInput) (*AuthResult, error)
	Verify(ctx context.Context, userID uuid.UUID, code string, userAgent string, userIP string) (*AuthResult, error)
	ResendCode(ctx context.Context, userID uuid.UUID) error
	RefreshTokens(ctx context.Context, refreshToken string, userAgent string, userIP string) (*Tokens, error)
	GetOneByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type SubmitAppealInput struct {
	ExpertID    uuid.UUID
	FullName    string
	PhoneNumber string
	Description string
}

type Appeals interface {
	Submit(ctx context.Context, input SubmitAppealInput) (*domain.Appeal, error)
}

type SubmitCommentInput struct {
	ExpertID    uuid.UUID
	UserID      uuid.UUID
	Degree      int
	Description string
}

type Comments interface {
	Submit(ctx context.Context, input SubmitCommentInput) (*domain.Comment, error)
}
