package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/maslahat/backend/internal/config"
	"github.com/maslahat/backend/internal/domain"
	"github.com/maslahat/backend/internal/queue/client"
	"github.com/maslahat/backend/internal/queue/task"
	"github.com/maslahat/backend/internal/repository"
	"github.com/maslahat/backend/pkg/auth"
	"github.com/maslahat/backend/pkg/hash"
	"github.com/maslahat/backend/pkg/otp"

	"github.com/google/uuid"
)

type userService struct {
	userRepository         repository.Users
	verificationRepository repository.UserVerifications
	sessionRepository      repository.RefreshSessions
	hasher                 hash.PasswordHasher
	tokenManager           auth.TokenManager
	otpGenerator           otp.Generator
	queue                  client.Enqueuer
	throttle               ResendThrottle
	authConfig             config.AuthConfig
}

func newUserService(userRepository repository.Users,
	verificationRepository repository.UserVerifications,
	sessionRepository repository.RefreshSessions,
	hasher hash.PasswordHasher,
	tokenManager auth.TokenManager,
	otpGenerator otp.Generator,
	queue client.Enqueuer,
	throttle ResendThrottle,
	authConfig config.AuthConfig,
) *userService {
	return &userService{
		userRepository:         userRepository,
		verificationRepository: verificationRepository,
		sessionRepository:      sessionRepository,
		hasher:                 hasher,
		tokenManager:           tokenManager,
		otpGenerator:           otpGenerator,
		queue:                  queue,
		throttle:               throttle,
		authConfig:             authConfig,
	}
}

type Tokens struct {
	AccessToken  string
	AccessTTL    time.Duration
	RefreshToken uuid.UUID
	RefreshTTL   time.Duration
}

func (s *userService) createSession(ctx context.Context, userID *uuid.UUID, userAgent *string, userIP *string) (*Tokens, error) {
	var (
		res Tokens
		err error
	)

	res.AccessToken, res.AccessTTL, err = s.tokenManager.NewJWT(userID)
	if err != nil {
		return &res, fmt.Errorf("generate access token failed: %w", err)
	}

	res.RefreshToken, res.RefreshTTL, err = s.tokenManager.NewRefreshToken()
	if err != nil {
		return &res, fmt.Errorf("generate refresh token failed: %w", err)
	}

	refreshSessionID, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generate refresh session id failed: %w", err)
	}
	refreshSession := &domain.RefreshSession{
		ID:           refreshSessionID,
		UserID:       *userID,
		RefreshToken: res.RefreshToken,
		UserAgent:    *userAgent,
		IP:           *userIP,
		ExpiresIn:    time.Now().Add(res.RefreshTTL),
	}

	if err := s.sessionRepository.Create(ctx, refreshSession); err != nil {
		return nil, fmt.Errorf("create refresh session failed: %w", err)
	}

	return &res, nil
}

// issueAndDispatchCode rotates the user's verification code and queues its
// out-of-band delivery. Each call invalidates the previous code: the stored
// row is overwritten, never appended. The expiry is computed here, at write
// time, so callers cannot extend a code's lifetime.
func (s *userService) issueAndDispatchCode(ctx context.Context, user *domain.User) error {
	allowed, err := s.throttle.Allow(ctx, user.ID.String())
	if err != nil {
		return fmt.Errorf("resend throttle check failed: %w", err)
	}
	if !allowed {
		return ErrResendThrottled
	}

	code := s.otpGenerator.RandomCode()

	verification := &domain.UserVerification{
		UserID:    user.ID,
		Code:      code,
		ExpiresAt: time.Now().Add(s.authConfig.VerificationCodeTTL),
	}
	if err := s.verificationRepository.Upsert(ctx, verification); err != nil {
		return fmt.Errorf("upsert verification failed: %w", err)
	}

	smsTask, err := task.NewSendSMSTask(user.PhoneNumber, code)
	if err != nil {
		return fmt.Errorf("build send sms task failed: %w", err)
	}
	if err := s.queue.Enqueue(ctx, smsTask); err != nil {
		return fmt.Errorf("enqueue send sms task failed: %w", err)
	}

	return nil
}

// SignUp registers a phone number or resumes a pending registration.
// A verified phone number is terminal for signup attempts. An unverified
// one is reused, with the password hash replaced by the newly supplied
// password so the owner can restart the flow after a typo.
func (s *userService) SignUp(ctx context.Context, input SignUpInput) (*AuthResult, error) {
	passwordHash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password failed: %w", err)
	}

	user, err := s.userRepository.GetByPhone(ctx, input.PhoneNumber)
	switch {
	case err == nil:
		if user.AuthStatus {
			return nil, ErrPhoneAlreadyInUse
		}
		if err := s.userRepository.UpdatePasswordHash(ctx, user.ID, passwordHash); err != nil {
			return nil, fmt.Errorf("update password hash failed: %w", err)
		}
		user.PasswordHash = passwordHash
	case errors.Is(err, domain.ErrNotFound):
		user, err = s.registerUser(ctx, input.PhoneNumber, passwordHash)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("get user by phone failed: %w", err)
	}

	if err := s.issueAndDispatchCode(ctx, user); err != nil {
		return nil, err
	}

	tokens, err := s.createSession(ctx, &user.ID, &input.UserAgent, &input.IP)
	if err != nil {
		return nil, err
	}

	return &AuthResult{User: user, Tokens: *tokens}, nil
}

// registerUser inserts a fresh unverified user. The phone column carries a
// unique index, so when two signups race the loser gets a duplicate-entry
// error and adopts the winner's row instead of failing.
func (s *userService) registerUser(ctx context.Context, phoneNumber string, passwordHash string) (*domain.User, error) {
	userID, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generate user id failed: %w", err)
	}

	user := &domain.User{
		ID:           userID,
		PhoneNumber:  phoneNumber,
		PasswordHash: passwordHash,
		AuthStatus:   false,
		IsActive:     true,
	}

	err = s.userRepository.Create(ctx, user)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, domain.ErrDuplicateEntry) {
		return nil, fmt.Errorf("create user failed: %w", err)
	}

	existing, err := s.userRepository.GetByPhone(ctx, phoneNumber)
	if err != nil {
		return nil, fmt.Errorf("fetch user after duplicate entry failed: %w", err)
	}
	if existing.AuthStatus {
		return nil, ErrPhoneAlreadyInUse
	}

	return existing, nil
}

func (s *userService) SignIn(ctx context.Context, input SignInInput) (*AuthResult, error) {
	user, err := s.userRepository.GetByPhone(ctx, input.PhoneNumber)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user by phone failed: %w", err)
	}

	if !s.hasher.Equal(input.Password, user.PasswordHash) {
		return nil, ErrPasswordMismatch
	}

	// Login does not require a verified phone; unverified sessions carry
	// no extra privileges and are needed to reach the verify endpoint.
	tokens, err := s.createSession(ctx, &user.ID, &input.UserAgent, &input.IP)
	if err != nil {
		return nil, err
	}

	return &AuthResult{User: user, Tokens: *tokens}, nil
}

// Verify proves phone ownership. The code comparison, the expiry check and
// the auth_status flip happen in a single conditional update, so a code
// rotated by a concurrent resend can never be matched against a stale read.
func (s *userService) Verify(ctx context.Context, userID uuid.UUID, code string, userAgent string, userIP string) (*AuthResult, error) {
	user, err := s.userRepository.GetOneByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user by id failed: %w", err)
	}

	if user.AuthStatus {
		return nil, ErrAlreadyVerified
	}

	err = s.verificationRepository.Confirm(ctx, userID, code, time.Now())
	if err != nil {
		if errors.Is(err, domain.ErrNoRowsAffected) {
			return nil, ErrCodeMismatch
		}
		return nil, fmt.Errorf("confirm verification failed: %w", err)
	}

	user.AuthStatus = true

	tokens, err := s.createSession(ctx, &user.ID, &userAgent, &userIP)
	if err != nil {
		return nil, err
	}

	return &AuthResult{User: user, Tokens: *tokens}, nil
}

func (s *userService) ResendCode(ctx context.Context, userID uuid.UUID) error {
	user, err := s.userRepository.GetOneByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("get user by id failed: %w", err)
	}

	if user.AuthStatus {
		return ErrAlreadyVerified
	}

	return s.issueAndDispatchCode(ctx, user)
}

// RefreshTokens rotates a refresh session: the presented token is retired
// and a new pair is minted. An expired session is deleted on sight.
func (s *userService) RefreshTokens(ctx context.Context, refreshToken string, userAgent string, userIP string) (*Tokens, error) {
	token, err := s.tokenManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, ErrSessionNotFound
	}

	session, err := s.sessionRepository.GetByToken(ctx, *token)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("get refresh session failed: %w", err)
	}

	if time.Now().After(session.ExpiresIn) {
		if err := s.sessionRepository.DeleteByID(ctx, session.ID); err != nil && !errors.Is(err, domain.ErrNoRowsAffected) {
			return nil, fmt.Errorf("delete expired refresh session failed: %w", err)
		}
		return nil, ErrSessionExpired
	}

	if err := s.sessionRepository.DeleteByID(ctx, session.ID); err != nil {
		if errors.Is(err, domain.ErrNoRowsAffected) {
			// Lost a race with another rotation of the same token.
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("delete refresh session failed: %w", err)
	}

	return s.createSession(ctx, &session.UserID, &userAgent, &userIP)
}

func (s *userService) GetOneByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.userRepository.GetOneByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
