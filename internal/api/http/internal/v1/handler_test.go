package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/maslahat/backend/internal/config"
	"github.com/maslahat/backend/internal/domain"
	"github.com/maslahat/backend/internal/service"
	"github.com/maslahat/backend/pkg/auth"
	"github.com/maslahat/backend/pkg/validator"
)

type usersServiceMock struct {
	mock.Mock
}

func (m *usersServiceMock) SignUp(ctx context.Context, input service.SignUpInput) (*service.AuthResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.AuthResult), args.Error(1)
}

func (m *usersServiceMock) SignIn(ctx context.Context, input service.SignInInput) (*service.AuthResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.AuthResult), args.Error(1)
}

func (m *usersServiceMock) Verify(ctx context.Context, userID uuid.UUID, code string, userAgent string, userIP string) (*service.AuthResult, error) {
	args := m.Called(ctx, userID, code, userAgent, userIP)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.AuthResult), args.Error(1)
}

func (m *usersServiceMock) ResendCode(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *usersServiceMock) RefreshTokens(ctx context.Context, refreshToken string, userAgent string, userIP string) (*service.Tokens, error) {
	args := m.Called(ctx, refreshToken, userAgent, userIP)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Tokens), args.Error(1)
}

func (m *usersServiceMock) GetOneByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type appealsServiceMock struct {
	mock.Mock
}

func (m *appealsServiceMock) Submit(ctx context.Context, input service.SubmitAppealInput) (*domain.Appeal, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Appeal), args.Error(1)
}

type commentsServiceMock struct {
	mock.Mock
}

func (m *commentsServiceMock) Submit(ctx context.Context, input service.SubmitCommentInput) (*domain.Comment, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Comment), args.Error(1)
}

type handlerFixture struct {
	router       *gin.Engine
	tokenManager auth.TokenManager
	users        *usersServiceMock
	appeals      *appealsServiceMock
	comments     *commentsServiceMock
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()

	gin.SetMode(gin.TestMode)
	validator.RegisterGinValidator()

	tokenManager, err := auth.NewManager(config.JWTConfig{
		AccessTokenTTL:  time.Minute,
		RefreshTokenTTL: time.Hour,
		SigningKey:      "handler-test-key",
	})
	require.NoError(t, err)

	users := new(usersServiceMock)
	appeals := new(appealsServiceMock)
	comments := new(commentsServiceMock)

	handler := NewHandler(&service.Services{
		Users:    users,
		Appeals:  appeals,
		Comments: comments,
	}, tokenManager, &config.Config{})

	router := gin.New()
	handler.Init(router.Group("/api"))

	return &handlerFixture{
		router:       router,
		tokenManager: tokenManager,
		users:        users,
		appeals:      appeals,
		comments:     comments,
	}
}

func (f *handlerFixture) do(t *testing.T, method, target, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func (f *handlerFixture) tokenFor(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	token, _, err := f.tokenManager.NewJWT(&userID)
	require.NoError(t, err)
	return token
}

func authResultFor(user *domain.User) *service.AuthResult {
	return &service.AuthResult{
		User: user,
		Tokens: service.Tokens{
			AccessToken:  "access",
			RefreshToken: uuid.New(),
		},
	}
}

func someUser(verified bool) *domain.User {
	return &domain.User{
		ID:          uuid.New(),
		PhoneNumber: "+998901234567",
		AuthStatus:  verified,
		IsActive:    true,
		CreatedAt:   time.Now(),
	}
}

func TestSignUpHandler_Created(t *testing.T) {
	f := newHandlerFixture(t)

	user := someUser(false)
	f.users.On("SignUp", mock.Anything, mock.MatchedBy(func(input service.SignUpInput) bool {
		return input.PhoneNumber == "+998901234567" && input.Password == "qwerty123"
	})).Return(authResultFor(user), nil)

	rec := f.do(t, http.MethodPost, "/api/v1/auth/signup", "", gin.H{
		"phone_number": "+998901234567",
		"password":     "qwerty123",
	})

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp authResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, user.ID.String(), resp.User.ID)
	require.False(t, resp.User.AuthStatus)
	require.Equal(t, "access", resp.Tokens.AccessToken)
	f.users.AssertExpectations(t)
}

func TestSignUpHandler_InvalidPhone(t *testing.T) {
	f := newHandlerFixture(t)

	rec := f.do(t, http.MethodPost, "/api/v1/auth/signup", "", gin.H{
		"phone_number": "901234567",
		"password":     "qwerty123",
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp ValidationErrorStruct
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, 6000, resp.ErrorCode)
	require.Len(t, resp.Errors, 1)
	require.Equal(t, "phone_number", resp.Errors[0].FieldKey)
	f.users.AssertNotCalled(t, "SignUp", mock.Anything, mock.Anything)
}

func TestSignUpHandler_PhoneTaken(t *testing.T) {
	f := newHandlerFixture(t)

	f.users.On("SignUp", mock.Anything, mock.Anything).Return(nil, service.ErrPhoneAlreadyInUse)

	rec := f.do(t, http.MethodPost, "/api/v1/auth/signup", "", gin.H{
		"phone_number": "+998901234567",
		"password":     "qwerty123",
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		ErrorCode int `json:"error_code"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, PhoneAlreadyInUseCode, resp.ErrorCode)
}

func TestVerifyHandler_NoToken(t *testing.T) {
	f := newHandlerFixture(t)

	rec := f.do(t, http.MethodPost, "/api/v1/auth/verify", "", gin.H{"code": "1234"})

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	f.users.AssertNotCalled(t, "Verify", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestVerifyHandler_Success(t *testing.T) {
	f := newHandlerFixture(t)

	user := someUser(true)
	f.users.On("Verify", mock.Anything, user.ID, "1234", mock.Anything, mock.Anything).
		Return(authResultFor(user), nil)

	rec := f.do(t, http.MethodPost, "/api/v1/auth/verify", f.tokenFor(t, user.ID), gin.H{"code": "1234"})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp authResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.User.AuthStatus)
	f.users.AssertExpectations(t)
}

func TestVerifyHandler_CodeMismatch(t *testing.T) {
	f := newHandlerFixture(t)

	userID := uuid.New()
	f.users.On("Verify", mock.Anything, userID, "0000", mock.Anything, mock.Anything).
		Return(nil, service.ErrCodeMismatch)

	rec := f.do(t, http.MethodPost, "/api/v1/auth/verify", f.tokenFor(t, userID), gin.H{"code": "0000"})

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		ErrorCode int `json:"error_code"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, CodeMismatchCode, resp.ErrorCode)
}

func TestResendCodeHandler_Throttled(t *testing.T) {
	f := newHandlerFixture(t)

	userID := uuid.New()
	f.users.On("ResendCode", mock.Anything, userID).Return(service.ErrResendThrottled)

	rec := f.do(t, http.MethodPost, "/api/v1/auth/resend-code", f.tokenFor(t, userID), nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		ErrorCode int `json:"error_code"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, ResendThrottledCode, resp.ErrorCode)
}

func TestRefreshHandler_Rotation(t *testing.T) {
	f := newHandlerFixture(t)

	refreshed := &service.Tokens{AccessToken: "new-access", RefreshToken: uuid.New()}
	old := uuid.New().String()
	f.users.On("RefreshTokens", mock.Anything, old, mock.Anything, mock.Anything).Return(refreshed, nil)

	rec := f.do(t, http.MethodPost, "/api/v1/auth/refresh", "", gin.H{"refresh_token": old})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp tokensResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "new-access", resp.AccessToken)
	require.Equal(t, refreshed.RefreshToken, resp.RefreshToken)
}

func TestMeHandler(t *testing.T) {
	f := newHandlerFixture(t)

	user := someUser(true)
	f.users.On("GetOneByID", mock.Anything, user.ID).Return(user, nil)

	rec := f.do(t, http.MethodGet, "/api/v1/users/me", f.tokenFor(t, user.ID), nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp userResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, user.PhoneNumber, resp.PhoneNumber)
}

func TestSubmitAppealHandler(t *testing.T) {
	f := newHandlerFixture(t)

	expertID := uuid.New()
	appeal := &domain.Appeal{
		ID:          uuid.New(),
		ExpertID:    expertID,
		FullName:    "Ali Valiyev",
		PhoneNumber: "+998909876543",
		Description: "Need a consultation",
		CreatedAt:   time.Now(),
	}
	f.appeals.On("Submit", mock.Anything, service.SubmitAppealInput{
		ExpertID:    expertID,
		FullName:    "Ali Valiyev",
		PhoneNumber: "+998909876543",
		Description: "Need a consultation",
	}).Return(appeal, nil)

	rec := f.do(t, http.MethodPost, "/api/v1/appeals", "", gin.H{
		"expert_id":    expertID.String(),
		"full_name":    "Ali Valiyev",
		"phone_number": "+998909876543",
		"description":  "Need a consultation",
	})

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp appealResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, appeal.ID.String(), resp.ID)
	f.appeals.AssertExpectations(t)
}

func TestSubmitCommentHandler_BadExpertID(t *testing.T) {
	f := newHandlerFixture(t)

	userID := uuid.New()
	rec := f.do(t, http.MethodPost, "/api/v1/experts/not-a-uuid/comments", f.tokenFor(t, userID), gin.H{
		"degree":      5,
		"description": "great",
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		ErrorCode int `json:"error_code"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, InvalidIdentifierCode, resp.ErrorCode)
	f.comments.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
}

func TestSubmitCommentHandler_Success(t *testing.T) {
	f := newHandlerFixture(t)

	userID := uuid.New()
	expertID := uuid.New()
	comment := &domain.Comment{
		ID:          uuid.New(),
		ExpertID:    expertID,
		UserID:      userID,
		Degree:      4,
		Description: "helpful session",
		CreatedAt:   time.Now(),
	}
	f.comments.On("Submit", mock.Anything, service.SubmitCommentInput{
		ExpertID:    expertID,
		UserID:      userID,
		Degree:      4,
		Description: "helpful session",
	}).Return(comment, nil)

	rec := f.do(t, http.MethodPost, "/api/v1/experts/"+expertID.String()+"/comments", f.tokenFor(t, userID), gin.H{
		"degree":      4,
		"description": "helpful session",
	})

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp commentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, comment.ID.String(), resp.ID)
	require.Equal(t, 4, resp.Degree)
	f.comments.AssertExpectations(t)
}
