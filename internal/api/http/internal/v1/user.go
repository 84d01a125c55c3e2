package v1

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/maslahat/backend/internal/domain"
	"github.com/maslahat/backend/internal/service"

	"github.com/gin-gonic/gin"
)

func (h *Handler) initUsersRoutes(api *gin.RouterGroup) {
	auth := api.Group("/auth")
	{
		auth.POST("/signup", h.signUp)
		auth.POST("/signin", h.signIn)
		auth.POST("/verify", h.userIdentityMiddleware, h.verify)
		auth.POST("/resend-code", h.userIdentityMiddleware, h.resendCode)
		auth.POST("/refresh", h.refreshTokens)
	}

	users := api.Group("/users")
	{
		users.GET("/me", h.userIdentityMiddleware, h.me)
	}
}

type signUpInput struct {
	PhoneNumber string `json:"phone_number" binding:"required,phonenumber"`
	Password    string `json:"password" binding:"required,min=6"`
}

type signInInput struct {
	PhoneNumber string `json:"phone_number" binding:"required,phonenumber"`
	Password    string `json:"password" binding:"required"`
}

type verifyInput struct {
	Code string `json:"code" binding:"required,numeric"`
}

type refreshInput struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type userResponse struct {
	ID          string  `json:"id"`
	PhoneNumber string  `json:"phone_number"`
	AuthStatus  bool    `json:"auth_status"`
	BirthDate   *string `json:"birth_date,omitempty"`
	IsActive    bool    `json:"is_active"`
	CreatedAt   string  `json:"created_at"`
}

type tokensResponse struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken uuid.UUID `json:"refresh_token"`
}

type authResponse struct {
	User   userResponse   `json:"user"`
	Tokens tokensResponse `json:"tokens"`
}

func newUserResponse(user *domain.User) userResponse {
	res := userResponse{
		ID:          user.ID.String(),
		PhoneNumber: user.PhoneNumber,
		AuthStatus:  user.AuthStatus,
		IsActive:    user.IsActive,
		CreatedAt:   user.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}

	if user.BirthDate.Valid {
		birthDate := user.BirthDate.Time.Format("2006-01-02")
		res.BirthDate = &birthDate
	}

	return res
}

func newAuthResponse(result *service.AuthResult) authResponse {
	return authResponse{
		User: newUserResponse(result.User),
		Tokens: tokensResponse{
			AccessToken:  result.Tokens.AccessToken,
			RefreshToken: result.Tokens.RefreshToken,
		},
	}
}

// @Summary Sign Up
// @Tags Auth
// @Description Register a phone number and dispatch a verification code
// @ModuleID signUp
// @Accept  json
// @Produce  json
// @Param input body signUpInput true "phone number and password"
// @Success 201 {object} authResponse
// @Failure 400 {object} ErrorStruct
// @Failure 500
// @Router /auth/signup [post]
func (h *Handler) signUp(c *gin.Context) {
	var inp signUpInput
	if err := c.ShouldBindJSON(&inp); err != nil {
		validationErrorResponse(c, err)
		return
	}

	result, err := h.services.Users.SignUp(c.Request.Context(), service.SignUpInput{
		PhoneNumber: inp.PhoneNumber,
		Password:    inp.Password,
		UserAgent:   c.Request.UserAgent(),
		IP:          c.ClientIP(),
	})
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusCreated, newAuthResponse(result))
}

// @Summary Sign In
// @Tags Auth
// @Description Authenticate with phone number and password
// @ModuleID signIn
// @Accept  json
// @Produce  json
// @Param input body signInInput true "phone number and password"
// @Success 200 {object} authResponse
// @Failure 400 {object} ErrorStruct
// @Failure 500
// @Router /auth/signin [post]
func (h *Handler) signIn(c *gin.Context) {
	var inp signInInput
	if err := c.ShouldBindJSON(&inp); err != nil {
		validationErrorResponse(c, err)
		return
	}

	result, err := h.services.Users.SignIn(c.Request.Context(), service.SignInInput{
		PhoneNumber: inp.PhoneNumber,
		Password:    inp.Password,
		UserAgent:   c.Request.UserAgent(),
		IP:          c.ClientIP(),
	})
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, newAuthResponse(result))
}

// @Summary Verify Phone Number
// @Tags Auth
// @Description Confirm phone ownership with the code sent via SMS
// @ModuleID verify
// @Accept  json
// @Produce  json
// @Param input body verifyInput true "verification code"
// @Success 200 {object} authResponse
// @Failure 400 {object} ErrorStruct
// @Failure 401
// @Failure 500
// @Security UserAuth
// @Router /auth/verify [post]
func (h *Handler) verify(c *gin.Context) {
	userID, err := h.getUserUUID(c)
	if err != nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	var inp verifyInput
	if err := c.ShouldBindJSON(&inp); err != nil {
		validationErrorResponse(c, err)
		return
	}

	result, err := h.services.Users.Verify(c.Request.Context(), userID, inp.Code, c.Request.UserAgent(), c.ClientIP())
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, newAuthResponse(result))
}

// @Summary Resend Verification Code
// @Tags Auth
// @Description Rotate the verification code and dispatch it again
// @ModuleID resendCode
// @Accept  json
// @Produce  json
// @Success 200
// @Failure 400 {object} ErrorStruct
// @Failure 401
// @Failure 500
// @Security UserAuth
// @Router /auth/resend-code [post]
func (h *Handler) resendCode(c *gin.Context) {
	userID, err := h.getUserUUID(c)
	if err != nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	if err := h.services.Users.ResendCode(c.Request.Context(), userID); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.Status(http.StatusOK)
}

// @Summary Refresh Tokens
// @Tags Auth
// @Description Rotate a refresh session into a new token pair
// @ModuleID refreshTokens
// @Accept  json
// @Produce  json
// @Param input body refreshInput true "refresh token"
// @Success 200 {object} tokensResponse
// @Failure 400 {object} ErrorStruct
// @Failure 500
// @Router /auth/refresh [post]
func (h *Handler) refreshTokens(c *gin.Context) {
	var inp refreshInput
	if err := c.ShouldBindJSON(&inp); err != nil {
		validationErrorResponse(c, err)
		return
	}

	tokens, err := h.services.Users.RefreshTokens(c.Request.Context(), inp.RefreshToken, c.Request.UserAgent(), c.ClientIP())
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, tokensResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	})
}

// @Summary Current User
// @Tags Users
// @Description Get the authenticated user
// @ModuleID me
// @Accept  json
// @Produce  json
// @Success 200 {object} userResponse
// @Failure 401
// @Failure 500
// @Security UserAuth
// @Router /users/me [get]
func (h *Handler) me(c *gin.Context) {
	userID, err := h.getUserUUID(c)
	if err != nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	user, err := h.services.Users.GetOneByID(c.Request.Context(), userID)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, newUserResponse(user))
}
