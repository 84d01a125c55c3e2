package v1

import (
	"github.com/maslahat/backend/internal/config"
	"github.com/maslahat/backend/internal/service"
	"github.com/maslahat/backend/pkg/auth"

	"github.com/gin-gonic/gin"
)

// @title Consultation Booking API
// @version 1.0
// @description Phone-based auth and consultation booking backend

// @BasePath /api/v1

// @securityDefinitions.apikey UserAuth
// @in header
// @name Authorization

type Handler struct {
	services     *service.Services
	tokenManager auth.TokenManager
	config       *config.Config
}

func NewHandler(
	services *service.Services,
	tokenManager auth.TokenManager,
	config *config.Config,
) *Handler {
	return &Handler{
		services:     services,
		tokenManager: tokenManager,
		config:       config,
	}
}

func (h *Handler) Init(api *gin.RouterGroup) {
	v1 := api.Group("v1")

	h.initUsersRoutes(v1)
	h.initAppealsRoutes(v1)
	h.initCommentsRoutes(v1)
}
