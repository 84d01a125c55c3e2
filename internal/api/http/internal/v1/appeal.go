package v1

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/maslahat/backend/internal/service"

	"github.com/gin-gonic/gin"
)

func (h *Handler) initAppealsRoutes(api *gin.RouterGroup) {
	appeals := api.Group("/appeals")
	{
		appeals.POST("", h.submitAppeal)
	}
}

type submitAppealInput struct {
	ExpertID    string `json:"expert_id" binding:"required,uuid"`
	FullName    string `json:"full_name" binding:"required,max=255"`
	PhoneNumber string `json:"phone_number" binding:"required,phonenumber"`
	Description string `json:"description" binding:"required"`
}

type appealResponse struct {
	ID          string `json:"id"`
	ExpertID    string `json:"expert_id"`
	FullName    string `json:"full_name"`
	PhoneNumber string `json:"phone_number"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
}

// @Summary Submit Appeal
// @Tags Appeals
// @Description Leave a consultation request for an expert
// @ModuleID submitAppeal
// @Accept  json
// @Produce  json
// @Param input body submitAppealInput true "appeal details"
// @Success 201 {object} appealResponse
// @Failure 400 {object} ErrorStruct
// @Failure 500
// @Router /appeals [post]
func (h *Handler) submitAppeal(c *gin.Context) {
	var inp submitAppealInput
	if err := c.ShouldBindJSON(&inp); err != nil {
		validationErrorResponse(c, err)
		return
	}

	expertID, err := uuid.Parse(inp.ExpertID)
	if err != nil {
		errorResponse(c, InvalidIdentifierCode)
		return
	}

	appeal, err := h.services.Appeals.Submit(c.Request.Context(), service.SubmitAppealInput{
		ExpertID:    expertID,
		FullName:    inp.FullName,
		PhoneNumber: inp.PhoneNumber,
		Description: inp.Description,
	})
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusCreated, appealResponse{
		ID:          appeal.ID.String(),
		ExpertID:    appeal.ExpertID.String(),
		FullName:    appeal.FullName,
		PhoneNumber: appeal.PhoneNumber,
		Description: appeal.Description,
		CreatedAt:   appeal.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	})
}
