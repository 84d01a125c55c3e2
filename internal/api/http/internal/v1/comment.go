package v1

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/maslahat/backend/internal/service"

	"github.com/gin-gonic/gin"
)

func (h *Handler) initCommentsRoutes(api *gin.RouterGroup) {
	experts := api.Group("/experts")
	{
		experts.POST("/:id/comments", h.userIdentityMiddleware, h.submitComment)
	}
}

type submitCommentInput struct {
	Degree      int    `json:"degree" binding:"required,min=1,max=5"`
	Description string `json:"description" binding:"required"`
}

type commentResponse struct {
	ID          string `json:"id"`
	ExpertID    string `json:"expert_id"`
	UserID      string `json:"user_id"`
	Degree      int    `json:"degree"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
}

// @Summary Submit Comment
// @Tags Comments
// @Description Leave a rating and feedback for an expert
// @ModuleID submitComment
// @Accept  json
// @Produce  json
// @Param id path string true "expert id"
// @Param input body submitCommentInput true "comment details"
// @Success 201 {object} commentResponse
// @Failure 400 {object} ErrorStruct
// @Failure 401
// @Failure 500
// @Security UserAuth
// @Router /experts/{id}/comments [post]
func (h *Handler) submitComment(c *gin.Context) {
	userID, err := h.getUserUUID(c)
	if err != nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	expertID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		errorResponse(c, InvalidIdentifierCode)
		return
	}

	var inp submitCommentInput
	if err := c.ShouldBindJSON(&inp); err != nil {
		validationErrorResponse(c, err)
		return
	}

	comment, err := h.services.Comments.Submit(c.Request.Context(), service.SubmitCommentInput{
		ExpertID:    expertID,
		UserID:      userID,
		Degree:      inp.Degree,
		Description: inp.Description,
	})
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusCreated, commentResponse{
		ID:          comment.ID.String(),
		ExpertID:    comment.ExpertID.String(),
		UserID:      comment.UserID.String(),
		Degree:      comment.Degree,
		Description: comment.Description,
		CreatedAt:   comment.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	})
}
