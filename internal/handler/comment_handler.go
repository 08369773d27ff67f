package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/varthajanapada/newsroom-backend/internal/common"
	"github.com/varthajanapada/newsroom-backend/internal/domain"
	"github.com/varthajanapada/newsroom-backend/internal/middleware"
	"github.com/varthajanapada/newsroom-backend/internal/service"
)

// CommentHandler HTTP endpoints for news comments
type CommentHandler struct {
	svc service.CommentService
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(svc service.CommentService) *CommentHandler {
	return &CommentHandler{svc: svc}
}

// Create godoc
// @Summary Add a comment to a news article
// @Tags comments
// @Accept json
// @Produce json
// @Param request body domain.CreateCommentRequest true "Comment"
// @Success 201 {object} common.APIResponse
// @Router /comments [post]
func (h *CommentHandler) Create(c *gin.Context) {
	var req domain.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	comment, err := h.svc.AddComment(c.Request.Context(), &req, middleware.GetActor(c).ID)
	if err != nil {
		common.ErrorFrom(c, err)
		return
	}
	common.CreatedResponse(c, comment)
}

// ListByNews godoc
// @Summary List comments on a news article
// @Tags comments
// @Produce json
// @Param id path string true "News ID"
// @Success 200 {object} common.APIResponse
// @Router /news/{id}/comments [get]
func (h *CommentHandler) ListByNews(c *gin.Context) {
	comments, err := h.svc.ListComments(c.Request.Context(), c.Param("id"))
	if err != nil {
		common.ErrorFrom(c, err)
		return
	}
	common.SuccessWithMeta(c, comments, &common.Meta{Total: int64(len(comments))})
}

// Delete godoc
// @Summary Delete one of the caller's own comments
// @Tags comments
// @Produce json
// @Param id path string true "Comment ID"
// @Success 200 {object} common.APIResponse
// @Router /comments/{id} [delete]
func (h *CommentHandler) Delete(c *gin.Context) {
	if err := h.svc.DeleteComment(c.Request.Context(), c.Param("id"), middleware.GetActor(c).ID); err != nil {
		common.ErrorFrom(c, err)
		return
	}
	common.SuccessResponse(c, gin.H{"deleted": true})
}
