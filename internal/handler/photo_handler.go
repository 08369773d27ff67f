package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/varthajanapada/newsroom-backend/internal/common"
	"github.com/varthajanapada/newsroom-backend/internal/domain"
	"github.com/varthajanapada/newsroom-backend/internal/middleware"
	"github.com/varthajanapada/newsroom-backend/internal/service"
)

// PhotoHandler HTTP endpoints for gallery photos
type PhotoHandler struct {
	svc service.PhotoService
}

// NewPhotoHandler creates a new PhotoHandler
func NewPhotoHandler(svc service.PhotoService) *PhotoHandler {
	return &PhotoHandler{svc: svc}
}

// Create godoc
// @Summary Upload a photo
// @Tags photos
// @Accept json
// @Produce json
// @Param request body domain.CreatePhotoRequest true "Photo"
// @Success 201 {object} common.APIResponse
// @Router /photos [post]
func (h *PhotoHandler) Create(c *gin.Context) {
	var req domain.CreatePhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	photo, err := h.svc.CreatePhoto(c.Request.Context(), req.ToEntity(), middleware.GetActor(c))
	if err != nil {
		common.ErrorFrom(c, err)
		return
	}
	common.CreatedResponse(c, photo)
}

// Approve godoc
// @Summary Approve a pending photo
// @Tags photos
// @Produce json
// @Param id path string true "Photo ID"
// @Success 200 {object} common.APIResponse
// @Router /photos/{id}/approve [patch]
func (h *PhotoHandler) Approve(c *gin.Context) {
	photo, err := h.svc.ApprovePhoto(c.Request.Context(), c.Param("id"), middleware.GetActor(c))
	if err != nil {
		common.ErrorFrom(c, err)
		return
	}
	common.SuccessResponse(c, photo)
}

// List godoc
// @Summary List all photos
// @Tags photos
// @Produce json
// @Success 200 {object} common.APIResponse
// @Router /photos [get]
func (h *PhotoHandler) List(c *gin.Context) {
	photos, err := h.svc.ListPhotos(c.Request.Context())
	if err != nil {
		common.ErrorFrom(c, err)
		return
	}
	common.SuccessWithMeta(c, photos, &common.Meta{Total: int64(len(photos))})
}

// Get godoc
// @Summary Get a photo by id
// @Tags photos
// @Produce json
// @Param id path string true "Photo ID"
// @Success 200 {object} common.APIResponse
// @Router /photos/{id} [get]
func (h *PhotoHandler) Get(c *gin.Context) {
	photo, err := h.svc.GetPhoto(c.Request.Context(), c.Param("id"))
	if err != nil {
		common.ErrorFrom(c, err)
		return
	}
	common.SuccessResponse(c, photo)
}

// Delete godoc
// @Summary Delete a photo
// @Tags photos
// @Produce json
// @Param id path string true "Photo ID"
// @Success 200 {object} common.APIResponse
// @Router /photos/{id} [delete]
func (h *PhotoHandler) Delete(c *gin.Context) {
	if err := h.svc.DeletePhoto(c.Request.Context(), c.Param("id")); err != nil {
		common.ErrorFrom(c, err)
		return
	}
	common.SuccessResponse(c, gin.H{"deleted": true})
}
