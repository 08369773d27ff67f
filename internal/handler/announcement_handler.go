package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/varthajanapada/newsroom-backend/internal/common"
	"github.com/varthajanapada/newsroom-backend/internal/domain"
	"github.com/varthajanapada/newsroom-backend/internal/service"
)

// AnnouncementHandler HTTP endpoints for site-wide announcements
type AnnouncementHandler struct {
	svc service.AnnouncementService
}

// NewAnnouncementHandler creates a new AnnouncementHandler
func NewAnnouncementHandler(svc service.AnnouncementService) *AnnouncementHandler {
	return &AnnouncementHandler{svc: svc}
}

// Create godoc
// @Summary Create an announcement
// @Tags announcements
// @Accept json
// @Produce json
// @Param request body domain.CreateAnnouncementRequest true "Announcement"
// @Success 201 {object} common.APIResponse
// @Router /announcements [post]
func (h *AnnouncementHandler) Create(c *gin.Context) {
	var req domain.CreateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	announcement, err := h.svc.CreateAnnouncement(c.Request.Context(), &req)
	if err != nil {
		common.ErrorFrom(c, err)
		return
	}
	common.CreatedResponse(c, announcement)
}

// List godoc
// @Summary List announcements, latest first
// @Tags announcements
// @Produce json
// @Success 200 {object} common.APIResponse
// @Router /announcements [get]
func (h *AnnouncementHandler) List(c *gin.Context) {
	announcements, err := h.svc.ListAnnouncements(c.Request.Context())
	if err != nil {
		common.ErrorFrom(c, err)
		return
	}
	common.SuccessWithMeta(c, announcements, &common.Meta{Total: int64(len(announcements))})
}

// Get godoc
// @Summary Get an announcement by id
// @Tags announcements
// @Produce json
// @Param id path string true "Announcement ID"
// @Success 200 {object} common.APIResponse
// @Router /announcements/{id} [get]
func (h *AnnouncementHandler) Get(c *gin.Context) {
	announcement, err := h.svc.GetAnnouncement(c.Request.Context(), c.Param("id"))
	if err != nil {
		common.ErrorFrom(c, err)
		return
	}
	common.SuccessResponse(c, announcement)
}

// Update godoc
// @Summary Update an announcement
// @Tags announcements
// @Accept json
// @Produce json
// @Param id path string true "Announcement ID"
// @Param request body domain.UpdateAnnouncementRequest true "Fields to update"
// @Success 200 {object} common.APIResponse
// @Router /announcements/{id} [put]
func (h *AnnouncementHandler) Update(c *gin.Context) {
	var req domain.UpdateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	announcement, err := h.svc.UpdateAnnouncement(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		common.ErrorFrom(c, err)
		return
	}
	common.SuccessResponse(c, announcement)
}

// Delete godoc
// @Summary Delete an announcement
// @Tags announcements
// @Produce json
// @Param id path string true "Announcement ID"
// @Success 200 {object} common.APIResponse
// @Router /announcements/{id} [delete]
func (h *AnnouncementHandler) Delete(c *gin.Context) {
	if err := h.svc.DeleteAnnouncement(c.Request.Context(), c.Param("id")); err != nil {
		common.ErrorFrom(c, err)
		return
	}
	common.SuccessResponse(c, gin.H{"deleted": true})
}
