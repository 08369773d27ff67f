package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/varthajanapada/newsroom-backend/internal/common"
	"github.com/varthajanapada/newsroom-backend/internal/domain"
	"github.com/varthajanapada/newsroom-backend/internal/middleware"
	"github.com/varthajanapada/newsroom-backend/internal/service"
)

// CategoryHandler HTTP endpoints for content categories
type CategoryHandler struct {
	svc service.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(svc service.CategoryService) *CategoryHandler {
	return &CategoryHandler{svc: svc}
}

// Create godoc
// @Summary Create a category
// @Tags categories
// @Accept json
// @Produce json
// @Param request body domain.CreateCategoryRequest true "Category"
// @Success 201 {object} common.APIResponse
// @Router /categories [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	var req domain.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	category, err := h.svc.CreateCategory(c.Request.Context(), &req, middleware.GetActor(c))
	if err != nil {
		common.ErrorFrom(c, err)
		return
	}
	common.CreatedResponse(c, category)
}

// List godoc
// @Summary List all categories
// @Tags categories
// @Produce json
// @Success 200 {object} common.APIResponse
// @Router /categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.svc.ListCategories(c.Request.Context())
	if err != nil {
		common.ErrorFrom(c, err)
		return
	}
	common.SuccessWithMeta(c, categories, &common.Meta{Total: int64(len(categories))})
}

// Get godoc
// @Summary Get a category by id
// @Tags categories
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} common.APIResponse
// @Router /categories/{id} [get]
func (h *CategoryHandler) Get(c *gin.Context) {
	category, err := h.svc.GetCategory(c.Request.Context(), c.Param("id"))
	if err != nil {
		common.ErrorFrom(c, err)
		return
	}
	common.SuccessResponse(c, category)
}

// Delete godoc
// @Summary Delete a category
// @Tags categories
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} common.APIResponse
// @Router /categories/{id} [delete]
func (h *CategoryHandler) Delete(c *gin.Context) {
	if err := h.svc.DeleteCategory(c.Request.Context(), c.Param("id"), middleware.GetActor(c)); err != nil {
		common.ErrorFrom(c, err)
		return
	}
	common.SuccessResponse(c, gin.H{"deleted": true})
}
