package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/varthajanapada/newsroom-backend/internal/common"
	"github.com/varthajanapada/newsroom-backend/internal/domain"
	"github.com/varthajanapada/newsroom-backend/internal/middleware"
	"github.com/varthajanapada/newsroom-backend/internal/service"
	"github.com/varthajanapada/newsroom-backend/pkg/cache"
	"github.com/varthajanapada/newsroom-backend/pkg/logger"
)

// CreatePayload a creation request body. The pointer constraint lets the
// handler bind into a fresh C and call the pointer methods on it.
type CreatePayload[E domain.Content, C any] interface {
	*C
	Normalize() error
	ToEntity() E
	CategoryRef() *string
}

// UpdatePayload a partial-update request body
type UpdatePayload[E domain.Content, U any] interface {
	*U
	Normalize() error
	service.Patch[E]
}

// ListFilter parses optional query filters into store conditions
type ListFilter func(c *gin.Context) ([]any, error)

// ContentHandler HTTP endpoints for one content kind, generic over the
// entity and its create/update request shapes
type ContentHandler[E domain.Content, C, U any, PC CreatePayload[E, C], PU UpdatePayload[E, U]] struct {
	svc    *service.ContentService[E]
	cache  cache.Service
	filter ListFilter
}

// NewContentHandler creates the endpoints for one content kind.
// cacheSvc and filter may be nil.
func NewContentHandler[E domain.Content, C, U any, PC CreatePayload[E, C], PU UpdatePayload[E, U]](
	svc *service.ContentService[E],
	cacheSvc cache.Service,
	filter ListFilter,
) *ContentHandler[E, C, U, PC, PU] {
	return &ContentHandler[E, C, U, PC, PU]{svc: svc, cache: cacheSvc, filter: filter}
}

// Create handles POST /. Admin-created content goes live immediately;
// everything else awaits moderation.
func (h *ContentHandler[E, C, U, PC, PU]) Create(c *gin.Context) {
	var req C
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	payload := PC(&req)
	if err := payload.Normalize(); err != nil {
		common.ErrorFrom(c, err)
		return
	}

	actor := middleware.GetActor(c)
	entity, err := h.svc.Create(c.Request.Context(), payload.ToEntity(), actor, payload.CategoryRef())
	if err != nil {
		common.ErrorFrom(c, err)
		return
	}

	h.invalidate(c)
	common.CreatedResponse(c, entity)
}

// List handles GET /. Unfiltered lists are served from cache when warm.
func (h *ContentHandler[E, C, U, PC, PU]) List(c *gin.Context) {
	var conds []any
	if h.filter != nil {
		var err error
		conds, err = h.filter(c)
		if err != nil {
			common.ErrorFrom(c, err)
			return
		}
	}

	cacheable := len(conds) == 0
	if cacheable && h.cache != nil {
		if data, err := h.cache.GetList(c.Request.Context(), string(h.svc.Kind())); err == nil {
			c.Header("X-Cache", "HIT")
			common.SuccessResponse(c, json.RawMessage(data))
			return
		}
	}

	items, err := h.svc.List(c.Request.Context(), conds...)
	if err != nil {
		common.ErrorFrom(c, err)
		return
	}

	if cacheable && h.cache != nil {
		if err := h.cache.SetList(c.Request.Context(), string(h.svc.Kind()), items); err != nil {
			logger.Get().Warn().Err(err).Str("kind", string(h.svc.Kind())).Msg("cache set failed")
		}
		c.Header("X-Cache", "MISS")
	}
	common.SuccessWithMeta(c, items, &common.Meta{Total: int64(len(items))})
}

// Latest handles GET /latest
func (h *ContentHandler[E, C, U, PC, PU]) Latest(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 || limit > 100 {
		common.ErrorResponse(c, http.StatusBadRequest, "limit must be between 1 and 100", nil)
		return
	}

	if limit == 10 && h.cache != nil {
		if data, err := h.cache.GetLatest(c.Request.Context(), string(h.svc.Kind())); err == nil {
			c.Header("X-Cache", "HIT")
			common.SuccessResponse(c, json.RawMessage(data))
			return
		}
	}

	items, err := h.svc.Latest(c.Request.Context(), limit)
	if err != nil {
		common.ErrorFrom(c, err)
		return
	}

	if limit == 10 && h.cache != nil {
		if err := h.cache.SetLatest(c.Request.Context(), string(h.svc.Kind()), items); err != nil {
			logger.Get().Warn().Err(err).Str("kind", string(h.svc.Kind())).Msg("cache set failed")
		}
		c.Header("X-Cache", "MISS")
	}
	common.SuccessResponse(c, items)
}

// Search handles GET /search?q=
func (h *ContentHandler[E, C, U, PC, PU]) Search(c *gin.Context) {
	items, err := h.svc.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		common.ErrorFrom(c, err)
		return
	}
	common.SuccessWithMeta(c, items, &common.Meta{Total: int64(len(items))})
}

// Count handles GET /count
func (h *ContentHandler[E, C, U, PC, PU]) Count(c *gin.Context) {
	total, err := h.svc.Count(c.Request.Context())
	if err != nil {
		common.ErrorFrom(c, err)
		return
	}
	common.SuccessResponse(c, gin.H{"count": total})
}

// Get handles GET /:id
func (h *ContentHandler[E, C, U, PC, PU]) Get(c *gin.Context) {
	entity, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		common.ErrorFrom(c, err)
		return
	}
	common.SuccessResponse(c, entity)
}

// Update handles PUT /:id. The pre-edit state is snapshotted into the
// version ledger before the patch lands; the edit resets moderation
// status according to the caller's role.
func (h *ContentHandler[E, C, U, PC, PU]) Update(c *gin.Context) {
	var req U
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	payload := PU(&req)
	if err := payload.Normalize(); err != nil {
		common.ErrorFrom(c, err)
		return
	}

	actor := middleware.GetActor(c)
	entity, err := h.svc.ApplyEdit(c.Request.Context(), c.Param("id"), actor, payload)
	if err != nil {
		common.ErrorFrom(c, err)
		return
	}

	h.invalidate(c)
	common.SuccessResponse(c, entity)
}

// Delete handles DELETE /:id
func (h *ContentHandler[E, C, U, PC, PU]) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		common.ErrorFrom(c, err)
		return
	}
	h.invalidate(c)
	common.SuccessResponse(c, gin.H{"deleted": true})
}

// Approve handles PATCH /:id/approve
func (h *ContentHandler[E, C, U, PC, PU]) Approve(c *gin.Context) {
	actor := middleware.GetActor(c)
	entity, err := h.svc.Approve(c.Request.Context(), c.Param("id"), actor)
	if err != nil {
		common.ErrorFrom(c, err)
		return
	}
	h.invalidate(c)
	common.SuccessResponse(c, entity)
}

// History handles GET /:id/history, latest version first
func (h *ContentHandler[E, C, U, PC, PU]) History(c *gin.Context) {
	versions, err := h.svc.GetHistory(c.Request.Context(), c.Param("id"))
	if err != nil {
		common.ErrorFrom(c, err)
		return
	}
	common.SuccessWithMeta(c, versions, &common.Meta{Total: int64(len(versions))})
}

// Revert handles POST /:id/revert/:versionNumber. The path version is
// the edit being undone: the entity is restored to the snapshot one
// below it and that version record is discarded.
func (h *ContentHandler[E, C, U, PC, PU]) Revert(c *gin.Context) {
	version, err := parseVersion(c.Param("versionNumber"))
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid version number", err)
		return
	}

	entity, err := h.svc.RevertToPreviousVersion(c.Request.Context(), c.Param("id"), version)
	if err != nil {
		common.ErrorFrom(c, err)
		return
	}
	h.invalidate(c)
	common.SuccessResponse(c, entity)
}

// DeleteVersion handles DELETE /:id/versions/:versionNumber. Remaining
// versions are renumbered so the ledger stays dense.
func (h *ContentHandler[E, C, U, PC, PU]) DeleteVersion(c *gin.Context) {
	version, err := parseVersion(c.Param("versionNumber"))
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid version number", err)
		return
	}

	if err := h.svc.DeleteVersion(c.Request.Context(), c.Param("id"), version); err != nil {
		common.ErrorFrom(c, err)
		return
	}
	common.SuccessResponse(c, gin.H{"deleted": true})
}

// Register mounts the kind's routes on the group. Reads are public;
// mutations require authentication; entity deletion and explicit
// approval additionally require the admin role.
func (h *ContentHandler[E, C, U, PC, PU]) Register(rg *gin.RouterGroup, authn, admin gin.HandlerFunc) {
	rg.GET("", h.List)
	rg.GET("/latest", h.Latest)
	rg.GET("/search", h.Search)
	rg.GET("/count", h.Count)
	rg.GET("/:id", h.Get)
	rg.GET("/:id/history", h.History)

	rg.POST("", authn, h.Create)
	rg.PUT("/:id", authn, h.Update)
	rg.POST("/:id/revert/:versionNumber", authn, h.Revert)
	rg.DELETE("/:id/versions/:versionNumber", authn, h.DeleteVersion)

	rg.DELETE("/:id", authn, admin, h.Delete)
	rg.PATCH("/:id/approve", authn, admin, h.Approve)
}

func (h *ContentHandler[E, C, U, PC, PU]) invalidate(c *gin.Context) {
	if h.cache == nil {
		return
	}
	if err := h.cache.Invalidate(c.Request.Context(), string(h.svc.Kind())); err != nil {
		logger.Get().Warn().Err(err).Str("kind", string(h.svc.Kind())).Msg("cache invalidate failed")
	}
}

func parseVersion(raw string) (uint, error) {
	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(n), nil
}
