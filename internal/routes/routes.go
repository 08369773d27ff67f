package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/varthajanapada/newsroom-backend/internal/domain"
	"github.com/varthajanapada/newsroom-backend/internal/handler"
	"github.com/varthajanapada/newsroom-backend/internal/middleware"
	"github.com/varthajanapada/newsroom-backend/pkg/jwt"
)

// NewsHandler concrete handler instantiations, one per content kind
type (
	NewsHandler      = handler.ContentHandler[*domain.News, domain.CreateNewsRequest, domain.UpdateNewsRequest, *domain.CreateNewsRequest, *domain.UpdateNewsRequest]
	VideoHandler     = handler.ContentHandler[*domain.Video, domain.CreateVideoRequest, domain.UpdateVideoRequest, *domain.CreateVideoRequest, *domain.UpdateVideoRequest]
	LongVideoHandler = handler.ContentHandler[*domain.LongVideo, domain.CreateLongVideoRequest, domain.UpdateLongVideoRequest, *domain.CreateLongVideoRequest, *domain.UpdateLongVideoRequest]
	MagazineHandler  = handler.ContentHandler[*domain.Magazine, domain.CreateMagazineRequest, domain.UpdateMagazineRequest, *domain.CreateMagazineRequest, *domain.UpdateMagazineRequest]
	Magazine2Handler = handler.ContentHandler[*domain.Magazine2, domain.CreateMagazine2Request, domain.UpdateMagazine2Request, *domain.CreateMagazine2Request, *domain.UpdateMagazine2Request]
)

// Handlers everything the router needs
type Handlers struct {
	News       *NewsHandler
	Videos     *VideoHandler
	LongVideos *LongVideoHandler
	Magazines  *MagazineHandler
	Magazines2 *Magazine2Handler
	Categories    *handler.CategoryHandler
	Comments      *handler.CommentHandler
	Photos        *handler.PhotoHandler
	Announcements *handler.AnnouncementHandler
}

// Setup mounts all API routes under /api/v1
func Setup(r *gin.Engine, h Handlers, jwtManager *jwt.Manager) {
	authn := middleware.JWTAuth(jwtManager)
	admin := middleware.RequireAdmin()

	api := r.Group("/api/v1")

	h.News.Register(api.Group("/news"), authn, admin)
	h.Videos.Register(api.Group("/videos"), authn, admin)
	h.LongVideos.Register(api.Group("/long-videos"), authn, admin)
	h.Magazines.Register(api.Group("/magazines"), authn, admin)
	h.Magazines2.Register(api.Group("/magazines2"), authn, admin)

	categories := api.Group("/categories")
	{
		categories.GET("", h.Categories.List)
		categories.GET("/:id", h.Categories.Get)
		categories.POST("", authn, admin, h.Categories.Create)
		categories.DELETE("/:id", authn, admin, h.Categories.Delete)
	}

	comments := api.Group("/comments")
	{
		comments.POST("", authn, h.Comments.Create)
		comments.DELETE("/:id", authn, h.Comments.Delete)
	}
	api.GET("/news/:id/comments", h.Comments.ListByNews)

	photos := api.Group("/photos")
	{
		photos.GET("", h.Photos.List)
		photos.GET("/:id", h.Photos.Get)
		photos.POST("", authn, h.Photos.Create)
		photos.PATCH("/:id/approve", authn, admin, h.Photos.Approve)
		photos.DELETE("/:id", authn, admin, h.Photos.Delete)
	}

	announcements := api.Group("/announcements")
	{
		announcements.GET("", h.Announcements.List)
		announcements.GET("/:id", h.Announcements.Get)
		announcements.POST("", authn, admin, h.Announcements.Create)
		announcements.PUT("/:id", authn, admin, h.Announcements.Update)
		announcements.DELETE("/:id", authn, admin, h.Announcements.Delete)
	}
}
