package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/varthajanapada/newsroom-backend/internal/config"
	"github.com/varthajanapada/newsroom-backend/internal/domain"
	"github.com/varthajanapada/newsroom-backend/internal/handler"
	"github.com/varthajanapada/newsroom-backend/internal/middleware"
	"github.com/varthajanapada/newsroom-backend/internal/migration"
	"github.com/varthajanapada/newsroom-backend/internal/repository"
	"github.com/varthajanapada/newsroom-backend/internal/routes"
	"github.com/varthajanapada/newsroom-backend/internal/service"
	pkgcache "github.com/varthajanapada/newsroom-backend/pkg/cache"
	"github.com/varthajanapada/newsroom-backend/pkg/jwt"
	pkglogger "github.com/varthajanapada/newsroom-backend/pkg/logger"
	pkgredis "github.com/varthajanapada/newsroom-backend/pkg/redis"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// @title           Varthajanapada Newsroom API
// @version         1.0
// @description     Content management backend with moderation workflow and per-document version history
//
// @host            localhost:8080
// @BasePath        /api/v1
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Authorization header using the Bearer scheme. Example: "Bearer {token}"

// getConfigPath returns config file path based on APP_ENV environment variable
func getConfigPath() string {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}
	return fmt.Sprintf("configs/config.%s.yaml", env)
}

func main() {
	dotenvFiles := config.LoadDotEnv()

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}
	pkglogger.Init(env)
	zlog := pkglogger.Get()
	zlog.Info().Str("env", env).Strs("env_files", dotenvFiles).Msg("starting")

	configPath := getConfigPath()
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// MySQL
	db, err := initDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	zlog.Info().Msg("connected to MySQL")
	if err := migration.Run(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	// Redis
	redisClient, err := pkgredis.NewClient(
		cfg.Redis.Host,
		cfg.Redis.Port,
		cfg.Redis.Password,
		cfg.Redis.DB,
		cfg.Redis.PoolSize,
	)
	if err != nil {
		zlog.Warn().Err(err).Msg("Redis unavailable, continuing without cache")
		redisClient = nil
	} else {
		zlog.Info().Msg("connected to Redis")
	}

	var cacheService pkgcache.Service
	if redisClient != nil {
		cacheService = pkgcache.NewService(redisClient)
	}

	jwtManager := jwt.NewManager(cfg.JWT.Secret, time.Duration(cfg.JWT.ExpiresIn)*time.Second)

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	// CORS
	allowOrigins := cfg.CORS.AllowOrigins
	if allowOrigins == "" {
		allowOrigins = "http://localhost:3000"
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     splitAndTrim(allowOrigins, ","),
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		AllowCredentials: true,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		ExposeHeaders:    []string{"X-Request-ID", "X-Cache"},
		MaxAge:           86400,
	}))

	router.Use(middleware.Metrics())
	router.Use(middleware.RequestLogger())

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health Check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": cfg.App.Name,
			"time":    time.Now().Unix(),
		})
	})

	// Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Repositories
	categoryRepo := repository.NewCategoryRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	newsStore := repository.NewContentStore(db, func() *domain.News { return &domain.News{} })
	videoStore := repository.NewContentStore(db, func() *domain.Video { return &domain.Video{} })
	longVideoStore := repository.NewContentStore(db, func() *domain.LongVideo { return &domain.LongVideo{} })
	magazineStore := repository.NewContentStore(db, func() *domain.Magazine { return &domain.Magazine{} })
	magazine2Store := repository.NewContentStore(db, func() *domain.Magazine2 { return &domain.Magazine2{} })
	photoStore := repository.NewContentStore(db, func() *domain.Photo { return &domain.Photo{} })
	announcementRepo := repository.NewAnnouncementRepository(db)

	// Services, one moderation/versioning engine per content kind
	newsSvc := service.NewContentService(domain.KindNews, newsStore,
		repository.NewVersionLedger(db, domain.KindNews), categoryRepo,
		func() *domain.News { return &domain.News{} })
	videoSvc := service.NewContentService(domain.KindVideo, videoStore,
		repository.NewVersionLedger(db, domain.KindVideo), categoryRepo,
		func() *domain.Video { return &domain.Video{} })
	longVideoSvc := service.NewContentService(domain.KindLongVideo, longVideoStore,
		repository.NewVersionLedger(db, domain.KindLongVideo), categoryRepo,
		func() *domain.LongVideo { return &domain.LongVideo{} })
	magazineSvc := service.NewContentService(domain.KindMagazine, magazineStore,
		repository.NewVersionLedger(db, domain.KindMagazine), nil,
		func() *domain.Magazine { return &domain.Magazine{} })
	magazine2Svc := service.NewContentService(domain.KindMagazine2, magazine2Store,
		repository.NewVersionLedger(db, domain.KindMagazine2), nil,
		func() *domain.Magazine2 { return &domain.Magazine2{} })

	categorySvc := service.NewCategoryService(categoryRepo)
	commentSvc := service.NewCommentService(commentRepo, newsStore)
	photoSvc := service.NewPhotoService(photoStore)
	announcementSvc := service.NewAnnouncementService(announcementRepo)

	// Handlers
	h := routes.Handlers{
		News: handler.NewContentHandler[*domain.News, domain.CreateNewsRequest, domain.UpdateNewsRequest](
			newsSvc, cacheService, handler.NewsListFilter),
		Videos: handler.NewContentHandler[*domain.Video, domain.CreateVideoRequest, domain.UpdateVideoRequest](
			videoSvc, cacheService, handler.VideoListFilter),
		LongVideos: handler.NewContentHandler[*domain.LongVideo, domain.CreateLongVideoRequest, domain.UpdateLongVideoRequest](
			longVideoSvc, cacheService, handler.VideoListFilter),
		Magazines: handler.NewContentHandler[*domain.Magazine, domain.CreateMagazineRequest, domain.UpdateMagazineRequest](
			magazineSvc, cacheService, handler.MagazineListFilter),
		Magazines2: handler.NewContentHandler[*domain.Magazine2, domain.CreateMagazine2Request, domain.UpdateMagazine2Request](
			magazine2Svc, cacheService, handler.MagazineListFilter),
		Categories:    handler.NewCategoryHandler(categorySvc),
		Comments:      handler.NewCommentHandler(commentSvc),
		Photos:        handler.NewPhotoHandler(photoSvc),
		Announcements: handler.NewAnnouncementHandler(announcementSvc),
	}
	routes.Setup(router, h, jwtManager)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	zlog.Info().Str("addr", addr).Msg("listening")
	if err := router.Run(addr); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

// initDB opens the MySQL connection. TranslateError turns driver
// duplicate-key errors into gorm.ErrDuplicatedKey, which the version
// ledger relies on to report write conflicts.
func initDB(cfg *config.Config) (*gorm.DB, error) {
	logLevel := gormlogger.Warn
	if cfg.IsDevelopment() {
		logLevel = gormlogger.Info
	}

	db, err := gorm.Open(mysql.Open(cfg.Database.DSN()), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(logLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

func splitAndTrim(s, sep string) []string {
	parts := strings.Split(s, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
