package core

import (
	"net/http"

	"github.com/gin-gonic/gin"
	handlerAlbums "github.com/qlxz/couple-space/api/handler/albums"
	handlerAuth "github.com/qlxz/couple-space/api/handler/auth"
	handlerLovelist "github.com/qlxz/couple-space/api/handler/lovelist"
	handlerMemorydays "github.com/qlxz/couple-space/api/handler/memorydays"
	handlerSiteconfig "github.com/qlxz/couple-space/api/handler/siteconfig"
	"github.com/qlxz/couple-space/api/middleware"
	"github.com/qlxz/couple-space/config"
	repoAccounts "github.com/qlxz/couple-space/database/repo/accounts"
	repoAlbums "github.com/qlxz/couple-space/database/repo/albums"
	repoLovelist "github.com/qlxz/couple-space/database/repo/lovelist"
	repoMemorydays "github.com/qlxz/couple-space/database/repo/memorydays"
	repoSiteconfig "github.com/qlxz/couple-space/database/repo/siteconfig"
	"github.com/qlxz/couple-space/internal/auth"
	"github.com/qlxz/couple-space/storage"
	"gorm.io/gorm"
)

// RouterDependencies 路由注册依赖
type RouterDependencies struct {
	DB              *gorm.DB
	Config          *config.Config
	TokenService    *auth.TokenService
	LoginService    *auth.LoginService
	AccountsRepo    *repoAccounts.Repository
	SiteConfigRepo  *repoSiteconfig.Repository
	MemoryDaysRepo  *repoMemorydays.Repository
	AlbumsRepo      *repoAlbums.Repository
	LoveListRepo    *repoLovelist.Repository
	Store           *storage.LocalStore
	AuthRateLimiter *middleware.IPRateLimiter
}

// RegisterRoutes 注册所有路由
func RegisterRoutes(router *gin.Engine, deps *RouterDependencies) {
	registerBasicRoutes(router, deps)
	registerAPIRoutes(router, deps)
}

// registerBasicRoutes 注册基础路由
func registerBasicRoutes(router *gin.Engine, deps *RouterDependencies) {
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to Couple Space API"})
	})

	healthHandler := NewHealthHandler(deps.DB)
	router.GET("/health", healthHandler.Handle)
}

// registerAPIRoutes 注册 API 路由
func registerAPIRoutes(router *gin.Engine, deps *RouterDependencies) {
	cfg := deps.Config
	maxLimit := cfg.ListMaxLimit

	authHandler := handlerAuth.NewHandler(deps.LoginService)
	configHandler := handlerSiteconfig.NewHandler(deps.SiteConfigRepo, deps.Store)
	memoryDayHandler := handlerMemorydays.NewHandler(deps.MemoryDaysRepo, deps.Store, maxLimit)
	albumHandler := handlerAlbums.NewHandler(deps.AlbumsRepo, deps.Store, maxLimit)
	loveListHandler := handlerLovelist.NewHandler(deps.LoveListRepo, deps.Store, maxLimit)

	requireAuth := middleware.RequireAuth(deps.TokenService, deps.AccountsRepo)

	apiGroup := router.Group("/api")
	apiGroup.Use(func(c *gin.Context) {
		c.Header("Cache-Control", "no-store")
		c.Next()
	})
	{
		// 认证路由
		authGroup := apiGroup.Group("/auth")
		authGroup.Use(deps.AuthRateLimiter.Middleware())
		{
			authGroup.POST("/login", authHandler.LoginHandler)
			authGroup.POST("/register", authHandler.RegisterHandler)
			authGroup.POST("/change-password", requireAuth, authHandler.ChangePasswordHandler)
		}

		// 站点配置
		configGroup := apiGroup.Group("/config")
		{
			configGroup.GET("/", configHandler.GetHandler)
			configGroup.POST("/", requireAuth, configHandler.UpsertHandler)
			configGroup.PUT("/", requireAuth, configHandler.UpsertHandler)
			configGroup.POST("/upload-avatar", requireAuth, configHandler.UploadAvatarHandler)
		}

		// 纪念日
		memorydayGroup := apiGroup.Group("/memoryday")
		{
			memorydayGroup.GET("/", memoryDayHandler.ListHandler)
			memorydayGroup.POST("/", requireAuth, memoryDayHandler.CreateHandler)
			memorydayGroup.PUT("/:id", requireAuth, memoryDayHandler.UpdateHandler)
			memorydayGroup.DELETE("/:id", requireAuth, memoryDayHandler.DeleteHandler)
			memorydayGroup.POST("/:id/photo", requireAuth, memoryDayHandler.UploadPhotoHandler)
			memorydayGroup.DELETE("/photo/:id", requireAuth, memoryDayHandler.DeletePhotoHandler)
		}

		// 相册
		albumGroup := apiGroup.Group("/album")
		{
			albumGroup.GET("/", albumHandler.ListHandler)
			albumGroup.POST("/", requireAuth, albumHandler.CreateHandler)
			albumGroup.PUT("/:id", requireAuth, albumHandler.UpdateHandler)
			albumGroup.DELETE("/:id", requireAuth, albumHandler.DeleteHandler)
			albumGroup.POST("/upload", requireAuth, albumHandler.UploadPhotoHandler)
			albumGroup.DELETE("/photo/:id", requireAuth, albumHandler.DeletePhotoHandler)
			albumGroup.POST("/:id/comments", requireAuth, albumHandler.CreateCommentHandler)
		}

		// 心愿清单
		lovelistGroup := apiGroup.Group("/lovelist")
		{
			lovelistGroup.GET("/", loveListHandler.ListHandler)
			lovelistGroup.POST("/", requireAuth, loveListHandler.CreateHandler)
			lovelistGroup.PUT("/:id", requireAuth, loveListHandler.UpdateHandler)
			lovelistGroup.DELETE("/:id", requireAuth, loveListHandler.DeleteHandler)
			lovelistGroup.POST("/:id/photo", requireAuth, loveListHandler.UploadPhotoHandler)
		}
	}
}
