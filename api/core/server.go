package core

import (
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
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

// ServerDependencies 服务器依赖项
type ServerDependencies struct {
	DB             *gorm.DB
	Config         *config.Config
	TokenService   *auth.TokenService
	LoginService   *auth.LoginService
	AccountsRepo   *repoAccounts.Repository
	SiteConfigRepo *repoSiteconfig.Repository
	MemoryDaysRepo *repoMemorydays.Repository
	AlbumsRepo     *repoAlbums.Repository
	LoveListRepo   *repoLovelist.Repository
	Store          *storage.LocalStore
}

// setupRouter 组装 gin 路由
func setupRouter(deps *ServerDependencies) (*gin.Engine, func()) {
	cfg := deps.Config
	router := gin.New()

	if !config.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		router.Use(gin.Logger())
	}
	router.Use(gin.Recovery())

	// 旧版前端部署在任意来源，放开 CORS
	router.Use(cors.New(cors.Config{
		AllowOriginFunc:  func(origin string) bool { return true },
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.SetTrustedProxies(nil)

	// 限制上传文件大小
	router.MaxMultipartMemory = int64(cfg.UploadMaxSizeMB) << 20

	// 静态文件：上传目录整体挂载，旧数据的 /img 目录单独兼容挂载
	router.Static("/static", cfg.StaticDir)
	router.Static("/img", filepath.Join(cfg.StaticDir, "img"))

	authRateLimiter := middleware.NewIPRateLimiter(
		cfg.RateLimitAuthRPS,
		cfg.RateLimitAuthBurst,
		cfg.RateLimitExpireTime,
	)
	cleanup := func() {
		authRateLimiter.StopCleanup()
	}

	RegisterRoutes(router, &RouterDependencies{
		DB:              deps.DB,
		Config:          cfg,
		TokenService:    deps.TokenService,
		LoginService:    deps.LoginService,
		AccountsRepo:    deps.AccountsRepo,
		SiteConfigRepo:  deps.SiteConfigRepo,
		MemoryDaysRepo:  deps.MemoryDaysRepo,
		AlbumsRepo:      deps.AlbumsRepo,
		LoveListRepo:    deps.LoveListRepo,
		Store:           deps.Store,
		AuthRateLimiter: authRateLimiter,
	})

	return router, cleanup
}

// StartServer 创建 http.Server
func StartServer(deps *ServerDependencies) (*http.Server, func()) {
	cfg := deps.Config
	router, clean := setupRouter(deps)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.ServerReadTimeout,
		WriteTimeout: cfg.ServerWriteTimeout,
		IdleTimeout:  cfg.ServerIdleTimeout,
	}

	return srv, clean
}
