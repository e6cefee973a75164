package cmd

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/qlxz/couple-space/api/core"
	"github.com/qlxz/couple-space/config"
	"github.com/qlxz/couple-space/database/dbcore"
	repoAccounts "github.com/qlxz/couple-space/database/repo/accounts"
	repoAlbums "github.com/qlxz/couple-space/database/repo/albums"
	repoLovelist "github.com/qlxz/couple-space/database/repo/lovelist"
	repoMemorydays "github.com/qlxz/couple-space/database/repo/memorydays"
	repoSiteconfig "github.com/qlxz/couple-space/database/repo/siteconfig"
	"github.com/qlxz/couple-space/internal/auth"
	"github.com/qlxz/couple-space/storage"
	"github.com/spf13/cobra"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start API server",
	Run: func(cmd *cobra.Command, args []string) {
		RunServer()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func RunServer() {
	config.InitConfig()
	cfg := config.Get()

	// 静态目录与旧版 /img 目录不存在时创建
	if err := os.MkdirAll(cfg.StaticDir, os.ModePerm); err != nil {
		log.Fatalf("Failed to create static directory: %v", err)
	}
	if err := os.MkdirAll(filepath.Join(cfg.StaticDir, "img"), os.ModePerm); err != nil {
		log.Fatalf("Failed to create legacy img directory: %v", err)
	}
	if err := os.MkdirAll("./data", os.ModePerm); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	store, err := storage.NewLocalStore(cfg.UploadDir)
	if err != nil {
		log.Fatalf("Failed to initialize upload storage: %v", err)
	}

	db := dbcore.GetDBInstance()
	if err := dbcore.AutoMigrateDB(db); err != nil {
		log.Fatalf("Failed to auto migrate database: %v", err)
	}

	accountsRepo := repoAccounts.NewRepository(db)
	if password, err := accountsRepo.CreateDefaultAdminUser(); err != nil {
		log.Printf("[Warning] Failed to create default admin user: %v", err)
	} else if password != "" {
		log.Printf("Created default admin user 'admin' with password: %s", password)
		log.Println("Please change this password after first login.")
	}

	tokenService := auth.NewTokenService(cfg.JWTSecret, cfg.JWTExpiresIn)
	loginService := auth.NewLoginService(accountsRepo, tokenService)

	deps := &core.ServerDependencies{
		DB:             db,
		Config:         cfg,
		TokenService:   tokenService,
		LoginService:   loginService,
		AccountsRepo:   accountsRepo,
		SiteConfigRepo: repoSiteconfig.NewRepository(db),
		MemoryDaysRepo: repoMemorydays.NewRepository(db),
		AlbumsRepo:     repoAlbums.NewRepository(db),
		LoveListRepo:   repoLovelist.NewRepository(db),
		Store:          store,
	}

	// 启动gin
	server, cleanup := core.StartServer(deps)
	go func() {
		log.Printf("Server started on %s", cfg.Addr())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// 处理退出signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if cleanup != nil {
		cleanup()
	}

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := dbcore.CloseDB(); err != nil {
		log.Printf("Error closing database: %v", err)
	}

	log.Println("Server exited successfully")
}
