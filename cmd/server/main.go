package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"compliance-cms/internal/cache"
	"compliance-cms/internal/config"
	"compliance-cms/internal/database"
	"compliance-cms/internal/handler"
	"compliance-cms/internal/imaging"
	"compliance-cms/internal/logger"
	"compliance-cms/internal/metrics"
	"compliance-cms/internal/repository"
	"compliance-cms/internal/router"
	"compliance-cms/internal/service"
	"compliance-cms/internal/storage"
	"compliance-cms/internal/validator"
	"compliance-cms/pkg/auth"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// @title           Compliance CMS API
// @version         1.0
// @description     Content backend for a compliance-consulting website: pages, navigation, blogs, projects and contact submissions.

// @contact.name    API Support
// @contact.email   support@example.com

// @host            localhost:8080
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter your bearer token in the format: Bearer {token}

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logg, err := logger.New(cfg.GinMode)
	if err != nil {
		log.Fatalf("create logger: %v", err)
	}
	defer func() { _ = logg.Sync() }()

	if err := run(cfg, logg); err != nil {
		logg.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, logg *zap.Logger) error {
	// Register custom validators
	validator.RegisterCustomValidators()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	m := metrics.New("cms")

	// Database
	mongoDB, err := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase, logg)
	if err != nil {
		return err
	}
	defer mongoDB.Close()

	// Redis Cache
	redisCache, err := cache.NewRedis(cfg.RedisURI, logg)
	if err != nil {
		return err
	}
	defer redisCache.Close()
	appCache := cache.Instrument(redisCache, m.CacheLookups)

	// S3 image host
	startCtx, cancelStart := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelStart()

	s3Host, err := storage.NewS3ImageHost(startCtx, storage.S3Options{
		Endpoint:  cfg.S3Endpoint,
		AccessKey: cfg.S3AccessKey,
		SecretKey: cfg.S3SecretKey,
		Bucket:    cfg.S3Bucket,
		UseSSL:    cfg.S3UseSSL,
		PublicURL: cfg.S3PublicURL,
	}, logg)
	if err != nil {
		return err
	}
	if err := s3Host.EnsureBucket(startCtx); err != nil {
		return err
	}
	imageHost := storage.Instrument(s3Host, m.ImageHostOps)

	maxUploadBytes := int64(cfg.MaxUploadMB) << 20
	maxPixels := int64(cfg.ImageMaxMegapixels) * 1_000_000
	images := imaging.NewProcessor(cfg.ImageMaxWidth, maxUploadBytes, maxPixels)

	// JWT Manager
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, auth.AccessTokenTTL)

	// Repository layer
	userRepo := repository.NewUserRepository(mongoDB.Database)
	pageRepo := repository.NewPageRepository(mongoDB.Database)
	blogRepo := repository.NewBlogRepository(mongoDB.Database)
	projectRepo := repository.NewProjectRepository(mongoDB.Database)
	contactRepo := repository.NewContactRepository(mongoDB.Database)

	// Service layer
	authService := service.NewAuthService(userRepo, jwtManager, logg)
	userService := service.NewUserService(userRepo, appCache, logg)
	pageService := service.NewPageService(pageRepo, appCache, logg)
	blogService := service.NewBlogService(blogRepo, imageHost, images, logg)
	projectService := service.NewProjectService(projectRepo, imageHost, images, logg)
	contactService := service.NewContactService(contactRepo)
	sitemapService := service.NewSitemapService(pageRepo, blogRepo, projectRepo)

	// Router
	r := router.Setup(&router.Config{
		AuthHandler:        handler.NewAuthHandler(authService),
		UserHandler:        handler.NewUserHandler(userService),
		PageHandler:        handler.NewPageHandler(pageService),
		BlogHandler:        handler.NewBlogHandler(blogService),
		ProjectHandler:     handler.NewProjectHandler(projectService),
		ContactHandler:     handler.NewContactHandler(contactService),
		SitemapHandler:     handler.NewSitemapHandler(sitemapService, cfg.SiteURL),
		TokenManager:       jwtManager,
		Metrics:            m,
		Logger:             logg,
		CORSOrigins:        cfg.CORSOrigins,
		MaxMultipartMemory: maxUploadBytes,
	})

	// Create HTTP server for graceful shutdown support
	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logg.Info("server starting", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logg.Info("shutdown signal received", zap.String("signal", sig.String()))
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
	}

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logg.Error("http server shutdown", zap.Error(err))
	}

	logg.Info("server shutdown complete")
	return nil
}
