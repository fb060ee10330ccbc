//go:build api

// Package testserver provides a fully wired test server for API integration tests.
package testserver

import (
	"context"
	"fmt"

	"compliance-cms/internal/cache"
	"compliance-cms/internal/handler"
	"compliance-cms/internal/imaging"
	"compliance-cms/internal/metrics"
	"compliance-cms/internal/repository"
	"compliance-cms/internal/router"
	"compliance-cms/internal/service"
	"compliance-cms/internal/storage"
	"compliance-cms/pkg/auth"
	"compliance-cms/test/api/testdb"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	// TestJWTSecret is the JWT secret used in tests.
	TestJWTSecret = "test-secret-key-for-api-tests"
	// TestDBName is the database name used in tests.
	TestDBName = "test_api"
	// TestSiteURL is the public site the sitemap points at.
	TestSiteURL = "https://compliance.example.com"
	// TestPublicURL is the base URL image assets are served from.
	TestPublicURL = "https://cdn.example.com"
)

// TestServer holds all dependencies for API integration tests.
type TestServer struct {
	// Router is the Gin engine for making HTTP requests.
	Router *gin.Engine

	// Containers
	MongoDB *testdb.MongoContainer
	Redis   *testdb.RedisContainer
	MinIO   *testdb.MinIOContainer

	// Repositories (for direct database access in tests)
	UserRepo    repository.UserRepository
	PageRepo    repository.PageRepository
	BlogRepo    repository.BlogRepository
	ProjectRepo repository.ProjectRepository
	ContactRepo repository.ContactRepository

	// Services (for direct service access in tests)
	UserService service.UserServicer

	// Auth
	JWTManager *auth.JWTManager
}

// New creates a new test server with all dependencies wired up.
func New(ctx context.Context) (*TestServer, error) {
	gin.SetMode(gin.TestMode)
	logg := zap.NewNop()

	// Start containers
	mongoDB, err := testdb.SetupMongoDB(ctx, TestDBName)
	if err != nil {
		return nil, err
	}

	redisContainer, err := testdb.SetupRedis(ctx)
	if err != nil {
		_ = mongoDB.Cleanup(ctx)
		return nil, err
	}

	minioContainer, err := testdb.SetupMinIO(ctx)
	if err != nil {
		_ = mongoDB.Cleanup(ctx)
		_ = redisContainer.Cleanup(ctx)
		return nil, err
	}

	ts := &TestServer{MongoDB: mongoDB, Redis: redisContainer, MinIO: minioContainer}

	if _, err := repository.EnsureIndexes(ctx, mongoDB.Database); err != nil {
		ts.Cleanup(ctx)
		return nil, fmt.Errorf("create indexes: %w", err)
	}

	m := metrics.New("api_test")

	// Create cache (uses real Redis)
	appCache := cache.Instrument(cache.NewRedisFromClient(redisContainer.Client, logg), m.CacheLookups)

	// Create image host (uses real MinIO)
	s3Host, err := storage.NewS3ImageHost(ctx, storage.S3Options{
		Endpoint:  minioContainer.Endpoint,
		AccessKey: minioContainer.AccessKey,
		SecretKey: minioContainer.SecretKey,
		Bucket:    minioContainer.Bucket,
		PublicURL: TestPublicURL,
	}, logg)
	if err != nil {
		ts.Cleanup(ctx)
		return nil, err
	}
	imageHost := storage.Instrument(s3Host, m.ImageHostOps)
	images := imaging.NewProcessor(800, 5<<20, 4_000_000)

	// JWT Manager
	jwtManager := auth.NewJWTManager(TestJWTSecret, auth.AccessTokenTTL)

	// Repository layer
	ts.UserRepo = repository.NewUserRepository(mongoDB.Database)
	ts.PageRepo = repository.NewPageRepository(mongoDB.Database)
	ts.BlogRepo = repository.NewBlogRepository(mongoDB.Database)
	ts.ProjectRepo = repository.NewProjectRepository(mongoDB.Database)
	ts.ContactRepo = repository.NewContactRepository(mongoDB.Database)

	// Service layer
	authService := service.NewAuthService(ts.UserRepo, jwtManager, logg)
	userService := service.NewUserService(ts.UserRepo, appCache, logg)
	pageService := service.NewPageService(ts.PageRepo, appCache, logg)
	blogService := service.NewBlogService(ts.BlogRepo, imageHost, images, logg)
	projectService := service.NewProjectService(ts.ProjectRepo, imageHost, images, logg)
	contactService := service.NewContactService(ts.ContactRepo)
	sitemapService := service.NewSitemapService(ts.PageRepo, ts.BlogRepo, ts.ProjectRepo)

	// Router
	ts.Router = router.Setup(&router.Config{
		AuthHandler:    handler.NewAuthHandler(authService),
		UserHandler:    handler.NewUserHandler(userService),
		PageHandler:    handler.NewPageHandler(pageService),
		BlogHandler:    handler.NewBlogHandler(blogService),
		ProjectHandler: handler.NewProjectHandler(projectService),
		ContactHandler: handler.NewContactHandler(contactService),
		SitemapHandler: handler.NewSitemapHandler(sitemapService, TestSiteURL),
		TokenManager:   jwtManager,
		Metrics:        m,
		Logger:         logg,
	})
	ts.UserService = userService
	ts.JWTManager = jwtManager

	return ts, nil
}

// Cleanup terminates all containers.
func (ts *TestServer) Cleanup(ctx context.Context) {
	if ts.MinIO != nil {
		_ = ts.MinIO.Cleanup(ctx)
	}
	if ts.Redis != nil {
		_ = ts.Redis.Cleanup(ctx)
	}
	if ts.MongoDB != nil {
		_ = ts.MongoDB.Cleanup(ctx)
	}
}
