package main

import (
	"context"
	"errors"
	"log"
	"os"
	"time"

	"compliance-cms/internal/cache"
	"compliance-cms/internal/config"
	"compliance-cms/internal/database"
	apperrors "compliance-cms/internal/errors"
	"compliance-cms/internal/logger"
	"compliance-cms/internal/models"
	"compliance-cms/internal/repository"
	"compliance-cms/internal/service"

	"go.uber.org/zap"
)

// seedPages fill every level of the navigation tree at least once.
var seedPages = []models.PageRequest{
	{
		Title:       "EPR Registration for Plastic Waste",
		Slug:        "epr-plastic-waste",
		Category:    "EPR",
		Subcategory: "Plastic",
		Description: "<p>Extended Producer Responsibility for plastic packaging.</p>",
		HTMLContent: "<h2>Who must register</h2><p>Producers, importers and brand owners.</p>",
	},
	{
		Title:          "EPR Registration for E-Waste",
		Slug:           "epr-e-waste",
		Category:       "EPR",
		Subcategory:    "E-Waste",
		Subsubcategory: "Producers",
		HTMLContent:    "<p>Registration on the CPCB portal for electrical and electronic equipment.</p>",
	},
	{
		Title:       "BIS Certification",
		Slug:        "bis-certification",
		Category:    "BIS",
		HTMLContent: "<p>Compulsory registration scheme for notified products.</p>",
	},
	{
		Title:       "Factory License",
		Slug:        "factory-license",
		Category:    "Licenses",
		Subcategory: "State",
		HTMLContent: "<p>License under the Factories Act.</p>",
	},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logg, err := logger.New(cfg.GinMode)
	if err != nil {
		log.Fatalf("create logger: %v", err)
	}
	defer func() { _ = logg.Sync() }()

	logg.Info("starting seed")

	mongoDB, err := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase, logg)
	if err != nil {
		logg.Fatal("connect to mongodb", zap.Error(err))
	}
	defer mongoDB.Close()

	// Redis holds the cached navigation tree, which must not outlive the seed.
	redisCache, err := cache.NewRedis(cfg.RedisURI, logg)
	if err != nil {
		logg.Fatal("connect to redis", zap.Error(err))
	}
	defer redisCache.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if _, err := repository.EnsureIndexes(ctx, mongoDB.Database); err != nil {
		logg.Fatal("create indexes", zap.Error(err))
	}

	users := service.NewUserService(repository.NewUserRepository(mongoDB.Database), redisCache, logg)
	pages := service.NewPageService(repository.NewPageRepository(mongoDB.Database), redisCache, logg)

	seedAdmin(ctx, users, logg)
	seedNavigation(ctx, pages, logg)

	logg.Info("seed completed")
}

func seedAdmin(ctx context.Context, users service.UserServicer, logg *zap.Logger) {
	email, password := os.Getenv("ADMIN_EMAIL"), os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		logg.Warn("ADMIN_EMAIL or ADMIN_PASSWORD not set, skipping admin user")
		return
	}

	user, err := users.CreateUser(ctx, &models.CreateUserRequest{
		Email:    email,
		Password: password,
		Type:     models.UserTypeSuperAdmin,
	})
	switch {
	case errors.Is(err, apperrors.ErrConflict):
		logg.Info("admin user already exists", zap.String("email", email))
	case err != nil:
		logg.Fatal("seed admin user", zap.Error(err))
	default:
		logg.Info("seeded admin user", zap.String("id", user.ID.Hex()))
	}
}

func seedNavigation(ctx context.Context, pages service.PageServicer, logg *zap.Logger) {
	created := 0
	for i := range seedPages {
		req := seedPages[i]
		_, err := pages.CreatePage(ctx, &req)
		if errors.Is(err, apperrors.ErrConflict) {
			logg.Info("page already exists", zap.String("slug", req.Slug))
			continue
		}
		if err != nil {
			logg.Fatal("seed page", zap.String("slug", req.Slug), zap.Error(err))
		}
		created++
	}
	logg.Info("seeded pages", zap.Int("created", created), zap.Int("total", len(seedPages)))
}
