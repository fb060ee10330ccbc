// Package router sets up HTTP routes for the API.
package router

import (
	"net/http"

	_ "compliance-cms/swagger" // Import generated swagger docs

	"compliance-cms/internal/handler"
	"compliance-cms/internal/metrics"
	"compliance-cms/internal/middleware"
	"compliance-cms/pkg/auth"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Config holds all dependencies needed to set up routes.
type Config struct {
	AuthHandler    *handler.AuthHandler
	UserHandler    *handler.UserHandler
	PageHandler    *handler.PageHandler
	BlogHandler    *handler.BlogHandler
	ProjectHandler *handler.ProjectHandler
	ContactHandler *handler.ContactHandler
	SitemapHandler *handler.SitemapHandler

	TokenManager auth.TokenManager
	Metrics      *metrics.Metrics
	Logger       *zap.Logger

	CORSOrigins []string
	// MaxMultipartMemory bounds the in-memory part of multipart forms.
	MaxMultipartMemory int64
}

// Setup creates and configures the Gin router.
func Setup(cfg *Config) *gin.Engine {
	r := gin.New()
	if cfg.MaxMultipartMemory > 0 {
		r.MaxMultipartMemory = cfg.MaxMultipartMemory
	}

	// Global middleware
	r.Use(
		middleware.Recovery(cfg.Logger),
		middleware.RequestLogger(cfg.Logger),
		middleware.Metrics(cfg.Metrics),
		middleware.CORS(cfg.CORSOrigins...),
		middleware.ErrorHandler(cfg.Logger),
	)
	r.NoRoute(middleware.NotFound)

	// Swagger docs at /docs
	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	r.GET("/sitemap.xml", cfg.SitemapHandler.Sitemap)

	guard := middleware.Auth(cfg.TokenManager)

	api := r.Group("/api")
	{
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/login", cfg.AuthHandler.Login)
			authRoutes.GET("/profile", guard, cfg.AuthHandler.Profile)
		}

		pages := api.Group("/pages")
		{
			// Public
			pages.GET("/nav", cfg.PageHandler.NavTree)
			pages.GET("/categories", cfg.PageHandler.Categories)
			pages.GET("/slug/:slug", cfg.PageHandler.GetPageBySlug)

			pages.GET("", guard, cfg.PageHandler.ListPages)
			pages.GET("/:id", guard, cfg.PageHandler.GetPage)
			pages.POST("", guard, cfg.PageHandler.CreatePage)
			pages.PUT("/:id", guard, cfg.PageHandler.ReplacePage)
			pages.DELETE("/:id", guard, cfg.PageHandler.DeletePage)
		}

		blogs := api.Group("/blogs")
		{
			blogs.POST("/list", cfg.BlogHandler.ListBlogs)
			blogs.GET("/:id", cfg.BlogHandler.GetBlog)

			blogs.POST("", guard, cfg.BlogHandler.CreateBlog)
			blogs.PATCH("/:id", guard, cfg.BlogHandler.UpdateBlog)
			blogs.DELETE("/:id", guard, cfg.BlogHandler.DeleteBlog)
		}

		projects := api.Group("/projects")
		{
			projects.POST("/list", cfg.ProjectHandler.ListProjects)
			projects.GET("/:slug", cfg.ProjectHandler.GetProject)

			projects.POST("", guard, cfg.ProjectHandler.CreateProject)
			projects.PATCH("/:slug", guard, cfg.ProjectHandler.UpdateProject)
			projects.DELETE("/:slug", guard, cfg.ProjectHandler.DeleteProject)
		}

		contacts := api.Group("/contacts")
		{
			contacts.POST("", cfg.ContactHandler.CreateContact)

			contacts.GET("", guard, cfg.ContactHandler.ListContacts)
			contacts.DELETE("/:id", guard, cfg.ContactHandler.DeleteContact)
		}

		users := api.Group("/users")
		users.Use(guard)
		{
			users.GET("", cfg.UserHandler.GetAllUsers)
			users.GET("/:id", cfg.UserHandler.GetUser)
			users.POST("", cfg.UserHandler.CreateUser)
			users.PATCH("/:id", cfg.UserHandler.UpdateUser)
			users.DELETE("/:id", cfg.UserHandler.DeleteUser)
		}
	}

	return r
}
