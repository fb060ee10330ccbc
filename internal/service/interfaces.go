// Package service contains business logic for the application.
package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"compliance-cms/internal/models"
)

// AuthServicer defines the interface for authentication operations.
type AuthServicer interface {
	ValidateUser(ctx context.Context, email, password string) (*models.User, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
}

// UserServicer defines the interface for user operations.
type UserServicer interface {
	CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.User, error)
	GetUser(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	GetAllUsers(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, id primitive.ObjectID, req *models.UpdateUserRequest) (*models.User, error)
	DeleteUser(ctx context.Context, id primitive.ObjectID) error
}

// PageServicer defines the interface for page operations.
type PageServicer interface {
	CreatePage(ctx context.Context, req *models.PageRequest) (*models.Page, error)
	ListPages(ctx context.Context) ([]models.Page, error)
	GetPage(ctx context.Context, id primitive.ObjectID) (*models.Page, error)
	GetPublishedPage(ctx context.Context, slug string) (*models.Page, error)
	ReplacePage(ctx context.Context, id primitive.ObjectID, req *models.PageRequest) (*models.Page, error)
	DeletePage(ctx context.Context, id primitive.ObjectID) error
	NavTree(ctx context.Context) (models.NavTree, error)
	Categories() []string
}

// BlogServicer defines the interface for blog operations.
type BlogServicer interface {
	CreateBlog(ctx context.Context, req *models.CreateBlogRequest, image *models.Upload) (*models.Blog, error)
	UpdateBlog(ctx context.Context, id primitive.ObjectID, req *models.UpdateBlogRequest, image *models.Upload) (*models.Blog, error)
	ListBlogs(ctx context.Context, req models.BlogListRequest) (*models.ListResult[models.Blog], error)
	GetBlog(ctx context.Context, id primitive.ObjectID) (*models.Blog, error)
	DeleteBlog(ctx context.Context, id primitive.ObjectID) error
}

// ProjectServicer defines the interface for project operations.
type ProjectServicer interface {
	CreateProject(ctx context.Context, req *models.ProjectRequest, files models.ProjectFiles) (*models.Project, error)
	UpdateProject(ctx context.Context, slug string, req *models.ProjectRequest, files models.ProjectFiles) (*models.Project, error)
	ListProjects(ctx context.Context, filter models.ListFilter) (*models.ListResult[models.Project], error)
	GetProject(ctx context.Context, slug string) (*models.Project, error)
	DeleteProject(ctx context.Context, slug string) error
}

// ContactServicer defines the interface for contact operations.
type ContactServicer interface {
	CreateContact(ctx context.Context, req *models.CreateContactRequest) (*models.Contact, error)
	ListContacts(ctx context.Context, filter models.ListFilter) (*models.ListResult[models.Contact], error)
	DeleteContact(ctx context.Context, id primitive.ObjectID) error
}

// SitemapServicer defines the interface for sitemap generation.
type SitemapServicer interface {
	URLs(ctx context.Context) ([]models.SitemapURL, error)
}

// Ensure implementations satisfy interfaces
var (
	_ AuthServicer    = (*AuthService)(nil)
	_ UserServicer    = (*UserService)(nil)
	_ PageServicer    = (*PageService)(nil)
	_ BlogServicer    = (*BlogService)(nil)
	_ ProjectServicer = (*ProjectService)(nil)
	_ ContactServicer = (*ContactService)(nil)
	_ SitemapServicer = (*SitemapService)(nil)
)
