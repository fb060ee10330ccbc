// Package mocks provides mock implementations of service interfaces for testing.
package mocks

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"compliance-cms/internal/models"
)

// MockAuthService is a mock implementation of AuthServicer.
type MockAuthService struct {
	ValidateUserFunc func(ctx context.Context, email, password string) (*models.User, error)
	LoginFunc        func(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
}

func (m *MockAuthService) ValidateUser(ctx context.Context, email, password string) (*models.User, error) {
	if m.ValidateUserFunc != nil {
		return m.ValidateUserFunc(ctx, email, password)
	}
	return nil, nil
}

func (m *MockAuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, req)
	}
	return nil, nil
}

// MockUserService is a mock implementation of UserServicer.
type MockUserService struct {
	CreateUserFunc  func(ctx context.Context, req *models.CreateUserRequest) (*models.User, error)
	GetUserFunc     func(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	GetAllUsersFunc func(ctx context.Context) ([]models.User, error)
	UpdateUserFunc  func(ctx context.Context, id primitive.ObjectID, req *models.UpdateUserRequest) (*models.User, error)
	DeleteUserFunc  func(ctx context.Context, id primitive.ObjectID) error
}

func (m *MockUserService) CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.User, error) {
	if m.CreateUserFunc != nil {
		return m.CreateUserFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockUserService) GetUser(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	if m.GetUserFunc != nil {
		return m.GetUserFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockUserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	if m.GetAllUsersFunc != nil {
		return m.GetAllUsersFunc(ctx)
	}
	return nil, nil
}

func (m *MockUserService) UpdateUser(ctx context.Context, id primitive.ObjectID, req *models.UpdateUserRequest) (*models.User, error) {
	if m.UpdateUserFunc != nil {
		return m.UpdateUserFunc(ctx, id, req)
	}
	return nil, nil
}

func (m *MockUserService) DeleteUser(ctx context.Context, id primitive.ObjectID) error {
	if m.DeleteUserFunc != nil {
		return m.DeleteUserFunc(ctx, id)
	}
	return nil
}

// MockPageService is a mock implementation of PageServicer.
type MockPageService struct {
	CreatePageFunc       func(ctx context.Context, req *models.PageRequest) (*models.Page, error)
	ListPagesFunc        func(ctx context.Context) ([]models.Page, error)
	GetPageFunc          func(ctx context.Context, id primitive.ObjectID) (*models.Page, error)
	GetPublishedPageFunc func(ctx context.Context, slug string) (*models.Page, error)
	ReplacePageFunc      func(ctx context.Context, id primitive.ObjectID, req *models.PageRequest) (*models.Page, error)
	DeletePageFunc       func(ctx context.Context, id primitive.ObjectID) error
	NavTreeFunc          func(ctx context.Context) (models.NavTree, error)
	CategoriesFunc       func() []string
}

func (m *MockPageService) CreatePage(ctx context.Context, req *models.PageRequest) (*models.Page, error) {
	if m.CreatePageFunc != nil {
		return m.CreatePageFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockPageService) ListPages(ctx context.Context) ([]models.Page, error) {
	if m.ListPagesFunc != nil {
		return m.ListPagesFunc(ctx)
	}
	return nil, nil
}

func (m *MockPageService) GetPage(ctx context.Context, id primitive.ObjectID) (*models.Page, error) {
	if m.GetPageFunc != nil {
		return m.GetPageFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockPageService) GetPublishedPage(ctx context.Context, slug string) (*models.Page, error) {
	if m.GetPublishedPageFunc != nil {
		return m.GetPublishedPageFunc(ctx, slug)
	}
	return nil, nil
}

func (m *MockPageService) ReplacePage(ctx context.Context, id primitive.ObjectID, req *models.PageRequest) (*models.Page, error) {
	if m.ReplacePageFunc != nil {
		return m.ReplacePageFunc(ctx, id, req)
	}
	return nil, nil
}

func (m *MockPageService) DeletePage(ctx context.Context, id primitive.ObjectID) error {
	if m.DeletePageFunc != nil {
		return m.DeletePageFunc(ctx, id)
	}
	return nil
}

func (m *MockPageService) NavTree(ctx context.Context) (models.NavTree, error) {
	if m.NavTreeFunc != nil {
		return m.NavTreeFunc(ctx)
	}
	return nil, nil
}

func (m *MockPageService) Categories() []string {
	if m.CategoriesFunc != nil {
		return m.CategoriesFunc()
	}
	return nil
}

// MockBlogService is a mock implementation of BlogServicer.
type MockBlogService struct {
	CreateBlogFunc func(ctx context.Context, req *models.CreateBlogRequest, image *models.Upload) (*models.Blog, error)
	UpdateBlogFunc func(ctx context.Context, id primitive.ObjectID, req *models.UpdateBlogRequest, image *models.Upload) (*models.Blog, error)
	ListBlogsFunc  func(ctx context.Context, req models.BlogListRequest) (*models.ListResult[models.Blog], error)
	GetBlogFunc    func(ctx context.Context, id primitive.ObjectID) (*models.Blog, error)
	DeleteBlogFunc func(ctx context.Context, id primitive.ObjectID) error
}

func (m *MockBlogService) CreateBlog(ctx context.Context, req *models.CreateBlogRequest, image *models.Upload) (*models.Blog, error) {
	if m.CreateBlogFunc != nil {
		return m.CreateBlogFunc(ctx, req, image)
	}
	return nil, nil
}

func (m *MockBlogService) UpdateBlog(ctx context.Context, id primitive.ObjectID, req *models.UpdateBlogRequest, image *models.Upload) (*models.Blog, error) {
	if m.UpdateBlogFunc != nil {
		return m.UpdateBlogFunc(ctx, id, req, image)
	}
	return nil, nil
}

func (m *MockBlogService) ListBlogs(ctx context.Context, req models.BlogListRequest) (*models.ListResult[models.Blog], error) {
	if m.ListBlogsFunc != nil {
		return m.ListBlogsFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockBlogService) GetBlog(ctx context.Context, id primitive.ObjectID) (*models.Blog, error) {
	if m.GetBlogFunc != nil {
		return m.GetBlogFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockBlogService) DeleteBlog(ctx context.Context, id primitive.ObjectID) error {
	if m.DeleteBlogFunc != nil {
		return m.DeleteBlogFunc(ctx, id)
	}
	return nil
}

// MockProjectService is a mock implementation of ProjectServicer.
type MockProjectService struct {
	CreateProjectFunc func(ctx context.Context, req *models.ProjectRequest, files models.ProjectFiles) (*models.Project, error)
	UpdateProjectFunc func(ctx context.Context, slug string, req *models.ProjectRequest, files models.ProjectFiles) (*models.Project, error)
	ListProjectsFunc  func(ctx context.Context, filter models.ListFilter) (*models.ListResult[models.Project], error)
	GetProjectFunc    func(ctx context.Context, slug string) (*models.Project, error)
	DeleteProjectFunc func(ctx context.Context, slug string) error
}

func (m *MockProjectService) CreateProject(ctx context.Context, req *models.ProjectRequest, files models.ProjectFiles) (*models.Project, error) {
	if m.CreateProjectFunc != nil {
		return m.CreateProjectFunc(ctx, req, files)
	}
	return nil, nil
}

func (m *MockProjectService) UpdateProject(ctx context.Context, slug string, req *models.ProjectRequest, files models.ProjectFiles) (*models.Project, error) {
	if m.UpdateProjectFunc != nil {
		return m.UpdateProjectFunc(ctx, slug, req, files)
	}
	return nil, nil
}

func (m *MockProjectService) ListProjects(ctx context.Context, filter models.ListFilter) (*models.ListResult[models.Project], error) {
	if m.ListProjectsFunc != nil {
		return m.ListProjectsFunc(ctx, filter)
	}
	return nil, nil
}

func (m *MockProjectService) GetProject(ctx context.Context, slug string) (*models.Project, error) {
	if m.GetProjectFunc != nil {
		return m.GetProjectFunc(ctx, slug)
	}
	return nil, nil
}

func (m *MockProjectService) DeleteProject(ctx context.Context, slug string) error {
	if m.DeleteProjectFunc != nil {
		return m.DeleteProjectFunc(ctx, slug)
	}
	return nil
}

// MockContactService is a mock implementation of ContactServicer.
type MockContactService struct {
	CreateContactFunc func(ctx context.Context, req *models.CreateContactRequest) (*models.Contact, error)
	ListContactsFunc  func(ctx context.Context, filter models.ListFilter) (*models.ListResult[models.Contact], error)
	DeleteContactFunc func(ctx context.Context, id primitive.ObjectID) error
}

func (m *MockContactService) CreateContact(ctx context.Context, req *models.CreateContactRequest) (*models.Contact, error) {
	if m.CreateContactFunc != nil {
		return m.CreateContactFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockContactService) ListContacts(ctx context.Context, filter models.ListFilter) (*models.ListResult[models.Contact], error) {
	if m.ListContactsFunc != nil {
		return m.ListContactsFunc(ctx, filter)
	}
	return nil, nil
}

func (m *MockContactService) DeleteContact(ctx context.Context, id primitive.ObjectID) error {
	if m.DeleteContactFunc != nil {
		return m.DeleteContactFunc(ctx, id)
	}
	return nil
}

// MockSitemapService is a mock implementation of SitemapServicer.
type MockSitemapService struct {
	URLsFunc func(ctx context.Context) ([]models.SitemapURL, error)
}

func (m *MockSitemapService) URLs(ctx context.Context) ([]models.SitemapURL, error) {
	if m.URLsFunc != nil {
		return m.URLsFunc(ctx)
	}
	return nil, nil
}
