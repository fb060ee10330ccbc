package service

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	apperrors "compliance-cms/internal/errors"
	"compliance-cms/internal/models"
	"compliance-cms/internal/repository"
	"compliance-cms/internal/sanitize"
	"compliance-cms/internal/storage"
)

// BlogService handles business logic for blog posts and their cover images.
type BlogService struct {
	repo   repository.BlogRepository
	images *imageStore
	log    *zap.Logger
}

// NewBlogService creates a new BlogService.
func NewBlogService(repo repository.BlogRepository, host storage.ImageHost, preparer ImagePreparer, log *zap.Logger) *BlogService {
	return &BlogService{
		repo:   repo,
		images: &imageStore{host: host, preparer: preparer, log: log},
		log:    log,
	}
}

// CreateBlog uploads the optional image, then stores the blog. The upload is
// released again if the blog cannot be stored.
func (s *BlogService) CreateBlog(ctx context.Context, req *models.CreateBlogRequest, image *models.Upload) (*models.Blog, error) {
	blog := &models.Blog{
		Title:            strings.TrimSpace(req.Title),
		Content:          sanitize.HTML(req.Content),
		ShortDescription: strings.TrimSpace(req.ShortDescription),
		IsPublished:      req.IsPublished,
	}
	if blog.Title == "" {
		return nil, apperrors.Validation("title is required")
	}
	if blog.Content == "" {
		return nil, apperrors.Validation("content is required")
	}

	if image != nil {
		asset, err := s.images.upload(ctx, blogsFolder, image)
		if err != nil {
			return nil, err
		}
		blog.Asset = asset
	}

	if err := s.repo.Create(ctx, blog); err != nil {
		s.images.discard(ctx, []models.Asset{blog.Asset})
		return nil, err
	}
	return blog, nil
}

// UpdateBlog applies the supplied fields. A new image replaces the old one,
// which is released after the blog is saved.
func (s *BlogService) UpdateBlog(ctx context.Context, id primitive.ObjectID, req *models.UpdateBlogRequest, image *models.Upload) (*models.Blog, error) {
	blog, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		blog.Title = strings.TrimSpace(*req.Title)
		if blog.Title == "" {
			return nil, apperrors.Validation("title must not be empty")
		}
	}
	if req.Content != nil {
		blog.Content = sanitize.HTML(*req.Content)
		if blog.Content == "" {
			return nil, apperrors.Validation("content must not be empty")
		}
	}
	if req.ShortDescription != nil {
		blog.ShortDescription = strings.TrimSpace(*req.ShortDescription)
	}
	if req.IsPublished != nil {
		blog.IsPublished = *req.IsPublished
	}

	previous := blog.Asset
	if image != nil {
		asset, err := s.images.upload(ctx, blogsFolder, image)
		if err != nil {
			return nil, err
		}
		blog.Asset = asset
	}

	if err := s.repo.Save(ctx, blog); err != nil {
		if image != nil {
			s.images.discard(ctx, []models.Asset{blog.Asset})
		}
		return nil, err
	}

	if image != nil {
		s.images.discard(ctx, []models.Asset{previous})
	}
	return blog, nil
}

// ListBlogs returns one page of blogs.
func (s *BlogService) ListBlogs(ctx context.Context, req models.BlogListRequest) (*models.ListResult[models.Blog], error) {
	if err := prepareListFilter(&req.ListFilter, blogSortFields); err != nil {
		return nil, err
	}
	return s.repo.List(ctx, req)
}

// GetBlog returns a blog by ID.
func (s *BlogService) GetBlog(ctx context.Context, id primitive.ObjectID) (*models.Blog, error) {
	return s.repo.FindByID(ctx, id)
}

// DeleteBlog releases the blog's image and then removes the blog. If the
// release fails the blog is kept.
func (s *BlogService) DeleteBlog(ctx context.Context, id primitive.ObjectID) error {
	blog, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.images.releaseAll(ctx, []models.Asset{blog.Asset}); err != nil {
		return err
	}

	return s.repo.Delete(ctx, id)
}
