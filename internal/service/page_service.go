package service

import (
	"context"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"compliance-cms/internal/cache"
	apperrors "compliance-cms/internal/errors"
	"compliance-cms/internal/models"
	"compliance-cms/internal/repository"
	"compliance-cms/internal/sanitize"
)

// PageService handles business logic for CMS pages and the navigation tree.
type PageService struct {
	repo  repository.PageRepository
	cache cache.Cache
	log   *zap.Logger

	// navMu orders nav cache writes against invalidations. navGen counts
	// invalidations; a tree built before the latest one is not cached.
	navMu  sync.Mutex
	navGen uint64
}

// NewPageService creates a new PageService.
func NewPageService(repo repository.PageRepository, cache cache.Cache, log *zap.Logger) *PageService {
	return &PageService{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// CreatePage stores a new page with defaults applied.
func (s *PageService) CreatePage(ctx context.Context, req *models.PageRequest) (*models.Page, error) {
	page, err := pageFromRequest(req)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, page); err != nil {
		return nil, err
	}

	s.invalidateNav(ctx)
	return page, nil
}

// ListPages returns every page for the admin table, newest first.
func (s *PageService) ListPages(ctx context.Context) ([]models.Page, error) {
	return s.repo.FindAll(ctx)
}

// GetPage returns a page by ID regardless of its state.
func (s *PageService) GetPage(ctx context.Context, id primitive.ObjectID) (*models.Page, error) {
	return s.repo.FindByID(ctx, id)
}

// GetPublishedPage returns an active page by slug. Inactive pages are reported
// as missing.
func (s *PageService) GetPublishedPage(ctx context.Context, slug string) (*models.Page, error) {
	page, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !page.IsActive {
		return nil, apperrors.ErrPageNotFound
	}
	return page, nil
}

// ReplacePage overwrites the whole page. Optional fields missing from req
// revert to their defaults.
func (s *PageService) ReplacePage(ctx context.Context, id primitive.ObjectID, req *models.PageRequest) (*models.Page, error) {
	page, err := pageFromRequest(req)
	if err != nil {
		return nil, err
	}
	page.ID = id

	if err := s.repo.Replace(ctx, page); err != nil {
		return nil, err
	}

	s.invalidateNav(ctx)
	return page, nil
}

// DeletePage removes a page permanently.
func (s *PageService) DeletePage(ctx context.Context, id primitive.ObjectID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateNav(ctx)
	return nil
}

// NavTree returns the navigation tree, served from cache when possible.
func (s *PageService) NavTree(ctx context.Context) (models.NavTree, error) {
	var tree models.NavTree
	found, err := s.cache.Get(ctx, cache.NavCacheKey, &tree)
	if err != nil {
		s.log.Warn("nav cache read failed", zap.Error(err))
	}
	if err == nil && found && tree != nil {
		return tree, nil
	}

	s.navMu.Lock()
	gen := s.navGen
	s.navMu.Unlock()

	pages, err := s.repo.FindNavigable(ctx)
	if err != nil {
		return nil, err
	}
	tree = BuildNavTree(pages)

	s.navMu.Lock()
	defer s.navMu.Unlock()
	if gen != s.navGen {
		return tree, nil
	}
	if err := s.cache.Set(ctx, cache.NavCacheKey, tree, cache.NavCacheTTL); err != nil {
		s.log.Warn("nav cache write failed", zap.Error(err))
	}
	return tree, nil
}

// Categories returns the allowed page categories.
func (s *PageService) Categories() []string {
	return append([]string(nil), models.PageCategories...)
}

func (s *PageService) invalidateNav(ctx context.Context) {
	s.navMu.Lock()
	defer s.navMu.Unlock()
	s.navGen++
	if err := s.cache.Delete(ctx, cache.NavCacheKey); err != nil {
		s.log.Warn("nav cache invalidation failed", zap.Error(err))
	}
}

// pageFromRequest builds a page document from a create or replace request.
func pageFromRequest(req *models.PageRequest) (*models.Page, error) {
	if !models.IsPageCategory(req.Category) {
		return nil, apperrors.Validation("category must be one of: " + strings.Join(models.PageCategories, ", "))
	}

	page := &models.Page{
		Title:          strings.TrimSpace(req.Title),
		Slug:           strings.TrimSpace(req.Slug),
		Category:       req.Category,
		Subcategory:    strings.TrimSpace(req.Subcategory),
		Subsubcategory: strings.TrimSpace(req.Subsubcategory),
		Description:    sanitize.HTML(req.Description),
		HTMLContent:    sanitize.HTML(req.HTMLContent),
		ShowInNavbar:   boolOr(req.ShowInNavbar, true),
		IsActive:       boolOr(req.IsActive, true),
	}
	if page.Subcategory == "" {
		page.Subcategory = models.DefaultSubcategory
	}
	if page.Title == "" {
		return nil, apperrors.Validation("title is required")
	}
	if page.HTMLContent == "" {
		return nil, apperrors.Validation("htmlContent is required")
	}
	return page, nil
}

func boolOr(b *bool, fallback bool) bool {
	if b == nil {
		return fallback
	}
	return *b
}
