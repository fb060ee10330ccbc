package service

import (
	"context"
	"time"

	"compliance-cms/internal/models"
	"compliance-cms/internal/repository"
)

// SitemapService lists the public URLs of the site.
type SitemapService struct {
	pages    repository.PageRepository
	blogs    repository.BlogRepository
	projects repository.ProjectRepository
}

// NewSitemapService creates a new SitemapService.
func NewSitemapService(pages repository.PageRepository, blogs repository.BlogRepository, projects repository.ProjectRepository) *SitemapService {
	return &SitemapService{pages: pages, blogs: blogs, projects: projects}
}

// URLs returns the site root followed by every active page, published blog
// and project. The root's lastmod is the newest of the others.
func (s *SitemapService) URLs(ctx context.Context) ([]models.SitemapURL, error) {
	pages, err := s.pages.FindActive(ctx)
	if err != nil {
		return nil, err
	}
	blogs, err := s.blogs.FindPublished(ctx)
	if err != nil {
		return nil, err
	}
	projects, err := s.projects.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	urls := make([]models.SitemapURL, 0, 1+len(pages)+len(blogs)+len(projects))
	urls = append(urls, models.SitemapURL{Path: "/"})

	var newest time.Time
	add := func(path string, mod time.Time) {
		urls = append(urls, models.SitemapURL{Path: path, LastMod: mod})
		if mod.After(newest) {
			newest = mod
		}
	}
	for _, p := range pages {
		add("/"+p.Slug, p.UpdatedAt)
	}
	for _, b := range blogs {
		add("/blogs/"+b.ID.Hex(), b.UpdatedAt)
	}
	for _, p := range projects {
		add("/projects/"+p.Slug, p.UpdatedAt)
	}

	urls[0].LastMod = newest
	return urls, nil
}
