package service

import (
	"context"

	"go.uber.org/zap"

	apperrors "compliance-cms/internal/errors"
	"compliance-cms/internal/models"
	"compliance-cms/internal/repository"
	"compliance-cms/internal/storage"
)

// ProjectService handles business logic for project pages.
type ProjectService struct {
	repo   repository.ProjectRepository
	images *imageStore
	log    *zap.Logger
}

// NewProjectService creates a new ProjectService.
func NewProjectService(repo repository.ProjectRepository, host storage.ImageHost, preparer ImagePreparer, log *zap.Logger) *ProjectService {
	return &ProjectService{
		repo:   repo,
		images: &imageStore{host: host, preparer: preparer, log: log},
		log:    log,
	}
}

// CreateProject uploads every supplied image and stores the project. Every
// card needs an image. Uploads are released again if the project cannot be
// stored.
func (s *ProjectService) CreateProject(ctx context.Context, req *models.ProjectRequest, files models.ProjectFiles) (*models.Project, error) {
	if blank(req.Slug) {
		return nil, apperrors.Validation("slug is required")
	}
	if blank(req.Title) {
		return nil, apperrors.Validation("title is required")
	}

	project := &models.Project{}
	if err := checkProjectMerge(project, req, files); err != nil {
		return nil, err
	}

	up, err := s.uploadFiles(ctx, files)
	if err != nil {
		return nil, err
	}

	mergeProject(project, req, up)

	if err := s.repo.Create(ctx, project); err != nil {
		s.images.discard(ctx, up.all())
		return nil, err
	}
	return project, nil
}

// UpdateProject deep-merges req into the project. Images replaced by new
// uploads are released after the project is saved.
func (s *ProjectService) UpdateProject(ctx context.Context, slug string, req *models.ProjectRequest, files models.ProjectFiles) (*models.Project, error) {
	project, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	if err := checkProjectMerge(project, req, files); err != nil {
		return nil, err
	}
	if req.Slug != nil && blank(req.Slug) {
		return nil, apperrors.Validation("slug must not be empty")
	}
	if req.Title != nil && blank(req.Title) {
		return nil, apperrors.Validation("title must not be empty")
	}

	up, err := s.uploadFiles(ctx, files)
	if err != nil {
		return nil, err
	}

	replaced := mergeProject(project, req, up)

	if err := s.repo.Save(ctx, project); err != nil {
		s.images.discard(ctx, up.all())
		return nil, err
	}

	s.images.discard(ctx, replaced)
	return project, nil
}

// ListProjects returns one page of projects.
func (s *ProjectService) ListProjects(ctx context.Context, filter models.ListFilter) (*models.ListResult[models.Project], error) {
	if err := prepareListFilter(&filter, projectSortFields); err != nil {
		return nil, err
	}
	return s.repo.List(ctx, filter)
}

// GetProject returns a project by slug.
func (s *ProjectService) GetProject(ctx context.Context, slug string) (*models.Project, error) {
	return s.repo.FindBySlug(ctx, slug)
}

// DeleteProject releases every image of the project, then removes it. If a
// release fails the project is kept.
func (s *ProjectService) DeleteProject(ctx context.Context, slug string) error {
	project, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		return err
	}

	if err := s.images.releaseAll(ctx, project.Assets()); err != nil {
		return err
	}

	return s.repo.DeleteBySlug(ctx, slug)
}

// uploadFiles stores every file of the request. On failure the files stored
// so far are released.
func (s *ProjectService) uploadFiles(ctx context.Context, files models.ProjectFiles) (projectUploads, error) {
	up := projectUploads{cards: map[int]models.Asset{}}

	store := func(file *models.Upload) (*models.Asset, error) {
		asset, err := s.images.upload(ctx, projectsFolder, file)
		if err != nil {
			s.images.discard(ctx, up.all())
			return nil, err
		}
		return &asset, nil
	}

	var err error
	if files.AboutImage != nil {
		if up.about, err = store(files.AboutImage); err != nil {
			return projectUploads{}, err
		}
	}
	if files.WhoNeedsImage != nil {
		if up.whoNeeds, err = store(files.WhoNeedsImage); err != nil {
			return projectUploads{}, err
		}
	}
	for _, i := range sortedKeys(files.CardImages) {
		asset, err := store(files.CardImages[i])
		if err != nil {
			return projectUploads{}, err
		}
		up.cards[i] = *asset
	}
	return up, nil
}
