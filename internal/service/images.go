package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	apperrors "compliance-cms/internal/errors"
	"compliance-cms/internal/models"
	"compliance-cms/internal/storage"
)

// Image host folders.
const (
	blogsFolder    = "blogs"
	projectsFolder = "projects"
)

// ImagePreparer validates an upload and converts it to the stored form.
type ImagePreparer interface {
	Prepare(u *models.Upload) (*models.Upload, error)
}

// imageStore runs uploads through the preparer before handing them to the
// image host, and tracks what it uploaded so a failed request can undo it.
type imageStore struct {
	host     storage.ImageHost
	preparer ImagePreparer
	log      *zap.Logger
}

// upload stores one file. Invalid images come back as validation errors;
// image host failures as upload errors.
func (s *imageStore) upload(ctx context.Context, folder string, file *models.Upload) (models.Asset, error) {
	prepared, err := s.preparer.Prepare(file)
	if err != nil {
		return models.Asset{}, err
	}

	asset, err := s.host.Upload(ctx, folder, prepared)
	if err != nil {
		return models.Asset{}, apperrors.Upload(err)
	}
	return asset, nil
}

// releaseAll releases every asset and stops at the first failure.
func (s *imageStore) releaseAll(ctx context.Context, assets []models.Asset) error {
	for _, a := range assets {
		if a.IsZero() {
			continue
		}
		if err := s.host.Release(ctx, a.PublicID); err != nil {
			return fmt.Errorf("release asset %s: %w", a.PublicID, err)
		}
	}
	return nil
}

// discard releases assets whose owning write failed or which were replaced.
// Failures are logged and otherwise ignored. It keeps going when the
// request context has been cancelled.
func (s *imageStore) discard(ctx context.Context, assets []models.Asset) {
	ctx = context.WithoutCancel(ctx)
	for _, a := range assets {
		if a.IsZero() {
			continue
		}
		if err := s.host.Release(ctx, a.PublicID); err != nil {
			s.log.Warn("failed to release image asset",
				zap.String("publicId", a.PublicID),
				zap.Error(err),
			)
		}
	}
}
