package storage

import (
	"context"

	"compliance-cms/internal/models"
)

//go:generate mockgen -destination=mocks/mock_storage.go -package=mocks compliance-cms/internal/storage ImageHost

// ImageHost stores images and hands out public URLs for them.
type ImageHost interface {
	// Upload stores the file under folder and returns its URL and public id.
	Upload(ctx context.Context, folder string, file *models.Upload) (models.Asset, error)
	// Release deletes the asset with the given public id.
	Release(ctx context.Context, publicID string) error
}

// Ensure S3ImageHost implements ImageHost interface
var _ ImageHost = (*S3ImageHost)(nil)
