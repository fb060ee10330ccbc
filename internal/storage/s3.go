// Package storage provides the image host on top of S3-compatible object storage.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"compliance-cms/internal/models"
)

// S3Options configures the S3 image host.
type S3Options struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	// PublicURL is the base URL objects are served from, without a trailing slash.
	PublicURL string
}

// S3ImageHost stores images in a bucket and serves them from a public base URL.
type S3ImageHost struct {
	client    *s3.Client
	bucket    string
	publicURL string
	newID     func() string
}

// NewS3ImageHost creates a new S3 client configured for the given endpoint.
func NewS3ImageHost(ctx context.Context, opts S3Options, log *zap.Logger) (*S3ImageHost, error) {
	protocol := "http"
	if opts.UseSSL {
		protocol = "https"
	}
	endpointURL := protocol + "://" + opts.Endpoint

	// Custom resolver for MinIO/S3-compatible endpoints
	customResolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
		return aws.Endpoint{
			URL:               endpointURL,
			HostnameImmutable: true,
		}, nil
	})

	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion("us-east-1"), // MinIO requires a region
		config.WithEndpointResolverWithOptions(customResolver),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("load s3 config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.UsePathStyle = true // Required for MinIO
	})

	log.Info("configured s3 image host", zap.String("endpoint", endpointURL), zap.String("bucket", opts.Bucket))

	return &S3ImageHost{
		client:    client,
		bucket:    opts.Bucket,
		publicURL: strings.TrimSuffix(opts.PublicURL, "/"),
		newID:     uuid.NewString,
	}, nil
}

// Upload stores the file as <folder>/<uuid><ext>. The object key doubles as
// the public id.
func (s *S3ImageHost) Upload(ctx context.Context, folder string, file *models.Upload) (models.Asset, error) {
	key := folder + "/" + s.newID() + file.Ext

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(file.Data),
		ContentType:   aws.String(file.ContentType),
		ContentLength: aws.Int64(int64(len(file.Data))),
	})
	if err != nil {
		return models.Asset{}, fmt.Errorf("put object %s: %w", key, err)
	}

	return models.Asset{
		URL:      s.URL(key),
		PublicID: key,
	}, nil
}

// Release deletes the object. Deleting a missing key is not an error.
func (s *S3ImageHost) Release(ctx context.Context, publicID string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(publicID),
	})
	if err != nil {
		return fmt.Errorf("delete object %s: %w", publicID, err)
	}
	return nil
}

// URL returns the public URL of an object key.
func (s *S3ImageHost) URL(key string) string {
	return s.publicURL + "/" + key
}

// EnsureBucket creates the bucket if it does not exist yet.
func (s *S3ImageHost) EnsureBucket(ctx context.Context) error {
	if _, err := s.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(s.bucket)}); err == nil {
		return nil
	}
	if _, err := s.client.CreateBucket(ctx, &s3.CreateBucketInput{Bucket: aws.String(s.bucket)}); err != nil {
		return fmt.Errorf("create bucket %s: %w", s.bucket, err)
	}
	return nil
}
