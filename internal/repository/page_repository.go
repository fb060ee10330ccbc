package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	apperrors "compliance-cms/internal/errors"
	"compliance-cms/internal/models"
)

// PageRepository defines the interface for page data operations
type PageRepository interface {
	Create(ctx context.Context, page *models.Page) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Page, error)
	FindBySlug(ctx context.Context, slug string) (*models.Page, error)
	// FindAll returns every page, newest first.
	FindAll(ctx context.Context) ([]models.Page, error)
	// FindNavigable returns pages that are both shown in the navbar and
	// active, in insertion order.
	FindNavigable(ctx context.Context) ([]models.Page, error)
	// FindActive returns every active page, newest first.
	FindActive(ctx context.Context) ([]models.Page, error)
	// Replace overwrites the stored page with the same ID, keeping createdAt.
	Replace(ctx context.Context, page *models.Page) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type pageRepository struct {
	collection *mongo.Collection
}

// NewPageRepository creates a new PageRepository
func NewPageRepository(db *mongo.Database) PageRepository {
	return &pageRepository{
		collection: db.Collection(PagesCollection),
	}
}

// Create inserts a page. A slug already in use yields ErrPageSlugTaken.
func (r *pageRepository) Create(ctx context.Context, page *models.Page) error {
	taken, err := r.slugTaken(ctx, page.Slug, primitive.NilObjectID)
	if err != nil {
		return err
	}
	if taken {
		return apperrors.ErrPageSlugTaken
	}

	now := time.Now().UTC()
	page.CreatedAt = now
	page.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, page)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.ErrPageSlugTaken
		}
		return err
	}

	page.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *pageRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Page, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *pageRepository) FindBySlug(ctx context.Context, slug string) (*models.Page, error) {
	return r.findOne(ctx, bson.M{"slug": slug})
}

func (r *pageRepository) findOne(ctx context.Context, filter bson.M) (*models.Page, error) {
	var page models.Page
	if err := r.collection.FindOne(ctx, filter).Decode(&page); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrPageNotFound
		}
		return nil, err
	}
	return &page, nil
}

func (r *pageRepository) FindAll(ctx context.Context) ([]models.Page, error) {
	return findAll[models.Page](ctx, r.collection, bson.M{}, newestFirst)
}

func (r *pageRepository) FindNavigable(ctx context.Context) ([]models.Page, error) {
	filter := bson.M{"showInNavbar": true, "isActive": true}
	return findAll[models.Page](ctx, r.collection, filter, bson.D{{Key: "_id", Value: 1}})
}

func (r *pageRepository) FindActive(ctx context.Context) ([]models.Page, error) {
	return findAll[models.Page](ctx, r.collection, bson.M{"isActive": true}, newestFirst)
}

func (r *pageRepository) Replace(ctx context.Context, page *models.Page) error {
	existing, err := r.FindByID(ctx, page.ID)
	if err != nil {
		return err
	}

	taken, err := r.slugTaken(ctx, page.Slug, page.ID)
	if err != nil {
		return err
	}
	if taken {
		return apperrors.ErrPageSlugTaken
	}

	page.CreatedAt = existing.CreatedAt
	page.UpdatedAt = time.Now().UTC()

	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": page.ID}, page)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.ErrPageSlugTaken
		}
		return err
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrPageNotFound
	}
	return nil
}

func (r *pageRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrPageNotFound
	}
	return nil
}

// slugTaken reports whether a page other than except uses slug.
func (r *pageRepository) slugTaken(ctx context.Context, slug string, except primitive.ObjectID) (bool, error) {
	return exists(ctx, r.collection, bson.M{"slug": slug, "_id": bson.M{"$ne": except}})
}

func exists(ctx context.Context, coll *mongo.Collection, filter bson.M) (bool, error) {
	n, err := coll.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
