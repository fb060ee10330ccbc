package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	apperrors "compliance-cms/internal/errors"
	"compliance-cms/internal/models"
)

// blogSearchFields are matched by the list search term.
var blogSearchFields = []string{"title", "content", "shortDescription"}

// BlogRepository defines the interface for blog data operations
type BlogRepository interface {
	Create(ctx context.Context, blog *models.Blog) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Blog, error)
	List(ctx context.Context, req models.BlogListRequest) (*models.ListResult[models.Blog], error)
	// FindPublished returns every published blog, newest first.
	FindPublished(ctx context.Context) ([]models.Blog, error)
	// Save overwrites the stored blog with the same ID.
	Save(ctx context.Context, blog *models.Blog) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type blogRepository struct {
	collection *mongo.Collection
}

// NewBlogRepository creates a new BlogRepository
func NewBlogRepository(db *mongo.Database) BlogRepository {
	return &blogRepository{
		collection: db.Collection(BlogsCollection),
	}
}

func (r *blogRepository) Create(ctx context.Context, blog *models.Blog) error {
	now := time.Now().UTC()
	blog.CreatedAt = now
	blog.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, blog)
	if err != nil {
		return err
	}

	blog.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *blogRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Blog, error) {
	var blog models.Blog
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&blog); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrBlogNotFound
		}
		return nil, err
	}
	return &blog, nil
}

// List returns one page of blogs matching the search term and publish state.
func (r *blogRepository) List(ctx context.Context, req models.BlogListRequest) (*models.ListResult[models.Blog], error) {
	filter := searchFilter(req.Search, blogSearchFields...)
	if req.IsPublished != nil {
		filter["isPublished"] = *req.IsPublished
	}
	return findPage[models.Blog](ctx, r.collection, filter, req.ListFilter)
}

func (r *blogRepository) FindPublished(ctx context.Context) ([]models.Blog, error) {
	return findAll[models.Blog](ctx, r.collection, bson.M{"isPublished": true}, newestFirst)
}

func (r *blogRepository) Save(ctx context.Context, blog *models.Blog) error {
	blog.UpdatedAt = time.Now().UTC()

	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": blog.ID}, blog)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrBlogNotFound
	}
	return nil
}

func (r *blogRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrBlogNotFound
	}
	return nil
}
