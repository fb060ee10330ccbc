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

// projectSearchFields are matched by the list search term.
var projectSearchFields = []string{"title", "hero.title", "about.title"}

// ProjectRepository defines the interface for project data operations
type ProjectRepository interface {
	Create(ctx context.Context, project *models.Project) error
	FindBySlug(ctx context.Context, slug string) (*models.Project, error)
	List(ctx context.Context, filter models.ListFilter) (*models.ListResult[models.Project], error)
	// FindAll returns every project, newest first.
	FindAll(ctx context.Context) ([]models.Project, error)
	// Save overwrites the stored project with the same ID.
	Save(ctx context.Context, project *models.Project) error
	DeleteBySlug(ctx context.Context, slug string) error
}

type projectRepository struct {
	collection *mongo.Collection
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *mongo.Database) ProjectRepository {
	return &projectRepository{
		collection: db.Collection(ProjectsCollection),
	}
}

// Create inserts a project. A slug already in use yields ErrProjectSlugTaken.
func (r *projectRepository) Create(ctx context.Context, project *models.Project) error {
	taken, err := exists(ctx, r.collection, bson.M{"slug": project.Slug})
	if err != nil {
		return err
	}
	if taken {
		return apperrors.ErrProjectSlugTaken
	}

	now := time.Now().UTC()
	project.CreatedAt = now
	project.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, project)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.ErrProjectSlugTaken
		}
		return err
	}

	project.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *projectRepository) FindBySlug(ctx context.Context, slug string) (*models.Project, error) {
	var project models.Project
	if err := r.collection.FindOne(ctx, bson.M{"slug": slug}).Decode(&project); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, err
	}
	return &project, nil
}

func (r *projectRepository) List(ctx context.Context, filter models.ListFilter) (*models.ListResult[models.Project], error) {
	return findPage[models.Project](ctx, r.collection, searchFilter(filter.Search, projectSearchFields...), filter)
}

func (r *projectRepository) FindAll(ctx context.Context) ([]models.Project, error) {
	return findAll[models.Project](ctx, r.collection, bson.M{}, newestFirst)
}

// Save replaces the project. Moving it to a slug used by another project
// yields ErrProjectSlugTaken.
func (r *projectRepository) Save(ctx context.Context, project *models.Project) error {
	taken, err := exists(ctx, r.collection, bson.M{"slug": project.Slug, "_id": bson.M{"$ne": project.ID}})
	if err != nil {
		return err
	}
	if taken {
		return apperrors.ErrProjectSlugTaken
	}

	project.UpdatedAt = time.Now().UTC()

	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": project.ID}, project)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.ErrProjectSlugTaken
		}
		return err
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrProjectNotFound
	}
	return nil
}

func (r *projectRepository) DeleteBySlug(ctx context.Context, slug string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"slug": slug})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrProjectNotFound
	}
	return nil
}
