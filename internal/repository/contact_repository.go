package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	apperrors "compliance-cms/internal/errors"
	"compliance-cms/internal/models"
)

// contactSearchFields are matched by the list search term.
var contactSearchFields = []string{"name", "email", "mobile", "message"}

// ContactRepository defines the interface for contact data operations.
// Contacts are never updated.
type ContactRepository interface {
	Create(ctx context.Context, contact *models.Contact) error
	List(ctx context.Context, filter models.ListFilter) (*models.ListResult[models.Contact], error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type contactRepository struct {
	collection *mongo.Collection
}

// NewContactRepository creates a new ContactRepository
func NewContactRepository(db *mongo.Database) ContactRepository {
	return &contactRepository{
		collection: db.Collection(ContactsCollection),
	}
}

func (r *contactRepository) Create(ctx context.Context, contact *models.Contact) error {
	now := time.Now().UTC()
	contact.CreatedAt = now
	contact.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, contact)
	if err != nil {
		return err
	}

	contact.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *contactRepository) List(ctx context.Context, filter models.ListFilter) (*models.ListResult[models.Contact], error) {
	return findPage[models.Contact](ctx, r.collection, searchFilter(filter.Search, contactSearchFields...), filter)
}

func (r *contactRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrContactNotFound
	}
	return nil
}
