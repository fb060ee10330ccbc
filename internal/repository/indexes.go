package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names.
const (
	UsersCollection    = "users"
	PagesCollection    = "pages"
	BlogsCollection    = "blogs"
	ProjectsCollection = "projects"
	ContactsCollection = "contacts"
)

// IndexSpec is one index to create on a collection.
type IndexSpec struct {
	Collection string
	Model      mongo.IndexModel
}

// Indexes lists every index the repositories rely on. The unique indexes
// back the slug and email conflict checks.
func Indexes() []IndexSpec {
	unique := options.Index().SetUnique(true)
	newest := bson.D{{Key: "createdAt", Value: -1}}

	return []IndexSpec{
		{UsersCollection, mongo.IndexModel{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique}},

		{PagesCollection, mongo.IndexModel{Keys: bson.D{{Key: "slug", Value: 1}}, Options: unique}},
		{PagesCollection, mongo.IndexModel{Keys: bson.D{{Key: "showInNavbar", Value: 1}, {Key: "isActive", Value: 1}}}},
		{PagesCollection, mongo.IndexModel{Keys: newest}},

		{BlogsCollection, mongo.IndexModel{Keys: newest}},
		{BlogsCollection, mongo.IndexModel{Keys: bson.D{{Key: "isPublished", Value: 1}, {Key: "createdAt", Value: -1}}}},

		{ProjectsCollection, mongo.IndexModel{Keys: bson.D{{Key: "slug", Value: 1}}, Options: unique}},
		{ProjectsCollection, mongo.IndexModel{Keys: newest}},

		{ContactsCollection, mongo.IndexModel{Keys: newest}},
	}
}

// EnsureIndexes creates every index in Indexes. Existing identical indexes are left alone.
func EnsureIndexes(ctx context.Context, db *mongo.Database) ([]string, error) {
	var names []string
	for _, spec := range Indexes() {
		name, err := db.Collection(spec.Collection).Indexes().CreateOne(ctx, spec.Model)
		if err != nil {
			return names, fmt.Errorf("create index on %s: %w", spec.Collection, err)
		}
		names = append(names, spec.Collection+"."+name)
	}
	return names, nil
}
