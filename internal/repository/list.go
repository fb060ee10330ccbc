package repository

import (
	"context"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"compliance-cms/internal/models"
)

// searchFilter matches documents where any of fields contains search,
// case-insensitively. An empty search matches everything.
func searchFilter(search string, fields ...string) bson.M {
	if search == "" || len(fields) == 0 {
		return bson.M{}
	}

	pattern := containsPattern(search)
	or := make(bson.A, 0, len(fields))
	for _, field := range fields {
		or = append(or, bson.M{field: pattern})
	}
	return bson.M{"$or": or}
}

func containsPattern(search string) bson.M {
	return bson.M{"$regex": regexp.QuoteMeta(search), "$options": "i"}
}

// sortDirection maps a sort order to the Mongo direction.
func sortDirection(order string) int {
	if order == models.SortAsc {
		return 1
	}
	return -1
}

// findPage counts every document matching filter and returns the requested
// page of them. Ties on the sort field are broken by _id so pages never
// overlap. f must already be normalized.
func findPage[T any](ctx context.Context, coll *mongo.Collection, filter bson.M, f models.ListFilter) (*models.ListResult[T], error) {
	total, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}

	dir := sortDirection(f.SortOrder)
	sort := bson.D{{Key: f.SortBy, Value: dir}}
	if f.SortBy != "_id" {
		sort = append(sort, bson.E{Key: "_id", Value: dir})
	}

	opts := options.Find().
		SetSort(sort).
		SetSkip(f.Skip()).
		SetLimit(int64(f.Limit))

	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	data := []T{}
	if err := cursor.All(ctx, &data); err != nil {
		return nil, err
	}

	return &models.ListResult[T]{
		Total: total,
		Page:  f.Page,
		Limit: f.Limit,
		Data:  data,
	}, nil
}

// findAll returns every document matching filter in the given order.
func findAll[T any](ctx context.Context, coll *mongo.Collection, filter bson.M, sort bson.D) ([]T, error) {
	cursor, err := coll.Find(ctx, filter, options.Find().SetSort(sort))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := []T{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

var newestFirst = bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}
