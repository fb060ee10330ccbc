package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"

	"compliance-cms/internal/models"
)

func TestSearchFilter(t *testing.T) {
	assert.Equal(t, bson.M{}, searchFilter("", "title"))

	f := searchFilter("a.b", "title", "content")
	or, ok := f["$or"].(bson.A)
	assert.True(t, ok)
	assert.Len(t, or, 2)
	assert.Equal(t, bson.M{"title": bson.M{"$regex": `a\.b`, "$options": "i"}}, or[0])
}

func TestSortDirection(t *testing.T) {
	assert.Equal(t, 1, sortDirection(models.SortAsc))
	assert.Equal(t, -1, sortDirection(models.SortDesc))
}
