package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	apperrors "compliance-cms/internal/errors"
	"compliance-cms/internal/models"
)

func TestContactRepository(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewContactRepository(tdb.Database)
	ctx := context.Background()

	t.Run("list sorted by name with search", func(t *testing.T) {
		tdb.ClearCollection(t, ContactsCollection)

		for _, name := range []string{"Zoya", "Arjun", "Meera"} {
			require.NoError(t, repo.Create(ctx, &models.Contact{
				Name: name, Email: "x@example.com", Mobile: "123456", Message: "BIS help for " + name,
			}))
		}

		f := models.ListFilter{SortBy: "name", SortOrder: models.SortAsc}
		f.Normalize()
		res, err := repo.List(ctx, f)
		require.NoError(t, err)
		require.Len(t, res.Data, 3)
		assert.Equal(t, "Arjun", res.Data[0].Name)
		assert.Equal(t, "Zoya", res.Data[2].Name)

		f.Search = "meera"
		res, err = repo.List(ctx, f)
		require.NoError(t, err)
		assert.Equal(t, int64(1), res.Total)
	})

	t.Run("delete", func(t *testing.T) {
		c := &models.Contact{Name: "N", Email: "n@example.com", Mobile: "123456", Message: "m"}
		require.NoError(t, repo.Create(ctx, c))
		require.NoError(t, repo.Delete(ctx, c.ID))
		assert.ErrorIs(t, repo.Delete(ctx, c.ID), apperrors.ErrContactNotFound)
		assert.ErrorIs(t, repo.Delete(ctx, primitive.NewObjectID()), apperrors.ErrContactNotFound)
	})
}
