package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "compliance-cms/internal/errors"
	"compliance-cms/internal/models"
)

func blogFilter(page, limit int) models.BlogListRequest {
	f := models.ListFilter{Page: page, Limit: limit}
	f.Normalize()
	return models.BlogListRequest{ListFilter: f}
}

func TestBlogRepository_ListPagination(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewBlogRepository(tdb.Database)
	ctx := context.Background()

	for i := 0; i < 12; i++ {
		require.NoError(t, repo.Create(ctx, &models.Blog{
			Title:   fmt.Sprintf("Blog %02d", i),
			Content: "<p>body</p>",
		}))
	}

	t.Run("pages split the total", func(t *testing.T) {
		seen := map[string]bool{}
		var sizes []int
		for page := 1; page <= 3; page++ {
			res, err := repo.List(ctx, blogFilter(page, 5))
			require.NoError(t, err)
			assert.Equal(t, int64(12), res.Total)
			assert.Equal(t, page, res.Page)
			assert.Equal(t, 5, res.Limit)
			sizes = append(sizes, len(res.Data))
			for _, b := range res.Data {
				assert.False(t, seen[b.ID.Hex()], "blog %s on two pages", b.Title)
				seen[b.ID.Hex()] = true
			}
		}
		assert.Equal(t, []int{5, 5, 2}, sizes)
		assert.Len(t, seen, 12)
	})

	t.Run("page past the end has empty data", func(t *testing.T) {
		res, err := repo.List(ctx, blogFilter(4, 5))
		require.NoError(t, err)
		assert.NotNil(t, res.Data)
		assert.Empty(t, res.Data)
	})

	t.Run("sorts by title ascending", func(t *testing.T) {
		f := blogFilter(1, 3)
		f.SortBy = "title"
		f.SortOrder = models.SortAsc

		res, err := repo.List(ctx, f)
		require.NoError(t, err)
		require.Len(t, res.Data, 3)
		assert.Equal(t, "Blog 00", res.Data[0].Title)
		assert.Equal(t, "Blog 02", res.Data[2].Title)
	})
}

func TestBlogRepository(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewBlogRepository(tdb.Database)
	ctx := context.Background()

	t.Run("search is case-insensitive across fields and literal", func(t *testing.T) {
		tdb.ClearCollection(t, BlogsCollection)

		require.NoError(t, repo.Create(ctx, &models.Blog{Title: "EPR deadlines", Content: "x", IsPublished: true}))
		require.NoError(t, repo.Create(ctx, &models.Blog{Title: "Other", Content: "x", ShortDescription: "about epr"}))
		require.NoError(t, repo.Create(ctx, &models.Blog{Title: "BIS (new)", Content: "y"}))

		f := blogFilter(1, 10)
		f.Search = "Epr"
		res, err := repo.List(ctx, f)
		require.NoError(t, err)
		assert.Equal(t, int64(2), res.Total)

		f.Search = "(new)"
		res, err = repo.List(ctx, f)
		require.NoError(t, err)
		assert.Equal(t, int64(1), res.Total)

		published := true
		f = blogFilter(1, 10)
		f.IsPublished = &published
		res, err = repo.List(ctx, f)
		require.NoError(t, err)
		require.Len(t, res.Data, 1)
		assert.Equal(t, "EPR deadlines", res.Data[0].Title)

		all, err := repo.FindPublished(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run("save and delete", func(t *testing.T) {
		tdb.ClearCollection(t, BlogsCollection)

		blog := &models.Blog{Title: "Draft", Content: "x"}
		require.NoError(t, repo.Create(ctx, blog))

		blog.Title = "Final"
		blog.Asset = models.Asset{URL: "http://img/blogs/a.jpg", PublicID: "blogs/a.jpg"}
		require.NoError(t, repo.Save(ctx, blog))

		found, err := repo.FindByID(ctx, blog.ID)
		require.NoError(t, err)
		assert.Equal(t, "Final", found.Title)
		assert.Equal(t, "blogs/a.jpg", found.PublicID)

		require.NoError(t, repo.Delete(ctx, blog.ID))
		_, err = repo.FindByID(ctx, blog.ID)
		assert.ErrorIs(t, err, apperrors.ErrBlogNotFound)
		assert.ErrorIs(t, repo.Save(ctx, blog), apperrors.ErrBlogNotFound)
	})
}
