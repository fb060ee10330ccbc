//go:build api

package api

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"compliance-cms/internal/models"
	"compliance-cms/test/api/testserver"
	"compliance-cms/test/fixtures"
	"compliance-cms/test/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBlogs covers blog CRUD with cover images stored in MinIO.
func TestBlogs(t *testing.T) {
	testServer.CleanupBetweenTests(t)
	_, token := testserver.NewAuthHelper(testServer).CreateAdmin(t)
	ctx := context.Background()

	var created models.Blog

	t.Run("create - uploads the cover image", func(t *testing.T) {
		w := testutil.MakeMultipartRequest(t, testServer.Router, http.MethodPost, "/api/blogs", token,
			map[string]string{
				"title":            "New EPR rules",
				"content":          `<p>Rules</p><img src=x onerror="alert(1)">`,
				"shortDescription": "What changes",
				"isPublished":      "true",
			},
			testutil.File{Field: "image", Filename: "cover.png", Data: testserver.PNG(t, 40, 20)},
		)

		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		testutil.ParseValue(t, w, &created)
		assert.True(t, created.IsPublished)
		assert.NotContains(t, created.Content, "onerror")
		require.NotEmpty(t, created.PublicID)
		assert.True(t, strings.HasPrefix(created.PublicID, "blogs/"))
		assert.Equal(t, testserver.TestPublicURL+"/"+created.PublicID, created.URL)
		assert.True(t, testServer.MinIO.ObjectExists(ctx, created.PublicID))
	})

	t.Run("create - rejects a file that is not an image", func(t *testing.T) {
		w := testutil.MakeMultipartRequest(t, testServer.Router, http.MethodPost, "/api/blogs", token,
			map[string]string{"title": "Broken", "content": "<p>x</p>"},
			testutil.File{Field: "image", Filename: "cover.png", Data: []byte("not an image")},
		)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, []string{"file is not a supported image"}, testutil.ParseAPIResponse(t, w).Messages)
	})

	t.Run("create - requires content", func(t *testing.T) {
		w := testutil.MakeMultipartRequest(t, testServer.Router, http.MethodPost, "/api/blogs", token,
			map[string]string{"title": "No content"},
		)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, []string{"content is required"}, testutil.ParseAPIResponse(t, w).Messages)
	})

	t.Run("get - public", func(t *testing.T) {
		w := testutil.MakeRequest(t, testServer.Router, http.MethodGet, "/api/blogs/"+created.ID.Hex(), nil)

		require.Equal(t, http.StatusOK, w.Code)
		var blog models.Blog
		testutil.ParseValue(t, w, &blog)
		assert.Equal(t, "New EPR rules", blog.Title)
	})

	t.Run("update - new image replaces the old one", func(t *testing.T) {
		oldKey := created.PublicID
		w := testutil.MakeMultipartRequest(t, testServer.Router, http.MethodPatch, "/api/blogs/"+created.ID.Hex(), token,
			map[string]string{"title": "New EPR rules for 2025"},
			testutil.File{Field: "image", Filename: "new.png", Data: testserver.PNG(t, 10, 10)},
		)

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var updated models.Blog
		testutil.ParseValue(t, w, &updated)
		assert.Equal(t, "New EPR rules for 2025", updated.Title)
		assert.Equal(t, created.Content, updated.Content)
		assert.NotEqual(t, oldKey, updated.PublicID)
		assert.True(t, testServer.MinIO.ObjectExists(ctx, updated.PublicID))
		assert.False(t, testServer.MinIO.ObjectExists(ctx, oldKey))
		created = updated
	})

	t.Run("list - filters by published", func(t *testing.T) {
		testServer.SeedBlog(t, fixtures.NewBlog().WithTitle("Draft").BuildPtr())

		w := testutil.MakeRequest(t, testServer.Router, http.MethodPost, "/api/blogs/list", map[string]any{"isPublished": true})
		require.Equal(t, http.StatusOK, w.Code)
		var result models.ListResult[models.Blog]
		testutil.ParseValue(t, w, &result)
		assert.Equal(t, int64(1), result.Total)
		require.Len(t, result.Data, 1)
		assert.Equal(t, created.ID, result.Data[0].ID)

		w = testutil.MakeRequest(t, testServer.Router, http.MethodPost, "/api/blogs/list", nil)
		require.Equal(t, http.StatusOK, w.Code)
		testutil.ParseValue(t, w, &result)
		assert.Equal(t, int64(2), result.Total)
		assert.Equal(t, models.DefaultLimit, result.Limit)
	})

	t.Run("list - rejects unknown sort field", func(t *testing.T) {
		w := testutil.MakeRequest(t, testServer.Router, http.MethodPost, "/api/blogs/list", map[string]any{"sortBy": "password"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("delete - releases the image", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodDelete, "/api/blogs/"+created.ID.Hex(), token, nil)
		require.Equal(t, http.StatusOK, w.Code)

		assert.False(t, testServer.MinIO.ObjectExists(ctx, created.PublicID))
		w = testutil.MakeRequest(t, testServer.Router, http.MethodGet, "/api/blogs/"+created.ID.Hex(), nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("delete - requires token", func(t *testing.T) {
		w := testutil.MakeRequest(t, testServer.Router, http.MethodDelete, "/api/blogs/"+created.ID.Hex(), nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
