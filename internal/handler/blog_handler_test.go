package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	apperrors "compliance-cms/internal/errors"
	"compliance-cms/internal/models"
	"compliance-cms/internal/service/mocks"
)

var pngBytes = []byte("\x89PNG\r\n\x1a\nfake")

func TestBlogHandler_CreateBlog(t *testing.T) {
	t.Run("multipart with image", func(t *testing.T) {
		var gotReq *models.CreateBlogRequest
		var gotImage *models.Upload
		mockService := &mocks.MockBlogService{
			CreateBlogFunc: func(ctx context.Context, req *models.CreateBlogRequest, image *models.Upload) (*models.Blog, error) {
				gotReq, gotImage = req, image
				return &models.Blog{ID: primitive.NewObjectID(), Title: req.Title}, nil
			},
		}

		router := newTestRouter()
		router.POST("/blogs", NewBlogHandler(mockService).CreateBlog)

		req := multipartRequest(t, http.MethodPost, "/blogs",
			map[string]string{"title": "EPR update", "content": "<p>Body</p>", "isPublished": "true"},
			formFileSpec{field: "image", name: "cover.png", data: pngBytes},
		)
		w := serve(router, req)

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "EPR update", gotReq.Title)
		assert.True(t, gotReq.IsPublished)
		require.NotNil(t, gotImage)
		assert.Equal(t, "cover.png", gotImage.Filename)
		assert.Equal(t, pngBytes, gotImage.Data)
	})

	t.Run("multipart without image", func(t *testing.T) {
		mockService := &mocks.MockBlogService{
			CreateBlogFunc: func(ctx context.Context, req *models.CreateBlogRequest, image *models.Upload) (*models.Blog, error) {
				assert.Nil(t, image)
				return &models.Blog{Title: req.Title}, nil
			},
		}

		router := newTestRouter()
		router.POST("/blogs", NewBlogHandler(mockService).CreateBlog)

		w := serve(router, multipartRequest(t, http.MethodPost, "/blogs",
			map[string]string{"title": "EPR update", "content": "<p>Body</p>"}))

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("json body", func(t *testing.T) {
		mockService := &mocks.MockBlogService{
			CreateBlogFunc: func(ctx context.Context, req *models.CreateBlogRequest, image *models.Upload) (*models.Blog, error) {
				assert.Nil(t, image)
				return &models.Blog{Title: req.Title}, nil
			},
		}

		router := newTestRouter()
		router.POST("/blogs", NewBlogHandler(mockService).CreateBlog)

		w := serve(router, jsonRequest(t, http.MethodPost, "/blogs",
			map[string]any{"title": "EPR update", "content": "<p>Body</p>"}))

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("missing content", func(t *testing.T) {
		router := newTestRouter()
		router.POST("/blogs", NewBlogHandler(&mocks.MockBlogService{}).CreateBlog)

		w := serve(router, multipartRequest(t, http.MethodPost, "/blogs", map[string]string{"title": "EPR update"}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, []string{"content is required"}, decodeEnvelope(t, w).Messages)
	})

	t.Run("upload failure", func(t *testing.T) {
		mockService := &mocks.MockBlogService{
			CreateBlogFunc: func(ctx context.Context, req *models.CreateBlogRequest, image *models.Upload) (*models.Blog, error) {
				return nil, apperrors.Upload(assert.AnError)
			},
		}

		router := newTestRouter()
		router.POST("/blogs", NewBlogHandler(mockService).CreateBlog)

		w := serve(router, multipartRequest(t, http.MethodPost, "/blogs",
			map[string]string{"title": "EPR update", "content": "<p>Body</p>"},
			formFileSpec{field: "image", name: "cover.png", data: pngBytes},
		))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, []string{"image upload failed"}, decodeEnvelope(t, w).Messages)
	})

	t.Run("invalid image", func(t *testing.T) {
		mockService := &mocks.MockBlogService{
			CreateBlogFunc: func(ctx context.Context, req *models.CreateBlogRequest, image *models.Upload) (*models.Blog, error) {
				return nil, apperrors.ErrInvalidImage
			},
		}

		router := newTestRouter()
		router.POST("/blogs", NewBlogHandler(mockService).CreateBlog)

		w := serve(router, multipartRequest(t, http.MethodPost, "/blogs",
			map[string]string{"title": "EPR update", "content": "<p>Body</p>"},
			formFileSpec{field: "image", name: "notes.txt", data: []byte("hello")},
		))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestBlogHandler_UpdateBlog(t *testing.T) {
	id := primitive.NewObjectID()

	t.Run("partial fields", func(t *testing.T) {
		mockService := &mocks.MockBlogService{
			UpdateBlogFunc: func(ctx context.Context, got primitive.ObjectID, req *models.UpdateBlogRequest, image *models.Upload) (*models.Blog, error) {
				assert.Equal(t, id, got)
				require.NotNil(t, req.Title)
				assert.Equal(t, "New title", *req.Title)
				assert.Nil(t, req.Content)
				assert.Nil(t, image)
				return &models.Blog{ID: got, Title: *req.Title}, nil
			},
		}

		router := newTestRouter()
		router.PATCH("/blogs/:id", NewBlogHandler(mockService).UpdateBlog)

		w := serve(router, multipartRequest(t, http.MethodPatch, "/blogs/"+id.Hex(), map[string]string{"title": "New title"}))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		mockService := &mocks.MockBlogService{
			UpdateBlogFunc: func(ctx context.Context, _ primitive.ObjectID, _ *models.UpdateBlogRequest, _ *models.Upload) (*models.Blog, error) {
				return nil, apperrors.ErrBlogNotFound
			},
		}

		router := newTestRouter()
		router.PATCH("/blogs/:id", NewBlogHandler(mockService).UpdateBlog)

		w := serve(router, multipartRequest(t, http.MethodPatch, "/blogs/"+id.Hex(), map[string]string{"title": "New title"}))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		router := newTestRouter()
		router.PATCH("/blogs/:id", NewBlogHandler(&mocks.MockBlogService{}).UpdateBlog)

		w := serve(router, multipartRequest(t, http.MethodPatch, "/blogs/nope", map[string]string{"title": "x"}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestBlogHandler_ListBlogs(t *testing.T) {
	tests := []struct {
		name           string
		body           any
		check          func(*testing.T, models.BlogListRequest)
		expectedStatus int
	}{
		{
			name: "empty body keeps defaults",
			body: nil,
			check: func(t *testing.T, req models.BlogListRequest) {
				assert.Zero(t, req.Page)
				assert.Nil(t, req.IsPublished)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "filter body",
			body: `{"search":"epr","page":2,"limit":5,"isPublished":true}`,
			check: func(t *testing.T, req models.BlogListRequest) {
				assert.Equal(t, "epr", req.Search)
				assert.Equal(t, 2, req.Page)
				assert.Equal(t, 5, req.Limit)
				require.NotNil(t, req.IsPublished)
				assert.True(t, *req.IsPublished)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "large limit",
			body: `{"limit":500}`,
			check: func(t *testing.T, req models.BlogListRequest) {
				assert.Equal(t, 500, req.Limit)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "negative limit",
			body:           `{"limit":-1}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unknown sort order",
			body:           `{"sortOrder":"up"}`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockBlogService{
				ListBlogsFunc: func(ctx context.Context, req models.BlogListRequest) (*models.ListResult[models.Blog], error) {
					if tt.check != nil {
						tt.check(t, req)
					}
					return &models.ListResult[models.Blog]{Page: 1, Limit: 10, Data: []models.Blog{}}, nil
				},
			}

			router := newTestRouter()
			router.POST("/blogs/list", NewBlogHandler(mockService).ListBlogs)

			w := serve(router, jsonRequest(t, http.MethodPost, "/blogs/list", tt.body))

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestBlogHandler_DeleteBlog(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{"deleted", nil, http.StatusOK},
		{"not found", apperrors.ErrBlogNotFound, http.StatusNotFound},
		{"image release failed", apperrors.Upload(assert.AnError), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockBlogService{
				DeleteBlogFunc: func(ctx context.Context, id primitive.ObjectID) error { return tt.err },
			}

			router := newTestRouter()
			router.DELETE("/blogs/:id", NewBlogHandler(mockService).DeleteBlog)

			w := serve(router, jsonRequest(t, http.MethodDelete, "/blogs/"+primitive.NewObjectID().Hex(), nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}
