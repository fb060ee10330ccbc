package handler

import (
	"compliance-cms/internal/models"
	"compliance-cms/internal/service"
	"compliance-cms/pkg/response"

	"github.com/gin-gonic/gin"
)

// BlogHandler handles HTTP requests for blog posts.
type BlogHandler struct {
	service service.BlogServicer
}

// NewBlogHandler creates a new BlogHandler.
func NewBlogHandler(service service.BlogServicer) *BlogHandler {
	return &BlogHandler{service: service}
}

// CreateBlog godoc
// @Summary      Create blog
// @Description  Multipart form with an optional cover image in field "image"
// @Tags         blogs
// @Accept       multipart/form-data
// @Produce      json
// @Param        title             formData  string  true   "Title"
// @Param        content           formData  string  true   "HTML content"
// @Param        shortDescription  formData  string  false  "Short description"
// @Param        isPublished       formData  bool    false  "Published"
// @Param        image             formData  file    false  "Cover image"
// @Success      201  {object}  response.Response{value=models.Blog}
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /blogs [post]
func (h *BlogHandler) CreateBlog(c *gin.Context) {
	var req models.CreateBlogRequest
	if err := c.ShouldBind(&req); err != nil {
		bindFailed(c, err)
		return
	}

	image, err := formFile(c, "image")
	if err != nil {
		_ = c.Error(err)
		return
	}

	blog, err := h.service.CreateBlog(c.Request.Context(), &req, image)
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.Created(c, blog)
}

// UpdateBlog godoc
// @Summary      Update blog
// @Description  Partial update. A new image replaces the current one.
// @Tags         blogs
// @Accept       multipart/form-data
// @Produce      json
// @Param        id                path      string  true   "Blog ID"
// @Param        title             formData  string  false  "Title"
// @Param        content           formData  string  false  "HTML content"
// @Param        shortDescription  formData  string  false  "Short description"
// @Param        isPublished       formData  bool    false  "Published"
// @Param        image             formData  file    false  "Cover image"
// @Success      200  {object}  response.Response{value=models.Blog}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /blogs/{id} [patch]
func (h *BlogHandler) UpdateBlog(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req models.UpdateBlogRequest
	if err := c.ShouldBind(&req); err != nil {
		bindFailed(c, err)
		return
	}

	image, err := formFile(c, "image")
	if err != nil {
		_ = c.Error(err)
		return
	}

	blog, err := h.service.UpdateBlog(c.Request.Context(), id, &req, image)
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.Success(c, blog)
}

// ListBlogs godoc
// @Summary      List blogs
// @Description  Paginated, searchable list. The body is optional.
// @Tags         blogs
// @Accept       json
// @Produce      json
// @Param        request  body      models.BlogListRequest  false  "Filter"
// @Success      200      {object}  response.Response{value=models.ListResult[models.Blog]}
// @Failure      400      {object}  response.Response
// @Router       /blogs/list [post]
func (h *BlogHandler) ListBlogs(c *gin.Context) {
	var req models.BlogListRequest
	if !bindListBody(c, &req) {
		return
	}

	result, err := h.service.ListBlogs(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.Success(c, result)
}

// GetBlog godoc
// @Summary      Get blog
// @Tags         blogs
// @Produce      json
// @Param        id   path      string  true  "Blog ID"
// @Success      200  {object}  response.Response{value=models.Blog}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /blogs/{id} [get]
func (h *BlogHandler) GetBlog(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	blog, err := h.service.GetBlog(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.Success(c, blog)
}

// DeleteBlog godoc
// @Summary      Delete blog
// @Description  Releases the cover image, then removes the blog
// @Tags         blogs
// @Produce      json
// @Param        id   path      string  true  "Blog ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /blogs/{id} [delete]
func (h *BlogHandler) DeleteBlog(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteBlog(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}

	response.Success(c, gin.H{"message": "blog deleted"})
}
