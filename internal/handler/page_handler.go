package handler

import (
	"compliance-cms/internal/models"
	"compliance-cms/internal/service"
	"compliance-cms/pkg/response"

	"github.com/gin-gonic/gin"
)

// PageHandler handles HTTP requests for CMS pages.
type PageHandler struct {
	service service.PageServicer
}

// NewPageHandler creates a new PageHandler.
func NewPageHandler(service service.PageServicer) *PageHandler {
	return &PageHandler{service: service}
}

// CreatePage godoc
// @Summary      Create page
// @Description  Create a CMS page. HTML fields are sanitized; omitted flags default to true.
// @Tags         pages
// @Accept       json
// @Produce      json
// @Param        request  body      models.PageRequest  true  "Page"
// @Success      201      {object}  response.Response{value=models.Page}
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Security     BearerAuth
// @Router       /pages [post]
func (h *PageHandler) CreatePage(c *gin.Context) {
	var req models.PageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	page, err := h.service.CreatePage(c.Request.Context(), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.Created(c, page)
}

// ListPages godoc
// @Summary      List pages
// @Description  Every page, newest first, for the admin table
// @Tags         pages
// @Produce      json
// @Success      200  {object}  response.Response{value=[]models.Page}
// @Failure      401  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /pages [get]
func (h *PageHandler) ListPages(c *gin.Context) {
	pages, err := h.service.ListPages(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.Success(c, pages)
}

// GetPage godoc
// @Summary      Get page by ID
// @Tags         pages
// @Produce      json
// @Param        id   path      string  true  "Page ID"
// @Success      200  {object}  response.Response{value=models.Page}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Security     BearerAuth
// @Router       /pages/{id} [get]
func (h *PageHandler) GetPage(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	page, err := h.service.GetPage(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.Success(c, page)
}

// GetPageBySlug godoc
// @Summary      Get published page
// @Description  Public lookup by slug. Inactive pages are not found.
// @Tags         pages
// @Produce      json
// @Param        slug  path      string  true  "Page slug"
// @Success      200   {object}  response.Response{value=models.Page}
// @Failure      404   {object}  response.Response
// @Router       /pages/slug/{slug} [get]
func (h *PageHandler) GetPageBySlug(c *gin.Context) {
	page, err := h.service.GetPublishedPage(c.Request.Context(), c.Param("slug"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.Success(c, page)
}

// ReplacePage godoc
// @Summary      Replace page
// @Description  Full replace. Optional fields missing from the body revert to their defaults.
// @Tags         pages
// @Accept       json
// @Produce      json
// @Param        id       path      string              true  "Page ID"
// @Param        request  body      models.PageRequest  true  "Page"
// @Success      200      {object}  response.Response{value=models.Page}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Security     BearerAuth
// @Router       /pages/{id} [put]
func (h *PageHandler) ReplacePage(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req models.PageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	page, err := h.service.ReplacePage(c.Request.Context(), id, &req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.Success(c, page)
}

// DeletePage godoc
// @Summary      Delete page
// @Tags         pages
// @Produce      json
// @Param        id   path      string  true  "Page ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Security     BearerAuth
// @Router       /pages/{id} [delete]
func (h *PageHandler) DeletePage(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeletePage(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}

	response.Success(c, gin.H{"message": "page deleted"})
}

// NavTree godoc
// @Summary      Navigation tree
// @Description  Active navbar pages grouped as category, subcategory, subsubcategory
// @Tags         pages
// @Produce      json
// @Success      200  {object}  response.Response{value=models.NavTree}
// @Failure      500  {object}  response.Response
// @Router       /pages/nav [get]
func (h *PageHandler) NavTree(c *gin.Context) {
	tree, err := h.service.NavTree(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.Success(c, tree)
}

// Categories godoc
// @Summary      Page categories
// @Description  The allowed values of a page's category
// @Tags         pages
// @Produce      json
// @Success      200  {object}  response.Response{value=[]string}
// @Router       /pages/categories [get]
func (h *PageHandler) Categories(c *gin.Context) {
	response.Success(c, h.service.Categories())
}
