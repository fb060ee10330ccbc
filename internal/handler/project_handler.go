package handler

import (
	"fmt"
	"strconv"
	"strings"

	apperrors "compliance-cms/internal/errors"
	"compliance-cms/internal/models"
	"compliance-cms/internal/service"
	"compliance-cms/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// Multipart field names of a project request.
const (
	projectDataField      = "data"
	aboutImageField       = "aboutImage"
	whoNeedsImageField    = "whoNeedsImage"
	cardImagesField       = "cardImages"
	cardImageIndexesField = "cardImageIndexes"
)

// ProjectHandler handles HTTP requests for project pages.
type ProjectHandler struct {
	service service.ProjectServicer
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(service service.ProjectServicer) *ProjectHandler {
	return &ProjectHandler{service: service}
}

// CreateProject godoc
// @Summary      Create project
// @Description  Multipart form: the project as JSON in field "data", plus files aboutImage, whoNeedsImage and cardImages[]. Every card needs an image. A plain JSON body is accepted when there are no files.
// @Tags         projects
// @Accept       multipart/form-data
// @Produce      json
// @Param        data              formData  string  true   "Project JSON (models.ProjectRequest)"
// @Param        aboutImage        formData  file    false  "About section image"
// @Param        whoNeedsImage     formData  file    false  "Who-needs section image"
// @Param        cardImages[]      formData  file    false  "Card images, in card order"
// @Param        cardImageIndexes  formData  string  false  "Comma-separated card index per card image"
// @Success      201  {object}  response.Response{value=models.Project}
// @Failure      400  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	req, files, ok := bindProject(c)
	if !ok {
		return
	}

	project, err := h.service.CreateProject(c.Request.Context(), req, files)
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.Created(c, project)
}

// UpdateProject godoc
// @Summary      Update project
// @Description  Deep merge. Absent fields keep their value; cards and faqs merge by position.
// @Tags         projects
// @Accept       multipart/form-data
// @Produce      json
// @Param        slug              path      string  true   "Project slug"
// @Param        data              formData  string  false  "Project JSON (models.ProjectRequest)"
// @Param        aboutImage        formData  file    false  "About section image"
// @Param        whoNeedsImage     formData  file    false  "Who-needs section image"
// @Param        cardImages[]      formData  file    false  "Card images"
// @Param        cardImageIndexes  formData  string  false  "Comma-separated card index per card image"
// @Success      200  {object}  response.Response{value=models.Project}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /projects/{slug} [patch]
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	req, files, ok := bindProject(c)
	if !ok {
		return
	}

	project, err := h.service.UpdateProject(c.Request.Context(), c.Param("slug"), req, files)
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.Success(c, project)
}

// ListProjects godoc
// @Summary      List projects
// @Description  Paginated, searchable list. The body is optional.
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        request  body      models.ListFilter  false  "Filter"
// @Success      200      {object}  response.Response{value=models.ListResult[models.Project]}
// @Failure      400      {object}  response.Response
// @Router       /projects/list [post]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	var filter models.ListFilter
	if !bindListBody(c, &filter) {
		return
	}

	result, err := h.service.ListProjects(c.Request.Context(), filter)
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.Success(c, result)
}

// GetProject godoc
// @Summary      Get project
// @Tags         projects
// @Produce      json
// @Param        slug  path      string  true  "Project slug"
// @Success      200   {object}  response.Response{value=models.Project}
// @Failure      404   {object}  response.Response
// @Router       /projects/{slug} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	project, err := h.service.GetProject(c.Request.Context(), c.Param("slug"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.Success(c, project)
}

// DeleteProject godoc
// @Summary      Delete project
// @Description  Releases every image of the project, then removes it
// @Tags         projects
// @Produce      json
// @Param        slug  path      string  true  "Project slug"
// @Success      200   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Failure      500   {object}  response.Response
// @Security     BearerAuth
// @Router       /projects/{slug} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	if err := h.service.DeleteProject(c.Request.Context(), c.Param("slug")); err != nil {
		_ = c.Error(err)
		return
	}

	response.Success(c, gin.H{"message": "project deleted"})
}

// bindProject reads the project payload and its files. On failure the
// response has been handled and false is returned.
func bindProject(c *gin.Context) (*models.ProjectRequest, models.ProjectFiles, bool) {
	var req models.ProjectRequest
	var files models.ProjectFiles

	if !isMultipart(c) {
		if err := c.ShouldBindJSON(&req); err != nil {
			bindFailed(c, err)
			return nil, files, false
		}
		return &req, files, true
	}

	if data := c.PostForm(projectDataField); data != "" {
		if err := binding.JSON.BindBody([]byte(data), &req); err != nil {
			bindFailed(c, err)
			return nil, files, false
		}
	}

	var err error
	if files.AboutImage, err = formFile(c, aboutImageField); err != nil {
		_ = c.Error(err)
		return nil, files, false
	}
	if files.WhoNeedsImage, err = formFile(c, whoNeedsImageField); err != nil {
		_ = c.Error(err)
		return nil, files, false
	}

	cards, err := formFiles(c, cardImagesField, cardImagesField+"[]")
	if err != nil {
		_ = c.Error(err)
		return nil, files, false
	}
	if files.CardImages, err = mapCardImages(cards, c.PostForm(cardImageIndexesField)); err != nil {
		_ = c.Error(err)
		return nil, files, false
	}

	return &req, files, true
}

// mapCardImages assigns card images to card indexes. Without explicit
// indexes the n-th file belongs to the n-th card.
func mapCardImages(files []*models.Upload, rawIndexes string) (map[int]*models.Upload, error) {
	if len(files) == 0 && strings.TrimSpace(rawIndexes) == "" {
		return nil, nil
	}

	out := make(map[int]*models.Upload, len(files))
	if strings.TrimSpace(rawIndexes) == "" {
		for i, f := range files {
			out[i] = f
		}
		return out, nil
	}

	parts := strings.Split(rawIndexes, ",")
	if len(parts) != len(files) {
		return nil, apperrors.Validation(fmt.Sprintf("%s lists %d indexes for %d card images", cardImageIndexesField, len(parts), len(files)))
	}
	for i, p := range parts {
		idx, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || idx < 0 {
			return nil, apperrors.Validation(cardImageIndexesField + " must be non-negative integers")
		}
		if _, dup := out[idx]; dup {
			return nil, apperrors.Validation(fmt.Sprintf("card %d has more than one image", idx))
		}
		out[idx] = files[i]
	}
	return out, nil
}
