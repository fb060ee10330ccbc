package handler

import (
	"compliance-cms/internal/models"
	"compliance-cms/internal/service"
	"compliance-cms/pkg/response"

	"github.com/gin-gonic/gin"
)

// ContactHandler handles contact-form submissions.
type ContactHandler struct {
	service service.ContactServicer
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(service service.ContactServicer) *ContactHandler {
	return &ContactHandler{service: service}
}

// CreateContact godoc
// @Summary      Submit contact form
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Param        request  body      models.CreateContactRequest  true  "Submission"
// @Success      201      {object}  response.Response{value=models.Contact}
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /contacts [post]
func (h *ContactHandler) CreateContact(c *gin.Context) {
	var req models.CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	contact, err := h.service.CreateContact(c.Request.Context(), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.Created(c, contact)
}

// ListContacts godoc
// @Summary      List submissions
// @Tags         contacts
// @Produce      json
// @Param        search     query     string  false  "Search text"
// @Param        sortBy     query     string  false  "createdAt, name or email"
// @Param        sortOrder  query     string  false  "asc or desc"
// @Param        page       query     int     false  "Page, from 1"
// @Param        limit      query     int     false  "Page size"
// @Success      200        {object}  response.Response{value=models.ListResult[models.Contact]}
// @Failure      400        {object}  response.Response
// @Failure      401        {object}  response.Response
// @Security     BearerAuth
// @Router       /contacts [get]
func (h *ContactHandler) ListContacts(c *gin.Context) {
	var filter models.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		bindFailed(c, err)
		return
	}

	result, err := h.service.ListContacts(c.Request.Context(), filter)
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.Success(c, result)
}

// DeleteContact godoc
// @Summary      Delete submission
// @Tags         contacts
// @Produce      json
// @Param        id   path      string  true  "Contact ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Security     BearerAuth
// @Router       /contacts/{id} [delete]
func (h *ContactHandler) DeleteContact(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteContact(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}

	response.Success(c, gin.H{"message": "contact deleted"})
}
