// Package handler contains HTTP handlers for the API.
//
// Handlers bind and validate input, call a service and write the success
// envelope. Service errors are pushed with c.Error and rendered by
// middleware.ErrorHandler.
package handler

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.mongodb.org/mongo-driver/bson/primitive"

	apperrors "compliance-cms/internal/errors"
	"compliance-cms/internal/models"
	"compliance-cms/internal/validator"
	"compliance-cms/pkg/response"
)

// parseID reads an ObjectID path parameter. On failure the error is pushed
// and false is returned.
func parseID(c *gin.Context, param string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(param))
	if err != nil {
		_ = c.Error(apperrors.ErrInvalidID)
		return primitive.NilObjectID, false
	}
	return id, true
}

// bindFailed answers a request whose body or query could not be bound.
func bindFailed(c *gin.Context, err error) {
	response.BadRequest(c, validator.Messages(err)...)
}

// isMultipart reports whether the request carries a multipart form.
func isMultipart(c *gin.Context) bool {
	return c.ContentType() == binding.MIMEMultipartPOSTForm
}

// formFile reads an optional file field. A missing field yields nil.
func formFile(c *gin.Context, field string) (*models.Upload, error) {
	if !isMultipart(c) {
		return nil, nil
	}
	fh, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.Validation(fmt.Sprintf("%s could not be read", field))
	}
	return readUpload(fh)
}

// formFiles reads every file sent under any of the given field names.
func formFiles(c *gin.Context, fields ...string) ([]*models.Upload, error) {
	if !isMultipart(c) {
		return nil, nil
	}
	form, err := c.MultipartForm()
	if err != nil {
		return nil, apperrors.Validation("multipart form could not be read")
	}

	var uploads []*models.Upload
	for _, field := range fields {
		for _, fh := range form.File[field] {
			u, err := readUpload(fh)
			if err != nil {
				return nil, err
			}
			uploads = append(uploads, u)
		}
	}
	return uploads, nil
}

func readUpload(fh *multipart.FileHeader) (*models.Upload, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, apperrors.Validation(fmt.Sprintf("%s could not be read", fh.Filename))
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, apperrors.Validation(fmt.Sprintf("%s could not be read", fh.Filename))
	}
	return &models.Upload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}
