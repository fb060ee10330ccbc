// Package response provides standard API response helpers.
//
// Every response body uses the same envelope. Success:
//
//	{"value": <payload>, "error": false}
//
// Failure:
//
//	{"value": {}, "error": true, "messages": ["..."]}
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// InternalErrorMessage is the only message clients see for unexpected failures.
const InternalErrorMessage = "Internal server error"

// Response is the standard API response format.
type Response struct {
	Value    interface{} `json:"value"`
	Error    bool        `json:"error"`
	Messages []string    `json:"messages,omitempty"`
}

// emptyValue serializes as {} in error responses.
type emptyValue struct{}

// Success sends a successful response with data.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Value: data,
	})
}

// Created sends a 201 response with data.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Value: data,
	})
}

// Error sends an error response with the given status code.
func Error(c *gin.Context, status int, messages ...string) {
	if len(messages) == 0 {
		messages = []string{http.StatusText(status)}
	}
	c.JSON(status, Response{
		Value:    emptyValue{},
		Error:    true,
		Messages: messages,
	})
}

// BadRequest sends a 400 error response.
func BadRequest(c *gin.Context, messages ...string) {
	Error(c, http.StatusBadRequest, messages...)
}

// Unauthorized sends a 401 error response.
func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
}

// NotFound sends a 404 error response.
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// InternalError sends a 500 error response.
func InternalError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, InternalErrorMessage)
}
