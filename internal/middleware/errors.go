package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "compliance-cms/internal/errors"
	"compliance-cms/pkg/response"
)

// ErrorHandler renders the last error pushed by a handler with c.Error.
// Nothing is written when the handler already produced a response.
func ErrorHandler(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		status, messages := classify(err)
		if status == http.StatusInternalServerError {
			log.Error("request failed",
				zap.String("method", c.Request.Method),
				zap.String("path", c.FullPath()),
				zap.Error(err),
			)
		}
		response.Error(c, status, messages...)
	}
}

// classify maps an error to its HTTP status and client-facing messages.
func classify(err error) (int, []string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest, []string{err.Error()}
	case errors.Is(err, apperrors.ErrUnauthorized):
		return http.StatusUnauthorized, []string{err.Error()}
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound, []string{err.Error()}
	case errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict, []string{err.Error()}
	case errors.Is(err, apperrors.ErrUpload):
		return http.StatusInternalServerError, []string{apperrors.ErrUpload.Error()}
	default:
		return http.StatusInternalServerError, []string{response.InternalErrorMessage}
	}
}

// Recovery turns a panic into a 500 envelope.
func Recovery(log *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error("panic recovered",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Any("panic", recovered),
			zap.Stack("stack"),
		)
		response.InternalError(c)
		c.Abort()
	})
}

// NotFound answers unknown routes with the 404 envelope.
func NotFound(c *gin.Context) {
	response.NotFound(c, "route not found")
}
