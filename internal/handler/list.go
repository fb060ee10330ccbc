package handler

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
)

// bindListBody binds an optional JSON filter body. An empty body keeps the
// defaults.
func bindListBody(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		bindFailed(c, err)
		return false
	}
	return true
}
