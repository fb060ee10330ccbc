package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	return c, w
}

func TestSuccess(t *testing.T) {
	c, w := setupTestContext()

	Success(c, map[string]string{"message": "hello"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"value":{"message":"hello"},"error":false}`, w.Body.String())
}

func TestCreated(t *testing.T) {
	c, w := setupTestContext()

	Created(c, map[string]string{"id": "123"})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"value":{"id":"123"},"error":false}`, w.Body.String())
}

func TestSuccessWithNilPayload(t *testing.T) {
	c, w := setupTestContext()

	Success(c, nil)

	assert.JSONEq(t, `{"value":null,"error":false}`, w.Body.String())
}

func TestError(t *testing.T) {
	c, w := setupTestContext()

	Error(c, http.StatusTeapot, "I'm a teapot")

	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.JSONEq(t, `{"value":{},"error":true,"messages":["I'm a teapot"]}`, w.Body.String())
}

func TestErrorDefaultsToStatusText(t *testing.T) {
	c, w := setupTestContext()

	Error(c, http.StatusNotFound)

	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Error)
	assert.Equal(t, []string{"Not Found"}, resp.Messages)
}

func TestErrorHelpers(t *testing.T) {
	tests := []struct {
		name           string
		call           func(c *gin.Context)
		expectedStatus int
		expectedMsgs   []string
	}{
		{"BadRequest", func(c *gin.Context) { BadRequest(c, "title is required", "slug is required") }, http.StatusBadRequest, []string{"title is required", "slug is required"}},
		{"Unauthorized", func(c *gin.Context) { Unauthorized(c, "Invalid credentials") }, http.StatusUnauthorized, []string{"Invalid credentials"}},
		{"NotFound", func(c *gin.Context) { NotFound(c, "page not found") }, http.StatusNotFound, []string{"page not found"}},
		{"InternalError", InternalError, http.StatusInternalServerError, []string{InternalErrorMessage}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := setupTestContext()

			tt.call(c)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var resp map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, true, resp["error"])
			assert.Equal(t, map[string]interface{}{}, resp["value"])

			msgs := resp["messages"].([]interface{})
			require.Len(t, msgs, len(tt.expectedMsgs))
			for i, m := range tt.expectedMsgs {
				assert.Equal(t, m, msgs[i])
			}
		})
	}
}
