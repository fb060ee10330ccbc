// Package middleware provides HTTP middleware for the API.
package middleware

import (
	"strings"

	"compliance-cms/pkg/auth"
	"compliance-cms/pkg/response"

	"github.com/gin-gonic/gin"
)

// Context keys for storing user data
const (
	UserIDKey = "userID"
	EmailKey  = "email"
)

// unauthorizedMessage is the only message a rejected request gets.
const unauthorizedMessage = "Unauthorized"

// Auth returns a middleware that validates JWT tokens.
func Auth(tokens auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Get Authorization header
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, unauthorizedMessage)
			c.Abort()
			return
		}

		// Check Bearer prefix
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			response.Unauthorized(c, unauthorizedMessage)
			c.Abort()
			return
		}

		// Validate token
		claims, err := tokens.ValidateToken(parts[1])
		if err != nil {
			response.Unauthorized(c, unauthorizedMessage)
			c.Abort()
			return
		}

		// Store identity in context for handlers to use
		c.Set(UserIDKey, claims.UserID())
		c.Set(EmailKey, claims.Email)

		c.Next()
	}
}

// GetUserID retrieves the user ID from the context.
// Returns empty string if not found.
func GetUserID(c *gin.Context) string {
	return c.GetString(UserIDKey)
}

// GetEmail retrieves the authenticated email from the context.
func GetEmail(c *gin.Context) string {
	return c.GetString(EmailKey)
}
