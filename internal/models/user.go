// Package models defines data structures for the application.
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User types.
const (
	UserTypeAdmin      = "admin"
	UserTypeSuperAdmin = "superadmin"
)

// User is a back-office account.
type User struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	Email     string             `json:"email" bson:"email" example:"admin@example.com"`
	Password  string             `json:"-" bson:"password"` // bcrypt hash, never serialized
	Type      string             `json:"type" bson:"type" example:"admin"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt" example:"2024-01-15T09:30:00Z"`
}

// CreateUserRequest is the payload for creating a user.
type CreateUserRequest struct {
	Email    string `json:"email" binding:"required,trimmedemail" example:"admin@example.com"`
	Password string `json:"password" binding:"required,min=6,max=72" example:"secret123"`
	Type     string `json:"type" binding:"omitempty,oneof=admin superadmin" example:"admin"`
}

// UpdateUserRequest is the payload for updating a user. Nil fields are left unchanged.
type UpdateUserRequest struct {
	Email    *string `json:"email" binding:"omitempty,trimmedemail" example:"new@example.com"`
	Password *string `json:"password" binding:"omitempty,min=6,max=72" example:"newsecret"`
	Type     *string `json:"type" binding:"omitempty,oneof=admin superadmin" example:"superadmin"`
}

// LoginRequest is the payload for user login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,trimmedemail" example:"admin@example.com"`
	Password string `json:"password" binding:"required" example:"secret123"`
}

// LoginResponse is the response after successful login.
type LoginResponse struct {
	AccessToken string `json:"access_token" example:"eyJhbGciOiJIUzI1NiIs..."`
}

// Profile is the identity carried by an access token.
type Profile struct {
	UserID string `json:"userId" example:"507f1f77bcf86cd799439011"`
	Email  string `json:"email" example:"admin@example.com"`
}
