package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Contact is a contact-form submission. It is never updated.
type Contact struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	Name      string             `json:"name" bson:"name" example:"Asha Rao"`
	Email     string             `json:"email" bson:"email" example:"asha@example.com"`
	Mobile    string             `json:"mobile" bson:"mobile" example:"+91 98765 43210"`
	Message   string             `json:"message" bson:"message" example:"Need help with BIS registration"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt" example:"2024-01-15T09:30:00Z"`
}

// CreateContactRequest is the public contact-form payload.
type CreateContactRequest struct {
	Name    string `json:"name" binding:"required,max=120" example:"Asha Rao"`
	Email   string `json:"email" binding:"required,trimmedemail" example:"asha@example.com"`
	Mobile  string `json:"mobile" binding:"required,min=6,max=20" example:"+91 98765 43210"`
	Message string `json:"message" binding:"required,max=5000" example:"Need help with BIS registration"`
}
