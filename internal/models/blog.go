package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Blog is a blog post with an optional cover image on the image host.
type Blog struct {
	ID               primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	Title            string             `json:"title" bson:"title" example:"New EPR rules for 2025"`
	Content          string             `json:"content" bson:"content" example:"<p>...</p>"`
	ShortDescription string             `json:"shortDescription" bson:"shortDescription" example:"What changes for producers"`
	Asset            `bson:",inline"`
	IsPublished      bool               `json:"isPublished" bson:"isPublished" example:"true"`
	CreatedAt        time.Time          `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
	UpdatedAt        time.Time          `json:"updatedAt" bson:"updatedAt" example:"2024-01-15T09:30:00Z"`
}

// CreateBlogRequest is the form payload for creating a blog.
type CreateBlogRequest struct {
	Title            string `form:"title" json:"title" binding:"required,max=200" example:"New EPR rules for 2025"`
	Content          string `form:"content" json:"content" binding:"required" example:"<p>...</p>"`
	ShortDescription string `form:"shortDescription" json:"shortDescription" binding:"max=500" example:"What changes for producers"`
	IsPublished      bool   `form:"isPublished" json:"isPublished" example:"false"`
}

// UpdateBlogRequest is the form payload for patching a blog. Nil fields are left unchanged.
type UpdateBlogRequest struct {
	Title            *string `form:"title" json:"title" binding:"omitempty,min=1,max=200"`
	Content          *string `form:"content" json:"content" binding:"omitempty,min=1"`
	ShortDescription *string `form:"shortDescription" json:"shortDescription" binding:"omitempty,max=500"`
	IsPublished      *bool   `form:"isPublished" json:"isPublished"`
}

// BlogListRequest filters the blog list.
type BlogListRequest struct {
	ListFilter
	IsPublished *bool `json:"isPublished" form:"isPublished" example:"true"`
}
