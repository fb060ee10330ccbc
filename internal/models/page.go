package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Navigation fallbacks for pages missing a grouping level.
const (
	DefaultCategory       = "Uncategorized"
	DefaultSubcategory    = "General"
	DefaultSubsubcategory = "Default"
)

// PageCategories is the allow-list for Page.Category.
var PageCategories = []string{
	"EPR",
	"BIS",
	"CDSCO",
	"LMPC",
	"WPC",
	"BEE",
	"Pollution Control",
	"Licenses",
	"Certifications",
	"Others",
}

// IsPageCategory reports whether c is an allowed page category.
func IsPageCategory(c string) bool {
	for _, allowed := range PageCategories {
		if c == allowed {
			return true
		}
	}
	return false
}

// Page is a CMS page addressed by its slug and placed in the site navigation.
type Page struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	Title          string             `json:"title" bson:"title" example:"Factory License"`
	Slug           string             `json:"slug" bson:"slug" example:"factory-license"`
	Category       string             `json:"category" bson:"category" example:"Licenses"`
	Subcategory    string             `json:"subcategory" bson:"subcategory" example:"General"`
	Subsubcategory string             `json:"subsubcategory" bson:"subsubcategory" example:""`
	Description    string             `json:"description" bson:"description" example:"<p>Overview</p>"`
	HTMLContent    string             `json:"htmlContent" bson:"htmlContent" example:"<p>Body</p>"`
	ShowInNavbar   bool               `json:"showInNavbar" bson:"showInNavbar" example:"true"`
	IsActive       bool               `json:"isActive" bson:"isActive" example:"true"`
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
	UpdatedAt      time.Time          `json:"updatedAt" bson:"updatedAt" example:"2024-01-15T09:30:00Z"`
}

// PageRequest is the payload for creating a page and for replacing one with PUT.
// Omitted optional fields take their defaults.
type PageRequest struct {
	Title          string `json:"title" binding:"required,max=200" example:"Factory License"`
	Slug           string `json:"slug" binding:"required,max=120,slug" example:"factory-license"`
	Category       string `json:"category" binding:"required,pagecategory" example:"Licenses"`
	Subcategory    string `json:"subcategory" binding:"max=100" example:"General"`
	Subsubcategory string `json:"subsubcategory" binding:"max=100" example:""`
	Description    string `json:"description" example:"<p>Overview</p>"`
	HTMLContent    string `json:"htmlContent" binding:"required" example:"<p>Body</p>"`
	ShowInNavbar   *bool  `json:"showInNavbar" example:"true"`
	IsActive       *bool  `json:"isActive" example:"true"`
}

// NavLeaf is a single link in the navigation tree.
type NavLeaf struct {
	Title string `json:"title" example:"Factory License"`
	Slug  string `json:"slug" example:"factory-license"`
}

// NavTree groups navigation links as category -> subcategory -> subsubcategory -> links.
type NavTree map[string]NavCategory

// NavCategory maps subcategory names to their groups.
type NavCategory map[string]NavSubcategory

// NavSubcategory maps subsubcategory names to ordered links.
type NavSubcategory map[string][]NavLeaf
