// Package fixtures provides test data builders for unit and integration tests.
package fixtures

import (
	"fmt"
	"time"

	"compliance-cms/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ===== User Fixtures =====

// UserBuilder provides fluent API for building test users.
type UserBuilder struct {
	user models.User
}

// NewUser creates a new UserBuilder with sensible defaults.
func NewUser() *UserBuilder {
	return &UserBuilder{
		user: models.User{
			ID:        primitive.NewObjectID(),
			Email:     fmt.Sprintf("admin-%s@example.com", primitive.NewObjectID().Hex()[:8]),
			Password:  "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy", // "password123" hashed
			Type:      models.UserTypeAdmin,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
	}
}

func (b *UserBuilder) WithID(id primitive.ObjectID) *UserBuilder {
	b.user.ID = id
	return b
}

func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.user.Email = email
	return b
}

// WithPassword sets an already hashed password.
func (b *UserBuilder) WithPassword(hash string) *UserBuilder {
	b.user.Password = hash
	return b
}

func (b *UserBuilder) SuperAdmin() *UserBuilder {
	b.user.Type = models.UserTypeSuperAdmin
	return b
}

func (b *UserBuilder) Build() models.User {
	return b.user
}

func (b *UserBuilder) BuildPtr() *models.User {
	u := b.user
	return &u
}

// ===== Page Fixtures =====

// PageBuilder provides fluent API for building test pages.
type PageBuilder struct {
	page models.Page
}

// NewPage creates an active, navigable page with a unique slug.
func NewPage() *PageBuilder {
	suffix := primitive.NewObjectID().Hex()[16:]
	return &PageBuilder{
		page: models.Page{
			ID:           primitive.NewObjectID(),
			Title:        "Factory License " + suffix,
			Slug:         "factory-license-" + suffix,
			Category:     "Licenses",
			Subcategory:  models.DefaultSubcategory,
			HTMLContent:  "<p>Body</p>",
			ShowInNavbar: true,
			IsActive:     true,
			CreatedAt:    time.Now(),
			UpdatedAt:    time.Now(),
		},
	}
}

func (b *PageBuilder) WithTitle(title string) *PageBuilder {
	b.page.Title = title
	return b
}

func (b *PageBuilder) WithSlug(slug string) *PageBuilder {
	b.page.Slug = slug
	return b
}

// WithPlacement sets the navigation path of the page.
func (b *PageBuilder) WithPlacement(category, subcategory, subsubcategory string) *PageBuilder {
	b.page.Category = category
	b.page.Subcategory = subcategory
	b.page.Subsubcategory = subsubcategory
	return b
}

func (b *PageBuilder) Hidden() *PageBuilder {
	b.page.ShowInNavbar = false
	return b
}

func (b *PageBuilder) Inactive() *PageBuilder {
	b.page.IsActive = false
	return b
}

func (b *PageBuilder) Build() models.Page {
	return b.page
}

func (b *PageBuilder) BuildPtr() *models.Page {
	p := b.page
	return &p
}

// ===== Blog Fixtures =====

// BlogBuilder provides fluent API for building test blogs.
type BlogBuilder struct {
	blog models.Blog
}

// NewBlog creates an unpublished blog without an image.
func NewBlog() *BlogBuilder {
	return &BlogBuilder{
		blog: models.Blog{
			ID:               primitive.NewObjectID(),
			Title:            "New EPR rules",
			Content:          "<p>What changes for producers.</p>",
			ShortDescription: "What changes",
			CreatedAt:        time.Now(),
			UpdatedAt:        time.Now(),
		},
	}
}

func (b *BlogBuilder) WithTitle(title string) *BlogBuilder {
	b.blog.Title = title
	return b
}

func (b *BlogBuilder) Published() *BlogBuilder {
	b.blog.IsPublished = true
	return b
}

func (b *BlogBuilder) WithImage(url, publicID string) *BlogBuilder {
	b.blog.Asset = models.Asset{URL: url, PublicID: publicID}
	return b
}

func (b *BlogBuilder) Build() models.Blog {
	return b.blog
}

func (b *BlogBuilder) BuildPtr() *models.Blog {
	bl := b.blog
	return &bl
}

// ===== Project Fixtures =====

// ProjectBuilder provides fluent API for building test projects.
type ProjectBuilder struct {
	project models.Project
}

// NewProject creates a project with one card and one faq, without images.
func NewProject() *ProjectBuilder {
	return &ProjectBuilder{
		project: models.Project{
			ID:    primitive.NewObjectID(),
			Slug:  "bis-registration",
			Title: "BIS Registration",
			Hero:  models.ProjectHero{Title: "BIS Registration", Description: "Certification made simple"},
			About: models.ProjectAbout{Title: "About BIS", Description: "<p>About</p>"},
			Cards: []models.ProjectCard{
				{Title: "Apply", Description: "Apply on the portal"},
			},
			WhoNeeds:  models.ProjectWhoNeeds{Title: "Who needs it", Points: []string{"Manufacturers"}},
			Documents: models.ProjectDocuments{Title: "Documents", Items: []string{"PAN"}},
			FAQs: []models.ProjectFAQ{
				{Question: "How long?", Answer: "Four weeks."},
			},
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
	}
}

func (b *ProjectBuilder) WithSlug(slug string) *ProjectBuilder {
	b.project.Slug = slug
	return b
}

func (b *ProjectBuilder) WithTitle(title string) *ProjectBuilder {
	b.project.Title = title
	return b
}

func (b *ProjectBuilder) Build() models.Project {
	return b.project
}

func (b *ProjectBuilder) BuildPtr() *models.Project {
	p := b.project
	return &p
}

// ===== Contact Fixtures =====

// ContactBuilder provides fluent API for building test contacts.
type ContactBuilder struct {
	contact models.Contact
}

// NewContact creates a contact submission.
func NewContact() *ContactBuilder {
	return &ContactBuilder{
		contact: models.Contact{
			ID:        primitive.NewObjectID(),
			Name:      "Asha Rao",
			Email:     "asha@example.com",
			Mobile:    "+91 98765 43210",
			Message:   "Need help with BIS registration",
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
	}
}

func (b *ContactBuilder) WithName(name string) *ContactBuilder {
	b.contact.Name = name
	return b
}

func (b *ContactBuilder) WithEmail(email string) *ContactBuilder {
	b.contact.Email = email
	return b
}

func (b *ContactBuilder) Build() models.Contact {
	return b.contact
}

func (b *ContactBuilder) BuildPtr() *models.Contact {
	c := b.contact
	return &c
}
