package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Asset is a reference to an image stored on the image host. URL and
// PublicID are set together or not at all.
type Asset struct {
	URL      string `json:"imageUrl" bson:"imageUrl" example:"https://cdn.example.com/projects/1f0c.jpg"`
	PublicID string `json:"imagePublicId" bson:"imagePublicId" example:"projects/1f0c.jpg"`
}

// IsZero reports whether the asset points at nothing.
func (a Asset) IsZero() bool {
	return a.PublicID == ""
}

// ProjectHero is the heading block of a project page.
type ProjectHero struct {
	Title       string `json:"title" bson:"title" example:"BIS Registration"`
	Description string `json:"description" bson:"description" example:"Certification made simple"`
}

// ProjectAbout is the "about" section of a project page.
type ProjectAbout struct {
	Title       string `json:"title" bson:"title" example:"About BIS"`
	Description string `json:"description" bson:"description" example:"<p>...</p>"`
	Asset       `bson:",inline"`
}

// ProjectCard is one card on a project page.
type ProjectCard struct {
	Title       string `json:"title" bson:"title" example:"Registration"`
	Description string `json:"description" bson:"description" example:"Apply on the portal"`
	Asset       `bson:",inline"`
}

// ProjectWhoNeeds is the "who needs it" section of a project page.
type ProjectWhoNeeds struct {
	Title       string   `json:"title" bson:"title" example:"Who needs it"`
	Description string   `json:"description" bson:"description" example:"<p>...</p>"`
	Points      []string `json:"points" bson:"points" example:"Manufacturers,Importers"`
	Asset       `bson:",inline"`
}

// ProjectDocuments lists the paperwork a service requires.
type ProjectDocuments struct {
	Title     string   `json:"title" bson:"title" example:"Documents required"`
	Paragraph string   `json:"paragraph" bson:"paragraph" example:"Keep these ready"`
	Items     []string `json:"items" bson:"items" example:"PAN,GST certificate"`
}

// ProjectFAQ is a question and its answer.
type ProjectFAQ struct {
	Question string `json:"question" bson:"question" example:"How long does it take?"`
	Answer   string `json:"answer" bson:"answer" example:"Four to six weeks."`
}

// Project is a case-study page made of nested sections.
type Project struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	Slug      string             `json:"slug" bson:"slug" example:"bis-registration"`
	Title     string             `json:"title" bson:"title" example:"BIS Registration"`
	Hero      ProjectHero        `json:"hero" bson:"hero"`
	About     ProjectAbout       `json:"about" bson:"about"`
	Cards     []ProjectCard      `json:"cards" bson:"cards"`
	WhoNeeds  ProjectWhoNeeds    `json:"whoNeeds" bson:"whoNeeds"`
	Documents ProjectDocuments   `json:"documents" bson:"documents"`
	FAQs      []ProjectFAQ       `json:"faqs" bson:"faqs"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt" example:"2024-01-15T09:30:00Z"`
}

// Assets returns every image reference held by the project.
func (p *Project) Assets() []Asset {
	var assets []Asset
	add := func(a Asset) {
		if !a.IsZero() {
			assets = append(assets, a)
		}
	}
	add(p.About.Asset)
	add(p.WhoNeeds.Asset)
	for _, card := range p.Cards {
		add(card.Asset)
	}
	return assets
}

// ProjectHeroInput is the incoming hero section. Nil fields are left unchanged.
type ProjectHeroInput struct {
	Title       *string `json:"title" binding:"omitempty,max=200"`
	Description *string `json:"description"`
}

// ProjectAboutInput is the incoming about section. Nil fields are left unchanged.
type ProjectAboutInput struct {
	Title       *string `json:"title" binding:"omitempty,max=200"`
	Description *string `json:"description"`
}

// ProjectCardInput is an incoming card. Nil fields keep the value of the
// card at the same position; images only arrive as uploaded files.
type ProjectCardInput struct {
	Title       *string `json:"title" binding:"omitempty,max=200"`
	Description *string `json:"description"`
}

// ProjectWhoNeedsInput is the incoming who-needs section. Nil fields are left unchanged.
type ProjectWhoNeedsInput struct {
	Title       *string   `json:"title" binding:"omitempty,max=200"`
	Description *string   `json:"description"`
	Points      *[]string `json:"points"`
}

// ProjectDocumentsInput is the incoming documents section. Nil fields are left unchanged.
type ProjectDocumentsInput struct {
	Title     *string   `json:"title" binding:"omitempty,max=200"`
	Paragraph *string   `json:"paragraph"`
	Items     *[]string `json:"items"`
}

// ProjectFAQInput is an incoming faq entry. Nil fields keep the value of the
// entry at the same position.
type ProjectFAQInput struct {
	Question *string `json:"question"`
	Answer   *string `json:"answer"`
}

// ProjectRequest is the decoded payload of a project create or update.
// On update every nil field is left unchanged.
type ProjectRequest struct {
	Slug      *string                `json:"slug" binding:"omitempty,max=120,slug" example:"bis-registration"`
	Title     *string                `json:"title" binding:"omitempty,min=1,max=200" example:"BIS Registration"`
	Hero      *ProjectHeroInput      `json:"hero"`
	About     *ProjectAboutInput     `json:"about"`
	Cards     []ProjectCardInput     `json:"cards" binding:"omitempty,dive"`
	WhoNeeds  *ProjectWhoNeedsInput  `json:"whoNeeds"`
	Documents *ProjectDocumentsInput `json:"documents"`
	FAQs      []ProjectFAQInput      `json:"faqs" binding:"omitempty,dive"`
}

// ProjectFiles are the images uploaded alongside a project request.
// CardImages is keyed by card index.
type ProjectFiles struct {
	AboutImage    *Upload
	WhoNeedsImage *Upload
	CardImages    map[int]*Upload
}
