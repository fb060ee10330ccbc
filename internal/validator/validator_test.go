package validator

import (
	"errors"
	"strings"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	RegisterCustomValidators()
}

func TestSlugRegex(t *testing.T) {
	tests := []struct {
		name  string
		slug  string
		valid bool
	}{
		// Valid slugs
		{"simple lowercase", "hello", true},
		{"with single hyphen", "hello-world", true},
		{"with multiple hyphens", "factory-license-renewal", true},
		{"with numbers", "bis123", true},
		{"numbers and hyphens", "epr-2024-plastic", true},
		{"single character", "a", true},
		{"starts with number", "123abc", true},

		// Invalid slugs
		{"uppercase letter", "Hello", false},
		{"leading hyphen", "-hello", false},
		{"trailing hyphen", "hello-", false},
		{"consecutive hyphens", "hello--world", false},
		{"space", "hello world", false},
		{"empty string", "", false},
		{"underscore", "hello_world", false},
		{"slash", "epr/plastic", false},
		{"only hyphen", "-", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidSlug(tt.slug), "slug: %q", tt.slug)
		})
	}
}

type pageInput struct {
	Title    string `json:"title" binding:"required,max=10"`
	Slug     string `json:"slug" binding:"required,slug"`
	Category string `json:"category" binding:"required,pagecategory"`
	Email    string `json:"email" binding:"omitempty,email"`
	Type     string `json:"type" binding:"omitempty,oneof=admin superadmin"`
	Contact  string `json:"contact" binding:"omitempty,trimmedemail"`
}

func TestMessages(t *testing.T) {
	tests := []struct {
		name     string
		input    pageInput
		expected []string
	}{
		{
			name:     "valid",
			input:    pageInput{Title: "EPR", Slug: "epr", Category: "EPR"},
			expected: nil,
		},
		{
			name:     "missing required fields",
			input:    pageInput{},
			expected: []string{"title is required", "slug is required", "category is required"},
		},
		{
			name:  "bad slug and category",
			input: pageInput{Title: "EPR", Slug: "Bad Slug", Category: "Food"},
			expected: []string{
				"slug must contain only lowercase letters, numbers and single hyphens",
				"category must be one of: " + strings.Join([]string{"EPR", "BIS", "CDSCO", "LMPC", "WPC", "BEE", "Pollution Control", "Licenses", "Certifications", "Others"}, ", "),
			},
		},
		{
			name:     "too long",
			input:    pageInput{Title: "a very long title", Slug: "epr", Category: "BIS"},
			expected: []string{"title must be at most 10 characters"},
		},
		{
			name:     "email and oneof",
			input:    pageInput{Title: "EPR", Slug: "epr", Category: "BIS", Email: "nope", Type: "root"},
			expected: []string{"email must be a valid email address", "type must be one of: admin, superadmin"},
		},
		{
			name:     "padded email is accepted",
			input:    pageInput{Title: "EPR", Slug: "epr", Category: "BIS", Contact: "  Asha@Example.com "},
			expected: nil,
		},
		{
			name:     "padded invalid email",
			input:    pageInput{Title: "EPR", Slug: "epr", Category: "BIS", Contact: "  asha@ "},
			expected: []string{"contact must be a valid email address"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := binding.Validator.ValidateStruct(tt.input)
			if tt.expected == nil {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.expected, Messages(err))
		})
	}
}

func TestMessagesNonValidationError(t *testing.T) {
	assert.Equal(t, []string{"invalid request body"}, Messages(errors.New("unexpected EOF")))
}
