package service

import (
	"slices"
	"strings"

	apperrors "compliance-cms/internal/errors"
	"compliance-cms/internal/models"
)

// Sortable fields per entity.
var (
	blogSortFields    = []string{"createdAt", "updatedAt", "title"}
	projectSortFields = []string{"createdAt", "updatedAt", "title", "slug"}
	contactSortFields = []string{"createdAt", "name", "email"}
)

// prepareListFilter applies defaults and rejects values outside the list contract.
func prepareListFilter(f *models.ListFilter, sortable []string) error {
	f.Search = strings.TrimSpace(f.Search)
	f.Normalize()

	if f.Page < 1 {
		return apperrors.Validation("page must be at least 1")
	}
	if f.Limit < 1 {
		return apperrors.Validation("limit must be at least 1")
	}
	if f.SortOrder != models.SortAsc && f.SortOrder != models.SortDesc {
		return apperrors.ErrInvalidSortOrder
	}
	if !slices.Contains(sortable, f.SortBy) {
		return apperrors.ErrInvalidSortBy
	}
	return nil
}
