package service

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	apperrors "compliance-cms/internal/errors"
	"compliance-cms/internal/models"
	"compliance-cms/internal/repository"
	"compliance-cms/internal/sanitize"
)

// ContactService handles contact-form submissions.
type ContactService struct {
	repo repository.ContactRepository
}

// NewContactService creates a new ContactService.
func NewContactService(repo repository.ContactRepository) *ContactService {
	return &ContactService{repo: repo}
}

// CreateContact stores a submission with a normalized email.
func (s *ContactService) CreateContact(ctx context.Context, req *models.CreateContactRequest) (*models.Contact, error) {
	contact := &models.Contact{
		Name:    sanitize.Text(req.Name),
		Email:   normalizeEmail(req.Email),
		Mobile:  strings.TrimSpace(req.Mobile),
		Message: sanitize.Text(req.Message),
	}
	switch {
	case contact.Name == "":
		return nil, apperrors.Validation("name is required")
	case contact.Mobile == "":
		return nil, apperrors.Validation("mobile is required")
	case contact.Message == "":
		return nil, apperrors.Validation("message is required")
	}

	if err := s.repo.Create(ctx, contact); err != nil {
		return nil, err
	}
	return contact, nil
}

// ListContacts returns one page of submissions.
func (s *ContactService) ListContacts(ctx context.Context, filter models.ListFilter) (*models.ListResult[models.Contact], error) {
	if err := prepareListFilter(&filter, contactSortFields); err != nil {
		return nil, err
	}
	return s.repo.List(ctx, filter)
}

// DeleteContact removes a submission.
func (s *ContactService) DeleteContact(ctx context.Context, id primitive.ObjectID) error {
	return s.repo.Delete(ctx, id)
}
