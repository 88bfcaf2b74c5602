package service

import (
	"context"
	"errors"
	"fmt"

	"org-demo-backend/internal/database/models"
	apperrors "org-demo-backend/internal/errors"
	"org-demo-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// OrganizationService handles business logic for organizations
type OrganizationService struct {
	repo      repository.OrganizationRepositoryInterface
	validator *validator.Validate
}

// NewOrganizationService creates a new organization service
func NewOrganizationService(repo repository.OrganizationRepositoryInterface, validator *validator.Validate) *OrganizationService {
	return &OrganizationService{
		repo:      repo,
		validator: validator,
	}
}

// CreateOrganizationRequest represents the request to create an organization
type CreateOrganizationRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

// CreateOrganizationResponse carries the id of the new organization
type CreateOrganizationResponse struct {
	OrgID int64 `json:"org_id"`
}

// List returns every organization with its users and linodes
func (s *OrganizationService) List(ctx context.Context) ([]models.OrganizationView, error) {
	views, err := s.repo.ListWithMembers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list organizations: %w", err)
	}
	return views, nil
}

// Exists reports whether an organization with this exact name exists
func (s *OrganizationService) Exists(ctx context.Context, name string) (bool, error) {
	exists, err := s.repo.ExistsByName(ctx, name)
	if err != nil {
		return false, fmt.Errorf("failed to check organization %q: %w", name, err)
	}
	return exists, nil
}

// Create creates a new organization
func (s *OrganizationService) Create(ctx context.Context, req *CreateOrganizationRequest) (*CreateOrganizationResponse, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsByName(ctx, req.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing organization by name: %w", err)
	}
	if exists {
		return nil, apperrors.ErrOrganizationExists
	}

	id, err := s.repo.Insert(ctx, &models.Organization{Name: req.Name})
	if errors.Is(err, repository.ErrDuplicateKey) {
		// lost a race with a concurrent create of the same name
		return nil, apperrors.ErrOrganizationExists
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create organization: %w", err)
	}

	return &CreateOrganizationResponse{OrgID: id}, nil
}
