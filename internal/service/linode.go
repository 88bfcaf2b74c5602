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

// LinodeService handles business logic for linodes
type LinodeService struct {
	repo      repository.LinodeRepositoryInterface
	validator *validator.Validate
}

// NewLinodeService creates a new linode service
func NewLinodeService(repo repository.LinodeRepositoryInterface, validator *validator.Validate) *LinodeService {
	return &LinodeService{
		repo:      repo,
		validator: validator,
	}
}

// CreateLinodeRequest represents the request to create a linode
type CreateLinodeRequest struct {
	OrgID int64  `json:"org_id" validate:"required,gt=0"`
	Name  string `json:"name" validate:"required,max=255"`
}

// CreateLinodeResponse carries the id of the new linode
type CreateLinodeResponse struct {
	LinodeID int64 `json:"linode_id"`
}

func (s *LinodeService) Exists(ctx context.Context, name string) (bool, error) {
	exists, err := s.repo.ExistsByName(ctx, name)
	if err != nil {
		return false, fmt.Errorf("failed to check linode %q: %w", name, err)
	}
	return exists, nil
}

// Create creates a linode owned by an existing organization
func (s *LinodeService) Create(ctx context.Context, req *CreateLinodeRequest) (*CreateLinodeResponse, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsByName(ctx, req.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing linode by name: %w", err)
	}
	if exists {
		return nil, apperrors.ErrLinodeExists
	}

	id, err := s.repo.Insert(ctx, &models.Linode{OrgID: req.OrgID, Name: req.Name})
	switch {
	case errors.Is(err, repository.ErrDuplicateKey):
		return nil, apperrors.ErrLinodeExists
	case errors.Is(err, repository.ErrMissingReference):
		return nil, apperrors.ErrUnknownOrganizationID
	case err != nil:
		return nil, fmt.Errorf("failed to create linode: %w", err)
	}

	return &CreateLinodeResponse{LinodeID: id}, nil
}
