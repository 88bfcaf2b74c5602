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

// UserService handles business logic for users
type UserService struct {
	repo       repository.UserRepositoryInterface
	transactor repository.TransactorInterface
	validator  *validator.Validate
}

// NewUserService creates a new user service
func NewUserService(repo repository.UserRepositoryInterface, transactor repository.TransactorInterface, validator *validator.Validate) *UserService {
	return &UserService{
		repo:       repo,
		transactor: transactor,
		validator:  validator,
	}
}

// CreateUserRequest represents the request to create a user and its memberships
type CreateUserRequest struct {
	Email  string  `json:"email" validate:"required,max=255"`
	OrgIDs []int64 `json:"org_ids" validate:"dive,gt=0"`
}

// CreateUserResponse carries the id of the new user
type CreateUserResponse struct {
	UserID int64 `json:"user_id"`
}

// Get returns the user with its organizations and their linodes
func (s *UserService) Get(ctx context.Context, id int64) (*models.UserView, error) {
	view, err := s.repo.GetWithOrganizations(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if view == nil {
		return nil, apperrors.ErrUserNotFound
	}
	return view, nil
}

// Exists reports whether a user with this exact email exists
func (s *UserService) Exists(ctx context.Context, email string) (bool, error) {
	exists, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return false, fmt.Errorf("failed to check user %q: %w", email, err)
	}
	return exists, nil
}

// Create inserts the user and one membership per org id in a single transaction.
// Either all rows are written or none are.
func (s *UserService) Create(ctx context.Context, req *CreateUserRequest) (*CreateUserResponse, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	var userID int64
	err := s.transactor.WithinTransaction(ctx, func(repos *repository.Repositories) error {
		exists, err := repos.Users.ExistsByEmail(ctx, req.Email)
		if err != nil {
			return fmt.Errorf("failed to check existing user by email: %w", err)
		}
		if exists {
			return apperrors.ErrUserExists
		}

		user := &models.User{Email: req.Email}
		if userID, err = repos.Users.Insert(ctx, user); err != nil {
			return err
		}

		for _, orgID := range req.OrgIDs {
			if _, err := repos.Memberships.Insert(ctx, &models.Membership{UserID: userID, OrgID: orgID}); err != nil {
				return err
			}
		}
		return nil
	})

	switch {
	case err == nil:
		return &CreateUserResponse{UserID: userID}, nil
	case apperrors.IsAlreadyExists(err), errors.Is(err, repository.ErrDuplicateKey):
		return nil, apperrors.ErrUserExists
	case errors.Is(err, repository.ErrMissingReference):
		return nil, apperrors.ErrUnknownOrganizationID
	default:
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
}
