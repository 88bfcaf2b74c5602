package repository

import (
	"context"

	"org-demo-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// OrganizationRepositoryInterface defines the interface for organization repository
type OrganizationRepositoryInterface interface {
	Insert(ctx context.Context, org *models.Organization) (int64, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	ListWithMembers(ctx context.Context) ([]models.OrganizationView, error)
}

// UserRepositoryInterface defines the interface for user repository
type UserRepositoryInterface interface {
	Insert(ctx context.Context, user *models.User) (int64, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	GetWithOrganizations(ctx context.Context, id int64) (*models.UserView, error)
}

// LinodeRepositoryInterface defines the interface for linode repository
type LinodeRepositoryInterface interface {
	Insert(ctx context.Context, linode *models.Linode) (int64, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
}

// MembershipRepositoryInterface defines the interface for membership repository
type MembershipRepositoryInterface interface {
	Insert(ctx context.Context, membership *models.Membership) (int64, error)
}

// TransactorInterface runs fn against repositories bound to a single transaction.
// The transaction commits when fn returns nil and rolls back otherwise.
type TransactorInterface interface {
	WithinTransaction(ctx context.Context, fn func(repos *Repositories) error) error
}
