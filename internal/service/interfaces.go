package service

import (
	"context"

	"org-demo-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// OrganizationServiceInterface defines the interface for organization service
type OrganizationServiceInterface interface {
	List(ctx context.Context) ([]models.OrganizationView, error)
	Exists(ctx context.Context, name string) (bool, error)
	Create(ctx context.Context, req *CreateOrganizationRequest) (*CreateOrganizationResponse, error)
}

// UserServiceInterface defines the interface for user service
type UserServiceInterface interface {
	Get(ctx context.Context, id int64) (*models.UserView, error)
	Exists(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, req *CreateUserRequest) (*CreateUserResponse, error)
}

// LinodeServiceInterface defines the interface for linode service
type LinodeServiceInterface interface {
	Exists(ctx context.Context, name string) (bool, error)
	Create(ctx context.Context, req *CreateLinodeRequest) (*CreateLinodeResponse, error)
}
