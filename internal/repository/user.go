package repository

import (
	"context"
	"fmt"

	"org-demo-backend/internal/database/models"

	"gorm.io/gorm"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Insert creates the user and stores the generated id on it
func (r *UserRepository) Insert(ctx context.Context, user *models.User) (int64, error) {
	id, err := insertRow(ctx, r.db, models.User{}.TableName(), []string{"email"}, user.Email)
	if err != nil {
		return 0, err
	}
	user.ID = id
	return id, nil
}

// ExistsByEmail reports whether a user with exactly this email exists
func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return existsRow(ctx, r.db, models.User{}.TableName(), "email", email)
}

// GetWithOrganizations loads a user with its organizations and their linodes.
// It returns nil without error when no such user exists.
func (r *UserRepository) GetWithOrganizations(ctx context.Context, id int64) (*models.UserView, error) {
	var rows []UserRow
	if err := r.db.WithContext(ctx).Raw(getUserQuery, id).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}
	return FoldUser(rows), nil
}
