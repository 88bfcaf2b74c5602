package repository

import (
	"context"

	"org-demo-backend/internal/database/models"

	"gorm.io/gorm"
)

// MembershipRepository handles database operations for memberships
type MembershipRepository struct {
	db *gorm.DB
}

// NewMembershipRepository creates a new membership repository
func NewMembershipRepository(db *gorm.DB) *MembershipRepository {
	return &MembershipRepository{db: db}
}

// Insert links a user to an organization
func (r *MembershipRepository) Insert(ctx context.Context, membership *models.Membership) (int64, error) {
	id, err := insertRow(ctx, r.db, models.Membership{}.TableName(), []string{"user_id", "org_id"}, membership.UserID, membership.OrgID)
	if err != nil {
		return 0, err
	}
	membership.ID = id
	return id, nil
}
