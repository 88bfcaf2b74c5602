package repository

import (
	"context"

	"org-demo-backend/internal/database/models"

	"gorm.io/gorm"
)

// LinodeRepository handles database operations for linodes
type LinodeRepository struct {
	db *gorm.DB
}

// NewLinodeRepository creates a new linode repository
func NewLinodeRepository(db *gorm.DB) *LinodeRepository {
	return &LinodeRepository{db: db}
}

// Insert creates the linode and stores the generated id on it
func (r *LinodeRepository) Insert(ctx context.Context, linode *models.Linode) (int64, error) {
	id, err := insertRow(ctx, r.db, models.Linode{}.TableName(), []string{"org_id", "name"}, linode.OrgID, linode.Name)
	if err != nil {
		return 0, err
	}
	linode.ID = id
	return id, nil
}

func (r *LinodeRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	return existsRow(ctx, r.db, models.Linode{}.TableName(), "name", name)
}
