package repository

import (
	"context"
	"fmt"

	"org-demo-backend/internal/database/models"

	"gorm.io/gorm"
)

// OrganizationRepository handles database operations for organizations
type OrganizationRepository struct {
	db *gorm.DB
}

// NewOrganizationRepository creates a new organization repository
func NewOrganizationRepository(db *gorm.DB) *OrganizationRepository {
	return &OrganizationRepository{db: db}
}

// Insert creates the organization and stores the generated id on it
func (r *OrganizationRepository) Insert(ctx context.Context, org *models.Organization) (int64, error) {
	id, err := insertRow(ctx, r.db, models.Organization{}.TableName(), []string{"name"}, org.Name)
	if err != nil {
		return 0, err
	}
	org.ID = id
	return id, nil
}

// ExistsByName reports whether an organization with exactly this name exists
func (r *OrganizationRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	return existsRow(ctx, r.db, models.Organization{}.TableName(), "name", name)
}

// ListWithMembers returns every organization with its users and linodes, ordered by id
func (r *OrganizationRepository) ListWithMembers(ctx context.Context) ([]models.OrganizationView, error) {
	var rows []OrganizationRow
	if err := r.db.WithContext(ctx).Raw(listOrganizationsQuery).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("list organizations: %w", err)
	}
	return FoldOrganizations(rows), nil
}
