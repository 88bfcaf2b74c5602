package repository

import "org-demo-backend/internal/database/models"

// OrganizationRow is one row of the organization listing join. User and linode
// columns are nil when the outer join found nothing.
type OrganizationRow struct {
	OrgID      int64   `gorm:"column:org_id"`
	OrgName    string  `gorm:"column:org_name"`
	UserID     *int64  `gorm:"column:user_id"`
	UserEmail  *string `gorm:"column:user_email"`
	LinodeID   *int64  `gorm:"column:linode_id"`
	LinodeName *string `gorm:"column:linode_name"`
}

// UserRow is one row of the single-user join
type UserRow struct {
	UserID      int64   `gorm:"column:user_id"`
	UserEmail   string  `gorm:"column:user_email"`
	OrgID       *int64  `gorm:"column:org_id"`
	OrgName     *string `gorm:"column:org_name"`
	LinodeID    *int64  `gorm:"column:linode_id"`
	LinodeName  *string `gorm:"column:linode_name"`
	LinodeOrgID *int64  `gorm:"column:linode_org_id"`
}

const listOrganizationsQuery = `
SELECT organizations.id AS org_id, organizations.name AS org_name,
       users.id AS user_id, users.email AS user_email,
       linodes.id AS linode_id, linodes.name AS linode_name
FROM organizations
LEFT OUTER JOIN memberships ON memberships.org_id = organizations.id
LEFT OUTER JOIN users ON users.id = memberships.user_id
LEFT OUTER JOIN linodes ON linodes.org_id = organizations.id
ORDER BY organizations.id, users.id, linodes.id`

const getUserQuery = `
SELECT users.id AS user_id, users.email AS user_email,
       organizations.id AS org_id, organizations.name AS org_name,
       linodes.id AS linode_id, linodes.name AS linode_name, linodes.org_id AS linode_org_id
FROM users
LEFT OUTER JOIN memberships ON memberships.user_id = users.id
LEFT OUTER JOIN organizations ON organizations.id = memberships.org_id
LEFT OUTER JOIN linodes ON linodes.org_id = memberships.org_id
WHERE users.id = ?
ORDER BY users.id, organizations.id, linodes.id`

// FoldOrganizations groups rows ordered by organization id into one view per organization.
// A new view starts whenever the organization id differs from the previous row, so rows
// that are not grouped by organization produce one view per run.
func FoldOrganizations(rows []OrganizationRow) []models.OrganizationView {
	views := make([]models.OrganizationView, 0)

	var seenUsers, seenLinodes map[int64]struct{}
	for _, row := range rows {
		if len(views) == 0 || views[len(views)-1].ID != row.OrgID {
			views = append(views, models.OrganizationView{
				ID:      row.OrgID,
				Name:    row.OrgName,
				Users:   make([]models.UserSummary, 0),
				Linodes: make([]models.LinodeSummary, 0),
			})
			seenUsers = make(map[int64]struct{})
			seenLinodes = make(map[int64]struct{})
		}
		current := &views[len(views)-1]

		if row.UserID != nil && row.UserEmail != nil {
			if _, ok := seenUsers[*row.UserID]; !ok {
				seenUsers[*row.UserID] = struct{}{}
				current.Users = append(current.Users, models.UserSummary{ID: *row.UserID, Email: *row.UserEmail})
			}
		}
		if row.LinodeID != nil && row.LinodeName != nil {
			if _, ok := seenLinodes[*row.LinodeID]; !ok {
				seenLinodes[*row.LinodeID] = struct{}{}
				current.Linodes = append(current.Linodes, models.LinodeSummary{ID: *row.LinodeID, Name: *row.LinodeName})
			}
		}
	}
	return views
}

// FoldUser builds the view of a single user from its join rows, or nil when there are none.
// Organizations and linodes are each listed once even if the user holds repeated memberships.
func FoldUser(rows []UserRow) *models.UserView {
	var view *models.UserView
	seenOrgs := make(map[int64]struct{})
	seenLinodes := make(map[int64]struct{})

	for _, row := range rows {
		if view == nil {
			view = &models.UserView{
				ID:      row.UserID,
				Email:   row.UserEmail,
				Orgs:    make([]models.OrganizationSummary, 0),
				Linodes: make([]models.UserLinode, 0),
			}
		}

		if row.OrgID != nil && row.OrgName != nil {
			if _, ok := seenOrgs[*row.OrgID]; !ok {
				seenOrgs[*row.OrgID] = struct{}{}
				view.Orgs = append(view.Orgs, models.OrganizationSummary{ID: *row.OrgID, Name: *row.OrgName})
			}
		}
		if row.LinodeID != nil && row.LinodeName != nil && row.LinodeOrgID != nil {
			if _, ok := seenLinodes[*row.LinodeID]; !ok {
				seenLinodes[*row.LinodeID] = struct{}{}
				view.Linodes = append(view.Linodes, models.UserLinode{
					ID:    *row.LinodeID,
					Name:  *row.LinodeName,
					OrgID: *row.LinodeOrgID,
				})
			}
		}
	}
	return view
}
