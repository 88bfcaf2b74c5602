package repository

import (
	"testing"

	"org-demo-backend/internal/database/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func orgRow(orgID int64, orgName string, userID *int64, email *string, linodeID *int64, linodeName *string) OrganizationRow {
	return OrganizationRow{
		OrgID:      orgID,
		OrgName:    orgName,
		UserID:     userID,
		UserEmail:  email,
		LinodeID:   linodeID,
		LinodeName: linodeName,
	}
}

func TestFoldOrganizations_GroupsUsersAndLinodes(t *testing.T) {
	rows := []OrganizationRow{
		orgRow(1, "A", ptr[int64](10), ptr("u1"), ptr[int64](100), ptr("d1")),
		orgRow(1, "A", ptr[int64](11), ptr("u2"), ptr[int64](100), ptr("d1")),
		orgRow(2, "B", nil, nil, nil, nil),
	}

	views := FoldOrganizations(rows)

	expected := []models.OrganizationView{
		{
			ID:      1,
			Name:    "A",
			Users:   []models.UserSummary{{ID: 10, Email: "u1"}, {ID: 11, Email: "u2"}},
			Linodes: []models.LinodeSummary{{ID: 100, Name: "d1"}},
		},
		{
			ID:      2,
			Name:    "B",
			Users:   []models.UserSummary{},
			Linodes: []models.LinodeSummary{},
		},
	}
	assert.Equal(t, expected, views)
}

func TestFoldOrganizations_CrossProductIsCollapsed(t *testing.T) {
	// two users and two linodes produce four rows
	rows := []OrganizationRow{
		orgRow(3, "C", ptr[int64](1), ptr("a@x"), ptr[int64](7), ptr("l7")),
		orgRow(3, "C", ptr[int64](1), ptr("a@x"), ptr[int64](8), ptr("l8")),
		orgRow(3, "C", ptr[int64](2), ptr("b@x"), ptr[int64](7), ptr("l7")),
		orgRow(3, "C", ptr[int64](2), ptr("b@x"), ptr[int64](8), ptr("l8")),
	}

	views := FoldOrganizations(rows)

	require.Len(t, views, 1)
	assert.Equal(t, []models.UserSummary{{ID: 1, Email: "a@x"}, {ID: 2, Email: "b@x"}}, views[0].Users)
	assert.Equal(t, []models.LinodeSummary{{ID: 7, Name: "l7"}, {ID: 8, Name: "l8"}}, views[0].Linodes)
}

func TestFoldOrganizations_LinodesWithoutUsers(t *testing.T) {
	rows := []OrganizationRow{
		orgRow(4, "D", nil, nil, ptr[int64](20), ptr("solo")),
	}

	views := FoldOrganizations(rows)

	require.Len(t, views, 1)
	assert.Empty(t, views[0].Users)
	assert.Equal(t, []models.LinodeSummary{{ID: 20, Name: "solo"}}, views[0].Linodes)
}

func TestFoldOrganizations_UnorderedInputSplitsAggregates(t *testing.T) {
	rows := []OrganizationRow{
		orgRow(1, "A", ptr[int64](10), ptr("u1"), nil, nil),
		orgRow(2, "B", nil, nil, nil, nil),
		orgRow(1, "A", ptr[int64](11), ptr("u2"), nil, nil),
	}

	views := FoldOrganizations(rows)

	require.Len(t, views, 3)
	assert.Equal(t, int64(1), views[0].ID)
	assert.Equal(t, int64(2), views[1].ID)
	assert.Equal(t, int64(1), views[2].ID)
	assert.Equal(t, []models.UserSummary{{ID: 11, Email: "u2"}}, views[2].Users)
}

func TestFoldOrganizations_Empty(t *testing.T) {
	views := FoldOrganizations(nil)

	assert.NotNil(t, views)
	assert.Empty(t, views)
}

func TestFoldUser_CollectsOrganizationsAndLinodes(t *testing.T) {
	rows := []UserRow{
		{UserID: 1, UserEmail: "james@kominick.com", OrgID: ptr[int64](1), OrgName: ptr("James Inc"), LinodeID: ptr[int64](1), LinodeName: ptr("charlie"), LinodeOrgID: ptr[int64](1)},
		{UserID: 1, UserEmail: "james@kominick.com", OrgID: ptr[int64](3), OrgName: ptr("Cat Collective"), LinodeID: ptr[int64](3), LinodeName: ptr("frank"), LinodeOrgID: ptr[int64](3)},
		{UserID: 1, UserEmail: "james@kominick.com", OrgID: ptr[int64](3), OrgName: ptr("Cat Collective"), LinodeID: ptr[int64](5), LinodeName: ptr("dee"), LinodeOrgID: ptr[int64](3)},
	}

	view := FoldUser(rows)

	require.NotNil(t, view)
	assert.Equal(t, int64(1), view.ID)
	assert.Equal(t, "james@kominick.com", view.Email)
	assert.Equal(t, []models.OrganizationSummary{{ID: 1, Name: "James Inc"}, {ID: 3, Name: "Cat Collective"}}, view.Orgs)
	assert.Equal(t, []models.UserLinode{
		{ID: 1, Name: "charlie", OrgID: 1},
		{ID: 3, Name: "frank", OrgID: 3},
		{ID: 5, Name: "dee", OrgID: 3},
	}, view.Linodes)
}

func TestFoldUser_RepeatedMembershipListsLinodeOnce(t *testing.T) {
	row := UserRow{UserID: 9, UserEmail: "dup@x", OrgID: ptr[int64](1), OrgName: ptr("A"), LinodeID: ptr[int64](100), LinodeName: ptr("d1"), LinodeOrgID: ptr[int64](1)}

	view := FoldUser([]UserRow{row, row})

	require.NotNil(t, view)
	assert.Len(t, view.Orgs, 1)
	assert.Len(t, view.Linodes, 1)
}

func TestFoldUser_NoMemberships(t *testing.T) {
	view := FoldUser([]UserRow{{UserID: 2, UserEmail: "lonely@x"}})

	require.NotNil(t, view)
	assert.Equal(t, "lonely@x", view.Email)
	assert.NotNil(t, view.Orgs)
	assert.Empty(t, view.Orgs)
	assert.NotNil(t, view.Linodes)
	assert.Empty(t, view.Linodes)
}

func TestFoldUser_NoRows(t *testing.T) {
	assert.Nil(t, FoldUser(nil))
}
