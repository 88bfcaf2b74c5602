//go:build integration
// +build integration

package repository

import (
	"context"
	"errors"
	"testing"

	"org-demo-backend/internal/database/models"
	"org-demo-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// RepositoryTestSuite runs the repositories against a real Postgres
type RepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repos         *Repositories
	factories     *testutils.FactorySet
}

func (suite *RepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repos = NewRepositories(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

func (suite *RepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *RepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *RepositoryTestSuite) insertOrg(ctx context.Context) *models.Organization {
	org := suite.factories.Organization.Create()
	_, err := suite.repos.Organizations.Insert(ctx, org)
	suite.Require().NoError(err)
	return org
}

func (suite *RepositoryTestSuite) TestInsertAssignsIDs() {
	ctx := context.Background()
	org := suite.insertOrg(ctx)
	assert.NotZero(suite.T(), org.ID)

	linode := suite.factories.Linode.Create(org.ID)
	id, err := suite.repos.Linodes.Insert(ctx, linode)
	suite.Require().NoError(err)
	assert.Equal(suite.T(), id, linode.ID)

	exists, err := suite.repos.Linodes.ExistsByName(ctx, linode.Name)
	suite.Require().NoError(err)
	assert.True(suite.T(), exists)
}

func (suite *RepositoryTestSuite) TestDuplicateNameMapsToDuplicateKey() {
	ctx := context.Background()
	org := suite.insertOrg(ctx)

	_, err := suite.repos.Organizations.Insert(ctx, &models.Organization{Name: org.Name})
	require.Error(suite.T(), err)
	assert.True(suite.T(), errors.Is(err, ErrDuplicateKey))
}

func (suite *RepositoryTestSuite) TestUnknownOrganizationMapsToMissingReference() {
	ctx := context.Background()
	_, err := suite.repos.Linodes.Insert(ctx, suite.factories.Linode.Create(4242))
	require.Error(suite.T(), err)
	assert.True(suite.T(), errors.Is(err, ErrMissingReference))

	user := suite.factories.User.Create()
	_, err = suite.repos.Users.Insert(ctx, user)
	suite.Require().NoError(err)
	_, err = suite.repos.Memberships.Insert(ctx, &models.Membership{UserID: user.ID, OrgID: 4242})
	assert.True(suite.T(), errors.Is(err, ErrMissingReference))
}

func (suite *RepositoryTestSuite) TestListWithMembersFoldsJoin() {
	ctx := context.Background()
	first := suite.insertOrg(ctx)
	second := suite.insertOrg(ctx)

	alice := suite.factories.User.Create()
	bob := suite.factories.User.Create()
	for _, u := range []*models.User{alice, bob} {
		_, err := suite.repos.Users.Insert(ctx, u)
		suite.Require().NoError(err)
		_, err = suite.repos.Memberships.Insert(ctx, &models.Membership{UserID: u.ID, OrgID: first.ID})
		suite.Require().NoError(err)
	}
	for i := 0; i < 2; i++ {
		_, err := suite.repos.Linodes.Insert(ctx, suite.factories.Linode.Create(first.ID))
		suite.Require().NoError(err)
	}

	views, err := suite.repos.Organizations.ListWithMembers(ctx)
	suite.Require().NoError(err)
	require.Len(suite.T(), views, 2)

	assert.Equal(suite.T(), first.ID, views[0].ID)
	assert.Len(suite.T(), views[0].Users, 2)
	assert.Len(suite.T(), views[0].Linodes, 2)

	assert.Equal(suite.T(), second.ID, views[1].ID)
	assert.Empty(suite.T(), views[1].Users)
	assert.Empty(suite.T(), views[1].Linodes)
}

func (suite *RepositoryTestSuite) TestGetWithOrganizations() {
	ctx := context.Background()
	org := suite.insertOrg(ctx)
	linode := suite.factories.Linode.Create(org.ID)
	_, err := suite.repos.Linodes.Insert(ctx, linode)
	suite.Require().NoError(err)

	user := suite.factories.User.Create()
	_, err = suite.repos.Users.Insert(ctx, user)
	suite.Require().NoError(err)
	// repeated membership
	for i := 0; i < 2; i++ {
		_, err = suite.repos.Memberships.Insert(ctx, &models.Membership{UserID: user.ID, OrgID: org.ID})
		suite.Require().NoError(err)
	}

	view, err := suite.repos.Users.GetWithOrganizations(ctx, user.ID)
	suite.Require().NoError(err)
	require.NotNil(suite.T(), view)
	assert.Equal(suite.T(), user.Email, view.Email)
	assert.Equal(suite.T(), []models.OrganizationSummary{{ID: org.ID, Name: org.Name}}, view.Orgs)
	assert.Equal(suite.T(), []models.UserLinode{{ID: linode.ID, Name: linode.Name, OrgID: org.ID}}, view.Linodes)

	missing, err := suite.repos.Users.GetWithOrganizations(ctx, user.ID+100)
	suite.Require().NoError(err)
	assert.Nil(suite.T(), missing)
}

func (suite *RepositoryTestSuite) TestTransactionRollsBack() {
	ctx := context.Background()
	transactor := NewTransactor(suite.baseTestSuite.DB)
	user := suite.factories.User.Create()

	err := transactor.WithinTransaction(ctx, func(repos *Repositories) error {
		if _, err := repos.Users.Insert(ctx, user); err != nil {
			return err
		}
		_, err := repos.Memberships.Insert(ctx, &models.Membership{UserID: user.ID, OrgID: 9999})
		return err
	})
	require.Error(suite.T(), err)

	exists, err := suite.repos.Users.ExistsByEmail(ctx, user.Email)
	suite.Require().NoError(err)
	assert.False(suite.T(), exists)
}

func TestRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RepositoryTestSuite))
}
