package service_test

import (
	"context"
	"errors"
	"testing"

	"org-demo-backend/internal/database/models"
	apperrors "org-demo-backend/internal/errors"
	"org-demo-backend/internal/mocks"
	"org-demo-backend/internal/repository"
	"org-demo-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// OrganizationServiceTestSuite defines the test suite for OrganizationService
type OrganizationServiceTestSuite struct {
	suite.Suite
	ctrl                *gomock.Controller
	mockOrgRepo         *mocks.MockOrganizationRepositoryInterface
	organizationService *service.OrganizationService
	ctx                 context.Context
}

// SetupTest sets up the test suite
func (suite *OrganizationServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockOrgRepo = mocks.NewMockOrganizationRepositoryInterface(suite.ctrl)
	suite.organizationService = service.NewOrganizationService(suite.mockOrgRepo, service.NewValidator())
	suite.ctx = context.Background()
}

// TearDownTest cleans up after each test
func (suite *OrganizationServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *OrganizationServiceTestSuite) TestCreateOrganization() {
	req := &service.CreateOrganizationRequest{Name: "James Inc"}

	suite.mockOrgRepo.EXPECT().ExistsByName(suite.ctx, "James Inc").Return(false, nil).Times(1)
	suite.mockOrgRepo.EXPECT().
		Insert(suite.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, org *models.Organization) (int64, error) {
			assert.Equal(suite.T(), "James Inc", org.Name)
			return 1, nil
		}).
		Times(1)

	response, err := suite.organizationService.Create(suite.ctx, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(1), response.OrgID)
}

func (suite *OrganizationServiceTestSuite) TestCreateOrganizationValidationError() {
	response, err := suite.organizationService.Create(suite.ctx, &service.CreateOrganizationRequest{Name: ""})

	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsValidation(err))
	assert.Contains(suite.T(), err.Error(), "name")
}

func (suite *OrganizationServiceTestSuite) TestCreateOrganizationDuplicateName() {
	suite.mockOrgRepo.EXPECT().ExistsByName(suite.ctx, "James Inc").Return(true, nil).Times(1)

	response, err := suite.organizationService.Create(suite.ctx, &service.CreateOrganizationRequest{Name: "James Inc"})

	assert.Nil(suite.T(), response)
	assert.True(suite.T(), errors.Is(err, apperrors.ErrOrganizationExists))
}

// TestCreateOrganizationLostRace covers a concurrent insert slipping past the exists check
func (suite *OrganizationServiceTestSuite) TestCreateOrganizationLostRace() {
	suite.mockOrgRepo.EXPECT().ExistsByName(suite.ctx, "James Inc").Return(false, nil).Times(1)
	suite.mockOrgRepo.EXPECT().Insert(suite.ctx, gomock.Any()).Return(int64(0), repository.ErrDuplicateKey).Times(1)

	_, err := suite.organizationService.Create(suite.ctx, &service.CreateOrganizationRequest{Name: "James Inc"})

	assert.True(suite.T(), errors.Is(err, apperrors.ErrOrganizationExists))
	assert.True(suite.T(), apperrors.IsBadRequest(err))
}

func (suite *OrganizationServiceTestSuite) TestCreateOrganizationStorageFailure() {
	suite.mockOrgRepo.EXPECT().ExistsByName(suite.ctx, "James Inc").Return(false, errors.New("connection refused")).Times(1)

	_, err := suite.organizationService.Create(suite.ctx, &service.CreateOrganizationRequest{Name: "James Inc"})

	assert.Error(suite.T(), err)
	assert.False(suite.T(), apperrors.IsBadRequest(err))
	assert.False(suite.T(), apperrors.IsNotFound(err))
}

func (suite *OrganizationServiceTestSuite) TestList() {
	views := []models.OrganizationView{
		{ID: 1, Name: "A", Users: []models.UserSummary{}, Linodes: []models.LinodeSummary{}},
	}
	suite.mockOrgRepo.EXPECT().ListWithMembers(suite.ctx).Return(views, nil).Times(1)

	result, err := suite.organizationService.List(suite.ctx)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), views, result)
}

func (suite *OrganizationServiceTestSuite) TestExists() {
	suite.mockOrgRepo.EXPECT().ExistsByName(suite.ctx, "Bean Group").Return(true, nil).Times(1)

	exists, err := suite.organizationService.Exists(suite.ctx, "Bean Group")

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), exists)
}

// TestOrganizationServiceTestSuite runs the test suite
func TestOrganizationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OrganizationServiceTestSuite))
}
