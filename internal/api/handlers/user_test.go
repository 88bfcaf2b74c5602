package handlers

import (
	"net/http"
	"testing"

	"org-demo-backend/internal/database/models"
	apperrors "org-demo-backend/internal/errors"
	"org-demo-backend/internal/mocks"
	"org-demo-backend/internal/service"
	"org-demo-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type UserHandlerTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockUserService *mocks.MockUserServiceInterface
	handler         *UserHandler
	httpSuite       *testutils.HTTPTestSuite
}

func (suite *UserHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUserService = mocks.NewMockUserServiceInterface(suite.ctrl)
	suite.handler = NewUserHandler(suite.mockUserService)
	suite.httpSuite = testutils.SetupHTTPTest()

	api := suite.httpSuite.Router.Group("/api")
	{
		api.GET("/user/:id", Dispatch(suite.handler.GetUser))
		api.GET("/exists/user/:email", Dispatch(suite.handler.UserExists))
		api.POST("/create/user", Dispatch(suite.handler.CreateUser))
	}
	suite.httpSuite.Router.NoRoute(Dispatch(NotFound))
}

func (suite *UserHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *UserHandlerTestSuite) TestGetUser() {
	view := &models.UserView{
		ID:      1,
		Email:   "james@kominick.com",
		Orgs:    []models.OrganizationSummary{{ID: 1, Name: "James Inc"}},
		Linodes: []models.UserLinode{{ID: 1, Name: "charlie", OrgID: 1}},
	}
	suite.mockUserService.EXPECT().Get(gomock.Any(), int64(1)).Return(view, nil).Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/user/1", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	assert.JSONEq(suite.T(),
		`{"user":{"id":1,"email":"james@kominick.com","orgs":[{"id":1,"name":"James Inc"}],"linodes":[{"id":1,"name":"charlie","org":1}]}}`,
		recorder.Body.String())
}

func (suite *UserHandlerTestSuite) TestGetUserNotFound() {
	suite.mockUserService.EXPECT().Get(gomock.Any(), int64(999999)).Return(nil, apperrors.ErrUserNotFound).Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/user/999999", nil)

	testutils.AssertTextResponse(suite.T(), recorder, http.StatusNotFound, "user not found")
}

func (suite *UserHandlerTestSuite) TestGetUserNonNumericID() {
	for _, path := range []string{"/api/user/abc", "/api/user/-1", "/api/user/1.5"} {
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, path, nil)
		testutils.AssertTextResponse(suite.T(), recorder, http.StatusNotFound, "nothing here")
	}
}

func (suite *UserHandlerTestSuite) TestGetUserIDOutOfRange() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/user/18446744073709551615", nil)

	testutils.AssertTextResponse(suite.T(), recorder, http.StatusNotFound, "user not found")
}

func (suite *UserHandlerTestSuite) TestCreateUser() {
	suite.mockUserService.EXPECT().
		Create(gomock.Any(), &service.CreateUserRequest{Email: "new@example.com", OrgIDs: []int64{1, 2}}).
		Return(&service.CreateUserResponse{UserID: 4}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/create/user", map[string]interface{}{
		"email":   "new@example.com",
		"org_ids": []int64{1, 2},
	})

	var response map[string]int64
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), int64(4), response["user_id"])
}

func (suite *UserHandlerTestSuite) TestCreateUserWithoutOrgIDs() {
	suite.mockUserService.EXPECT().
		Create(gomock.Any(), &service.CreateUserRequest{Email: "solo@example.com"}).
		Return(&service.CreateUserResponse{UserID: 5}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/create/user", map[string]interface{}{
		"email": "solo@example.com",
	})

	var response map[string]int64
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), int64(5), response["user_id"])
}

func (suite *UserHandlerTestSuite) TestCreateUserUnknownOrganization() {
	suite.mockUserService.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrUnknownOrganizationID).Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/create/user", map[string]interface{}{
		"email":   "new@example.com",
		"org_ids": []int64{1, 9999},
	})

	testutils.AssertTextResponse(suite.T(), recorder, http.StatusBadRequest, "validation error: org_id - organization does not exist")
}

func (suite *UserHandlerTestSuite) TestCreateUserWrongType() {
	recorder := suite.httpSuite.MakeRawRequest(http.MethodPost, "/api/create/user", `{"email": "a@b.c", "org_ids": "one"}`)

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}

func (suite *UserHandlerTestSuite) TestUserExists() {
	suite.mockUserService.EXPECT().Exists(gomock.Any(), "bean@burrito.org").Return(true, nil).Times(2)

	first := suite.httpSuite.MakeRequest(http.MethodGet, "/api/exists/user/bean@burrito.org", nil)
	second := suite.httpSuite.MakeRequest(http.MethodGet, "/api/exists/user/bean@burrito.org", nil)

	assert.Equal(suite.T(), first.Body.String(), second.Body.String())
	assert.JSONEq(suite.T(), `{"exists":true}`, first.Body.String())
}

func TestUserHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}
