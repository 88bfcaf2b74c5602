package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	apperrors "org-demo-backend/internal/errors"
	"org-demo-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestDispatch(t *testing.T) {
	tests := []struct {
		name       string
		handler    HandlerFunc
		wantStatus int
		wantBody   string
	}{
		{
			name:       "success is JSON",
			handler:    func(c *gin.Context) (interface{}, error) { return gin.H{"exists": true}, nil },
			wantStatus: http.StatusOK,
			wantBody:   `{"exists":true}`,
		},
		{
			name:       "validation error",
			handler:    func(c *gin.Context) (interface{}, error) { return nil, apperrors.ErrInvalidPostData },
			wantStatus: http.StatusBadRequest,
			wantBody:   "validation error: invalid post data",
		},
		{
			name: "wrapped duplicate keeps only its own message",
			handler: func(c *gin.Context) (interface{}, error) {
				return nil, fmt.Errorf("create org: %w", apperrors.ErrOrganizationExists)
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   "organization already exists with this name",
		},
		{
			name:       "not found",
			handler:    func(c *gin.Context) (interface{}, error) { return nil, apperrors.ErrUserNotFound },
			wantStatus: http.StatusNotFound,
			wantBody:   "user not found",
		},
		{
			name: "internal error hides detail",
			handler: func(c *gin.Context) (interface{}, error) {
				return nil, errors.New("pq: password authentication failed for user postgres")
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   "Something went wrong",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpSuite := testutils.SetupHTTPTest()
			httpSuite.Router.GET("/x", Dispatch(tt.handler))

			recorder := httpSuite.MakeRequest(http.MethodGet, "/x", nil)

			assert.Equal(t, tt.wantStatus, recorder.Code)
			if tt.wantStatus == http.StatusOK {
				assert.JSONEq(t, tt.wantBody, recorder.Body.String())
				return
			}
			testutils.AssertTextResponse(t, recorder, tt.wantStatus, tt.wantBody)
		})
	}
}

func TestNotFoundRoute(t *testing.T) {
	httpSuite := testutils.SetupHTTPTest()
	httpSuite.Router.NoRoute(Dispatch(NotFound))

	recorder := httpSuite.MakeRequest(http.MethodGet, "/does/not/exist", nil)

	testutils.AssertTextResponse(t, recorder, http.StatusNotFound, "nothing here")
}
