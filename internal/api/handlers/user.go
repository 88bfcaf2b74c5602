package handlers

import (
	"math"
	"strconv"

	apperrors "org-demo-backend/internal/errors"
	"org-demo-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler handles HTTP requests for users
type UserHandler struct {
	service service.UserServiceInterface
}

// NewUserHandler creates a new user handler
func NewUserHandler(s service.UserServiceInterface) *UserHandler {
	return &UserHandler{service: s}
}

// GetUser returns one user with its organizations and linodes.
// An id that is not an unsigned integer is treated as an unknown route.
// @Router /api/user/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) (interface{}, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return nil, apperrors.ErrRouteNotFound
	}
	if id > math.MaxInt64 {
		return nil, apperrors.ErrUserNotFound
	}

	user, err := h.service.Get(c.Request.Context(), int64(id))
	if err != nil {
		return nil, err
	}
	return gin.H{"user": user}, nil
}

// UserExists reports whether the email is taken
// @Router /api/exists/user/{email} [get]
func (h *UserHandler) UserExists(c *gin.Context) (interface{}, error) {
	exists, err := h.service.Exists(c.Request.Context(), c.Param("email"))
	if err != nil {
		return nil, err
	}
	return gin.H{"exists": exists}, nil
}

// CreateUser creates a user and its memberships from {"email": ..., "org_ids": [...]}
// @Router /api/create/user [post]
func (h *UserHandler) CreateUser(c *gin.Context) (interface{}, error) {
	var req service.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, apperrors.ErrInvalidPostData
	}
	return h.service.Create(c.Request.Context(), &req)
}
