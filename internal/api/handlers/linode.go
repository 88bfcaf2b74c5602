package handlers

import (
	apperrors "org-demo-backend/internal/errors"
	"org-demo-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// LinodeHandler handles HTTP requests for linodes
type LinodeHandler struct {
	service service.LinodeServiceInterface
}

// NewLinodeHandler creates a new linode handler
func NewLinodeHandler(s service.LinodeServiceInterface) *LinodeHandler {
	return &LinodeHandler{service: s}
}

// LinodeExists reports whether the linode name is taken
// @Router /api/exists/linode/{name} [get]
func (h *LinodeHandler) LinodeExists(c *gin.Context) (interface{}, error) {
	exists, err := h.service.Exists(c.Request.Context(), c.Param("name"))
	if err != nil {
		return nil, err
	}
	return gin.H{"exists": exists}, nil
}

// CreateLinode creates a linode from {"org_id": ..., "name": ...}
// @Router /api/create/linode [post]
func (h *LinodeHandler) CreateLinode(c *gin.Context) (interface{}, error) {
	var req service.CreateLinodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, apperrors.ErrInvalidPostData
	}
	return h.service.Create(c.Request.Context(), &req)
}
