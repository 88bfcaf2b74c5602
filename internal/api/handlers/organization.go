package handlers

import (
	apperrors "org-demo-backend/internal/errors"
	"org-demo-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// OrganizationHandler handles HTTP requests for organizations
type OrganizationHandler struct {
	service service.OrganizationServiceInterface
}

// NewOrganizationHandler creates a new organization handler
func NewOrganizationHandler(s service.OrganizationServiceInterface) *OrganizationHandler {
	return &OrganizationHandler{service: s}
}

// ListOrganizations returns every organization with its users and linodes
// @Router /api/orgs [get]
func (h *OrganizationHandler) ListOrganizations(c *gin.Context) (interface{}, error) {
	orgs, err := h.service.List(c.Request.Context())
	if err != nil {
		return nil, err
	}
	return gin.H{"orgs": orgs}, nil
}

// OrganizationExists reports whether the organization name is taken
// @Router /api/exists/org/{name} [get]
func (h *OrganizationHandler) OrganizationExists(c *gin.Context) (interface{}, error) {
	exists, err := h.service.Exists(c.Request.Context(), c.Param("name"))
	if err != nil {
		return nil, err
	}
	return gin.H{"exists": exists}, nil
}

// CreateOrganization creates an organization from {"name": ...}
// @Router /api/create/org [post]
func (h *OrganizationHandler) CreateOrganization(c *gin.Context) (interface{}, error) {
	var req service.CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, apperrors.ErrInvalidPostData
	}
	return h.service.Create(c.Request.Context(), &req)
}
