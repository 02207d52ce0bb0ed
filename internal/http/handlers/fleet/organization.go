package fleet

import (
	"github.com/fleetops-api/internal/http/response"
	"github.com/fleetops-api/internal/models"
	"github.com/fleetops-api/internal/repository"

	"github.com/gin-gonic/gin"
)

// OrganizationUpsertRequest is the create/update payload.
type OrganizationUpsertRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// ListOrganizations returns a page of organizations.
func (h *Handler) ListOrganizations(c *gin.Context) {
	page, pageSize := parsePagination(c)

	orgs, total, err := h.OrganizationRepo.List(repository.OrganizationListFilter{
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "failed to fetch organizations", err)
		return
	}
	response.SuccessWithPage(c, orgs, buildPagination(page, pageSize, total))
}

// GetOrganization returns one organization by ID.
func (h *Handler) GetOrganization(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	org, err := h.OrganizationRepo.GetByID(id)
	if err != nil {
		respondError(c, response.CodeInternal, "failed to fetch organization", err)
		return
	}
	if org == nil {
		response.NotFound(c, "organization not found")
		return
	}
	response.Success(c, org)
}

// CreateOrganization inserts a new organization.
func (h *Handler) CreateOrganization(c *gin.Context) {
	var req OrganizationUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	org := &models.Organization{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	}
	if err := h.OrganizationRepo.Create(org); err != nil {
		respondError(c, response.CodeInternal, "failed to create organization", err)
		return
	}
	response.Success(c, org)
}

// UpdateOrganization overwrites an organization from the full payload.
func (h *Handler) UpdateOrganization(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req OrganizationUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	org, err := h.OrganizationRepo.GetByID(id)
	if err != nil {
		respondError(c, response.CodeInternal, "failed to fetch organization", err)
		return
	}
	if org == nil {
		response.NotFound(c, "organization not found")
		return
	}

	org.Name = req.Name
	org.Email = req.Email
	org.Phone = req.Phone
	org.Address = req.Address
	if err := h.OrganizationRepo.Update(org); err != nil {
		respondError(c, response.CodeInternal, "failed to update organization", err)
		return
	}
	response.Success(c, org)
}

// DeleteOrganization removes an organization.
func (h *Handler) DeleteOrganization(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	org, err := h.OrganizationRepo.GetByID(id)
	if err != nil {
		respondError(c, response.CodeInternal, "failed to fetch organization", err)
		return
	}
	if org == nil {
		response.NotFound(c, "organization not found")
		return
	}
	if err := h.OrganizationRepo.Delete(id); err != nil {
		respondError(c, response.CodeInternal, "failed to delete organization", err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
