package fleet

import (
	"github.com/fleetops-api/internal/http/response"
	"github.com/fleetops-api/internal/models"
	"github.com/fleetops-api/internal/repository"

	"github.com/gin-gonic/gin"
)

// LocationUpsertRequest is the create/update payload.
type LocationUpsertRequest struct {
	OrganizationID uint    `json:"organization_id" binding:"required"`
	Name           string  `json:"name" binding:"required"`
	Type           string  `json:"type"`
	Address        string  `json:"address"`
	City           string  `json:"city"`
	State          string  `json:"state"`
	PostalCode     string  `json:"postal_code"`
	Country        string  `json:"country"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
}

// ListLocations returns a page of locations matching the query filters.
func (h *Handler) ListLocations(c *gin.Context) {
	page, pageSize := parsePagination(c)
	orgID, ok := parseUintQuery(c, "organization_id")
	if !ok {
		return
	}

	locations, total, err := h.LocationRepo.List(repository.LocationListFilter{
		Page:           page,
		PageSize:       pageSize,
		Type:           c.Query("type"),
		City:           c.Query("city"),
		State:          c.Query("state"),
		OrganizationID: orgID,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "failed to fetch locations", err)
		return
	}
	response.SuccessWithPage(c, locations, buildPagination(page, pageSize, total))
}

// GetLocation returns one location by ID.
func (h *Handler) GetLocation(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	location, err := h.LocationRepo.GetByID(id)
	if err != nil {
		respondError(c, response.CodeInternal, "failed to fetch location", err)
		return
	}
	if location == nil {
		response.NotFound(c, "location not found")
		return
	}
	response.Success(c, location)
}

// CreateLocation inserts a new location.
func (h *Handler) CreateLocation(c *gin.Context) {
	var req LocationUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	location := &models.Location{
		OrganizationID: req.OrganizationID,
		Name:           req.Name,
		Type:           req.Type,
		Address:        req.Address,
		City:           req.City,
		State:          req.State,
		PostalCode:     req.PostalCode,
		Country:        req.Country,
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
	}
	if err := h.LocationRepo.Create(location); err != nil {
		respondError(c, response.CodeInternal, "failed to create location", err)
		return
	}
	response.Success(c, location)
}

// UpdateLocation overwrites a location from the full payload.
func (h *Handler) UpdateLocation(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req LocationUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	location, err := h.LocationRepo.GetByID(id)
	if err != nil {
		respondError(c, response.CodeInternal, "failed to fetch location", err)
		return
	}
	if location == nil {
		response.NotFound(c, "location not found")
		return
	}

	location.OrganizationID = req.OrganizationID
	location.Name = req.Name
	location.Type = req.Type
	location.Address = req.Address
	location.City = req.City
	location.State = req.State
	location.PostalCode = req.PostalCode
	location.Country = req.Country
	location.Latitude = req.Latitude
	location.Longitude = req.Longitude
	if err := h.LocationRepo.Update(location); err != nil {
		respondError(c, response.CodeInternal, "failed to update location", err)
		return
	}
	response.Success(c, location)
}

// DeleteLocation removes a location.
func (h *Handler) DeleteLocation(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	location, err := h.LocationRepo.GetByID(id)
	if err != nil {
		respondError(c, response.CodeInternal, "failed to fetch location", err)
		return
	}
	if location == nil {
		response.NotFound(c, "location not found")
		return
	}
	if err := h.LocationRepo.Delete(id); err != nil {
		respondError(c, response.CodeInternal, "failed to delete location", err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
