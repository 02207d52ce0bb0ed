package fleet

import (
	"strconv"
	"time"

	"github.com/fleetops-api/internal/http/response"
	"github.com/fleetops-api/internal/models"
	"github.com/fleetops-api/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// IncidentUpsertRequest is the create/update payload.
type IncidentUpsertRequest struct {
	DriverID        uint                `json:"driver_id" binding:"required"`
	IncidentType    string              `json:"incident_type" binding:"required"`
	Severity        string              `json:"severity"`
	Description     string              `json:"description"`
	Date            time.Time           `json:"date"`
	Location        string              `json:"location"`
	Cost            decimal.NullDecimal `json:"cost"`
	Resolved        bool                `json:"resolved"`
	ResolutionNotes *string             `json:"resolution_notes"`
}

// ListIncidents returns a page of incidents matching the query filters.
func (h *Handler) ListIncidents(c *gin.Context) {
	page, pageSize := parsePagination(c)
	driverID, ok := parseUintQuery(c, "driver_id")
	if !ok {
		return
	}

	var resolved *bool
	if raw := c.Query("resolved"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			respondError(c, response.CodeBadRequest, "invalid resolved", err)
			return
		}
		resolved = &parsed
	}

	incidents, total, err := h.IncidentRepo.List(repository.IncidentListFilter{
		Page:         page,
		PageSize:     pageSize,
		DriverID:     driverID,
		IncidentType: c.Query("incident_type"),
		Severity:     c.Query("severity"),
		Resolved:     resolved,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "failed to fetch incidents", err)
		return
	}
	response.SuccessWithPage(c, incidents, buildPagination(page, pageSize, total))
}

// GetIncident returns one incident by ID.
func (h *Handler) GetIncident(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	incident, err := h.IncidentRepo.GetByID(id)
	if err != nil {
		respondError(c, response.CodeInternal, "failed to fetch incident", err)
		return
	}
	if incident == nil {
		response.NotFound(c, "incident not found")
		return
	}
	response.Success(c, incident)
}

// CreateIncident inserts a new incident.
func (h *Handler) CreateIncident(c *gin.Context) {
	var req IncidentUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	incident := &models.Incident{
		DriverID:        req.DriverID,
		IncidentType:    req.IncidentType,
		Severity:        req.Severity,
		Description:     req.Description,
		Date:            req.Date,
		Location:        req.Location,
		Cost:            req.Cost,
		Resolved:        req.Resolved,
		ResolutionNotes: req.ResolutionNotes,
	}
	if err := h.IncidentRepo.Create(incident); err != nil {
		respondError(c, response.CodeInternal, "failed to create incident", err)
		return
	}
	response.Success(c, incident)
}

// UpdateIncident overwrites an incident from the full payload.
func (h *Handler) UpdateIncident(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req IncidentUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	incident, err := h.IncidentRepo.GetByID(id)
	if err != nil {
		respondError(c, response.CodeInternal, "failed to fetch incident", err)
		return
	}
	if incident == nil {
		response.NotFound(c, "incident not found")
		return
	}

	incident.DriverID = req.DriverID
	incident.IncidentType = req.IncidentType
	incident.Severity = req.Severity
	incident.Description = req.Description
	incident.Date = req.Date
	incident.Location = req.Location
	incident.Cost = req.Cost
	incident.Resolved = req.Resolved
	incident.ResolutionNotes = req.ResolutionNotes
	if err := h.IncidentRepo.Update(incident); err != nil {
		respondError(c, response.CodeInternal, "failed to update incident", err)
		return
	}
	response.Success(c, incident)
}

// DeleteIncident removes an incident.
func (h *Handler) DeleteIncident(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	incident, err := h.IncidentRepo.GetByID(id)
	if err != nil {
		respondError(c, response.CodeInternal, "failed to fetch incident", err)
		return
	}
	if incident == nil {
		response.NotFound(c, "incident not found")
		return
	}
	if err := h.IncidentRepo.Delete(id); err != nil {
		respondError(c, response.CodeInternal, "failed to delete incident", err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
