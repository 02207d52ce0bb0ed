package fleet

import (
	"time"

	"github.com/fleetops-api/internal/http/response"
	"github.com/fleetops-api/internal/models"
	"github.com/fleetops-api/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// MaintenanceUpsertRequest is the create/update payload.
type MaintenanceUpsertRequest struct {
	VehicleID        uint            `json:"vehicle_id" binding:"required"`
	MaintenanceType  string          `json:"maintenance_type" binding:"required"`
	Description      string          `json:"description"`
	Cost             decimal.Decimal `json:"cost"`
	MileageAtService float64         `json:"mileage_at_service"`
	ServiceDate      time.Time       `json:"service_date"`
	NextServiceDate  *time.Time      `json:"next_service_date"`
	ServiceProvider  string          `json:"service_provider"`
	DowntimeHours    float64         `json:"downtime_hours"`
}

// ListMaintenance returns a page of maintenance records matching the filters.
func (h *Handler) ListMaintenance(c *gin.Context) {
	page, pageSize := parsePagination(c)
	vehicleID, ok := parseUintQuery(c, "vehicle_id")
	if !ok {
		return
	}

	records, total, err := h.MaintenanceRepo.List(repository.MaintenanceListFilter{
		Page:            page,
		PageSize:        pageSize,
		VehicleID:       vehicleID,
		MaintenanceType: c.Query("maintenance_type"),
	})
	if err != nil {
		respondError(c, response.CodeInternal, "failed to fetch maintenance records", err)
		return
	}
	response.SuccessWithPage(c, records, buildPagination(page, pageSize, total))
}

// GetMaintenance returns one maintenance record by ID.
func (h *Handler) GetMaintenance(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	record, err := h.MaintenanceRepo.GetByID(id)
	if err != nil {
		respondError(c, response.CodeInternal, "failed to fetch maintenance record", err)
		return
	}
	if record == nil {
		response.NotFound(c, "maintenance record not found")
		return
	}
	response.Success(c, record)
}

// CreateMaintenance inserts a new maintenance record.
func (h *Handler) CreateMaintenance(c *gin.Context) {
	var req MaintenanceUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	record := &models.MaintenanceRecord{
		VehicleID:        req.VehicleID,
		MaintenanceType:  req.MaintenanceType,
		Description:      req.Description,
		Cost:             req.Cost,
		MileageAtService: req.MileageAtService,
		ServiceDate:      req.ServiceDate,
		NextServiceDate:  req.NextServiceDate,
		ServiceProvider:  req.ServiceProvider,
		DowntimeHours:    req.DowntimeHours,
	}
	if err := h.MaintenanceRepo.Create(record); err != nil {
		respondError(c, response.CodeInternal, "failed to create maintenance record", err)
		return
	}
	response.Success(c, record)
}

// UpdateMaintenance overwrites a maintenance record from the full payload.
func (h *Handler) UpdateMaintenance(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req MaintenanceUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	record, err := h.MaintenanceRepo.GetByID(id)
	if err != nil {
		respondError(c, response.CodeInternal, "failed to fetch maintenance record", err)
		return
	}
	if record == nil {
		response.NotFound(c, "maintenance record not found")
		return
	}

	record.VehicleID = req.VehicleID
	record.MaintenanceType = req.MaintenanceType
	record.Description = req.Description
	record.Cost = req.Cost
	record.MileageAtService = req.MileageAtService
	record.ServiceDate = req.ServiceDate
	record.NextServiceDate = req.NextServiceDate
	record.ServiceProvider = req.ServiceProvider
	record.DowntimeHours = req.DowntimeHours
	if err := h.MaintenanceRepo.Update(record); err != nil {
		respondError(c, response.CodeInternal, "failed to update maintenance record", err)
		return
	}
	response.Success(c, record)
}

// DeleteMaintenance removes a maintenance record.
func (h *Handler) DeleteMaintenance(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	record, err := h.MaintenanceRepo.GetByID(id)
	if err != nil {
		respondError(c, response.CodeInternal, "failed to fetch maintenance record", err)
		return
	}
	if record == nil {
		response.NotFound(c, "maintenance record not found")
		return
	}
	if err := h.MaintenanceRepo.Delete(id); err != nil {
		respondError(c, response.CodeInternal, "failed to delete maintenance record", err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
