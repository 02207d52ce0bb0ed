package fleet

import (
	"github.com/fleetops-api/internal/http/response"
	"github.com/fleetops-api/internal/models"
	"github.com/fleetops-api/internal/repository"

	"github.com/gin-gonic/gin"
)

// VehicleUpsertRequest is the create/update payload.
type VehicleUpsertRequest struct {
	OrganizationID uint    `json:"organization_id" binding:"required"`
	VIN            string  `json:"vin" binding:"required"`
	Make           string  `json:"make"`
	Model          string  `json:"model"`
	Year           int     `json:"year"`
	LicensePlate   string  `json:"license_plate"`
	VehicleType    string  `json:"vehicle_type"`
	CapacityKg     float64 `json:"capacity_kg"`
	Status         string  `json:"status"`
	CurrentMileage float64 `json:"current_mileage"`
}

// ListVehicles returns a page of vehicles matching the query filters.
func (h *Handler) ListVehicles(c *gin.Context) {
	page, pageSize := parsePagination(c)
	orgID, ok := parseUintQuery(c, "organization_id")
	if !ok {
		return
	}

	vehicles, total, err := h.VehicleRepo.List(repository.VehicleListFilter{
		Page:           page,
		PageSize:       pageSize,
		Status:         c.Query("status"),
		VehicleType:    c.Query("vehicle_type"),
		OrganizationID: orgID,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "failed to fetch vehicles", err)
		return
	}
	response.SuccessWithPage(c, vehicles, buildPagination(page, pageSize, total))
}

// GetVehicle returns one vehicle by ID.
func (h *Handler) GetVehicle(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	vehicle, err := h.VehicleRepo.GetByID(id)
	if err != nil {
		respondError(c, response.CodeInternal, "failed to fetch vehicle", err)
		return
	}
	if vehicle == nil {
		response.NotFound(c, "vehicle not found")
		return
	}
	response.Success(c, vehicle)
}

// CreateVehicle inserts a new vehicle.
func (h *Handler) CreateVehicle(c *gin.Context) {
	var req VehicleUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	vehicle := &models.Vehicle{
		OrganizationID: req.OrganizationID,
		VIN:            req.VIN,
		Make:           req.Make,
		Model:          req.Model,
		Year:           req.Year,
		LicensePlate:   req.LicensePlate,
		VehicleType:    req.VehicleType,
		CapacityKg:     req.CapacityKg,
		Status:         req.Status,
		CurrentMileage: req.CurrentMileage,
	}
	if err := h.VehicleRepo.Create(vehicle); err != nil {
		respondError(c, response.CodeInternal, "failed to create vehicle", err)
		return
	}
	response.Success(c, vehicle)
}

// UpdateVehicle overwrites a vehicle from the full payload.
func (h *Handler) UpdateVehicle(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req VehicleUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	vehicle, err := h.VehicleRepo.GetByID(id)
	if err != nil {
		respondError(c, response.CodeInternal, "failed to fetch vehicle", err)
		return
	}
	if vehicle == nil {
		response.NotFound(c, "vehicle not found")
		return
	}

	vehicle.OrganizationID = req.OrganizationID
	vehicle.VIN = req.VIN
	vehicle.Make = req.Make
	vehicle.Model = req.Model
	vehicle.Year = req.Year
	vehicle.LicensePlate = req.LicensePlate
	vehicle.VehicleType = req.VehicleType
	vehicle.CapacityKg = req.CapacityKg
	vehicle.Status = req.Status
	vehicle.CurrentMileage = req.CurrentMileage
	if err := h.VehicleRepo.Update(vehicle); err != nil {
		respondError(c, response.CodeInternal, "failed to update vehicle", err)
		return
	}
	response.Success(c, vehicle)
}

// DeleteVehicle removes a vehicle.
func (h *Handler) DeleteVehicle(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	vehicle, err := h.VehicleRepo.GetByID(id)
	if err != nil {
		respondError(c, response.CodeInternal, "failed to fetch vehicle", err)
		return
	}
	if vehicle == nil {
		response.NotFound(c, "vehicle not found")
		return
	}
	if err := h.VehicleRepo.Delete(id); err != nil {
		respondError(c, response.CodeInternal, "failed to delete vehicle", err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
