package fleet

import (
	"time"

	"github.com/fleetops-api/internal/http/response"
	"github.com/fleetops-api/internal/models"
	"github.com/fleetops-api/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// FuelLogUpsertRequest is the create/update payload. TotalCost is derived
// server-side from liters and cost per liter.
type FuelLogUpsertRequest struct {
	VehicleID    uint            `json:"vehicle_id" binding:"required"`
	Date         time.Time       `json:"date"`
	Location     string          `json:"location"`
	Liters       float64         `json:"liters"`
	CostPerLiter decimal.Decimal `json:"cost_per_liter"`
	Mileage      float64         `json:"mileage"`
	FuelType     string          `json:"fuel_type"`
}

// ListFuelLogs returns a page of fuel logs matching the query filters.
func (h *Handler) ListFuelLogs(c *gin.Context) {
	page, pageSize := parsePagination(c)
	vehicleID, ok := parseUintQuery(c, "vehicle_id")
	if !ok {
		return
	}

	logs, total, err := h.FuelLogRepo.List(repository.FuelLogListFilter{
		Page:      page,
		PageSize:  pageSize,
		VehicleID: vehicleID,
		FuelType:  c.Query("fuel_type"),
	})
	if err != nil {
		respondError(c, response.CodeInternal, "failed to fetch fuel logs", err)
		return
	}
	response.SuccessWithPage(c, logs, buildPagination(page, pageSize, total))
}

// GetFuelLog returns one fuel log by ID.
func (h *Handler) GetFuelLog(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	log, err := h.FuelLogRepo.GetByID(id)
	if err != nil {
		respondError(c, response.CodeInternal, "failed to fetch fuel log", err)
		return
	}
	if log == nil {
		response.NotFound(c, "fuel log not found")
		return
	}
	response.Success(c, log)
}

// CreateFuelLog inserts a new fuel log.
func (h *Handler) CreateFuelLog(c *gin.Context) {
	var req FuelLogUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	log := &models.FuelLog{
		VehicleID:    req.VehicleID,
		Date:         req.Date,
		Location:     req.Location,
		Liters:       req.Liters,
		CostPerLiter: req.CostPerLiter,
		TotalCost:    decimal.NewFromFloat(req.Liters).Mul(req.CostPerLiter),
		Mileage:      req.Mileage,
		FuelType:     req.FuelType,
	}
	if err := h.FuelLogRepo.Create(log); err != nil {
		respondError(c, response.CodeInternal, "failed to create fuel log", err)
		return
	}
	response.Success(c, log)
}

// UpdateFuelLog overwrites a fuel log from the full payload.
func (h *Handler) UpdateFuelLog(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req FuelLogUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	log, err := h.FuelLogRepo.GetByID(id)
	if err != nil {
		respondError(c, response.CodeInternal, "failed to fetch fuel log", err)
		return
	}
	if log == nil {
		response.NotFound(c, "fuel log not found")
		return
	}

	log.VehicleID = req.VehicleID
	log.Date = req.Date
	log.Location = req.Location
	log.Liters = req.Liters
	log.CostPerLiter = req.CostPerLiter
	log.TotalCost = decimal.NewFromFloat(req.Liters).Mul(req.CostPerLiter)
	log.Mileage = req.Mileage
	log.FuelType = req.FuelType
	if err := h.FuelLogRepo.Update(log); err != nil {
		respondError(c, response.CodeInternal, "failed to update fuel log", err)
		return
	}
	response.Success(c, log)
}

// DeleteFuelLog removes a fuel log.
func (h *Handler) DeleteFuelLog(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	log, err := h.FuelLogRepo.GetByID(id)
	if err != nil {
		respondError(c, response.CodeInternal, "failed to fetch fuel log", err)
		return
	}
	if log == nil {
		response.NotFound(c, "fuel log not found")
		return
	}
	if err := h.FuelLogRepo.Delete(id); err != nil {
		respondError(c, response.CodeInternal, "failed to delete fuel log", err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
