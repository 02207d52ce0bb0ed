package fleet

import (
	"time"

	"github.com/fleetops-api/internal/http/response"
	"github.com/fleetops-api/internal/models"
	"github.com/fleetops-api/internal/repository"

	"github.com/gin-gonic/gin"
)

// DriverUpsertRequest is the create/update payload.
type DriverUpsertRequest struct {
	OrganizationID uint      `json:"organization_id" binding:"required"`
	FirstName      string    `json:"first_name" binding:"required"`
	LastName       string    `json:"last_name" binding:"required"`
	Email          string    `json:"email" binding:"required"`
	Phone          string    `json:"phone"`
	LicenseNumber  string    `json:"license_number"`
	LicenseExpiry  time.Time `json:"license_expiry"`
	Status         string    `json:"status"`
	HireDate       time.Time `json:"hire_date"`
	Rating         float64   `json:"rating"`
}

// ListDrivers returns a page of drivers matching the query filters.
func (h *Handler) ListDrivers(c *gin.Context) {
	page, pageSize := parsePagination(c)
	orgID, ok := parseUintQuery(c, "organization_id")
	if !ok {
		return
	}

	drivers, total, err := h.DriverRepo.List(repository.DriverListFilter{
		Page:           page,
		PageSize:       pageSize,
		Status:         c.Query("status"),
		OrganizationID: orgID,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "failed to fetch drivers", err)
		return
	}
	response.SuccessWithPage(c, drivers, buildPagination(page, pageSize, total))
}

// GetDriver returns one driver by ID.
func (h *Handler) GetDriver(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	driver, err := h.DriverRepo.GetByID(id)
	if err != nil {
		respondError(c, response.CodeInternal, "failed to fetch driver", err)
		return
	}
	if driver == nil {
		response.NotFound(c, "driver not found")
		return
	}
	response.Success(c, driver)
}

// CreateDriver inserts a new driver.
func (h *Handler) CreateDriver(c *gin.Context) {
	var req DriverUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	driver := &models.Driver{
		OrganizationID: req.OrganizationID,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Phone:          req.Phone,
		LicenseNumber:  req.LicenseNumber,
		LicenseExpiry:  req.LicenseExpiry,
		Status:         req.Status,
		HireDate:       req.HireDate,
		Rating:         req.Rating,
	}
	if err := h.DriverRepo.Create(driver); err != nil {
		respondError(c, response.CodeInternal, "failed to create driver", err)
		return
	}
	response.Success(c, driver)
}

// UpdateDriver overwrites a driver from the full payload.
func (h *Handler) UpdateDriver(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req DriverUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	driver, err := h.DriverRepo.GetByID(id)
	if err != nil {
		respondError(c, response.CodeInternal, "failed to fetch driver", err)
		return
	}
	if driver == nil {
		response.NotFound(c, "driver not found")
		return
	}

	driver.OrganizationID = req.OrganizationID
	driver.FirstName = req.FirstName
	driver.LastName = req.LastName
	driver.Email = req.Email
	driver.Phone = req.Phone
	driver.LicenseNumber = req.LicenseNumber
	driver.LicenseExpiry = req.LicenseExpiry
	driver.Status = req.Status
	driver.HireDate = req.HireDate
	driver.Rating = req.Rating
	if err := h.DriverRepo.Update(driver); err != nil {
		respondError(c, response.CodeInternal, "failed to update driver", err)
		return
	}
	response.Success(c, driver)
}

// DeleteDriver removes a driver.
func (h *Handler) DeleteDriver(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	driver, err := h.DriverRepo.GetByID(id)
	if err != nil {
		respondError(c, response.CodeInternal, "failed to fetch driver", err)
		return
	}
	if driver == nil {
		response.NotFound(c, "driver not found")
		return
	}
	if err := h.DriverRepo.Delete(id); err != nil {
		respondError(c, response.CodeInternal, "failed to delete driver", err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
