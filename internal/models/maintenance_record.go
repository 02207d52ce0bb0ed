package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaintenanceRecord is a service event for a vehicle. NextServiceDate is
// only meaningful for routine maintenance.
type MaintenanceRecord struct {
	ID               uint            `gorm:"primarykey" json:"id"`
	VehicleID        uint            `gorm:"index;not null" json:"vehicle_id"`
	MaintenanceType  string          `gorm:"index" json:"maintenance_type"` // routine, repair, inspection, emergency
	Description      string          `gorm:"type:text" json:"description"`
	Cost             decimal.Decimal `gorm:"type:decimal(10,2)" json:"cost"`
	MileageAtService float64         `json:"mileage_at_service"`
	ServiceDate      time.Time       `gorm:"index" json:"service_date"`
	NextServiceDate  *time.Time      `json:"next_service_date"`
	ServiceProvider  string          `json:"service_provider"`
	DowntimeHours    float64         `json:"downtime_hours"`
	CreatedAt        time.Time       `json:"created_at"`
}

// TableName sets the table name.
func (MaintenanceRecord) TableName() string {
	return "maintenance_records"
}
