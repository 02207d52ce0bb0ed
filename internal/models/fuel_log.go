package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FuelLog records a refuel. TotalCost is always derived from liters and
// cost per liter, never written independently.
type FuelLog struct {
	ID           uint            `gorm:"primarykey" json:"id"`
	VehicleID    uint            `gorm:"index;not null" json:"vehicle_id"`
	Date         time.Time       `gorm:"index" json:"date"`
	Location     string          `json:"location"`
	Liters       float64         `json:"liters"`
	CostPerLiter decimal.Decimal `gorm:"type:decimal(10,2)" json:"cost_per_liter"`
	TotalCost    decimal.Decimal `gorm:"type:decimal(12,4)" json:"total_cost"`
	Mileage      float64         `json:"mileage"`
	FuelType     string          `gorm:"index;default:'diesel'" json:"fuel_type"` // diesel, gasoline, electric
	CreatedAt    time.Time       `json:"created_at"`
}

// TableName sets the table name.
func (FuelLog) TableName() string {
	return "fuel_logs"
}
