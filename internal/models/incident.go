package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Incident is a reportable event attributed to a driver. ResolutionNotes
// are present exactly when the incident is resolved.
type Incident struct {
	ID              uint                `gorm:"primarykey" json:"id"`
	DriverID        uint                `gorm:"index;not null" json:"driver_id"`
	IncidentType    string              `gorm:"index" json:"incident_type"` // accident, delay, damage, theft, violation
	Severity        string              `gorm:"index" json:"severity"`      // minor, moderate, major, critical
	Description     string              `gorm:"type:text" json:"description"`
	Date            time.Time           `gorm:"index" json:"date"`
	Location        string              `json:"location"`
	Cost            decimal.NullDecimal `gorm:"type:decimal(10,2)" json:"cost"`
	Resolved        bool                `gorm:"index;default:false" json:"resolved"`
	ResolutionNotes *string             `gorm:"type:text" json:"resolution_notes"`
	CreatedAt       time.Time           `json:"created_at"`
}

// TableName sets the table name.
func (Incident) TableName() string {
	return "incidents"
}
