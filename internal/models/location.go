package models

import "time"

// Location is a fixed point in the logistics network.
type Location struct {
	ID             uint      `gorm:"primarykey" json:"id"`
	OrganizationID uint      `gorm:"index;not null" json:"organization_id"`
	Name           string    `json:"name"`
	Type           string    `gorm:"index" json:"type"` // warehouse, depot, customer, distribution_center
	Address        string    `json:"address"`
	City           string    `gorm:"index" json:"city"`
	State          string    `gorm:"index" json:"state"`
	PostalCode     string    `json:"postal_code"`
	Country        string    `json:"country"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	CreatedAt      time.Time `gorm:"index" json:"created_at"`
}

// TableName sets the table name.
func (Location) TableName() string {
	return "locations"
}
