package models

import "time"

// Vehicle is a fleet vehicle belonging to an organization.
type Vehicle struct {
	ID             uint      `gorm:"primarykey" json:"id"`
	OrganizationID uint      `gorm:"index;not null" json:"organization_id"`
	VIN            string    `gorm:"uniqueIndex;type:varchar(17);not null" json:"vin"`
	Make           string    `json:"make"`
	Model          string    `json:"model"`
	Year           int       `json:"year"`
	LicensePlate   string    `json:"license_plate"`
	VehicleType    string    `gorm:"index" json:"vehicle_type"` // cargo_van, pickup_truck, box_truck, semi_truck, refrigerated_truck
	CapacityKg     float64   `json:"capacity_kg"`
	Status         string    `gorm:"index;default:'active'" json:"status"` // active, maintenance, retired
	CurrentMileage float64   `json:"current_mileage"`
	CreatedAt      time.Time `gorm:"index" json:"created_at"`
}

// TableName sets the table name.
func (Vehicle) TableName() string {
	return "vehicles"
}
