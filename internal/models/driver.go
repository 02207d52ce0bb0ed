package models

import "time"

// Driver is an employed vehicle operator.
type Driver struct {
	ID             uint      `gorm:"primarykey" json:"id"`
	OrganizationID uint      `gorm:"index;not null" json:"organization_id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Email          string    `gorm:"uniqueIndex;not null" json:"email"`
	Phone          string    `json:"phone"`
	LicenseNumber  string    `gorm:"uniqueIndex" json:"license_number"`
	LicenseExpiry  time.Time `json:"license_expiry"`
	Status         string    `gorm:"index;default:'active'" json:"status"` // active, inactive, on_leave
	HireDate       time.Time `json:"hire_date"`
	Rating         float64   `gorm:"default:5.0" json:"rating"`
	CreatedAt      time.Time `gorm:"index" json:"created_at"`
}

// TableName sets the table name.
func (Driver) TableName() string {
	return "drivers"
}
