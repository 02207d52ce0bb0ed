package seed

import (
	"github.com/fleetops-api/internal/models"

	"gorm.io/gorm"
)

// Clear deletes all fleet data in reverse dependency order inside a single
// transaction, so a partial failure leaves the database untouched.
func Clear(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		tables := []interface{}{
			&models.GPSTracking{},
			&models.Incident{},
			&models.FuelLog{},
			&models.MaintenanceRecord{},
			&models.Delivery{},
			&models.Route{},
			&models.Location{},
			&models.Driver{},
			&models.Vehicle{},
			&models.Organization{},
		}
		for _, table := range tables {
			if err := tx.Where("1 = 1").Delete(table).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
