package config

import (
	"fmt"

	"github.com/nevolt/orders-api/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// orderColumns lists the columns added to orders tables created by older
// releases. Order matters only for log readability.
var orderColumns = []string{
	"RestaurantID",
	"CustomerName",
	"TableNo",
	"Notes",
	"Items",
	"Total",
	"Status",
	"PlacedAt",
}

// EnsureOrdersSchema creates the orders table when it is missing and adds any
// missing columns. It never drops or renames anything, so running it again
// is a no-op. A column that cannot be added is logged and skipped; the
// returned error only reports that the table itself could not be created.
func EnsureOrdersSchema(db *gorm.DB, log *zap.Logger) error {
	migrator := db.Migrator()

	if !migrator.HasTable(&models.Order{}) {
		if err := migrator.CreateTable(&models.Order{}); err != nil {
			return fmt.Errorf("failed to create orders table: %w", err)
		}
		log.Info("Created orders table")
	}

	for _, field := range orderColumns {
		if migrator.HasColumn(&models.Order{}, field) {
			continue
		}
		if err := migrator.AddColumn(&models.Order{}, field); err != nil {
			log.Warn("Could not add column to orders table", zap.String("field", field), zap.Error(err))
			continue
		}
		log.Info("Added column to orders table", zap.String("field", field))
	}

	if !migrator.HasIndex(&models.Order{}, "RestaurantID") {
		if err := migrator.CreateIndex(&models.Order{}, "RestaurantID"); err != nil {
			log.Warn("Could not create restaurant_id index", zap.Error(err))
		}
	}

	log.Info("orders table is ready")
	return nil
}
