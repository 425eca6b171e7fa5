package postgres

import (
	"returnwiz/internal/errors"
	"returnwiz/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// Migrate creates or updates the schema for all persistence models.
// The model list is the single explicit schema definition; adding a table
// means adding its model here.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.TenantModel{},
		&model.ReturnOrderModel{},
		&model.ReturnItemModel{},
	); err != nil {
		return errors.Wrap(err, "auto migrate failed")
	}

	return nil
}
