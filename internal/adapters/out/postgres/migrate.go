package postgres

import (
	"logistics/internal/adapters/out/postgres/complaintrepo"
	"logistics/internal/adapters/out/postgres/noterepo"
	"logistics/internal/adapters/out/postgres/settingsrepo"
	"logistics/internal/adapters/out/postgres/shipmentrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates every table and sequence the service uses.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&shipmentrepo.ShipmentDTO{},
		&noterepo.NoteDTO{},
		&settingsrepo.ParameterDTO{},
		&complaintrepo.ComplaintDTO{},
		&complaintrepo.ReturnLineDTO{},
	); err != nil {
		return err
	}

	return complaintrepo.CreateSequence(db)
}
