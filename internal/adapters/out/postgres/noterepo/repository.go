// Package noterepo stores the audit trail of shipments.
package noterepo

import (
	"context"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NoteDTO struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement"`
	ShipmentID uuid.UUID `gorm:"type:uuid;not null;index"`
	Body       string    `gorm:"type:text;not null"`
	CreatedAt  time.Time
}

func (NoteDTO) TableName() string {
	return "shipment_notes"
}

type GormNoteRepository struct {
	db *gorm.DB
}

func NewGormNoteRepository(db *gorm.DB) *GormNoteRepository {
	return &GormNoteRepository{db: db}
}

func (r *GormNoteRepository) Append(ctx context.Context, shipmentID kernel.UUID, body string) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(body) == "" {
		return errs.NewValueIsRequiredError("note body")
	}

	dto := NoteDTO{
		ShipmentID: shipmentID.Bytes(),
		Body:       body,
	}
	return r.db.WithContext(ctx).Create(&dto).Error
}

// List returns the notes of a shipment, oldest first.
func (r *GormNoteRepository) List(ctx context.Context, shipmentID kernel.UUID) ([]string, error) {
	var bodies []string
	err := r.db.WithContext(ctx).
		Model(&NoteDTO{}).
		Where("shipment_id = ?", shipmentID.Bytes()).
		Order("id").
		Pluck("body", &bodies).Error
	if err != nil {
		return nil, err
	}
	return bodies, nil
}
