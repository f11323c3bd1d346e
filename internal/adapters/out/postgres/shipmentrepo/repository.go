package shipmentrepo

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

type GormShipmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormShipmentRepository(db *gorm.DB, tracker aggregateTracker) *GormShipmentRepository {
	return &GormShipmentRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormShipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ShipmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipment", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// AssignTrackingNumber writes the tracking number only where none is stored.
// Zero affected rows means either a concurrent submission won or the
// shipment vanished; both are told apart by reading the row back.
func (r *GormShipmentRepository) AssignTrackingNumber(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if !aggregate.HasTrackingNumber() {
		return errs.NewValueIsRequiredError("tracking number")
	}

	result := r.db.WithContext(ctx).
		Model(&ShipmentDTO{}).
		Where("id = ? AND tracking_number = ''", aggregate.ID().Bytes()).
		Update("tracking_number", aggregate.TrackingNumber())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var stored ShipmentDTO
		err := r.db.WithContext(ctx).Select("tracking_number").First(&stored, "id = ?", aggregate.ID().Bytes()).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NewObjectNotFoundError("shipment", aggregate.ID().String())
		}
		if err != nil {
			return err
		}
		return &shipment.TrackingNumberExistsError{TrackingNumber: stored.TrackingNumber}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}
