// Package ports defines the contracts between the application layer and the
// adapters: repositories bound to a unit of work, the carrier gateway, the
// mailer and the report renderer.
package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
)

// ShipmentRepository persists shipment aggregates.
type ShipmentRepository interface {
	// Add persists a newly registered shipment.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Get returns the shipment or an errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	// AssignTrackingNumber stores the tracking number held by aggregate,
	// but only if the stored shipment has none yet. When another writer got
	// there first it returns an error wrapping shipment.ErrDuplicateSubmission
	// and leaves the stored value untouched.
	AssignTrackingNumber(ctx context.Context, aggregate *shipment.Shipment) error
}

// NoteRepository appends audit notes to a shipment's history.
type NoteRepository interface {
	Append(ctx context.Context, shipmentID kernel.UUID, body string) error
}
