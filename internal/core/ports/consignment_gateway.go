package ports

import (
	"context"

	"logistics/internal/core/domain/model/consignment"
)

// ConsignmentGateway books parcels with the courier.
type ConsignmentGateway interface {
	// CreateConsignment sends one booking request and returns the tracking
	// number found in the answer. It never retries. Failures are one of the
	// consignment error kinds.
	CreateConsignment(ctx context.Context, settings consignment.Settings, parcels []consignment.Parcel) (string, error)
}
