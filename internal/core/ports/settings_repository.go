package ports

import (
	"context"

	"logistics/internal/core/domain/model/consignment"
)

// CarrierSettingsProvider reads the carrier configuration as currently
// stored. Values are returned raw; validation is the caller's concern.
type CarrierSettingsProvider interface {
	CarrierSettings(ctx context.Context) (consignment.SettingsParams, error)
}

// SettingsRepository is the key/value configuration store.
type SettingsRepository interface {
	CarrierSettingsProvider

	// Put creates or replaces the value stored under key.
	Put(ctx context.Context, key, value string) error
}
