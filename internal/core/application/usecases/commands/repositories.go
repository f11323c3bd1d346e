// Package commands contains the operations that change state. Every command
// is built through its constructor, validated by the handler and executed
// inside a unit of work.
package commands

import (
	"context"

	"logistics/internal/core/ports"
)

type (
	// TxManager handles the transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	ShipmentRepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
	}

	NoteRepoFactory interface {
		NoteRepository() ports.NoteRepository
	}

	SettingsRepoFactory interface {
		SettingsRepository() ports.SettingsRepository
	}

	ComplaintRepoFactory interface {
		ComplaintRepository() ports.ComplaintRepository
	}

	// ShipmentUoW covers shipment writes together with their audit notes.
	//
	//	uow := factory.Create()
	//	if err := uow.Begin(ctx); err != nil {
	//	    return err
	//	}
	//	defer uow.Rollback(ctx)
	//
	//	// uow.ShipmentRepository(), uow.NoteRepository()
	//
	//	return uow.Commit(ctx)
	ShipmentUoW interface {
		TxManager
		ShipmentRepoFactory
		NoteRepoFactory
	}

	ShipmentUoWFactory interface {
		Create() ShipmentUoW
	}

	SettingsUoW interface {
		TxManager
		SettingsRepoFactory
	}

	SettingsUoWFactory interface {
		Create() SettingsUoW
	}

	ComplaintUoW interface {
		TxManager
		ComplaintRepoFactory
	}

	ComplaintUoWFactory interface {
		Create() ComplaintUoW
	}
)
