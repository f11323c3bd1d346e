package commands

import (
	"context"
)

type UpdateCarrierSettingsCommandHandler struct {
	uowFactory SettingsUoWFactory
}

func NewUpdateCarrierSettingsCommandHandler(uowFactory SettingsUoWFactory) UpdateCarrierSettingsCommandHandler {
	return UpdateCarrierSettingsCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *UpdateCarrierSettingsCommandHandler) Handle(ctx context.Context, cmd UpdateCarrierSettingsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.SettingsRepository()
	for _, key := range cmd.Keys() {
		if err := repo.Put(ctx, key, cmd.Value(key)); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
