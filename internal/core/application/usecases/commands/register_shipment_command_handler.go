package commands

import (
	"context"

	"logistics/internal/core/domain/model/shipment"
)

type RegisterShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

func NewRegisterShipmentCommandHandler(uowFactory ShipmentUoWFactory) RegisterShipmentCommandHandler {
	return RegisterShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *RegisterShipmentCommandHandler) Handle(ctx context.Context, cmd RegisterShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	s, err := shipment.NewShipment(
		cmd.ShipmentID(),
		cmd.Reference(),
		cmd.Direction(),
		cmd.Destination(),
		cmd.Weight(),
		cmd.CompanyName(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ShipmentRepository().Add(ctx, s); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
