package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrSubmitConsignmentCommandIsNotConstructed = errors.New(
	"SubmitConsignmentCommand must be created via NewSubmitConsignmentCommand constructor",
)

// SubmitConsignmentCommand asks for a courier booking of one shipment.
type SubmitConsignmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID

	guard guard.ConstructorGuard
}

func NewSubmitConsignmentCommand(shipmentID kernel.UUID) (SubmitConsignmentCommand, error) {
	cmd := SubmitConsignmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setShipmentID(shipmentID); err != nil {
		return SubmitConsignmentCommand{}, err
	}

	return cmd, nil
}

func (c SubmitConsignmentCommand) Validate() error {
	return c.guard.Validate(ErrSubmitConsignmentCommandIsNotConstructed)
}

func (c SubmitConsignmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

func (c *SubmitConsignmentCommand) setShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.shipmentID = id
	return nil
}
