package commands

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrRegisterShipmentCommandIsNotConstructed = errors.New(
	"RegisterShipmentCommand must be created via NewRegisterShipmentCommand constructor",
)

// RegisterShipmentCommand mirrors a delivery document of the host system.
type RegisterShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID  kernel.UUID
	reference   string
	direction   shipment.Direction
	destination kernel.Contact
	weight      kernel.Weight
	companyName string

	guard guard.ConstructorGuard
}

// NewRegisterShipmentCommand takes the weight as the host stores it; it is
// interpreted only when a consignment is built.
func NewRegisterShipmentCommand(
	shipmentID kernel.UUID,
	reference string,
	direction string,
	destination kernel.ContactParams,
	weight string,
	companyName string,
) (RegisterShipmentCommand, error) {
	cmd := RegisterShipmentCommand{
		destination: kernel.NewContact(destination),
		weight:      kernel.NewWeight(weight),
		companyName: strings.TrimSpace(companyName),
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setReference(reference),
		cmd.setDirection(direction),
	); err != nil {
		return RegisterShipmentCommand{}, err
	}

	return cmd, nil
}

func (c RegisterShipmentCommand) Validate() error {
	return c.guard.Validate(ErrRegisterShipmentCommandIsNotConstructed)
}

func (c RegisterShipmentCommand) ShipmentID() kernel.UUID { return c.shipmentID }
func (c RegisterShipmentCommand) Reference() string { return c.reference }
func (c RegisterShipmentCommand) Direction() shipment.Direction { return c.direction }
func (c RegisterShipmentCommand) Destination() kernel.Contact { return c.destination }
func (c RegisterShipmentCommand) Weight() kernel.Weight { return c.weight }
func (c RegisterShipmentCommand) CompanyName() string { return c.companyName }

func (c *RegisterShipmentCommand) setShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.shipmentID = id
	return nil
}

func (c *RegisterShipmentCommand) setReference(reference string) error {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return errs.NewValueIsRequiredError("reference")
	}
	c.reference = reference
	return nil
}

func (c *RegisterShipmentCommand) setDirection(direction string) error {
	d, err := shipment.ParseDirection(direction)
	if err != nil {
		return err
	}
	c.direction = d
	return nil
}
