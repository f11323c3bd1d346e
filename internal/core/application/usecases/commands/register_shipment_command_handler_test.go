package commands_test

import (
	"context"

	"errors"
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRegisterCommand(t *testing.T) commands.RegisterShipmentCommand {
	t.Helper()
	cmd, err := commands.NewRegisterShipmentCommand(
		kernel.NewUUID(), "WH/OUT/00001", "outgoing",
		kernel.ContactParams{Mobile: "012", City: "Ipoh", Postcode: "30000"}, "1.2", "ACME",
	)
	require.NoError(t, err)
	return cmd
}

func TestRegisterShipmentCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	cmd := newRegisterCommand(t)

	repo := new(MockShipmentRepository)
	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*shipment.Shipment")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterShipmentCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestRegisterShipmentCommandHandler_Handle_AddError(t *testing.T) {
	ctx := context.Background()
	cmd := newRegisterCommand(t)

	repo := new(MockShipmentRepository)
	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.Anything).Return(errors.New("duplicate key")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterShipmentCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestRegisterShipmentCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := context.Background()
	cmd := newRegisterCommand(t)

	uow := new(MockShipmentUoW)
	factory := new(MockShipmentUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewRegisterShipmentCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
}

func TestRegisterShipmentCommandHandler_Handle_NotConstructed(t *testing.T) {
	h := commands.NewRegisterShipmentCommandHandler(new(MockShipmentUoWFactory))

	require.ErrorIs(t, h.Handle(context.Background(), commands.RegisterShipmentCommand{}),
		commands.ErrRegisterShipmentCommandIsNotConstructed)
}
