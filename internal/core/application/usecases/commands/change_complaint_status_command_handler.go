package commands

import (
	"context"
)

type ChangeComplaintStatusCommandHandler struct {
	uowFactory ComplaintUoWFactory
}

func NewChangeComplaintStatusCommandHandler(uowFactory ComplaintUoWFactory) ChangeComplaintStatusCommandHandler {
	return ChangeComplaintStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *ChangeComplaintStatusCommandHandler) Handle(ctx context.Context, cmd ChangeComplaintStatusCommand) error {
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

	repo := uow.ComplaintRepository()
	c, err := repo.Get(ctx, cmd.ComplaintID())
	if err != nil {
		return err
	}

	if err = c.ChangeStatus(cmd.Status()); err != nil {
		return err
	}

	if err = repo.Update(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
