package commands

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/complaint"
)

// CreateComplaintCommandHandler registers a complaint under the next number
// of the current year's register.
type CreateComplaintCommandHandler struct {
	uowFactory ComplaintUoWFactory
	now        func() time.Time
}

func NewCreateComplaintCommandHandler(uowFactory ComplaintUoWFactory) CreateComplaintCommandHandler {
	return CreateComplaintCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle returns the assigned complaint number.
func (h *CreateComplaintCommandHandler) Handle(ctx context.Context, cmd CreateComplaintCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	now := h.now()
	repo := uow.ComplaintRepository()

	number, err := repo.NextNumber(ctx, now.Year())
	if err != nil {
		return "", err
	}

	params := cmd.Params()
	params.Number = number

	c, err := complaint.NewComplaint(cmd.ComplaintID(), params, now)
	if err != nil {
		return "", err
	}

	if err = repo.Add(ctx, c); err != nil {
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	return number, nil
}
