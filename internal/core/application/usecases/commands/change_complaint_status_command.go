package commands

import (
	"errors"

	"logistics/internal/core/domain/model/complaint"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrChangeComplaintStatusCommandIsNotConstructed = errors.New(
	"ChangeComplaintStatusCommand must be created via NewChangeComplaintStatusCommand constructor",
)

type ChangeComplaintStatusCommand struct { //nolint:recvcheck //using for validation
	complaintID kernel.UUID
	status      complaint.Status

	guard guard.ConstructorGuard
}

func NewChangeComplaintStatusCommand(complaintID kernel.UUID, status string) (ChangeComplaintStatusCommand, error) {
	cmd := ChangeComplaintStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setComplaintID(complaintID),
		cmd.setStatus(status),
	); err != nil {
		return ChangeComplaintStatusCommand{}, err
	}

	return cmd, nil
}

func (c ChangeComplaintStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeComplaintStatusCommandIsNotConstructed)
}

func (c ChangeComplaintStatusCommand) ComplaintID() kernel.UUID {
	return c.complaintID
}

func (c ChangeComplaintStatusCommand) Status() complaint.Status {
	return c.status
}

func (c *ChangeComplaintStatusCommand) setComplaintID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.complaintID = id
	return nil
}

func (c *ChangeComplaintStatusCommand) setStatus(code string) error {
	s, err := complaint.ParseStatus(code)
	if err != nil {
		return err
	}
	c.status = s
	return nil
}
