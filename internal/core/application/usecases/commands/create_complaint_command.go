package commands

import (
	"errors"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/complaint"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateComplaintCommandIsNotConstructed = errors.New(
	"CreateComplaintCommand must be created via NewCreateComplaintCommand constructor",
)

// ReturnLineInput is a returned product as entered by staff.
type ReturnLineInput struct {
	Product           string
	Lot               string
	QuantityPurchased decimal.Decimal
	QuantityReturned  decimal.Decimal
	UoM               string
	Reason            string
	Remark            string
}

// CreateComplaintInput carries the raw complaint form. Enumerations are
// given as codes.
type CreateComplaintInput struct {
	DateReported     time.Time
	Channel          string
	Type             string
	SubIssue         string
	CustomerName     string
	CustomerPhone    string
	CustomerEmail    string
	Department       string
	ChannelTags      []string
	SaleOrderRef     string
	InvoiceRef       string
	DeliveryOrderRef string
	Description      string
	InternalNote     string
	Resolution       string
	ReturnInvolved   bool
	ReturnLines      []ReturnLineInput
	Responsible      string
}

type CreateComplaintCommand struct { //nolint:recvcheck //using for validation
	complaintID kernel.UUID
	params      complaint.Params

	guard guard.ConstructorGuard
}

// NewCreateComplaintCommand parses the form. A zero reported date means today.
func NewCreateComplaintCommand(complaintID kernel.UUID, in CreateComplaintInput) (CreateComplaintCommand, error) {
	cmd := CreateComplaintCommand{
		params: complaint.Params{
			DateReported: in.DateReported,
			SubIssue:     in.SubIssue,
			Customer: complaint.Customer{
				Name:  in.CustomerName,
				Phone: in.CustomerPhone,
				Email: in.CustomerEmail,
			},
			Department:       in.Department,
			ChannelTags:      in.ChannelTags,
			SaleOrderRef:     in.SaleOrderRef,
			InvoiceRef:       in.InvoiceRef,
			DeliveryOrderRef: in.DeliveryOrderRef,
			Description:      in.Description,
			InternalNote:     in.InternalNote,
			Resolution:       in.Resolution,
			ReturnInvolved:   in.ReturnInvolved,
			Responsible:      in.Responsible,
		},
		guard: guard.NewConstructorGuard(),
	}
	if cmd.params.DateReported.IsZero() {
		cmd.params.DateReported = time.Now()
	}

	if err := errors.Join(
		cmd.setComplaintID(complaintID),
		cmd.setChannel(in.Channel),
		cmd.setType(in.Type),
		cmd.setReturnLines(in.ReturnLines),
	); err != nil {
		return CreateComplaintCommand{}, err
	}

	return cmd, nil
}

func (c CreateComplaintCommand) Validate() error {
	return c.guard.Validate(ErrCreateComplaintCommandIsNotConstructed)
}

func (c CreateComplaintCommand) ComplaintID() kernel.UUID {
	return c.complaintID
}

// Params returns the complaint fields without a number.
func (c CreateComplaintCommand) Params() complaint.Params {
	return c.params
}

func (c *CreateComplaintCommand) setComplaintID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.complaintID = id
	return nil
}

func (c *CreateComplaintCommand) setChannel(code string) error {
	ch, err := complaint.ParseChannel(code)
	if err != nil {
		return err
	}
	c.params.Channel = ch
	return nil
}

func (c *CreateComplaintCommand) setType(code string) error {
	t, err := complaint.ParseType(code)
	if err != nil {
		return err
	}
	c.params.Type = t
	return nil
}

func (c *CreateComplaintCommand) setReturnLines(in []ReturnLineInput) error {
	lines := make([]complaint.ReturnLine, 0, len(in))
	for i, l := range in {
		reason, err := complaint.ParseReturnReason(l.Reason)
		if err != nil {
			return fmt.Errorf("return line %d: %w", i+1, err)
		}
		line, err := complaint.NewReturnLine(l.Product, l.Lot, l.QuantityPurchased, l.QuantityReturned, l.UoM, reason, l.Remark)
		if err != nil {
			return fmt.Errorf("return line %d: %w", i+1, err)
		}
		lines = append(lines, line)
	}
	c.params.ReturnLines = lines
	return nil
}
