package commands

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"logistics/internal/core/domain/model/complaint"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrSendComplaintReportCommandIsNotConstructed = errors.New(
	"SendComplaintReportCommand must be created via NewSendComplaintReportCommand constructor",
)

// ReportMode selects which criteria of the filter apply.
type ReportMode string

const (
	// ReportAll uses the date range only.
	ReportAll ReportMode = "all"
	// ReportFiltered applies every criterion of the filter.
	ReportFiltered ReportMode = "filtered"
)

func (m ReportMode) subjectPrefix() string {
	if m == ReportAll {
		return "[ALL Complaints]"
	}
	return "[Filtered Complaints]"
}

type SendComplaintReportCommand struct { //nolint:recvcheck //using for validation
	filter    complaint.Filter
	mode      ReportMode
	recipient string

	guard guard.ConstructorGuard
}

func NewSendComplaintReportCommand(filter complaint.Filter, mode ReportMode, recipient string) (SendComplaintReportCommand, error) {
	cmd := SendComplaintReportCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setMode(mode),
		cmd.setFilter(filter),
		cmd.setRecipient(recipient),
	); err != nil {
		return SendComplaintReportCommand{}, err
	}

	return cmd, nil
}

func (c SendComplaintReportCommand) Validate() error {
	return c.guard.Validate(ErrSendComplaintReportCommandIsNotConstructed)
}

func (c SendComplaintReportCommand) Mode() ReportMode { return c.mode }
func (c SendComplaintReportCommand) Recipient() string { return c.recipient }

// Filter returns the effective filter for the mode.
func (c SendComplaintReportCommand) Filter() complaint.Filter {
	if c.mode == ReportAll {
		return c.filter.OnlyDates()
	}
	return c.filter
}

func (c *SendComplaintReportCommand) setMode(mode ReportMode) error {
	switch mode {
	case "":
		c.mode = ReportAll
	case ReportAll, ReportFiltered:
		c.mode = mode
	default:
		return errs.NewValueIsInvalidErrorWithCause("report mode", fmt.Errorf("%q is neither all nor filtered", string(mode)))
	}
	return nil
}

func (c *SendComplaintReportCommand) setFilter(filter complaint.Filter) error {
	if c.mode == ReportAll {
		filter = filter.OnlyDates()
	}
	if err := filter.Validate(); err != nil {
		return err
	}
	c.filter = filter
	return nil
}

func (c *SendComplaintReportCommand) setRecipient(recipient string) error {
	recipient = strings.TrimSpace(recipient)
	if recipient == "" {
		return errs.NewValueIsRequiredError("recipient")
	}
	if _, err := mail.ParseAddress(recipient); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("recipient", err)
	}
	c.recipient = recipient
	return nil
}
