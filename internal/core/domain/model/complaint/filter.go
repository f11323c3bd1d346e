package complaint

import (
	"fmt"
	"time"

	"logistics/internal/pkg/errs"
)

// Filter selects complaints for a report. The date range is inclusive and
// always applies; every other field narrows the selection only when set.
type Filter struct {
	DateFrom           time.Time
	DateTo             time.Time
	Departments        []string
	Type               Type
	SubIssue           string
	ReturnInvolvedOnly bool
	ChannelTags        []string
	Status             Status
}

// DateRangeFilter selects every complaint reported within [from, to].
func DateRangeFilter(from, to time.Time) Filter {
	return Filter{DateFrom: from, DateTo: to}
}

// OnlyDates drops every criterion but the date range.
func (f Filter) OnlyDates() Filter {
	return DateRangeFilter(f.DateFrom, f.DateTo)
}

func (f Filter) Validate() error {
	if f.DateFrom.IsZero() {
		return errs.NewValueIsRequiredError("date from")
	}
	if f.DateTo.IsZero() {
		return errs.NewValueIsRequiredError("date to")
	}
	if f.DateTo.Before(f.DateFrom) {
		return errs.NewValueIsInvalidErrorWithCause("date range",
			fmt.Errorf("%s is after %s", f.DateFrom.Format(time.DateOnly), f.DateTo.Format(time.DateOnly)))
	}
	if f.Status != "" {
		if err := f.Status.Validate(); err != nil {
			return err
		}
	}
	if f.SubIssue != "" && !f.Type.HasSubIssue() {
		return errs.NewValueIsInvalidErrorWithCause("sub issue",
			fmt.Errorf("complaint type %q has no sub issues", string(f.Type)))
	}
	return nil
}
