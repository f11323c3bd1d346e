package complaint

import (
	"fmt"
	"strings"

	"logistics/internal/pkg/errs"
)

// Status is the handling state of a complaint.
type Status string

const (
	StatusNew           Status = "new"
	StatusInProgress    Status = "in_progress"
	StatusWaitingReturn Status = "waiting_return"
	StatusClosed        Status = "closed"
	StatusCancelled     Status = "cancelled"
)

var statusLabels = map[Status]string{
	StatusNew:           "New",
	StatusInProgress:    "In Progress",
	StatusWaitingReturn: "Waiting Return Stock",
	StatusClosed:        "Closed",
	StatusCancelled:     "Cancelled",
}

// Statuses lists every valid status in display order.
func Statuses() []Status {
	return []Status{StatusNew, StatusInProgress, StatusWaitingReturn, StatusClosed, StatusCancelled}
}

func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToLower(strings.TrimSpace(s)))
	if err := st.Validate(); err != nil {
		return "", err
	}
	return st, nil
}

func (s Status) Validate() error {
	if _, ok := statusLabels[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a complaint status", string(s)))
	}
	return nil
}

// Label is the human readable name used in reports.
func (s Status) Label() string {
	if l, ok := statusLabels[s]; ok {
		return l
	}
	return string(s)
}
