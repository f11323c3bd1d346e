package queries

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/complaint"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrListComplaintsQueryIsNotConstructed = errors.New(
	"ListComplaintsQuery must be created via NewListComplaintsQuery constructor",
)

// ListComplaintsQuery lists the register entries reported within an
// inclusive date range.
type ListComplaintsQuery struct {
	from time.Time
	to   time.Time

	guard guard.ConstructorGuard
}

func NewListComplaintsQuery(from, to time.Time) (ListComplaintsQuery, error) {
	if err := complaint.DateRangeFilter(from, to).Validate(); err != nil {
		return ListComplaintsQuery{}, err
	}

	return ListComplaintsQuery{
		from:  from,
		to:    to,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q ListComplaintsQuery) From() time.Time { return q.from }
func (q ListComplaintsQuery) To() time.Time { return q.to }

func (q ListComplaintsQuery) Validate() error {
	return q.guard.Validate(ErrListComplaintsQueryIsNotConstructed)
}

type ListComplaintsQueryResponse struct {
	ID              kernel.UUID
	Number          string
	DateReported    time.Time
	Channel         string
	ComplaintType   string
	CustomerName    string
	Department      string
	Status          string
	ReturnInvolved  bool
	ReturnLineCount int
	ReturnTotalQty  decimal.Decimal
}
