package ports

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/complaint"
	"logistics/internal/core/domain/model/kernel"
)

// ComplaintRepository persists complaint aggregates with their return lines.
type ComplaintRepository interface {
	// NextNumber draws the next register number for year.
	NextNumber(ctx context.Context, year int) (string, error)

	Add(ctx context.Context, aggregate *complaint.Complaint) error
	Update(ctx context.Context, aggregate *complaint.Complaint) error
	Get(ctx context.Context, id kernel.UUID) (*complaint.Complaint, error)

	// Find returns the complaints matching filter ordered by reported date
	// and number.
	Find(ctx context.Context, filter complaint.Filter) ([]*complaint.Complaint, error)

	// CountByStatus counts complaints reported within [from, to] per status.
	// Statuses without complaints are absent from the result.
	CountByStatus(ctx context.Context, from, to time.Time) (map[complaint.Status]int, error)
}
