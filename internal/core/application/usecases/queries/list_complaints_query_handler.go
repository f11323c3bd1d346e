package queries

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ListComplaintsQueryHandler struct {
	db *gorm.DB
}

func NewListComplaintsQueryHandler(db *gorm.DB) ListComplaintsQueryHandler {
	return ListComplaintsQueryHandler{db: db}
}

// Handle returns complaints ordered by reported date, then number, with the
// return line count and the total returned quantity of each.
func (h ListComplaintsQueryHandler) Handle(
	ctx context.Context,
	query ListComplaintsQuery,
) ([]ListComplaintsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	complaints := make([]ListComplaintsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			c.id,
			c.number,
			c.date_reported,
			c.channel,
			c.complaint_type,
			c.customer_name,
			c.department,
			c.status,
			c.return_involved,
			COUNT(l.id),
			COALESCE(SUM(l.quantity_returned), 0)
		FROM complaints c
		LEFT JOIN complaint_return_lines l ON l.complaint_id = c.id
		WHERE c.date_reported BETWEEN ? AND ?
		GROUP BY c.id
		ORDER BY c.date_reported, c.number
	`, query.From().Format(time.DateOnly), query.To().Format(time.DateOnly)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp ListComplaintsQueryResponse
		var id uuid.UUID
		var total decimal.Decimal

		err = rows.Scan(
			&id,
			&resp.Number,
			&resp.DateReported,
			&resp.Channel,
			&resp.ComplaintType,
			&resp.CustomerName,
			&resp.Department,
			&resp.Status,
			&resp.ReturnInvolved,
			&resp.ReturnLineCount,
			&total,
		)
		if err != nil {
			return nil, err
		}

		complaintID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = complaintID
		resp.ReturnTotalQty = total
		complaints = append(complaints, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return complaints, nil
}
