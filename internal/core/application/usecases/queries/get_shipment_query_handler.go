package queries

import (
	"context"
	"database/sql"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetShipmentQueryHandler struct {
	db *gorm.DB
}

func NewGetShipmentQueryHandler(db *gorm.DB) GetShipmentQueryHandler {
	return GetShipmentQueryHandler{db: db}
}

// Handle returns errs.ObjectNotFoundError when the shipment does not exist.
// Notes come oldest first.
func (h GetShipmentQueryHandler) Handle(ctx context.Context, query GetShipmentQuery) (GetShipmentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetShipmentQueryResponse{}, err
	}

	var resp GetShipmentQueryResponse
	var id uuid.UUID
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			reference,
			direction,
			COALESCE(destination_name, ''),
			COALESCE(destination_mobile, ''),
			COALESCE(destination_email, ''),
			COALESCE(destination_street, ''),
			COALESCE(destination_street2, ''),
			COALESCE(destination_city, ''),
			COALESCE(destination_postcode, ''),
			COALESCE(destination_state, ''),
			COALESCE(destination_country_code, ''),
			weight,
			company_name,
			tracking_number
		FROM shipments
		WHERE id = ?
	`, query.ShipmentID().Bytes()).Row()

	err := row.Scan(
		&id,
		&resp.Reference,
		&resp.Direction,
		&resp.Destination.Name,
		&resp.Destination.Mobile,
		&resp.Destination.Email,
		&resp.Destination.Street,
		&resp.Destination.Street2,
		&resp.Destination.City,
		&resp.Destination.Postcode,
		&resp.Destination.State,
		&resp.Destination.CountryCode,
		&resp.Weight,
		&resp.CompanyName,
		&resp.TrackingNumber,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetShipmentQueryResponse{}, errs.NewObjectNotFoundError("shipment", query.ShipmentID().String())
		}
		return GetShipmentQueryResponse{}, err
	}

	resp.ID, err = kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetShipmentQueryResponse{}, err
	}

	resp.Notes = make([]string, 0)
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT body
		FROM shipment_notes
		WHERE shipment_id = ?
		ORDER BY id
	`, id).Rows()
	if err != nil {
		return GetShipmentQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var body string
		if err = rows.Scan(&body); err != nil {
			return GetShipmentQueryResponse{}, err
		}
		resp.Notes = append(resp.Notes, body)
	}

	if err = rows.Err(); err != nil {
		return GetShipmentQueryResponse{}, err
	}

	return resp, nil
}
