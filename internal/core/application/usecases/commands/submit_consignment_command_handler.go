package commands

import (
	"context"

	"logistics/internal/core/domain/model/consignment"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/ports"

	"go.uber.org/zap"
)

// NotePrefix starts the audit note appended after a successful booking.
const NotePrefix = "GDEX consignment created: "

// SubmitConsignmentCommandHandler books a shipment with the courier and
// stores the returned tracking number.
//
// Preconditions are checked before any network call, in this order: the
// shipment is outgoing, it has no tracking number, the carrier settings are
// complete, the receiver has a mobile number, a city and a postcode.
//
// The gateway is called exactly once. The tracking number is stored with a
// compare-and-set so that two concurrent submissions cannot both write one;
// the audit note is appended in the same transaction.
type SubmitConsignmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	settings   ports.CarrierSettingsProvider
	gateway    ports.ConsignmentGateway
	logger     *zap.Logger
}

func NewSubmitConsignmentCommandHandler(
	uowFactory ShipmentUoWFactory,
	settings ports.CarrierSettingsProvider,
	gateway ports.ConsignmentGateway,
	logger *zap.Logger,
) SubmitConsignmentCommandHandler {
	return SubmitConsignmentCommandHandler{
		uowFactory: uowFactory,
		settings:   settings,
		gateway:    gateway,
		logger:     logger.With(zap.String("component", "submit_consignment")),
	}
}

// Handle returns the tracking number assigned by the courier.
func (h *SubmitConsignmentCommandHandler) Handle(ctx context.Context, cmd SubmitConsignmentCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()

	s, err := uow.ShipmentRepository().Get(ctx, cmd.ShipmentID())
	if err != nil {
		return "", err
	}

	if err = s.ValidateForSubmission(); err != nil {
		return "", err
	}

	params, err := h.settings.CarrierSettings(ctx)
	if err != nil {
		return "", err
	}
	settings, err := consignment.NewSettings(params)
	if err != nil {
		return "", err
	}

	parcel, err := consignment.NewParcel(s)
	if err != nil {
		return "", err
	}

	trackingNumber, err := h.gateway.CreateConsignment(ctx, settings, []consignment.Parcel{parcel})
	if err != nil {
		h.logger.Warn("consignment request failed",
			zap.String("reference", s.Reference()),
			zap.Error(err))
		return "", err
	}

	if err = s.AssignTrackingNumber(trackingNumber); err != nil {
		return "", err
	}

	if err = h.store(ctx, uow, s); err != nil {
		// The courier holds a booking this service does not know about.
		h.logger.Error("consignment created but not stored",
			zap.String("reference", s.Reference()),
			zap.String("tracking_number", trackingNumber),
			zap.Error(err))
		return "", err
	}

	h.logger.Info("consignment created",
		zap.String("reference", s.Reference()),
		zap.String("tracking_number", trackingNumber))

	return trackingNumber, nil
}

func (h *SubmitConsignmentCommandHandler) store(ctx context.Context, uow ShipmentUoW, s *shipment.Shipment) error {
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.ShipmentRepository().AssignTrackingNumber(ctx, s); err != nil {
		return err
	}

	if err := uow.NoteRepository().Append(ctx, s.ID(), NotePrefix+s.TrackingNumber()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
