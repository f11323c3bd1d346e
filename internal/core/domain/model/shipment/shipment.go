package shipment

import (
	"errors"
	"fmt"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

var (
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")

	// ErrScopeViolation is returned when a consignment is requested for a
	// shipment that is not outgoing.
	ErrScopeViolation = errors.New("consignment can only be created for outgoing shipments")

	// ErrDuplicateSubmission is returned when the shipment already holds a
	// tracking number.
	ErrDuplicateSubmission = errors.New("consignment already exists")
)

// TrackingNumberExistsError carries the tracking number that blocked a
// second submission.
type TrackingNumberExistsError struct {
	TrackingNumber string
}

func (e *TrackingNumberExistsError) Error() string {
	return fmt.Sprintf("%s for this shipment: %s", ErrDuplicateSubmission, e.TrackingNumber)
}

func (e *TrackingNumberExistsError) Unwrap() error {
	return ErrDuplicateSubmission
}

// Shipment is the aggregate root for a delivery document.
//
// Invariants:
//   - valid identifier and non-empty reference
//   - valid direction and a constructed destination contact
//   - trackingNumber, once set, never changes
type Shipment struct {
	id             kernel.UUID
	reference      string
	direction      Direction
	destination    kernel.Contact
	weight         kernel.Weight
	companyName    string
	trackingNumber string

	isConstructed bool
}

// NewShipment registers a shipment without a tracking number.
func NewShipment(
	id kernel.UUID,
	reference string,
	direction Direction,
	destination kernel.Contact,
	weight kernel.Weight,
	companyName string,
) (*Shipment, error) {
	s := &Shipment{
		weight:        weight,
		companyName:   strings.TrimSpace(companyName),
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setReference(reference),
		s.setDirection(direction),
		s.setDestination(destination),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreShipment rebuilds a persisted shipment, tracking number included.
func RestoreShipment(
	id kernel.UUID,
	reference string,
	direction Direction,
	destination kernel.Contact,
	weight kernel.Weight,
	companyName string,
	trackingNumber string,
) (*Shipment, error) {
	s, err := NewShipment(id, reference, direction, destination, weight, companyName)
	if err != nil {
		return nil, err
	}
	s.trackingNumber = strings.TrimSpace(trackingNumber)
	return s, nil
}

func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

func (s *Shipment) ID() kernel.UUID { return s.id }
func (s *Shipment) Reference() string { return s.reference }
func (s *Shipment) Direction() Direction { return s.direction }
func (s *Shipment) Destination() kernel.Contact { return s.destination }
func (s *Shipment) Weight() kernel.Weight { return s.weight }
func (s *Shipment) CompanyName() string { return s.companyName }
func (s *Shipment) TrackingNumber() string { return s.trackingNumber }

func (s *Shipment) HasTrackingNumber() bool {
	return s.trackingNumber != ""
}

// ValidateForSubmission checks, in order, that the shipment is outgoing and
// that it has no tracking number yet.
func (s *Shipment) ValidateForSubmission() error {
	if err := s.Validate(); err != nil {
		return err
	}
	if s.direction != Outgoing {
		return fmt.Errorf("%w: %s is %s", ErrScopeViolation, s.reference, s.direction)
	}
	if s.HasTrackingNumber() {
		return &TrackingNumberExistsError{TrackingNumber: s.trackingNumber}
	}
	return nil
}

// AssignTrackingNumber stores the courier tracking number. It fails when one
// is already stored.
func (s *Shipment) AssignTrackingNumber(trackingNumber string) error {
	trackingNumber = strings.TrimSpace(trackingNumber)
	if trackingNumber == "" {
		return errs.NewValueIsRequiredError("tracking number")
	}
	if s.HasTrackingNumber() {
		return &TrackingNumberExistsError{TrackingNumber: s.trackingNumber}
	}

	s.trackingNumber = trackingNumber
	return nil
}

func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shipment) setReference(reference string) error {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return errs.NewValueIsRequiredError("reference")
	}
	s.reference = reference
	return nil
}

func (s *Shipment) setDirection(direction Direction) error {
	if err := direction.Validate(); err != nil {
		return err
	}
	s.direction = direction
	return nil
}

func (s *Shipment) setDestination(destination kernel.Contact) error {
	if err := destination.Validate(); err != nil {
		return err
	}
	s.destination = destination
	return nil
}
