package http

import (
	"net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

type Contact struct {
	Name        string `json:"name"`
	Mobile      string `json:"mobile"`
	Email       string `json:"email" validate:"omitempty,email"`
	Street      string `json:"street"`
	Street2     string `json:"street2"`
	City        string `json:"city"`
	Postcode    string `json:"postcode"`
	State       string `json:"state"`
	CountryCode string `json:"countryCode" validate:"omitempty,len=2"`
}

func (c Contact) params() kernel.ContactParams {
	return kernel.ContactParams{
		Name:        c.Name,
		Mobile:      c.Mobile,
		Email:       c.Email,
		Street:      c.Street,
		Street2:     c.Street2,
		City:        c.City,
		Postcode:    c.Postcode,
		State:       c.State,
		CountryCode: c.CountryCode,
	}
}

func contactFromParams(p kernel.ContactParams) Contact {
	return Contact{
		Name:        p.Name,
		Mobile:      p.Mobile,
		Email:       p.Email,
		Street:      p.Street,
		Street2:     p.Street2,
		City:        p.City,
		Postcode:    p.Postcode,
		State:       p.State,
		CountryCode: p.CountryCode,
	}
}

type NewShipment struct {
	Reference   string  `json:"reference" validate:"required"`
	Direction   string  `json:"direction" validate:"required,oneof=incoming outgoing internal"`
	Destination Contact `json:"destination"`
	Weight      string  `json:"weight"`
	CompanyName string  `json:"companyName"`
}

type Shipment struct {
	ID             string   `json:"id"`
	Reference      string   `json:"reference"`
	Direction      string   `json:"direction"`
	Destination    Contact  `json:"destination"`
	Weight         string   `json:"weight"`
	CompanyName    string   `json:"companyName"`
	TrackingNumber string   `json:"trackingNumber"`
	Notes          []string `json:"notes"`
}

type Created struct {
	ID string `json:"id"`
}

type Consignment struct {
	TrackingNumber string `json:"trackingNumber"`
}

// RegisterShipment handles POST /api/v1/shipments.
func (s *Server) RegisterShipment(ctx echo.Context) error {
	var req NewShipment
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}
	if err := ctx.Validate(&req); err != nil {
		return badRequest(ctx, err)
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewRegisterShipmentCommand(
		id,
		req.Reference,
		req.Direction,
		req.Destination.params(),
		req.Weight,
		req.CompanyName,
	)
	if err != nil {
		return s.fail(ctx, err, http.StatusBadRequest)
	}

	if err = s.handlers.RegisterShipment.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, http.StatusBadRequest)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: id.String()})
}

// GetShipment handles GET /api/v1/shipments/:id.
func (s *Server) GetShipment(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return s.fail(ctx, err, http.StatusBadRequest)
	}

	query, err := queries.NewGetShipmentQuery(id)
	if err != nil {
		return s.fail(ctx, err, http.StatusBadRequest)
	}

	resp, err := s.handlers.GetShipment.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, http.StatusBadRequest)
	}

	return ctx.JSON(http.StatusOK, Shipment{
		ID:             resp.ID.String(),
		Reference:      resp.Reference,
		Direction:      resp.Direction,
		Destination:    contactFromParams(resp.Destination),
		Weight:         resp.Weight,
		CompanyName:    resp.CompanyName,
		TrackingNumber: resp.TrackingNumber,
		Notes:          resp.Notes,
	})
}

// SubmitConsignment handles POST /api/v1/shipments/:id/consignment.
func (s *Server) SubmitConsignment(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return s.fail(ctx, err, http.StatusBadRequest)
	}

	cmd, err := commands.NewSubmitConsignmentCommand(id)
	if err != nil {
		return s.fail(ctx, err, http.StatusBadRequest)
	}

	cn, err := s.handlers.SubmitConsignment.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err, http.StatusUnprocessableEntity)
	}

	return ctx.JSON(http.StatusCreated, Consignment{TrackingNumber: cn})
}

type CarrierSettings struct {
	APIToken        string `json:"apiToken" validate:"required"`
	AccountNo       string `json:"accountNo" validate:"required"`
	SubscriptionKey string `json:"subscriptionKey" validate:"required"`
	UseSandbox      *bool  `json:"useSandbox"`
}

// UpdateCarrierSettings handles PUT /api/v1/settings/gdex. An omitted
// useSandbox keeps the sandbox endpoint.
func (s *Server) UpdateCarrierSettings(ctx echo.Context) error {
	var req CarrierSettings
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}
	if err := ctx.Validate(&req); err != nil {
		return badRequest(ctx, err)
	}

	useSandbox := true
	if req.UseSandbox != nil {
		useSandbox = *req.UseSandbox
	}

	cmd := commands.NewUpdateCarrierSettingsCommand(req.APIToken, req.AccountNo, req.SubscriptionKey, useSandbox)
	if err := s.handlers.UpdateCarrierSettings.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, http.StatusBadRequest)
	}

	return ctx.NoContent(http.StatusNoContent)
}
