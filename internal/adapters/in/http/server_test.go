package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpin "logistics/internal/adapters/in/http"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/complaint"
	"logistics/internal/core/domain/model/consignment"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockRegisterShipment struct{ mock.Mock }

func (m *MockRegisterShipment) Handle(ctx context.Context, cmd commands.RegisterShipmentCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockSubmitConsignment struct{ mock.Mock }

func (m *MockSubmitConsignment) Handle(ctx context.Context, cmd commands.SubmitConsignmentCommand) (string, error) {
	args := m.Called(ctx, cmd)
	return args.String(0), args.Error(1)
}

type MockUpdateCarrierSettings struct{ mock.Mock }

func (m *MockUpdateCarrierSettings) Handle(ctx context.Context, cmd commands.UpdateCarrierSettingsCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockCreateComplaint struct{ mock.Mock }

func (m *MockCreateComplaint) Handle(ctx context.Context, cmd commands.CreateComplaintCommand) (string, error) {
	args := m.Called(ctx, cmd)
	return args.String(0), args.Error(1)
}

type MockChangeComplaintStatus struct{ mock.Mock }

func (m *MockChangeComplaintStatus) Handle(ctx context.Context, cmd commands.ChangeComplaintStatusCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockSendComplaintReport struct{ mock.Mock }

func (m *MockSendComplaintReport) Handle(ctx context.Context, cmd commands.SendComplaintReportCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockGetShipment struct{ mock.Mock }

func (m *MockGetShipment) Handle(ctx context.Context, query queries.GetShipmentQuery) (queries.GetShipmentQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.GetShipmentQueryResponse), args.Error(1)
}

type MockListComplaints struct{ mock.Mock }

func (m *MockListComplaints) Handle(ctx context.Context, query queries.ListComplaintsQuery) ([]queries.ListComplaintsQueryResponse, error) {
	args := m.Called(ctx, query)
	list, _ := args.Get(0).([]queries.ListComplaintsQueryResponse)
	return list, args.Error(1)
}

type fixture struct {
	e                     *echo.Echo
	registerShipment      *MockRegisterShipment
	submitConsignment     *MockSubmitConsignment
	updateCarrierSettings *MockUpdateCarrierSettings
	createComplaint       *MockCreateComplaint
	changeComplaintStatus *MockChangeComplaintStatus
	sendComplaintReport   *MockSendComplaintReport
	getShipment           *MockGetShipment
	listComplaints        *MockListComplaints
}

func newFixture() *fixture {
	f := &fixture{
		e:                     echo.New(),
		registerShipment:      new(MockRegisterShipment),
		submitConsignment:     new(MockSubmitConsignment),
		updateCarrierSettings: new(MockUpdateCarrierSettings),
		createComplaint:       new(MockCreateComplaint),
		changeComplaintStatus: new(MockChangeComplaintStatus),
		sendComplaintReport:   new(MockSendComplaintReport),
		getShipment:           new(MockGetShipment),
		listComplaints:        new(MockListComplaints),
	}

	httpin.NewServer(httpin.Handlers{
		RegisterShipment:      f.registerShipment,
		SubmitConsignment:     f.submitConsignment,
		UpdateCarrierSettings: f.updateCarrierSettings,
		CreateComplaint:       f.createComplaint,
		ChangeComplaintStatus: f.changeComplaintStatus,
		SendComplaintReport:   f.sendComplaintReport,
		GetShipment:           f.getShipment,
		ListComplaints:        f.listComplaints,
	}, zap.NewNop()).Register(f.e)

	return f
}

func (f *fixture) do(method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestHealth(t *testing.T) {
	rec := newFixture().do(http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestSubmitConsignment_Created(t *testing.T) {
	f := newFixture()
	id := kernel.NewUUID()
	f.submitConsignment.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.SubmitConsignmentCommand) bool {
		return cmd.ShipmentID().IsEqual(id)
	})).Return("GDX123", nil).Once()

	rec := f.do(http.MethodPost, "/api/v1/shipments/"+id.String()+"/consignment", "")

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"trackingNumber":"GDX123"}`, rec.Body.String())
	f.submitConsignment.AssertExpectations(t)
}

func TestSubmitConsignment_ErrorMapping(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want int
	}{
		{name: "scope violation", err: shipment.ErrScopeViolation, want: http.StatusConflict},
		{name: "duplicate", err: &shipment.TrackingNumberExistsError{TrackingNumber: "GDX1"}, want: http.StatusConflict},
		{name: "missing configuration", err: &consignment.MissingConfigurationError{Keys: []string{consignment.KeyAPIToken}}, want: http.StatusPreconditionFailed},
		{name: "missing field", err: errs.NewValueIsRequiredError("mobile"), want: http.StatusUnprocessableEntity},
		{name: "not found", err: errs.NewObjectNotFoundError("shipment", "x"), want: http.StatusNotFound},
		{name: "unreachable", err: consignment.NewServiceUnreachableError(errors.New("dial tcp")), want: http.StatusServiceUnavailable},
		{name: "remote", err: &consignment.RemoteError{StatusCode: 500, Body: "boom"}, want: http.StatusBadGateway},
		{name: "malformed", err: consignment.NewMalformedResponseError("<html>", errors.New("invalid character")), want: http.StatusBadGateway},
		{name: "no tracking number", err: &consignment.TrackingNumberNotFoundError{Body: "{}"}, want: http.StatusBadGateway},
		{name: "unexpected", err: errors.New("disk full"), want: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture()
			f.submitConsignment.On("Handle", mock.Anything, mock.Anything).Return("", tc.err).Once()

			rec := f.do(http.MethodPost, "/api/v1/shipments/"+kernel.NewUUID().String()+"/consignment", "")

			assert.Equal(t, tc.want, rec.Code)
			body := decode[httpin.Error](t, rec)
			assert.Equal(t, tc.want, body.Code)
			if tc.want == http.StatusInternalServerError {
				assert.NotContains(t, body.Message, "disk full")
			}
		})
	}
}

func TestSubmitConsignment_BadID(t *testing.T) {
	f := newFixture()

	rec := f.do(http.MethodPost, "/api/v1/shipments/not-a-uuid/consignment", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	f.submitConsignment.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestRegisterShipment(t *testing.T) {
	f := newFixture()
	f.registerShipment.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.RegisterShipmentCommand) bool {
		return cmd.Reference() == "WH/OUT/00001" &&
			cmd.Direction() == shipment.Outgoing &&
			cmd.Destination().Mobile() == "0123" &&
			cmd.Weight().Raw() == "2.5"
	})).Return(nil).Once()

	rec := f.do(http.MethodPost, "/api/v1/shipments", `{
		"reference": "WH/OUT/00001",
		"direction": "outgoing",
		"destination": {"mobile": "0123", "city": "Ipoh", "postcode": "30000"},
		"weight": "2.5"
	}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	created := decode[httpin.Created](t, rec)
	_, err := kernel.UUIDFromString(created.ID)
	assert.NoError(t, err)
	f.registerShipment.AssertExpectations(t)
}

func TestRegisterShipment_Invalid(t *testing.T) {
	testCases := map[string]string{
		"not json":          `{`,
		"missing reference": `{"direction":"outgoing"}`,
		"bad direction":     `{"reference":"R","direction":"sideways"}`,
		"bad email":         `{"reference":"R","direction":"outgoing","destination":{"email":"nope"}}`,
	}

	for name, body := range testCases {
		t.Run(name, func(t *testing.T) {
			f := newFixture()

			rec := f.do(http.MethodPost, "/api/v1/shipments", body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			f.registerShipment.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
		})
	}
}

func TestGetShipment(t *testing.T) {
	f := newFixture()
	id := kernel.NewUUID()
	f.getShipment.On("Handle", mock.Anything, mock.Anything).Return(queries.GetShipmentQueryResponse{
		ID:             id,
		Reference:      "WH/OUT/00001",
		Direction:      "outgoing",
		Destination:    kernel.ContactParams{Mobile: "0123", City: "Ipoh"},
		Weight:         "2",
		TrackingNumber: "GDX1",
		Notes:          []string{"GDEX consignment created: GDX1"},
	}, nil).Once()

	rec := f.do(http.MethodGet, "/api/v1/shipments/"+id.String(), "")

	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[httpin.Shipment](t, rec)
	assert.Equal(t, id.String(), got.ID)
	assert.Equal(t, "0123", got.Destination.Mobile)
	assert.Equal(t, "GDX1", got.TrackingNumber)
	assert.Equal(t, []string{"GDEX consignment created: GDX1"}, got.Notes)
}

func TestGetShipment_NotFound(t *testing.T) {
	f := newFixture()
	f.getShipment.On("Handle", mock.Anything, mock.Anything).
		Return(queries.GetShipmentQueryResponse{}, errs.NewObjectNotFoundError("shipment", "x")).Once()

	rec := f.do(http.MethodGet, "/api/v1/shipments/"+kernel.NewUUID().String(), "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateCarrierSettings(t *testing.T) {
	testCases := []struct {
		name        string
		body        string
		wantSandbox string
	}{
		{name: "sandbox by default", body: `{"apiToken":"t","accountNo":"a","subscriptionKey":"s"}`, wantSandbox: "True"},
		{name: "production", body: `{"apiToken":"t","accountNo":"a","subscriptionKey":"s","useSandbox":false}`, wantSandbox: "False"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture()
			f.updateCarrierSettings.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.UpdateCarrierSettingsCommand) bool {
				return cmd.Value(consignment.KeyUseSandbox) == tc.wantSandbox &&
					cmd.Value(consignment.KeyAPIToken) == "t"
			})).Return(nil).Once()

			rec := f.do(http.MethodPut, "/api/v1/settings/gdex", tc.body)

			assert.Equal(t, http.StatusNoContent, rec.Code)
			f.updateCarrierSettings.AssertExpectations(t)
		})
	}
}

func TestUpdateCarrierSettings_MissingCredential(t *testing.T) {
	f := newFixture()

	rec := f.do(http.MethodPut, "/api/v1/settings/gdex", `{"apiToken":"t","accountNo":"a"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	f.updateCarrierSettings.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestCreateComplaint(t *testing.T) {
	f := newFixture()
	f.createComplaint.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CreateComplaintCommand) bool {
		p := cmd.Params()
		return p.Customer.Name == "Aisyah" &&
			p.Channel == complaint.ChannelShopee &&
			p.Type == complaint.TypeProductQuality &&
			p.DateReported.Equal(time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)) &&
			len(p.ReturnLines) == 1 &&
			p.ReturnLines[0].QuantityReturned.Equal(decimal.NewFromInt(2))
	})).Return("CC/2025/00007", nil).Once()

	rec := f.do(http.MethodPost, "/api/v1/complaints", `{
		"dateReported": "2025-03-03",
		"channel": "shopee",
		"complaintType": "product_quality",
		"customerName": "Aisyah",
		"returnInvolved": true,
		"returnLines": [{"product": "Brake Pad", "quantityPurchased": 4, "quantityReturned": "2", "reason": "damage"}]
	}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	created := decode[httpin.CreatedComplaint](t, rec)
	assert.Equal(t, "CC/2025/00007", created.Number)
	f.createComplaint.AssertExpectations(t)
}

func TestCreateComplaint_Invalid(t *testing.T) {
	testCases := map[string]string{
		"missing customer":     `{"channel":"phone"}`,
		"bad date":             `{"customerName":"A","dateReported":"03/03/2025"}`,
		"line without product": `{"customerName":"A","returnLines":[{"quantityReturned":1}]}`,
		"unknown channel":      `{"customerName":"A","channel":"fax"}`,
		"unknown reason":       `{"customerName":"A","returnLines":[{"product":"P","reason":"lost"}]}`,
	}

	for name, body := range testCases {
		t.Run(name, func(t *testing.T) {
			f := newFixture()

			rec := f.do(http.MethodPost, "/api/v1/complaints", body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			f.createComplaint.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
		})
	}
}

func TestListComplaints(t *testing.T) {
	f := newFixture()
	id := kernel.NewUUID()
	f.listComplaints.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.ListComplaintsQuery) bool {
		return q.From().Format(time.DateOnly) == "2025-03-01" && q.To().Format(time.DateOnly) == "2025-03-31"
	})).Return([]queries.ListComplaintsQueryResponse{{
		ID:              id,
		Number:          "CC/2025/00001",
		DateReported:    time.Date(2025, time.March, 2, 0, 0, 0, 0, time.UTC),
		Status:          "new",
		ReturnLineCount: 1,
		ReturnTotalQty:  decimal.RequireFromString("1.5"),
	}}, nil).Once()

	rec := f.do(http.MethodGet, "/api/v1/complaints?from=2025-03-01&to=2025-03-31", "")

	require.Equal(t, http.StatusOK, rec.Code)
	list := decode[[]httpin.ComplaintListItem](t, rec)
	require.Len(t, list, 1)
	assert.Equal(t, id.String(), list[0].ID)
	assert.Equal(t, "2025-03-02", list[0].DateReported)
	assert.True(t, list[0].ReturnTotalQty.Equal(decimal.RequireFromString("1.5")))
}

func TestListComplaints_BadRange(t *testing.T) {
	for _, target := range []string{
		"/api/v1/complaints",
		"/api/v1/complaints?from=2025-03-01",
		"/api/v1/complaints?from=2025-03-31&to=2025-03-01",
		"/api/v1/complaints?from=yesterday&to=2025-03-01",
	} {
		t.Run(target, func(t *testing.T) {
			f := newFixture()

			rec := f.do(http.MethodGet, target, "")

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			f.listComplaints.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
		})
	}
}

func TestChangeComplaintStatus(t *testing.T) {
	f := newFixture()
	id := kernel.NewUUID()
	f.changeComplaintStatus.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.ChangeComplaintStatusCommand) bool {
		return cmd.ComplaintID().IsEqual(id) && cmd.Status() == complaint.StatusClosed
	})).Return(nil).Once()

	rec := f.do(http.MethodPatch, "/api/v1/complaints/"+id.String()+"/status", `{"status":"closed"}`)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	f.changeComplaintStatus.AssertExpectations(t)
}

func TestChangeComplaintStatus_Errors(t *testing.T) {
	t.Run("unknown status", func(t *testing.T) {
		f := newFixture()

		rec := f.do(http.MethodPatch, "/api/v1/complaints/"+kernel.NewUUID().String()+"/status", `{"status":"archived"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing complaint", func(t *testing.T) {
		f := newFixture()
		f.changeComplaintStatus.On("Handle", mock.Anything, mock.Anything).
			Return(errs.NewObjectNotFoundError("complaint", "x")).Once()

		rec := f.do(http.MethodPatch, "/api/v1/complaints/"+kernel.NewUUID().String()+"/status", `{"status":"closed"}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestSendComplaintReport(t *testing.T) {
	f := newFixture()
	f.sendComplaintReport.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.SendComplaintReportCommand) bool {
		filter := cmd.Filter()
		return cmd.Recipient() == "qa@example.com" &&
			cmd.Mode() == commands.ReportFiltered &&
			filter.Type == complaint.TypeDeliveryIssue &&
			filter.Status == complaint.StatusClosed &&
			filter.ReturnInvolvedOnly
	})).Return(nil).Once()

	rec := f.do(http.MethodPost, "/api/v1/complaints/report", `{
		"dateFrom": "2025-03-01",
		"dateTo": "2025-03-31",
		"recipient": "qa@example.com",
		"mode": "filtered",
		"complaintType": "delivery_issue",
		"status": "closed",
		"returnInvolved": true
	}`)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	f.sendComplaintReport.AssertExpectations(t)
}

func TestSendComplaintReport_Invalid(t *testing.T) {
	testCases := map[string]string{
		"missing recipient": `{"dateFrom":"2025-03-01","dateTo":"2025-03-31"}`,
		"bad recipient":     `{"dateFrom":"2025-03-01","dateTo":"2025-03-31","recipient":"qa"}`,
		"missing date":      `{"dateTo":"2025-03-31","recipient":"qa@example.com"}`,
		"reversed dates":    `{"dateFrom":"2025-04-01","dateTo":"2025-03-31","recipient":"qa@example.com"}`,
		"bad mode":          `{"dateFrom":"2025-03-01","dateTo":"2025-03-31","recipient":"qa@example.com","mode":"some"}`,
		"bad status":        `{"dateFrom":"2025-03-01","dateTo":"2025-03-31","recipient":"qa@example.com","status":"x"}`,
	}

	for name, body := range testCases {
		t.Run(name, func(t *testing.T) {
			f := newFixture()

			rec := f.do(http.MethodPost, "/api/v1/complaints/report", body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			f.sendComplaintReport.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
		})
	}
}
