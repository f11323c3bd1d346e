package commands_test

import (
	"context"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/complaint"
	"logistics/internal/core/domain/model/consignment"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockShipmentRepository struct{ mock.Mock }

func (m *MockShipmentRepository) Add(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	if s, ok := args.Get(0).(*shipment.Shipment); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockShipmentRepository) AssignTrackingNumber(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

type MockNoteRepository struct{ mock.Mock }

func (m *MockNoteRepository) Append(ctx context.Context, shipmentID kernel.UUID, body string) error {
	args := m.Called(ctx, shipmentID, body)
	return args.Error(0)
}

type MockSettingsRepository struct{ mock.Mock }

func (m *MockSettingsRepository) CarrierSettings(ctx context.Context) (consignment.SettingsParams, error) {
	args := m.Called(ctx)
	return args.Get(0).(consignment.SettingsParams), args.Error(1)
}

func (m *MockSettingsRepository) Put(ctx context.Context, key, value string) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

type MockComplaintRepository struct{ mock.Mock }

func (m *MockComplaintRepository) NextNumber(ctx context.Context, year int) (string, error) {
	args := m.Called(ctx, year)
	return args.String(0), args.Error(1)
}

func (m *MockComplaintRepository) Add(ctx context.Context, c *complaint.Complaint) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockComplaintRepository) Update(ctx context.Context, c *complaint.Complaint) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockComplaintRepository) Get(ctx context.Context, id kernel.UUID) (*complaint.Complaint, error) {
	args := m.Called(ctx, id)
	if c, ok := args.Get(0).(*complaint.Complaint); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockComplaintRepository) Find(ctx context.Context, f complaint.Filter) ([]*complaint.Complaint, error) {
	args := m.Called(ctx, f)
	if cs, ok := args.Get(0).([]*complaint.Complaint); ok {
		return cs, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockComplaintRepository) CountByStatus(ctx context.Context, from, to time.Time) (map[complaint.Status]int, error) {
	args := m.Called(ctx, from, to)
	if counts, ok := args.Get(0).(map[complaint.Status]int); ok {
		return counts, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockTx struct{ mock.Mock }

func (m *mockTx) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockShipmentUoW struct{ mockTx }

func (m *MockShipmentUoW) ShipmentRepository() ports.ShipmentRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipmentRepository)
}

func (m *MockShipmentUoW) NoteRepository() ports.NoteRepository {
	args := m.Called()
	return args.Get(0).(ports.NoteRepository)
}

type MockShipmentUoWFactory struct{ mock.Mock }

func (m *MockShipmentUoWFactory) Create() commands.ShipmentUoW {
	args := m.Called()
	return args.Get(0).(commands.ShipmentUoW)
}

type MockSettingsUoW struct{ mockTx }

func (m *MockSettingsUoW) SettingsRepository() ports.SettingsRepository {
	args := m.Called()
	return args.Get(0).(ports.SettingsRepository)
}

type MockSettingsUoWFactory struct{ mock.Mock }

func (m *MockSettingsUoWFactory) Create() commands.SettingsUoW {
	args := m.Called()
	return args.Get(0).(commands.SettingsUoW)
}

type MockComplaintUoW struct{ mockTx }

func (m *MockComplaintUoW) ComplaintRepository() ports.ComplaintRepository {
	args := m.Called()
	return args.Get(0).(ports.ComplaintRepository)
}

type MockComplaintUoWFactory struct{ mock.Mock }

func (m *MockComplaintUoWFactory) Create() commands.ComplaintUoW {
	args := m.Called()
	return args.Get(0).(commands.ComplaintUoW)
}

type MockConsignmentGateway struct{ mock.Mock }

func (m *MockConsignmentGateway) CreateConsignment(
	ctx context.Context,
	settings consignment.Settings,
	parcels []consignment.Parcel,
) (string, error) {
	args := m.Called(ctx, settings, parcels)
	return args.String(0), args.Error(1)
}

type MockMailer struct{ mock.Mock }

func (m *MockMailer) Send(ctx context.Context, msg ports.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

type MockWorkbookRenderer struct{ mock.Mock }

func (m *MockWorkbookRenderer) Render(complaints []*complaint.Complaint) ([]byte, error) {
	args := m.Called(complaints)
	if b, ok := args.Get(0).([]byte); ok {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}
