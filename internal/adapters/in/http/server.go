// Package http exposes the use cases over a JSON API served by echo.
package http

import (
	"context"
	"net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type (
	RegisterShipmentHandler interface {
		Handle(ctx context.Context, cmd commands.RegisterShipmentCommand) error
	}
	SubmitConsignmentHandler interface {
		Handle(ctx context.Context, cmd commands.SubmitConsignmentCommand) (string, error)
	}
	UpdateCarrierSettingsHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateCarrierSettingsCommand) error
	}
	CreateComplaintHandler interface {
		Handle(ctx context.Context, cmd commands.CreateComplaintCommand) (string, error)
	}
	ChangeComplaintStatusHandler interface {
		Handle(ctx context.Context, cmd commands.ChangeComplaintStatusCommand) error
	}
	SendComplaintReportHandler interface {
		Handle(ctx context.Context, cmd commands.SendComplaintReportCommand) error
	}
	GetShipmentHandler interface {
		Handle(ctx context.Context, query queries.GetShipmentQuery) (queries.GetShipmentQueryResponse, error)
	}
	ListComplaintsHandler interface {
		Handle(ctx context.Context, query queries.ListComplaintsQuery) ([]queries.ListComplaintsQueryResponse, error)
	}
)

// Handlers groups the use cases the server dispatches to.
type Handlers struct {
	RegisterShipment      RegisterShipmentHandler
	SubmitConsignment     SubmitConsignmentHandler
	UpdateCarrierSettings UpdateCarrierSettingsHandler
	CreateComplaint       CreateComplaintHandler
	ChangeComplaintStatus ChangeComplaintStatusHandler
	SendComplaintReport   SendComplaintReportHandler
	GetShipment           GetShipmentHandler
	ListComplaints        ListComplaintsHandler
}

// Server coordinates between HTTP requests and the application use cases.
type Server struct {
	handlers Handlers
	logger   *zap.Logger
}

func NewServer(handlers Handlers, logger *zap.Logger) *Server {
	return &Server{
		handlers: handlers,
		logger:   logger.With(zap.String("component", "http")),
	}
}

// Register installs the validator and every route on e.
func (s *Server) Register(e *echo.Echo) {
	e.Validator = NewValidator()

	e.GET("/health", s.Health)

	v1 := e.Group("/api/v1")
	v1.POST("/shipments", s.RegisterShipment)
	v1.GET("/shipments/:id", s.GetShipment)
	v1.POST("/shipments/:id/consignment", s.SubmitConsignment)
	v1.PUT("/settings/gdex", s.UpdateCarrierSettings)
	v1.POST("/complaints", s.CreateComplaint)
	v1.GET("/complaints", s.ListComplaints)
	v1.PATCH("/complaints/:id/status", s.ChangeComplaintStatus)
	v1.POST("/complaints/report", s.SendComplaintReport)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func pathID(ctx echo.Context) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	return id, nil
}
