package http

import (
	"errors"
	"net/http"

	"logistics/internal/core/domain/model/consignment"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func errorJSON(ctx echo.Context, status int, message string) error {
	return ctx.JSON(status, Error{Code: status, Message: message})
}

// badRequest answers a request that could not be bound or validated.
func badRequest(ctx echo.Context, err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return errorJSON(ctx, http.StatusBadRequest, verrs.Error())
	}
	return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
}

// fail maps a use case error to a status. invalidStatus is used for
// missing or invalid values, which mean 422 on a consignment submission and
// 400 elsewhere.
func (s *Server) fail(ctx echo.Context, err error, invalidStatus int) error {
	status := statusOf(err, invalidStatus)
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed",
			zap.String("method", ctx.Request().Method),
			zap.String("path", ctx.Path()),
			zap.Error(err),
		)
		return errorJSON(ctx, status, "Internal server error")
	}
	return errorJSON(ctx, status, err.Error())
}

func statusOf(err error, invalidStatus int) int {
	switch {
	case errors.Is(err, shipment.ErrScopeViolation),
		errors.Is(err, shipment.ErrDuplicateSubmission),
		errors.Is(err, gorm.ErrDuplicatedKey):
		return http.StatusConflict
	case errors.Is(err, consignment.ErrMissingConfiguration):
		return http.StatusPreconditionFailed
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return invalidStatus
	case errors.Is(err, consignment.ErrServiceUnreachable):
		return http.StatusServiceUnavailable
	case errors.Is(err, consignment.ErrRemote),
		errors.Is(err, consignment.ErrMalformedResponse),
		errors.Is(err, consignment.ErrTrackingNumberNotFound):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
