package http

import (
	"errors"
	"net/http"

	"pos/internal/core/application/usecases/commands"
	"pos/internal/core/domain/model/history"
	"pos/internal/core/domain/model/order"
	"pos/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// writeError maps application and domain errors onto HTTP status codes.
// Not-found lookups become 404, state conflicts 409, rejected input 422,
// everything else 500 with the detail kept out of the response body.
func writeError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	message := "internal server error"

	var notFound *errs.ObjectNotFoundError
	var transition *order.InvalidTransitionError
	var notSettled *order.PaymentsNotSettledError
	var invalid *errs.ValueIsInvalidError
	var required *errs.ValueIsRequiredError
	var outOfRange *errs.ValueIsOutOfRangeError

	switch {
	case errors.As(err, &notFound):
		status = http.StatusNotFound
		message = err.Error()
	case errors.As(err, &transition),
		errors.Is(err, order.ErrOrderIsClosed),
		errors.Is(err, commands.ErrHasSettledPayments),
		errors.Is(err, history.ErrOrderIsNotCompleted):
		status = http.StatusConflict
		message = err.Error()
	case errors.As(err, &notSettled),
		errors.As(err, &invalid),
		errors.As(err, &required),
		errors.As(err, &outOfRange):
		status = http.StatusUnprocessableEntity
		message = err.Error()
	}

	return ctx.JSON(status, ErrorResponse{Code: status, Message: message})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
