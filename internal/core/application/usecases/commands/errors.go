package commands

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrHasSettledPayments is returned when a cancellation is requested for an
// order that has payment rows recorded against it. The payments must be
// removed first; a recorded payment of any amount means money may have
// changed hands.
var ErrHasSettledPayments = errors.New("order has settled payments")

// ErrArchivalAborted is returned when a strict archival copy failed and the
// whole operation was rolled back.
var ErrArchivalAborted = errors.New("archival aborted")

// HasSettledPaymentsError carries the settled amount blocking a cancellation.
type HasSettledPaymentsError struct {
	Settled decimal.Decimal
}

func (e *HasSettledPaymentsError) Error() string {
	return fmt.Sprintf("order has settled payments: %s recorded, remove them before cancelling",
		e.Settled.StringFixed(2))
}

func (e *HasSettledPaymentsError) Unwrap() error {
	return ErrHasSettledPayments
}
