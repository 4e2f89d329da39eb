package order

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidTransition is the sentinel for status transitions rejected by
	// the per-order-type allowed status sets. Use errors.Is to classify;
	// errors.As against *InvalidTransitionError for the details.
	ErrInvalidTransition = errors.New("status transition is invalid")

	// ErrPaymentsNotSettled is the sentinel for completions blocked by the
	// settlement gate. errors.As against *PaymentsNotSettledError yields the
	// settled and required amounts for the operator message.
	ErrPaymentsNotSettled = errors.New("payments are not settled")

	// ErrOrderIsClosed is returned when items or payments are mutated on an
	// order that already reached a terminal status.
	ErrOrderIsClosed = errors.New("order is in a terminal status")
)

// InvalidTransitionError reports a requested status that is not legal for the
// order's type.
type InvalidTransitionError struct {
	OrderType OrderType
	From      Status
	Requested Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("status transition is invalid: %s order in status %s cannot move to %s",
		e.OrderType, e.From, e.Requested)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// PaymentsNotSettledError reports a completion attempt with insufficient
// payments. Both amounts are carried so callers can show the shortfall.
type PaymentsNotSettledError struct {
	Settled  decimal.Decimal
	Required decimal.Decimal
}

func (e *PaymentsNotSettledError) Error() string {
	return fmt.Sprintf("payments are not settled: %s paid of %s required",
		e.Settled.StringFixed(2), e.Required.StringFixed(2))
}

func (e *PaymentsNotSettledError) Unwrap() error {
	return ErrPaymentsNotSettled
}
