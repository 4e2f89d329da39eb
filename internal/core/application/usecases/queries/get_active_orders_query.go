// Package queries contains the read side of the application. Query handlers
// run directly against the database and return plain response structs, never
// domain aggregates.
package queries

import (
	"errors"
	"time"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
	"pos/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetActiveOrdersQueryIsNotConstructed = errors.New(
	"GetActiveOrdersQuery must be created via NewGetActiveOrdersQuery constructor",
)

// GetActiveOrdersQuery retrieves orders from the live table, optionally
// filtered by status and order type. Completed orders that have already been
// archived do not appear here.
//
// Example:
//
//	query, err := NewGetActiveOrdersQuery(order.Preparing, order.UnknownType)
//	if err != nil {
//	    return err
//	}
//	handler := NewGetActiveOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get active orders: %w", err)
//	}
type GetActiveOrdersQuery struct {
	status    order.Status
	orderType order.OrderType

	guard guard.ConstructorGuard
}

// NewGetActiveOrdersQuery creates a query for live orders. Pass
// order.UnknownStatus or order.UnknownType to skip the respective filter;
// any other value must be a valid status or type.
func NewGetActiveOrdersQuery(status order.Status, orderType order.OrderType) (GetActiveOrdersQuery, error) {
	if status != order.UnknownStatus {
		if err := status.Validate(); err != nil {
			return GetActiveOrdersQuery{}, err
		}
	}
	if orderType != order.UnknownType {
		if err := orderType.Validate(); err != nil {
			return GetActiveOrdersQuery{}, err
		}
	}

	return GetActiveOrdersQuery{
		status:    status,
		orderType: orderType,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Status returns the status filter, or order.UnknownStatus when unset.
func (q GetActiveOrdersQuery) Status() order.Status {
	return q.status
}

// OrderType returns the order type filter, or order.UnknownType when unset.
func (q GetActiveOrdersQuery) OrderType() order.OrderType {
	return q.orderType
}

// Validate ensures the query was created through the constructor.
func (q GetActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrdersQueryIsNotConstructed)
}

// ActiveOrderResponse is one row of the active orders listing. ItemCount is
// the total quantity across all lines, not the number of lines.
type ActiveOrderResponse struct {
	ID             kernel.UUID
	Code           string
	CustomerName   string
	CustomerPhone  string
	OrderType      string
	Status         string
	PaymentStatus  string
	TotalAmount    decimal.Decimal
	DeliveryCharge decimal.Decimal
	ItemCount      int
	SpecialNotes   string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
