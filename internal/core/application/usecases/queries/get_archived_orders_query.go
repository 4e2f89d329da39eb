package queries

import (
	"errors"
	"fmt"
	"time"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
	"pos/internal/pkg/errs"
	"pos/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

const (
	defaultArchiveLimit = 50
	maxArchiveLimit     = 500
)

var ErrGetArchivedOrdersQueryIsNotConstructed = errors.New(
	"GetArchivedOrdersQuery must be created via NewGetArchivedOrdersQuery constructor",
)

// GetArchivedOrdersQuery lists order history records with optional filters.
// Archived records are either completed or cancelled, so the status filter
// only accepts those two values.
type GetArchivedOrdersQuery struct {
	status order.Status
	from   *time.Time
	to     *time.Time
	limit  int
	offset int

	guard guard.ConstructorGuard
}

// NewGetArchivedOrdersQuery creates a query over the order history. Pass
// order.UnknownStatus to skip the status filter and nil for open date bounds.
// A non-positive limit falls back to the default page size.
func NewGetArchivedOrdersQuery(
	status order.Status,
	from *time.Time,
	to *time.Time,
	limit int,
	offset int,
) (GetArchivedOrdersQuery, error) {
	if status != order.UnknownStatus && status != order.Completed && status != order.Cancelled {
		return GetArchivedOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not an archived status", status))
	}
	if from != nil && to != nil && to.Before(*from) {
		return GetArchivedOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause("to",
			errors.New("end of range precedes its start"))
	}
	if offset < 0 {
		return GetArchivedOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause("offset",
			fmt.Errorf("%d is negative", offset))
	}

	if limit <= 0 {
		limit = defaultArchiveLimit
	}
	if limit > maxArchiveLimit {
		limit = maxArchiveLimit
	}

	return GetArchivedOrdersQuery{
		status: status,
		from:   from,
		to:     to,
		limit:  limit,
		offset: offset,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Status returns the status filter, or order.UnknownStatus when unset.
func (q GetArchivedOrdersQuery) Status() order.Status {
	return q.status
}

// From returns the inclusive lower bound on archived_at, if any.
func (q GetArchivedOrdersQuery) From() *time.Time {
	return q.from
}

// To returns the inclusive upper bound on archived_at, if any.
func (q GetArchivedOrdersQuery) To() *time.Time {
	return q.to
}

// Limit returns the page size.
func (q GetArchivedOrdersQuery) Limit() int {
	return q.limit
}

// Offset returns the number of rows to skip.
func (q GetArchivedOrdersQuery) Offset() int {
	return q.offset
}

// Validate ensures the query was created through the constructor.
func (q GetArchivedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetArchivedOrdersQueryIsNotConstructed)
}

// ArchivedOrderResponse is one row of the order history listing. ItemCount is
// the total quantity across all lines, not the number of lines.
type ArchivedOrderResponse struct {
	ID                 kernel.UUID
	Code               string
	CustomerName       string
	OrderType          string
	Status             string
	TotalAmount        decimal.Decimal
	DeliveryCharge     decimal.Decimal
	ItemCount          int
	CancellationReason string
	CreatedAt          time.Time
	ArchivedAt         time.Time
}
