package history

import (
	"errors"
	"fmt"
	"time"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
	"pos/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrArchivedOrderIsNotConstructed is returned when an ArchivedOrder instance
// was not created through one of the package constructors.
var ErrArchivedOrderIsNotConstructed = errors.New(
	"ArchivedOrder must be created via FromCompletedOrder, FromCancelledOrder or RestoreArchivedOrder")

// ErrOrderIsNotCompleted is returned when a non-completed order is handed to
// the completed-order archival conversion.
var ErrOrderIsNotCompleted = errors.New("order is not completed")

// ChildCopyError reports one child row that failed to copy during an archival
// or revert conversion. Kind names the child collection ("item", "payment",
// "statusLog").
type ChildCopyError struct {
	Kind  string
	Cause error
}

func (e *ChildCopyError) Error() string {
	return fmt.Sprintf("copy %s: %s", e.Kind, e.Cause)
}

func (e *ChildCopyError) Unwrap() error {
	return e.Cause
}

// ArchivedOrder is the aggregate root for a terminal order record. Its status
// is always Completed or Cancelled, and its created/updated timestamps are the
// live order's values preserved verbatim; only archivedAt is new.
type ArchivedOrder struct {
	id            kernel.UUID
	code          kernel.Code
	customerName  string
	customerPhone string
	orderType     order.OrderType
	status        order.Status
	paymentStatus order.PaymentStatus
	totalAmount   decimal.Decimal
	// deliveryCharge is zeroed on archival for non-delivery orders.
	deliveryCharge     decimal.Decimal
	specialNotes       string
	tableID            *kernel.UUID
	address            order.DeliveryAddress
	completedBy        *kernel.UUID
	cancelledBy        *kernel.UUID
	cancellationReason string
	createdBy          *kernel.UUID
	createdAt          time.Time
	updatedAt          time.Time
	archivedAt         time.Time

	items      []*ArchivedItem
	payments   []*ArchivedPayment
	statusLogs []*ArchivedStatusLog

	isConstructed bool
}

// FromCompletedOrder copies a completed live order into a new archived record.
//
// The copy is lenient: a child row that fails to convert is skipped and
// reported in the returned slice, so the parent record always makes it into
// history. completedBy records the archiving actor when given, otherwise the
// user who completed the order.
func FromCompletedOrder(
	id kernel.UUID,
	o *order.Order,
	completedBy *kernel.UUID,
	now time.Time,
) (*ArchivedOrder, []*ChildCopyError, error) {
	if err := o.Validate(); err != nil {
		return nil, nil, err
	}
	if err := id.Validate(); err != nil {
		return nil, nil, err
	}
	if o.Status() != order.Completed {
		return nil, nil, ErrOrderIsNotCompleted
	}

	if completedBy == nil {
		completedBy = o.CompletedBy()
	}

	archived := newFromOrder(id, o, order.Completed, now)
	archived.paymentStatus = o.PaymentStatus()
	archived.completedBy = completedBy

	skipped := archived.copyChildren(o, false)
	return archived, skipped, nil
}

// FromCancelledOrder copies a live order into a cancelled archived record.
//
// Unlike the completed-order path the copy is strict: the first child row that
// fails to convert aborts the whole conversion, because a cancellation must
// fully succeed or leave the live order in place.
func FromCancelledOrder(
	id kernel.UUID,
	o *order.Order,
	cancelledBy *kernel.UUID,
	reason string,
	now time.Time,
) (*ArchivedOrder, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if err := id.Validate(); err != nil {
		return nil, err
	}

	archived := newFromOrder(id, o, order.Cancelled, now)
	archived.paymentStatus = o.PaymentStatus()
	archived.cancelledBy = cancelledBy
	archived.cancellationReason = reason

	skipped := archived.copyChildren(o, true)
	if len(skipped) > 0 {
		return nil, skipped[0]
	}
	return archived, nil
}

func newFromOrder(id kernel.UUID, o *order.Order, status order.Status, now time.Time) *ArchivedOrder {
	deliveryCharge := decimal.Zero
	if o.OrderType() == order.Delivery {
		deliveryCharge = o.DeliveryCharge()
	}

	return &ArchivedOrder{
		id:             id,
		code:           o.Code(),
		customerName:   o.CustomerName(),
		customerPhone:  o.CustomerPhone(),
		orderType:      o.OrderType(),
		status:         status,
		totalAmount:    o.TotalAmount(),
		deliveryCharge: deliveryCharge,
		specialNotes:   o.SpecialNotes(),
		tableID:        o.TableID(),
		address:        o.Address(),
		createdBy:      o.CreatedBy(),
		createdAt:      o.CreatedAt(),
		updatedAt:      o.UpdatedAt(),
		archivedAt:     now,
		isConstructed:  true,
	}
}

// copyChildren converts the live order's child collections. When strict is
// false failures are collected and the corresponding rows skipped; when strict
// is true the first failure stops the copy.
func (a *ArchivedOrder) copyChildren(o *order.Order, strict bool) []*ChildCopyError {
	var skipped []*ChildCopyError

	for _, item := range o.Items() {
		copied, err := NewArchivedItem(kernel.NewUUID(), item.MenuItemID(), item.Quantity(), item.Price())
		if err != nil {
			skipped = append(skipped, &ChildCopyError{Kind: "item", Cause: err})
			if strict {
				return skipped
			}
			continue
		}
		a.items = append(a.items, copied)
	}

	for _, p := range o.Payments() {
		copied, err := NewArchivedPayment(kernel.NewUUID(), p.Method(), p.Amount(), p.TransactionID())
		if err != nil {
			skipped = append(skipped, &ChildCopyError{Kind: "payment", Cause: err})
			if strict {
				return skipped
			}
			continue
		}
		a.payments = append(a.payments, copied)
	}

	for _, l := range o.StatusLogs() {
		copied, err := NewArchivedStatusLog(kernel.NewUUID(), l.Previous(), l.Next(), l.ChangedBy(), l.Timestamp())
		if err != nil {
			skipped = append(skipped, &ChildCopyError{Kind: "statusLog", Cause: err})
			if strict {
				return skipped
			}
			continue
		}
		a.statusLogs = append(a.statusLogs, copied)
	}

	return skipped
}

// RestoreArchivedOrder reconstructs an archived order aggregate from
// persistence, children included.
func RestoreArchivedOrder(
	id kernel.UUID,
	code kernel.Code,
	customerName string,
	customerPhone string,
	orderType order.OrderType,
	status order.Status,
	paymentStatus order.PaymentStatus,
	totalAmount decimal.Decimal,
	deliveryCharge decimal.Decimal,
	specialNotes string,
	tableID *kernel.UUID,
	address order.DeliveryAddress,
	completedBy *kernel.UUID,
	cancelledBy *kernel.UUID,
	cancellationReason string,
	createdBy *kernel.UUID,
	createdAt time.Time,
	updatedAt time.Time,
	archivedAt time.Time,
	items []*ArchivedItem,
	payments []*ArchivedPayment,
	statusLogs []*ArchivedStatusLog,
) (*ArchivedOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := code.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &ArchivedOrder{
		id:                 id,
		code:               code,
		customerName:       customerName,
		customerPhone:      customerPhone,
		orderType:          orderType,
		status:             status,
		paymentStatus:      paymentStatus,
		totalAmount:        totalAmount,
		deliveryCharge:     deliveryCharge,
		specialNotes:       specialNotes,
		tableID:            tableID,
		address:            address,
		completedBy:        completedBy,
		cancelledBy:        cancelledBy,
		cancellationReason: cancellationReason,
		createdBy:          createdBy,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
		archivedAt:         archivedAt,
		items:              items,
		payments:           payments,
		statusLogs:         statusLogs,
		isConstructed:      true,
	}, nil
}

// ToOrder copies the archived record back into a fresh live order, reversing
// an accidental archival.
//
// The resulting order starts a new life: payment status resets to Unpaid so
// settlement is re-derived from the copied payment rows, completed_by and the
// per-payment edited_by references are cleared, timestamps are regenerated,
// and the status audit trail is not carried back. The target status must be a
// known non-terminal status. Like the completed-order archival the child copy
// is lenient.
func (a *ArchivedOrder) ToOrder(
	newID kernel.UUID,
	target order.Status,
	now time.Time,
) (*order.Order, []*ChildCopyError, error) {
	if err := a.Validate(); err != nil {
		return nil, nil, err
	}
	if err := newID.Validate(); err != nil {
		return nil, nil, err
	}
	if err := target.Validate(); err != nil {
		return nil, nil, err
	}
	if target.IsTerminal() {
		return nil, nil, errs.NewValueIsInvalidErrorWithCause("targetStatus",
			fmt.Errorf("%s is terminal", target))
	}

	var (
		skipped  []*ChildCopyError
		items    []*order.Item
		payments []*order.Payment
	)

	for _, item := range a.items {
		copied, err := order.NewItem(kernel.NewUUID(), item.MenuItemID(), item.Quantity(), item.Price())
		if err != nil {
			skipped = append(skipped, &ChildCopyError{Kind: "item", Cause: err})
			continue
		}
		items = append(items, copied)
	}
	for _, p := range a.payments {
		copied, err := order.NewPayment(kernel.NewUUID(), p.Method(), p.Amount(), p.TransactionID(), nil)
		if err != nil {
			skipped = append(skipped, &ChildCopyError{Kind: "payment", Cause: err})
			continue
		}
		payments = append(payments, copied)
	}

	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.LineTotal())
	}

	restored, err := order.RestoreOrder(
		newID,
		a.code,
		a.customerName,
		a.customerPhone,
		a.orderType,
		target,
		order.Unpaid,
		total,
		a.deliveryCharge,
		a.specialNotes,
		a.tableID,
		a.address,
		nil,
		a.createdBy,
		now,
		now,
		items,
		payments,
		nil,
	)
	if err != nil {
		return nil, nil, err
	}
	return restored, skipped, nil
}

// Validate ensures the ArchivedOrder instance was properly constructed.
func (a *ArchivedOrder) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrArchivedOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two archived orders by their unique identifiers.
func (a *ArchivedOrder) IsEqual(other *ArchivedOrder) bool {
	return other != nil && a.id.IsEqual(other.id)
}

// ID returns the archived record's unique identifier.
func (a *ArchivedOrder) ID() kernel.UUID {
	return a.id
}

// Code returns the 8-digit order code carried over from the live order.
func (a *ArchivedOrder) Code() kernel.Code {
	return a.code
}

// CustomerName returns the customer's name.
func (a *ArchivedOrder) CustomerName() string {
	return a.customerName
}

// CustomerPhone returns the customer's phone number, possibly empty.
func (a *ArchivedOrder) CustomerPhone() string {
	return a.customerPhone
}

// OrderType returns how the order was fulfilled.
func (a *ArchivedOrder) OrderType() order.OrderType {
	return a.orderType
}

// Status returns the terminal status the order was archived with.
func (a *ArchivedOrder) Status() order.Status {
	return a.status
}

// PaymentStatus returns the settlement marker at archival time.
func (a *ArchivedOrder) PaymentStatus() order.PaymentStatus {
	return a.paymentStatus
}

// TotalAmount returns the order total at archival time.
func (a *ArchivedOrder) TotalAmount() decimal.Decimal {
	return a.totalAmount
}

// DeliveryCharge returns the archived delivery charge. Zero for non-delivery
// orders regardless of what the live row stored.
func (a *ArchivedOrder) DeliveryCharge() decimal.Decimal {
	return a.deliveryCharge
}

// SpecialNotes returns the free-form notes carried over from the live order.
func (a *ArchivedOrder) SpecialNotes() string {
	return a.specialNotes
}

// TableID returns the table reference, or nil.
func (a *ArchivedOrder) TableID() *kernel.UUID {
	return a.tableID
}

// Address returns the delivery address fields.
func (a *ArchivedOrder) Address() order.DeliveryAddress {
	return a.address
}

// CompletedBy returns the user recorded as completing the order, or nil.
func (a *ArchivedOrder) CompletedBy() *kernel.UUID {
	return a.completedBy
}

// CancelledBy returns the user who cancelled the order, or nil.
func (a *ArchivedOrder) CancelledBy() *kernel.UUID {
	return a.cancelledBy
}

// CancellationReason returns the reason given at cancellation, possibly empty.
func (a *ArchivedOrder) CancellationReason() string {
	return a.cancellationReason
}

// CreatedBy returns the user who created the live order, or nil.
func (a *ArchivedOrder) CreatedBy() *kernel.UUID {
	return a.createdBy
}

// CreatedAt returns when the live order was placed.
func (a *ArchivedOrder) CreatedAt() time.Time {
	return a.createdAt
}

// UpdatedAt returns the live order's last modification time.
func (a *ArchivedOrder) UpdatedAt() time.Time {
	return a.updatedAt
}

// ArchivedAt returns when the record entered history.
func (a *ArchivedOrder) ArchivedAt() time.Time {
	return a.archivedAt
}

// Items returns the archived item lines.
func (a *ArchivedOrder) Items() []*ArchivedItem {
	return a.items
}

// Payments returns the archived payments.
func (a *ArchivedOrder) Payments() []*ArchivedPayment {
	return a.payments
}

// StatusLogs returns the archived status audit trail.
func (a *ArchivedOrder) StatusLogs() []*ArchivedStatusLog {
	return a.statusLogs
}
