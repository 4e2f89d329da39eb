package order

import (
	"errors"
	"time"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder. This ensures all orders are validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Order is the aggregate root for a live order. It owns the item lines,
// recorded payments, and the status audit trail, and enforces the lifecycle
// invariants:
//
//   - status changes follow the per-order-type allowed status sets
//   - the transition into Completed passes the settlement gate
//     (SettledAmount >= RequiredAmount, exact decimal comparison)
//   - items and payments cannot be mutated once the order is terminal
//   - total_amount is always the sum of the line totals
//
// The order code (the 8-digit human-facing identifier) is assigned at
// creation and never changes; it is the value that must exist in exactly one
// of the live and archived tables at any time.
type Order struct {
	id            kernel.UUID
	code          kernel.Code
	customerName  string
	customerPhone string
	orderType     OrderType
	status        Status
	paymentStatus PaymentStatus
	totalAmount   decimal.Decimal
	// deliveryCharge is stored for every order but only owed (and only
	// archived) for delivery orders.
	deliveryCharge decimal.Decimal
	specialNotes   string
	tableID        *kernel.UUID
	address        DeliveryAddress
	completedBy    *kernel.UUID
	createdBy      *kernel.UUID
	createdAt      time.Time
	updatedAt      time.Time

	items      []*Item
	payments   []*Payment
	statusLogs []*StatusLog

	isConstructed bool
}

// NewOrder creates a new live order in Pending status with no items or
// payments. The code must already have been checked for uniqueness across
// the live and archived tables.
func NewOrder(
	id kernel.UUID,
	code kernel.Code,
	customerName string,
	customerPhone string,
	orderType OrderType,
	tableID *kernel.UUID,
	address DeliveryAddress,
	deliveryCharge decimal.Decimal,
	specialNotes string,
	createdBy *kernel.UUID,
	now time.Time,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := code.Validate(); err != nil {
		return nil, err
	}
	if customerName == "" {
		return nil, errs.NewValueIsRequiredError("customerName")
	}
	if err := orderType.Validate(); err != nil {
		return nil, err
	}
	if deliveryCharge.IsNegative() {
		return nil, errs.NewValueIsInvalidError("deliveryCharge")
	}
	if tableID != nil {
		if err := tableID.Validate(); err != nil {
			return nil, err
		}
	}
	if createdBy != nil {
		if err := createdBy.Validate(); err != nil {
			return nil, err
		}
	}

	return &Order{
		id:             id,
		code:           code,
		customerName:   customerName,
		customerPhone:  customerPhone,
		orderType:      orderType,
		status:         Pending,
		paymentStatus:  Unpaid,
		totalAmount:    decimal.Zero,
		deliveryCharge: deliveryCharge,
		specialNotes:   specialNotes,
		tableID:        tableID,
		address:        address,
		createdBy:      createdBy,
		createdAt:      now,
		updatedAt:      now,
		isConstructed:  true,
	}, nil
}

// RestoreOrder reconstructs an order aggregate from persistence, children
// included. Unlike NewOrder it accepts any status and an unknown order type,
// so that legacy rows can still be loaded and acted on.
func RestoreOrder(
	id kernel.UUID,
	code kernel.Code,
	customerName string,
	customerPhone string,
	orderType OrderType,
	status Status,
	paymentStatus PaymentStatus,
	totalAmount decimal.Decimal,
	deliveryCharge decimal.Decimal,
	specialNotes string,
	tableID *kernel.UUID,
	address DeliveryAddress,
	completedBy *kernel.UUID,
	createdBy *kernel.UUID,
	createdAt time.Time,
	updatedAt time.Time,
	items []*Item,
	payments []*Payment,
	statusLogs []*StatusLog,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := code.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &Order{
		id:             id,
		code:           code,
		customerName:   customerName,
		customerPhone:  customerPhone,
		orderType:      orderType,
		status:         status,
		paymentStatus:  paymentStatus,
		totalAmount:    totalAmount,
		deliveryCharge: deliveryCharge,
		specialNotes:   specialNotes,
		tableID:        tableID,
		address:        address,
		completedBy:    completedBy,
		createdBy:      createdBy,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
		items:          items,
		payments:       payments,
		statusLogs:     statusLogs,
		isConstructed:  true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Code returns the 8-digit human-facing order code.
func (o *Order) Code() kernel.Code {
	return o.code
}

// CustomerName returns the customer's name.
func (o *Order) CustomerName() string {
	return o.customerName
}

// CustomerPhone returns the customer's phone number, possibly empty.
func (o *Order) CustomerPhone() string {
	return o.customerPhone
}

// OrderType returns how the order is fulfilled.
func (o *Order) OrderType() OrderType {
	return o.orderType
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// PaymentStatus returns the settlement marker.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// TotalAmount returns the sum of the line totals.
func (o *Order) TotalAmount() decimal.Decimal {
	return o.totalAmount
}

// DeliveryCharge returns the stored delivery charge.
func (o *Order) DeliveryCharge() decimal.Decimal {
	return o.deliveryCharge
}

// SpecialNotes returns the free-form notes attached to the order.
func (o *Order) SpecialNotes() string {
	return o.specialNotes
}

// TableID returns the occupied table reference, or nil.
func (o *Order) TableID() *kernel.UUID {
	return o.tableID
}

// Address returns the delivery address fields.
func (o *Order) Address() DeliveryAddress {
	return o.address
}

// CompletedBy returns the user who completed the order, or nil.
func (o *Order) CompletedBy() *kernel.UUID {
	return o.completedBy
}

// CreatedBy returns the user who created the order, or nil.
func (o *Order) CreatedBy() *kernel.UUID {
	return o.createdBy
}

// CreatedAt returns when the order was placed.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns when the order was last modified.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Items returns the order's item lines.
func (o *Order) Items() []*Item {
	return o.items
}

// Payments returns the payments recorded against the order.
func (o *Order) Payments() []*Payment {
	return o.payments
}

// StatusLogs returns the status audit trail in append order.
func (o *Order) StatusLogs() []*StatusLog {
	return o.statusLogs
}

// RequiredAmount returns the amount needed to close the order: the total,
// plus the delivery charge for delivery orders only.
func (o *Order) RequiredAmount() decimal.Decimal {
	if o.orderType == Delivery {
		return o.totalAmount.Add(o.deliveryCharge)
	}
	return o.totalAmount
}

// SettledAmount returns the sum of recorded payments. The stored total_amount
// is never treated as proof of settlement; this derived sum is authoritative.
func (o *Order) SettledAmount() decimal.Decimal {
	settled := decimal.Zero
	for _, p := range o.payments {
		settled = settled.Add(p.Amount())
	}
	return settled
}

// IsSettled reports whether recorded payments cover the required amount.
func (o *Order) IsSettled() bool {
	return o.SettledAmount().GreaterThanOrEqual(o.RequiredAmount())
}

// HasPayments reports whether any payment row exists on the order. This, not
// the settled sum, is what gates cancellation: a recorded payment of any
// amount means money may have changed hands.
func (o *Order) HasPayments() bool {
	return len(o.payments) > 0
}

// AddItem appends an item line with the given unit price snapshot and
// recomputes the total. Rejected once the order is terminal.
func (o *Order) AddItem(menuItemID kernel.UUID, quantity int, price decimal.Decimal, now time.Time) error {
	if o.status.IsTerminal() {
		return ErrOrderIsClosed
	}

	item, err := NewItem(kernel.NewUUID(), menuItemID, quantity, price)
	if err != nil {
		return err
	}

	o.items = append(o.items, item)
	o.recalculateTotal()
	o.updatedAt = now
	return nil
}

// RemoveItem deletes an item line and recomputes the total.
func (o *Order) RemoveItem(itemID kernel.UUID, now time.Time) error {
	if o.status.IsTerminal() {
		return ErrOrderIsClosed
	}

	for i, item := range o.items {
		if item.ID().IsEqual(itemID) {
			o.items = append(o.items[:i], o.items[i+1:]...)
			o.recalculateTotal()
			o.updatedAt = now
			return nil
		}
	}
	return errs.NewObjectNotFoundError("orderItem", itemID.String())
}

// RecordPayment appends a payment against the order.
func (o *Order) RecordPayment(
	method PaymentMethod,
	amount decimal.Decimal,
	transactionID string,
	editedBy *kernel.UUID,
	now time.Time,
) error {
	if o.status.IsTerminal() {
		return ErrOrderIsClosed
	}

	payment, err := NewPayment(kernel.NewUUID(), method, amount, transactionID, editedBy)
	if err != nil {
		return err
	}

	o.payments = append(o.payments, payment)
	o.updatedAt = now
	return nil
}

// RemovePayment deletes a recorded payment, typically to clear the way for a
// cancellation.
func (o *Order) RemovePayment(paymentID kernel.UUID, now time.Time) error {
	if o.status.IsTerminal() {
		return ErrOrderIsClosed
	}

	for i, p := range o.payments {
		if p.ID().IsEqual(paymentID) {
			o.payments = append(o.payments[:i], o.payments[i+1:]...)
			o.updatedAt = now
			return nil
		}
	}
	return errs.NewObjectNotFoundError("payment", paymentID.String())
}

// ChangeStatus moves the order to the requested status.
//
// The requested status must be in the allowed set for the order's type, or
// the call fails with *InvalidTransitionError. A transition into Completed is
// additionally gated on settlement: if the recorded payments do not cover
// RequiredAmount the call fails with *PaymentsNotSettledError and the order
// is left untouched. On success into Completed the payment status flips to
// Paid and the actor is recorded as completed_by; on success into any other
// status an audit trail entry is appended.
func (o *Order) ChangeStatus(requested Status, actor *kernel.UUID, now time.Time) error {
	if err := requested.Validate(); err != nil {
		return err
	}
	if actor != nil {
		if err := actor.Validate(); err != nil {
			return err
		}
	}

	if !o.orderType.Allows(requested) {
		return &InvalidTransitionError{OrderType: o.orderType, From: o.status, Requested: requested}
	}

	previous := o.status

	if requested == Completed {
		if !o.IsSettled() {
			return &PaymentsNotSettledError{Settled: o.SettledAmount(), Required: o.RequiredAmount()}
		}
		o.status = Completed
		o.paymentStatus = Paid
		o.completedBy = actor
		o.updatedAt = now
		return nil
	}

	o.status = requested
	o.updatedAt = now

	log, err := NewStatusLog(kernel.NewUUID(), previous, requested, actor, now)
	if err != nil {
		return err
	}
	o.statusLogs = append(o.statusLogs, log)
	return nil
}

func (o *Order) recalculateTotal() {
	total := decimal.Zero
	for _, item := range o.items {
		total = total.Add(item.LineTotal())
	}
	o.totalAmount = total
}
