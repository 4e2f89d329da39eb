package history

import (
	"fmt"
	"time"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
	"pos/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ArchivedItem mirrors an order line inside an archived order.
type ArchivedItem struct {
	id         kernel.UUID
	menuItemID kernel.UUID
	quantity   int
	price      decimal.Decimal
}

// NewArchivedItem creates a validated archived order line.
func NewArchivedItem(id, menuItemID kernel.UUID, quantity int, price decimal.Decimal) (*ArchivedItem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := menuItemID.Validate(); err != nil {
		return nil, err
	}
	if quantity <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	if price.IsNegative() {
		return nil, errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%s is negative", price))
	}

	return &ArchivedItem{id: id, menuItemID: menuItemID, quantity: quantity, price: price}, nil
}

// RestoreArchivedItem reconstructs an archived order line from persistence.
func RestoreArchivedItem(id, menuItemID kernel.UUID, quantity int, price decimal.Decimal) (*ArchivedItem, error) {
	return NewArchivedItem(id, menuItemID, quantity, price)
}

// ID returns the line's unique identifier.
func (i *ArchivedItem) ID() kernel.UUID {
	return i.id
}

// MenuItemID returns the referenced menu item.
func (i *ArchivedItem) MenuItemID() kernel.UUID {
	return i.menuItemID
}

// Quantity returns the ordered quantity.
func (i *ArchivedItem) Quantity() int {
	return i.quantity
}

// Price returns the unit price snapshot carried over from the live line.
func (i *ArchivedItem) Price() decimal.Decimal {
	return i.price
}

// ArchivedPayment mirrors a recorded payment inside an archived order.
// The edited_by user reference is intentionally not carried into history.
type ArchivedPayment struct {
	id            kernel.UUID
	method        order.PaymentMethod
	amount        decimal.Decimal
	transactionID string
}

// NewArchivedPayment creates a validated archived payment.
func NewArchivedPayment(
	id kernel.UUID,
	method order.PaymentMethod,
	amount decimal.Decimal,
	transactionID string,
) (*ArchivedPayment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := method.Validate(); err != nil {
		return nil, err
	}

	return &ArchivedPayment{id: id, method: method, amount: amount, transactionID: transactionID}, nil
}

// RestoreArchivedPayment reconstructs an archived payment from persistence.
func RestoreArchivedPayment(
	id kernel.UUID,
	method order.PaymentMethod,
	amount decimal.Decimal,
	transactionID string,
) (*ArchivedPayment, error) {
	return NewArchivedPayment(id, method, amount, transactionID)
}

// ID returns the payment's unique identifier.
func (p *ArchivedPayment) ID() kernel.UUID {
	return p.id
}

// Method returns the payment instrument.
func (p *ArchivedPayment) Method() order.PaymentMethod {
	return p.method
}

// Amount returns the recorded amount.
func (p *ArchivedPayment) Amount() decimal.Decimal {
	return p.amount
}

// TransactionID returns the external transaction reference, if any.
func (p *ArchivedPayment) TransactionID() string {
	return p.transactionID
}

// ArchivedStatusLog mirrors one audit trail entry inside an archived order.
type ArchivedStatusLog struct {
	id        kernel.UUID
	previous  order.Status
	next      order.Status
	changedBy *kernel.UUID
	timestamp time.Time
}

// NewArchivedStatusLog creates a validated archived audit trail entry.
func NewArchivedStatusLog(
	id kernel.UUID,
	previous, next order.Status,
	changedBy *kernel.UUID,
	timestamp time.Time,
) (*ArchivedStatusLog, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := next.Validate(); err != nil {
		return nil, err
	}

	return &ArchivedStatusLog{
		id:        id,
		previous:  previous,
		next:      next,
		changedBy: changedBy,
		timestamp: timestamp,
	}, nil
}

// RestoreArchivedStatusLog reconstructs an archived audit trail entry from persistence.
func RestoreArchivedStatusLog(
	id kernel.UUID,
	previous, next order.Status,
	changedBy *kernel.UUID,
	timestamp time.Time,
) (*ArchivedStatusLog, error) {
	return NewArchivedStatusLog(id, previous, next, changedBy, timestamp)
}

// ID returns the entry's unique identifier.
func (l *ArchivedStatusLog) ID() kernel.UUID {
	return l.id
}

// Previous returns the status the order moved from.
func (l *ArchivedStatusLog) Previous() order.Status {
	return l.previous
}

// Next returns the status the order moved to.
func (l *ArchivedStatusLog) Next() order.Status {
	return l.next
}

// ChangedBy returns the user who made the transition, or nil.
func (l *ArchivedStatusLog) ChangedBy() *kernel.UUID {
	return l.changedBy
}

// Timestamp returns when the transition happened.
func (l *ArchivedStatusLog) Timestamp() time.Time {
	return l.timestamp
}
