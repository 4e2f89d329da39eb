package commands

import (
	"errors"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
	"pos/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrRecordPaymentCommandIsNotConstructed = errors.New(
	"RecordPaymentCommand must be created via NewRecordPaymentCommand constructor",
)

// RecordPaymentCommand represents a request to record a payment against a
// live order. The amount is unrestricted: negative rows are legitimate
// corrections.
type RecordPaymentCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	method        order.PaymentMethod
	amount        decimal.Decimal
	transactionID string
	editedBy      *kernel.UUID

	guard guard.ConstructorGuard
}

// NewRecordPaymentCommand creates a command to record a payment.
func NewRecordPaymentCommand(
	orderID kernel.UUID,
	method order.PaymentMethod,
	amount decimal.Decimal,
	transactionID string,
	editedBy *kernel.UUID,
) (RecordPaymentCommand, error) {
	cmd := RecordPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setMethod(method),
	); err != nil {
		return RecordPaymentCommand{}, err
	}

	cmd.amount = amount
	cmd.transactionID = transactionID
	cmd.editedBy = editedBy
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordPaymentCommand) Validate() error {
	return c.guard.Validate(ErrRecordPaymentCommandIsNotConstructed)
}

// OrderID returns the order the payment is recorded against.
func (c RecordPaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Method returns the payment instrument.
func (c RecordPaymentCommand) Method() order.PaymentMethod {
	return c.method
}

// Amount returns the payment amount.
func (c RecordPaymentCommand) Amount() decimal.Decimal {
	return c.amount
}

// TransactionID returns the external transaction reference, possibly empty.
func (c RecordPaymentCommand) TransactionID() string {
	return c.transactionID
}

// EditedBy returns the user recording the payment, or nil.
func (c RecordPaymentCommand) EditedBy() *kernel.UUID {
	return c.editedBy
}

func (c *RecordPaymentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RecordPaymentCommand) setMethod(method order.PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}

	c.method = method
	return nil
}
