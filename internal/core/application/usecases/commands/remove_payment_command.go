package commands

import (
	"errors"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/pkg/guard"
)

var ErrRemovePaymentCommandIsNotConstructed = errors.New(
	"RemovePaymentCommand must be created via NewRemovePaymentCommand constructor",
)

// RemovePaymentCommand represents a request to delete a recorded payment,
// typically to clear the way for a cancellation.
type RemovePaymentCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	paymentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemovePaymentCommand creates a command to delete a recorded payment.
func NewRemovePaymentCommand(orderID, paymentID kernel.UUID) (RemovePaymentCommand, error) {
	cmd := RemovePaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setPaymentID(paymentID),
	); err != nil {
		return RemovePaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemovePaymentCommand) Validate() error {
	return c.guard.Validate(ErrRemovePaymentCommandIsNotConstructed)
}

// OrderID returns the order the payment belongs to.
func (c RemovePaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PaymentID returns the payment to delete.
func (c RemovePaymentCommand) PaymentID() kernel.UUID {
	return c.paymentID
}

func (c *RemovePaymentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RemovePaymentCommand) setPaymentID(paymentID kernel.UUID) error {
	if err := paymentID.Validate(); err != nil {
		return err
	}

	c.paymentID = paymentID
	return nil
}
