package commands

import (
	"errors"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/pkg/guard"
)

var ErrArchiveCompletedOrderCommandIsNotConstructed = errors.New(
	"ArchiveCompletedOrderCommand must be created via NewArchiveCompletedOrderCommand constructor",
)

// ArchiveCompletedOrderCommand represents a request to move an
// already-completed live order into history without re-running the status
// transition, for rows a failed earlier archival left behind.
type ArchiveCompletedOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   *kernel.UUID

	guard guard.ConstructorGuard
}

// NewArchiveCompletedOrderCommand creates a command to archive a completed order.
func NewArchiveCompletedOrderCommand(orderID kernel.UUID, actor *kernel.UUID) (ArchiveCompletedOrderCommand, error) {
	cmd := ArchiveCompletedOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return ArchiveCompletedOrderCommand{}, err
	}

	cmd.actor = actor
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ArchiveCompletedOrderCommand) Validate() error {
	return c.guard.Validate(ErrArchiveCompletedOrderCommandIsNotConstructed)
}

// OrderID returns the order to archive.
func (c ArchiveCompletedOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the user requesting the archival, or nil.
func (c ArchiveCompletedOrderCommand) Actor() *kernel.UUID {
	return c.actor
}

func (c *ArchiveCompletedOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
