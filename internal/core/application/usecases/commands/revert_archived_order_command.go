package commands

import (
	"errors"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
	"pos/internal/pkg/guard"
)

var ErrRevertArchivedOrderCommandIsNotConstructed = errors.New(
	"RevertArchivedOrderCommand must be created via NewRevertArchivedOrderCommand constructor",
)

// RevertArchivedOrderCommand represents a request to move an archived order
// back to the live table, reversing an accidental archival.
type RevertArchivedOrderCommand struct { //nolint:recvcheck //using for validation
	archivedOrderID kernel.UUID
	targetStatus    order.Status

	guard guard.ConstructorGuard
}

// NewRevertArchivedOrderCommand creates a command to revert an archived order.
// The target status must be a known non-terminal status.
func NewRevertArchivedOrderCommand(archivedOrderID kernel.UUID, targetStatus order.Status) (RevertArchivedOrderCommand, error) {
	cmd := RevertArchivedOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setArchivedOrderID(archivedOrderID),
		cmd.setTargetStatus(targetStatus),
	); err != nil {
		return RevertArchivedOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RevertArchivedOrderCommand) Validate() error {
	return c.guard.Validate(ErrRevertArchivedOrderCommandIsNotConstructed)
}

// ArchivedOrderID returns the archived record to revert.
func (c RevertArchivedOrderCommand) ArchivedOrderID() kernel.UUID {
	return c.archivedOrderID
}

// TargetStatus returns the status the restored live order starts in.
func (c RevertArchivedOrderCommand) TargetStatus() order.Status {
	return c.targetStatus
}

func (c *RevertArchivedOrderCommand) setArchivedOrderID(archivedOrderID kernel.UUID) error {
	if err := archivedOrderID.Validate(); err != nil {
		return err
	}

	c.archivedOrderID = archivedOrderID
	return nil
}

func (c *RevertArchivedOrderCommand) setTargetStatus(targetStatus order.Status) error {
	if err := targetStatus.Validate(); err != nil {
		return err
	}

	c.targetStatus = targetStatus
	return nil
}
