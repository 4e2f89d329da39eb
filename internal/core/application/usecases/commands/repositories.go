// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"pos/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the live order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ArchiveRepoFactory provides access to the archived order repository within a transaction.
	ArchiveRepoFactory interface {
		ArchiveRepository() ports.ArchiveRepository
	}

	// MenuRepoFactory provides access to the menu repository within a transaction.
	MenuRepoFactory interface {
		MenuRepository() ports.MenuRepository
	}

	// OrderUoW manages transactions for operations that only touch the live
	// order table: payment recording and removal.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// UoW manages transactions across the live, archived, and menu tables.
	// Every archival operation runs on this: the copy into history and the
	// delete of the source row must commit or roll back together.
	UoW interface {
		TxManager
		OrderRepoFactory
		ArchiveRepoFactory
		MenuRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-table operations.
	UoWFactory interface {
		Create() UoW
	}
)
