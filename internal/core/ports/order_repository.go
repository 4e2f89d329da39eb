package ports

import (
	"context"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for live order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate, children
	// included.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order aggregate by its unique identifier
	// with a row lock, so concurrent lifecycle operations on the same
	// order serialize instead of double-archiving it.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByCode retrieves an order aggregate by its 8-digit order code.
	GetByCode(ctx context.Context, code kernel.Code) (*order.Order, error)

	// Delete removes an order aggregate and its children from storage.
	// Called by the archival engine after the copy into history succeeded.
	Delete(ctx context.Context, id kernel.UUID) error

	// CodeExists reports whether any live order carries the given code.
	CodeExists(ctx context.Context, code kernel.Code) (bool, error)
}
