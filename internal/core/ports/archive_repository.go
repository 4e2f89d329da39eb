package ports

import (
	"context"

	"pos/internal/core/domain/model/history"
	"pos/internal/core/domain/model/kernel"
)

// ArchiveRepository defines the persistence contract for archived order
// records. Together with OrderRepository it upholds the archival engine's
// core invariant: an order code exists in exactly one of the two tables.
type ArchiveRepository interface {
	// Add persists a new archived order record, children included.
	Add(ctx context.Context, aggregate *history.ArchivedOrder) error

	// Get retrieves an archived order record by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*history.ArchivedOrder, error)

	// GetByCode retrieves an archived order record by its order code.
	GetByCode(ctx context.Context, code kernel.Code) (*history.ArchivedOrder, error)

	// Delete removes an archived order record and its children from
	// storage. Called by the revert operation after the copy back into
	// the live table succeeded.
	Delete(ctx context.Context, id kernel.UUID) error

	// CodeExists reports whether any archived order carries the given code.
	CodeExists(ctx context.Context, code kernel.Code) (bool, error)
}
