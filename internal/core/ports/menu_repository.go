package ports

import (
	"context"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/menu"
)

// MenuRepository defines the persistence contract for menu items and their
// derived demand statistics.
type MenuRepository interface {
	// Add persists a new menu item.
	Add(ctx context.Context, aggregate *menu.MenuItem) error

	// Update persists changes to an existing menu item.
	Update(ctx context.Context, aggregate *menu.MenuItem) error

	// Get retrieves a menu item by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*menu.MenuItem, error)

	// RecountOrderTotals recomputes order_count for the given menu items as
	// the distinct number of archived orders referencing each of them, and
	// persists only that field.
	RecountOrderTotals(ctx context.Context, menuItemIDs []kernel.UUID) error

	// RecountAllOrderTotals recomputes order_count for every menu item.
	// Used by the periodic reconciliation job.
	RecountAllOrderTotals(ctx context.Context) error
}
