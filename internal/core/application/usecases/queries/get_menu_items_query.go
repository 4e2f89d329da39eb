package queries

import (
	"errors"
	"time"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetMenuItemsQueryIsNotConstructed = errors.New(
	"GetMenuItemsQuery must be created via NewGetMenuItemsQuery constructor",
)

// GetMenuItemsQuery lists menu items with their demand statistics, optionally
// restricted to one category or to items currently available for ordering.
type GetMenuItemsQuery struct {
	category      string
	availableOnly bool

	guard guard.ConstructorGuard
}

// NewGetMenuItemsQuery creates a menu listing query. An empty category means
// all categories.
func NewGetMenuItemsQuery(category string, availableOnly bool) GetMenuItemsQuery {
	return GetMenuItemsQuery{
		category:      category,
		availableOnly: availableOnly,
		guard:         guard.NewConstructorGuard(),
	}
}

// Category returns the category filter, empty when unset.
func (q GetMenuItemsQuery) Category() string {
	return q.category
}

// AvailableOnly reports whether unavailable items are excluded.
func (q GetMenuItemsQuery) AvailableOnly() bool {
	return q.availableOnly
}

// Validate ensures the query was created through the constructor.
func (q GetMenuItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuItemsQueryIsNotConstructed)
}

// MenuItemResponse is one row of the menu listing. OrderCount counts distinct
// archived orders that included the item.
type MenuItemResponse struct {
	ID             kernel.UUID
	Name           string
	Category       string
	Price          decimal.Decimal
	Available      bool
	DemandTier     string
	OrderCount     int
	LastTierUpdate *time.Time
}
