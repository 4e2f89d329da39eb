// Package menu contains the menu item aggregate.
//
// Menu items are mostly read-side data for the ordering flow: the unit price
// is snapshotted onto order lines at creation time, and availability gates
// whether an item can be ordered at all. The demand fields (tier, order count,
// last tier update) are derived statistics maintained by background
// reconciliation, never by the ordering flow itself.
package menu

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrMenuItemIsNotConstructed is returned when a MenuItem instance was not
// created through NewMenuItem or RestoreMenuItem.
var ErrMenuItemIsNotConstructed = errors.New("MenuItem must be created via NewMenuItem or RestoreMenuItem")

// DemandTier buckets a menu item by how often it is ordered.
type DemandTier int

const (
	UnknownTier DemandTier = iota
	LowDemand
	MediumDemand
	HighDemand
)

func getDemandTierStrings() map[DemandTier]string {
	return map[DemandTier]string{
		LowDemand:    "low",
		MediumDemand: "medium",
		HighDemand:   "high",
	}
}

// ParseDemandTier maps a stored tier string onto a DemandTier.
func ParseDemandTier(raw string) (DemandTier, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	for tier, name := range getDemandTierStrings() {
		if name == normalized {
			return tier, nil
		}
	}
	return UnknownTier, errs.NewValueIsInvalidErrorWithCause("demandTier",
		fmt.Errorf("unknown tier %q", raw))
}

func (d DemandTier) String() string {
	if name, ok := getDemandTierStrings()[d]; ok {
		return name
	}
	return "unknown"
}

// MenuItem is the aggregate root for one sellable item.
type MenuItem struct {
	id        kernel.UUID
	name      string
	category  string
	price     decimal.Decimal
	available bool

	// Derived demand statistics, maintained by reconciliation only.
	demandTier     DemandTier
	orderCount     int
	lastTierUpdate *time.Time

	isConstructed bool
}

// NewMenuItem creates a new menu item with zeroed demand statistics.
func NewMenuItem(id kernel.UUID, name, category string, price decimal.Decimal, available bool) (*MenuItem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if price.IsNegative() {
		return nil, errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%s is negative", price))
	}

	return &MenuItem{
		id:            id,
		name:          name,
		category:      category,
		price:         price,
		available:     available,
		demandTier:    UnknownTier,
		isConstructed: true,
	}, nil
}

// RestoreMenuItem reconstructs a menu item from persistence.
func RestoreMenuItem(
	id kernel.UUID,
	name, category string,
	price decimal.Decimal,
	available bool,
	demandTier DemandTier,
	orderCount int,
	lastTierUpdate *time.Time,
) (*MenuItem, error) {
	item, err := NewMenuItem(id, name, category, price, available)
	if err != nil {
		return nil, err
	}
	item.demandTier = demandTier
	item.orderCount = orderCount
	item.lastTierUpdate = lastTierUpdate
	return item, nil
}

// Validate ensures the MenuItem instance was properly constructed.
func (m *MenuItem) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMenuItemIsNotConstructed
	}
	return nil
}

// IsEqual compares two menu items by their unique identifiers.
func (m *MenuItem) IsEqual(other *MenuItem) bool {
	return other != nil && m.id.IsEqual(other.id)
}

// ID returns the menu item's unique identifier.
func (m *MenuItem) ID() kernel.UUID {
	return m.id
}

// Name returns the display name.
func (m *MenuItem) Name() string {
	return m.name
}

// Category returns the menu category, possibly empty.
func (m *MenuItem) Category() string {
	return m.category
}

// Price returns the current unit price. Order lines snapshot this value at
// creation and are not affected by later changes.
func (m *MenuItem) Price() decimal.Decimal {
	return m.price
}

// IsAvailable reports whether the item can currently be ordered.
func (m *MenuItem) IsAvailable() bool {
	return m.available
}

// DemandTier returns the derived demand bucket.
func (m *MenuItem) DemandTier() DemandTier {
	return m.demandTier
}

// OrderCount returns the number of distinct archived orders that included
// this item.
func (m *MenuItem) OrderCount() int {
	return m.orderCount
}

// LastTierUpdate returns when the demand tier was last recomputed, or nil.
func (m *MenuItem) LastTierUpdate() *time.Time {
	return m.lastTierUpdate
}

// SetAvailability toggles whether the item can be ordered.
func (m *MenuItem) SetAvailability(available bool) {
	m.available = available
}

// SetOrderCount overwrites the derived order count. Only reconciliation
// should call this; it leaves every other field untouched.
func (m *MenuItem) SetOrderCount(count int) error {
	if count < 0 {
		return errs.NewValueIsInvalidErrorWithCause("orderCount",
			fmt.Errorf("%d is negative", count))
	}
	m.orderCount = count
	return nil
}
