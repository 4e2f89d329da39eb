package order

import (
	"fmt"
	"strings"

	"pos/internal/pkg/errs"
)

// OrderType distinguishes how an order is fulfilled. It determines which
// statuses the order may move through: table orders are served at a table,
// takeaway orders are picked up, delivery orders go out with a rider and
// carry a delivery charge.
type OrderType int

const (
	// UnknownType represents an invalid or undefined order type.
	UnknownType OrderType = iota

	// Table is an order served at a table in the restaurant.
	Table

	// Takeaway is an order picked up at the counter.
	Takeaway

	// Delivery is an order delivered to a customer address.
	// Only delivery orders owe the delivery charge.
	Delivery
)

func getOrderTypeStrings() map[OrderType]string {
	return map[OrderType]string{
		UnknownType: "unknown",
		Table:       "table",
		Takeaway:    "takeaway",
		Delivery:    "delivery",
	}
}

// ParseOrderType converts the persisted/wire name of an order type into its
// OrderType value. Unrecognized names return UnknownType and an error.
func ParseOrderType(s string) (OrderType, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for t, str := range getOrderTypeStrings() {
		if t != UnknownType && str == name {
			return t, nil
		}
	}
	return UnknownType, errs.NewValueIsInvalidErrorWithCause("orderType",
		fmt.Errorf("%q is not a known order type", s))
}

// String returns the lowercase name of the order type.
func (t OrderType) String() string {
	if s, ok := getOrderTypeStrings()[t]; ok {
		return s
	}
	return "unknown"
}

// Validate checks that the order type is one of the known values.
func (t OrderType) Validate() error {
	if t != Table && t != Takeaway && t != Delivery {
		return errs.NewValueIsInvalidErrorWithCause("orderType",
			fmt.Errorf("%d is not a valid order type", t))
	}
	return nil
}

// AllowedStatuses returns the set of statuses an order of this type may hold.
// Every set includes Cancelled, so cancellation is reachable from any state.
//
// An unknown order type falls back to the union of all statuses. That
// permissive default mirrors the behavior the rest of the system has always
// relied on for legacy rows with unrecognized types; tightening it would
// strand such orders with no legal transition at all.
func (t OrderType) AllowedStatuses() []Status {
	switch t {
	case Table:
		return []Status{Pending, Preparing, Ready, Served, Completed, Cancelled}
	case Takeaway:
		return []Status{Pending, Preparing, ReadyToPickup, Completed, Cancelled}
	case Delivery:
		return []Status{Pending, Preparing, Ready, OnTheWay, Completed, Cancelled}
	default:
		return []Status{Pending, Preparing, Ready, OnTheWay, ReadyToPickup, Served, Completed, Cancelled}
	}
}

// Allows reports whether an order of this type may hold the given status.
func (t OrderType) Allows(s Status) bool {
	for _, allowed := range t.AllowedStatuses() {
		if allowed == s {
			return true
		}
	}
	return false
}
