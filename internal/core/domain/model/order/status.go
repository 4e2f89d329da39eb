package order

import (
	"fmt"
	"strings"

	"pos/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// Which statuses are reachable depends on the order type (see
// OrderType.AllowedStatuses):
//
//	table:    pending -> preparing -> ready -> served -> completed
//	takeaway: pending -> preparing -> ready_to_pickup -> completed
//	delivery: pending -> preparing -> ready -> on_the_way -> completed
//
// plus cancelled, reachable from any state. Completed and Cancelled are
// terminal: they hand the order over to the archival engine.
type Status int

const (
	// UnknownStatus represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	UnknownStatus Status = iota

	// Pending is the initial status when an order is first placed.
	Pending

	// Preparing indicates the kitchen is working on the order.
	// The UI calls this state "cooking"; ParseStatus maps the alias.
	Preparing

	// Ready indicates a table or delivery order is plated and waiting.
	Ready

	// OnTheWay indicates a delivery order has left with a rider.
	OnTheWay

	// ReadyToPickup indicates a takeaway order is waiting at the counter.
	ReadyToPickup

	// Served indicates a table order is on the table, awaiting settlement.
	Served

	// Completed is the terminal success state. Entering it requires the
	// settlement gate to pass and triggers archival.
	Completed

	// Cancelled is the terminal failure state, set only by the cancel
	// operation, which archives the order with a cancellation reason.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		UnknownStatus: "unknown",
		Pending:       "pending",
		Preparing:     "preparing",
		Ready:         "ready",
		OnTheWay:      "on_the_way",
		ReadyToPickup: "ready_to_pickup",
		Served:        "served",
		Completed:     "completed",
		Cancelled:     "cancelled",
	}
}

// statusAliases maps the UI-friendly spellings some clients send to the
// canonical status names.
func statusAliases() map[string]string {
	return map[string]string{
		"cooking":  "preparing",
		"cook":     "preparing",
		"complete": "completed",
	}
}

// ParseStatus converts a status name into its Status value, normalizing the
// UI aliases first ("cooking"/"cook" -> preparing, "complete" -> completed).
// Unrecognized names return UnknownStatus and an error.
func ParseStatus(s string) (Status, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if canonical, ok := statusAliases()[name]; ok {
		name = canonical
	}
	for status, str := range getStatusStrings() {
		if status != UnknownStatus && str == name {
			return status, nil
		}
	}
	return UnknownStatus, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a known status", s))
}

// String returns the canonical lowercase name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Validate checks that the status is one of the known values.
func (s Status) Validate() error {
	if s <= UnknownStatus || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// IsTerminal reports whether the status ends the live lifecycle of an order.
// Terminal statuses are the only ones an archived order may carry.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}
