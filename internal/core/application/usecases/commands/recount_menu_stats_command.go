package commands

import (
	"errors"

	"pos/internal/pkg/guard"
)

var ErrRecountMenuStatsCommandIsNotConstructed = errors.New(
	"RecountMenuStatsCommand must be created via NewRecountMenuStatsCommand constructor",
)

// RecountMenuStatsCommand recomputes order_count for every menu item from the
// archived order items. The reactive recount after each archival is best
// effort, so the periodic full recount repairs any drift it leaves behind.
type RecountMenuStatsCommand struct {
	guard guard.ConstructorGuard
}

// NewRecountMenuStatsCommand creates a command to recount all menu item
// statistics. This is a parameterless command used by the reconciliation job.
func NewRecountMenuStatsCommand() RecountMenuStatsCommand {
	return RecountMenuStatsCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c RecountMenuStatsCommand) Validate() error {
	return c.guard.Validate(ErrRecountMenuStatsCommandIsNotConstructed)
}
