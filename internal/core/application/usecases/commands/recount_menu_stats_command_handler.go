package commands

import (
	"context"
)

// RecountMenuStatsCommandHandler recomputes the demand statistics source
// column for the whole menu in one transaction.
type RecountMenuStatsCommandHandler struct {
	uowFactory UoWFactory
}

// NewRecountMenuStatsCommandHandler creates a handler for the full menu
// statistics recount.
func NewRecountMenuStatsCommandHandler(uowFactory UoWFactory) RecountMenuStatsCommandHandler {
	return RecountMenuStatsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the recount command.
func (h *RecountMenuStatsCommandHandler) Handle(ctx context.Context, cmd RecountMenuStatsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.MenuRepository().RecountAllOrderTotals(ctx); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
