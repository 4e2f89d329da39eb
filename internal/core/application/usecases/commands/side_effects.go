package commands

import (
	"context"
	"log/slog"

	"pos/internal/core/domain/model/history"
	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/ports"
)

// recountMenuItems recomputes order_count for the given menu items in its own
// transaction, after the archival operation that changed history has
// committed. Best effort: a failure here is logged and never propagated, so
// stats drift can never undo an archival.
func recountMenuItems(ctx context.Context, logger *slog.Logger, uowFactory UoWFactory, ids []kernel.UUID) {
	if len(ids) == 0 {
		return
	}

	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		logger.Warn("menu stats recount skipped", "error", err)
		return
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.MenuRepository().RecountOrderTotals(ctx, ids); err != nil {
		logger.Warn("menu stats recount failed", "error", err)
		return
	}
	if err := uow.Commit(ctx); err != nil {
		logger.Warn("menu stats recount failed", "error", err)
	}
}

// publishOrderEvent publishes a lifecycle event after commit. Best effort.
func publishOrderEvent(ctx context.Context, logger *slog.Logger, publisher ports.OrderEventPublisher, event ports.OrderEvent) {
	if publisher == nil {
		return
	}
	if err := publisher.Publish(ctx, event); err != nil {
		logger.Warn("order event publish failed",
			"kind", event.Kind, "order_code", event.OrderCode, "error", err)
	}
}

// logSkippedChildren records child rows a lenient copy left behind.
func logSkippedChildren(logger *slog.Logger, orderCode kernel.Code, skipped []*history.ChildCopyError) {
	for _, s := range skipped {
		logger.Warn("child row skipped during copy",
			"order_code", orderCode.String(), "kind", s.Kind, "error", s.Cause)
	}
}

func archivedMenuItemIDs(a *history.ArchivedOrder) []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(a.Items()))
	for _, item := range a.Items() {
		ids = append(ids, item.MenuItemID())
	}
	return ids
}
