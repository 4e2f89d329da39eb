package commands

import (
	"context"
	"log/slog"
	"time"

	"pos/internal/core/ports"
)

// ArchiveCompletedOrderCommandHandler moves a completed live order into
// history: copy first, delete the source only once the copy succeeded, both
// in one transaction.
type ArchiveCompletedOrderCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.OrderEventPublisher
	logger     *slog.Logger
}

// NewArchiveCompletedOrderCommandHandler creates a handler for explicit archival.
func NewArchiveCompletedOrderCommandHandler(
	uowFactory UoWFactory,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) ArchiveCompletedOrderCommandHandler {
	return ArchiveCompletedOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger,
	}
}

// Handle processes the archival command. Fails with
// history.ErrOrderIsNotCompleted when the order has not been completed.
func (h *ArchiveCompletedOrderCommandHandler) Handle(ctx context.Context, cmd ArchiveCompletedOrderCommand) error {
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

	o, err := uow.OrderRepository().GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	now := time.Now()
	archived, err := moveToHistory(ctx, uow, o, cmd.Actor(), now, h.logger)
	if err != nil {
		return err
	}
	if err := uow.Commit(ctx); err != nil {
		return err
	}

	recountMenuItems(ctx, h.logger, h.uowFactory, archivedMenuItemIDs(archived))
	publishOrderEvent(ctx, h.logger, h.publisher, ports.OrderEvent{
		Kind:       ports.OrderEventArchived,
		OrderID:    o.ID().String(),
		OrderCode:  o.Code().String(),
		Status:     o.Status().String(),
		OccurredAt: now,
	})
	return nil
}
