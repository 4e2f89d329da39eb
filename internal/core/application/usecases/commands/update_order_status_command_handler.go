package commands

import (
	"context"
	"log/slog"
	"time"

	"pos/internal/core/domain/model/history"
	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
	"pos/internal/core/ports"
)

// UpdateOrderStatusCommandHandler moves a live order through its lifecycle.
//
// A transition into Completed does not leave a completed row in the live
// table: the settlement-gated status change and the copy into history commit
// together, then the live row is deleted. Every other transition is a plain
// update with an audit trail entry.
type UpdateOrderStatusCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.OrderEventPublisher
	logger     *slog.Logger
}

// NewUpdateOrderStatusCommandHandler creates a handler for status transitions.
func NewUpdateOrderStatusCommandHandler(
	uowFactory UoWFactory,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger,
	}
}

// Handle processes the status change command.
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
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

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	now := time.Now()
	if err := o.ChangeStatus(cmd.Status(), cmd.Actor(), now); err != nil {
		return err
	}

	if o.Status() != order.Completed {
		if err := orderRepo.Update(ctx, o); err != nil {
			return err
		}
		if err := uow.Commit(ctx); err != nil {
			return err
		}

		publishOrderEvent(ctx, h.logger, h.publisher, ports.OrderEvent{
			Kind:       ports.OrderEventStatusChanged,
			OrderID:    o.ID().String(),
			OrderCode:  o.Code().String(),
			Status:     o.Status().String(),
			OccurredAt: now,
		})
		return nil
	}

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

// moveToHistory copies a completed order into the archived table and deletes
// the live row within the caller's transaction. The child copy is lenient;
// skipped rows are logged and the move proceeds.
func moveToHistory(
	ctx context.Context,
	uow UoW,
	o *order.Order,
	actor *kernel.UUID,
	now time.Time,
	logger *slog.Logger,
) (*history.ArchivedOrder, error) {
	archived, skipped, err := history.FromCompletedOrder(kernel.NewUUID(), o, actor, now)
	if err != nil {
		return nil, err
	}
	logSkippedChildren(logger, o.Code(), skipped)

	if err := uow.ArchiveRepository().Add(ctx, archived); err != nil {
		return nil, err
	}
	if err := uow.OrderRepository().Delete(ctx, o.ID()); err != nil {
		return nil, err
	}
	return archived, nil
}
