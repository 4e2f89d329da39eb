package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"pos/internal/core/domain/model/history"
	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
	"pos/internal/core/ports"
)

// CancelOrderCommandHandler cancels a live order and moves it into history.
//
// Unlike completion archival the copy is strict: any child row that fails to
// copy aborts the whole operation with ErrArchivalAborted and the live order
// stays exactly as it was. Orders with recorded payments cannot be cancelled
// until the payments are removed.
type CancelOrderCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.OrderEventPublisher
	logger     *slog.Logger
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(
	uowFactory UoWFactory,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger,
	}
}

// Handle processes the cancellation command.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	if o.HasPayments() {
		return &HasSettledPaymentsError{Settled: o.SettledAmount()}
	}

	now := time.Now()
	if err := o.ChangeStatus(order.Cancelled, cmd.CancelledBy(), now); err != nil {
		return err
	}

	archived, err := history.FromCancelledOrder(kernel.NewUUID(), o, cmd.CancelledBy(), cmd.Reason(), now)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrArchivalAborted, err)
	}

	if err := uow.ArchiveRepository().Add(ctx, archived); err != nil {
		return err
	}
	if err := orderRepo.Delete(ctx, o.ID()); err != nil {
		return err
	}
	if err := uow.Commit(ctx); err != nil {
		return err
	}

	recountMenuItems(ctx, h.logger, h.uowFactory, archivedMenuItemIDs(archived))
	publishOrderEvent(ctx, h.logger, h.publisher, ports.OrderEvent{
		Kind:       ports.OrderEventCancelled,
		OrderID:    o.ID().String(),
		OrderCode:  o.Code().String(),
		Status:     o.Status().String(),
		OccurredAt: now,
	})
	return nil
}
