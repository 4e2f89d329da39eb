package commands

import (
	"context"
	"log/slog"
	"time"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/ports"
)

// RevertArchivedOrderCommandHandler moves an archived order back into the
// live table: the restored order is inserted first, the history record
// deleted after, both in one transaction. The restored order gets a fresh
// identifier but keeps its original order code, so the code stays in exactly
// one of the two tables.
type RevertArchivedOrderCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.OrderEventPublisher
	logger     *slog.Logger
}

// NewRevertArchivedOrderCommandHandler creates a handler for archival reverts.
func NewRevertArchivedOrderCommandHandler(
	uowFactory UoWFactory,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) RevertArchivedOrderCommandHandler {
	return RevertArchivedOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger,
	}
}

// Handle processes the revert command and returns the identifier of the
// restored live order.
func (h *RevertArchivedOrderCommandHandler) Handle(ctx context.Context, cmd RevertArchivedOrderCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	archiveRepo := uow.ArchiveRepository()
	archived, err := archiveRepo.Get(ctx, cmd.ArchivedOrderID())
	if err != nil {
		return kernel.UUID{}, err
	}

	now := time.Now()
	restored, skipped, err := archived.ToOrder(kernel.NewUUID(), cmd.TargetStatus(), now)
	if err != nil {
		return kernel.UUID{}, err
	}
	logSkippedChildren(h.logger, archived.Code(), skipped)

	if err := uow.OrderRepository().Add(ctx, restored); err != nil {
		return kernel.UUID{}, err
	}
	if err := archiveRepo.Delete(ctx, archived.ID()); err != nil {
		return kernel.UUID{}, err
	}
	if err := uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	recountMenuItems(ctx, h.logger, h.uowFactory, archivedMenuItemIDs(archived))
	publishOrderEvent(ctx, h.logger, h.publisher, ports.OrderEvent{
		Kind:       ports.OrderEventReverted,
		OrderID:    restored.ID().String(),
		OrderCode:  restored.Code().String(),
		Status:     restored.Status().String(),
		OccurredAt: now,
	})
	return restored.ID(), nil
}
