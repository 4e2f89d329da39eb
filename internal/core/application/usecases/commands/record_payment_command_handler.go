package commands

import (
	"context"
	"time"
)

// RecordPaymentCommandHandler appends a payment row to a live order.
type RecordPaymentCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRecordPaymentCommandHandler creates a handler for payment recording.
func NewRecordPaymentCommandHandler(uowFactory OrderUoWFactory) RecordPaymentCommandHandler {
	return RecordPaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the payment recording command.
// The order is locked for the duration of the transaction so a concurrent
// completion cannot read a stale settled sum.
func (h *RecordPaymentCommandHandler) Handle(ctx context.Context, cmd RecordPaymentCommand) error {
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

	if err := o.RecordPayment(cmd.Method(), cmd.Amount(), cmd.TransactionID(), cmd.EditedBy(), time.Now()); err != nil {
		return err
	}

	if err := orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
