package commands

import (
	"context"
	"time"
)

// RemovePaymentCommandHandler deletes a payment row from a live order.
type RemovePaymentCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRemovePaymentCommandHandler creates a handler for payment removal.
func NewRemovePaymentCommandHandler(uowFactory OrderUoWFactory) RemovePaymentCommandHandler {
	return RemovePaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the payment removal command.
func (h *RemovePaymentCommandHandler) Handle(ctx context.Context, cmd RemovePaymentCommand) error {
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

	if err := o.RemovePayment(cmd.PaymentID(), time.Now()); err != nil {
		return err
	}

	if err := orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
