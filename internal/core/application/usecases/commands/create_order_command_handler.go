package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
	"pos/internal/core/ports"
	"pos/internal/pkg/errs"
)

// maxCodeAttempts bounds the random order code search. With 90 million
// possible codes, exhausting this means the code space is effectively full.
const maxCodeAttempts = 10

// ErrCodeGenerationExhausted is returned when no free order code was found
// within maxCodeAttempts draws.
var ErrCodeGenerationExhausted = errors.New("could not generate a unique order code")

// CreateOrderCommandHandler handles order placement: it generates an order
// code that is unique across both the live and archived tables, snapshots
// unit prices from the menu, and persists the new order with its lines.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order placement.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command and returns the generated
// order code.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (kernel.Code, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.Code{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.Code{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	archiveRepo := uow.ArchiveRepository()
	menuRepo := uow.MenuRepository()

	code, err := generateUniqueCode(ctx, orderRepo, archiveRepo)
	if err != nil {
		return kernel.Code{}, err
	}

	now := time.Now()
	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		code,
		cmd.CustomerName(),
		cmd.CustomerPhone(),
		cmd.OrderType(),
		cmd.TableID(),
		cmd.Address(),
		cmd.DeliveryCharge(),
		cmd.SpecialNotes(),
		cmd.CreatedBy(),
		now,
	)
	if err != nil {
		return kernel.Code{}, err
	}

	for _, line := range cmd.Lines() {
		menuItem, err := menuRepo.Get(ctx, line.MenuItemID)
		if err != nil {
			return kernel.Code{}, err
		}
		if !menuItem.IsAvailable() {
			return kernel.Code{}, errs.NewValueIsInvalidErrorWithCause("menuItemId",
				fmt.Errorf("%s is not available", menuItem.Name()))
		}
		if err := newOrder.AddItem(menuItem.ID(), line.Quantity, menuItem.Price(), now); err != nil {
			return kernel.Code{}, err
		}
	}

	if err := orderRepo.Add(ctx, newOrder); err != nil {
		return kernel.Code{}, err
	}

	if err := uow.Commit(ctx); err != nil {
		return kernel.Code{}, err
	}

	return code, nil
}

// generateUniqueCode draws random 8-digit codes until one is free in both the
// live and archived tables. Checking both upholds the exists-in-exactly-one
// invariant: a code released from the live table on archival must stay
// unambiguous in history.
func generateUniqueCode(
	ctx context.Context,
	orderRepo ports.OrderRepository,
	archiveRepo ports.ArchiveRepository,
) (kernel.Code, error) {
	for range maxCodeAttempts {
		code := kernel.NewRandomCode()

		inLive, err := orderRepo.CodeExists(ctx, code)
		if err != nil {
			return kernel.Code{}, err
		}
		if inLive {
			continue
		}

		inHistory, err := archiveRepo.CodeExists(ctx, code)
		if err != nil {
			return kernel.Code{}, err
		}
		if !inHistory {
			return code, nil
		}
	}
	return kernel.Code{}, ErrCodeGenerationExhausted
}
