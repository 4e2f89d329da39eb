package commands_test

import (
	"testing"
	"time"

	"pos/internal/core/application/usecases/commands"
	"pos/internal/core/domain/model/history"
	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
	"pos/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestArchiveCompletedOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	actor := kernel.NewUUID()
	o := newLiveOrder(t, order.Table, decimal.Zero)
	require.NoError(t, o.RecordPayment(order.Cash, decimal.NewFromInt(250), "", nil, time.Now()))
	require.NoError(t, o.ChangeStatus(order.Completed, &actor, time.Now()))

	cmd, err := commands.NewArchiveCompletedOrderCommand(o.ID(), &actor)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	archiveRepo := new(MockArchiveRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Twice()
	orderRepo.On("GetForUpdate", mock.Anything, o.ID()).Return(o, nil).Once()
	uow.On("ArchiveRepository").Return(archiveRepo).Once()
	archiveRepo.On("Add", mock.Anything, mock.MatchedBy(func(a *history.ArchivedOrder) bool {
		return a.CompletedBy() != nil && a.CompletedBy().IsEqual(actor)
	})).Return(nil).Once()
	orderRepo.On("Delete", mock.Anything, o.ID()).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()
	expectRecount(factory)

	publisher := new(MockEventPublisher)
	publisher.On("Publish", mock.Anything, mock.MatchedBy(func(e ports.OrderEvent) bool {
		return e.Kind == ports.OrderEventArchived
	})).Return(nil).Once()

	h := commands.NewArchiveCompletedOrderCommandHandler(factory, publisher, discardLogger())
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	orderRepo.AssertExpectations(t)
	archiveRepo.AssertExpectations(t)
}

func TestArchiveCompletedOrderCommandHandler_Handle_NotCompleted(t *testing.T) {
	ctx := t.Context()
	o := newLiveOrder(t, order.Table, decimal.Zero)

	cmd, err := commands.NewArchiveCompletedOrderCommand(o.ID(), nil)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", mock.Anything, o.ID()).Return(o, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewArchiveCompletedOrderCommandHandler(factory, new(MockEventPublisher), discardLogger())
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, history.ErrOrderIsNotCompleted)
	orderRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
