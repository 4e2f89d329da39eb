package commands_test

import (
	"testing"
	"time"

	"pos/internal/core/application/usecases/commands"
	"pos/internal/core/domain/model/history"
	"pos/internal/core/domain/model/order"
	"pos/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateOrderStatusCommandHandler_Handle_PlainTransition(t *testing.T) {
	ctx := t.Context()
	o := newLiveOrder(t, order.Table, decimal.Zero)
	cmd, err := commands.NewUpdateOrderStatusCommand(o.ID(), order.Preparing, nil)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", mock.Anything, o.ID()).Return(o, nil).Once(),
		orderRepo.On("Update", mock.Anything, o).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)
	publisher.On("Publish", mock.Anything, mock.MatchedBy(func(e ports.OrderEvent) bool {
		return e.Kind == ports.OrderEventStatusChanged && e.Status == "preparing"
	})).Return(nil).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory, publisher, discardLogger())
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Preparing, o.Status())
	require.Len(t, o.StatusLogs(), 1)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_CompletionArchives(t *testing.T) {
	ctx := t.Context()
	o := newLiveOrder(t, order.Table, decimal.Zero)
	require.NoError(t, o.RecordPayment(order.Cash, decimal.NewFromInt(250), "", nil, time.Now()))
	cmd, err := commands.NewUpdateOrderStatusCommand(o.ID(), order.Completed, nil)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	archiveRepo := new(MockArchiveRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Twice()
	orderRepo.On("GetForUpdate", mock.Anything, o.ID()).Return(o, nil).Once()
	uow.On("ArchiveRepository").Return(archiveRepo).Once()
	archiveRepo.On("Add", mock.Anything, mock.MatchedBy(func(a *history.ArchivedOrder) bool {
		return a.Status() == order.Completed && a.Code().IsEqual(o.Code())
	})).Return(nil).Once()
	orderRepo.On("Delete", mock.Anything, o.ID()).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()
	_, recountMenuRepo := expectRecount(factory)

	publisher := new(MockEventPublisher)
	publisher.On("Publish", mock.Anything, mock.MatchedBy(func(e ports.OrderEvent) bool {
		return e.Kind == ports.OrderEventArchived && e.Status == "completed"
	})).Return(nil).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory, publisher, discardLogger())
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Completed, o.Status())
	assert.Equal(t, order.Paid, o.PaymentStatus())
	orderRepo.AssertExpectations(t)
	archiveRepo.AssertExpectations(t)
	recountMenuRepo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_UnsettledCompletionFails(t *testing.T) {
	ctx := t.Context()
	o := newLiveOrder(t, order.Delivery, decimal.NewFromInt(50))
	require.NoError(t, o.RecordPayment(order.Cash, decimal.NewFromInt(250), "", nil, time.Now()))
	cmd, err := commands.NewUpdateOrderStatusCommand(o.ID(), order.Completed, nil)
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

	publisher := new(MockEventPublisher)

	h := commands.NewUpdateOrderStatusCommandHandler(factory, publisher, discardLogger())
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrPaymentsNotSettled)
	assert.Equal(t, order.Pending, o.Status())
	orderRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestUpdateOrderStatusCommandHandler_Handle_DisallowedStatus(t *testing.T) {
	ctx := t.Context()
	o := newLiveOrder(t, order.Takeaway, decimal.Zero)
	cmd, err := commands.NewUpdateOrderStatusCommand(o.ID(), order.Served, nil)
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

	h := commands.NewUpdateOrderStatusCommandHandler(factory, new(MockEventPublisher), discardLogger())
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrInvalidTransition)
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
