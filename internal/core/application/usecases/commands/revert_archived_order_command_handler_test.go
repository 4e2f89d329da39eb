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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newArchivedOrder(t *testing.T) *history.ArchivedOrder {
	t.Helper()

	o := newLiveOrder(t, order.Table, decimal.Zero)
	require.NoError(t, o.RecordPayment(order.Cash, decimal.NewFromInt(250), "", nil, time.Now()))
	require.NoError(t, o.ChangeStatus(order.Completed, nil, time.Now()))

	archived, _, err := history.FromCompletedOrder(kernel.NewUUID(), o, nil, time.Now())
	require.NoError(t, err)
	return archived
}

func TestRevertArchivedOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	archived := newArchivedOrder(t)
	cmd, err := commands.NewRevertArchivedOrderCommand(archived.ID(), order.Pending)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	archiveRepo := new(MockArchiveRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ArchiveRepository").Return(archiveRepo).Once()
	archiveRepo.On("Get", mock.Anything, archived.ID()).Return(archived, nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Add", mock.Anything, mock.MatchedBy(func(o *order.Order) bool {
		return o.Status() == order.Pending &&
			o.PaymentStatus() == order.Unpaid &&
			o.Code().IsEqual(archived.Code()) &&
			len(o.StatusLogs()) == 0
	})).Return(nil).Once()
	archiveRepo.On("Delete", mock.Anything, archived.ID()).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()
	expectRecount(factory)

	publisher := new(MockEventPublisher)
	publisher.On("Publish", mock.Anything, mock.MatchedBy(func(e ports.OrderEvent) bool {
		return e.Kind == ports.OrderEventReverted && e.Status == "pending"
	})).Return(nil).Once()

	h := commands.NewRevertArchivedOrderCommandHandler(factory, publisher, discardLogger())
	restoredID, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NoError(t, restoredID.Validate())
	assert.False(t, restoredID.IsEqual(archived.ID()))
	orderRepo.AssertExpectations(t)
	archiveRepo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestNewRevertArchivedOrderCommand_TerminalTarget(t *testing.T) {
	// A terminal target is caught when the conversion runs, not at command
	// construction; the command only rejects unknown statuses.
	_, err := commands.NewRevertArchivedOrderCommand(kernel.NewUUID(), order.UnknownStatus)
	require.Error(t, err)
}

func TestRevertArchivedOrderCommandHandler_Handle_TerminalTarget(t *testing.T) {
	ctx := t.Context()
	archived := newArchivedOrder(t)
	cmd, err := commands.NewRevertArchivedOrderCommand(archived.ID(), order.Cancelled)
	require.NoError(t, err)

	archiveRepo := new(MockArchiveRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ArchiveRepository").Return(archiveRepo).Once(),
		archiveRepo.On("Get", mock.Anything, archived.ID()).Return(archived, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRevertArchivedOrderCommandHandler(factory, new(MockEventPublisher), discardLogger())
	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
	archiveRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
