package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"pos/internal/core/application/usecases/commands"
	"pos/internal/core/domain/model/history"
	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/menu"
	"pos/internal/core/domain/model/order"
	"pos/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Get(_ context.Context, _ kernel.UUID) (*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockOrderRepository) GetByCode(_ context.Context, _ kernel.Code) (*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockOrderRepository) CodeExists(ctx context.Context, code kernel.Code) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

type MockArchiveRepository struct{ mock.Mock }

func (m *MockArchiveRepository) Add(ctx context.Context, a *history.ArchivedOrder) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}
func (m *MockArchiveRepository) Get(ctx context.Context, id kernel.UUID) (*history.ArchivedOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*history.ArchivedOrder), args.Error(1)
}
func (m *MockArchiveRepository) GetByCode(_ context.Context, _ kernel.Code) (*history.ArchivedOrder, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockArchiveRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockArchiveRepository) CodeExists(ctx context.Context, code kernel.Code) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

type MockMenuRepository struct{ mock.Mock }

func (m *MockMenuRepository) Add(_ context.Context, _ *menu.MenuItem) error {
	return errors.New("not implemented in mock")
}
func (m *MockMenuRepository) Update(_ context.Context, _ *menu.MenuItem) error {
	return errors.New("not implemented in mock")
}
func (m *MockMenuRepository) Get(ctx context.Context, id kernel.UUID) (*menu.MenuItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*menu.MenuItem), args.Error(1)
}
func (m *MockMenuRepository) RecountOrderTotals(ctx context.Context, ids []kernel.UUID) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}
func (m *MockMenuRepository) RecountAllOrderTotals(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockUoW) ArchiveRepository() ports.ArchiveRepository {
	args := m.Called()
	return args.Get(0).(ports.ArchiveRepository)
}
func (m *MockUoW) MenuRepository() ports.MenuRepository {
	args := m.Called()
	return args.Get(0).(ports.MenuRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, event ports.OrderEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// expectRecount wires the unit of work the post-commit stats recount runs on.
func expectRecount(factory *MockUoWFactory) (*MockUoW, *MockMenuRepository) {
	menuRepo := new(MockMenuRepository)
	uow := new(MockUoW)
	uow.On("Begin", mock.Anything).Return(nil).Once()
	uow.On("MenuRepository").Return(menuRepo).Once()
	menuRepo.On("RecountOrderTotals", mock.Anything, mock.Anything).Return(nil).Once()
	uow.On("Commit", mock.Anything).Return(nil).Once()
	uow.On("Rollback", mock.Anything).Return(nil).Once()
	factory.On("Create").Return(uow).Once()
	return uow, menuRepo
}

// newLiveOrder builds a pending table order with one 250.00 line.
func newLiveOrder(t interface {
	Helper()
	Fatalf(format string, args ...any)
}, orderType order.OrderType, deliveryCharge decimal.Decimal,
) *order.Order {
	t.Helper()

	o, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewRandomCode(),
		"Nabin Karki",
		"9800000000",
		orderType,
		nil,
		order.DeliveryAddress{},
		deliveryCharge,
		"",
		nil,
		time.Now(),
	)
	if err != nil {
		t.Fatalf("new order: %v", err)
	}
	if err := o.AddItem(kernel.NewUUID(), 1, decimal.NewFromInt(250), time.Now()); err != nil {
		t.Fatalf("add item: %v", err)
	}
	return o
}
