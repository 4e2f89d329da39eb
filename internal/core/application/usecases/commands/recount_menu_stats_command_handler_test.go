package commands_test

import (
	"context"
	"errors"
	"testing"

	"pos/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRecountMenuStatsCommandHandler_Success(t *testing.T) {
	menuRepo := new(MockMenuRepository)
	menuRepo.On("RecountAllOrderTotals", mock.Anything).Return(nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", mock.Anything).Return(nil).Once()
	uow.On("MenuRepository").Return(menuRepo).Once()
	uow.On("Commit", mock.Anything).Return(nil).Once()
	uow.On("Rollback", mock.Anything).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRecountMenuStatsCommandHandler(factory)
	err := handler.Handle(context.Background(), commands.NewRecountMenuStatsCommand())

	require.NoError(t, err)
	uow.AssertExpectations(t)
	menuRepo.AssertExpectations(t)
}

func TestRecountMenuStatsCommandHandler_RecountError(t *testing.T) {
	recountErr := errors.New("database gone")

	menuRepo := new(MockMenuRepository)
	menuRepo.On("RecountAllOrderTotals", mock.Anything).Return(recountErr).Once()

	uow := new(MockUoW)
	uow.On("Begin", mock.Anything).Return(nil).Once()
	uow.On("MenuRepository").Return(menuRepo).Once()
	uow.On("Rollback", mock.Anything).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRecountMenuStatsCommandHandler(factory)
	err := handler.Handle(context.Background(), commands.NewRecountMenuStatsCommand())

	require.Error(t, err)
	assert.ErrorIs(t, err, recountErr)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestRecountMenuStatsCommandHandler_NotConstructed(t *testing.T) {
	factory := new(MockUoWFactory)

	handler := commands.NewRecountMenuStatsCommandHandler(factory)
	err := handler.Handle(context.Background(), commands.RecountMenuStatsCommand{})

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrRecountMenuStatsCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
