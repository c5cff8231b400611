package commands_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"commerce/internal/core/application/usecases/commands"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/pkg/errs"
)

func TestNewChangeOrderStatusCommand_InvalidStatus(t *testing.T) {
	_, err := commands.NewChangeOrderStatusCommand(1, order.Unknown)
	require.Error(t, err)
}

func TestChangeOrderStatusCommandHandler_Handle_ShippedAssignsTrackingNumber(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewChangeOrderStatusCommand(1, order.Shipped)
	require.NoError(t, err)

	aggregate := testOrder(t)
	require.Empty(t, aggregate.TrackingNumber())

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, int64(1)).Return(aggregate, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.Shipped, aggregate.Status())
	assert.True(t, strings.HasPrefix(aggregate.TrackingNumber(), "TRK-"))

	uow.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_CancelledOrderRejectsTransition(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewChangeOrderStatusCommand(1, order.Processing)
	require.NoError(t, err)

	aggregate, err := order.RestoreOrder(1, 5, time.Now().UTC(), order.Cancelled, "1 Main St", nil, 1)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, int64(1)).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidStateTransition)
	assert.Equal(t, order.Cancelled, aggregate.Status())

	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_ExistingTrackingNumberIsKept(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewChangeOrderStatusCommand(1, order.Shipped)
	require.NoError(t, err)

	aggregate := testOrder(t)
	require.NoError(t, aggregate.SetTrackingNumber("TRK-PRESET"))

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, int64(1)).Return(aggregate, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, "TRK-PRESET", aggregate.TrackingNumber())
	uow.AssertExpectations(t)
}
