package commands_test

import (
	"errors"
	"testing"

	"hydrohub/internal/core/application/usecases/commands"
	"hydrohub/internal/core/domain/model/kernel"
	"hydrohub/internal/core/domain/model/order"
	"hydrohub/internal/core/domain/model/staff"
	"hydrohub/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAssignOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	staffID := kernel.NewUUID()
	deliveryMan, err := staff.NewStaff(staffID, "Karim", staff.RoleDeliveryMan)
	require.NoError(t, err)
	aggregate := newOrderInStatus(t, nil, order.New)

	cmd, err := commands.NewAssignOrderCommand(
		aggregate.ID(), staffID, []string{"call on arrival"}, "second floor")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	staffDir := new(MockStaffDirectory)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("StaffDirectory").Return(staffDir).Once(),
		staffDir.On("Get", ctx, staffID).Return(deliveryMan, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	orderRepo.AssertExpectations(t)
	staffDir.AssertExpectations(t)
	uow.AssertExpectations(t)

	assert.Equal(t, order.Assigned, aggregate.Status())
	require.NotNil(t, aggregate.Assignment())
	assert.Equal(t, "Karim", aggregate.Assignment().StaffName())
	assert.Equal(t, "second floor", aggregate.Assignment().Note())
	assert.Contains(t, aggregate.Requirements(), "call on arrival")
	assert.NotNil(t, aggregate.AssignedAt())
}

func TestAssignOrderCommandHandler_Handle_StaffNotFound(t *testing.T) {
	ctx := t.Context()
	staffID := kernel.NewUUID()
	aggregate := newOrderInStatus(t, nil, order.New)

	cmd, err := commands.NewAssignOrderCommand(aggregate.ID(), staffID, nil, "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	staffDir := new(MockStaffDirectory)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("StaffDirectory").Return(staffDir).Once(),
		staffDir.On("Get", ctx, staffID).Return(nil, errs.ErrObjectNotFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrStaffNotFound)
	assert.Equal(t, order.New, aggregate.Status())
}

func TestAssignOrderCommandHandler_Handle_InvalidTransition(t *testing.T) {
	ctx := t.Context()
	staffID := kernel.NewUUID()
	deliveryMan, err := staff.NewStaff(staffID, "Karim", staff.RoleDeliveryMan)
	require.NoError(t, err)
	aggregate := newOrderInStatus(t, nil, order.Shipped)

	cmd, err := commands.NewAssignOrderCommand(aggregate.ID(), staffID, nil, "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	staffDir := new(MockStaffDirectory)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("StaffDirectory").Return(staffDir).Once(),
		staffDir.On("Get", ctx, staffID).Return(deliveryMan, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrInvalidTransition)
}

func TestAssignOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewAssignOrderCommand(orderID, kernel.NewUUID(), nil, "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(nil, errs.ErrObjectNotFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestAssignOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()

	factory := new(MockAssignmentUoWFactory)
	handler := commands.NewAssignOrderCommandHandler(factory)
	err := handler.Handle(ctx, commands.AssignOrderCommand{})

	require.ErrorIs(t, err, commands.ErrAssignOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestAssignOrderCommandHandler_Handle_UpdateError(t *testing.T) {
	ctx := t.Context()
	staffID := kernel.NewUUID()
	deliveryMan, err := staff.NewStaff(staffID, "Karim", staff.RoleDeliveryMan)
	require.NoError(t, err)
	aggregate := newOrderInStatus(t, nil, order.New)

	cmd, err := commands.NewAssignOrderCommand(aggregate.ID(), staffID, nil, "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	staffDir := new(MockStaffDirectory)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("StaffDirectory").Return(staffDir).Once(),
		staffDir.On("Get", ctx, staffID).Return(deliveryMan, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).
			Return(errs.ErrConcurrencyConflict).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrConcurrencyConflict)
}

func TestNewAssignOrderCommand_Validation(t *testing.T) {
	t.Run("rejects_invalid_order_id", func(t *testing.T) {
		_, err := commands.NewAssignOrderCommand(kernel.UUID{}, kernel.NewUUID(), nil, "")
		require.Error(t, err)
	})

	t.Run("rejects_invalid_staff_id", func(t *testing.T) {
		_, err := commands.NewAssignOrderCommand(kernel.NewUUID(), kernel.UUID{}, nil, "")
		require.Error(t, err)
	})

	t.Run("joins_both_errors", func(t *testing.T) {
		_, err := commands.NewAssignOrderCommand(kernel.UUID{}, kernel.UUID{}, nil, "")
		require.Error(t, err)
		assert.True(t, errors.Is(err, kernel.ErrUUIDIsNotConstructed))
	})
}
