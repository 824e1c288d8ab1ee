package commands_test

import (
	"context"
	"testing"
	"time"

	"hydrohub/internal/core/application/usecases/commands"
	"hydrohub/internal/core/domain/model/cart"
	"hydrohub/internal/core/domain/model/customer"
	"hydrohub/internal/core/domain/model/kernel"
	"hydrohub/internal/core/domain/model/order"
	"hydrohub/internal/core/domain/model/staff"
	"hydrohub/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Add(ctx context.Context, c *customer.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCustomerRepository) Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

type MockStaffDirectory struct{ mock.Mock }

func (m *MockStaffDirectory) Get(ctx context.Context, id kernel.UUID) (*staff.Staff, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*staff.Staff), args.Error(1)
}

func (m *MockStaffDirectory) FindByRole(ctx context.Context, role staff.Role) ([]*staff.Staff, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*staff.Staff), args.Error(1)
}

type MockParkedOrderRepository struct{ mock.Mock }

func (m *MockParkedOrderRepository) Add(ctx context.Context, p *cart.ParkedOrder) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockParkedOrderRepository) Get(ctx context.Context, id kernel.UUID) (*cart.ParkedOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.ParkedOrder), args.Error(1)
}

func (m *MockParkedOrderRepository) TakeAndDelete(ctx context.Context, id kernel.UUID) (*cart.ParkedOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.ParkedOrder), args.Error(1)
}

func (m *MockParkedOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockParkedOrderRepository) GetAll(ctx context.Context) ([]*cart.ParkedOrder, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*cart.ParkedOrder), args.Error(1)
}

func (m *MockParkedOrderRepository) GetAllCreatedBefore(ctx context.Context, cutoff time.Time) ([]*cart.ParkedOrder, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*cart.ParkedOrder), args.Error(1)
}

// MockUoW satisfies every unit-of-work interface the handlers use.
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

func (m *MockUoW) CustomerRepository() ports.CustomerRepository {
	args := m.Called()
	return args.Get(0).(ports.CustomerRepository)
}

func (m *MockUoW) StaffDirectory() ports.StaffDirectory {
	args := m.Called()
	return args.Get(0).(ports.StaffDirectory)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockBillingUoWFactory struct{ mock.Mock }

func (m *MockBillingUoWFactory) Create() commands.BillingUoW {
	args := m.Called()
	return args.Get(0).(commands.BillingUoW)
}

type MockAssignmentUoWFactory struct{ mock.Mock }

func (m *MockAssignmentUoWFactory) Create() commands.AssignmentUoW {
	args := m.Called()
	return args.Get(0).(commands.AssignmentUoW)
}

// Test fixtures shared across the handler tests.

func testCart(t *testing.T) cart.Cart {
	t.Helper()
	item, err := order.NewLineItem("wb-19l", "19L Water Bottle", kernel.NewMoney(300), 1)
	require.NoError(t, err)
	c, err := cart.NewCart().UpdateQuantity(item, 4)
	require.NoError(t, err)
	return c
}

func testBill(t *testing.T, previousBalance int64) order.Bill {
	t.Helper()
	bill, err := order.NewBill(
		kernel.NewMoney(1200), kernel.MoneyZero, order.NoDiscount(), 0,
		kernel.MoneyZero, kernel.MoneyZero, kernel.NewMoney(1200), kernel.NewMoney(previousBalance))
	require.NoError(t, err)
	return bill
}

func newOrderInStatus(t *testing.T, customerID *kernel.UUID, status order.Status) *order.Order {
	t.Helper()
	aggregate, err := order.NewOrder(
		kernel.NewUUID(), customerID, testCart(t).Items(), nil, testBill(t, 0))
	require.NoError(t, err)

	if status == order.New {
		return aggregate
	}

	assignment, err := order.NewAssignment(kernel.NewUUID(), "Karim", "")
	require.NoError(t, err)
	require.NoError(t, aggregate.Assign(assignment, nil))
	if status == order.Assigned {
		return aggregate
	}

	require.NoError(t, aggregate.MarkShipped())
	if status == order.Shipped {
		return aggregate
	}

	payment, err := order.NewPayment("cash", kernel.NewMoney(1200), kernel.MoneyZero, order.ReconcileReturnCash)
	require.NoError(t, err)
	require.NoError(t, aggregate.Complete(payment))
	return aggregate
}
