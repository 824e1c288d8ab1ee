package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"hydrohub/internal/adapters/out/postgres/orderrepo"
	"hydrohub/internal/core/domain/model/kernel"
	"hydrohub/internal/core/domain/model/order"
	"hydrohub/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()

	testOrder := suite.createTestOrder(nil)
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertOrderCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_RoundTripsAllFields() {
	ctx := context.Background()

	customerID := kernel.NewUUID()
	testOrder := suite.createCompletedOrder(&customerID)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.True(loaded.IsEqual(testOrder))
	suite.Equal(order.Completed, loaded.Status())
	suite.Equal(testOrder.Revision(), loaded.Revision())
	suite.Require().NotNil(loaded.CustomerID())
	suite.True(loaded.CustomerID().IsEqual(customerID))
	suite.Equal(testOrder.LineItems(), loaded.LineItems())
	suite.Equal(testOrder.Requirements(), loaded.Requirements())
	suite.Equal(testOrder.Bill().Payable(), loaded.Bill().Payable())
	suite.Equal(testOrder.Bill().Discount(), loaded.Bill().Discount())

	suite.Require().NotNil(loaded.Assignment())
	suite.Equal("Karim", loaded.Assignment().StaffName())

	suite.Require().NotNil(loaded.Payment())
	suite.Equal("cash", loaded.Payment().Method())
	suite.Equal(testOrder.Payment().Change(), loaded.Payment().Change())
	suite.Equal(testOrder.Payment().Reconciled(), loaded.Payment().Reconciled())

	suite.Require().NotNil(loaded.CompletedAt())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	result, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_LifecycleTransitions() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	testOrder := suite.createTestOrder(nil)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))
	suite.Equal(1, testOrder.Revision())

	assignment, err := order.NewAssignment(kernel.NewUUID(), "Karim", "")
	suite.Require().NoError(err)
	suite.Require().NoError(testOrder.Assign(assignment, nil))

	suite.Require().NoError(suite.repository.Update(ctx, testOrder))
	suite.Equal(2, testOrder.Revision())

	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Assigned, loaded.Status())
	suite.Equal(2, loaded.Revision())

	suite.Require().NoError(testOrder.MarkShipped())
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))
	suite.Equal(3, testOrder.Revision())

	loaded, err = suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Shipped, loaded.Status())
	suite.Require().NotNil(loaded.ShippedAt())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StaleRevision_ReturnsConcurrencyConflict() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	testOrder := suite.createTestOrder(nil)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	// Two copies of the same aggregate race on the same row.
	stale, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	assignment, err := order.NewAssignment(kernel.NewUUID(), "Karim", "")
	suite.Require().NoError(err)
	suite.Require().NoError(testOrder.Assign(assignment, nil))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	staleAssignment, err := order.NewAssignment(kernel.NewUUID(), "Rahim", "")
	suite.Require().NoError(err)
	suite.Require().NoError(stale.Assign(staleAssignment, nil))

	err = suite.repository.Update(ctx, stale)
	suite.Require().ErrorIs(err, errs.ErrConcurrencyConflict)

	// The winner's write is untouched.
	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal("Karim", loaded.Assignment().StaffName())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	testOrder := suite.createTestOrder(nil)

	err := suite.repository.Update(ctx, testOrder)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllInStatus_FiltersAndSortsNewestFirst() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	first := suite.createTestOrder(nil)
	suite.Require().NoError(suite.repository.Add(ctx, first))

	second := suite.createTestOrder(nil)
	suite.Require().NoError(suite.repository.Add(ctx, second))

	assigned := suite.createTestOrder(nil)
	assignment, err := order.NewAssignment(kernel.NewUUID(), "Karim", "")
	suite.Require().NoError(err)
	suite.Require().NoError(assigned.Assign(assignment, nil))
	suite.Require().NoError(suite.repository.Add(ctx, assigned))

	newOrders, err := suite.repository.GetAllInStatus(ctx, order.New)
	suite.Require().NoError(err)
	suite.Require().Len(newOrders, 2)
	suite.True(newOrders[0].IsEqual(second), "newest order should come first")
	suite.True(newOrders[1].IsEqual(first))

	assignedOrders, err := suite.repository.GetAllInStatus(ctx, order.Assigned)
	suite.Require().NoError(err)
	suite.Require().Len(assignedOrders, 1)
	suite.True(assignedOrders[0].IsEqual(assigned))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllInStatus_NoMatches_ReturnsEmptySlice() {
	ctx := context.Background()

	orders, err := suite.repository.GetAllInStatus(ctx, order.Completed)

	suite.Require().NoError(err)
	suite.NotNil(orders)
	suite.Empty(orders)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAll_ReturnsEveryOrderNewestFirst() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	orders := make([]*order.Order, 3)
	for i := range orders {
		orders[i] = suite.createTestOrder(nil)
		suite.Require().NoError(suite.repository.Add(ctx, orders[i]))
	}

	loaded, err := suite.repository.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(loaded, 3)

	for i := range loaded {
		suite.True(loaded[i].IsEqual(orders[len(orders)-1-i]))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(customerID *kernel.UUID) *order.Order {
	items := []order.LineItem{suite.mustLineItem("WTR-19L", "19L Water Bottle", 300, 4)}

	bill, err := order.NewBill(
		kernel.NewMoney(1200), kernel.MoneyZero, order.NoDiscount(), 0,
		kernel.MoneyZero, kernel.MoneyZero, kernel.NewMoney(1200), kernel.MoneyZero,
	)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(kernel.NewUUID(), customerID, items, []string{"call on arrival"}, bill)
	suite.Require().NoError(err)
	return testOrder
}

func (suite *OrderRepositoryIntegrationTestSuite) createCompletedOrder(customerID *kernel.UUID) *order.Order {
	testOrder := suite.createTestOrder(customerID)

	assignment, err := order.NewAssignment(kernel.NewUUID(), "Karim", "evening run")
	suite.Require().NoError(err)
	suite.Require().NoError(testOrder.Assign(assignment, nil))
	suite.Require().NoError(testOrder.MarkShipped())

	bottleReturn, err := order.NewBottleReturn(4, 3, kernel.NewMoney(300))
	suite.Require().NoError(err)
	suite.Require().NoError(testOrder.UpdateDelivery(testOrder.LineItems(), testOrder.Bill(), bottleReturn))

	payment, err := order.NewPayment("cash", kernel.NewMoney(1500), kernel.NewMoney(300), order.ReconcileReturnCash)
	suite.Require().NoError(err)
	suite.Require().NoError(testOrder.Complete(payment))

	return testOrder
}

func (suite *OrderRepositoryIntegrationTestSuite) mustLineItem(
	productID, name string, unitPrice int64, quantity int,
) order.LineItem {
	item, err := order.NewLineItem(productID, name, kernel.NewMoney(unitPrice), quantity)
	suite.Require().NoError(err)
	return item
}

func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
