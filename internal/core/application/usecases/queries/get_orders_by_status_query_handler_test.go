package queries_test

import (
	"context"
	"testing"
	"time"

	"hydrohub/internal/adapters/out/postgres/orderrepo"
	"hydrohub/internal/core/application/usecases/queries"
	"hydrohub/internal/core/domain/model/kernel"
	"hydrohub/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type mockAggregateTracker struct {
	mock.Mock
}

func (m *mockAggregateTracker) TrackAggregate(kernel.UUID, any) {}

// OrderQueryHandlersTestSuite covers the SQL-backed order read models: the
// status-filtered dispatch board query and the full history query.
type OrderQueryHandlersTestSuite struct {
	suite.Suite
	container       *postgres.PostgresContainer
	db              *gorm.DB
	byStatus        queries.GetOrdersByStatusQueryHandler
	allOrders       queries.GetAllOrdersQueryHandler
	orderRepo       *orderrepo.GormOrderRepository
	deliveryStaffID kernel.UUID
}

func (suite *OrderQueryHandlersTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))

	suite.byStatus = queries.NewGetOrdersByStatusQueryHandler(db)
	suite.allOrders = queries.NewGetAllOrdersQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
	suite.deliveryStaffID = kernel.NewUUID()
}

func (suite *OrderQueryHandlersTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderQueryHandlersTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)
}

func (suite *OrderQueryHandlersTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query, err := queries.NewGetOrdersByStatusQuery(order.New)
	suite.Require().NoError(err)

	result, err := suite.byStatus.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *OrderQueryHandlersTestSuite) TestHandle_FiltersByStatus() {
	ctx := context.Background()

	newOrder := suite.createOrder(nil)
	assignedOrder := suite.createOrder(nil)
	suite.assignOrder(assignedOrder, "Karim")

	suite.Require().NoError(suite.orderRepo.Add(ctx, newOrder))
	suite.Require().NoError(suite.orderRepo.Add(ctx, assignedOrder))

	query, err := queries.NewGetOrdersByStatusQuery(order.Assigned)
	suite.Require().NoError(err)

	result, err := suite.byStatus.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(result[0].ID.IsEqual(assignedOrder.ID()))
	suite.Equal(order.Assigned, result[0].Status)
	suite.Equal("Karim", result[0].StaffName)
}

func (suite *OrderQueryHandlersTestSuite) TestHandle_MapsReadModelFields() {
	ctx := context.Background()

	customerID := kernel.NewUUID()
	billed := suite.createOrder(&customerID)
	suite.Require().NoError(suite.orderRepo.Add(ctx, billed))

	query, err := queries.NewGetOrdersByStatusQuery(order.New)
	suite.Require().NoError(err)

	result, err := suite.byStatus.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)

	row := result[0]
	suite.True(row.ID.IsEqual(billed.ID()))
	suite.Require().NotNil(row.CustomerID)
	suite.True(row.CustomerID.IsEqual(customerID))
	suite.Equal(kernel.NewMoney(1200), row.Payable)
	suite.Empty(row.StaffName, "unassigned orders carry no staff name")
	suite.WithinDuration(billed.CreatedAt(), row.CreatedAt, time.Second)
}

func (suite *OrderQueryHandlersTestSuite) TestHandle_SortsNewestFirst() {
	ctx := context.Background()

	first := suite.createOrder(nil)
	suite.Require().NoError(suite.orderRepo.Add(ctx, first))
	second := suite.createOrder(nil)
	suite.Require().NoError(suite.orderRepo.Add(ctx, second))

	query, err := queries.NewGetOrdersByStatusQuery(order.New)
	suite.Require().NoError(err)

	result, err := suite.byStatus.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.True(result[0].ID.IsEqual(second.ID()))
	suite.True(result[1].ID.IsEqual(first.ID()))
}

func (suite *OrderQueryHandlersTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	result, err := suite.byStatus.Handle(context.Background(), queries.GetOrdersByStatusQuery{})

	suite.Require().ErrorIs(err, queries.ErrGetOrdersByStatusQueryIsNotConstructed)
	suite.Nil(result)
}

func (suite *OrderQueryHandlersTestSuite) TestGetAllOrders_ReturnsEveryStatus() {
	ctx := context.Background()

	newOrder := suite.createOrder(nil)
	suite.Require().NoError(suite.orderRepo.Add(ctx, newOrder))

	assignedOrder := suite.createOrder(nil)
	suite.assignOrder(assignedOrder, "Rahim")
	suite.Require().NoError(suite.orderRepo.Add(ctx, assignedOrder))

	result, err := suite.allOrders.Handle(ctx, queries.NewGetAllOrdersQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	// Newest first regardless of status.
	suite.True(result[0].ID.IsEqual(assignedOrder.ID()))
	suite.True(result[1].ID.IsEqual(newOrder.ID()))
}

func (suite *OrderQueryHandlersTestSuite) TestGetAllOrders_InvalidQuery_ReturnsError() {
	result, err := suite.allOrders.Handle(context.Background(), queries.GetAllOrdersQuery{})

	suite.Require().ErrorIs(err, queries.ErrGetAllOrdersQueryIsNotConstructed)
	suite.Nil(result)
}

func (suite *OrderQueryHandlersTestSuite) createOrder(customerID *kernel.UUID) *order.Order {
	item, err := order.NewLineItem("WTR-19L", "19L Water Bottle", kernel.NewMoney(300), 4)
	suite.Require().NoError(err)

	bill, err := order.NewBill(
		kernel.NewMoney(1200), kernel.MoneyZero, order.NoDiscount(), 0,
		kernel.MoneyZero, kernel.MoneyZero, kernel.NewMoney(1200), kernel.MoneyZero,
	)
	suite.Require().NoError(err)

	aggregate, err := order.NewOrder(kernel.NewUUID(), customerID, []order.LineItem{item}, nil, bill)
	suite.Require().NoError(err)
	return aggregate
}

func (suite *OrderQueryHandlersTestSuite) assignOrder(aggregate *order.Order, staffName string) {
	assignment, err := order.NewAssignment(suite.deliveryStaffID, staffName, "")
	suite.Require().NoError(err)
	suite.Require().NoError(aggregate.Assign(assignment, nil))
}

func TestOrderQueryHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(OrderQueryHandlersTestSuite))
}
