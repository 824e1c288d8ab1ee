package cmd

import (
	"log/slog"
	"time"

	"hydrohub/internal/adapters/out/postgres"
	"hydrohub/internal/adapters/out/redis/parkedrepo"
	"hydrohub/internal/core/application/usecases/commands"
	"hydrohub/internal/core/application/usecases/queries"
	"hydrohub/internal/core/ports"
	"hydrohub/internal/jobs"

	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB       *gorm.DB
	parkedOrders *parkedrepo.RedisParkedOrderRepository
	uowFactory   postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, redisClient *goredis.Client) CompositionRoot {
	return CompositionRoot{
		gormDB:       gormDB,
		parkedOrders: parkedrepo.NewRedisParkedOrderRepository(redisClient),
		uowFactory:   *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.BillingUoWFactory = FuncBillingUoWFactory(func() commands.BillingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignOrderCommandHandler() commands.AssignOrderCommandHandler {
	var f commands.AssignmentUoWFactory = FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateMarkOrderShippedCommandHandler() commands.MarkOrderShippedCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkOrderShippedCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateShippedDeliveryCommandHandler() commands.UpdateShippedDeliveryCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateShippedDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	var f commands.BillingUoWFactory = FuncBillingUoWFactory(func() commands.BillingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateReconcileCompletedOrderCommandHandler() commands.ReconcileCompletedOrderCommandHandler {
	var f commands.BillingUoWFactory = FuncBillingUoWFactory(func() commands.BillingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReconcileCompletedOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateParkCartCommandHandler() commands.ParkCartCommandHandler {
	return commands.NewParkCartCommandHandler(c.parkedOrders)
}

func (c *CompositionRoot) CreateRestoreParkedOrderCommandHandler() commands.RestoreParkedOrderCommandHandler {
	return commands.NewRestoreParkedOrderCommandHandler(c.parkedOrders)
}

func (c *CompositionRoot) CreateDiscardParkedOrderCommandHandler() commands.DiscardParkedOrderCommandHandler {
	return commands.NewDiscardParkedOrderCommandHandler(c.parkedOrders)
}

func (c *CompositionRoot) CreateGetOrdersByStatusQueryHandler() queries.GetOrdersByStatusQueryHandler {
	return queries.NewGetOrdersByStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetParkedOrdersQueryHandler() queries.GetParkedOrdersQueryHandler {
	return queries.NewGetParkedOrdersQueryHandler(c.parkedOrders)
}

// CreateOrderRepository returns an order repository bound to the main
// connection, outside any unit of work. Background jobs use it for reads.
func (c *CompositionRoot) CreateOrderRepository() ports.OrderRepository {
	return c.uowFactory.Create().OrderRepository()
}

func (c *CompositionRoot) CreateJobManager(parkedRetention time.Duration, logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(
		c.parkedOrders,
		c.CreateOrderRepository(),
		c.CreateDiscardParkedOrderCommandHandler(),
		c.CreateReconcileCompletedOrderCommandHandler(),
		parkedRetention,
		logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncBillingUoWFactory func() commands.BillingUoW

func (f FuncBillingUoWFactory) Create() commands.BillingUoW {
	return f()
}

type FuncAssignmentUoWFactory func() commands.AssignmentUoW

func (f FuncAssignmentUoWFactory) Create() commands.AssignmentUoW {
	return f()
}
