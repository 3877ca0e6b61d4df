package cmd

import (
	"strconv"
	"time"

	"orderintake/internal/adapters/out/postgres"
	"orderintake/internal/core/application/usecases/commands"
	"orderintake/internal/core/application/usecases/queries"
	"orderintake/internal/core/domain/services"
	"orderintake/internal/core/ports"
	"orderintake/internal/workers"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	pipeline   services.FulfillmentPipeline
	pool       *workers.FulfillmentPool
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) *CompositionRoot {
	root := &CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		pipeline: services.NewFulfillmentPipeline(
			parseDurationOrZero(config.StandardStageDelay),
			parseDurationOrZero(config.ExpeditedStageDelay),
		),
	}

	processHandler := root.CreateProcessOrderCommandHandler()
	root.pool = workers.NewFulfillmentPool(
		&processHandler,
		parseIntOrZero(config.WorkerCount),
		parseIntOrZero(config.QueueCapacity),
	)

	return root
}

// FulfillmentPool returns the worker pool that drives order processing.
// Callers own its Start/Stop lifecycle.
func (c *CompositionRoot) FulfillmentPool() *workers.FulfillmentPool {
	return c.pool
}

// FulfillmentQueue returns the queue order submissions enqueue into.
func (c *CompositionRoot) FulfillmentQueue() ports.FulfillmentQueue {
	return c.pool
}

func (c *CompositionRoot) CreateRegisterVendorCommandHandler() commands.RegisterVendorCommandHandler {
	var f commands.VendorUoWFactory = FuncVendorUoWFactory(func() commands.VendorUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterVendorCommandHandler(f)
}

func (c *CompositionRoot) CreateSubmitOrderCommandHandler() commands.SubmitOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitOrderCommandHandler(f, c.FulfillmentQueue())
}

func (c *CompositionRoot) CreateProcessOrderCommandHandler() commands.ProcessOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewProcessOrderCommandHandler(f, c.pipeline)
}

func (c *CompositionRoot) CreateGetAllVendorsQueryHandler() queries.GetAllVendorsQueryHandler {
	return queries.NewGetAllVendorsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetVendorQueryHandler() queries.GetVendorQueryHandler {
	return queries.NewGetVendorQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderStatusQueryHandler() queries.GetOrderStatusQueryHandler {
	return queries.NewGetOrderStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderSummaryQueryHandler() queries.GetOrderSummaryQueryHandler {
	return queries.NewGetOrderSummaryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStuckOrdersQueryHandler() queries.GetStuckOrdersQueryHandler {
	return queries.NewGetStuckOrdersQueryHandler(c.gormDB)
}

type FuncVendorUoWFactory func() commands.VendorUoW

func (f FuncVendorUoWFactory) Create() commands.VendorUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

func parseDurationOrZero(raw string) time.Duration {
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0
	}
	return d
}

func parseIntOrZero(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return n
}
