package cmd

import (
	"log/slog"

	httpadapter "pos/internal/adapters/in/http"
	"pos/internal/adapters/out/kafka"
	"pos/internal/adapters/out/postgres"
	"pos/internal/core/application/usecases/commands"
	"pos/internal/core/application/usecases/queries"
	"pos/internal/core/ports"
	"pos/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into the application layer. All handler
// constructors hang off it so main stays free of dependency plumbing.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	publisher  ports.OrderEventPublisher
	closer     func() error
	logger     *slog.Logger
}

// NewCompositionRoot assembles the object graph. When no Kafka host is
// configured events are discarded.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	var publisher ports.OrderEventPublisher = kafka.NoopPublisher{}
	closer := func() error { return nil }
	if config.KafkaHost != "" {
		p := kafka.NewPublisher([]string{config.KafkaHost}, config.KafkaOrderEventTopic)
		publisher = p
		closer = p.Close
	}

	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher:  publisher,
		closer:     closer,
		logger:     logger,
	}
}

// Close releases resources held by outbound adapters.
func (c *CompositionRoot) Close() error {
	return c.closer()
}

func (c *CompositionRoot) newUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) newOrderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.newUoWFactory())
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.newUoWFactory(), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateRecordPaymentCommandHandler() commands.RecordPaymentCommandHandler {
	return commands.NewRecordPaymentCommandHandler(c.newOrderUoWFactory())
}

func (c *CompositionRoot) CreateRemovePaymentCommandHandler() commands.RemovePaymentCommandHandler {
	return commands.NewRemovePaymentCommandHandler(c.newOrderUoWFactory())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.newUoWFactory(), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateArchiveCompletedOrderCommandHandler() commands.ArchiveCompletedOrderCommandHandler {
	return commands.NewArchiveCompletedOrderCommandHandler(c.newUoWFactory(), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateRevertArchivedOrderCommandHandler() commands.RevertArchivedOrderCommandHandler {
	return commands.NewRevertArchivedOrderCommandHandler(c.newUoWFactory(), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateRecountMenuStatsCommandHandler() commands.RecountMenuStatsCommandHandler {
	return commands.NewRecountMenuStatsCommandHandler(c.newUoWFactory())
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetArchivedOrdersQueryHandler() queries.GetArchivedOrdersQueryHandler {
	return queries.NewGetArchivedOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMenuItemsQueryHandler() queries.GetMenuItemsQueryHandler {
	return queries.NewGetMenuItemsQueryHandler(c.gormDB)
}

// CreateHTTPServer assembles the REST server with every handler wired in.
func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateUpdateOrderStatusCommandHandler(),
		c.CreateRecordPaymentCommandHandler(),
		c.CreateRemovePaymentCommandHandler(),
		c.CreateCancelOrderCommandHandler(),
		c.CreateArchiveCompletedOrderCommandHandler(),
		c.CreateRevertArchivedOrderCommandHandler(),
		c.CreateGetActiveOrdersQueryHandler(),
		c.CreateGetArchivedOrdersQueryHandler(),
		c.CreateGetMenuItemsQueryHandler(),
	)
}

// CreateJobManager assembles the background job manager.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateRecountMenuStatsCommandHandler(),
		c.config.StatsRecountSpec,
		c.logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
