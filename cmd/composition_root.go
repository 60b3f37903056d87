package cmd

import (
	"log/slog"

	httpin "flowerorder/internal/adapters/in/http"
	"flowerorder/internal/adapters/out/postgres"
	"flowerorder/internal/core/application/usecases/commands"
	"flowerorder/internal/core/application/usecases/queries"
	"flowerorder/internal/core/domain/model/kernel"
	"flowerorder/internal/core/domain/services"
	"flowerorder/internal/core/ports"
	"flowerorder/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	storage    ports.FileStorage
	clock      kernel.Clock
	logger     *slog.Logger
}

// NewCompositionRoot wires the adapters. publisher may be nil, in which case
// order events are dropped after commit.
func NewCompositionRoot(
	configs Config,
	gormDB *gorm.DB,
	publisher ports.EventPublisher,
	storage ports.FileStorage,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, publisher, logger),
		storage:    storage,
		clock:      kernel.SystemClock,
		logger:     logger,
	}
}

// Close releases the database connection pool.
func (c *CompositionRoot) Close() error {
	sqlDB, err := c.gormDB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) memberUoWFactory() commands.MemberUoWFactory {
	return FuncMemberUoWFactory(func() commands.MemberUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(
		f, services.NewOrderNumberGenerator(services.DefaultRandomSource), c.storage, c.clock, c.logger,
	)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(c.orderUoWFactory(), c.clock, c.logger)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.orderUoWFactory(), c.clock, c.logger)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactory(), c.clock, c.logger)
}

func (c *CompositionRoot) CreateUploadProductImageCommandHandler() commands.UploadProductImageCommandHandler {
	return commands.NewUploadProductImageCommandHandler(c.orderUoWFactory(), c.storage, c.clock, c.logger)
}

func (c *CompositionRoot) CreateDeleteProductImageCommandHandler() commands.DeleteProductImageCommandHandler {
	return commands.NewDeleteProductImageCommandHandler(c.orderUoWFactory(), c.storage, c.clock, c.logger)
}

func (c *CompositionRoot) CreateSignUpMemberCommandHandler() commands.SignUpMemberCommandHandler {
	return commands.NewSignUpMemberCommandHandler(c.memberUoWFactory(), c.clock, c.logger)
}

func (c *CompositionRoot) CreateApproveMemberCommandHandler() commands.ApproveMemberCommandHandler {
	return commands.NewApproveMemberCommandHandler(c.memberUoWFactory(), c.clock, c.logger)
}

func (c *CompositionRoot) CreateRejectMemberCommandHandler() commands.RejectMemberCommandHandler {
	return commands.NewRejectMemberCommandHandler(c.memberUoWFactory(), c.clock, c.logger)
}

func (c *CompositionRoot) CreateSaveRegionPricesCommandHandler() commands.SaveRegionPricesCommandHandler {
	return commands.NewSaveRegionPricesCommandHandler(c.memberUoWFactory(), c.clock, c.logger)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.uowFactory.OrderReader())
}

func (c *CompositionRoot) CreateSearchOrdersQueryHandler() queries.SearchOrdersQueryHandler {
	return queries.NewSearchOrdersQueryHandler(c.uowFactory.OrderReader())
}

func (c *CompositionRoot) CreateGetOrderSummaryQueryHandler() queries.GetOrderSummaryQueryHandler {
	return queries.NewGetOrderSummaryQueryHandler(c.uowFactory.OrderReader(), c.clock)
}

func (c *CompositionRoot) CreateGetOrderStatisticsQueryHandler() queries.GetOrderStatisticsQueryHandler {
	return queries.NewGetOrderStatisticsQueryHandler(c.uowFactory.OrderReader(), c.clock)
}

func (c *CompositionRoot) CreateGetTodayOrdersQueryHandler() queries.GetTodayOrdersQueryHandler {
	return queries.NewGetTodayOrdersQueryHandler(c.uowFactory.OrderReader(), c.clock)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		SignUpMember:       c.CreateSignUpMemberCommandHandler(),
		ApproveMember:      c.CreateApproveMemberCommandHandler(),
		RejectMember:       c.CreateRejectMemberCommandHandler(),
		SaveRegionPrices:   c.CreateSaveRegionPricesCommandHandler(),
		CreateOrder:        c.CreateCreateOrderCommandHandler(),
		UpdateOrder:        c.CreateUpdateOrderCommandHandler(),
		UpdateOrderStatus:  c.CreateUpdateOrderStatusCommandHandler(),
		DeleteOrder:        c.CreateDeleteOrderCommandHandler(),
		UploadProductImage: c.CreateUploadProductImageCommandHandler(),
		DeleteProductImage: c.CreateDeleteProductImageCommandHandler(),
		GetOrder:           c.CreateGetOrderQueryHandler(),
		SearchOrders:       c.CreateSearchOrdersQueryHandler(),
		GetOrderSummary:    c.CreateGetOrderSummaryQueryHandler(),
		GetOrderStatistics: c.CreateGetOrderStatisticsQueryHandler(),
		GetTodayOrders:     c.CreateGetTodayOrdersQueryHandler(),
	}, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetTodayOrdersQueryHandler(),
		c.CreateGetOrderStatisticsQueryHandler(),
		jobs.Schedules{
			DeliveryDigest: c.configs.DeliveryDigestSchedule,
			Statistics:     c.configs.StatisticsSchedule,
		},
		c.logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncMemberUoWFactory func() commands.MemberUoW

func (f FuncMemberUoWFactory) Create() commands.MemberUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
