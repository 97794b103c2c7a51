package cmd

import (
	"log/slog"
	"time"

	httpadapter "shipadmin/internal/adapters/in/http"
	"shipadmin/internal/adapters/out/postgres"
	"shipadmin/internal/core/application/usecases/commands"
	"shipadmin/internal/core/application/usecases/queries"
	"shipadmin/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires infrastructure into use-case handlers.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}
}

func (c *CompositionRoot) locationUoWFactory() commands.LocationUoWFactory {
	return FuncLocationUoWFactory(func() commands.LocationUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateGovernorateCommandHandler() commands.CreateGovernorateCommandHandler {
	return commands.NewCreateGovernorateCommandHandler(c.locationUoWFactory())
}

func (c *CompositionRoot) CreateUpdateGovernorateCommandHandler() commands.UpdateGovernorateCommandHandler {
	return commands.NewUpdateGovernorateCommandHandler(c.locationUoWFactory())
}

func (c *CompositionRoot) CreateToggleGovernorateCommandHandler() commands.ToggleGovernorateCommandHandler {
	return commands.NewToggleGovernorateCommandHandler(c.locationUoWFactory())
}

func (c *CompositionRoot) CreateDeleteGovernorateCommandHandler() commands.DeleteGovernorateCommandHandler {
	return commands.NewDeleteGovernorateCommandHandler(c.locationUoWFactory())
}

func (c *CompositionRoot) CreateCreateCityCommandHandler() commands.CreateCityCommandHandler {
	return commands.NewCreateCityCommandHandler(c.locationUoWFactory())
}

func (c *CompositionRoot) CreateUpdateCityCommandHandler() commands.UpdateCityCommandHandler {
	return commands.NewUpdateCityCommandHandler(c.locationUoWFactory())
}

func (c *CompositionRoot) CreateToggleCityCommandHandler() commands.ToggleCityCommandHandler {
	return commands.NewToggleCityCommandHandler(c.locationUoWFactory())
}

func (c *CompositionRoot) CreateDeleteCityCommandHandler() commands.DeleteCityCommandHandler {
	return commands.NewDeleteCityCommandHandler(c.locationUoWFactory())
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateListGovernoratesQueryHandler() queries.ListGovernoratesQueryHandler {
	return queries.NewListGovernoratesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListCitiesQueryHandler() queries.ListCitiesQueryHandler {
	return queries.NewListCitiesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateSearchOrdersQueryHandler() queries.SearchOrdersQueryHandler {
	return queries.NewSearchOrdersQueryHandler(c.gormDB)
}

// CreateJobManager wires the background jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	staleOrderAge := time.Duration(c.config.StaleOrderAgeHours) * time.Hour
	return jobs.NewJobManager(c.gormDB, staleOrderAge, c.logger)
}

// CreateHTTPServer wires the full route surface.
func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.Handlers{
		CreateGovernorate: c.CreateCreateGovernorateCommandHandler(),
		UpdateGovernorate: c.CreateUpdateGovernorateCommandHandler(),
		ToggleGovernorate: c.CreateToggleGovernorateCommandHandler(),
		DeleteGovernorate: c.CreateDeleteGovernorateCommandHandler(),
		CreateCity:        c.CreateCreateCityCommandHandler(),
		UpdateCity:        c.CreateUpdateCityCommandHandler(),
		ToggleCity:        c.CreateToggleCityCommandHandler(),
		DeleteCity:        c.CreateDeleteCityCommandHandler(),
		CreateOrder:       c.CreateCreateOrderCommandHandler(),
		UpdateOrderStatus: c.CreateUpdateOrderStatusCommandHandler(),
		DeleteOrder:       c.CreateDeleteOrderCommandHandler(),
		ListGovernorates:  c.CreateListGovernoratesQueryHandler(),
		ListCities:        c.CreateListCitiesQueryHandler(),
		ListOrders:        c.CreateListOrdersQueryHandler(),
		SearchOrders:      c.CreateSearchOrdersQueryHandler(),
	}, c.logger, c.config.DebugErrors)
}

type FuncLocationUoWFactory func() commands.LocationUoW

func (f FuncLocationUoWFactory) Create() commands.LocationUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
