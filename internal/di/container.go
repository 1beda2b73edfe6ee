package di

import (
	"github.com/daylerjeff199906/event-management-app-sub001/internal/cache"
	"github.com/daylerjeff199906/event-management-app-sub001/internal/handler"
	"github.com/daylerjeff199906/event-management-app-sub001/internal/repository"
	"github.com/daylerjeff199906/event-management-app-sub001/internal/service"
	"github.com/daylerjeff199906/event-management-app-sub001/pkg/database"
)

// Container holds all dependencies for the layout designer service
type Container struct {
	// Infrastructure
	DB          *database.PostgresDB
	Invalidator cache.Invalidator

	// Repositories
	MapRepo    repository.MapRepository
	ZoneRepo   repository.ZoneRepository
	TicketRepo repository.TicketRepository

	// Services
	MapService    service.MapService
	ZoneService   service.ZoneService
	TicketService service.TicketService
	Session       service.DesignerSession

	// Handlers
	HealthHandler *handler.HealthHandler
	LayoutHandler *handler.LayoutHandler
	MapHandler    *handler.MapHandler
	ZoneHandler   *handler.ZoneHandler
	TicketHandler *handler.TicketHandler
	PresetHandler *handler.PresetHandler
}

// ContainerConfig contains configuration for building the container
type ContainerConfig struct {
	DB          *database.PostgresDB
	Invalidator cache.Invalidator
	MapRepo     repository.MapRepository
	ZoneRepo    repository.ZoneRepository
	TicketRepo  repository.TicketRepository
	Version     string
	// ViewportSize is the preview edge length in pixels; zero uses the default
	ViewportSize int
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *ContainerConfig) *Container {
	c := &Container{
		DB:          cfg.DB,
		Invalidator: cfg.Invalidator,
		MapRepo:     cfg.MapRepo,
		ZoneRepo:    cfg.ZoneRepo,
		TicketRepo:  cfg.TicketRepo,
	}

	if c.Invalidator == nil {
		c.Invalidator = cache.NoopInvalidator{}
	}

	// Initialize services
	c.MapService = service.NewMapService(c.MapRepo, c.Invalidator)
	c.ZoneService = service.NewZoneService(c.ZoneRepo, c.MapRepo, c.TicketRepo, c.Invalidator)
	c.TicketService = service.NewTicketService(c.TicketRepo, c.ZoneRepo, c.Invalidator)
	c.Session = service.NewDesignerSession(c.MapService, c.ZoneService, c.TicketService)

	// Initialize handlers
	c.HealthHandler = handler.NewHealthHandler(c.DB, cfg.Version)
	c.LayoutHandler = handler.NewLayoutHandler(c.Session)
	c.MapHandler = handler.NewMapHandler(c.MapService, cfg.ViewportSize)
	c.ZoneHandler = handler.NewZoneHandler(c.ZoneService, c.Session)
	c.TicketHandler = handler.NewTicketHandler(c.TicketService)
	c.PresetHandler = handler.NewPresetHandler()

	return c
}
