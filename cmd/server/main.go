package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/daylerjeff199906/event-management-app-sub001/internal/cache"
	"github.com/daylerjeff199906/event-management-app-sub001/internal/di"
	"github.com/daylerjeff199906/event-management-app-sub001/internal/repository"
	"github.com/daylerjeff199906/event-management-app-sub001/pkg/config"
	"github.com/daylerjeff199906/event-management-app-sub001/pkg/database"
	"github.com/daylerjeff199906/event-management-app-sub001/pkg/logger"
	"github.com/daylerjeff199906/event-management-app-sub001/pkg/middleware"
	"github.com/daylerjeff199906/event-management-app-sub001/pkg/telemetry"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logCfg := logger.DefaultConfig()
	logCfg.ServiceName = cfg.App.Name
	logCfg.Development = cfg.IsDevelopment()
	if cfg.App.Debug {
		logCfg.Level = "debug"
	}
	if err := logger.Init(logCfg); err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Telemetry
	_, err = telemetry.Init(ctx, &telemetry.Config{
		Enabled:        cfg.OTel.Enabled,
		ServiceName:    cfg.OTel.ServiceName,
		ServiceVersion: cfg.App.Version,
		Environment:    cfg.App.Environment,
		CollectorAddr:  cfg.OTel.CollectorAddr,
	})
	if err != nil {
		logger.Fatal("failed to init telemetry", zap.Error(err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = telemetry.Shutdown(shutdownCtx)
	}()

	// Postgres
	dbCfg := database.DefaultPostgresConfig()
	dbCfg.Host = cfg.Database.Host
	dbCfg.Port = cfg.Database.Port
	dbCfg.User = cfg.Database.User
	dbCfg.Password = cfg.Database.Password
	dbCfg.Database = cfg.Database.DBName
	dbCfg.SSLMode = cfg.Database.SSLMode
	if cfg.Database.MaxOpenConns > 0 {
		dbCfg.MaxConns = int32(cfg.Database.MaxOpenConns)
	}
	if cfg.Database.ConnMaxLifetime > 0 {
		dbCfg.MaxConnLifetime = cfg.Database.ConnMaxLifetime
	}

	startupCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	db, err := database.NewPostgres(startupCtx, dbCfg)
	cancel()
	if err != nil {
		logger.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer db.Close()

	// Redis-backed cache invalidation, no-op when disabled
	var invalidator cache.Invalidator = cache.NoopInvalidator{}
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:         cfg.Redis.Addr(),
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			DialTimeout:  cfg.Redis.DialTimeout,
			ReadTimeout:  cfg.Redis.ReadTimeout,
			WriteTimeout: cfg.Redis.WriteTimeout,
		})
		defer func() { _ = redisClient.Close() }()

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		err := redisClient.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			logger.Fatal("failed to connect to redis", zap.Error(err))
		}
		invalidator = cache.NewRedisInvalidator(redisClient)
	}

	container := di.NewContainer(&di.ContainerConfig{
		DB:           db,
		Invalidator:  invalidator,
		MapRepo:      repository.NewPostgresMapRepository(db.Pool()),
		ZoneRepo:     repository.NewPostgresZoneRepository(db.Pool()),
		TicketRepo:   repository.NewPostgresTicketRepository(db.Pool()),
		Version:      cfg.App.Version,
		ViewportSize: cfg.Designer.ViewportSize,
	})

	router := setupRouter(cfg, container)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	srvErr := make(chan error, 1)
	go func() {
		logger.Info("server listening",
			zap.String("addr", server.Addr),
			zap.String("environment", cfg.App.Environment),
		)
		srvErr <- server.ListenAndServe()
	}()

	select {
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", zap.Error(err))
		}
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server shutdown error", zap.Error(err))
	}
	logger.Info("server stopped")
}

func setupRouter(cfg *config.Config, c *di.Container) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())

	router.GET("/health", c.HealthHandler.Check)

	v1 := router.Group("/api/v1")
	v1.GET("/shape-presets", c.PresetHandler.List)

	protected := v1.Group("")
	protected.Use(middleware.JWTMiddleware(&middleware.JWTConfig{Secret: cfg.JWT.Secret}))
	{
		protected.GET("/events/:event_id/layout", c.LayoutHandler.Get)
		protected.PUT("/events/:event_id/layout", c.LayoutHandler.Save)
		protected.GET("/events/:event_id/tickets", c.TicketHandler.ListByEvent)
		protected.POST("/events/:event_id/zones", c.ZoneHandler.Place)

		protected.POST("/maps", c.MapHandler.Create)
		protected.GET("/maps/:id", c.MapHandler.Get)
		protected.GET("/maps/:id/preview", c.MapHandler.Preview)
		protected.PATCH("/maps/:id", c.MapHandler.Update)
		protected.DELETE("/maps/:id", c.MapHandler.Delete)

		protected.GET("/maps/:id/zones", c.ZoneHandler.List)
		protected.POST("/maps/:id/zones", c.ZoneHandler.Upsert)
		protected.PUT("/maps/:id/zones", c.ZoneHandler.BulkUpsert)
		protected.DELETE("/zones/:id", c.ZoneHandler.Delete)
		protected.PUT("/zones/:id/ticket", c.ZoneHandler.AssignTicket)

		protected.POST("/tickets", c.TicketHandler.Create)
		protected.GET("/tickets/:id", c.TicketHandler.Get)
		protected.PATCH("/tickets/:id", c.TicketHandler.Update)
		protected.DELETE("/tickets/:id", c.TicketHandler.Delete)
	}

	return router
}
