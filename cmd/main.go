package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"

	"github.com/agrocoop-dev/delivery-scheduling/internal/config"
	"github.com/agrocoop-dev/delivery-scheduling/internal/handler"
	"github.com/agrocoop-dev/delivery-scheduling/internal/health"
	"github.com/agrocoop-dev/delivery-scheduling/internal/infra/recorder"
	"github.com/agrocoop-dev/delivery-scheduling/internal/infra/repository"
	"github.com/agrocoop-dev/delivery-scheduling/internal/infra/store"
	"github.com/agrocoop-dev/delivery-scheduling/internal/observability/logging"
	"github.com/agrocoop-dev/delivery-scheduling/internal/observability/metrics"
	"github.com/agrocoop-dev/delivery-scheduling/internal/observability/middleware"
	"github.com/agrocoop-dev/delivery-scheduling/internal/service/schedule"
)

// Version is set via ldflags at build time
var Version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.String("error", err.Error()))
		return 1
	}

	obs, err := initObservability(ctx, cfg)
	if err != nil {
		slog.Error("failed to initialize observability", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := obs.Shutdown(shutdownCtx); err != nil {
			slog.Warn("observability shutdown error", slog.String("error", err.Error()))
		}
	}()

	slog.SetDefault(obs.Logger())

	if err := config.ValidateForRun(cfg); err != nil {
		slog.Error("configuration validation error", slog.String("error", err.Error()))
		return 1
	}

	if err := cfg.TaskQueue.Validate(); err != nil {
		slog.Error("task queue configuration error", slog.String("error", err.Error()))
		return 1
	}

	httpMetrics, err := metrics.NewHTTPMetrics()
	if err != nil {
		slog.Error("failed to initialize HTTP metrics", slog.String("error", err.Error()))
		return 1
	}

	schedulingMetrics, err := metrics.NewSchedulingMetrics()
	if err != nil {
		slog.Error("failed to initialize scheduling metrics", slog.String("error", err.Error()))
		return 1
	}

	// Allocation result recorder (InfluxDB for local, BigQuery for gcloud)
	resultRecorderCfg := recorder.LoadConfig()
	resultRecorder, err := recorder.NewRecorder(ctx, resultRecorderCfg)
	if err != nil {
		slog.Error("failed to initialize allocation result recorder", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		if err := resultRecorder.Close(); err != nil {
			slog.Warn("failed to close allocation result recorder", slog.String("error", err.Error()))
		}
	}()

	taskQueue, cleanup, err := initTaskQueue(ctx, cfg)
	if err != nil {
		slog.Error("failed to initialize task queue", slog.String("error", err.Error()))
		return 1
	}
	if cleanup != nil {
		defer func() {
			if err := cleanup(); err != nil {
				slog.Error("task queue cleanup error", slog.String("error", err.Error()))
			}
		}()
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	if err := redisotel.InstrumentTracing(redisClient); err != nil {
		slog.Error("failed to instrument redis tracing",
			slog.String("event", "redis.otel.tracing.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	if err := redisotel.InstrumentMetrics(redisClient); err != nil {
		slog.Error("failed to instrument redis metrics",
			slog.String("event", "redis.otel.metrics.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	if err := redisClient.Ping(ctx).Err(); err != nil {
		slog.Error("failed to connect redis",
			slog.String("event", "redis.connect.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Warn("failed to close redis client", slog.String("error", err.Error()))
		}
	}()

	slog.Info("redis connected",
		slog.String("addr", cfg.Redis.Addr),
	)

	db, err := store.Open(cfg.Database.URL)
	if err != nil {
		slog.Error("failed to open master data database",
			slog.String("error", err.Error()),
		)
		return 1
	}
	defer func() {
		sqlDB, err := db.DB()
		if err == nil {
			if err := sqlDB.Close(); err != nil {
				slog.Warn("failed to close database", slog.String("error", err.Error()))
			}
		}
	}()

	slog.Info("master data database connected")

	farmerStore := store.NewFarmerStore(db)
	productStore := store.NewProductStore(db)
	companyStore := store.NewCompanyStore(db)
	weighingStore := store.NewWeighingStore(db)
	settingsStore := store.NewSettingsStore(db)

	calendarRepo := repository.NewCalendarRepository(redisClient)

	scheduleService := schedule.NewService(
		calendarRepo,
		productStore,
		settingsStore,
		resultRecorder,
		taskQueue,
		schedulingMetrics,
		cfg.Scheduling.DefaultWindow,
		cfg.Scheduling.HorizonDays,
	)

	calendarHandler := handler.NewCalendarHandler(scheduleService)
	farmerHandler := handler.NewFarmerHandler(farmerStore)
	productHandler := handler.NewProductHandler(productStore)
	companyHandler := handler.NewCompanyHandler(companyStore)
	weighingHandler := handler.NewWeighingHandler(weighingStore)
	settingsHandler := handler.NewSettingsHandler(settingsStore, cfg.Scheduling.DefaultWindow)
	utilsHandler := handler.NewUtilsHandler(farmerStore, productStore, companyStore)
	statusHandler := handler.NewStatusHandler(Version)

	// Setup router with observability middleware
	r := gin.New()
	r.Use(middleware.Gin(middleware.GinConfig{
		SkipPaths:   []string{"/health", "/health/live", "/health/ready", "/metrics"},
		Module:      logging.Module("delivery-scheduling"),
		TracerName:  "github.com/agrocoop-dev/delivery-scheduling/internal/observability/middleware",
		HTTPMetrics: httpMetrics,
	}))
	r.Use(middleware.PanicRecoveryGin())

	// Health check endpoints
	healthChecker := health.NewChecker(redisClient, db, Version)
	r.GET("/health/live", healthChecker.LiveHandler())
	r.GET("/health/ready", healthChecker.ReadyHandler())
	r.GET("/health", healthChecker.ReadyHandler())

	// API routes
	v1 := r.Group("/api/v1")
	{
		v1.GET("/status", statusHandler.HandleStatus)

		v1.GET("/calendar/:date", calendarHandler.HandleGetDay)
		v1.POST("/calendar/plan", calendarHandler.HandlePlan)
		v1.POST("/calendar/search", calendarHandler.HandleSearch)

		v1.GET("/farmers", farmerHandler.HandleList)
		v1.GET("/farmers/:memberId", farmerHandler.HandleGet)
		v1.POST("/farmers", farmerHandler.HandleCreate)
		v1.PUT("/farmers/:memberId", farmerHandler.HandleUpdate)
		v1.DELETE("/farmers/:memberId", farmerHandler.HandleDelete)

		v1.GET("/products", productHandler.HandleList)
		v1.GET("/products/:code", productHandler.HandleGet)
		v1.POST("/products", productHandler.HandleCreate)
		v1.PUT("/products/:code", productHandler.HandleUpdate)

		v1.GET("/companies", companyHandler.HandleList)
		v1.GET("/companies/:cif", companyHandler.HandleGet)
		v1.POST("/companies", companyHandler.HandleCreate)

		v1.GET("/weighings", weighingHandler.HandleList)
		v1.GET("/weighings/:weighingId", weighingHandler.HandleGet)
		v1.POST("/weighings", weighingHandler.HandleCreate)

		v1.GET("/settings", settingsHandler.HandleGet)
		v1.PUT("/settings", settingsHandler.HandleUpdate)

		v1.POST("/utils/sample-data", utilsHandler.HandleSampleData)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	// Start server in goroutine
	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Port),
			slog.String("window_opens_at", cfg.Scheduling.DefaultWindow.OpensAt.Clock()),
			slog.String("window_closes_at", cfg.Scheduling.DefaultWindow.ClosesAt.Clock()),
			slog.Int("search_horizon_days", cfg.Scheduling.HorizonDays),
		)
		serverErr <- srv.ListenAndServe()
	}()

	// Wait for shutdown signal or server error
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		slog.Info("shutdown signal received", slog.String("signal", sig.String()))
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("failed to shutdown server", slog.String("error", err.Error()))
			return 1
		}

		slog.Info("server exited properly")
		return 0

	case err := <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return 0
		}
		slog.Error("server exited with error", slog.String("error", err.Error()))
		return 1
	}
}
