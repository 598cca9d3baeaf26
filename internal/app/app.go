package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"

	"github.com/AviranAbady/sales-api/internal/availability"
	"github.com/AviranAbady/sales-api/internal/config"
	"github.com/AviranAbady/sales-api/internal/domain/model"
	"github.com/AviranAbady/sales-api/internal/events"
	"github.com/AviranAbady/sales-api/internal/http/handlers"
	"github.com/AviranAbady/sales-api/internal/http/middlewares"
	"github.com/AviranAbady/sales-api/internal/service/order"
	"github.com/AviranAbady/sales-api/internal/storage/memory"
	"github.com/AviranAbady/sales-api/internal/storage/pg"
	"github.com/AviranAbady/sales-api/pkg/kafka"
	"github.com/AviranAbady/sales-api/pkg/metrics"
)

type App struct {
	cfg      *config.Config
	logger   *slog.Logger
	producer *kafka.Producer
	closeDB  func()
	server   *http.Server
	metrics  *http.Server
}

func New(cfg *config.Config) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config required")
	}

	ctx := context.Background()

	// Logger initialisation
	logger := newLogger(cfg.App.LogLevel, cfg.App.Name)
	slog.SetDefault(logger)
	logger.Info("initialising", slog.String("service", cfg.App.Name))

	// Event publisher
	producer, err := kafka.NewProducer(&kafka.ProducerConfig{
		Brokers:     cfg.Kafka.Brokers,
		Acks:        cfg.Kafka.Acks,
		LingerMs:    cfg.Kafka.LingerMs,
		Compression: cfg.Kafka.Compression,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("app creation: %w", err)
	}
	publisher := events.NewPublisher(producer)

	// Order store, selected by config
	var (
		storage order.Storage
		closeDB func()
	)
	switch cfg.Storage.Driver {
	case "postgres":
		pgConfig := &pg.StorageConfig{
			DSN:             cfg.Postgres.DSN,
			MaxConns:        cfg.Postgres.MaxConns,
			MinConns:        cfg.Postgres.MinConns,
			MaxConnLife:     cfg.Postgres.MaxConnLifetime,
			MaxConnIdleTime: cfg.Postgres.MaxConnIdleTime,
		}
		pgStorage, err := pg.NewPGStorage(ctx, logger, pgConfig, publisher, cfg.Kafka.OrderCreatedTopic)
		if err != nil {
			return nil, fmt.Errorf("app creation: %w", err)
		}
		logger.Info("postgres connected")
		storage = pgStorage
		closeDB = pgStorage.Close
	case "memory":
		memStorage := memory.NewStorage(publisher, cfg.Kafka.OrderCreatedTopic)
		memStorage.SeedProducts(defaultCatalog...)
		logger.Info("in-memory storage selected")
		storage = memStorage
		closeDB = func() {}
	default:
		return nil, fmt.Errorf("unknown storage driver: %q", cfg.Storage.Driver)
	}

	// Availability client
	checker := availability.NewClient(&availability.ClientConfig{
		BaseURL: cfg.Availability.BaseURL,
		Timeout: cfg.Availability.Timeout,
	})

	service := order.NewOrderService(logger, storage, checker)
	handler := handlers.New(logger, service)

	serverMetrics := metrics.NewServerMetrics("api")

	router := chi.NewRouter()
	router.Use(middlewares.Recovery(logger))
	router.Use(middlewares.Metrics(serverMetrics))
	router.Mount("/", handler.Routes())

	return &App{
		cfg:      cfg,
		logger:   logger,
		producer: producer,
		closeDB:  closeDB,
		server: &http.Server{
			Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
			Handler:      router,
			ReadTimeout:  cfg.HTTP.ReadTimeout,
			WriteTimeout: cfg.HTTP.WriteTimeout,
		},
		metrics: &http.Server{
			Addr:    fmt.Sprintf(":%d", cfg.Telemetry.MetricsPort),
			Handler: metrics.Handler(),
		},
	}, nil
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (a *App) Run(ctx context.Context) error {
	go func() {
		a.logger.Info("metrics listening", slog.String("addr", a.metrics.Addr))
		if err := a.metrics.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Error("metrics server error", slog.Any("error", err))
		}
	}()

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("http listening", slog.String("addr", a.server.Addr))
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("http shutdown", slog.Any("error", err))
	}
	_ = a.metrics.Shutdown(shutdownCtx)

	a.producer.Close()
	a.closeDB()

	a.logger.Info("shutdown complete")
	return nil
}

// defaultCatalog seeds the in-memory store with the same reference data
// migrations/001_init.sql loads into Postgres.
var defaultCatalog = []model.Product{
	{ID: "f47ac10b-58cc-4372-a567-0e02b2c3d479", Name: "Check Point Quantum Spark 1530", UnitPrice: 1000},
	{ID: "9b3f8e7a-4d2c-4a1e-9f5b-8c6d3e2a1b0c", Name: "Check Point 2200 Appliance", UnitPrice: 2000},
	{ID: "2e9f6a8b-7c5d-4e3f-a1b2-9d8c7b6a5e4f", Name: "Check Point 7000 Series Gateways", UnitPrice: 3000},
}

func newLogger(level, service string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "info":
		lvl = slog.LevelInfo
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})).
		With(slog.String("service", service))
}
