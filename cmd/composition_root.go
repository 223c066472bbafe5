package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"booking/internal/adapters/out/storage/gormkv"
	"booking/internal/adapters/out/storage/memorykv"
	"booking/internal/adapters/out/storage/rediskv"
	"booking/internal/adapters/out/storage/session"
	"booking/internal/core/application/usecases/commands"
	"booking/internal/core/application/usecases/queries"
	"booking/internal/core/domain/services"
	"booking/internal/core/ports"
	"booking/internal/jobs"
	"booking/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Storage is a backend able to hand out session buckets and drop idle ones.
type Storage interface {
	session.Buckets
	ports.StaleSnapshotSweeper
}

type CompositionRoot struct {
	config   Config
	logger   *slog.Logger
	registry *prometheus.Registry

	storage  Storage
	closers  []func() error
	factory  *session.Factory
	estimate services.BookingEstimator

	jobMetrics  *metrics.JobMetrics
	httpMetrics *metrics.HTTPMetrics
}

// NewCompositionRoot opens the configured storage backend and builds the
// shared collaborators. Close releases the backend.
func NewCompositionRoot(ctx context.Context, config Config, logger *slog.Logger) (*CompositionRoot, error) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	root := &CompositionRoot{
		config:      config,
		logger:      logger,
		registry:    registry,
		estimate:    services.NewBookingEstimator(),
		jobMetrics:  metrics.NewJobMetrics(registry),
		httpMetrics: metrics.NewHTTPMetrics(registry),
	}

	storage, err := root.openStorage(ctx)
	if err != nil {
		return nil, err
	}
	root.storage = storage
	root.factory = session.NewFactory(storage, logger, metrics.NewCartMetrics(registry))
	return root, nil
}

func (c *CompositionRoot) openStorage(ctx context.Context) (Storage, error) {
	switch c.config.StorageDriver {
	case StorageSQLite:
		return c.openGorm(ctx, sqlite.Open(c.config.SQLitePath))
	case StoragePostgres:
		return c.openGorm(ctx, postgres.Open(c.config.PostgresDSN()))
	case StorageRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     c.config.RedisAddr,
			Password: c.config.RedisPassword,
			DB:       c.config.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("connecting to redis: %w", err)
		}
		c.closers = append(c.closers, client.Close)
		return rediskv.NewRepository(client, c.config.RedisPrefix, c.config.SnapshotTTL), nil
	default:
		return memorykv.NewRepository(), nil
	}
}

func (c *CompositionRoot) openGorm(ctx context.Context, dialector gorm.Dialector) (Storage, error) {
	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("opening %s storage: %w", c.config.StorageDriver, err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	c.closers = append(c.closers, sqlDB.Close)

	repo := gormkv.NewRepository(db)
	if err = repo.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("migrating %s storage: %w", c.config.StorageDriver, err)
	}
	return repo, nil
}

// Close releases storage connections.
func (c *CompositionRoot) Close() error {
	var firstErr error
	for _, closeFn := range c.closers {
		if err := closeFn(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (c *CompositionRoot) Registry() *prometheus.Registry {
	return c.registry
}

func (c *CompositionRoot) HTTPMetrics() *metrics.HTTPMetrics {
	return c.httpMetrics
}

// Commands

func (c *CompositionRoot) CreateAddLineCommandHandler() commands.AddLineCommandHandler {
	return commands.NewAddLineCommandHandler(c.factory)
}

func (c *CompositionRoot) CreateRemoveLineCommandHandler() commands.RemoveLineCommandHandler {
	return commands.NewRemoveLineCommandHandler(c.factory)
}

func (c *CompositionRoot) CreateSetQuantityCommandHandler() commands.SetQuantityCommandHandler {
	return commands.NewSetQuantityCommandHandler(c.factory)
}

func (c *CompositionRoot) CreateUpdateLineDetailsCommandHandler() commands.UpdateLineDetailsCommandHandler {
	return commands.NewUpdateLineDetailsCommandHandler(c.factory)
}

func (c *CompositionRoot) CreateClearCartCommandHandler() commands.ClearCartCommandHandler {
	return commands.NewClearCartCommandHandler(c.factory)
}

func (c *CompositionRoot) CreateCheckoutCommandHandler() commands.CheckoutCommandHandler {
	return commands.NewCheckoutCommandHandler(c.factory)
}

func (c *CompositionRoot) CreateSubmitQuoteCommandHandler() commands.SubmitQuoteCommandHandler {
	return commands.NewSubmitQuoteCommandHandler(c.factory)
}

func (c *CompositionRoot) CreateSweepSnapshotsCommandHandler() commands.SweepSnapshotsCommandHandler {
	return commands.NewSweepSnapshotsCommandHandler(c.storage)
}

// Queries

func (c *CompositionRoot) CreateGetCartQueryHandler() queries.GetCartQueryHandler {
	return queries.NewGetCartQueryHandler(c.factory)
}

func (c *CompositionRoot) CreateGetCatalogQueryHandler() queries.GetCatalogQueryHandler {
	return queries.NewGetCatalogQueryHandler()
}

func (c *CompositionRoot) CreateEstimatePriceQueryHandler() queries.EstimatePriceQueryHandler {
	return queries.NewEstimatePriceQueryHandler(c.estimate)
}

func (c *CompositionRoot) CreateGetLastBookingQueryHandler() queries.GetLastBookingQueryHandler {
	return queries.NewGetLastBookingQueryHandler(c.factory)
}

func (c *CompositionRoot) CreateGetLatestQuoteQueryHandler() queries.GetLatestQuoteQueryHandler {
	return queries.NewGetLatestQuoteQueryHandler(c.factory)
}

// Jobs

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateSweepSnapshotsCommandHandler(),
		jobs.SweepConfig{Schedule: c.config.SweepSchedule, MaxAge: c.config.SnapshotTTL},
		c.logger,
		c.jobMetrics,
	)
}
