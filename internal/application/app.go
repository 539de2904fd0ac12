// Package application wires the validation service from configuration. The
// HTTP server and the command-line tool both start from here.
package application

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/JonMunkholm/geoanla/internal/config"
	"github.com/JonMunkholm/geoanla/internal/core"
	_ "github.com/JonMunkholm/geoanla/internal/core/tables" // Register all record types
	"github.com/JonMunkholm/geoanla/internal/elevation"
	"github.com/JonMunkholm/geoanla/internal/metrics"
)

// App holds the long-lived components of a running instance.
type App struct {
	Service   *core.Service
	Elevation *elevation.Client
	Metrics   *metrics.Metrics
	Pool      *pgxpool.Pool // nil without DATABASE_URL
}

// Option configures New.
type Option func(*options)

type options struct {
	logger     *slog.Logger
	registerer prometheus.Registerer
}

// WithLogger sets the logger of every component.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithRegisterer registers the instruments in reg. Without it no metrics are
// recorded.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(o *options) { o.registerer = reg }
}

// New loads the reference data, connects to the database when one is
// configured and builds the service.
func New(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	o := options{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	reg, err := core.LoadRegistry(cfg.Catalog.SubdivisionsPath, cfg.Catalog.DictionariesPath)
	if err != nil {
		return nil, err
	}
	o.logger.Info("catalog loaded",
		"domains", reg.Catalog().Len(),
		"schemas", core.SchemaCount(),
		"groups", len(core.Groups()),
	)
	for _, group := range core.Groups() {
		o.logger.Debug("schema group", "group", group, "schemas", len(core.ByGroup(group)))
	}

	app := &App{}
	if o.registerer != nil {
		app.Metrics = metrics.New(o.registerer)
	}

	engine := core.NewEngine(reg,
		core.WithLogger(o.logger),
		core.WithMetrics(app.Metrics),
	)

	if cfg.Validation.Timeout > 0 {
		core.ValidateTimeout = cfg.Validation.Timeout
	}
	svcOpts := []core.ServiceOption{
		core.WithLimiter(core.NewBatchLimiter(cfg.Validation.MaxConcurrent, cfg.Validation.MaxWaitTime)),
		core.WithResultCapacity(cfg.Results.Capacity),
		core.WithServiceLogger(o.logger),
	}

	if cfg.Elevation.URL != "" {
		client, err := newElevation(cfg.Elevation, o.logger, app.Metrics)
		if err != nil {
			return nil, err
		}
		app.Elevation = client
	}

	if cfg.Database.Enabled() {
		pool, err := connect(ctx, cfg.Database, o.logger)
		if err != nil {
			return nil, err
		}
		app.Pool = pool
		svcOpts = append(svcOpts, core.WithDB(pool))
	}

	app.Service = core.NewService(engine, svcOpts...)
	return app, nil
}

// newElevation builds the elevation client. Points of the configured source
// CRS (MAGNA-SIRGAS Origen-Nacional unless set) are reprojected to WGS84.
func newElevation(cfg config.ElevationConfig, logger *slog.Logger, m *metrics.Metrics) (*elevation.Client, error) {
	crs := cfg.SourceCRS
	if crs == 0 {
		crs = elevation.OrigenNacional
	}
	project, err := elevation.ProjectorFor(crs)
	if err != nil {
		return nil, fmt.Errorf("elevation: %w", err)
	}

	opts := []elevation.Option{
		elevation.WithLogger(logger),
		elevation.WithMetrics(m),
	}
	if project != nil {
		opts = append(opts, elevation.WithProjector(project))
	}
	logger.Debug("elevation client", "url", cfg.URL, "source_crs", crs)

	return elevation.New(elevation.Config{
		URL:       cfg.URL,
		BatchSize: cfg.BatchSize,
		Delay:     cfg.Delay,
		Timeout:   cfg.Timeout,
	}, opts...), nil
}

// Close releases the database pool.
func (a *App) Close() {
	if a.Pool != nil {
		a.Pool.Close()
	}
}

func connect(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse database URL: %w", err)
	}
	poolConfig.MaxConns = int32(cfg.MaxConns)
	poolConfig.MinConns = int32(cfg.MinConns)
	poolConfig.MaxConnLifetime = cfg.MaxConnLifetime
	poolConfig.MaxConnIdleTime = cfg.MaxConnIdleTime

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if u, err := url.Parse(cfg.URL); err == nil {
		logger.Info("connected to database", "name", strings.TrimPrefix(u.Path, "/"))
	} else {
		logger.Info("connected to database")
	}
	return pool, nil
}
