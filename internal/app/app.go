package app

import (
	"context"
	"fmt"
	"net/http"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/riskibarqy/olympic-data-hub/internal/config"
	"github.com/riskibarqy/olympic-data-hub/internal/domain/dataset"
	warehousecache "github.com/riskibarqy/olympic-data-hub/internal/infrastructure/warehouse/cache"
	"github.com/riskibarqy/olympic-data-hub/internal/infrastructure/warehouse/memory"
	"github.com/riskibarqy/olympic-data-hub/internal/infrastructure/warehouse/postgres"
	"github.com/riskibarqy/olympic-data-hub/internal/interfaces/httpapi"
	"github.com/riskibarqy/olympic-data-hub/internal/platform/cache"
	"github.com/riskibarqy/olympic-data-hub/internal/platform/logging"
	"github.com/riskibarqy/olympic-data-hub/internal/platform/metrics"
	"github.com/riskibarqy/olympic-data-hub/internal/platform/resilience"
	"github.com/riskibarqy/olympic-data-hub/internal/usecase"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
)

// App holds the HTTP server and the resources it must release on shutdown.
type App struct {
	Server    *http.Server
	Dashboard *usecase.DashboardService

	cfg    config.Config
	logger *logging.Logger
	db     *sqlx.DB
}

func New(cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	var recorder *metrics.Recorder
	if cfg.MetricsEnabled {
		recorder = metrics.New()
	}

	a := &App{cfg: cfg, logger: logger}

	querier, err := a.openWarehouse(recorder)
	if err != nil {
		return nil, err
	}

	if cfg.CacheEnabled {
		store := cache.NewStore(cfg.CacheTTL)
		var observer warehousecache.Observer
		if recorder != nil {
			observer = recorder
			recorder.RegisterCacheSize(store.Len)
		}
		querier = warehousecache.NewQuerier(querier, store, observer)
	}

	var viewObserver usecase.ViewObserver
	if recorder != nil {
		viewObserver = recorder
	}
	a.Dashboard = usecase.NewDashboardService(querier, logger.Named("dashboard"), viewObserver, usecase.DashboardOptions{
		TopAthletesLimit: cfg.TopAthletesLimit,
		SummaryWorkers:   cfg.SummaryWorkers,
	})

	routerOpts := httpapi.RouterOptions{
		Logger:             logger.Named("http"),
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	}
	if recorder != nil {
		routerOpts.Metrics = recorder.Handler()
		routerOpts.Recorder = recorder
	}
	handler := httpapi.NewHandler(a.Dashboard, logger.Named("http"))

	a.Server = &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      httpapi.NewRouter(handler, routerOpts),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return a, nil
}

func (a *App) openWarehouse(recorder *metrics.Recorder) (dataset.Querier, error) {
	switch a.cfg.WarehouseDriver {
	case config.WarehouseDriverMemory:
		a.logger.Info("using in-memory warehouse")
		return memory.NewSeeded(), nil
	case config.WarehouseDriverPostgres:
	default:
		return nil, fmt.Errorf("unsupported warehouse driver %q", a.cfg.WarehouseDriver)
	}

	db, err := otelsqlx.Open(
		"postgres",
		normalizeDBURL(a.cfg.DBURL, a.cfg.DBReadOnly, a.cfg.ServiceName),
		otelsql.WithDBName(dbNameFromURL(a.cfg.DBURL)),
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithQueryFormatter(formatWarehouseQuery),
	)
	if err != nil {
		return nil, crerr.Wrap(err, "open warehouse")
	}
	if a.cfg.DBMaxOpenConns > 0 {
		db.SetMaxOpenConns(a.cfg.DBMaxOpenConns)
		db.SetMaxIdleConns(a.cfg.DBMaxOpenConns)
	}
	a.db = db

	opts := postgres.Options{
		QueryTimeout: a.cfg.WarehouseQueryTimeout,
		Logger:       a.logger.Named("warehouse"),
	}
	if a.cfg.WarehouseCircuitEnabled {
		opts.Breaker = resilience.NewCircuitBreaker(resilience.CircuitBreakerConfig{
			Enabled:          true,
			FailureThreshold: a.cfg.WarehouseCircuitFailures,
			OpenTimeout:      a.cfg.WarehouseCircuitOpenTime,
			HalfOpenMaxReq:   a.cfg.WarehouseCircuitHalfOpen,
		})
	}
	if recorder != nil {
		opts.Observer = recorder
	}

	a.logger.Info("using postgres warehouse",
		"db_name", dbNameFromURL(a.cfg.DBURL),
		"read_only", a.cfg.DBReadOnly,
		"circuit_breaker", a.cfg.WarehouseCircuitEnabled,
	)
	return postgres.NewConnector(db, opts), nil
}

// Warmup pre-loads every cacheable view when warmup is enabled. Failures
// are logged; the server keeps serving and loads lazily.
func (a *App) Warmup(ctx context.Context) {
	if !a.cfg.CacheEnabled || !a.cfg.CacheWarmupEnabled {
		return
	}
	if err := a.Dashboard.Warmup(ctx); err != nil {
		a.logger.WarnContext(ctx, "cache warmup incomplete", "error", err)
		return
	}
	a.logger.InfoContext(ctx, "cache warmup finished")
}

// Shutdown stops the HTTP server and then closes the warehouse handle.
func (a *App) Shutdown(ctx context.Context) error {
	var errs error
	if err := a.Server.Shutdown(ctx); err != nil {
		errs = crerr.CombineErrors(errs, crerr.Wrap(err, "shutdown http server"))
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			errs = crerr.CombineErrors(errs, crerr.Wrap(err, "close warehouse"))
		}
	}
	return errs
}
