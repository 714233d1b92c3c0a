// Package di wires the data-access layer together: one database handle, one
// cache store and one allocator shared by every entity service, plus factory
// functions for the per-entity engines. Go methods cannot carry type
// parameters, so the engine factories are package-level functions taking the
// container.
package di

import (
	"database/sql"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"go.uber.org/zap"

	"github.com/riteshgharti333/hospital-management-app-sub001/cache"
	"github.com/riteshgharti333/hospital-management-app-sub001/dashboard"
	"github.com/riteshgharti333/hospital-management-app-sub001/internal/cacheinfra"
	"github.com/riteshgharti333/hospital-management-app-sub001/records"
	"github.com/riteshgharti333/hospital-management-app-sub001/sequence"
)

// Container owns the shared singletons of the data-access layer.
type Container struct {
	cfg       Config
	log       *zap.Logger
	db        *bun.DB
	store     cache.Store
	allocator *sequence.Allocator
	metrics   *dashboard.Metrics

	closers []func() error
}

// NewContainer builds the container from configuration. log may be nil.
func NewContainer(cfg Config, log *zap.Logger) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}

	c := &Container{cfg: cfg, log: log}

	sqldb, err := sql.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, err
	}
	switch cfg.Driver {
	case "postgres":
		c.db = bun.NewDB(sqldb, pgdialect.New())
	default:
		c.db = bun.NewDB(sqldb, sqlitedialect.New())
	}
	c.closers = append(c.closers, c.db.Close)

	if cfg.RedisAddr != "" {
		rs := cacheinfra.NewRedisStore(cacheinfra.NewRedisClient(cacheinfra.Config{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		}))
		c.store = rs
		c.closers = append(c.closers, rs.Close)
	} else {
		ms := cacheinfra.NewMemoryStore(cfg.SweepInterval)
		c.store = ms
		c.closers = append(c.closers, ms.Close)
	}

	c.allocator = sequence.NewAllocator(sequence.NewSQLCounters(c.db), log)
	c.metrics = dashboard.NewMetrics(c.db, c.store, log)
	return c, nil
}

// NewContainerWithDefaults builds a container from the default configuration.
func NewContainerWithDefaults(log *zap.Logger) (*Container, error) {
	return NewContainer(DefaultConfig(), log)
}

// DB returns the shared database handle.
func (c *Container) DB() *bun.DB { return c.db }

// Store returns the shared cache store.
func (c *Container) Store() cache.Store { return c.store }

// Allocator returns the shared business-identifier allocator.
func (c *Container) Allocator() *sequence.Allocator { return c.allocator }

// Metrics returns the dashboard aggregate reader.
func (c *Container) Metrics() *dashboard.Metrics { return c.metrics }

// Logger returns the container's logger.
func (c *Container) Logger() *zap.Logger { return c.log }

// Close releases the container's resources in reverse construction order.
func (c *Container) Close() error {
	var firstErr error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// NewPager builds a cached keyset pager for one entity.
// Example: di.NewPager(container, model.DoctorDescriptor)
func NewPager[T any](c *Container, desc records.Descriptor[T]) (*records.Pager[T], error) {
	return records.NewPager(c.db, c.store, c.log, desc)
}

// NewSearchEngine builds a cached search engine for one entity.
func NewSearchEngine[T any](c *Container, desc records.Descriptor[T], spec records.SearchSpec) (*records.SearchEngine[T], error) {
	return records.NewSearchEngine(c.db, c.store, c.log, desc, spec)
}
