package maintenance

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/estateview/estateview/internal/content"
	"github.com/estateview/estateview/pkg/logger"
)

const (
	defaultMaxAge   = 30 * 24 * time.Hour
	defaultSchedule = "@daily"
)

// Cleaner prunes stale AI content cache entries on a schedule. Cached
// content never expires on read, so installations that want periodic
// refreshes opt in to the pruner instead.
type Cleaner struct {
	store    *content.Store
	cron     *cron.Cron
	log      *zap.Logger
	maxAge   time.Duration
	schedule string
}

// Option customises the Cleaner.
type Option func(*Cleaner)

// WithCron injects a preconfigured cron instance, primarily for testing.
func WithCron(c *cron.Cron) Option {
	return func(cleaner *Cleaner) {
		if c != nil {
			cleaner.cron = c
		}
	}
}

// WithMaxAge adjusts how old a cache entry must be before it is pruned.
func WithMaxAge(age time.Duration) Option {
	return func(cleaner *Cleaner) {
		if age > 0 {
			cleaner.maxAge = age
		}
	}
}

// WithSchedule overrides the cron specification for the prune job.
func WithSchedule(spec string) Option {
	return func(cleaner *Cleaner) {
		if spec != "" {
			cleaner.schedule = spec
		}
	}
}

// NewCleaner constructs a Cleaner with sensible defaults. A nil store results
// in the prune job being skipped.
func NewCleaner(store *content.Store, opts ...Option) *Cleaner {
	cleaner := &Cleaner{
		store:    store,
		maxAge:   defaultMaxAge,
		schedule: defaultSchedule,
		log:      logger.WithModule("maintenance"),
	}

	for _, opt := range opts {
		opt(cleaner)
	}

	if cleaner.cron == nil {
		cleaner.cron = cron.New(cron.WithLogger(cron.DiscardLogger))
	}

	return cleaner
}

// Start registers the prune job with the cron scheduler and launches it.
func (c *Cleaner) Start() error {
	if c.store == nil {
		return nil
	}

	if _, err := c.cron.AddFunc(c.schedule, func() {
		if err := c.prune(context.Background()); err != nil {
			c.log.Warn("content cache prune failed", zap.Error(err))
		}
	}); err != nil {
		return err
	}

	c.cron.Start()
	return nil
}

// Stop halts the underlying scheduler, waiting for any running jobs to complete.
func (c *Cleaner) Stop() context.Context {
	if c.cron == nil {
		return context.Background()
	}
	return c.cron.Stop()
}

// RunOnce executes all configured cleanup routines sequentially. Primarily used in tests
// and during graceful shutdown.
func (c *Cleaner) RunOnce(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	var errs error

	if c.store != nil {
		if err := c.prune(ctx); err != nil {
			errs = multierr.Append(errs, err)
		}
	}

	return errs
}

func (c *Cleaner) prune(ctx context.Context) error {
	pruned, err := c.store.PruneOlderThan(ctx, c.maxAge)
	if err != nil {
		return err
	}
	if pruned > 0 {
		c.log.Info("pruned stale content cache entries", zap.Int64("count", pruned))
	}
	return nil
}
