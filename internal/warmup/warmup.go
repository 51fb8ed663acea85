package warmup

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jekabolt/grbpwr-analytics/internal/entity"
)

// Config holds configuration for the dashboard warmup worker.
type Config struct {
	WorkerInterval time.Duration     `mapstructure:"worker_interval"`
	Units          []entity.TimeUnit `mapstructure:"units"`
}

// DefaultConfig returns default configuration values.
func DefaultConfig() Config {
	return Config{
		WorkerInterval: 5 * time.Minute,
		Units:          []entity.TimeUnit{entity.TimeUnitWeek, entity.TimeUnitMonth},
	}
}

// Refresher rebuilds and caches a dashboard.
type Refresher interface {
	RefreshDashboard(ctx context.Context, unit entity.TimeUnit) (*entity.Dashboard, error)
}

// Worker periodically rebuilds dashboards so that reads hit a warm cache.
type Worker struct {
	r    Refresher
	c    *Config
	ctx  context.Context
	stop context.CancelFunc
}

// New creates a new warmup worker.
func New(c *Config, r Refresher) *Worker {
	if c == nil {
		dc := DefaultConfig()
		c = &dc
	}
	if c.WorkerInterval == 0 {
		c.WorkerInterval = 5 * time.Minute
	}
	return &Worker{
		r: r,
		c: c,
	}
}

// Start refreshes every configured unit once and then on each interval.
func (w *Worker) Start(ctx context.Context) error {
	if w.ctx != nil && w.stop != nil {
		return fmt.Errorf("warmup worker already started")
	}
	for _, u := range w.c.Units {
		if !entity.ValidTimeUnits[u] {
			return fmt.Errorf("warmup: invalid time unit %q", u)
		}
	}
	w.ctx, w.stop = context.WithCancel(ctx)
	go w.worker(w.ctx)
	return nil
}

// Stop stops the worker gracefully.
func (w *Worker) Stop() error {
	if w.stop == nil {
		return fmt.Errorf("warmup worker already stopped or not started")
	}
	w.stop()
	w.stop = nil
	return nil
}

func (w *Worker) worker(ctx context.Context) {
	ticker := time.NewTicker(w.c.WorkerInterval)
	defer ticker.Stop()

	w.refreshAll(ctx)
	for {
		select {
		case <-ticker.C:
			w.refreshAll(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (w *Worker) refreshAll(ctx context.Context) {
	for _, u := range w.c.Units {
		if ctx.Err() != nil {
			return
		}
		start := time.Now()
		if _, err := w.r.RefreshDashboard(ctx, u); err != nil {
			slog.Default().ErrorContext(ctx, "can't refresh dashboard",
				slog.String("err", err.Error()),
				slog.String("unit", string(u)),
			)
			continue
		}
		slog.Default().DebugContext(ctx, "dashboard refreshed",
			slog.String("unit", string(u)),
			slog.Duration("took", time.Since(start)),
		)
	}
}
