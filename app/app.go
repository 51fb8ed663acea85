package app

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/jekabolt/grbpwr-analytics/config"
	httpapi "github.com/jekabolt/grbpwr-analytics/internal/api/http"
	"github.com/jekabolt/grbpwr-analytics/internal/cache"
	"github.com/jekabolt/grbpwr-analytics/internal/dependency"
	"github.com/jekabolt/grbpwr-analytics/internal/report"
	"github.com/jekabolt/grbpwr-analytics/internal/store"
	"github.com/jekabolt/grbpwr-analytics/internal/warmup"
)

// App is the main application
type App struct {
	hs   *httpapi.Server
	db   dependency.Repository
	ww   *warmup.Worker
	c    *config.Config
	once sync.Once
	done chan struct{}
}

// New returns a new instance of App
func New(c *config.Config) *App {
	return &App{
		c:    c,
		done: make(chan struct{}),
	}
}

// Start starts the app
func (a *App) Start(ctx context.Context) error {
	slog.Default().InfoContext(ctx, "starting analytics service")

	db, err := store.New(ctx, a.c.DB)
	if err != nil {
		slog.Default().ErrorContext(ctx, "couldn't connect to mysql",
			slog.String("err", err.Error()),
		)
		return err
	}
	a.db = db

	svc, err := NewReportService(ctx, a.c, db.Reports())
	if err != nil {
		return err
	}

	if a.ww = newWarmup(ctx, &a.c.Warmup, svc); a.ww != nil {
		if err := a.ww.Start(ctx); err != nil {
			slog.Default().ErrorContext(ctx, "cannot start dashboard warmup",
				slog.String("err", err.Error()),
			)
			return err
		}
	}

	a.hs = httpapi.New(&a.c.HTTP)
	if err = a.hs.Start(ctx, svc, db); err != nil {
		slog.Default().ErrorContext(ctx, "cannot start http server",
			slog.String("err", err.Error()),
		)
		return err
	}

	go func() {
		<-a.hs.Done()
		a.Stop(context.Background())
	}()

	return nil
}

// newWarmup returns nil when there is nothing to warm: no units, or no cache
// to keep the refreshed dashboards in.
func newWarmup(ctx context.Context, c *warmup.Config, svc *report.Service) *warmup.Worker {
	if len(c.Units) == 0 {
		return nil
	}
	if !svc.Cached() {
		slog.Default().InfoContext(ctx, "report cache disabled, dashboard warmup off")
		return nil
	}
	return warmup.New(c, svc)
}

// NewReportService builds the reporting service with the configured cache.
func NewReportService(ctx context.Context, c *config.Config, reports dependency.Reports, opts ...report.Option) (*report.Service, error) {
	rc, err := cache.New(ctx, c.Redis)
	if err != nil {
		slog.Default().ErrorContext(ctx, "couldn't connect to report cache",
			slog.String("err", err.Error()),
		)
		return nil, err
	}

	if rc != nil {
		opts = append(opts, report.WithCache(rc))
	}
	svc, err := report.New(reports, c.Reports, opts...)
	if err != nil {
		return nil, fmt.Errorf("can't create report service: %w", err)
	}
	return svc, nil
}

// Stop stops the application and waits for all services to exit
func (a *App) Stop(ctx context.Context) {
	a.once.Do(func() { a.stop(ctx) })
}

func (a *App) stop(ctx context.Context) {
	if a.ww != nil {
		if err := a.ww.Stop(); err != nil {
			slog.Default().WarnContext(ctx, "can't stop dashboard warmup",
				slog.String("err", err.Error()),
			)
		}
	}
	if a.hs != nil {
		a.hs.Stop()
	}
	if a.db != nil {
		a.db.Close()
	}
	close(a.done)
}

// Done returns a channel that is closed after the application has exited
func (a *App) Done() chan struct{} {
	return a.done
}
