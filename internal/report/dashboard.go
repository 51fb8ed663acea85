package report

import (
	"context"
	"log/slog"
	"time"

	"github.com/jekabolt/grbpwr-analytics/internal/cache"
	"github.com/jekabolt/grbpwr-analytics/internal/entity"
	gerr "github.com/jekabolt/grbpwr-analytics/internal/errors"
	"golang.org/x/sync/errgroup"
)

// ResolveComparisonWindows returns the current period of unit up to now and
// the same span of the period before it. The previous window never overlaps
// the current one.
func ResolveComparisonWindows(unit entity.TimeUnit, now time.Time) (current, previous entity.TimeRange, err error) {
	y, m, d := now.Date()
	loc := now.Location()

	var start, prevStart time.Time
	switch unit {
	case entity.TimeUnitWeek:
		start = time.Date(y, m, d-int(now.Weekday()), 0, 0, 0, 0, loc)
		prevStart = start.AddDate(0, 0, -7)
	case entity.TimeUnitMonth:
		start = time.Date(y, m, 1, 0, 0, 0, 0, loc)
		prevStart = start.AddDate(0, -1, 0)
	case entity.TimeUnitQuarter:
		qm := time.Month((int(m)-1)/3*3 + 1)
		start = time.Date(y, qm, 1, 0, 0, 0, 0, loc)
		prevStart = start.AddDate(0, -3, 0)
	case entity.TimeUnitYear:
		start = time.Date(y, time.January, 1, 0, 0, 0, 0, loc)
		prevStart = start.AddDate(-1, 0, 0)
	default:
		return current, previous, gerr.InvalidArgumentf(gerr.ErrInvalidTimeUnit, "invalid time unit %q", unit)
	}

	prevEnd := prevStart.Add(now.Sub(start))
	if !prevEnd.Before(start) {
		prevEnd = start.Add(-time.Second)
	}
	return entity.TimeRange{From: start, To: now}, entity.TimeRange{From: prevStart, To: prevEnd}, nil
}

// Dashboard runs every report family for unit in parallel. The first failure
// cancels the others and is returned.
func (s *Service) Dashboard(ctx context.Context, unit entity.TimeUnit) (*entity.Dashboard, error) {
	return s.dashboard(ctx, unit, true)
}

// RefreshDashboard rebuilds the dashboard of unit ignoring any cached copy
// and stores the result.
func (s *Service) RefreshDashboard(ctx context.Context, unit entity.TimeUnit) (*entity.Dashboard, error) {
	return s.dashboard(ctx, unit, false)
}

func (s *Service) dashboard(ctx context.Context, unit entity.TimeUnit, useCache bool) (*entity.Dashboard, error) {
	now := s.now()
	label, err := cacheLabel(unit, now)
	if err != nil {
		return nil, err
	}
	current, previous, err := ResolveComparisonWindows(unit, now)
	if err != nil {
		return nil, err
	}

	key := cache.Key("dashboard", string(unit), label)
	if cached := (&entity.Dashboard{}); useCache && s.fromCache(ctx, key, cached) {
		return cached, nil
	}

	db := &entity.Dashboard{
		Unit:        unit,
		GeneratedAt: now,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		db.FinancialSummary, err = s.financialSummary(gctx, unit, now)
		return err
	})
	g.Go(func() (err error) {
		db.Comparison, err = s.Comparison(gctx, current, previous)
		return err
	})
	g.Go(func() (err error) {
		db.TopCustomers, err = s.TopCustomers(gctx, current.From, current.To)
		return err
	})
	g.Go(func() (err error) {
		db.TopProducts, err = s.TopProducts(gctx, current.From, current.To)
		return err
	})
	g.Go(func() (err error) {
		db.RevenueByCategory, err = s.RevenueByCategory(gctx, &current)
		return err
	})
	g.Go(func() (err error) {
		db.RevenueBySupplier, err = s.RevenueBySupplier(gctx, &current)
		return err
	})
	if err := g.Wait(); err != nil {
		slog.Default().ErrorContext(ctx, "can't build dashboard",
			slog.String("err", err.Error()),
			slog.String("unit", string(unit)),
		)
		return nil, err
	}

	s.toCache(ctx, key, db)
	return db, nil
}
