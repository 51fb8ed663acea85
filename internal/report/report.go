// Package report is the single entry point for sales analytics. It resolves
// periods, queries the store and normalizes the raw aggregates.
package report

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/jekabolt/grbpwr-analytics/internal/cache"
	"github.com/jekabolt/grbpwr-analytics/internal/dependency"
	"github.com/jekabolt/grbpwr-analytics/internal/entity"
	gerr "github.com/jekabolt/grbpwr-analytics/internal/errors"
	"github.com/jekabolt/grbpwr-analytics/internal/period"
)

// DefaultTopLimit is the size of top-N rankings when not configured.
const DefaultTopLimit = 5

// Config holds reporting defaults.
type Config struct {
	TopLimit int    `mapstructure:"top_limit"`
	Timezone string `mapstructure:"timezone"`
}

// Clock returns the reference instant for period resolution.
type Clock func() time.Time

// Kind selects a report family.
type Kind string

const (
	KindFinancialSummary  Kind = "financial_summary"
	KindTopCustomers      Kind = "top_customers"
	KindTopProducts       Kind = "top_products"
	KindRevenueByCategory Kind = "revenue_by_category"
	KindRevenueBySupplier Kind = "revenue_by_supplier"
	KindComparison        Kind = "comparison"
)

// ValidKinds is a set of valid report kinds
var ValidKinds = map[Kind]bool{
	KindFinancialSummary:  true,
	KindTopCustomers:      true,
	KindTopProducts:       true,
	KindRevenueByCategory: true,
	KindRevenueBySupplier: true,
	KindComparison:        true,
}

// Request describes one report. Unit is used by the financial summary and
// to derive default windows when Current or Previous are zero.
type Request struct {
	Kind     Kind
	Unit     entity.TimeUnit
	Current  entity.TimeRange
	Previous entity.TimeRange
}

// Result holds the output of Run; only the field matching Kind is set.
type Result struct {
	Kind             Kind                      `json:"kind"`
	FinancialSummary []entity.FinancialSummary `json:"financial_summary,omitempty"`
	Ranking          []entity.RevenueRanking   `json:"ranking,omitempty"`
	Comparison       *entity.ComparisonStats   `json:"comparison,omitempty"`
}

// Service is safe for concurrent use.
type Service struct {
	reports  dependency.Reports
	cache    dependency.ReportCache
	now      Clock
	topLimit int
}

type Option func(*Service)

// WithCache enables read-through caching of Run and Dashboard results.
func WithCache(c dependency.ReportCache) Option {
	return func(s *Service) {
		s.cache = c
	}
}

// WithClock overrides the reference clock.
func WithClock(c Clock) Option {
	return func(s *Service) {
		s.now = c
	}
}

// New creates a reporting service over reports.
func New(reports dependency.Reports, cfg Config, opts ...Option) (*Service, error) {
	loc := time.Local
	if cfg.Timezone != "" {
		l, err := time.LoadLocation(cfg.Timezone)
		if err != nil {
			return nil, fmt.Errorf("can't load timezone %q: %w", cfg.Timezone, err)
		}
		loc = l
	}

	s := &Service{
		reports:  reports,
		now:      func() time.Time { return time.Now().In(loc) },
		topLimit: cfg.TopLimit,
	}
	if s.topLimit <= 0 {
		s.topLimit = DefaultTopLimit
	}
	for _, o := range opts {
		o(s)
	}
	return s, nil
}

// Now returns the reference instant used by the service.
func (s *Service) Now() time.Time {
	return s.now()
}

// Cached reports whether results are kept in a cache.
func (s *Service) Cached() bool {
	return s.cache != nil
}

// storeErr keeps argument errors as they are and marks everything else as a
// store failure.
func storeErr(op string, err error) error {
	if gerr.IsInvalidArgument(err) {
		return err
	}
	return gerr.StoreUnavailable(op, err)
}

func validRange(r entity.TimeRange) error {
	if r.From.IsZero() || r.To.IsZero() {
		return gerr.InvalidArgumentf(gerr.ErrInvalidDateRange, "both from and to are required")
	}
	if r.To.Before(r.From) {
		return gerr.InvalidArgumentf(gerr.ErrInvalidDateRange, "to %s is before from %s", r.To.Format(time.RFC3339), r.From.Format(time.RFC3339))
	}
	return nil
}

// FinancialSummary returns one bucket per period label of unit, anchored at now.
func (s *Service) FinancialSummary(ctx context.Context, unit entity.TimeUnit) ([]entity.FinancialSummary, error) {
	return s.financialSummary(ctx, unit, s.now())
}

func (s *Service) financialSummary(ctx context.Context, unit entity.TimeUnit, now time.Time) ([]entity.FinancialSummary, error) {
	res, err := period.Resolve(unit, now)
	if err != nil {
		return nil, err
	}
	rows, err := s.reports.FinancialSummary(ctx, unit, res.Range)
	if err != nil {
		return nil, storeErr("financial summary", err)
	}
	return FillFinancialSummary(res.Labels, rows), nil
}

// TopCustomers ranks customers between from and to inclusive.
func (s *Service) TopCustomers(ctx context.Context, from, to time.Time) ([]entity.RevenueRanking, error) {
	if err := validRange(entity.TimeRange{From: from, To: to}); err != nil {
		return nil, err
	}
	rows, err := s.reports.TopCustomersByRevenue(ctx, from, to, s.topLimit)
	if err != nil {
		return nil, storeErr("top customers", err)
	}
	return NormalizeRanking(rows, s.topLimit), nil
}

// TopProducts ranks products between from and to inclusive.
func (s *Service) TopProducts(ctx context.Context, from, to time.Time) ([]entity.RevenueRanking, error) {
	if err := validRange(entity.TimeRange{From: from, To: to}); err != nil {
		return nil, err
	}
	rows, err := s.reports.TopProductsByRevenue(ctx, from, to, s.topLimit)
	if err != nil {
		return nil, storeErr("top products", err)
	}
	return NormalizeRanking(rows, s.topLimit), nil
}

// RevenueByCategory ranks every active category; rng nil means all history.
func (s *Service) RevenueByCategory(ctx context.Context, rng *entity.TimeRange) ([]entity.RevenueRanking, error) {
	if rng != nil {
		if err := validRange(*rng); err != nil {
			return nil, err
		}
	}
	rows, err := s.reports.RevenueByCategory(ctx, rng)
	if err != nil {
		return nil, storeErr("revenue by category", err)
	}
	return NormalizeRanking(rows, 0), nil
}

// RevenueBySupplier ranks every supplier; rng nil means all history.
func (s *Service) RevenueBySupplier(ctx context.Context, rng *entity.TimeRange) ([]entity.RevenueRanking, error) {
	if rng != nil {
		if err := validRange(*rng); err != nil {
			return nil, err
		}
	}
	rows, err := s.reports.RevenueBySupplier(ctx, rng)
	if err != nil {
		return nil, storeErr("revenue by supplier", err)
	}
	return NormalizeRanking(rows, 0), nil
}

// Comparison computes statistics of current against previous.
func (s *Service) Comparison(ctx context.Context, current, previous entity.TimeRange) (entity.ComparisonStats, error) {
	if err := validRange(current); err != nil {
		return entity.ComparisonStats{}, err
	}
	if err := validRange(previous); err != nil {
		return entity.ComparisonStats{}, err
	}
	row, err := s.reports.ComparisonStats(ctx, current, previous)
	if err != nil {
		return entity.ComparisonStats{}, storeErr("comparison", err)
	}
	return NormalizeComparison(current, previous, row), nil
}

// withDefaults fills zero windows of req from its unit.
func (s *Service) withDefaults(req Request, now time.Time) (Request, error) {
	if req.Unit == "" || (!req.Current.IsZero() && !req.Previous.IsZero()) {
		return req, nil
	}
	cur, prev, err := ResolveComparisonWindows(req.Unit, now)
	if err != nil {
		return req, err
	}
	if req.Current.IsZero() {
		req.Current = cur
	}
	if req.Previous.IsZero() {
		req.Previous = prev
	}
	return req, nil
}

// Run dispatches req to the matching report.
func (s *Service) Run(ctx context.Context, req Request) (*Result, error) {
	if !ValidKinds[req.Kind] {
		return nil, gerr.InvalidArgumentf(gerr.ErrInvalidReportKind, "invalid report kind %q", req.Kind)
	}
	now := s.now()
	key := requestKey(req, now)
	if req.Kind != KindRevenueByCategory && req.Kind != KindRevenueBySupplier {
		var err error
		if req, err = s.withDefaults(req, now); err != nil {
			return nil, err
		}
	}

	if cached := (&Result{}); s.fromCache(ctx, key, cached) {
		return cached, nil
	}

	res, err := s.run(ctx, req, now)
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't run report",
			slog.String("err", err.Error()),
			slog.String("kind", string(req.Kind)),
			slog.String("unit", string(req.Unit)),
		)
		return nil, err
	}

	s.toCache(ctx, key, res)
	return res, nil
}

func (s *Service) run(ctx context.Context, req Request, now time.Time) (*Result, error) {
	res := &Result{Kind: req.Kind}
	var err error
	switch req.Kind {
	case KindFinancialSummary:
		res.FinancialSummary, err = s.financialSummary(ctx, req.Unit, now)
	case KindTopCustomers:
		res.Ranking, err = s.TopCustomers(ctx, req.Current.From, req.Current.To)
	case KindTopProducts:
		res.Ranking, err = s.TopProducts(ctx, req.Current.From, req.Current.To)
	case KindRevenueByCategory:
		res.Ranking, err = s.RevenueByCategory(ctx, optionalRange(req.Current))
	case KindRevenueBySupplier:
		res.Ranking, err = s.RevenueBySupplier(ctx, optionalRange(req.Current))
	case KindComparison:
		var cs entity.ComparisonStats
		cs, err = s.Comparison(ctx, req.Current, req.Previous)
		res.Comparison = &cs
	}
	if err != nil {
		return nil, err
	}
	return res, nil
}

func optionalRange(r entity.TimeRange) *entity.TimeRange {
	if r.IsZero() {
		return nil
	}
	return &r
}

// requestKey identifies req before default windows are applied. Zero
// windows are keyed by the period label of now so that the entry rolls over
// with the period instead of changing on every call.
func requestKey(req Request, now time.Time) string {
	parts := []string{string(req.Unit)}
	if req.Kind == KindFinancialSummary || req.Current.IsZero() || (req.Kind == KindComparison && req.Previous.IsZero()) {
		if label, err := cacheLabel(req.Unit, now); err == nil {
			parts = append(parts, label)
		}
	}
	if req.Kind != KindFinancialSummary {
		parts = append(parts, cache.FormatRange(req.Current))
	}
	if req.Kind == KindComparison {
		parts = append(parts, cache.FormatRange(req.Previous))
	}
	return cache.Key(string(req.Kind), parts...)
}

// cacheLabel is the period label of now for cache keys. Week labels repeat
// every month, so they carry the month as well.
func cacheLabel(unit entity.TimeUnit, now time.Time) (string, error) {
	label, err := period.LabelOf(unit, now)
	if err != nil {
		return "", err
	}
	if unit == entity.TimeUnitWeek {
		return now.Format("2006-01") + ":" + label, nil
	}
	return label, nil
}

// fromCache decodes key into dst. Cache failures are treated as misses.
func (s *Service) fromCache(ctx context.Context, key string, dst any) bool {
	if s.cache == nil {
		return false
	}
	b, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		slog.Default().WarnContext(ctx, "can't read report cache",
			slog.String("err", err.Error()),
			slog.String("key", key),
		)
		return false
	}
	if !ok {
		slog.Default().DebugContext(ctx, "report cache miss", slog.String("key", key))
		return false
	}
	if err := json.Unmarshal(b, dst); err != nil {
		slog.Default().WarnContext(ctx, "can't decode cached report",
			slog.String("err", err.Error()),
			slog.String("key", key),
		)
		return false
	}
	return true
}

func (s *Service) toCache(ctx context.Context, key string, v any) {
	if s.cache == nil {
		return
	}
	b, err := json.Marshal(v)
	if err != nil {
		slog.Default().WarnContext(ctx, "can't encode report", slog.String("err", err.Error()))
		return
	}
	if err := s.cache.Set(ctx, key, b); err != nil {
		slog.Default().WarnContext(ctx, "can't write report cache",
			slog.String("err", err.Error()),
			slog.String("key", key),
		)
	}
}
