package httpapi

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jekabolt/grbpwr-analytics/internal/entity"
	"github.com/jekabolt/grbpwr-analytics/internal/report"
	"github.com/jekabolt/grbpwr-analytics/log"
)

// ReportService is the reporting facade consumed by the handlers.
type ReportService interface {
	Run(ctx context.Context, req report.Request) (*report.Result, error)
	Dashboard(ctx context.Context, unit entity.TimeUnit) (*entity.Dashboard, error)
	Now() time.Time
}

// Pinger reports store health.
type Pinger interface {
	Ping(ctx context.Context) error
}

type handler struct {
	svc    ReportService
	health Pinger
}

// NewRouter wires the report endpoints with logging, recovery and CORS.
// reportMW is applied to the report routes only.
func NewRouter(svc ReportService, health Pinger, allowedOrigins []string, reportMW ...func(http.Handler) http.Handler) http.Handler {
	h := &handler{svc: svc, health: health}
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowOriginFunc: func(_ *http.Request, origin string) bool {
			return isOriginAllowed(origin, allowedOrigins)
		},
		AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "Authorization"},
		MaxAge:         300,
	}))
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(log.RequestLogger(slog.Default()))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/healthz", h.healthz)

	r.Route("/api/reports", func(r chi.Router) {
		r.Use(reportMW...)
		r.Get("/financial-summary", h.runReport(report.KindFinancialSummary))
		r.Get("/financial-summary.xlsx", h.financialSummaryXLSX)
		r.Get("/top-customers", h.runReport(report.KindTopCustomers))
		r.Get("/top-products", h.runReport(report.KindTopProducts))
		r.Get("/revenue-by-category", h.runReport(report.KindRevenueByCategory))
		r.Get("/revenue-by-supplier", h.runReport(report.KindRevenueBySupplier))
		r.Get("/comparison", h.runReport(report.KindComparison))
		r.Get("/dashboard", h.dashboard)
	})

	return r
}

func isOriginAllowed(origin string, allowedOrigins []string) bool {
	// Always allow localhost origins
	if strings.HasPrefix(origin, "http://localhost:") || strings.HasPrefix(origin, "https://localhost:") {
		return true
	}
	for _, allowedOrigin := range allowedOrigins {
		if allowedOrigin == "*" || origin == allowedOrigin {
			return true
		}
	}
	return false
}
