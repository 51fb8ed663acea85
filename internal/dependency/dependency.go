package dependency

import (
	"context"
	"database/sql"
	"time"

	"github.com/jekabolt/grbpwr-analytics/internal/entity"
	"github.com/jmoiron/sqlx"
)

//go:generate mockery --with-expecter --case underscore --all --output=./mocks
type (
	// Reports is the read-only aggregate side of the order store.
	// Aggregates are returned as raw text; callers normalize them.
	Reports interface {
		// TopCustomersByRevenue ranks customers by paid and delivered revenue
		// with created_at between from and to (inclusive).
		TopCustomersByRevenue(ctx context.Context, from, to time.Time, limit int) ([]entity.RevenueRow, error)
		// TopProductsByRevenue ranks products the same way.
		TopProductsByRevenue(ctx context.Context, from, to time.Time, limit int) ([]entity.RevenueRow, error)
		// RevenueByCategory ranks active categories; a nil range means all history.
		RevenueByCategory(ctx context.Context, rng *entity.TimeRange) ([]entity.RevenueRow, error)
		// RevenueBySupplier ranks suppliers; a nil range means all history.
		RevenueBySupplier(ctx context.Context, rng *entity.TimeRange) ([]entity.RevenueRow, error)
		// ComparisonStats computes current and previous window statistics in one scan.
		ComparisonStats(ctx context.Context, current, previous entity.TimeRange) (entity.ComparisonRow, error)
		// FinancialSummary groups revenue and cost by the period label of unit within rng.
		FinancialSummary(ctx context.Context, unit entity.TimeUnit, rng entity.TimeRange) ([]entity.FinancialSummaryRow, error)
	}

	// Seeder writes demo data into an empty store.
	Seeder interface {
		SeedDemo(ctx context.Context, now time.Time) error
	}

	Repository interface {
		Reports() Reports
		Seeder() Seeder
		Now() time.Time
		Ping(ctx context.Context) error
		Close()
		DB() DB
	}

	// ReportCache stores encoded report results.
	ReportCache interface {
		// Get returns ok=false on a miss.
		Get(ctx context.Context, key string) (val []byte, ok bool, err error)
		Set(ctx context.Context, key string, val []byte) error
	}

	// DB represents database interface.
	DB interface {
		BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error)
		ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)

		// sqlx methods
		GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
		NamedExecContext(ctx context.Context, query string, arg interface{}) (sql.Result, error)
		PreparexContext(ctx context.Context, query string) (*sqlx.Stmt, error)
		QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
		QueryxContext(ctx context.Context, query string, args ...interface{}) (*sqlx.Rows, error)
		SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	}
)
