package entity

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// TimeUnit controls the bucket size of period based reports.
type TimeUnit string

const (
	TimeUnitWeek    TimeUnit = "week"
	TimeUnitMonth   TimeUnit = "month"
	TimeUnitQuarter TimeUnit = "quarter"
	TimeUnitYear    TimeUnit = "year"
)

// ValidTimeUnits is a set of valid time units
var ValidTimeUnits = map[TimeUnit]bool{
	TimeUnitWeek:    true,
	TimeUnitMonth:   true,
	TimeUnitQuarter: true,
	TimeUnitYear:    true,
}

// TimeRange is a half-open [From, To) interval unless stated otherwise.
type TimeRange struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

func (tr TimeRange) IsZero() bool {
	return tr.From.IsZero() && tr.To.IsZero()
}

// FinancialSummaryRow is a raw grouped row as returned by the store.
type FinancialSummaryRow struct {
	TimePeriod   string         `db:"time_period"`
	TotalRevenue sql.NullString `db:"total_revenue"`
	TotalCost    sql.NullString `db:"total_cost"`
}

// FinancialSummary is one gap-filled bucket of the financial summary.
type FinancialSummary struct {
	TimePeriod   string          `json:"time_period"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	TotalCost    decimal.Decimal `json:"total_cost"`
	Profit       decimal.Decimal `json:"profit"`
}

// RevenueRow is a raw ranking row: one dimension key with its revenue.
type RevenueRow struct {
	ID           int            `db:"id"`
	Name         sql.NullString `db:"name"`
	TotalRevenue sql.NullString `db:"total_revenue"`
	Quantity     sql.NullString `db:"quantity"`
}

// RevenueRanking is one normalized entry of a revenue ranking.
type RevenueRanking struct {
	ID           int             `json:"id"`
	Name         string          `json:"name"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	Quantity     decimal.Decimal `json:"quantity"`
}

// ComparisonRow is the single conditional-aggregation row of a two period comparison.
type ComparisonRow struct {
	CurrentRevenue   sql.NullString `db:"current_revenue"`
	LastRevenue      sql.NullString `db:"last_revenue"`
	CurrentQuantity  sql.NullString `db:"current_quantity"`
	LastQuantity     sql.NullString `db:"last_quantity"`
	CurrentOrders    sql.NullString `db:"current_orders"`
	LastOrders       sql.NullString `db:"last_orders"`
	CurrentCustomers sql.NullString `db:"current_customers"`
	LastCustomers    sql.NullString `db:"last_customers"`
}

// ComparisonStats holds current versus previous window statistics.
type ComparisonStats struct {
	Current  TimeRange `json:"current"`
	Previous TimeRange `json:"previous"`

	CurrentRevenue   decimal.Decimal `json:"current_revenue"`
	LastRevenue      decimal.Decimal `json:"last_revenue"`
	CurrentQuantity  decimal.Decimal `json:"current_quantity"`
	LastQuantity     decimal.Decimal `json:"last_quantity"`
	CurrentOrders    int             `json:"current_orders"`
	LastOrders       int             `json:"last_orders"`
	CurrentCustomers int             `json:"current_customers"`
	LastCustomers    int             `json:"last_customers"`

	RevenueChangePct *float64 `json:"revenue_change_pct,omitempty"`
	OrdersChangePct  *float64 `json:"orders_change_pct,omitempty"`
}

// Dashboard bundles every report family for one time unit.
type Dashboard struct {
	Unit              TimeUnit           `json:"unit"`
	GeneratedAt       time.Time          `json:"generated_at"`
	FinancialSummary  []FinancialSummary `json:"financial_summary"`
	Comparison        ComparisonStats    `json:"comparison"`
	TopCustomers      []RevenueRanking   `json:"top_customers"`
	TopProducts       []RevenueRanking   `json:"top_products"`
	RevenueByCategory []RevenueRanking   `json:"revenue_by_category"`
	RevenueBySupplier []RevenueRanking   `json:"revenue_by_supplier"`
}
