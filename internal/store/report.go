package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jekabolt/grbpwr-analytics/internal/dependency"
	"github.com/jekabolt/grbpwr-analytics/internal/entity"
	"github.com/jekabolt/grbpwr-analytics/internal/period"
)

type reportsStore struct {
	*MYSQLStore
}

// Reports returns an object implementing Reports interface
func (ms *MYSQLStore) Reports() dependency.Reports {
	return &reportsStore{
		MYSQLStore: ms,
	}
}

// revenueFilter restricts rows to orders that are both paid and delivered.
const revenueFilter = `o.payment_status = :paid AND o.order_status = :delivered`

func revenueParams() map[string]any {
	return map[string]any{
		"paid":      entity.Paid,
		"delivered": entity.Delivered,
	}
}

const topCustomersQuery = `
	SELECT u.id AS id, u.username AS name,
		SUM(op.quantity * op.priceout) AS total_revenue,
		SUM(op.quantity) AS quantity
	FROM orders o
	JOIN order_product op ON op.order_id = o.id
	JOIN users u ON u.id = o.user_id
	WHERE ` + revenueFilter + `
	AND o.created_at BETWEEN :from AND :to
	GROUP BY u.id, u.username
	ORDER BY total_revenue DESC, u.id
	LIMIT :limit`

const topProductsQuery = `
	SELECT p.id AS id, p.name AS name,
		SUM(op.quantity * op.priceout) AS total_revenue,
		SUM(op.quantity) AS quantity
	FROM orders o
	JOIN order_product op ON op.order_id = o.id
	JOIN products p ON p.id = op.product_id
	WHERE ` + revenueFilter + `
	AND o.created_at BETWEEN :from AND :to
	GROUP BY p.id, p.name
	ORDER BY total_revenue DESC, p.id
	LIMIT :limit`

// TopCustomersByRevenue ranks customers by revenue of paid and delivered orders.
func (ms *MYSQLStore) TopCustomersByRevenue(ctx context.Context, from, to time.Time, limit int) ([]entity.RevenueRow, error) {
	params := revenueParams()
	params["from"] = from
	params["to"] = to
	params["limit"] = limit

	rows, err := QueryListNamed[entity.RevenueRow](ctx, ms.DB(), topCustomersQuery, params)
	if err != nil {
		return nil, fmt.Errorf("get top customers by revenue: %w", err)
	}
	return rows, nil
}

// TopProductsByRevenue ranks products by revenue of paid and delivered orders.
func (ms *MYSQLStore) TopProductsByRevenue(ctx context.Context, from, to time.Time, limit int) ([]entity.RevenueRow, error) {
	params := revenueParams()
	params["from"] = from
	params["to"] = to
	params["limit"] = limit

	rows, err := QueryListNamed[entity.RevenueRow](ctx, ms.DB(), topProductsQuery, params)
	if err != nil {
		return nil, fmt.Errorf("get top products by revenue: %w", err)
	}
	return rows, nil
}

// dimensionRevenueQuery ranks a product dimension table joined on
// products.<fk>. extra is appended to the WHERE clause verbatim.
func dimensionRevenueQuery(table, fk, extra string, rng *entity.TimeRange) string {
	q := `
	SELECT d.id AS id, d.name AS name,
		SUM(op.quantity * op.priceout) AS total_revenue,
		SUM(op.quantity) AS quantity
	FROM orders o
	JOIN order_product op ON op.order_id = o.id
	JOIN products p ON p.id = op.product_id
	JOIN ` + table + ` d ON d.id = p.` + fk + `
	WHERE ` + revenueFilter
	if extra != "" {
		q += `
	AND ` + extra
	}
	if rng != nil {
		q += `
	AND o.created_at BETWEEN :from AND :to`
	}
	return q + `
	GROUP BY d.id, d.name
	ORDER BY total_revenue DESC, d.id`
}

func rangeParams(rng *entity.TimeRange) map[string]any {
	params := revenueParams()
	if rng != nil {
		params["from"] = rng.From
		params["to"] = rng.To
	}
	return params
}

// RevenueByCategory ranks active categories by revenue.
func (ms *MYSQLStore) RevenueByCategory(ctx context.Context, rng *entity.TimeRange) ([]entity.RevenueRow, error) {
	query := dimensionRevenueQuery("categories", "category_id", "d.status = 1", rng)
	rows, err := QueryListNamed[entity.RevenueRow](ctx, ms.DB(), query, rangeParams(rng))
	if err != nil {
		return nil, fmt.Errorf("get revenue by category: %w", err)
	}
	return rows, nil
}

// RevenueBySupplier ranks suppliers by revenue.
func (ms *MYSQLStore) RevenueBySupplier(ctx context.Context, rng *entity.TimeRange) ([]entity.RevenueRow, error) {
	query := dimensionRevenueQuery("suppliers", "supplier_id", "", rng)
	rows, err := QueryListNamed[entity.RevenueRow](ctx, ms.DB(), query, rangeParams(rng))
	if err != nil {
		return nil, fmt.Errorf("get revenue by supplier: %w", err)
	}
	return rows, nil
}

const (
	inCurrent  = `o.created_at BETWEEN :curFrom AND :curTo`
	inPrevious = `o.created_at BETWEEN :lastFrom AND :lastTo`
)

const comparisonQuery = `
	SELECT
		SUM(CASE WHEN ` + inCurrent + ` THEN op.quantity * op.priceout END) AS current_revenue,
		SUM(CASE WHEN ` + inPrevious + ` THEN op.quantity * op.priceout END) AS last_revenue,
		SUM(CASE WHEN ` + inCurrent + ` THEN op.quantity END) AS current_quantity,
		SUM(CASE WHEN ` + inPrevious + ` THEN op.quantity END) AS last_quantity,
		COUNT(DISTINCT CASE WHEN ` + inCurrent + ` THEN o.id END) AS current_orders,
		COUNT(DISTINCT CASE WHEN ` + inPrevious + ` THEN o.id END) AS last_orders,
		COUNT(DISTINCT CASE WHEN ` + inCurrent + ` THEN o.user_id END) AS current_customers,
		COUNT(DISTINCT CASE WHEN ` + inPrevious + ` THEN o.user_id END) AS last_customers
	FROM orders o
	JOIN order_product op ON op.order_id = o.id
	WHERE ` + revenueFilter + `
	AND (` + inCurrent + ` OR ` + inPrevious + `)`

// ComparisonStats aggregates both windows in a single scan.
func (ms *MYSQLStore) ComparisonStats(ctx context.Context, current, previous entity.TimeRange) (entity.ComparisonRow, error) {
	params := revenueParams()
	params["curFrom"] = current.From
	params["curTo"] = current.To
	params["lastFrom"] = previous.From
	params["lastTo"] = previous.To

	row, err := QueryNamedOne[entity.ComparisonRow](ctx, ms.DB(), comparisonQuery, params)
	if err != nil {
		return entity.ComparisonRow{}, fmt.Errorf("get comparison stats: %w", err)
	}
	return row, nil
}

// financialSummaryQuery groups line revenue and product import cost by the
// period label of the order. Orders are not filtered by status here.
func financialSummaryQuery(unit entity.TimeUnit) (string, error) {
	label, err := period.LabelExpr(unit, "o.created_at")
	if err != nil {
		return "", err
	}
	return `
	SELECT ` + label + ` AS time_period,
		SUM(op.quantity * op.priceout) AS total_revenue,
		SUM(ic.total_cost) AS total_cost
	FROM orders o
	JOIN order_product op ON op.order_id = o.id
	LEFT JOIN (
		SELECT product_id, SUM(price_in * quantity) AS total_cost
		FROM import_product
		GROUP BY product_id
	) ic ON ic.product_id = op.product_id
	WHERE o.created_at >= :from AND o.created_at < :to
	GROUP BY time_period
	ORDER BY time_period`, nil
}

// FinancialSummary returns revenue and cost per period label within rng.
func (ms *MYSQLStore) FinancialSummary(ctx context.Context, unit entity.TimeUnit, rng entity.TimeRange) ([]entity.FinancialSummaryRow, error) {
	query, err := financialSummaryQuery(unit)
	if err != nil {
		return nil, err
	}

	rows, err := QueryListNamed[entity.FinancialSummaryRow](ctx, ms.DB(), query, map[string]any{
		"from": rng.From,
		"to":   rng.To,
	})
	if err != nil {
		return nil, fmt.Errorf("get financial summary: %w", err)
	}
	return rows, nil
}
