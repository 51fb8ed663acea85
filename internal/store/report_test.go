package store

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/Knetic/go-namedParameterQuery"
	"github.com/jekabolt/grbpwr-analytics/internal/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertBound checks that every named parameter of query gets a value from params.
func assertBound(t *testing.T, query string, params map[string]any) {
	t.Helper()
	q := namedParameterQuery.NewNamedParameterQuery(query)
	q.SetValuesFromMap(params)
	args := q.GetParsedParameters()
	assert.Equal(t, strings.Count(q.GetParsedQuery(), "?"), len(args))
	for i, a := range args {
		assert.NotNil(t, a, "parameter %d is unbound", i)
	}
}

func TestRankingQueriesBound(t *testing.T) {
	params := revenueParams()
	params["from"] = time.Now()
	params["to"] = time.Now()
	params["limit"] = 5

	assertBound(t, topCustomersQuery, params)
	assertBound(t, topProductsQuery, params)
	assert.Contains(t, topCustomersQuery, "LIMIT :limit")
	assert.Contains(t, topProductsQuery, "ORDER BY total_revenue DESC")
}

func TestDimensionRevenueQuery(t *testing.T) {
	rng := &entity.TimeRange{From: time.Now().AddDate(0, -1, 0), To: time.Now()}

	category := dimensionRevenueQuery("categories", "category_id", "d.status = 1", nil)
	assert.Contains(t, category, "d.status = 1")
	assert.NotContains(t, category, ":from")
	assertBound(t, category, rangeParams(nil))

	supplier := dimensionRevenueQuery("suppliers", "supplier_id", "", rng)
	assert.NotContains(t, supplier, "status = 1")
	assert.Contains(t, supplier, "BETWEEN :from AND :to")
	assertBound(t, supplier, rangeParams(rng))
}

func TestComparisonQueryBound(t *testing.T) {
	params := revenueParams()
	now := time.Now()
	params["curFrom"] = now.AddDate(0, 0, -7)
	params["curTo"] = now
	params["lastFrom"] = now.AddDate(0, 0, -14)
	params["lastTo"] = now.AddDate(0, 0, -7)
	assertBound(t, comparisonQuery, params)

	parsed := namedParameterQuery.NewNamedParameterQuery(comparisonQuery).GetParsedQuery()
	assert.NotContains(t, parsed, "?_")
	assert.Equal(t, 22, strings.Count(parsed, "?"))
}

// Parameter names are letters and digits only; anything after is literal SQL.
func TestReportQueriesUseBareParamNames(t *testing.T) {
	queries := []string{topCustomersQuery, topProductsQuery, comparisonQuery,
		dimensionRevenueQuery("categories", "category_id", "d.status = 1", &entity.TimeRange{})}
	for unit := range entity.ValidTimeUnits {
		q, err := financialSummaryQuery(unit)
		require.NoError(t, err)
		queries = append(queries, q)
	}
	for _, q := range queries {
		parsed := namedParameterQuery.NewNamedParameterQuery(q).GetParsedQuery()
		assert.NotRegexp(t, `\?[_A-Za-z0-9]`, parsed)
	}
}

func TestFinancialSummaryQuery(t *testing.T) {
	for unit := range entity.ValidTimeUnits {
		q, err := financialSummaryQuery(unit)
		require.NoError(t, err)
		// Summary intentionally counts every order regardless of status.
		assert.NotContains(t, q, "payment_status")
		assert.NotContains(t, q, "order_status")
		assertBound(t, q, map[string]any{"from": time.Now(), "to": time.Now()})
	}

	_, err := financialSummaryQuery(entity.TimeUnit("day"))
	assert.Error(t, err)
}

func TestBulkInsertQuery(t *testing.T) {
	q, values := bulkInsertQuery("suppliers", []map[string]any{
		{"name": "a", "id": 1},
		{"id": 2, "name": "b"},
	})
	assert.Equal(t, "INSERT INTO suppliers (id, name) VALUES (?, ?), (?, ?)", q)
	assert.Equal(t, []any{1, "a", 2, "b"}, values)

	q, values = bulkInsertQuery("suppliers", nil)
	assert.Empty(t, q)
	assert.Nil(t, values)
}

type fixtureOrder struct {
	id      int
	userID  int
	payment entity.PaymentStatusName
	status  entity.OrderStatusName
	created time.Time
	lines   [][3]any // product id, quantity, priceout
}

func insertFixtures(t *testing.T, ms *MYSQLStore, orders []fixtureOrder) {
	t.Helper()
	ctx := context.Background()

	var users []map[string]any
	for i := 1; i <= 7; i++ {
		users = append(users, map[string]any{"id": i, "username": "customer" + string(rune('0'+i)), "email": "c@example.com"})
	}
	require.NoError(t, BulkInsert(ctx, ms.DB(), "users", users))
	require.NoError(t, BulkInsert(ctx, ms.DB(), "categories", []map[string]any{
		{"id": 1, "name": "Active", "status": true},
		{"id": 2, "name": "Inactive", "status": false},
	}))
	require.NoError(t, BulkInsert(ctx, ms.DB(), "suppliers", []map[string]any{
		{"id": 1, "name": "S1"},
		{"id": 2, "name": "S2"},
	}))
	require.NoError(t, BulkInsert(ctx, ms.DB(), "products", []map[string]any{
		{"id": 1, "name": "P1", "category_id": 1, "supplier_id": 1},
		{"id": 2, "name": "P2", "category_id": 2, "supplier_id": 2},
	}))
	require.NoError(t, BulkInsert(ctx, ms.DB(), "import_product", []map[string]any{
		{"product_id": 1, "price_in": decimal.NewFromInt(10), "quantity": 2, "created_at": time.Now()},
	}))

	var rows, lines []map[string]any
	for _, o := range orders {
		rows = append(rows, map[string]any{
			"id":             o.id,
			"user_id":        o.userID,
			"payment_method": entity.BankTransfer,
			"payment_status": o.payment,
			"order_status":   o.status,
			"created_at":     o.created,
			"updated_at":     o.created,
		})
		for _, l := range o.lines {
			lines = append(lines, map[string]any{"order_id": o.id, "product_id": l[0], "quantity": l[1], "priceout": l[2]})
		}
	}
	require.NoError(t, BulkInsert(ctx, ms.DB(), "orders", rows))
	require.NoError(t, BulkInsert(ctx, ms.DB(), "order_product", lines))
}

func TestReportsIntegration(t *testing.T) {
	ms := newTestDB(t)
	ctx := context.Background()
	base := time.Date(2023, time.June, 10, 12, 0, 0, 0, time.UTC)

	var orders []fixtureOrder
	// Seven customers with revenues 700, 600 ... 100.
	for u := 1; u <= 7; u++ {
		orders = append(orders, fixtureOrder{
			id: u, userID: u, payment: entity.Paid, status: entity.Delivered, created: base,
			lines: [][3]any{{1, 1, decimal.NewFromInt(int64(800 - u*100))}},
		})
	}
	// Inactive category and unpaid orders do not count toward rankings.
	orders = append(orders,
		fixtureOrder{id: 8, userID: 7, payment: entity.Paid, status: entity.Delivered, created: base,
			lines: [][3]any{{2, 1, decimal.NewFromInt(5000)}}},
		fixtureOrder{id: 9, userID: 7, payment: entity.Unpaid, status: entity.Delivered, created: base,
			lines: [][3]any{{1, 1, decimal.NewFromInt(9000)}}},
		fixtureOrder{id: 10, userID: 1, payment: entity.Paid, status: entity.Delivered, created: base.AddDate(0, -1, 0),
			lines: [][3]any{{1, 2, decimal.NewFromInt(50)}}},
	)
	insertFixtures(t, ms, orders)

	rs := ms.Reports()
	from := time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2023, time.June, 30, 23, 59, 59, 0, time.UTC)

	t.Run("top customers", func(t *testing.T) {
		rows, err := rs.TopCustomersByRevenue(ctx, from, to, 5)
		require.NoError(t, err)
		require.Len(t, rows, 5)
		// Customer 7 holds the inactive category order worth 5000.
		assert.Equal(t, 7, rows[0].ID)
		for i := 1; i < len(rows); i++ {
			prev, _ := decimal.NewFromString(rows[i-1].TotalRevenue.String)
			cur, _ := decimal.NewFromString(rows[i].TotalRevenue.String)
			assert.True(t, prev.GreaterThan(cur))
		}
	})

	t.Run("revenue by category excludes inactive", func(t *testing.T) {
		rows, err := rs.RevenueByCategory(ctx, nil)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "Active", rows[0].Name.String)
		total, err := decimal.NewFromString(rows[0].TotalRevenue.String)
		require.NoError(t, err)
		assert.True(t, total.Equal(decimal.NewFromInt(2900)), total.String())
	})

	t.Run("revenue by supplier", func(t *testing.T) {
		rows, err := rs.RevenueBySupplier(ctx, &entity.TimeRange{From: from, To: to})
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "S2", rows[0].Name.String)
	})

	t.Run("comparison", func(t *testing.T) {
		row, err := rs.ComparisonStats(ctx,
			entity.TimeRange{From: from, To: to},
			entity.TimeRange{From: from.AddDate(0, -1, 0), To: from.Add(-time.Second)},
		)
		require.NoError(t, err)
		assert.Equal(t, "8", row.CurrentOrders.String)
		assert.Equal(t, "7", row.CurrentCustomers.String)
		assert.Equal(t, "1", row.LastOrders.String)
		assert.Equal(t, "2", row.LastQuantity.String)
	})

	t.Run("financial summary counts every status", func(t *testing.T) {
		rows, err := rs.FinancialSummary(ctx, entity.TimeUnitMonth, entity.TimeRange{
			From: time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC),
			To:   time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		})
		require.NoError(t, err)
		require.Len(t, rows, 2)
		byLabel := map[string]entity.FinancialSummaryRow{}
		for _, r := range rows {
			byLabel[r.TimePeriod] = r
		}
		june, err := decimal.NewFromString(byLabel["2023-06"].TotalRevenue.String)
		require.NoError(t, err)
		// 2800 from ranked orders, 5000 inactive category, 9000 unpaid.
		assert.True(t, june.Equal(decimal.NewFromInt(16800)), june.String())
		assert.Contains(t, byLabel, "2023-05")
	})
}
