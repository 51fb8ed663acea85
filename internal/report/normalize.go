package report

import (
	"database/sql"
	"sort"
	"strings"

	"github.com/jekabolt/grbpwr-analytics/internal/entity"
	"github.com/shopspring/decimal"
)

// ParseAmount converts a raw aggregate into a decimal. NULL, empty and
// non-numeric values all become zero.
func ParseAmount(s sql.NullString) decimal.Decimal {
	if !s.Valid {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(strings.TrimSpace(s.String))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// parseCount is ParseAmount truncated to an int, for COUNT columns.
func parseCount(s sql.NullString) int {
	return int(ParseAmount(s).IntPart())
}

// FillFinancialSummary returns exactly one bucket per label, in label order.
// Rows whose label is not expected are dropped; missing labels are zero-filled.
func FillFinancialSummary(labels []string, rows []entity.FinancialSummaryRow) []entity.FinancialSummary {
	byLabel := make(map[string]entity.FinancialSummaryRow, len(rows))
	for _, r := range rows {
		byLabel[r.TimePeriod] = r
	}

	out := make([]entity.FinancialSummary, 0, len(labels))
	for _, l := range labels {
		fs := entity.FinancialSummary{
			TimePeriod:   l,
			TotalRevenue: decimal.Zero,
			TotalCost:    decimal.Zero,
		}
		if r, ok := byLabel[l]; ok {
			fs.TotalRevenue = ParseAmount(r.TotalRevenue)
			fs.TotalCost = ParseAmount(r.TotalCost)
		}
		fs.Profit = fs.TotalRevenue.Sub(fs.TotalCost)
		out = append(out, fs)
	}
	return out
}

// NormalizeRanking coerces rows, orders them by revenue descending keeping
// the store order for ties, and truncates to limit when limit > 0.
func NormalizeRanking(rows []entity.RevenueRow, limit int) []entity.RevenueRanking {
	out := make([]entity.RevenueRanking, 0, len(rows))
	for _, r := range rows {
		out = append(out, entity.RevenueRanking{
			ID:           r.ID,
			Name:         r.Name.String,
			TotalRevenue: ParseAmount(r.TotalRevenue),
			Quantity:     ParseAmount(r.Quantity),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TotalRevenue.GreaterThan(out[j].TotalRevenue)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// NormalizeComparison coerces a comparison row. An empty row yields zeros.
func NormalizeComparison(current, previous entity.TimeRange, row entity.ComparisonRow) entity.ComparisonStats {
	cs := entity.ComparisonStats{
		Current:          current,
		Previous:         previous,
		CurrentRevenue:   ParseAmount(row.CurrentRevenue),
		LastRevenue:      ParseAmount(row.LastRevenue),
		CurrentQuantity:  ParseAmount(row.CurrentQuantity),
		LastQuantity:     ParseAmount(row.LastQuantity),
		CurrentOrders:    parseCount(row.CurrentOrders),
		LastOrders:       parseCount(row.LastOrders),
		CurrentCustomers: parseCount(row.CurrentCustomers),
		LastCustomers:    parseCount(row.LastCustomers),
	}
	cs.RevenueChangePct = changePct(cs.CurrentRevenue, cs.LastRevenue)
	cs.OrdersChangePct = changePctInt(cs.CurrentOrders, cs.LastOrders)
	return cs
}

// changePct is nil when previous is zero.
func changePct(current, previous decimal.Decimal) *float64 {
	if previous.IsZero() {
		return nil
	}
	diff := current.Sub(previous).Div(previous).Mul(decimal.NewFromInt(100))
	f, _ := diff.Float64()
	return &f
}

func changePctInt(current, previous int) *float64 {
	if previous == 0 {
		return nil
	}
	f := (float64(current-previous) / float64(previous)) * 100
	return &f
}
