package store

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jekabolt/grbpwr-analytics/internal/dependency"
	"github.com/jekabolt/grbpwr-analytics/internal/entity"
	"github.com/shopspring/decimal"
)

type seedStore struct {
	*MYSQLStore
}

// Seeder returns an object implementing Seeder interface
func (ms *MYSQLStore) Seeder() dependency.Seeder {
	return &seedStore{
		MYSQLStore: ms,
	}
}

// demoOrderCount is the number of generated orders, spread backwards from now
// so that every report unit has data in its current window.
const demoOrderCount = 240

type demoProduct struct {
	name       string
	categoryID int
	supplierID int
	priceIn    string
	priceOut   string
}

var (
	demoCategories = []entity.Category{
		{ID: 1, Name: "Outerwear", Status: true},
		{ID: 2, Name: "Footwear", Status: true},
		{ID: 3, Name: "Accessories", Status: true},
		{ID: 4, Name: "Archive", Status: false},
	}
	demoSuppliers = []entity.Supplier{
		{ID: 1, Name: "North Mill"},
		{ID: 2, Name: "Atelier Sud"},
		{ID: 3, Name: "Harbor Leather"},
	}
	demoProducts = []demoProduct{
		{"Field Jacket", 1, 1, "80.00", "189.00"},
		{"Wool Coat", 1, 2, "140.00", "329.50"},
		{"Derby Shoe", 2, 3, "60.00", "159.00"},
		{"Runner", 2, 1, "35.00", "99.90"},
		{"Belt", 3, 3, "12.00", "45.00"},
		{"Scarf", 3, 2, "9.50", "29.00"},
		{"Sample Parka", 4, 1, "70.00", "120.00"},
	}
	demoCustomers = []string{"alice", "bob", "carol", "dave", "erin", "frank", "grace"}
)

// SeedDemo fills an empty store with a deterministic data set derived from now.
// It is a no-op when orders already exist.
func (ss *seedStore) SeedDemo(ctx context.Context, now time.Time) error {
	n, err := QueryCountNamed(ctx, ss.DB(), `SELECT COUNT(*) FROM orders`, nil)
	if err != nil {
		return fmt.Errorf("count orders: %w", err)
	}
	if n > 0 {
		slog.Default().InfoContext(ctx, "store already has orders, skipping seed",
			slog.Int("orders", int(n)),
		)
		return nil
	}

	err = ss.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		for _, t := range demoTables(now) {
			if err := BulkInsert(ctx, rep.DB(), t.name, t.rows); err != nil {
				return fmt.Errorf("seed %s: %w", t.name, err)
			}
		}
		return nil
	})
	if ss.IsErrUniqueViolation(err) {
		slog.Default().InfoContext(ctx, "demo data seeded concurrently, skipping")
		return nil
	}
	if err != nil {
		return fmt.Errorf("can't seed demo data: %w", err)
	}

	slog.Default().InfoContext(ctx, "seeded demo data",
		slog.Int("orders", demoOrderCount),
	)
	return nil
}

type demoTable struct {
	name string
	rows []map[string]any
}

// demoTables builds the rows in foreign key order.
func demoTables(now time.Time) []demoTable {
	var users, categories, suppliers, products, imports, orders, lines []map[string]any

	for i, name := range demoCustomers {
		users = append(users, map[string]any{
			"id":       i + 1,
			"username": name,
			"email":    name + "@example.com",
		})
	}
	for _, c := range demoCategories {
		categories = append(categories, map[string]any{"id": c.ID, "name": c.Name, "status": c.Status})
	}
	for _, s := range demoSuppliers {
		suppliers = append(suppliers, map[string]any{"id": s.ID, "name": s.Name})
	}
	for i, p := range demoProducts {
		id := i + 1
		products = append(products, map[string]any{
			"id":          id,
			"name":        p.name,
			"category_id": p.categoryID,
			"supplier_id": p.supplierID,
		})
		imports = append(imports, map[string]any{
			"product_id": id,
			"price_in":   decimal.RequireFromString(p.priceIn),
			"quantity":   20 + 5*i,
			"created_at": now.AddDate(-4, 0, 0),
		})
	}

	paymentStatuses := []entity.PaymentStatusName{entity.Paid, entity.Paid, entity.Paid, entity.Unpaid, entity.Debt}
	orderStatuses := []entity.OrderStatusName{entity.Delivered, entity.Delivered, entity.InTransit, entity.Delivered, entity.Cancelled, entity.Delivered, entity.Checking}
	methods := []entity.PaymentMethodName{entity.CashOnDelivery, entity.BankTransfer}

	lineID := 1
	for i := 0; i < demoOrderCount; i++ {
		orderID := i + 1
		// Dense in the current month, sparse over the previous years.
		var created time.Time
		if i < 60 {
			created = now.Add(-time.Duration(i) * 11 * time.Hour)
		} else {
			created = now.AddDate(0, 0, -(i-59)*6)
		}

		total := decimal.Zero
		for j := 0; j <= i%2; j++ {
			p := (i*3 + j*5) % len(demoProducts)
			qty := 1 + (i+j)%3
			price := decimal.RequireFromString(demoProducts[p].priceOut)
			total = total.Add(price.Mul(decimal.NewFromInt(int64(qty))))
			lines = append(lines, map[string]any{
				"id":         lineID,
				"order_id":   orderID,
				"product_id": p + 1,
				"quantity":   qty,
				"priceout":   price,
			})
			lineID++
		}

		orders = append(orders, map[string]any{
			"id":             orderID,
			"user_id":        i*5%len(demoCustomers) + 1,
			"employee_id":    1 + i%3,
			"location_id":    1 + i%2,
			"total_price":    total,
			"payment_method": methods[i%len(methods)],
			"payment_status": paymentStatuses[i%len(paymentStatuses)],
			"order_status":   orderStatuses[i%len(orderStatuses)],
			"created_at":     created,
			"updated_at":     created,
		})
	}

	return []demoTable{
		{"users", users},
		{"categories", categories},
		{"suppliers", suppliers},
		{"products", products},
		{"import_product", imports},
		{"orders", orders},
		{"order_product", lines},
	}
}
