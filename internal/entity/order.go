package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order represents the orders table
type Order struct {
	ID            int               `db:"id"`
	UserID        int               `db:"user_id"`
	EmployeeID    int               `db:"employee_id"`
	LocationID    int               `db:"location_id"`
	TotalPrice    decimal.Decimal   `db:"total_price"`
	PaymentMethod PaymentMethodName `db:"payment_method"`
	PaymentStatus PaymentStatusName `db:"payment_status"`
	OrderStatus   OrderStatusName   `db:"order_status"`
	CreatedAt     time.Time         `db:"created_at"`
	UpdatedAt     time.Time         `db:"updated_at"`
}

// IsRevenueBearing reports whether the order counts toward revenue aggregations.
func (o *Order) IsRevenueBearing() bool {
	return o.PaymentStatus == Paid && o.OrderStatus == Delivered
}

// OrderLineItem represents the order_product table
type OrderLineItem struct {
	ID        int             `db:"id"`
	OrderID   int             `db:"order_id"`
	ProductID int             `db:"product_id"`
	Quantity  int             `db:"quantity"`
	PriceOut  decimal.Decimal `db:"priceout"`
}

// Revenue returns quantity * priceout.
func (li *OrderLineItem) Revenue() decimal.Decimal {
	return li.PriceOut.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// ImportLineItem represents the import_product table
type ImportLineItem struct {
	ID        int             `db:"id"`
	ProductID int             `db:"product_id"`
	PriceIn   decimal.Decimal `db:"price_in"`
	Quantity  int             `db:"quantity"`
	CreatedAt time.Time       `db:"created_at"`
}

// Cost returns price_in * quantity.
func (li *ImportLineItem) Cost() decimal.Decimal {
	return li.PriceIn.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

type Product struct {
	ID         int    `db:"id"`
	Name       string `db:"name"`
	CategoryID int    `db:"category_id"`
	SupplierID int    `db:"supplier_id"`
}

type Category struct {
	ID     int    `db:"id"`
	Name   string `db:"name"`
	Status bool   `db:"status"`
}

type Supplier struct {
	ID   int    `db:"id"`
	Name string `db:"name"`
}

type User struct {
	ID       int    `db:"id"`
	Username string `db:"username"`
	Email    string `db:"email"`
}

type PaymentMethodName string

const (
	CashOnDelivery PaymentMethodName = "CashOnDelivery"
	BankTransfer   PaymentMethodName = "BankTransfer"
)

// PaymentStatusName is the custom type to enforce enum-like behavior
type PaymentStatusName string

const (
	Unpaid PaymentStatusName = "Unpaid"
	Paid   PaymentStatusName = "Paid"
	Debt   PaymentStatusName = "Debt"
)

// OrderStatusName is the custom type to enforce enum-like behavior
type OrderStatusName string

func (osn *OrderStatusName) String() string {
	return string(*osn)
}

const (
	Checking         OrderStatusName = "Checking"
	AwaitingDelivery OrderStatusName = "AwaitingDelivery"
	InTransit        OrderStatusName = "InTransit"
	Delivered        OrderStatusName = "Delivered"
	Cancelled        OrderStatusName = "Cancelled"
)

// ValidOrderStatusNames is a set of valid order status names
var ValidOrderStatusNames = map[OrderStatusName]bool{
	Checking:         true,
	AwaitingDelivery: true,
	InTransit:        true,
	Delivered:        true,
	Cancelled:        true,
}
