package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// DashboardStats is a read model aggregating the state of the business
// for the overview screen. It is computed directly from the write-side
// tables, not maintained incrementally.
type DashboardStats struct {
	TotalProducts      int64           `json:"total_products"`
	LowStockProducts   int64           `json:"low_stock_products"`
	OutOfStockProducts int64           `json:"out_of_stock_products"`
	TotalCustomers     int64           `json:"total_customers"`
	TotalSuppliers     int64           `json:"total_suppliers"`
	TotalSalesCount    int64           `json:"total_sales_count"`
	TotalPurchaseCount int64           `json:"total_purchase_count"`
	TotalSales         decimal.Decimal `json:"total_sales"`
	TodaySales         decimal.Decimal `json:"today_sales"`
	TotalPurchases     decimal.Decimal `json:"total_purchases"`
	TodayPurchases     decimal.Decimal `json:"today_purchases"`
	Receivables        decimal.Decimal `json:"receivables"`
	Payables           decimal.Decimal `json:"payables"`
}

// DashboardRepository computes dashboard statistics. The today parameter
// fixes the day boundary: an invoice counts as today's when its invoice
// date falls on the same calendar day.
type DashboardRepository interface {
	GetStats(ctx context.Context, today time.Time) (*DashboardStats, error)
}
