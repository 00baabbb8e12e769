package persistence

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/stockbook/backend/internal/domain/billing"
	"github.com/stockbook/backend/internal/domain/catalog"
	"github.com/stockbook/backend/internal/domain/ledger"
	"github.com/stockbook/backend/internal/domain/partner"
	"github.com/stockbook/backend/internal/domain/report"
	"github.com/stockbook/backend/internal/infrastructure/persistence/models"
)

// GormDashboardRepository implements report.DashboardRepository with
// aggregate queries over the catalog, partner, billing and ledger tables.
type GormDashboardRepository struct {
	db *gorm.DB
}

// NewGormDashboardRepository creates a new GormDashboardRepository
func NewGormDashboardRepository(db *gorm.DB) *GormDashboardRepository {
	return &GormDashboardRepository{db: db}
}

// GetStats computes the dashboard aggregates. An invoice counts as today's
// when its invoice date falls on the same calendar day as the given time,
// in that time's location.
func (r *GormDashboardRepository) GetStats(ctx context.Context, today time.Time) (*report.DashboardStats, error) {
	stats := &report.DashboardStats{}
	db := r.db.WithContext(ctx)

	if err := db.Model(&catalog.Product{}).Count(&stats.TotalProducts).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&catalog.Product{}).
		Where("status = ?", catalog.StockStatusLowStock).
		Count(&stats.LowStockProducts).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&catalog.Product{}).
		Where("status = ?", catalog.StockStatusOutOfStock).
		Count(&stats.OutOfStockProducts).Error; err != nil {
		return nil, err
	}

	if err := db.Model(&partner.Customer{}).Count(&stats.TotalCustomers).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&partner.Supplier{}).Count(&stats.TotalSuppliers).Error; err != nil {
		return nil, err
	}

	dayStart := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	salesCount, salesTotal, todaySales, err := r.invoiceAggregates(ctx, billing.InvoiceKindSales, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}
	stats.TotalSalesCount = salesCount
	stats.TotalSales = salesTotal
	stats.TodaySales = todaySales

	purchaseCount, purchaseTotal, todayPurchases, err := r.invoiceAggregates(ctx, billing.InvoiceKindPurchase, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}
	stats.TotalPurchaseCount = purchaseCount
	stats.TotalPurchases = purchaseTotal
	stats.TodayPurchases = todayPurchases

	receivables, err := r.ledgerBalanceSum(ctx, ledger.PartyTypeCustomer)
	if err != nil {
		return nil, err
	}
	stats.Receivables = receivables

	payables, err := r.ledgerBalanceSum(ctx, ledger.PartyTypeSupplier)
	if err != nil {
		return nil, err
	}
	stats.Payables = payables

	return stats, nil
}

// invoiceAggregates returns the invoice count, the all-time total and the
// total for invoices dated within [dayStart, dayEnd) for one invoice kind.
func (r *GormDashboardRepository) invoiceAggregates(ctx context.Context, kind billing.InvoiceKind, dayStart, dayEnd time.Time) (int64, decimal.Decimal, decimal.Decimal, error) {
	db := r.db.WithContext(ctx)

	var count int64
	if err := db.Model(&models.InvoiceModel{}).
		Where("kind = ?", kind).
		Count(&count).Error; err != nil {
		return 0, decimal.Zero, decimal.Zero, err
	}

	var total decimal.NullDecimal
	if err := db.Model(&models.InvoiceModel{}).
		Where("kind = ?", kind).
		Select("SUM(total)").
		Scan(&total).Error; err != nil {
		return 0, decimal.Zero, decimal.Zero, err
	}

	var todayTotal decimal.NullDecimal
	if err := db.Model(&models.InvoiceModel{}).
		Where("kind = ? AND date >= ? AND date < ?", kind, dayStart, dayEnd).
		Select("SUM(total)").
		Scan(&todayTotal).Error; err != nil {
		return 0, decimal.Zero, decimal.Zero, err
	}

	return count, nullDecimalValue(total), nullDecimalValue(todayTotal), nil
}

// ledgerBalanceSum returns the summed balance across all ledgers of a party type
func (r *GormDashboardRepository) ledgerBalanceSum(ctx context.Context, partyType ledger.PartyType) (decimal.Decimal, error) {
	var sum decimal.NullDecimal
	if err := r.db.WithContext(ctx).
		Model(&ledger.Ledger{}).
		Where("party_type = ?", partyType).
		Select("SUM(balance)").
		Scan(&sum).Error; err != nil {
		return decimal.Zero, err
	}
	return nullDecimalValue(sum), nil
}

func nullDecimalValue(d decimal.NullDecimal) decimal.Decimal {
	if !d.Valid {
		return decimal.Zero
	}
	return d.Decimal
}

// Ensure GormDashboardRepository implements report.DashboardRepository
var _ report.DashboardRepository = (*GormDashboardRepository)(nil)
