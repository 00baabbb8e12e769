package persistence

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/stockbook/backend/internal/domain/billing"
	"github.com/stockbook/backend/internal/domain/shared"
	"github.com/stockbook/backend/internal/infrastructure/persistence/models"
)

func setupInvoiceTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.InvoiceModel{}, &models.InvoiceItemModel{})
	require.NoError(t, err)

	return db
}

func saveTestInvoice(t *testing.T, repo *GormInvoiceRepository, kind billing.InvoiceKind, counterpartyID uuid.UUID, date time.Time) *billing.Invoice {
	t.Helper()

	displayID := fmt.Sprintf("Shop-%s-%s", date.Format("2-1-2006"), uuid.NewString()[:8])
	invoice, err := billing.NewInvoice(kind, displayID, counterpartyID, "Acme Retail", date, "")
	require.NoError(t, err)

	_, err = invoice.AddItem(uuid.New(), "Basmati Rice", 5, decimal.NewFromInt(55))
	require.NoError(t, err)
	invoice.RecalculateTotals()

	require.NoError(t, repo.Save(context.Background(), invoice))
	return invoice
}

func TestGormInvoiceRepository_FindAll(t *testing.T) {
	ctx := context.Background()
	day1 := time.Date(2026, 8, 1, 10, 30, 0, 0, time.UTC)
	day2 := time.Date(2026, 8, 2, 9, 0, 0, 0, time.UTC)

	t.Run("filters by calendar day", func(t *testing.T) {
		repo := NewGormInvoiceRepository(setupInvoiceTestDB(t))
		customerID := uuid.New()
		first := saveTestInvoice(t, repo, billing.InvoiceKindSales, customerID, day1)
		saveTestInvoice(t, repo, billing.InvoiceKindSales, customerID, day2)

		filter := shared.DefaultFilter()
		filter.Filters["date"] = "2026-08-01"

		invoices, err := repo.FindAll(ctx, billing.InvoiceKindSales, filter)
		require.NoError(t, err)
		require.Len(t, invoices, 1)
		assert.Equal(t, first.DisplayID, invoices[0].DisplayID)

		count, err := repo.Count(ctx, billing.InvoiceKindSales, filter)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("day with no invoices yields empty page", func(t *testing.T) {
		repo := NewGormInvoiceRepository(setupInvoiceTestDB(t))
		saveTestInvoice(t, repo, billing.InvoiceKindSales, uuid.New(), day1)

		filter := shared.DefaultFilter()
		filter.Filters["date"] = "2026-08-03"

		invoices, err := repo.FindAll(ctx, billing.InvoiceKindSales, filter)
		require.NoError(t, err)
		assert.Empty(t, invoices)
	})

	t.Run("filters by date window", func(t *testing.T) {
		repo := NewGormInvoiceRepository(setupInvoiceTestDB(t))
		customerID := uuid.New()
		saveTestInvoice(t, repo, billing.InvoiceKindSales, customerID, day1)
		saveTestInvoice(t, repo, billing.InvoiceKindSales, customerID, day2)
		saveTestInvoice(t, repo, billing.InvoiceKindSales, customerID,
			time.Date(2026, 8, 9, 12, 0, 0, 0, time.UTC))

		filter := shared.DefaultFilter()
		filter.Filters["date_from"] = "2026-08-02"
		filter.Filters["date_to"] = "2026-08-08"

		invoices, err := repo.FindAll(ctx, billing.InvoiceKindSales, filter)
		require.NoError(t, err)
		require.Len(t, invoices, 1)
	})

	t.Run("filters by counterparty", func(t *testing.T) {
		repo := NewGormInvoiceRepository(setupInvoiceTestDB(t))
		customerID := uuid.New()
		saveTestInvoice(t, repo, billing.InvoiceKindSales, customerID, day1)
		saveTestInvoice(t, repo, billing.InvoiceKindSales, uuid.New(), day1)

		filter := shared.DefaultFilter()
		filter.Filters["counterparty_id"] = customerID.String()

		invoices, err := repo.FindAll(ctx, billing.InvoiceKindSales, filter)
		require.NoError(t, err)
		require.Len(t, invoices, 1)
		assert.Equal(t, customerID, invoices[0].CounterpartyID)
	})

	t.Run("kinds never mix", func(t *testing.T) {
		repo := NewGormInvoiceRepository(setupInvoiceTestDB(t))
		saveTestInvoice(t, repo, billing.InvoiceKindSales, uuid.New(), day1)
		saveTestInvoice(t, repo, billing.InvoiceKindPurchase, uuid.New(), day1)

		invoices, err := repo.FindAll(ctx, billing.InvoiceKindPurchase, shared.DefaultFilter())
		require.NoError(t, err)
		require.Len(t, invoices, 1)
		assert.Equal(t, billing.InvoiceKindPurchase, invoices[0].Kind)
	})

	t.Run("loads line items", func(t *testing.T) {
		repo := NewGormInvoiceRepository(setupInvoiceTestDB(t))
		saved := saveTestInvoice(t, repo, billing.InvoiceKindSales, uuid.New(), day1)

		found, err := repo.FindByID(ctx, saved.ID)
		require.NoError(t, err)
		require.Len(t, found.Items, 1)
		assert.Equal(t, "Basmati Rice", found.Items[0].ProductName)
		assert.True(t, found.Total.Equal(decimal.NewFromInt(275)))
	})
}
