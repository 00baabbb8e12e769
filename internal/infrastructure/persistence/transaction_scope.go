package persistence

import (
	"context"

	"gorm.io/gorm"

	billingapp "github.com/stockbook/backend/internal/application/billing"
	"github.com/stockbook/backend/internal/domain/billing"
	"github.com/stockbook/backend/internal/domain/catalog"
	"github.com/stockbook/backend/internal/domain/ledger"
	"github.com/stockbook/backend/internal/domain/partner"
)

// GormTransactionScope implements TransactionScope using GORM transactions.
// It provides atomic execution of the invoice posting workflow.
type GormTransactionScope struct {
	db *gorm.DB
}

// NewGormTransactionScope creates a new GormTransactionScope
func NewGormTransactionScope(db *gorm.DB) *GormTransactionScope {
	return &GormTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
func (s *GormTransactionScope) Execute(ctx context.Context, fn func(repos billingapp.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormTransactionalRepositories{tx: tx})
	})
}

// gormTransactionalRepositories provides access to all repositories scoped
// to a single transaction.
type gormTransactionalRepositories struct {
	tx *gorm.DB
}

func (r *gormTransactionalRepositories) Products() catalog.ProductRepository {
	return NewGormProductRepository(r.tx)
}

func (r *gormTransactionalRepositories) Customers() partner.CustomerRepository {
	return NewGormCustomerRepository(r.tx)
}

func (r *gormTransactionalRepositories) Suppliers() partner.SupplierRepository {
	return NewGormSupplierRepository(r.tx)
}

func (r *gormTransactionalRepositories) Invoices() billing.InvoiceRepository {
	return NewGormInvoiceRepository(r.tx)
}

func (r *gormTransactionalRepositories) LoanPayments() billing.LoanPaymentRepository {
	return NewGormLoanPaymentRepository(r.tx)
}

func (r *gormTransactionalRepositories) Ledgers() ledger.Repository {
	return NewGormLedgerRepository(r.tx)
}

func (r *gormTransactionalRepositories) LedgerTransactions() ledger.TransactionRepository {
	return NewGormLedgerTransactionRepository(r.tx)
}

// Ensure GormTransactionScope implements TransactionScope
var _ billingapp.TransactionScope = (*GormTransactionScope)(nil)

// Ensure gormTransactionalRepositories implements TransactionalRepositories
var _ billingapp.TransactionalRepositories = (*gormTransactionalRepositories)(nil)
