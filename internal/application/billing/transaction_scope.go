package billing

import (
	"context"

	"github.com/stockbook/backend/internal/domain/billing"
	"github.com/stockbook/backend/internal/domain/catalog"
	"github.com/stockbook/backend/internal/domain/ledger"
	"github.com/stockbook/backend/internal/domain/partner"
)

// TransactionScope provides transactional access to the repositories an
// invoice posting touches. When a function is executed within a scope, all
// repository operations are part of the same database transaction and are
// committed or rolled back atomically.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	// If the function succeeds, the transaction is committed.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to all repositories involved in
// invoice posting. All repositories returned share the same underlying
// database transaction.
type TransactionalRepositories interface {
	// Products returns the product repository scoped to the current transaction
	Products() catalog.ProductRepository
	// Customers returns the customer repository scoped to the current transaction
	Customers() partner.CustomerRepository
	// Suppliers returns the supplier repository scoped to the current transaction
	Suppliers() partner.SupplierRepository
	// Invoices returns the invoice repository scoped to the current transaction
	Invoices() billing.InvoiceRepository
	// LoanPayments returns the loan payment repository scoped to the current transaction
	LoanPayments() billing.LoanPaymentRepository
	// Ledgers returns the ledger repository scoped to the current transaction
	Ledgers() ledger.Repository
	// LedgerTransactions returns the ledger transaction repository scoped to the current transaction
	LedgerTransactions() ledger.TransactionRepository
}

// NoOpTransactionScope is a transaction scope that doesn't actually use
// transactions. This is useful for testing.
type NoOpTransactionScope struct {
	products     catalog.ProductRepository
	customers    partner.CustomerRepository
	suppliers    partner.SupplierRepository
	invoices     billing.InvoiceRepository
	loanPayments billing.LoanPaymentRepository
	ledgers      ledger.Repository
	ledgerTxs    ledger.TransactionRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories
func NewNoOpTransactionScope(
	products catalog.ProductRepository,
	customers partner.CustomerRepository,
	suppliers partner.SupplierRepository,
	invoices billing.InvoiceRepository,
	loanPayments billing.LoanPaymentRepository,
	ledgers ledger.Repository,
	ledgerTxs ledger.TransactionRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		products:     products,
		customers:    customers,
		suppliers:    suppliers,
		invoices:     invoices,
		loanPayments: loanPayments,
		ledgers:      ledgers,
		ledgerTxs:    ledgerTxs,
	}
}

// Execute runs the function without a real transaction
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// Products returns the product repository
func (s *NoOpTransactionScope) Products() catalog.ProductRepository { return s.products }

// Customers returns the customer repository
func (s *NoOpTransactionScope) Customers() partner.CustomerRepository { return s.customers }

// Suppliers returns the supplier repository
func (s *NoOpTransactionScope) Suppliers() partner.SupplierRepository { return s.suppliers }

// Invoices returns the invoice repository
func (s *NoOpTransactionScope) Invoices() billing.InvoiceRepository { return s.invoices }

// LoanPayments returns the loan payment repository
func (s *NoOpTransactionScope) LoanPayments() billing.LoanPaymentRepository { return s.loanPayments }

// Ledgers returns the ledger repository
func (s *NoOpTransactionScope) Ledgers() ledger.Repository { return s.ledgers }

// LedgerTransactions returns the ledger transaction repository
func (s *NoOpTransactionScope) LedgerTransactions() ledger.TransactionRepository { return s.ledgerTxs }

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
