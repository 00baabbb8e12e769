package billing

import (
	"context"

	"github.com/google/uuid"

	"github.com/stockbook/backend/internal/domain/shared"
)

// InvoiceRepository defines the interface for invoice persistence
type InvoiceRepository interface {
	// FindByID finds an invoice by its ID, including line items
	FindByID(ctx context.Context, id uuid.UUID) (*Invoice, error)

	// FindByDisplayID finds an invoice by its display identifier
	FindByDisplayID(ctx context.Context, kind InvoiceKind, displayID string) (*Invoice, error)

	// FindAll finds invoices of a kind matching the filter, ordered by
	// invoice date descending then creation time descending
	FindAll(ctx context.Context, kind InvoiceKind, filter shared.Filter) ([]Invoice, error)

	// Save creates or updates an invoice together with its line items
	Save(ctx context.Context, invoice *Invoice) error

	// Delete deletes an invoice and its line items
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts invoices of a kind matching the filter
	Count(ctx context.Context, kind InvoiceKind, filter shared.Filter) (int64, error)
}

// LoanPaymentRepository defines the interface for loan payment
// persistence. Payments are append-only.
type LoanPaymentRepository interface {
	// Append persists a new loan payment
	Append(ctx context.Context, payment *LoanPayment) error

	// FindByInvoice returns all payments recorded against an invoice,
	// newest first
	FindByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]LoanPayment, error)
}
