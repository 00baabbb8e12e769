package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stockbook/backend/internal/domain/billing"
)

// GormLoanPaymentRepository implements LoanPaymentRepository using GORM.
// Loan payments are append-only; there is no update or delete.
type GormLoanPaymentRepository struct {
	db *gorm.DB
}

// NewGormLoanPaymentRepository creates a new GormLoanPaymentRepository
func NewGormLoanPaymentRepository(db *gorm.DB) *GormLoanPaymentRepository {
	return &GormLoanPaymentRepository{db: db}
}

// Append persists a new loan payment
func (r *GormLoanPaymentRepository) Append(ctx context.Context, payment *billing.LoanPayment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

// FindByInvoice returns all payments recorded against an invoice, newest first
func (r *GormLoanPaymentRepository) FindByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]billing.LoanPayment, error) {
	var payments []billing.LoanPayment
	if err := r.db.WithContext(ctx).
		Where("invoice_id = ?", invoiceID).
		Order("payment_date DESC, created_at DESC").
		Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

// Ensure GormLoanPaymentRepository implements LoanPaymentRepository
var _ billing.LoanPaymentRepository = (*GormLoanPaymentRepository)(nil)
