package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/stockbook/backend/internal/domain/shared"
)

// LoanPayment represents a single repayment against a loan invoice.
// Payments are append-only; corrections are made with new records.
type LoanPayment struct {
	shared.BaseEntity
	InvoiceID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount      decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Notes       string          `gorm:"type:text"`
	PaymentDate time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (LoanPayment) TableName() string {
	return "loan_payments"
}

// NewLoanPayment creates a new loan payment record
func NewLoanPayment(invoiceID uuid.UUID, amount decimal.Decimal, notes string) (*LoanPayment, error) {
	if invoiceID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INVOICE", "Invoice ID cannot be empty")
	}
	if !amount.IsPositive() {
		return nil, shared.ErrInvalidAmount
	}

	return &LoanPayment{
		BaseEntity:  shared.NewBaseEntity(),
		InvoiceID:   invoiceID,
		Amount:      amount,
		Notes:       notes,
		PaymentDate: time.Now(),
	}, nil
}
