package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/stockbook/backend/internal/domain/shared"
)

// TransactionType represents the type of ledger transaction
type TransactionType string

const (
	// TransactionTypeSale represents a sales invoice total owed by a customer
	TransactionTypeSale TransactionType = "SALE"
	// TransactionTypePurchase represents a purchase invoice total owed to a supplier
	TransactionTypePurchase TransactionType = "PURCHASE"
	// TransactionTypePayment represents money settled against the ledger
	TransactionTypePayment TransactionType = "PAYMENT"
	// TransactionTypeReturn represents returned goods reducing the balance
	TransactionTypeReturn TransactionType = "RETURN"
	// TransactionTypeDiscount represents a discount reducing the balance
	TransactionTypeDiscount TransactionType = "DISCOUNT"
	// TransactionTypeInterest represents interest added to the balance
	TransactionTypeInterest TransactionType = "INTEREST"
	// TransactionTypeAdjustment represents a manual correction reducing the balance
	TransactionTypeAdjustment TransactionType = "ADJUSTMENT"
)

// String returns the string representation of TransactionType
func (t TransactionType) String() string {
	return string(t)
}

// IsValid returns true if the transaction type is valid
func (t TransactionType) IsValid() bool {
	switch t {
	case TransactionTypeSale,
		TransactionTypePurchase,
		TransactionTypePayment,
		TransactionTypeReturn,
		TransactionTypeDiscount,
		TransactionTypeInterest,
		TransactionTypeAdjustment:
		return true
	}
	return false
}

// IsCredit returns true if this transaction type increases the outstanding
// balance. Everything else settles or reduces it.
func (t TransactionType) IsCredit() bool {
	switch t {
	case TransactionTypeSale, TransactionTypePurchase, TransactionTypeInterest:
		return true
	}
	return false
}

// Transaction represents an immutable record of a ledger balance change.
// Once created, transactions cannot be modified - corrections must be made
// with new transactions.
type Transaction struct {
	shared.BaseEntity
	LedgerID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	Type            TransactionType `gorm:"type:varchar(30);not null"`
	Amount          decimal.Decimal `gorm:"type:decimal(18,4);not null"` // Always positive, direction determined by type
	InvoiceID       *uuid.UUID      `gorm:"type:uuid"`                   // Source invoice, if any
	Description     string          `gorm:"type:text"`
	TransactionDate time.Time       `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (Transaction) TableName() string {
	return "ledger_transactions"
}

// NewTransaction creates a new ledger transaction
func NewTransaction(ledgerID uuid.UUID, txType TransactionType, amount decimal.Decimal, invoiceID *uuid.UUID, description string) (*Transaction, error) {
	if !txType.IsValid() {
		return nil, shared.NewDomainError("INVALID_TRANSACTION_TYPE", "Unknown ledger transaction type")
	}
	if !amount.IsPositive() {
		return nil, shared.ErrInvalidAmount
	}

	return &Transaction{
		BaseEntity:      shared.NewBaseEntity(),
		LedgerID:        ledgerID,
		Type:            txType,
		Amount:          amount,
		InvoiceID:       invoiceID,
		Description:     description,
		TransactionDate: time.Now(),
	}, nil
}

// SignedAmount returns the amount with the sign implied by the type:
// positive for credit types, negative for settlement types.
func (t *Transaction) SignedAmount() decimal.Decimal {
	if t.Type.IsCredit() {
		return t.Amount
	}
	return t.Amount.Neg()
}
