package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/stockbook/backend/internal/domain/shared"
)

// PartyType identifies which side of the business a ledger belongs to
type PartyType string

const (
	PartyTypeCustomer PartyType = "customer"
	PartyTypeSupplier PartyType = "supplier"
)

// IsValid returns true if the party type is valid
func (p PartyType) IsValid() bool {
	switch p {
	case PartyTypeCustomer, PartyTypeSupplier:
		return true
	}
	return false
}

// String returns the party type as a string
func (p PartyType) String() string {
	return string(p)
}

// Ledger tracks the running account of a single counterparty. One ledger
// exists per (party type, party id) pair. Balances are never updated
// incrementally: every change appends a Transaction and the totals are
// refolded from the full history.
type Ledger struct {
	shared.BaseAggregateRoot
	PartyType     PartyType       `gorm:"type:varchar(20);not null;uniqueIndex:idx_ledger_party,priority:1"`
	PartyID       uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_ledger_party,priority:2"`
	PartyName     string          `gorm:"type:varchar(200);not null"`
	Balance       decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	TotalInvoiced decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	TotalPayments decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
}

// TableName returns the table name for GORM
func (Ledger) TableName() string {
	return "ledgers"
}

// NewLedger creates a new ledger for a counterparty
func NewLedger(partyType PartyType, partyID uuid.UUID, partyName string) (*Ledger, error) {
	if !partyType.IsValid() {
		return nil, shared.NewDomainError("INVALID_PARTY_TYPE", "Party type must be 'customer' or 'supplier'")
	}
	if partyID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PARTY", "Party ID cannot be empty")
	}

	return &Ledger{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		PartyType:         partyType,
		PartyID:           partyID,
		PartyName:         partyName,
		Balance:           decimal.Zero,
		TotalInvoiced:     decimal.Zero,
		TotalPayments:     decimal.Zero,
	}, nil
}

// Recompute refolds the complete transaction history into the ledger
// totals. It is idempotent: calling it twice with the same history yields
// the same result. Transactions belonging to other ledgers are ignored.
func (l *Ledger) Recompute(txs []Transaction) {
	balance := decimal.Zero
	invoiced := decimal.Zero
	payments := decimal.Zero

	for i := range txs {
		tx := &txs[i]
		if tx.LedgerID != l.ID {
			continue
		}
		balance = balance.Add(tx.SignedAmount())
		switch tx.Type {
		case TransactionTypeSale, TransactionTypePurchase:
			invoiced = invoiced.Add(tx.Amount)
		case TransactionTypePayment:
			payments = payments.Add(tx.Amount)
		}
	}

	l.Balance = balance
	l.TotalInvoiced = invoiced
	l.TotalPayments = payments
	l.UpdatedAt = time.Now()
	l.IncrementVersion()
}

// Rename updates the cached counterparty name
func (l *Ledger) Rename(name string) {
	l.PartyName = name
	l.UpdatedAt = time.Now()
	l.IncrementVersion()
}

// HasOutstandingBalance returns true if the counterparty still owes money
func (l *Ledger) HasOutstandingBalance() bool {
	return l.Balance.IsPositive()
}
