package ledger

import (
	"context"

	"github.com/google/uuid"

	"github.com/stockbook/backend/internal/domain/shared"
)

// Repository defines the interface for ledger persistence
type Repository interface {
	// FindByID finds a ledger by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Ledger, error)

	// FindByParty finds the ledger for a counterparty, if one exists
	FindByParty(ctx context.Context, partyType PartyType, partyID uuid.UUID) (*Ledger, error)

	// FindAll finds all ledgers matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Ledger, error)

	// Save creates or updates a ledger
	Save(ctx context.Context, ledger *Ledger) error

	// Count returns the number of ledgers matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}

// TransactionRepository defines the interface for ledger transaction
// persistence. Transactions are append-only: there is no update or delete.
type TransactionRepository interface {
	// Append persists a new transaction
	Append(ctx context.Context, tx *Transaction) error

	// FindByLedger returns the full transaction history of a ledger,
	// oldest first
	FindByLedger(ctx context.Context, ledgerID uuid.UUID) ([]Transaction, error)

	// FindByLedgerPaged returns a page of a ledger's transactions,
	// newest first
	FindByLedgerPaged(ctx context.Context, ledgerID uuid.UUID, filter shared.Filter) ([]Transaction, int64, error)
}
