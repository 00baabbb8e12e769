package ledger

import (
	"context"

	"github.com/google/uuid"

	"github.com/stockbook/backend/internal/domain/ledger"
	"github.com/stockbook/backend/internal/domain/shared"
)

// LedgerService exposes read access to counterparty accounts and their
// transaction histories. Ledgers are written only by the posting workflow.
type LedgerService struct {
	ledgerRepo ledger.Repository
	txRepo     ledger.TransactionRepository
}

// NewLedgerService creates a new LedgerService
func NewLedgerService(ledgerRepo ledger.Repository, txRepo ledger.TransactionRepository) *LedgerService {
	return &LedgerService{
		ledgerRepo: ledgerRepo,
		txRepo:     txRepo,
	}
}

// GetByID retrieves a ledger by ID
func (s *LedgerService) GetByID(ctx context.Context, id uuid.UUID) (*LedgerResponse, error) {
	acct, err := s.ledgerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToLedgerResponse(acct)
	return &response, nil
}

// GetByParty retrieves the ledger of a customer or supplier
func (s *LedgerService) GetByParty(ctx context.Context, partyType ledger.PartyType, partyID uuid.UUID) (*LedgerResponse, error) {
	if !partyType.IsValid() {
		return nil, shared.NewDomainError("INVALID_PARTY_TYPE", "Party type must be 'customer' or 'supplier'")
	}

	acct, err := s.ledgerRepo.FindByParty(ctx, partyType, partyID)
	if err != nil {
		return nil, err
	}

	response := ToLedgerResponse(acct)
	return &response, nil
}

// List retrieves ledgers with filtering and pagination
func (s *LedgerService) List(ctx context.Context, filter LedgerListFilter) (*shared.Paginated[LedgerResponse], error) {
	f := shared.DefaultFilter()
	if filter.Page > 0 {
		f.Page = filter.Page
	}
	if filter.PageSize > 0 {
		f.PageSize = filter.PageSize
	}
	f.Search = filter.Search
	if filter.PartyType != "" {
		f.Filters["party_type"] = filter.PartyType
	}

	ledgers, err := s.ledgerRepo.FindAll(ctx, f)
	if err != nil {
		return nil, err
	}
	total, err := s.ledgerRepo.Count(ctx, f)
	if err != nil {
		return nil, err
	}

	responses := make([]LedgerResponse, len(ledgers))
	for i := range ledgers {
		responses[i] = ToLedgerResponse(&ledgers[i])
	}

	page := shared.NewPaginated(responses, total, f.Page, f.PageSize)
	return &page, nil
}

// ListTransactions retrieves a ledger's history newest first
func (s *LedgerService) ListTransactions(ctx context.Context, ledgerID uuid.UUID, filter TransactionListFilter) (*shared.Paginated[TransactionResponse], error) {
	if _, err := s.ledgerRepo.FindByID(ctx, ledgerID); err != nil {
		return nil, err
	}

	f := shared.DefaultFilter()
	if filter.Page > 0 {
		f.Page = filter.Page
	}
	if filter.PageSize > 0 {
		f.PageSize = filter.PageSize
	}

	txs, total, err := s.txRepo.FindByLedgerPaged(ctx, ledgerID, f)
	if err != nil {
		return nil, err
	}

	responses := make([]TransactionResponse, len(txs))
	for i := range txs {
		responses[i] = ToTransactionResponse(&txs[i])
	}

	page := shared.NewPaginated(responses, total, f.Page, f.PageSize)
	return &page, nil
}
