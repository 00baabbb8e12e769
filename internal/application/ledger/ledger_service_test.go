package ledger

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/stockbook/backend/internal/domain/ledger"
	"github.com/stockbook/backend/internal/domain/shared"
)

// MockLedgerRepository is a mock implementation of ledger.Repository
type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) FindByID(ctx context.Context, id uuid.UUID) (*ledger.Ledger, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.Ledger), args.Error(1)
}

func (m *MockLedgerRepository) FindByParty(ctx context.Context, partyType ledger.PartyType, partyID uuid.UUID) (*ledger.Ledger, error) {
	args := m.Called(ctx, partyType, partyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.Ledger), args.Error(1)
}

func (m *MockLedgerRepository) FindAll(ctx context.Context, filter shared.Filter) ([]ledger.Ledger, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ledger.Ledger), args.Error(1)
}

func (m *MockLedgerRepository) Save(ctx context.Context, l *ledger.Ledger) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockLedgerRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockTransactionRepository is a mock implementation of ledger.TransactionRepository
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) Append(ctx context.Context, tx *ledger.Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockTransactionRepository) FindByLedger(ctx context.Context, ledgerID uuid.UUID) ([]ledger.Transaction, error) {
	args := m.Called(ctx, ledgerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ledger.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindByLedgerPaged(ctx context.Context, ledgerID uuid.UUID, filter shared.Filter) ([]ledger.Transaction, int64, error) {
	args := m.Called(ctx, ledgerID, filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]ledger.Transaction), args.Get(1).(int64), args.Error(2)
}

func TestLedgerService_GetByParty(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the party's account", func(t *testing.T) {
		ledgerRepo := new(MockLedgerRepository)
		service := NewLedgerService(ledgerRepo, new(MockTransactionRepository))

		customerID := uuid.New()
		acct, err := ledger.NewLedger(ledger.PartyTypeCustomer, customerID, "Acme Retail")
		require.NoError(t, err)
		acct.Balance = decimal.NewFromInt(120)

		ledgerRepo.On("FindByParty", ctx, ledger.PartyTypeCustomer, customerID).Return(acct, nil)

		resp, err := service.GetByParty(ctx, ledger.PartyTypeCustomer, customerID)
		require.NoError(t, err)
		assert.Equal(t, "Acme Retail", resp.PartyName)
		assert.True(t, resp.Balance.Equal(decimal.NewFromInt(120)))
	})

	t.Run("rejects an unknown party type", func(t *testing.T) {
		service := NewLedgerService(new(MockLedgerRepository), new(MockTransactionRepository))

		_, err := service.GetByParty(ctx, ledger.PartyType("vendor"), uuid.New())
		require.Error(t, err)
	})

	t.Run("propagates not found", func(t *testing.T) {
		ledgerRepo := new(MockLedgerRepository)
		service := NewLedgerService(ledgerRepo, new(MockTransactionRepository))

		partyID := uuid.New()
		ledgerRepo.On("FindByParty", ctx, ledger.PartyTypeSupplier, partyID).Return(nil, shared.ErrNotFound)

		_, err := service.GetByParty(ctx, ledger.PartyTypeSupplier, partyID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestLedgerService_ListTransactions(t *testing.T) {
	ctx := context.Background()

	t.Run("pages the history with signed amounts", func(t *testing.T) {
		ledgerRepo := new(MockLedgerRepository)
		txRepo := new(MockTransactionRepository)
		service := NewLedgerService(ledgerRepo, txRepo)

		acct, err := ledger.NewLedger(ledger.PartyTypeCustomer, uuid.New(), "Acme Retail")
		require.NoError(t, err)

		sale, err := ledger.NewTransaction(acct.ID, ledger.TransactionTypeSale, decimal.NewFromInt(100), nil, "")
		require.NoError(t, err)
		payment, err := ledger.NewTransaction(acct.ID, ledger.TransactionTypePayment, decimal.NewFromInt(40), nil, "")
		require.NoError(t, err)

		ledgerRepo.On("FindByID", ctx, acct.ID).Return(acct, nil)
		txRepo.On("FindByLedgerPaged", ctx, acct.ID, mock.Anything).
			Return([]ledger.Transaction{*payment, *sale}, int64(2), nil)

		page, err := service.ListTransactions(ctx, acct.ID, TransactionListFilter{})
		require.NoError(t, err)
		require.Len(t, page.Items, 2)
		assert.True(t, page.Items[0].SignedAmount.Equal(decimal.NewFromInt(-40)))
		assert.True(t, page.Items[1].SignedAmount.Equal(decimal.NewFromInt(100)))
	})

	t.Run("unknown ledger fails", func(t *testing.T) {
		ledgerRepo := new(MockLedgerRepository)
		service := NewLedgerService(ledgerRepo, new(MockTransactionRepository))

		id := uuid.New()
		ledgerRepo.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

		_, err := service.ListTransactions(ctx, id, TransactionListFilter{})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}
