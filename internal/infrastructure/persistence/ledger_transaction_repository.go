package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stockbook/backend/internal/domain/ledger"
	"github.com/stockbook/backend/internal/domain/shared"
)

// GormLedgerTransactionRepository implements ledger.TransactionRepository
// using GORM. Transactions are append-only.
type GormLedgerTransactionRepository struct {
	db *gorm.DB
}

// NewGormLedgerTransactionRepository creates a new GormLedgerTransactionRepository
func NewGormLedgerTransactionRepository(db *gorm.DB) *GormLedgerTransactionRepository {
	return &GormLedgerTransactionRepository{db: db}
}

// Append persists a new transaction
func (r *GormLedgerTransactionRepository) Append(ctx context.Context, tx *ledger.Transaction) error {
	return r.db.WithContext(ctx).Create(tx).Error
}

// FindByLedger returns the full transaction history of a ledger, oldest first
func (r *GormLedgerTransactionRepository) FindByLedger(ctx context.Context, ledgerID uuid.UUID) ([]ledger.Transaction, error) {
	var txs []ledger.Transaction
	if err := r.db.WithContext(ctx).
		Where("ledger_id = ?", ledgerID).
		Order("transaction_date ASC, created_at ASC").
		Find(&txs).Error; err != nil {
		return nil, err
	}
	return txs, nil
}

// FindByLedgerPaged returns a page of a ledger's transactions, newest first
func (r *GormLedgerTransactionRepository) FindByLedgerPaged(ctx context.Context, ledgerID uuid.UUID, filter shared.Filter) ([]ledger.Transaction, int64, error) {
	base := r.db.WithContext(ctx).Model(&ledger.Transaction{}).Where("ledger_id = ?", ledgerID)

	if txType, ok := filter.Filters["type"]; ok {
		base = base.Where("type = ?", txType)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := base.Session(&gorm.Session{})
	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, LedgerTransactionSortFields, "transaction_date")
	orderDir := ValidateSortOrder(filter.OrderDir)
	query = query.Order(orderBy + " " + orderDir + ", created_at " + orderDir)

	var txs []ledger.Transaction
	if err := query.Find(&txs).Error; err != nil {
		return nil, 0, err
	}
	return txs, total, nil
}

// Ensure GormLedgerTransactionRepository implements ledger.TransactionRepository
var _ ledger.TransactionRepository = (*GormLedgerTransactionRepository)(nil)
