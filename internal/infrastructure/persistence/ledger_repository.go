package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stockbook/backend/internal/domain/ledger"
	"github.com/stockbook/backend/internal/domain/shared"
)

// GormLedgerRepository implements ledger.Repository using GORM
type GormLedgerRepository struct {
	db *gorm.DB
}

// NewGormLedgerRepository creates a new GormLedgerRepository
func NewGormLedgerRepository(db *gorm.DB) *GormLedgerRepository {
	return &GormLedgerRepository{db: db}
}

// FindByID finds a ledger by its ID
func (r *GormLedgerRepository) FindByID(ctx context.Context, id uuid.UUID) (*ledger.Ledger, error) {
	var acct ledger.Ledger
	if err := r.db.WithContext(ctx).First(&acct, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &acct, nil
}

// FindByParty finds the ledger for a counterparty, if one exists
func (r *GormLedgerRepository) FindByParty(ctx context.Context, partyType ledger.PartyType, partyID uuid.UUID) (*ledger.Ledger, error) {
	var acct ledger.Ledger
	if err := r.db.WithContext(ctx).
		Where("party_type = ? AND party_id = ?", partyType, partyID).
		First(&acct).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &acct, nil
}

// FindAll finds all ledgers matching the filter
func (r *GormLedgerRepository) FindAll(ctx context.Context, filter shared.Filter) ([]ledger.Ledger, error) {
	var ledgers []ledger.Ledger
	query := r.applyFilter(r.db.WithContext(ctx).Model(&ledger.Ledger{}), filter, true)

	if err := query.Find(&ledgers).Error; err != nil {
		return nil, err
	}
	return ledgers, nil
}

// Save creates or updates a ledger
func (r *GormLedgerRepository) Save(ctx context.Context, acct *ledger.Ledger) error {
	return r.db.WithContext(ctx).Save(acct).Error
}

// Count returns the number of ledgers matching the filter
func (r *GormLedgerRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilter(r.db.WithContext(ctx).Model(&ledger.Ledger{}), filter, false)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormLedgerRepository) applyFilter(query *gorm.DB, filter shared.Filter, paginate bool) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + strings.TrimSpace(filter.Search) + "%"
		query = query.Where("party_name ILIKE ?", searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "party_type":
			query = query.Where("party_type = ?", value)
		}
	}

	if !paginate {
		return query
	}

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if filter.OrderBy == "" {
		query = query.Order("party_name ASC")
	} else {
		orderBy := ValidateSortField(filter.OrderBy, LedgerSortFields, "party_name")
		orderDir := ValidateSortOrder(filter.OrderDir)
		query = query.Order(orderBy + " " + orderDir)
	}

	return query
}

// Ensure GormLedgerRepository implements ledger.Repository
var _ ledger.Repository = (*GormLedgerRepository)(nil)
