package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stockbook/backend/internal/domain/billing"
	"github.com/stockbook/backend/internal/domain/shared"
	"github.com/stockbook/backend/internal/infrastructure/persistence/models"
)

// GormInvoiceRepository implements InvoiceRepository using GORM. It maps
// between the billing domain aggregates and the persistence models.
type GormInvoiceRepository struct {
	db *gorm.DB
}

// NewGormInvoiceRepository creates a new GormInvoiceRepository
func NewGormInvoiceRepository(db *gorm.DB) *GormInvoiceRepository {
	return &GormInvoiceRepository{db: db}
}

// FindByID finds an invoice by its ID, including line items
func (r *GormInvoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.Invoice, error) {
	var model models.InvoiceModel
	if err := r.db.WithContext(ctx).
		Preload("Items").
		First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByDisplayID finds an invoice by its display identifier
func (r *GormInvoiceRepository) FindByDisplayID(ctx context.Context, kind billing.InvoiceKind, displayID string) (*billing.Invoice, error) {
	var model models.InvoiceModel
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("kind = ? AND display_id = ?", kind, displayID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds invoices of a kind matching the filter, ordered by invoice
// date descending then creation time descending
func (r *GormInvoiceRepository) FindAll(ctx context.Context, kind billing.InvoiceKind, filter shared.Filter) ([]billing.Invoice, error) {
	var invoiceModels []models.InvoiceModel
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&models.InvoiceModel{}).
			Preload("Items").
			Where("kind = ?", kind),
		filter,
	)

	if err := query.Find(&invoiceModels).Error; err != nil {
		return nil, err
	}

	invoices := make([]billing.Invoice, len(invoiceModels))
	for i := range invoiceModels {
		invoices[i] = *invoiceModels[i].ToDomain()
	}
	return invoices, nil
}

// Save creates or updates an invoice together with its line items. Line
// items removed from the aggregate are deleted from storage. A display ID
// collision surfaces as shared.ErrAlreadyExists.
func (r *GormInvoiceRepository) Save(ctx context.Context, invoice *billing.Invoice) error {
	model := models.InvoiceModelFromDomain(invoice)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Items").Save(model).Error; err != nil {
			return err
		}

		currentItemIDs := make([]uuid.UUID, len(model.Items))
		for i, item := range model.Items {
			currentItemIDs[i] = item.ID
		}

		if len(currentItemIDs) > 0 {
			if err := tx.Where("invoice_id = ? AND id NOT IN ?", model.ID, currentItemIDs).
				Delete(&models.InvoiceItemModel{}).Error; err != nil {
				return err
			}
		} else {
			if err := tx.Where("invoice_id = ?", model.ID).
				Delete(&models.InvoiceItemModel{}).Error; err != nil {
				return err
			}
		}

		for i := range model.Items {
			model.Items[i].InvoiceID = model.ID
			if err := tx.Save(&model.Items[i]).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return shared.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// Delete deletes an invoice and its line items
func (r *GormInvoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("invoice_id = ?", id).
			Delete(&models.InvoiceItemModel{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.InvoiceModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// Count counts invoices of a kind matching the filter
func (r *GormInvoiceRepository) Count(ctx context.Context, kind billing.InvoiceKind, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(
		r.db.WithContext(ctx).Model(&models.InvoiceModel{}).Where("kind = ?", kind),
		filter,
	)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter applies filter options to the query
func (r *GormInvoiceRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if filter.OrderBy == "" {
		query = query.Order("date DESC, created_at DESC")
	} else {
		orderBy := ValidateSortField(filter.OrderBy, InvoiceSortFields, "date")
		orderDir := ValidateSortOrder(filter.OrderDir)
		query = query.Order(orderBy + " " + orderDir)
	}

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormInvoiceRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + strings.TrimSpace(filter.Search) + "%"
		query = query.Where("display_id ILIKE ? OR counterparty_name ILIKE ?",
			searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "counterparty_id":
			query = query.Where("counterparty_id = ?", value)
		case "payment_status":
			query = query.Where("payment_status = ?", value)
		case "is_loan":
			query = query.Where("is_loan = ?", value)
		case "date":
			query = query.Where("DATE(date) = ?", value)
		case "date_from":
			query = query.Where("date >= ?", value)
		case "date_to":
			query = query.Where("date <= ?", value)
		}
	}

	return query
}

// Ensure GormInvoiceRepository implements InvoiceRepository
var _ billing.InvoiceRepository = (*GormInvoiceRepository)(nil)
