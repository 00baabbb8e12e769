package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/stockbook/backend/internal/domain/shared"
)

// ProductRepository defines the interface for product persistence
type ProductRepository interface {
	// FindByID finds a product by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)

	// FindByIDs finds multiple products by their IDs
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Product, error)

	// FindAll finds all products matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Product, error)

	// FindByStatus finds products by stock status
	FindByStatus(ctx context.Context, status StockStatus, filter shared.Filter) ([]Product, error)

	// FindLowStock finds products at or below their low-stock threshold
	FindLowStock(ctx context.Context, filter shared.Filter) ([]Product, error)

	// Save creates or updates a product
	Save(ctx context.Context, product *Product) error

	// Delete deletes a product
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts products matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// CountByStatus counts products by stock status
	CountByStatus(ctx context.Context, status StockStatus) (int64, error)
}
