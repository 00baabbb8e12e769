package partner

import (
	"context"

	"github.com/google/uuid"

	"github.com/stockbook/backend/internal/domain/shared"
)

// SupplierRepository defines the interface for supplier persistence
type SupplierRepository interface {
	// FindByID finds a supplier by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Supplier, error)

	// FindAll finds all suppliers matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Supplier, error)

	// Save creates or updates a supplier
	Save(ctx context.Context, supplier *Supplier) error

	// Delete deletes a supplier
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts suppliers matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
