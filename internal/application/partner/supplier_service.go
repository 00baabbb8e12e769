package partner

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/stockbook/backend/internal/domain/ledger"
	"github.com/stockbook/backend/internal/domain/partner"
	"github.com/stockbook/backend/internal/domain/shared"
)

// SupplierService handles supplier-related business operations
type SupplierService struct {
	supplierRepo partner.SupplierRepository
	ledgerRepo   ledger.Repository
}

// NewSupplierService creates a new SupplierService
func NewSupplierService(supplierRepo partner.SupplierRepository, ledgerRepo ledger.Repository) *SupplierService {
	return &SupplierService{
		supplierRepo: supplierRepo,
		ledgerRepo:   ledgerRepo,
	}
}

// Create creates a new supplier and opens an empty ledger for it
func (s *SupplierService) Create(ctx context.Context, req CreateSupplierRequest) (*SupplierResponse, error) {
	supplier, err := partner.NewSupplier(req.Name, req.ContactPerson, req.Phone, req.Email, req.Address)
	if err != nil {
		return nil, err
	}

	if err := s.supplierRepo.Save(ctx, supplier); err != nil {
		return nil, err
	}

	acct, err := ledger.NewLedger(ledger.PartyTypeSupplier, supplier.ID, supplier.Name)
	if err != nil {
		return nil, err
	}
	if err := s.ledgerRepo.Save(ctx, acct); err != nil {
		return nil, err
	}

	response := ToSupplierResponse(supplier)
	return &response, nil
}

// GetByID retrieves a supplier by ID
func (s *SupplierService) GetByID(ctx context.Context, id uuid.UUID) (*SupplierResponse, error) {
	supplier, err := s.supplierRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToSupplierResponse(supplier)
	return &response, nil
}

// Update updates a supplier and keeps its ledger name in sync
func (s *SupplierService) Update(ctx context.Context, id uuid.UUID, req UpdateSupplierRequest) (*SupplierResponse, error) {
	supplier, err := s.supplierRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := supplier.Update(req.Name, req.ContactPerson, req.Phone, req.Email, req.Address); err != nil {
		return nil, err
	}

	if err := s.supplierRepo.Save(ctx, supplier); err != nil {
		return nil, err
	}

	acct, err := s.ledgerRepo.FindByParty(ctx, ledger.PartyTypeSupplier, supplier.ID)
	if err == nil && acct.PartyName != supplier.Name {
		acct.Rename(supplier.Name)
		if err := s.ledgerRepo.Save(ctx, acct); err != nil {
			return nil, err
		}
	} else if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	response := ToSupplierResponse(supplier)
	return &response, nil
}

// Delete deletes a supplier. A supplier that is still owed money cannot
// be removed.
func (s *SupplierService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.supplierRepo.FindByID(ctx, id); err != nil {
		return err
	}

	acct, err := s.ledgerRepo.FindByParty(ctx, ledger.PartyTypeSupplier, id)
	if err == nil && acct.HasOutstandingBalance() {
		return shared.NewDomainError("OUTSTANDING_BALANCE", "Supplier has an outstanding balance")
	}
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return err
	}

	return s.supplierRepo.Delete(ctx, id)
}

// List retrieves suppliers with filtering and pagination
func (s *SupplierService) List(ctx context.Context, filter PartyListFilter) (*shared.Paginated[SupplierResponse], error) {
	f := shared.DefaultFilter()
	if filter.Page > 0 {
		f.Page = filter.Page
	}
	if filter.PageSize > 0 {
		f.PageSize = filter.PageSize
	}
	f.Search = filter.Search

	suppliers, err := s.supplierRepo.FindAll(ctx, f)
	if err != nil {
		return nil, err
	}
	total, err := s.supplierRepo.Count(ctx, f)
	if err != nil {
		return nil, err
	}

	responses := make([]SupplierResponse, len(suppliers))
	for i := range suppliers {
		responses[i] = ToSupplierResponse(&suppliers[i])
	}

	page := shared.NewPaginated(responses, total, f.Page, f.PageSize)
	return &page, nil
}
