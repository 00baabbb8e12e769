package partner

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/stockbook/backend/internal/domain/ledger"
	"github.com/stockbook/backend/internal/domain/partner"
	"github.com/stockbook/backend/internal/domain/shared"
)

// CustomerService handles customer-related business operations
type CustomerService struct {
	customerRepo partner.CustomerRepository
	ledgerRepo   ledger.Repository
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(customerRepo partner.CustomerRepository, ledgerRepo ledger.Repository) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
		ledgerRepo:   ledgerRepo,
	}
}

// Create creates a new customer and opens an empty ledger for it
func (s *CustomerService) Create(ctx context.Context, req CreateCustomerRequest) (*CustomerResponse, error) {
	customer, err := partner.NewCustomer(req.Name, req.ContactPerson, req.Phone, req.Email, req.Address)
	if err != nil {
		return nil, err
	}

	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}

	acct, err := ledger.NewLedger(ledger.PartyTypeCustomer, customer.ID, customer.Name)
	if err != nil {
		return nil, err
	}
	if err := s.ledgerRepo.Save(ctx, acct); err != nil {
		return nil, err
	}

	response := ToCustomerResponse(customer)
	return &response, nil
}

// GetByID retrieves a customer by ID
func (s *CustomerService) GetByID(ctx context.Context, id uuid.UUID) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToCustomerResponse(customer)
	return &response, nil
}

// Update updates a customer and keeps its ledger name in sync
func (s *CustomerService) Update(ctx context.Context, id uuid.UUID, req UpdateCustomerRequest) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := customer.Update(req.Name, req.ContactPerson, req.Phone, req.Email, req.Address); err != nil {
		return nil, err
	}

	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}

	acct, err := s.ledgerRepo.FindByParty(ctx, ledger.PartyTypeCustomer, customer.ID)
	if err == nil && acct.PartyName != customer.Name {
		acct.Rename(customer.Name)
		if err := s.ledgerRepo.Save(ctx, acct); err != nil {
			return nil, err
		}
	} else if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	response := ToCustomerResponse(customer)
	return &response, nil
}

// Delete deletes a customer. A customer with an outstanding ledger
// balance cannot be removed.
func (s *CustomerService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.customerRepo.FindByID(ctx, id); err != nil {
		return err
	}

	acct, err := s.ledgerRepo.FindByParty(ctx, ledger.PartyTypeCustomer, id)
	if err == nil && acct.HasOutstandingBalance() {
		return shared.NewDomainError("OUTSTANDING_BALANCE", "Customer has an outstanding balance")
	}
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return err
	}

	return s.customerRepo.Delete(ctx, id)
}

// List retrieves customers with filtering and pagination
func (s *CustomerService) List(ctx context.Context, filter PartyListFilter) (*shared.Paginated[CustomerResponse], error) {
	f := shared.DefaultFilter()
	if filter.Page > 0 {
		f.Page = filter.Page
	}
	if filter.PageSize > 0 {
		f.PageSize = filter.PageSize
	}
	f.Search = filter.Search

	customers, err := s.customerRepo.FindAll(ctx, f)
	if err != nil {
		return nil, err
	}
	total, err := s.customerRepo.Count(ctx, f)
	if err != nil {
		return nil, err
	}

	responses := make([]CustomerResponse, len(customers))
	for i := range customers {
		responses[i] = ToCustomerResponse(&customers[i])
	}

	page := shared.NewPaginated(responses, total, f.Page, f.PageSize)
	return &page, nil
}
