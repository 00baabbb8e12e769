package catalog

import (
	"context"

	"github.com/google/uuid"

	billingapp "github.com/stockbook/backend/internal/application/billing"
	"github.com/stockbook/backend/internal/domain/catalog"
	"github.com/stockbook/backend/internal/domain/shared"
)

// OpeningStockInvoicer books a purchase invoice for a product's opening
// stock. It is implemented by the billing posting service.
type OpeningStockInvoicer interface {
	PostAutoPurchase(ctx context.Context, req billingapp.AutoPurchaseRequest) (*billingapp.InvoiceResponse, error)
}

// ProductService handles product-related business operations
type ProductService struct {
	productRepo catalog.ProductRepository
	invoicer    OpeningStockInvoicer
}

// NewProductService creates a new ProductService
func NewProductService(productRepo catalog.ProductRepository, invoicer OpeningStockInvoicer) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		invoicer:    invoicer,
	}
}

// Create creates a new product. When a supplier is given and the product
// starts with stock on hand, a purchase invoice is booked for the opening
// quantity so the supplier ledger reflects the acquisition. The invoice
// does not adjust stock again since the product already carries it.
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*CreateProductResponse, error) {
	threshold := catalog.DefaultLowStockThreshold
	if req.LowStockThreshold != nil {
		threshold = *req.LowStockThreshold
	}

	product, err := catalog.NewProduct(req.Name, catalog.Unit(req.Unit), req.CostPrice, req.SalePrice, req.Quantity, threshold)
	if err != nil {
		return nil, err
	}
	product.Description = req.Description
	product.SupplierID = req.SupplierID

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	resp := &CreateProductResponse{Product: ToProductResponse(product)}

	if req.SupplierID != nil && product.Quantity > 0 && s.invoicer != nil {
		invoice, err := s.invoicer.PostAutoPurchase(ctx, billingapp.AutoPurchaseRequest{
			ProductID:  product.ID,
			SupplierID: *req.SupplierID,
			AmountPaid: req.AmountPaid,
		})
		if err != nil {
			// roll the product back when the opening invoice cannot be booked
			_ = s.productRepo.Delete(ctx, product.ID)
			return nil, err
		}
		resp.PurchaseInvoiceID = &invoice.ID
	}

	return resp, nil
}

// GetByID retrieves a product by ID
func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// Update updates a product. A quantity in the request is applied as a
// manual stock correction.
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	threshold := product.LowStockThreshold
	if req.LowStockThreshold != nil {
		threshold = *req.LowStockThreshold
	}

	if err := product.Update(req.Name, req.Description, catalog.Unit(req.Unit), req.CostPrice, req.SalePrice, threshold); err != nil {
		return nil, err
	}
	product.SupplierID = req.SupplierID

	if req.Quantity != nil {
		if *req.Quantity < 0 {
			return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity cannot be negative")
		}
		product.AdjustStock(*req.Quantity - product.Quantity)
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// Delete deletes a product
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.productRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.productRepo.Delete(ctx, id)
}

// List retrieves products with filtering and pagination
func (s *ProductService) List(ctx context.Context, filter ProductListFilter) (*shared.Paginated[ProductResponse], error) {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	domainFilter.Search = filter.Search
	if filter.SupplierID != "" {
		domainFilter.Filters["supplier_id"] = filter.SupplierID
	}

	var (
		products []catalog.Product
		err      error
	)
	if filter.Status != "" {
		products, err = s.productRepo.FindByStatus(ctx, catalog.StockStatus(filter.Status), domainFilter)
	} else {
		products, err = s.productRepo.FindAll(ctx, domainFilter)
	}
	if err != nil {
		return nil, err
	}

	total, err := s.productRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	responses := make([]ProductResponse, len(products))
	for i := range products {
		responses[i] = ToProductResponse(&products[i])
	}

	page := shared.NewPaginated(responses, total, domainFilter.Page, domainFilter.PageSize)
	return &page, nil
}

// ListLowStock retrieves products at or below their low stock threshold,
// including out of stock products.
func (s *ProductService) ListLowStock(ctx context.Context, filter ProductListFilter) ([]ProductResponse, error) {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}

	products, err := s.productRepo.FindLowStock(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	responses := make([]ProductResponse, len(products))
	for i := range products {
		responses[i] = ToProductResponse(&products[i])
	}
	return responses, nil
}
