package billing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/stockbook/backend/internal/domain/billing"
	"github.com/stockbook/backend/internal/domain/catalog"
	"github.com/stockbook/backend/internal/domain/ledger"
	"github.com/stockbook/backend/internal/domain/shared"
)

// PostingService posts and deletes invoices. Every posting runs as a single
// all-or-nothing transaction: header, line items, stock adjustments and
// ledger entries either all land or none do.
type PostingService struct {
	scope       TransactionScope
	invoiceRepo billing.InvoiceRepository
}

// NewPostingService creates a new PostingService
func NewPostingService(scope TransactionScope, invoiceRepo billing.InvoiceRepository) *PostingService {
	return &PostingService{
		scope:       scope,
		invoiceRepo: invoiceRepo,
	}
}

// PostInvoice posts a sales or purchase invoice. On a display-id
// uniqueness conflict the posting is retried exactly once with a randomly
// generated id.
func (s *PostingService) PostInvoice(ctx context.Context, kind billing.InvoiceKind, req PostInvoiceRequest) (*InvoiceResponse, error) {
	invoice, err := s.post(ctx, kind, req, "")
	if isDuplicateDisplayID(err) {
		invoice, err = s.post(ctx, kind, req, billing.RandomDisplayID(kind))
	}
	if err != nil {
		return nil, err
	}

	resp := ToInvoiceResponse(invoice)
	return &resp, nil
}

// post runs one posting attempt. An empty forcedDisplayID means the id is
// composed from the invoice contents.
func (s *PostingService) post(ctx context.Context, kind billing.InvoiceKind, req PostInvoiceRequest, forcedDisplayID string) (*billing.Invoice, error) {
	date, err := parseInvoiceDate(req.Date)
	if err != nil {
		return nil, err
	}

	var invoice *billing.Invoice
	err = s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		counterpartyName, err := resolveCounterparty(ctx, repos, kind, req.CounterpartyID)
		if err != nil {
			return err
		}

		products := make([]*catalog.Product, 0, len(req.Items))
		productNames := make([]string, 0, len(req.Items))
		for _, item := range req.Items {
			product, err := repos.Products().FindByID(ctx, item.ProductID)
			if err != nil {
				return err
			}
			if kind == billing.InvoiceKindSales && !product.HasStock(item.Quantity) {
				return shared.NewDomainError("INSUFFICIENT_STOCK",
					fmt.Sprintf("Insufficient stock for %s. Available: %d, Requested: %d",
						product.Name, product.Quantity, item.Quantity))
			}
			products = append(products, product)
			productNames = append(productNames, product.Name)
		}

		displayID := forcedDisplayID
		if displayID == "" {
			displayID = billing.ComposeDisplayID(kind, productNames, counterpartyName)
		}

		invoice, err = billing.NewInvoice(kind, displayID, req.CounterpartyID, counterpartyName, date, req.Notes)
		if err != nil {
			return err
		}

		for i, item := range req.Items {
			if _, err := invoice.AddItem(products[i].ID, products[i].Name, item.Quantity, item.Price); err != nil {
				return err
			}
		}

		if req.IsLoan {
			if err := invoice.MarkAsLoan(req.AmountPaid); err != nil {
				return err
			}
		}
		invoice.RecalculateTotals()

		if req.IsLoan && req.AmountPaid.GreaterThan(invoice.Total) {
			return shared.ErrOverpayment
		}

		for i, item := range req.Items {
			products[i].AdjustStock(invoice.StockDelta(item.Quantity))
			if err := repos.Products().Save(ctx, products[i]); err != nil {
				return err
			}
		}

		if err := repos.Invoices().Save(ctx, invoice); err != nil {
			return err
		}

		return s.recordLedgerEntries(ctx, repos, invoice)
	})
	if err != nil {
		return nil, err
	}
	return invoice, nil
}

// PostAutoPurchase posts the purchase invoice synthesized when a product
// is created with a supplier and initial stock. The stock adjustment is
// skipped: the product quantity already reflects the initial stock. A
// display-id collision is re-rolled once.
func (s *PostingService) PostAutoPurchase(ctx context.Context, req AutoPurchaseRequest) (*InvoiceResponse, error) {
	invoice, err := s.postAutoPurchase(ctx, req)
	if isDuplicateDisplayID(err) {
		invoice, err = s.postAutoPurchase(ctx, req)
	}
	if err != nil {
		return nil, err
	}

	resp := ToInvoiceResponse(invoice)
	return &resp, nil
}

func (s *PostingService) postAutoPurchase(ctx context.Context, req AutoPurchaseRequest) (*billing.Invoice, error) {
	var invoice *billing.Invoice
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		product, err := repos.Products().FindByID(ctx, req.ProductID)
		if err != nil {
			return err
		}
		supplier, err := repos.Suppliers().FindByID(ctx, req.SupplierID)
		if err != nil {
			return err
		}

		invoice, err = billing.NewInvoice(
			billing.InvoiceKindPurchase,
			billing.AutoPurchaseDisplayID(),
			supplier.ID,
			supplier.Name,
			time.Now(),
			fmt.Sprintf("Auto-generated for new product: %s", product.Name),
		)
		if err != nil {
			return err
		}

		if _, err := invoice.AddItem(product.ID, product.Name, product.Quantity, product.CostPrice); err != nil {
			return err
		}
		invoice.RecalculateTotals()

		if req.AmountPaid != nil && req.AmountPaid.LessThan(invoice.Total) {
			if err := invoice.MarkAsLoan(*req.AmountPaid); err != nil {
				return err
			}
			invoice.RecalculateTotals()
		}

		if err := repos.Invoices().Save(ctx, invoice); err != nil {
			return err
		}

		return s.recordLedgerEntries(ctx, repos, invoice)
	})
	if err != nil {
		return nil, err
	}
	return invoice, nil
}

// DeleteInvoice reverses the stock effect of every line item and removes
// the invoice with its items, all in one transaction. Ledger transactions
// recorded at posting time are deliberately left in place.
func (s *PostingService) DeleteInvoice(ctx context.Context, id uuid.UUID) error {
	return s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		invoice, err := repos.Invoices().FindByID(ctx, id)
		if err != nil {
			return err
		}

		for i := range invoice.Items {
			item := &invoice.Items[i]
			product, err := repos.Products().FindByID(ctx, item.ProductID)
			if err != nil {
				if errors.Is(err, shared.ErrNotFound) {
					continue
				}
				return err
			}
			product.AdjustStock(-invoice.StockDelta(item.Quantity))
			if err := repos.Products().Save(ctx, product); err != nil {
				return err
			}
		}

		return repos.Invoices().Delete(ctx, invoice.ID)
	})
}

// GetInvoice returns an invoice with its line items
func (s *PostingService) GetInvoice(ctx context.Context, id uuid.UUID) (*InvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToInvoiceResponse(invoice)
	return &resp, nil
}

// ListInvoices returns a page of invoices of the given kind, newest first
func (s *PostingService) ListInvoices(ctx context.Context, kind billing.InvoiceKind, filter InvoiceListFilter) (*shared.Paginated[InvoiceResponse], error) {
	f := shared.DefaultFilter()
	if filter.Page > 0 {
		f.Page = filter.Page
	}
	if filter.PageSize > 0 {
		f.PageSize = filter.PageSize
	}
	f.Search = filter.Search
	if filter.CounterpartyID != "" {
		f.Filters["counterparty_id"] = filter.CounterpartyID
	}
	if filter.Date != "" {
		f.Filters["date"] = filter.Date
	}

	invoices, err := s.invoiceRepo.FindAll(ctx, kind, f)
	if err != nil {
		return nil, err
	}
	total, err := s.invoiceRepo.Count(ctx, kind, f)
	if err != nil {
		return nil, err
	}

	items := make([]InvoiceResponse, 0, len(invoices))
	for i := range invoices {
		items = append(items, ToInvoiceResponse(&invoices[i]))
	}

	page := shared.NewPaginated(items, total, f.Page, f.PageSize)
	return &page, nil
}

// recordLedgerEntries appends the invoice's ledger transactions and refolds
// the ledger from its full history. The ledger is created on first use.
func (s *PostingService) recordLedgerEntries(ctx context.Context, repos TransactionalRepositories, invoice *billing.Invoice) error {
	partyType := ledger.PartyTypeCustomer
	txType := ledger.TransactionTypeSale
	if invoice.Kind == billing.InvoiceKindPurchase {
		partyType = ledger.PartyTypeSupplier
		txType = ledger.TransactionTypePurchase
	}

	acct, err := repos.Ledgers().FindByParty(ctx, partyType, invoice.CounterpartyID)
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			return err
		}
		acct, err = ledger.NewLedger(partyType, invoice.CounterpartyID, invoice.CounterpartyName)
		if err != nil {
			return err
		}
		if err := repos.Ledgers().Save(ctx, acct); err != nil {
			return err
		}
	}

	invoiceID := invoice.ID
	if invoice.Total.IsPositive() {
		tx, err := ledger.NewTransaction(acct.ID, txType, invoice.Total, &invoiceID,
			fmt.Sprintf("Invoice %s", invoice.DisplayID))
		if err != nil {
			return err
		}
		if err := repos.LedgerTransactions().Append(ctx, tx); err != nil {
			return err
		}
	}

	if invoice.AmountPaid.IsPositive() {
		tx, err := ledger.NewTransaction(acct.ID, ledger.TransactionTypePayment, invoice.AmountPaid, &invoiceID,
			fmt.Sprintf("Payment on invoice %s", invoice.DisplayID))
		if err != nil {
			return err
		}
		if err := repos.LedgerTransactions().Append(ctx, tx); err != nil {
			return err
		}
	}

	history, err := repos.LedgerTransactions().FindByLedger(ctx, acct.ID)
	if err != nil {
		return err
	}
	acct.Recompute(history)

	return repos.Ledgers().Save(ctx, acct)
}

func resolveCounterparty(ctx context.Context, repos TransactionalRepositories, kind billing.InvoiceKind, id uuid.UUID) (string, error) {
	if kind == billing.InvoiceKindSales {
		customer, err := repos.Customers().FindByID(ctx, id)
		if err != nil {
			return "", err
		}
		return customer.Name, nil
	}
	supplier, err := repos.Suppliers().FindByID(ctx, id)
	if err != nil {
		return "", err
	}
	return supplier.Name, nil
}

func parseInvoiceDate(value string) (time.Time, error) {
	if value == "" {
		return time.Now(), nil
	}
	date, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, shared.NewDomainError("INVALID_DATE", "Date must be in YYYY-MM-DD format")
	}
	return date, nil
}

func isDuplicateDisplayID(err error) bool {
	if err == nil {
		return false
	}
	var domainErr *shared.DomainError
	return errors.As(err, &domainErr) && domainErr.Code == "ALREADY_EXISTS"
}
