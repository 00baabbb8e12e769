package handler

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	billingapp "github.com/stockbook/backend/internal/application/billing"
	catalogapp "github.com/stockbook/backend/internal/application/catalog"
	ledgerapp "github.com/stockbook/backend/internal/application/ledger"
	partnerapp "github.com/stockbook/backend/internal/application/partner"
	"github.com/stockbook/backend/internal/domain/billing"
	"github.com/stockbook/backend/internal/domain/catalog"
	"github.com/stockbook/backend/internal/domain/ledger"
	"github.com/stockbook/backend/internal/domain/partner"
	"github.com/stockbook/backend/internal/domain/shared"
	"github.com/stockbook/backend/internal/interfaces/http/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()
}

// In-memory repositories backing a NoOpTransactionScope, so handler tests
// run the real application services end to end over HTTP.

type memProductRepo struct {
	products map[uuid.UUID]*catalog.Product
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{products: make(map[uuid.UUID]*catalog.Product)}
}

func (r *memProductRepo) FindByID(_ context.Context, id uuid.UUID) (*catalog.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *memProductRepo) FindByIDs(_ context.Context, ids []uuid.UUID) ([]catalog.Product, error) {
	out := make([]catalog.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := r.products[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *memProductRepo) FindAll(_ context.Context, filter shared.Filter) ([]catalog.Product, error) {
	out := make([]catalog.Product, 0, len(r.products))
	for _, p := range r.products {
		if filter.Search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(filter.Search)) {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

func (r *memProductRepo) FindByStatus(_ context.Context, status catalog.StockStatus, _ shared.Filter) ([]catalog.Product, error) {
	out := []catalog.Product{}
	for _, p := range r.products {
		if p.Status == status {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *memProductRepo) FindLowStock(_ context.Context, _ shared.Filter) ([]catalog.Product, error) {
	out := []catalog.Product{}
	for _, p := range r.products {
		if p.Status != catalog.StockStatusInStock {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *memProductRepo) Save(_ context.Context, p *catalog.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.products, id)
	return nil
}

func (r *memProductRepo) Count(_ context.Context, _ shared.Filter) (int64, error) {
	return int64(len(r.products)), nil
}

func (r *memProductRepo) CountByStatus(_ context.Context, status catalog.StockStatus) (int64, error) {
	var n int64
	for _, p := range r.products {
		if p.Status == status {
			n++
		}
	}
	return n, nil
}

type memCustomerRepo struct {
	customers map[uuid.UUID]*partner.Customer
}

func (r *memCustomerRepo) FindByID(_ context.Context, id uuid.UUID) (*partner.Customer, error) {
	c, ok := r.customers[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return c, nil
}

func (r *memCustomerRepo) FindAll(_ context.Context, _ shared.Filter) ([]partner.Customer, error) {
	out := make([]partner.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		out = append(out, *c)
	}
	return out, nil
}

func (r *memCustomerRepo) Save(_ context.Context, c *partner.Customer) error {
	r.customers[c.ID] = c
	return nil
}

func (r *memCustomerRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.customers, id)
	return nil
}

func (r *memCustomerRepo) Count(_ context.Context, _ shared.Filter) (int64, error) {
	return int64(len(r.customers)), nil
}

type memSupplierRepo struct {
	suppliers map[uuid.UUID]*partner.Supplier
}

func (r *memSupplierRepo) FindByID(_ context.Context, id uuid.UUID) (*partner.Supplier, error) {
	s, ok := r.suppliers[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return s, nil
}

func (r *memSupplierRepo) FindAll(_ context.Context, _ shared.Filter) ([]partner.Supplier, error) {
	out := make([]partner.Supplier, 0, len(r.suppliers))
	for _, s := range r.suppliers {
		out = append(out, *s)
	}
	return out, nil
}

func (r *memSupplierRepo) Save(_ context.Context, s *partner.Supplier) error {
	r.suppliers[s.ID] = s
	return nil
}

func (r *memSupplierRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.suppliers, id)
	return nil
}

func (r *memSupplierRepo) Count(_ context.Context, _ shared.Filter) (int64, error) {
	return int64(len(r.suppliers)), nil
}

type memInvoiceRepo struct {
	invoices map[uuid.UUID]*billing.Invoice
}

func newMemInvoiceRepo() *memInvoiceRepo {
	return &memInvoiceRepo{invoices: make(map[uuid.UUID]*billing.Invoice)}
}

func (r *memInvoiceRepo) FindByID(_ context.Context, id uuid.UUID) (*billing.Invoice, error) {
	inv, ok := r.invoices[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return inv, nil
}

func (r *memInvoiceRepo) FindByDisplayID(_ context.Context, kind billing.InvoiceKind, displayID string) (*billing.Invoice, error) {
	for _, inv := range r.invoices {
		if inv.Kind == kind && inv.DisplayID == displayID {
			return inv, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *memInvoiceRepo) FindAll(_ context.Context, kind billing.InvoiceKind, _ shared.Filter) ([]billing.Invoice, error) {
	out := []billing.Invoice{}
	for _, inv := range r.invoices {
		if inv.Kind == kind {
			out = append(out, *inv)
		}
	}
	return out, nil
}

func (r *memInvoiceRepo) Save(_ context.Context, inv *billing.Invoice) error {
	for _, existing := range r.invoices {
		if existing.ID != inv.ID && existing.Kind == inv.Kind && existing.DisplayID == inv.DisplayID {
			return shared.ErrAlreadyExists
		}
	}
	r.invoices[inv.ID] = inv
	return nil
}

func (r *memInvoiceRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.invoices, id)
	return nil
}

func (r *memInvoiceRepo) Count(_ context.Context, kind billing.InvoiceKind, _ shared.Filter) (int64, error) {
	var n int64
	for _, inv := range r.invoices {
		if inv.Kind == kind {
			n++
		}
	}
	return n, nil
}

type memPaymentRepo struct {
	payments []billing.LoanPayment
}

func (r *memPaymentRepo) Append(_ context.Context, p *billing.LoanPayment) error {
	r.payments = append(r.payments, *p)
	return nil
}

func (r *memPaymentRepo) FindByInvoice(_ context.Context, invoiceID uuid.UUID) ([]billing.LoanPayment, error) {
	out := []billing.LoanPayment{}
	for _, p := range r.payments {
		if p.InvoiceID == invoiceID {
			out = append(out, p)
		}
	}
	return out, nil
}

type memLedgerRepo struct {
	ledgers map[uuid.UUID]*ledger.Ledger
}

func newMemLedgerRepo() *memLedgerRepo {
	return &memLedgerRepo{ledgers: make(map[uuid.UUID]*ledger.Ledger)}
}

func (r *memLedgerRepo) FindByID(_ context.Context, id uuid.UUID) (*ledger.Ledger, error) {
	l, ok := r.ledgers[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return l, nil
}

func (r *memLedgerRepo) FindByParty(_ context.Context, partyType ledger.PartyType, partyID uuid.UUID) (*ledger.Ledger, error) {
	for _, l := range r.ledgers {
		if l.PartyType == partyType && l.PartyID == partyID {
			return l, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *memLedgerRepo) FindAll(_ context.Context, _ shared.Filter) ([]ledger.Ledger, error) {
	out := make([]ledger.Ledger, 0, len(r.ledgers))
	for _, l := range r.ledgers {
		out = append(out, *l)
	}
	return out, nil
}

func (r *memLedgerRepo) Save(_ context.Context, l *ledger.Ledger) error {
	r.ledgers[l.ID] = l
	return nil
}

func (r *memLedgerRepo) Count(_ context.Context, _ shared.Filter) (int64, error) {
	return int64(len(r.ledgers)), nil
}

type memLedgerTxRepo struct {
	txs []ledger.Transaction
}

func (r *memLedgerTxRepo) Append(_ context.Context, tx *ledger.Transaction) error {
	r.txs = append(r.txs, *tx)
	return nil
}

func (r *memLedgerTxRepo) FindByLedger(_ context.Context, ledgerID uuid.UUID) ([]ledger.Transaction, error) {
	out := []ledger.Transaction{}
	for _, tx := range r.txs {
		if tx.LedgerID == ledgerID {
			out = append(out, tx)
		}
	}
	return out, nil
}

func (r *memLedgerTxRepo) FindByLedgerPaged(_ context.Context, ledgerID uuid.UUID, _ shared.Filter) ([]ledger.Transaction, int64, error) {
	txs, _ := r.FindByLedger(context.Background(), ledgerID)
	return txs, int64(len(txs)), nil
}

// handlerEnv wires real services over in-memory repositories and exposes
// them through a router with the production route layout.
type handlerEnv struct {
	router *gin.Engine

	products  *memProductRepo
	customers *memCustomerRepo
	suppliers *memSupplierRepo
	invoices  *memInvoiceRepo
	payments  *memPaymentRepo
	ledgers   *memLedgerRepo

	customer *partner.Customer
	supplier *partner.Supplier
}

func newHandlerEnv(t *testing.T) *handlerEnv {
	t.Helper()

	customer, err := partner.NewCustomer("Acme Retail", "", "", "", "")
	require.NoError(t, err)
	supplier, err := partner.NewSupplier("Mills Co", "", "", "", "")
	require.NoError(t, err)

	env := &handlerEnv{
		products:  newMemProductRepo(),
		customers: &memCustomerRepo{customers: map[uuid.UUID]*partner.Customer{customer.ID: customer}},
		suppliers: &memSupplierRepo{suppliers: map[uuid.UUID]*partner.Supplier{supplier.ID: supplier}},
		invoices:  newMemInvoiceRepo(),
		payments:  &memPaymentRepo{},
		ledgers:   newMemLedgerRepo(),
		customer:  customer,
		supplier:  supplier,
	}

	ledgerTxs := &memLedgerTxRepo{}
	scope := billingapp.NewNoOpTransactionScope(
		env.products, env.customers, env.suppliers,
		env.invoices, env.payments, env.ledgers, ledgerTxs,
	)

	postingService := billingapp.NewPostingService(scope, env.invoices)
	paymentService := billingapp.NewPaymentService(scope, env.payments)
	productService := catalogapp.NewProductService(env.products, postingService)
	customerService := partnerapp.NewCustomerService(env.customers, env.ledgers)
	supplierService := partnerapp.NewSupplierService(env.suppliers, env.ledgers)
	ledgerService := ledgerapp.NewLedgerService(env.ledgers, ledgerTxs)

	productHandler := NewProductHandler(productService)
	customerHandler := NewCustomerHandler(customerService)
	supplierHandler := NewSupplierHandler(supplierService)
	invoiceHandler := NewInvoiceHandler(postingService, paymentService)
	ledgerHandler := NewLedgerHandler(ledgerService)

	router := gin.New()
	v1 := router.Group("/api/v1")

	products := v1.Group("/catalog/products")
	products.POST("", productHandler.Create)
	products.GET("", productHandler.List)
	products.GET("/low-stock", productHandler.ListLowStock)
	products.GET("/:id", productHandler.Get)
	products.PUT("/:id", productHandler.Update)
	products.DELETE("/:id", productHandler.Delete)

	customers := v1.Group("/partner/customers")
	customers.POST("", customerHandler.Create)
	customers.GET("", customerHandler.List)
	customers.GET("/:id", customerHandler.Get)
	customers.PUT("/:id", customerHandler.Update)
	customers.DELETE("/:id", customerHandler.Delete)

	suppliers := v1.Group("/partner/suppliers")
	suppliers.POST("", supplierHandler.Create)
	suppliers.GET("", supplierHandler.List)
	suppliers.GET("/:id", supplierHandler.Get)
	suppliers.PUT("/:id", supplierHandler.Update)
	suppliers.DELETE("/:id", supplierHandler.Delete)

	billingGroup := v1.Group("/billing")
	billingGroup.POST("/sales-invoices", invoiceHandler.PostSales)
	billingGroup.GET("/sales-invoices", invoiceHandler.ListSales)
	billingGroup.POST("/purchase-invoices", invoiceHandler.PostPurchase)
	billingGroup.GET("/purchase-invoices", invoiceHandler.ListPurchases)
	billingGroup.GET("/invoices/:id", invoiceHandler.Get)
	billingGroup.DELETE("/invoices/:id", invoiceHandler.Delete)
	billingGroup.POST("/invoices/:id/payments", invoiceHandler.AddPayment)
	billingGroup.GET("/invoices/:id/payments", invoiceHandler.ListPayments)

	ledgers := v1.Group("/ledgers")
	ledgers.GET("", ledgerHandler.List)
	ledgers.GET("/:id", ledgerHandler.Get)
	ledgers.GET("/:id/transactions", ledgerHandler.ListTransactions)
	ledgers.GET("/party/:party_type/:party_id", ledgerHandler.GetByParty)

	env.router = router
	return env
}

func (env *handlerEnv) request(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func (env *handlerEnv) seedProduct(t *testing.T, name string, quantity int) *catalog.Product {
	t.Helper()
	product, err := catalog.NewProduct(name, catalog.UnitKilogram,
		decimal.NewFromInt(40), decimal.NewFromInt(55), quantity, 10)
	require.NoError(t, err)
	require.NoError(t, env.products.Save(context.Background(), product))
	return product
}

func (env *handlerEnv) getProduct(t *testing.T, id uuid.UUID) *catalog.Product {
	t.Helper()
	p, err := env.products.FindByID(context.Background(), id)
	require.NoError(t, err)
	return p
}

func assertStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	require.Equal(t, want, w.Code, "body: %s", w.Body.String())
}
