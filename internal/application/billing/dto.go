package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/stockbook/backend/internal/domain/billing"
)

// PostInvoiceItemRequest represents one line of an invoice to be posted
type PostInvoiceItemRequest struct {
	ProductID uuid.UUID       `json:"product_id" binding:"required"`
	Quantity  int             `json:"quantity" binding:"required,min=1"`
	Price     decimal.Decimal `json:"price" binding:"required"`
}

// PostInvoiceRequest represents a request to post a sales or purchase invoice
type PostInvoiceRequest struct {
	CounterpartyID uuid.UUID                `json:"counterparty_id" binding:"required"`
	Date           string                   `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Notes          string                   `json:"notes"`
	IsLoan         bool                     `json:"is_loan"`
	AmountPaid     decimal.Decimal          `json:"amount_paid"`
	Items          []PostInvoiceItemRequest `json:"items" binding:"required,min=1,dive"`
}

// AutoPurchaseRequest posts the purchase invoice synthesized for a newly
// created product's initial stock. The stock adjustment is skipped because
// the product quantity already reflects the initial stock.
type AutoPurchaseRequest struct {
	ProductID  uuid.UUID
	SupplierID uuid.UUID
	AmountPaid *decimal.Decimal
}

// AddPaymentRequest represents a repayment against a loan invoice
type AddPaymentRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
	Notes  string          `json:"notes"`
}

// InvoiceListFilter represents filter options for invoice lists
type InvoiceListFilter struct {
	CounterpartyID string `form:"counterparty_id" binding:"omitempty,uuid"`
	Date           string `form:"date" binding:"omitempty,datetime=2006-01-02"`
	Search         string `form:"search"`
	Page           int    `form:"page" binding:"omitempty,min=1"`
	PageSize       int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// InvoiceItemResponse represents a line item in API responses
type InvoiceItemResponse struct {
	ID          uuid.UUID       `json:"id"`
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Total       decimal.Decimal `json:"total"`
}

// InvoiceResponse represents an invoice in API responses
type InvoiceResponse struct {
	ID               uuid.UUID             `json:"id"`
	DisplayID        string                `json:"display_id"`
	Kind             string                `json:"kind"`
	CounterpartyID   uuid.UUID             `json:"counterparty_id"`
	CounterpartyName string                `json:"counterparty_name"`
	Date             string                `json:"date"`
	Items            []InvoiceItemResponse `json:"items"`
	Subtotal         decimal.Decimal       `json:"subtotal"`
	TaxRate          decimal.Decimal       `json:"tax_rate"`
	TaxAmount        decimal.Decimal       `json:"tax_amount"`
	Total            decimal.Decimal       `json:"total"`
	IsLoan           bool                  `json:"is_loan"`
	AmountPaid       decimal.Decimal       `json:"amount_paid"`
	RemainingBalance decimal.Decimal       `json:"remaining_balance"`
	PaymentStatus    string                `json:"payment_status"`
	Notes            string                `json:"notes"`
	CreatedAt        time.Time             `json:"created_at"`
	UpdatedAt        time.Time             `json:"updated_at"`
}

// LoanPaymentResponse represents a loan payment in API responses
type LoanPaymentResponse struct {
	ID          uuid.UUID       `json:"id"`
	InvoiceID   uuid.UUID       `json:"invoice_id"`
	Amount      decimal.Decimal `json:"amount"`
	Notes       string          `json:"notes"`
	PaymentDate time.Time       `json:"payment_date"`
}

// ToInvoiceResponse converts a domain Invoice to InvoiceResponse
func ToInvoiceResponse(inv *billing.Invoice) InvoiceResponse {
	items := make([]InvoiceItemResponse, 0, len(inv.Items))
	for i := range inv.Items {
		item := &inv.Items[i]
		items = append(items, InvoiceItemResponse{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Price:       item.UnitPrice,
			Total:       item.LineTotal,
		})
	}

	return InvoiceResponse{
		ID:               inv.ID,
		DisplayID:        inv.DisplayID,
		Kind:             inv.Kind.String(),
		CounterpartyID:   inv.CounterpartyID,
		CounterpartyName: inv.CounterpartyName,
		Date:             inv.Date.Format("2006-01-02"),
		Items:            items,
		Subtotal:         inv.Subtotal,
		TaxRate:          inv.TaxRate,
		TaxAmount:        inv.TaxAmount,
		Total:            inv.Total,
		IsLoan:           inv.IsLoan,
		AmountPaid:       inv.AmountPaid,
		RemainingBalance: inv.RemainingBalance,
		PaymentStatus:    string(inv.PaymentStatus),
		Notes:            inv.Notes,
		CreatedAt:        inv.CreatedAt,
		UpdatedAt:        inv.UpdatedAt,
	}
}

// ToLoanPaymentResponse converts a domain LoanPayment to LoanPaymentResponse
func ToLoanPaymentResponse(p *billing.LoanPayment) LoanPaymentResponse {
	return LoanPaymentResponse{
		ID:          p.ID,
		InvoiceID:   p.InvoiceID,
		Amount:      p.Amount,
		Notes:       p.Notes,
		PaymentDate: p.PaymentDate,
	}
}
