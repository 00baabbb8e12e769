package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/stockbook/backend/internal/domain/shared"
)

// InvoiceKind distinguishes sales invoices from purchase invoices
type InvoiceKind string

const (
	InvoiceKindSales    InvoiceKind = "sales"
	InvoiceKindPurchase InvoiceKind = "purchase"
)

// IsValid returns true if the kind is a known invoice kind
func (k InvoiceKind) IsValid() bool {
	return k == InvoiceKindSales || k == InvoiceKindPurchase
}

// String returns the kind as a string
func (k InvoiceKind) String() string {
	return string(k)
}

// PaymentStatus represents the loan settlement state of an invoice
type PaymentStatus string

const (
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusPartial PaymentStatus = "partial"
	PaymentStatusUnpaid  PaymentStatus = "unpaid"
)

// Invoice represents a sales or purchase invoice aggregate root. The two
// kinds share one shape; the kind decides the stock direction and which
// party the counterparty fields refer to.
type Invoice struct {
	shared.BaseAggregateRoot
	DisplayID        string
	Kind             InvoiceKind
	CounterpartyID   uuid.UUID
	CounterpartyName string
	Date             time.Time
	Items            []InvoiceItem
	Subtotal         decimal.Decimal
	TaxRate          decimal.Decimal // Kept for historical data, always zero
	TaxAmount        decimal.Decimal
	Total            decimal.Decimal
	IsLoan           bool
	AmountPaid       decimal.Decimal
	RemainingBalance decimal.Decimal
	PaymentStatus    PaymentStatus
	Notes            string
}

// NewInvoice creates a new invoice header. Tax is forced to zero
// regardless of what the caller supplies elsewhere.
func NewInvoice(kind InvoiceKind, displayID string, counterpartyID uuid.UUID, counterpartyName string, date time.Time, notes string) (*Invoice, error) {
	if !kind.IsValid() {
		return nil, shared.NewDomainError("INVALID_KIND", "Invoice kind must be 'sales' or 'purchase'")
	}
	if displayID == "" {
		return nil, shared.NewDomainError("INVALID_DISPLAY_ID", "Display ID cannot be empty")
	}
	if len([]rune(displayID)) > DisplayIDMaxLen {
		return nil, shared.NewDomainError("INVALID_DISPLAY_ID", "Display ID cannot exceed 50 characters")
	}
	if counterpartyID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_COUNTERPARTY", "Counterparty ID cannot be empty")
	}
	if counterpartyName == "" {
		return nil, shared.NewDomainError("INVALID_COUNTERPARTY", "Counterparty name cannot be empty")
	}
	if date.IsZero() {
		date = time.Now()
	}

	return &Invoice{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		DisplayID:         displayID,
		Kind:              kind,
		CounterpartyID:    counterpartyID,
		CounterpartyName:  counterpartyName,
		Date:              date,
		Items:             make([]InvoiceItem, 0),
		Subtotal:          decimal.Zero,
		TaxRate:           decimal.Zero,
		TaxAmount:         decimal.Zero,
		Total:             decimal.Zero,
		AmountPaid:        decimal.Zero,
		RemainingBalance:  decimal.Zero,
		PaymentStatus:     PaymentStatusPaid,
		Notes:             notes,
	}, nil
}

// AddItem appends a line item to the invoice. Quantities are whole units
// and must be at least 1; the price must be positive.
func (inv *Invoice) AddItem(productID uuid.UUID, productName string, quantity int, unitPrice decimal.Decimal) (*InvoiceItem, error) {
	item, err := NewInvoiceItem(inv.ID, productID, productName, quantity, unitPrice)
	if err != nil {
		return nil, err
	}

	inv.Items = append(inv.Items, *item)
	inv.UpdatedAt = time.Now()

	return item, nil
}

// MarkAsLoan flags the invoice as a loan with the given up-front payment.
// Call RecalculateTotals afterwards to derive the payment status.
func (inv *Invoice) MarkAsLoan(amountPaid decimal.Decimal) error {
	if amountPaid.IsNegative() {
		return shared.NewDomainError("INVALID_AMOUNT", "Amount paid cannot be negative")
	}

	inv.IsLoan = true
	inv.AmountPaid = amountPaid
	inv.UpdatedAt = time.Now()

	return nil
}

// RecalculateTotals folds the line items into the invoice totals and
// derives the loan payment state. Tax is always zero, so the total equals
// the subtotal. For non-loan invoices the amount paid snaps to the total.
func (inv *Invoice) RecalculateTotals() {
	subtotal := decimal.Zero
	for i := range inv.Items {
		subtotal = subtotal.Add(inv.Items[i].LineTotal)
	}

	inv.Subtotal = subtotal
	inv.TaxAmount = decimal.Zero
	inv.Total = subtotal

	if inv.IsLoan {
		inv.RemainingBalance = inv.Total.Sub(inv.AmountPaid)
		switch {
		case inv.AmountPaid.GreaterThanOrEqual(inv.Total):
			inv.PaymentStatus = PaymentStatusPaid
			inv.RemainingBalance = decimal.Zero
		case inv.AmountPaid.IsPositive():
			inv.PaymentStatus = PaymentStatusPartial
		default:
			inv.PaymentStatus = PaymentStatusUnpaid
		}
	} else {
		inv.AmountPaid = inv.Total
		inv.RemainingBalance = decimal.Zero
		inv.PaymentStatus = PaymentStatusPaid
	}

	inv.UpdatedAt = time.Now()
}

// ApplyPayment records a repayment against a loan invoice and refreshes
// the totals. Overpaying the remaining balance is rejected.
func (inv *Invoice) ApplyPayment(amount decimal.Decimal) error {
	if !inv.IsLoan {
		return shared.ErrNotLoan
	}
	if !amount.IsPositive() {
		return shared.ErrInvalidAmount
	}
	if inv.AmountPaid.Add(amount).GreaterThan(inv.Total) {
		return shared.ErrOverpayment
	}

	inv.AmountPaid = inv.AmountPaid.Add(amount)
	inv.RecalculateTotals()
	inv.IncrementVersion()

	return nil
}

// StockDelta returns the signed stock movement a quantity of this
// invoice's kind causes: sales deplete stock, purchases replenish it.
func (inv *Invoice) StockDelta(quantity int) int {
	if inv.Kind == InvoiceKindSales {
		return -quantity
	}
	return quantity
}

// ItemCount returns the number of line items
func (inv *Invoice) ItemCount() int {
	return len(inv.Items)
}

// IsPaid returns true if the invoice is fully settled
func (inv *Invoice) IsPaid() bool {
	return inv.PaymentStatus == PaymentStatusPaid
}
