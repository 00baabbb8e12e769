package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/stockbook/backend/internal/domain/shared"
)

// InvoiceItem represents a line item in an invoice. The line total is
// fixed at creation time: quantity times unit price.
type InvoiceItem struct {
	ID          uuid.UUID
	InvoiceID   uuid.UUID
	ProductID   uuid.UUID
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	LineTotal   decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewInvoiceItem creates a new invoice line item
func NewInvoiceItem(invoiceID, productID uuid.UUID, productName string, quantity int, unitPrice decimal.Decimal) (*InvoiceItem, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if productName == "" {
		return nil, shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name cannot be empty")
	}
	if quantity < 1 {
		return nil, shared.ErrInvalidQuantity
	}
	if !unitPrice.IsPositive() {
		return nil, shared.ErrInvalidPrice
	}

	now := time.Now()
	return &InvoiceItem{
		ID:          uuid.New(),
		InvoiceID:   invoiceID,
		ProductID:   productID,
		ProductName: productName,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		LineTotal:   unitPrice.Mul(decimal.NewFromInt(int64(quantity))),
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}
