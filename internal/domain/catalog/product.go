package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/stockbook/backend/internal/domain/shared"
	"github.com/stockbook/backend/internal/domain/shared/valueobject"
)

// StockStatus represents the derived stock level of a product
type StockStatus string

const (
	StockStatusInStock    StockStatus = "in_stock"
	StockStatusLowStock   StockStatus = "low_stock"
	StockStatusOutOfStock StockStatus = "out_of_stock"
)

// DefaultLowStockThreshold is used when no threshold is provided
const DefaultLowStockThreshold = 10

// Product represents a stocked item in the catalog.
// It is the aggregate root for product-related operations.
type Product struct {
	shared.BaseAggregateRoot
	Name              string          `gorm:"type:varchar(200);not null"`
	Description       string          `gorm:"type:text"`
	Unit              Unit            `gorm:"type:varchar(20);not null"`
	SupplierID        *uuid.UUID      `gorm:"type:uuid;index"`
	CostPrice         decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	SalePrice         decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Quantity          int             `gorm:"not null;default:0"`
	LowStockThreshold int             `gorm:"not null;default:10"`
	Status            StockStatus     `gorm:"type:varchar(20);not null;default:'out_of_stock'"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product with an initial quantity.
// The stock status is derived from quantity and threshold.
func NewProduct(name string, unit Unit, costPrice, salePrice decimal.Decimal, quantity, lowStockThreshold int) (*Product, error) {
	if err := validateProductName(name); err != nil {
		return nil, err
	}
	if !unit.IsValid() {
		return nil, shared.NewDomainError("INVALID_UNIT", "Unknown unit of measure")
	}
	if !costPrice.IsPositive() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Cost price must be greater than zero")
	}
	if salePrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Sale price cannot be negative")
	}
	if quantity < 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity cannot be negative")
	}
	if lowStockThreshold < 0 {
		return nil, shared.NewDomainError("INVALID_THRESHOLD", "Low stock threshold cannot be negative")
	}

	product := &Product{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Unit:              unit,
		CostPrice:         costPrice,
		SalePrice:         salePrice,
		Quantity:          quantity,
		LowStockThreshold: lowStockThreshold,
	}
	product.refreshStatus()

	return product, nil
}

// Update updates the product's descriptive fields and prices
func (p *Product) Update(name, description string, unit Unit, costPrice, salePrice decimal.Decimal, lowStockThreshold int) error {
	if err := validateProductName(name); err != nil {
		return err
	}
	if !unit.IsValid() {
		return shared.NewDomainError("INVALID_UNIT", "Unknown unit of measure")
	}
	if !costPrice.IsPositive() {
		return shared.NewDomainError("INVALID_PRICE", "Cost price must be greater than zero")
	}
	if salePrice.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Sale price cannot be negative")
	}
	if lowStockThreshold < 0 {
		return shared.NewDomainError("INVALID_THRESHOLD", "Low stock threshold cannot be negative")
	}

	p.Name = name
	p.Description = description
	p.Unit = unit
	p.CostPrice = costPrice
	p.SalePrice = salePrice
	p.LowStockThreshold = lowStockThreshold
	p.refreshStatus()
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// AdjustStock applies a signed quantity delta and re-derives the stock
// status. Sales pass negative deltas, purchases positive ones. No floor
// is enforced here; availability is checked by the posting workflow.
func (p *Product) AdjustStock(delta int) {
	p.Quantity += delta
	p.refreshStatus()
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// HasStock returns true if at least qty units are available
func (p *Product) HasStock(qty int) bool {
	return p.Quantity >= qty
}

// IsLowStock returns true if the product is at or below its threshold
// but not out of stock
func (p *Product) IsLowStock() bool {
	return p.Status == StockStatusLowStock
}

// IsOutOfStock returns true if the product has no stock
func (p *Product) IsOutOfStock() bool {
	return p.Status == StockStatusOutOfStock
}

// GetCostPriceMoney returns the cost price as a Money value object
func (p *Product) GetCostPriceMoney() valueobject.Money {
	return valueobject.NewMoney(p.CostPrice)
}

// GetSalePriceMoney returns the sale price as a Money value object
func (p *Product) GetSalePriceMoney() valueobject.Money {
	return valueobject.NewMoney(p.SalePrice)
}

// refreshStatus re-derives the stock status from quantity and threshold
func (p *Product) refreshStatus() {
	switch {
	case p.Quantity == 0:
		p.Status = StockStatusOutOfStock
	case p.Quantity <= p.LowStockThreshold:
		p.Status = StockStatusLowStock
	default:
		p.Status = StockStatusInStock
	}
}

// validateProductName validates the product name
func validateProductName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot exceed 200 characters")
	}
	return nil
}
