package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/stockbook/backend/internal/domain/catalog"
)

// CreateProductRequest is the request to create a product
type CreateProductRequest struct {
	Name              string           `json:"name" binding:"required,max=200"`
	Description       string           `json:"description"`
	Unit              string           `json:"unit" binding:"required"`
	CostPrice         decimal.Decimal  `json:"cost_price" binding:"required"`
	SalePrice         decimal.Decimal  `json:"sale_price"`
	Quantity          int              `json:"quantity"`
	LowStockThreshold *int             `json:"low_stock_threshold"`
	SupplierID        *uuid.UUID       `json:"supplier_id"`
	AmountPaid        *decimal.Decimal `json:"amount_paid"`
}

// UpdateProductRequest is the request to update a product
type UpdateProductRequest struct {
	Name              string          `json:"name" binding:"required,max=200"`
	Description       string          `json:"description"`
	Unit              string          `json:"unit" binding:"required"`
	CostPrice         decimal.Decimal `json:"cost_price" binding:"required"`
	SalePrice         decimal.Decimal `json:"sale_price"`
	Quantity          *int            `json:"quantity"`
	LowStockThreshold *int            `json:"low_stock_threshold"`
	SupplierID        *uuid.UUID      `json:"supplier_id"`
}

// ProductListFilter contains filtering options for listing products
type ProductListFilter struct {
	Search     string `form:"search"`
	Status     string `form:"status" binding:"omitempty,oneof=in_stock low_stock out_of_stock"`
	SupplierID string `form:"supplier_id" binding:"omitempty,uuid"`
	Page       int    `form:"page" binding:"omitempty,min=1"`
	PageSize   int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// ProductResponse is the response containing product data
type ProductResponse struct {
	ID                uuid.UUID       `json:"id"`
	Name              string          `json:"name"`
	Description       string          `json:"description"`
	Unit              string          `json:"unit"`
	CostPrice         decimal.Decimal `json:"cost_price"`
	SalePrice         decimal.Decimal `json:"sale_price"`
	Quantity          int             `json:"quantity"`
	LowStockThreshold int             `json:"low_stock_threshold"`
	SupplierID        *uuid.UUID      `json:"supplier_id,omitempty"`
	Status            string          `json:"status"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// CreateProductResponse bundles the new product with the purchase invoice
// that was booked for its opening stock, when one was requested.
type CreateProductResponse struct {
	Product           ProductResponse `json:"product"`
	PurchaseInvoiceID *uuid.UUID      `json:"purchase_invoice_id,omitempty"`
}

// ToProductResponse converts a product aggregate to a response DTO
func ToProductResponse(p *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:                p.ID,
		Name:              p.Name,
		Description:       p.Description,
		Unit:              string(p.Unit),
		CostPrice:         p.CostPrice,
		SalePrice:         p.SalePrice,
		Quantity:          p.Quantity,
		LowStockThreshold: p.LowStockThreshold,
		SupplierID:        p.SupplierID,
		Status:            string(p.Status),
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}
