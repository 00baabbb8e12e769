package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/stockbook/backend/internal/domain/billing"
	"github.com/stockbook/backend/internal/domain/shared"
)

// InvoiceModel is the persistence model for the Invoice aggregate root.
type InvoiceModel struct {
	AggregateModel
	DisplayID        string                `gorm:"type:varchar(50);not null;uniqueIndex:idx_invoice_kind_display,priority:2"`
	Kind             billing.InvoiceKind   `gorm:"type:varchar(20);not null;uniqueIndex:idx_invoice_kind_display,priority:1"`
	CounterpartyID   uuid.UUID             `gorm:"type:uuid;not null;index"`
	CounterpartyName string                `gorm:"type:varchar(200);not null"`
	Date             time.Time             `gorm:"not null;index"`
	Items            []InvoiceItemModel    `gorm:"foreignKey:InvoiceID;references:ID"`
	Subtotal         decimal.Decimal       `gorm:"type:decimal(18,4);not null;default:0"`
	TaxRate          decimal.Decimal       `gorm:"type:decimal(8,4);not null;default:0"`
	TaxAmount        decimal.Decimal       `gorm:"type:decimal(18,4);not null;default:0"`
	Total            decimal.Decimal       `gorm:"type:decimal(18,4);not null;default:0"`
	IsLoan           bool                  `gorm:"not null;default:false"`
	AmountPaid       decimal.Decimal       `gorm:"type:decimal(18,4);not null;default:0"`
	RemainingBalance decimal.Decimal       `gorm:"type:decimal(18,4);not null;default:0"`
	PaymentStatus    billing.PaymentStatus `gorm:"type:varchar(20);not null;default:'paid'"`
	Notes            string                `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (InvoiceModel) TableName() string {
	return "invoices"
}

// ToDomain converts the persistence model to a domain Invoice.
func (m *InvoiceModel) ToDomain() *billing.Invoice {
	inv := &billing.Invoice{
		BaseAggregateRoot: shared.BaseAggregateRoot{
			BaseEntity: shared.BaseEntity{
				ID:        m.ID,
				CreatedAt: m.CreatedAt,
				UpdatedAt: m.UpdatedAt,
			},
			Version: m.Version,
		},
		DisplayID:        m.DisplayID,
		Kind:             m.Kind,
		CounterpartyID:   m.CounterpartyID,
		CounterpartyName: m.CounterpartyName,
		Date:             m.Date,
		Subtotal:         m.Subtotal,
		TaxRate:          m.TaxRate,
		TaxAmount:        m.TaxAmount,
		Total:            m.Total,
		IsLoan:           m.IsLoan,
		AmountPaid:       m.AmountPaid,
		RemainingBalance: m.RemainingBalance,
		PaymentStatus:    m.PaymentStatus,
		Notes:            m.Notes,
		Items:            make([]billing.InvoiceItem, len(m.Items)),
	}
	for i, item := range m.Items {
		inv.Items[i] = *item.ToDomain()
	}
	return inv
}

// FromDomain populates the persistence model from a domain Invoice.
func (m *InvoiceModel) FromDomain(inv *billing.Invoice) {
	m.FromDomainAggregateRoot(inv.BaseAggregateRoot)
	m.DisplayID = inv.DisplayID
	m.Kind = inv.Kind
	m.CounterpartyID = inv.CounterpartyID
	m.CounterpartyName = inv.CounterpartyName
	m.Date = inv.Date
	m.Subtotal = inv.Subtotal
	m.TaxRate = inv.TaxRate
	m.TaxAmount = inv.TaxAmount
	m.Total = inv.Total
	m.IsLoan = inv.IsLoan
	m.AmountPaid = inv.AmountPaid
	m.RemainingBalance = inv.RemainingBalance
	m.PaymentStatus = inv.PaymentStatus
	m.Notes = inv.Notes
	m.Items = make([]InvoiceItemModel, len(inv.Items))
	for i, item := range inv.Items {
		m.Items[i] = *InvoiceItemModelFromDomain(&item)
	}
}

// InvoiceModelFromDomain creates a new persistence model from a domain Invoice.
func InvoiceModelFromDomain(inv *billing.Invoice) *InvoiceModel {
	m := &InvoiceModel{}
	m.FromDomain(inv)
	return m
}

// InvoiceItemModel is the persistence model for the InvoiceItem entity.
type InvoiceItemModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key"`
	InvoiceID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductName string          `gorm:"type:varchar(200);not null"`
	Quantity    int             `gorm:"not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	LineTotal   decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (InvoiceItemModel) TableName() string {
	return "invoice_items"
}

// ToDomain converts the persistence model to a domain InvoiceItem.
func (m *InvoiceItemModel) ToDomain() *billing.InvoiceItem {
	return &billing.InvoiceItem{
		ID:          m.ID,
		InvoiceID:   m.InvoiceID,
		ProductID:   m.ProductID,
		ProductName: m.ProductName,
		Quantity:    m.Quantity,
		UnitPrice:   m.UnitPrice,
		LineTotal:   m.LineTotal,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// InvoiceItemModelFromDomain creates a new persistence model from a domain InvoiceItem.
func InvoiceItemModelFromDomain(item *billing.InvoiceItem) *InvoiceItemModel {
	return &InvoiceItemModel{
		ID:          item.ID,
		InvoiceID:   item.InvoiceID,
		ProductID:   item.ProductID,
		ProductName: item.ProductName,
		Quantity:    item.Quantity,
		UnitPrice:   item.UnitPrice,
		LineTotal:   item.LineTotal,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}
