// Package models contains GORM-specific persistence models that map to
// database tables. The billing context keeps its domain entities free of ORM
// concerns, so InvoiceModel and InvoiceItemModel carry the GORM annotations
// and the mappers convert between the two shapes.
//
// Structure:
// - base.go: Base persistence models (BaseModel, AggregateModel)
// - billing.go: Billing context models (Invoice, InvoiceItem)
package models
