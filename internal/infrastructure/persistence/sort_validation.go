package persistence

import (
	"strings"
)

// ValidateSortOrder validates and normalizes the sort order to ASC or DESC.
// Returns "DESC" as the default if the input is invalid or empty.
func ValidateSortOrder(orderDir string) string {
	normalized := strings.ToUpper(strings.TrimSpace(orderDir))
	if normalized == "ASC" {
		return "ASC"
	}
	return "DESC"
}

// ValidateSortField validates the sort field against a whitelist of allowed
// fields. Returns the defaultField if the input is empty or not whitelisted.
func ValidateSortField(sortField string, allowedFields map[string]bool, defaultField string) string {
	trimmed := strings.TrimSpace(sortField)
	if trimmed == "" {
		return defaultField
	}
	if allowedFields[trimmed] {
		return trimmed
	}
	return defaultField
}

// CommonSortFields contains fields common to most entities
var CommonSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
}

// ProductSortFields contains allowed sort fields for products
var ProductSortFields = map[string]bool{
	"id":                  true,
	"created_at":          true,
	"updated_at":          true,
	"name":                true,
	"unit":                true,
	"cost_price":          true,
	"sale_price":          true,
	"quantity":            true,
	"low_stock_threshold": true,
	"status":              true,
}

// PartySortFields contains allowed sort fields for customers and suppliers
var PartySortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"name":       true,
	"phone":      true,
	"email":      true,
}

// InvoiceSortFields contains allowed sort fields for invoices
var InvoiceSortFields = map[string]bool{
	"id":                true,
	"created_at":        true,
	"updated_at":        true,
	"display_id":        true,
	"date":              true,
	"counterparty_name": true,
	"total":             true,
	"payment_status":    true,
}

// LedgerSortFields contains allowed sort fields for ledgers
var LedgerSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"party_name": true,
	"party_type": true,
	"balance":    true,
}

// LedgerTransactionSortFields contains allowed sort fields for ledger transactions
var LedgerTransactionSortFields = map[string]bool{
	"id":               true,
	"created_at":       true,
	"transaction_date": true,
	"type":             true,
	"amount":           true,
}
