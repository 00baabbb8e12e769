package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/stockbook/backend/internal/domain/ledger"
)

// LedgerResponse represents a counterparty account in API responses
type LedgerResponse struct {
	ID            uuid.UUID       `json:"id"`
	PartyType     string          `json:"party_type"`
	PartyID       uuid.UUID       `json:"party_id"`
	PartyName     string          `json:"party_name"`
	Balance       decimal.Decimal `json:"balance"`
	TotalInvoiced decimal.Decimal `json:"total_invoiced"`
	TotalPayments decimal.Decimal `json:"total_payments"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// TransactionResponse represents a single ledger entry
type TransactionResponse struct {
	ID              uuid.UUID       `json:"id"`
	LedgerID        uuid.UUID       `json:"ledger_id"`
	Type            string          `json:"type"`
	Amount          decimal.Decimal `json:"amount"`
	SignedAmount    decimal.Decimal `json:"signed_amount"`
	InvoiceID       *uuid.UUID      `json:"invoice_id,omitempty"`
	Description     string          `json:"description"`
	TransactionDate time.Time       `json:"transaction_date"`
}

// LedgerListFilter contains filtering options for listing ledgers
type LedgerListFilter struct {
	PartyType string `form:"party_type" binding:"omitempty,oneof=customer supplier"`
	Search    string `form:"search"`
	Page      int    `form:"page" binding:"omitempty,min=1"`
	PageSize  int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// TransactionListFilter contains pagination options for a ledger's history
type TransactionListFilter struct {
	Page     int `form:"page" binding:"omitempty,min=1"`
	PageSize int `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// ToLedgerResponse converts a ledger aggregate to a response DTO
func ToLedgerResponse(l *ledger.Ledger) LedgerResponse {
	return LedgerResponse{
		ID:            l.ID,
		PartyType:     string(l.PartyType),
		PartyID:       l.PartyID,
		PartyName:     l.PartyName,
		Balance:       l.Balance,
		TotalInvoiced: l.TotalInvoiced,
		TotalPayments: l.TotalPayments,
		UpdatedAt:     l.UpdatedAt,
	}
}

// ToTransactionResponse converts a ledger transaction to a response DTO
func ToTransactionResponse(tx *ledger.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:              tx.ID,
		LedgerID:        tx.LedgerID,
		Type:            string(tx.Type),
		Amount:          tx.Amount,
		SignedAmount:    tx.SignedAmount(),
		InvoiceID:       tx.InvoiceID,
		Description:     tx.Description,
		TransactionDate: tx.TransactionDate,
	}
}
