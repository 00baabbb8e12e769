package billing

import (
	"context"

	"github.com/google/uuid"

	"github.com/stockbook/backend/internal/domain/billing"
)

// PaymentService records repayments against loan invoices. Recording a
// payment updates the invoice and appends a payment row atomically; it
// does not touch the counterparty ledger. The ledger reflects the payment
// state captured when the invoice was posted.
type PaymentService struct {
	scope       TransactionScope
	paymentRepo billing.LoanPaymentRepository
}

// NewPaymentService creates a new PaymentService
func NewPaymentService(scope TransactionScope, paymentRepo billing.LoanPaymentRepository) *PaymentService {
	return &PaymentService{
		scope:       scope,
		paymentRepo: paymentRepo,
	}
}

// AddPayment records a repayment against a loan invoice. Fails if the
// invoice is not a loan, the amount is not positive, or the payment would
// exceed the remaining balance.
func (s *PaymentService) AddPayment(ctx context.Context, invoiceID uuid.UUID, req AddPaymentRequest) (*InvoiceResponse, error) {
	var invoice *billing.Invoice
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		invoice, err = repos.Invoices().FindByID(ctx, invoiceID)
		if err != nil {
			return err
		}

		if err := invoice.ApplyPayment(req.Amount); err != nil {
			return err
		}

		payment, err := billing.NewLoanPayment(invoice.ID, req.Amount, req.Notes)
		if err != nil {
			return err
		}
		if err := repos.LoanPayments().Append(ctx, payment); err != nil {
			return err
		}

		return repos.Invoices().Save(ctx, invoice)
	})
	if err != nil {
		return nil, err
	}

	resp := ToInvoiceResponse(invoice)
	return &resp, nil
}

// ListPayments returns the payments recorded against an invoice, newest first
func (s *PaymentService) ListPayments(ctx context.Context, invoiceID uuid.UUID) ([]LoanPaymentResponse, error) {
	payments, err := s.paymentRepo.FindByInvoice(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	responses := make([]LoanPaymentResponse, 0, len(payments))
	for i := range payments {
		responses = append(responses, ToLoanPaymentResponse(&payments[i]))
	}
	return responses, nil
}
