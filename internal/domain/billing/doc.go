// Package billing holds the invoicing domain model.
//
// A single Invoice aggregate covers both sales and purchase documents,
// distinguished by kind. The aggregate owns its line items and derives
// subtotal, tax and total from them. An invoice may additionally carry a
// loan sub-record (amount paid, remaining balance, payment status) when
// the counterparty did not settle in full at posting time.
//
// Key types:
//   - Invoice: the aggregate root, with totals recalculation and loan rules
//   - InvoiceItem: a quantity-times-price line owned by the invoice
//   - LoanPayment: an append-only repayment record against a loan invoice
//   - DisplayID: the human-facing invoice number composed from the
//     counterparty name and date
//
// Stock movement and ledger recording are orchestrated outside this
// package by the posting workflow; the aggregate only enforces its own
// arithmetic and payment invariants.
package billing
