package shared

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrNotFound            = NewDomainError("NOT_FOUND", "Resource not found")
	ErrAlreadyExists       = NewDomainError("ALREADY_EXISTS", "Resource already exists")
	ErrInvalidInput        = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrConcurrencyConflict = NewDomainError("CONCURRENCY_CONFLICT", "Resource was modified by another process")
	ErrUnauthorized        = NewDomainError("UNAUTHORIZED", "Not authorized to perform this action")
	ErrInvalidState        = NewDomainError("INVALID_STATE", "Operation not allowed in current state")
	ErrInsufficientStock   = NewDomainError("INSUFFICIENT_STOCK", "Insufficient stock available")
	ErrInvalidQuantity     = NewDomainError("INVALID_QUANTITY", "Quantity must be at least 1")
	ErrInvalidPrice        = NewDomainError("INVALID_PRICE", "Price must be greater than zero")
	ErrInvalidAmount       = NewDomainError("INVALID_AMOUNT", "Amount must be greater than zero")
	ErrOverpayment         = NewDomainError("OVERPAYMENT", "Payment exceeds the remaining balance")
	ErrNotLoan             = NewDomainError("NOT_LOAN", "Invoice is not a loan invoice")
)
