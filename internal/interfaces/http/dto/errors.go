package dto

import (
	"net/http"
	"strings"
)

// Error codes shared between domain errors and HTTP responses.
const (
	ErrCodeInternal     = "INTERNAL_ERROR"
	ErrCodeBadRequest   = "BAD_REQUEST"
	ErrCodeInvalidJSON  = "INVALID_JSON"
	ErrCodeValidation   = "VALIDATION_ERROR"
	ErrCodeUnauthorized = "UNAUTHORIZED"
	ErrCodeForbidden    = "FORBIDDEN"
	ErrCodeNotFound     = "NOT_FOUND"
	ErrCodeConflict     = "CONFLICT"
)

// errorCodeHTTPStatus maps domain error codes to HTTP status codes.
// Validation failures are 400, business rule violations 422.
var errorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:     http.StatusInternalServerError,
	ErrCodeBadRequest:   http.StatusBadRequest,
	ErrCodeInvalidJSON:  http.StatusBadRequest,
	ErrCodeValidation:   http.StatusBadRequest,
	ErrCodeUnauthorized: http.StatusUnauthorized,
	ErrCodeForbidden:    http.StatusForbidden,
	ErrCodeNotFound:     http.StatusNotFound,
	ErrCodeConflict:     http.StatusConflict,

	"ALREADY_EXISTS":       http.StatusConflict,
	"CONCURRENCY_CONFLICT": http.StatusConflict,

	"INSUFFICIENT_STOCK":  http.StatusUnprocessableEntity,
	"OVERPAYMENT":         http.StatusUnprocessableEntity,
	"NOT_LOAN":            http.StatusUnprocessableEntity,
	"OUTSTANDING_BALANCE": http.StatusUnprocessableEntity,
	"INVALID_STATE":       http.StatusUnprocessableEntity,
}

// GetHTTPStatus resolves the HTTP status for a domain error code. Codes
// with an INVALID_ prefix are input validation failures; anything unknown
// is treated as an internal error.
func GetHTTPStatus(code string) int {
	if status, ok := errorCodeHTTPStatus[code]; ok {
		return status
	}
	if strings.HasPrefix(code, "INVALID_") {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
