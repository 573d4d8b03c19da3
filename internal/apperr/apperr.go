package apperr

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Code is a stable machine-readable error code returned to API clients.
type Code string

const (
	CodeValidation        Code = "validation_error"
	CodeAmountMismatch    Code = "amount_mismatch"
	CodeInsufficientStock Code = "insufficient_stock"
	CodeInvalidSignature  Code = "invalid_signature"
	CodeNotFound          Code = "not_found"
	CodeUnauthorized      Code = "unauthorized"
	CodeForbidden         Code = "forbidden"
)

// Error is a domain error that the request boundary can translate into a
// structured JSON response. Details carries extra machine-readable context,
// e.g. the offending cart line for insufficient stock.
type Error struct {
	Code    Code           `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// New creates an Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Validation creates a validation_error.
func Validation(format string, args ...any) *Error {
	return New(CodeValidation, format, args...)
}

// NotFound creates a not_found error.
func NotFound(format string, args ...any) *Error {
	return New(CodeNotFound, format, args...)
}

// AmountMismatch reports a divergence between the client-claimed total and
// the authoritative one, both in paisa.
func AmountMismatch(claimed, authoritative int64) *Error {
	e := New(CodeAmountMismatch, "claimed amount %d does not match order total %d", claimed, authoritative)
	e.Details = map[string]any{"claimed": claimed, "total": authoritative}
	return e
}

// InsufficientStock names the cart line whose demand exceeds the ledger.
func InsufficientStock(productID, size string, requested, available int) *Error {
	e := New(CodeInsufficientStock, "insufficient stock for product %s size %s (requested %d, available %d)",
		productID, size, requested, available)
	e.Details = map[string]any{
		"product_id": productID,
		"size":       size,
		"requested":  requested,
		"available":  available,
	}
	return e
}

// InvalidSignature rejects a payment callback whose HMAC does not verify.
func InvalidSignature() *Error {
	return New(CodeInvalidSignature, "payment signature verification failed")
}

// As unwraps err into an *Error if it is one.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// HTTPStatus maps an error code to its HTTP status.
func HTTPStatus(code Code) int {
	switch code {
	case CodeNotFound:
		return fiber.StatusNotFound
	case CodeUnauthorized:
		return fiber.StatusUnauthorized
	case CodeForbidden:
		return fiber.StatusForbidden
	default:
		return fiber.StatusBadRequest
	}
}
