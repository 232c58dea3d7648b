package dto

import "net/http"

// Domain error codes surfaced over HTTP. Handlers pass the code of a
// shared.DomainError through unchanged; this table decides the status.

// General error codes
const (
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "INTERNAL_ERROR"
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "BAD_REQUEST"
	// ErrCodeInvalidJSON is used when JSON parsing fails
	ErrCodeInvalidJSON = "INVALID_JSON"
)

// Resource error codes
const (
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "NOT_FOUND"
	// ErrCodeInvalidReference is used when a request points at a
	// related resource that does not exist
	ErrCodeInvalidReference = "INVALID_REFERENCE"
	// ErrCodeConcurrentModification is used when optimistic locking fails
	ErrCodeConcurrentModification = "CONCURRENT_MODIFICATION"
)

// Business rule error codes
const (
	// ErrCodeValidation is used for invalid input data
	ErrCodeValidation = "VALIDATION_ERROR"
	// ErrCodeInvalidState is used when an operation is invalid for the
	// current order status
	ErrCodeInvalidState = "INVALID_STATE"
	// ErrCodeQuantityMismatch is used when received units do not match
	// the ordered quantities exactly
	ErrCodeQuantityMismatch = "QUANTITY_MISMATCH"
	// ErrCodeDuplicateIMEI is used when a received IMEI already exists
	// in inventory or appears twice in one batch
	ErrCodeDuplicateIMEI = "DUPLICATE_IMEI"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:    http.StatusInternalServerError,
	ErrCodeBadRequest:  http.StatusBadRequest,
	ErrCodeInvalidJSON: http.StatusBadRequest,

	// Resource errors
	ErrCodeNotFound:               http.StatusNotFound,
	ErrCodeInvalidReference:       http.StatusUnprocessableEntity,
	ErrCodeConcurrentModification: http.StatusConflict,

	// Business rule errors
	ErrCodeValidation:       http.StatusBadRequest,
	ErrCodeInvalidState:     http.StatusConflict,
	ErrCodeQuantityMismatch: http.StatusUnprocessableEntity,
	ErrCodeDuplicateIMEI:    http.StatusConflict,
}

// GetHTTPStatus returns the HTTP status code for an error code
// Returns 500 Internal Server Error if the error code is not found
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
