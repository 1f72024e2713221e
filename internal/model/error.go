package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error         string `json:"error"`
	Message       string `json:"message"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON        = "INVALID_JSON"
	ErrCodeMissingField       = "MISSING_FIELD"
	ErrCodeProductNotFound    = "PRODUCT_NOT_FOUND"
	ErrCodeInvalidProductID   = "INVALID_PRODUCT_ID"
	ErrCodeInvalidSort        = "INVALID_SORT"
	ErrCodeDuplicateProductID = "DUPLICATE_PRODUCT_ID"
	ErrCodeInvalidPrice       = "INVALID_PRICE"
	ErrCodeUnauthorised       = "UNAUTHORIZED"
	ErrCodeInternalError      = "INTERNAL_ERROR"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

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
	ErrProductNotFound    = NewDomainError(ErrCodeProductNotFound, "Product not found")
	ErrInvalidProductID   = NewDomainError(ErrCodeInvalidProductID, "Product id must be a positive integer")
	ErrInvalidSort        = NewDomainError(ErrCodeInvalidSort, "Sort must be one of none, priceAsc, priceDesc, nameAsc, nameDesc")
	ErrDuplicateProductID = NewDomainError(ErrCodeDuplicateProductID, "Product ids must be unique across the catalogue")
	ErrInvalidPrice       = NewDomainError(ErrCodeInvalidPrice, "Product price must not be negative")
	ErrMissingField       = NewDomainError(ErrCodeMissingField, "Product record is missing a required field")
)
