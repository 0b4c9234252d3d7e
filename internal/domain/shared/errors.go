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
	ErrNotFound          = NewDomainError("NOT_FOUND", "Resource not found")
	ErrAlreadyExists     = NewDomainError("ALREADY_EXISTS", "Resource already exists")
	ErrInvalidInput      = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrInvalidState      = NewDomainError("INVALID_STATE", "Operation not allowed in current state")
	ErrInsufficientStock = NewDomainError("INSUFFICIENT_STOCK", "Insufficient stock available")
)

// validationCodes are the error codes that represent rejected input or a
// violated business rule, as opposed to a missing resource or a stock shortage.
var validationCodes = map[string]struct{}{
	"INVALID_INPUT":       {},
	"INVALID_STATE":       {},
	"INVALID_QUANTITY":    {},
	"INVALID_PRICE":       {},
	"INVALID_PRICE_BASIS": {},
	"INVALID_CODE":        {},
	"INVALID_LINES":       {},
	"BATCH_CLOSED":        {},
	"BATCH_NOT_DEPLETED":  {},
}

// IsValidation reports whether err is a domain validation error.
func IsValidation(err error) bool {
	de, ok := err.(*DomainError)
	if !ok {
		return false
	}
	_, ok = validationCodes[de.Code]
	return ok
}

// IsNotFound reports whether err signals a missing resource.
func IsNotFound(err error) bool {
	de, ok := err.(*DomainError)
	return ok && de.Code == "NOT_FOUND"
}

// IsInsufficientStock reports whether err signals a stock shortage.
func IsInsufficientStock(err error) bool {
	de, ok := err.(*DomainError)
	return ok && de.Code == "INSUFFICIENT_STOCK"
}
