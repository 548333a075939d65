package types

import "fmt"

// ErrorCode categorizes provider and dispatch errors
type ErrorCode string

const (
	ErrCodeCredentialMissing ErrorCode = "credential_missing"
	ErrCodeUnavailable       ErrorCode = "unavailable"
	ErrCodeTimeout           ErrorCode = "timeout"
	ErrCodeNetwork           ErrorCode = "network"
	ErrCodeBackendError      ErrorCode = "backend_error"
	ErrCodeUnknownProvider   ErrorCode = "unknown_provider"
	ErrCodeInvalidInput      ErrorCode = "invalid_input"
)

// ProviderError represents a standardized error from a provider or the
// dispatch layer
type ProviderError struct {
	Code        ErrorCode // Categorized error code
	Message     string    // Human-readable message
	StatusCode  int       // HTTP status code (0 if not applicable)
	Label       string    // Which catalog label generated this error
	Operation   string    // What operation failed (e.g., "generate_summary", "probe")
	OriginalErr error     // Wrapped original error
}

// Error implements the error interface
func (e *ProviderError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("[%s] %s (status=%d, code=%s)", e.Label, e.Message, e.StatusCode, e.Code)
	}
	if e.Label != "" {
		return fmt.Sprintf("[%s] %s (code=%s)", e.Label, e.Message, e.Code)
	}
	return fmt.Sprintf("%s (code=%s)", e.Message, e.Code)
}

// Unwrap returns the original error for errors.Is/As
func (e *ProviderError) Unwrap() error {
	return e.OriginalErr
}

// WithOperation sets the operation field and returns the error for chaining
func (e *ProviderError) WithOperation(operation string) *ProviderError {
	e.Operation = operation
	return e
}

// WithStatusCode sets the status code field and returns the error for chaining
func (e *ProviderError) WithStatusCode(statusCode int) *ProviderError {
	e.StatusCode = statusCode
	return e
}

// WithOriginalErr sets the original error field and returns the error for chaining
func (e *ProviderError) WithOriginalErr(err error) *ProviderError {
	e.OriginalErr = err
	return e
}

// NewProviderError creates a new provider error
func NewProviderError(label string, code ErrorCode, message string) *ProviderError {
	return &ProviderError{
		Code:    code,
		Message: message,
		Label:   label,
	}
}

// NewCredentialMissingError creates an error for an unconfigured cloud credential
func NewCredentialMissingError(label, message string) *ProviderError {
	return NewProviderError(label, ErrCodeCredentialMissing, message)
}

// NewUnavailableError creates an error for a backend that failed its
// availability probe or does not have the requested model installed
func NewUnavailableError(label, message string) *ProviderError {
	return NewProviderError(label, ErrCodeUnavailable, message)
}

// NewTimeoutError creates a timeout error
func NewTimeoutError(label, message string) *ProviderError {
	return NewProviderError(label, ErrCodeTimeout, message)
}

// NewNetworkError creates a transport-failure error (connection refused,
// DNS, etc.)
func NewNetworkError(label, message string) *ProviderError {
	return NewProviderError(label, ErrCodeNetwork, message)
}

// NewBackendError creates an error for a non-success status from the backend
func NewBackendError(label, message string) *ProviderError {
	return NewProviderError(label, ErrCodeBackendError, message)
}

// NewUnknownProviderError creates an error for a label absent from the catalog
func NewUnknownProviderError(label string) *ProviderError {
	return NewProviderError(label, ErrCodeUnknownProvider, fmt.Sprintf("provider %q not found", label))
}

// NewInvalidInputError creates an input-validation error; these are the
// only errors that abort a dispatch before any backend call is made
func NewInvalidInputError(message string) *ProviderError {
	return NewProviderError("", ErrCodeInvalidInput, message)
}
