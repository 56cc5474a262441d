package shared

import "errors"

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

// Error codes used across the print pipeline
const (
	CodeMissingMessage  = "MISSING_MESSAGE"
	CodeInvalidPort     = "INVALID_PORT"
	CodePayloadTooLarge = "QR_PAYLOAD_TOO_LARGE"
	CodeConnectFailed   = "CONNECT_FAILED"
	CodeWriteFailed     = "WRITE_FAILED"
)

// Common domain errors
var (
	ErrMissingMessage = NewDomainError(CodeMissingMessage, "A message is required to print")
	ErrInvalidPort    = NewDomainError(CodeInvalidPort, "Printer port must be between 1 and 65535")
)

// Code extracts the domain error code from err, or "" if err is not a DomainError
func Code(err error) string {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code
	}
	return ""
}

// IsValidationError reports whether err is a request validation failure
func IsValidationError(err error) bool {
	switch Code(err) {
	case CodeMissingMessage, CodeInvalidPort:
		return true
	}
	return false
}

// IsTransportError reports whether err originated in the printer transport
func IsTransportError(err error) bool {
	switch Code(err) {
	case CodeConnectFailed, CodeWriteFailed:
		return true
	}
	return false
}
