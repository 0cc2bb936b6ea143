package errors

import (
	"fmt"
)

// ErrorCategory represents the category of a gateway outcome for handling
type ErrorCategory string

const (
	CategoryApproved       ErrorCategory = "approved"
	CategoryDeclined       ErrorCategory = "declined"
	CategoryReject         ErrorCategory = "reject"
	CategorySystemError    ErrorCategory = "system_error"
	CategoryInvalidRequest ErrorCategory = "invalid_request"
)

// GatewayError represents a gateway-reported failure with detailed context
type GatewayError struct {
	Code           string
	Message        string
	GatewayMessage string
	Category       ErrorCategory
	Details        map[string]interface{}
}

func (e *GatewayError) Error() string {
	if e.GatewayMessage != "" {
		return fmt.Sprintf("%s: %s (gateway: %s)", e.Code, e.Message, e.GatewayMessage)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewGatewayError creates a new gateway error
func NewGatewayError(code, message string, category ErrorCategory) *GatewayError {
	return &GatewayError{
		Code:     code,
		Message:  message,
		Category: category,
		Details:  make(map[string]interface{}),
	}
}

// UnmappedCodeError signals a gateway code outside a mandatory mapping table.
// Currency and transaction-type lookups that feed amount scaling must never
// be silently defaulted, so this is always surfaced to the caller.
type UnmappedCodeError struct {
	Table string
	Code  string
}

func (e *UnmappedCodeError) Error() string {
	return fmt.Sprintf("unmapped %s code: %q", e.Table, e.Code)
}

// NewUnmappedCodeError creates a new unmapped code error
func NewUnmappedCodeError(table, code string) *UnmappedCodeError {
	return &UnmappedCodeError{Table: table, Code: code}
}

// ValidationError represents input validation errors
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}
