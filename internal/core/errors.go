// internal/core/errors.go
package core

import "fmt"

// Error represents a structured error with code and optional cause.
type Error struct {
	Code    string
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is matching by code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// WrapError creates a new error with the same code but with a cause.
func WrapError(base *Error, cause error) *Error {
	return &Error{
		Code:    base.Code,
		Message: base.Message,
		Cause:   cause,
	}
}

// Predefined errors
var (
	// Precondition errors
	ErrProxyUnset   = &Error{Code: "PROXY_UNSET", Message: "proxy base URL not configured"}
	ErrNotConnected = &Error{Code: "NOT_CONNECTED", Message: "proxy connection not established"}

	// Connectivity errors
	ErrProbeFailed = &Error{Code: "PROBE_FAILED", Message: "all health check endpoints unreachable"}

	// Transport errors
	ErrProxyHTTP = &Error{Code: "PROXY_HTTP", Message: "proxy request failed"}

	// Data errors
	ErrSymbolNotFound = &Error{Code: "SYMBOL_NOT_FOUND", Message: "symbol not found in listed or OTC market"}
	ErrNoData         = &Error{Code: "NO_DATA", Message: "no data available"}

	// Config errors
	ErrConfigInvalid = &Error{Code: "CONFIG_INVALID", Message: "configuration invalid"}
	ErrConfigMissing = &Error{Code: "CONFIG_MISSING", Message: "required configuration missing"}

	// Auth errors
	ErrAPIKeyMissing = &Error{Code: "API_KEY_MISSING", Message: "X-API-Key header required"}
	ErrAPIKeyInvalid = &Error{Code: "API_KEY_INVALID", Message: "invalid API key"}
)
