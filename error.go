package digest

import (
	"errors"
	"fmt"
)

// Error codes classify failures by the stage and kind of fault.
const (
	ENETWORK    = "network"    // connection failure, timeout, invalid URL, non-HTML response
	EAPI        = "api"        // AI service failure (auth, rate limit, bad response)
	EINVALID    = "invalid"    // missing or invalid input field
	EEXTRACT    = "extract"    // no content found, markup parse failure
	EFILESYSTEM = "filesystem" // write failure, permission denied
	ECONFIG     = "config"     // missing credential or bad configuration
	EINTERNAL   = "internal"   // catch-all for unrecognized failures
)

// Error is the application error type. Code classifies the failure, Message
// is the human-readable description, Err is the wrapped low-level cause, and
// Context carries structured diagnostic fields (url, path, status, ...).
type Error struct {
	Code    string
	Message string
	Err     error
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("digest: [%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("digest: [%s] %s", e.Code, e.Message)
}

// Unwrap returns the wrapped cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// WithContext attaches a diagnostic key/value pair and returns the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// Errorf constructs an Error with the given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// WrapErrorf constructs an Error wrapping err as the underlying cause.
func WrapErrorf(err error, code string, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Err: err}
}

// ErrorCode returns the code of the error, EINTERNAL for non-application
// errors, or the empty string if err is nil.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	}
	if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage returns the human-readable message of the error, a generic
// message for non-application errors, or the empty string if err is nil.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	}
	if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// ErrorContext returns the diagnostic context of the error, or nil.
func ErrorContext(err error) map[string]any {
	var e *Error
	if errors.As(err, &e) {
		return e.Context
	}
	return nil
}
