package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a category of application error.
type ErrorCode string

const (
	// ErrCodeNotFound indicates no route matched a server request.
	ErrCodeNotFound ErrorCode = "not_found"
	// ErrCodeTimeout indicates a timeout occurred.
	ErrCodeTimeout ErrorCode = "timeout"
	// ErrCodeCanceled indicates the operation was canceled.
	ErrCodeCanceled ErrorCode = "canceled"

	// ErrCodeMalformedToken indicates a compact token without exactly three segments.
	ErrCodeMalformedToken ErrorCode = "malformed_token"
	// ErrCodeTokenDecode indicates the token payload could not be decoded or parsed.
	ErrCodeTokenDecode ErrorCode = "token_decode"

	// ErrCodeInvalidField indicates a missing or unusable UI element was passed to a form helper.
	ErrCodeInvalidField ErrorCode = "invalid_field"
	// ErrCodeInvalidArgument indicates a form helper received something other than a sequence.
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	// ErrCodeTargetNotFound indicates a render target container is absent from the document.
	ErrCodeTargetNotFound ErrorCode = "target_not_found"

	// ErrCodeMenuInit indicates the mobile menu anchors are missing.
	ErrCodeMenuInit ErrorCode = "menu_init"
	// ErrCodeProfileInit indicates the profile menu could not be initialized.
	ErrCodeProfileInit ErrorCode = "profile_init"
	// ErrCodeMenuRender indicates the role navigation could not be rendered.
	ErrCodeMenuRender ErrorCode = "menu_render"

	// ErrCodeBackend indicates the REST backend failed or returned an unusable response.
	ErrCodeBackend ErrorCode = "backend"
)

// AppError represents a structured application error with a code, message, and optional cause.
// It supports error wrapping and unwrapping for use with errors.Is and errors.As.
type AppError struct {
	// Code categorizes the error type
	Code ErrorCode
	// Message is a human-readable error message
	Message string
	// Cause is the underlying error that caused this error (optional)
	Cause error
	// Field is the specific field or element that caused the error (optional)
	Field string
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause, enabling errors.Is and errors.As.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates an AppError with the given code and message.
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// Newf creates an AppError with the given code and a formatted message.
func Newf(code ErrorCode, format string, args ...any) *AppError {
	return &AppError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// InvalidField creates an InvalidField error naming the offending element.
func InvalidField(field, message string) *AppError {
	return &AppError{
		Code:    ErrCodeInvalidField,
		Message: message,
		Field:   field,
	}
}

// InvalidArgument creates an InvalidArgument error.
func InvalidArgument(message string) *AppError {
	return New(ErrCodeInvalidArgument, message)
}

// TargetNotFound creates a TargetNotFound error for the given element ID.
func TargetNotFound(id string) *AppError {
	return &AppError{
		Code:    ErrCodeTargetNotFound,
		Message: fmt.Sprintf("contenedor %q no encontrado", id),
		Field:   id,
	}
}

// Wrap wraps an existing error with an AppError, preserving the cause.
func Wrap(err error, code ErrorCode, message string) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an existing error with an AppError and formatted message.
func Wrapf(err error, code ErrorCode, format string, args ...any) *AppError {
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// isCode checks if an error has a specific error code.
func isCode(err error, code ErrorCode) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

// Is reports whether err is an AppError carrying code.
func Is(err error, code ErrorCode) bool {
	return isCode(err, code)
}

// IsMalformedToken checks if an error is a MalformedToken error.
func IsMalformedToken(err error) bool {
	return isCode(err, ErrCodeMalformedToken)
}

// IsTokenDecode checks if an error is a TokenDecode error.
func IsTokenDecode(err error) bool {
	return isCode(err, ErrCodeTokenDecode)
}

// IsInvalidField checks if an error is an InvalidField error.
func IsInvalidField(err error) bool {
	return isCode(err, ErrCodeInvalidField)
}

// IsInvalidArgument checks if an error is an InvalidArgument error.
func IsInvalidArgument(err error) bool {
	return isCode(err, ErrCodeInvalidArgument)
}

// IsTargetNotFound checks if an error is a TargetNotFound error.
func IsTargetNotFound(err error) bool {
	return isCode(err, ErrCodeTargetNotFound)
}

// IsCanceled checks if an error is a Canceled error.
func IsCanceled(err error) bool {
	return isCode(err, ErrCodeCanceled)
}

// IsTimeout checks if an error is a Timeout error.
func IsTimeout(err error) bool {
	return isCode(err, ErrCodeTimeout)
}

// IsBackend checks if an error is a Backend error.
func IsBackend(err error) bool {
	return isCode(err, ErrCodeBackend)
}

// GetCode returns the ErrorCode from an error, or empty string if not an AppError.
func GetCode(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// GetField returns the Field from an error, or empty string if not an AppError or no field set.
func GetField(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Field
	}
	return ""
}
