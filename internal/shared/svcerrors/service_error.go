package svcerrors

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	categoryInvalidArgument = "invalid_argument"
	categoryNotFound        = "not_found"
	categoryInternal        = "internal"

	internalMessage = "internal server error"
)

const (
	errorCodeInternalPanic     = "SYS_9000"
	errorCodeInternalUndefined = "SYS_9001"
)

// ServiceError is the error type every service returns across package boundaries.
// Code is stable per failure and Message is safe to show to clients.
type ServiceError struct {
	Category       string
	Code           string
	Message        string
	Cause          error
	HttpStatusCode int
}

func newServiceError(category string, status int, code, message string, cause error) *ServiceError {
	return &ServiceError{
		Category:       category,
		Code:           code,
		Message:        message,
		Cause:          cause,
		HttpStatusCode: status,
	}
}

// NewInvalidArgumentError reports a caller mistake, rendered as 400.
func NewInvalidArgumentError(code, message string, cause error) *ServiceError {
	return newServiceError(categoryInvalidArgument, http.StatusBadRequest, code, message, cause)
}

// NewNotFoundError reports a missing resource, rendered as 404.
func NewNotFoundError(code, message string, cause error) *ServiceError {
	return newServiceError(categoryNotFound, http.StatusNotFound, code, message, cause)
}

// NewInternalError hides cause behind a generic message, rendered as 500.
func NewInternalError(code string, cause error) *ServiceError {
	return newServiceError(categoryInternal, http.StatusInternalServerError, code, internalMessage, cause)
}

// NewInternalErrorUndefined wraps an error that carried no service code (SYS_9001).
func NewInternalErrorUndefined(cause error) *ServiceError {
	return NewInternalError(errorCodeInternalUndefined, cause)
}

// NewInternalErrorPanic wraps a recovered panic (SYS_9000).
func NewInternalErrorPanic(cause error) *ServiceError {
	return NewInternalError(errorCodeInternalPanic, cause)
}

// AsServiceError finds the first ServiceError in err's chain.
func AsServiceError(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr, true
	}
	return nil, false
}

// HasCode reports whether err's chain carries a ServiceError with the given code.
func HasCode(err error, code string) bool {
	svcErr, ok := AsServiceError(err)
	return ok && svcErr.Code == code
}

func (e *ServiceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *ServiceError) Unwrap() error {
	return e.Cause
}

func (e *ServiceError) IsInternalError() bool {
	return e.Category == categoryInternal
}
