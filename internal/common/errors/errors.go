// Package errors provides standardized error handling for the presence API.
package errors

import (
	"errors"
	"net/http"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"

	ErrCodeProviderRequestFailed ErrorCode = "PROVIDER_REQUEST_FAILED"
	ErrCodeProviderBadResponse   ErrorCode = "PROVIDER_BAD_RESPONSE"
	ErrCodeProviderTimeout       ErrorCode = "PROVIDER_TIMEOUT"

	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// StandardError represents a structured application error. Details carry
// server-side diagnostics and are never sent to clients; PublicMessage is the
// only text surfaced on the wire.
type StandardError struct {
	Code          ErrorCode              `json:"code"`
	Message       string                 `json:"message"`
	Details       string                 `json:"details,omitempty"`
	Retryable     bool                   `json:"retryable"`
	Metadata      map[string]interface{} `json:"metadata,omitempty"`
	Timestamp     time.Time              `json:"timestamp"`
	PublicMessage string                 `json:"-"`
}

func (e *StandardError) Error() string {
	return string(e.Code) + ": " + e.Message
}

// ==========================
// 2. Error Constructors
// ==========================

// NewValidationError creates a non-retryable client-input error. The public
// message is shown to the caller verbatim.
func NewValidationError(publicMsg, details string) *StandardError {
	return &StandardError{
		Code:          ErrCodeValidationFailed,
		Message:       "Request validation failed",
		Details:       details,
		Retryable:     false,
		Timestamp:     time.Now().UTC(),
		PublicMessage: publicMsg,
	}
}

// NewProviderRequestError creates a retryable outbound-search error. The
// underlying cause stays in Details for server-side logs only.
func NewProviderRequestError(err error) *StandardError {
	return &StandardError{
		Code:          ErrCodeProviderRequestFailed,
		Message:       "Search provider request failed",
		Details:       err.Error(),
		Retryable:     true,
		Timestamp:     time.Now().UTC(),
		PublicMessage: "search provider unavailable",
	}
}

// NewProviderBadResponseError creates an error for a provider reply the
// service could not use (non-2xx status, undecodable body).
func NewProviderBadResponseError(details string) *StandardError {
	return &StandardError{
		Code:          ErrCodeProviderBadResponse,
		Message:       "Search provider returned an unusable response",
		Details:       details,
		Retryable:     true,
		Timestamp:     time.Now().UTC(),
		PublicMessage: "search provider unavailable",
	}
}

// NewProviderTimeoutError creates an error for an outbound search that
// exceeded its deadline.
func NewProviderTimeoutError(err error) *StandardError {
	return &StandardError{
		Code:          ErrCodeProviderTimeout,
		Message:       "Search provider timeout",
		Details:       err.Error(),
		Retryable:     true,
		Timestamp:     time.Now().UTC(),
		PublicMessage: "search provider unavailable",
	}
}

// NewInternalError wraps an unexpected failure.
func NewInternalError(err error) *StandardError {
	return &StandardError{
		Code:          ErrCodeInternal,
		Message:       "Internal error",
		Details:       err.Error(),
		Retryable:     false,
		Timestamp:     time.Now().UTC(),
		PublicMessage: "internal error",
	}
}

// ==========================
// 3. HTTP Mapping
// ==========================

// HTTPStatus maps internal error codes to HTTP response statuses.
func HTTPStatus(code ErrorCode) int {
	switch code {
	case ErrCodeValidationFailed:
		return http.StatusBadRequest
	case ErrCodeProviderRequestFailed, ErrCodeProviderBadResponse:
		return http.StatusBadGateway
	case ErrCodeProviderTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// AsStandard extracts a *StandardError from err, wrapping unknown errors as
// internal so every failure has a code and a safe public message.
func AsStandard(err error) *StandardError {
	var stdErr *StandardError
	if errors.As(err, &stdErr) {
		return stdErr
	}
	return NewInternalError(err)
}

// IsProviderError reports whether the error originated from the outbound
// search provider call.
func IsProviderError(err error) bool {
	stdErr := AsStandard(err)
	switch stdErr.Code {
	case ErrCodeProviderRequestFailed, ErrCodeProviderBadResponse, ErrCodeProviderTimeout:
		return true
	}
	return false
}
