// Package apperror defines the error taxonomy shared by services and
// handlers. Services return these; the HTTP layer maps them to statuses.
package apperror

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrDuplicateEmail            = errors.New("email already registered")
	ErrInvalidCredentials        = errors.New("invalid email or password")
	ErrInvalidToken              = errors.New("invalid token")
	ErrTokenExpired              = errors.New("token expired")
	ErrPaymentVerificationFailed = errors.New("payment verification failed")
)

// ValidationError carries per-field messages so the client can surface them
// inline at the point of entry.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// NewValidation builds a single-field validation error.
func NewValidation(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

// FieldErrors wraps a non-empty field map; returns nil when there is
// nothing to report.
func FieldErrors(fields map[string]string) error {
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

type NotFoundError struct {
	Kind string
}

func (e *NotFoundError) Error() string {
	return e.Kind + " not found"
}

func NotFound(kind string) *NotFoundError {
	return &NotFoundError{Kind: kind}
}

// GatewayError marks a failure of the payment gateway call itself, as
// opposed to a verification failure on our side.
type GatewayError struct {
	Err error
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("payment gateway: %v", e.Err)
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}
