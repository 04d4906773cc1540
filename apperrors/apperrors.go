package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound is returned by repositories when no document matches.
var ErrNotFound = errors.New("not found")

// ValidationError marks user-correctable input problems.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func Validation(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// AuthError is deliberately generic so responses never reveal whether the
// email or the password was wrong.
type AuthError struct {
	Msg string
}

func (e *AuthError) Error() string { return e.Msg }

func Auth(msg string) error { return &AuthError{Msg: msg} }

// ConfigError signals missing deployment configuration. It is an operator
// problem, not a caller problem.
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string { return e.Msg }

func Config(msg string) error { return &ConfigError{Msg: msg} }

// EmailDeliveryError wraps a relay failure with its cause for diagnostics.
type EmailDeliveryError struct {
	Err error
}

func (e *EmailDeliveryError) Error() string { return "email delivery failed: " + e.Err.Error() }
func (e *EmailDeliveryError) Unwrap() error { return e.Err }

// HTTPStatus maps the taxonomy onto response codes.
func HTTPStatus(err error) int {
	var ve *ValidationError
	var ae *AuthError
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.As(err, &ve):
		return http.StatusBadRequest
	case errors.As(err, &ae):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
