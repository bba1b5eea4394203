// Package server provides the HTTP REST API for the door compliance evaluator.
package server

import (
	"fmt"
	"net/http"

	"github.com/melissa/door-compliance/internal/schemas"
)

// ErrInvalidCredentials indicates invalid login credentials
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid email or password"
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrInvalidCredentials:
		return http.StatusUnauthorized
	case *ErrValidation, *schemas.ValidationError:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
