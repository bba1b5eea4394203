// Package types provides type definitions for structured data used throughout the door-compliance system.
package types

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// LoginRequest represents the operator login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Operator represents an operator account for API responses.
type Operator struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

// LoginResponse represents the login response with the authentication token.
type LoginResponse struct {
	Operator *Operator `json:"operator"`
	Token    string    `json:"token"`
}

// Validate validates the LoginRequest using the validator.
func (r *LoginRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
