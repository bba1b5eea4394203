// Package server provides the HTTP REST API for the door compliance evaluator.
package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/melissa/door-compliance/internal/config"
	"github.com/melissa/door-compliance/internal/types"
)

// AuthHandler handles authentication-related HTTP requests.
// Operator accounts come from the configuration file; there is no
// self-registration.
type AuthHandler struct {
	accounts       []config.Account
	passwordConfig *config.PasswordConfig
	jwtService     *JWTService
	validator      *validator.Validate
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(accounts []config.Account, passwordConfig *config.PasswordConfig, jwtService *JWTService) *AuthHandler {
	return &AuthHandler{
		accounts:       accounts,
		passwordConfig: passwordConfig,
		jwtService:     jwtService,
		validator:      validator.New(),
	}
}

// Login handles operator login requests.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req types.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validator.Struct(req); err != nil {
		validationErrors := extractValidationErrors(err)
		http.Error(w, validationErrors, http.StatusBadRequest)
		return
	}

	operator, err := h.authenticate(req.Email, req.Password)
	if err != nil {
		http.Error(w, err.Error(), HTTPStatus(err))
		return
	}

	token, err := h.jwtService.GenerateToken(operator.ID, operator.Email)
	if err != nil {
		http.Error(w, "Failed to generate token", http.StatusInternalServerError)
		return
	}

	response := types.LoginResponse{
		Operator: operator,
		Token:    token,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		// Log error but response already sent
		return
	}
}

// authenticate checks the credentials against the configured accounts.
// Email matching is case-insensitive; the password is verified against the
// stored bcrypt hash.
func (h *AuthHandler) authenticate(email, password string) (*types.Operator, error) {
	for _, account := range h.accounts {
		if !strings.EqualFold(account.Email, email) {
			continue
		}
		if !h.passwordConfig.VerifyPassword(password, account.PasswordHash) {
			return nil, &ErrInvalidCredentials{}
		}
		return &types.Operator{
			ID:    operatorID(account.Email),
			Email: account.Email,
		}, nil
	}
	return nil, &ErrInvalidCredentials{}
}

// operatorID derives a stable UUID for a configured account from its email.
// Accounts live in the config file, not a database, so there is no assigned ID.
func operatorID(email string) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(strings.ToLower(email)))
}

// extractValidationErrors extracts validation error messages from validator errors.
func extractValidationErrors(err error) string {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		if len(validationErrors) > 0 {
			// Return first validation error for simplicity
			ve := validationErrors[0]
			return fmt.Sprintf("validation error: %s - %s", ve.Field(), ve.Tag())
		}
	}
	return "validation error: invalid request"
}
