// Package middleware provides HTTP middleware for authentication and authorization.
package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// ContextKey is a typed key for context values to avoid collisions.
type ContextKey string

// operatorIDKey is the context key for storing the authenticated operator ID.
const operatorIDKey ContextKey = "operatorID"

// TokenValidator is an interface for validating JWT tokens.
// This allows the middleware to work with any JWT service implementation.
type TokenValidator interface {
	ValidateToken(tokenString string) (OperatorIDGetter, error)
}

// OperatorIDGetter is an interface for extracting the operator ID from token claims.
type OperatorIDGetter interface {
	GetOperatorID() uuid.UUID
}

// AuthMiddleware creates middleware that validates JWT tokens and adds the
// operator ID to the request context.
func AuthMiddleware(jwtService TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			// Parse Bearer token
			// Handle case-insensitive "Bearer" prefix
			parts := strings.Fields(authHeader)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			tokenString := strings.TrimSpace(parts[1])
			if tokenString == "" {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			claims, err := jwtService.ValidateToken(tokenString)
			if err != nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), operatorIDKey, claims.GetOperatorID())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetOperatorID extracts the authenticated operator ID from the request context.
func GetOperatorID(r *http.Request) (uuid.UUID, error) {
	operatorID, ok := r.Context().Value(operatorIDKey).(uuid.UUID)
	if !ok {
		return uuid.Nil, fmt.Errorf("operator ID not found in request context")
	}
	return operatorID, nil
}

// OperatorIDKey returns the context key for the operator ID (for testing purposes).
func OperatorIDKey() ContextKey {
	return operatorIDKey
}
