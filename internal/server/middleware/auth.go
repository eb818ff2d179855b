// Package middleware provides HTTP middleware for authentication.
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

// clientIDKey is the context key for storing the authenticated client ID.
const clientIDKey ContextKey = "clientID"

// TokenValidator is an interface for validating JWT tokens.
// This allows the middleware to work with any JWT service implementation.
type TokenValidator interface {
	ValidateToken(tokenString string) (ClientIDGetter, error)
}

// ClientIDGetter is an interface for extracting the client ID from token claims.
type ClientIDGetter interface {
	GetClientID() uuid.UUID
}

// Auth creates middleware that validates bearer tokens and adds the
// authenticated client ID to the request context.
func Auth(validator TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			// "Bearer" prefix is matched case-insensitively
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

			claims, err := validator.ValidateToken(tokenString)
			if err != nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), clientIDKey, claims.GetClientID())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetClientID extracts the authenticated client ID from the request context.
func GetClientID(r *http.Request) (uuid.UUID, error) {
	clientID, ok := r.Context().Value(clientIDKey).(uuid.UUID)
	if !ok {
		return uuid.Nil, fmt.Errorf("client ID not found in request context")
	}
	return clientID, nil
}

// ClientIDKey returns the context key for the client ID (for testing purposes).
func ClientIDKey() ContextKey {
	return clientIDKey
}
