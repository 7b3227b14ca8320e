package server

import (
	"context"
	"net/http"
	"strings"

	apperrors "github.com/imathiatour/poi-server/internal/errors"
	"github.com/imathiatour/poi-server/token"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const (
	// ContextKeySubject stores the authenticated subject (email)
	ContextKeySubject ContextKey = "subject"
)

// RequireAuth is middleware that validates a Bearer access token and
// injects its subject into the request context. A refresh token presented
// here is rejected like any other invalid token.
func (s *Server) RequireAuth() func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			rawToken, ok := bearerToken(r)
			if !ok {
				writeError(w, http.StatusUnauthorized, "unauthorized", "Missing Bearer token")
				return
			}

			subject, err := s.tokens.Validate(rawToken, token.KindAccess)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "unauthorized", authFailureDescription(err))
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeySubject, subject)
			next(w, r.WithContext(ctx))
		}
	}
}

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header.
func bearerToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}

	rawToken := strings.TrimSpace(parts[1])
	if rawToken == "" {
		return "", false
	}
	return rawToken, true
}

func authFailureDescription(err error) string {
	switch {
	case apperrors.Is(err, apperrors.ErrTokenExpired):
		return "Token expired"
	case apperrors.Is(err, apperrors.ErrWrongTokenKind):
		return "Not an access token"
	default:
		return "Invalid token"
	}
}
