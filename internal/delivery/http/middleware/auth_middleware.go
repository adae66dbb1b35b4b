package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"go-doctors-portal/pkg/jwt"
)

type contextKey string

const UserEmailKey contextKey = "user_email"

type AuthMiddleware struct {
	jwtService *jwt.JWTService
}

func NewAuthMiddleware(jwtService *jwt.JWTService) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtService}
}

// Authenticate requires a bearer token. A missing Authorization header is
// ErrUnauthenticated; a header whose token does not verify, for whatever
// reason, is ErrForbidden.
func (m *AuthMiddleware) Authenticate(r *http.Request) (context.Context, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil, ErrUnauthenticated
	}

	// Extract token from "Bearer <token>"
	parts := strings.Fields(authHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil, fmt.Errorf("%w: malformed authorization header", ErrForbidden)
	}

	claims, err := m.jwtService.ValidateToken(parts[1])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrForbidden, err)
	}

	return context.WithValue(r.Context(), UserEmailKey, claims.Email), nil
}

// GetUserEmailFromContext extracts user email from context
func GetUserEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(UserEmailKey).(string)
	return email, ok
}
