package middleware

import (
	"context"
	"fmt"
	"net/http"
)

// AdminResolver looks up whether an email belongs to an admin. Unknown
// emails are not admins.
type AdminResolver interface {
	IsAdmin(ctx context.Context, email string) (bool, error)
}

type RoleMiddleware struct {
	resolver AdminResolver
}

func NewRoleMiddleware(resolver AdminResolver) *RoleMiddleware {
	return &RoleMiddleware{resolver: resolver}
}

// RequireAdmin must run after Authenticate. The role is read from the store
// on every request, so a promotion takes effect without a new token.
func (m *RoleMiddleware) RequireAdmin(r *http.Request) (context.Context, error) {
	email, ok := GetUserEmailFromContext(r.Context())
	if !ok {
		return nil, ErrUnauthenticated
	}

	admin, err := m.resolver.IsAdmin(r.Context(), email)
	if err != nil {
		return nil, fmt.Errorf("resolve role of %s: %w", email, err)
	}
	if !admin {
		return nil, fmt.Errorf("%w: %s is not an admin", ErrForbidden, email)
	}

	return r.Context(), nil
}
