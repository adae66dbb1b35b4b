package middleware

import (
	"context"
	"errors"
	"net/http"

	"go-doctors-portal/internal/infrastructure/metrics"
	"go-doctors-portal/pkg/jwt"
	"go-doctors-portal/pkg/response"

	"github.com/sirupsen/logrus"
)

var (
	// ErrUnauthenticated means no credential was presented (401).
	ErrUnauthenticated = errors.New("authentication required")
	// ErrForbidden means the credential is untrusted or lacks the role (403).
	ErrForbidden = errors.New("forbidden")
)

// Check is one capability gate. It returns the context to continue with, or
// an error that stops the request before the handler runs.
type Check func(r *http.Request) (context.Context, error)

// Guard runs its checks in order; each one sees the context enriched by the
// previous ones.
type Guard struct {
	checks  []Check
	log     *logrus.Logger
	metrics *metrics.Metrics
}

func NewGuard(log *logrus.Logger, m *metrics.Metrics, checks ...Check) *Guard {
	return &Guard{checks: checks, log: log, metrics: m}
}

func (g *Guard) Then(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for _, check := range g.checks {
			ctx, err := check(r)
			if err != nil {
				g.reject(w, r, err)
				return
			}
			r = r.WithContext(ctx)
		}
		next.ServeHTTP(w, r)
	})
}

func (g *Guard) ThenFunc(fn http.HandlerFunc) http.Handler {
	return g.Then(fn)
}

func (g *Guard) reject(w http.ResponseWriter, r *http.Request, err error) {
	reason := rejectionReason(err)
	g.metrics.ObserveGuardRejection(reason)

	entry := g.log.WithFields(logrus.Fields{
		"method": r.Method,
		"path":   r.URL.Path,
		"reason": reason,
	})

	switch {
	case errors.Is(err, ErrUnauthenticated):
		entry.Debug("Rejected unauthenticated request")
		response.Unauthorized(w, "")
	case errors.Is(err, ErrForbidden):
		entry.Debugf("Rejected request: %v", err)
		response.Forbidden(w, "")
	default:
		entry.Errorf("Access check failed: %+v", err)
		response.InternalServerError(w, "")
	}
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, ErrUnauthenticated):
		return "unauthenticated"
	case errors.Is(err, jwt.ErrTokenExpired):
		return "token_expired"
	case errors.Is(err, jwt.ErrTokenInvalid):
		return "token_invalid"
	case errors.Is(err, ErrForbidden):
		return "forbidden"
	default:
		return "error"
	}
}
