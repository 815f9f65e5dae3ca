package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	h "festivalcms/internal/delivery/http/helpers"
	"festivalcms/internal/domain"
)

// TokenCookie is the cookie set on login that carries the access token.
const TokenCookie = "token"

type contextKey string

const principalKey contextKey = "principal"

// WithPrincipal returns a context carrying the authenticated caller.
func WithPrincipal(ctx context.Context, p domain.Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// PrincipalFromContext returns the authenticated caller from the context, if present.
func PrincipalFromContext(ctx context.Context) (domain.Principal, bool) {
	p, ok := ctx.Value(principalKey).(domain.Principal)
	return p, ok
}

// tokenFromRequest prefers the Authorization header and falls back to the token cookie.
func tokenFromRequest(r *http.Request) (string, string) {
	if auth := r.Header.Get("Authorization"); auth != "" {
		const prefix = "Bearer "
		if !strings.HasPrefix(auth, prefix) {
			return "", "invalid authorization format"
		}
		token := strings.TrimSpace(auth[len(prefix):])
		if token == "" {
			return "", "missing token"
		}
		return token, ""
	}
	if c, err := r.Cookie(TokenCookie); err == nil && c.Value != "" {
		return c.Value, ""
	}
	return "", "missing authorization header"
}

// RequireAuth returns a wrapper that verifies the caller's token and stores the principal
// in the request context. If the token is missing or invalid, it responds with 401 and
// does not call next.
func RequireAuth(verifier domain.TokenVerifier, logger *slog.Logger) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			token, problem := tokenFromRequest(r)
			if problem != "" {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, problem)
				return
			}
			p, err := verifier.Verify(token)
			if err != nil {
				logger.DebugContext(r.Context(), "token rejected", "path", r.URL.Path, "err", err)
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid or expired token")
				return
			}
			next(w, r.WithContext(WithPrincipal(r.Context(), *p)))
		}
	}
}

// RequireRole responds with 403 unless the authenticated caller has one of roles. It must
// run inside RequireAuth.
func RequireRole(roles ...domain.Role) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			p, ok := PrincipalFromContext(r.Context())
			if !ok {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
				return
			}
			if !slices.Contains(roles, p.Role) {
				h.WriteJSONError(w, http.StatusForbidden, h.ErrCodeForbidden, "you do not have permission to perform this action")
				return
			}
			next(w, r)
		}
	}
}

// Guard combines RequireAuth and RequireRole. With no roles any authenticated caller passes.
func Guard(verifier domain.TokenVerifier, logger *slog.Logger) func(next http.HandlerFunc, roles ...domain.Role) http.HandlerFunc {
	auth := RequireAuth(verifier, logger)
	return func(next http.HandlerFunc, roles ...domain.Role) http.HandlerFunc {
		if len(roles) == 0 {
			return auth(next)
		}
		return auth(RequireRole(roles...)(next))
	}
}
