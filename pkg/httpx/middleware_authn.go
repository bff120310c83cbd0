package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/orgtab/pkg/jwtx"
	"github.com/aussiebroadwan/orgtab/pkg/slogx"
)

// IdentityResolver turns verified token claims into an authenticated
// identity. Implementations must fail when the claims' subject no longer
// resolves to a live user, so tokens for deleted accounts stop working even
// though their signature is still valid.
type IdentityResolver interface {
	ResolveIdentity(ctx context.Context, claims jwtx.Claims) (Identity, error)
}

// AuthnMiddleware guards protected routes. It extracts the bearer token,
// verifies it, resolves the claims to a live identity and attaches that
// identity to the request context. Expired, malformed and orphaned tokens
// all produce the same "invalid token" response.
func AuthnMiddleware(v jwtx.Verifier, resolver IdentityResolver) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			authz := r.Header.Get("Authorization")
			if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
				writeBearerError(w, "no token provided")
				return
			}
			raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))
			if raw == "" {
				writeBearerError(w, "no token provided")
				return
			}

			claims, err := v.Verify(raw)
			if err != nil {
				log.Warn("jwt verify failed", "err", err)
				writeBearerError(w, "invalid token")
				return
			}

			identity, err := resolver.ResolveIdentity(ctx, claims)
			if err != nil {
				log.Warn("token subject did not resolve", "user_id", claims.Subject, "err", err)
				writeBearerError(w, "invalid token")
				return
			}

			next.ServeHTTP(w, r.WithContext(contextWithIdentity(ctx, identity)))
		})
	}
}

func writeBearerError(w http.ResponseWriter, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	WriteJSON(w, http.StatusUnauthorized, map[string]any{
		"status":     "Unauthorized",
		"message":    desc,
		"statusCode": http.StatusUnauthorized,
	})
}
