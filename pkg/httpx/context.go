package httpx

import "context"

// Identity is the authenticated caller resolved by the bearer-token guard.
// Handlers read it once from the request context and pass it explicitly into
// service calls; nothing downstream re-decodes token claims.
type Identity struct {
	UserID string
	Email  string
}

type ctxKey struct{}

func contextWithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// IdentityFromContext returns the authenticated identity attached by
// AuthnMiddleware. The second return is false on unauthenticated requests.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(ctxKey{}).(Identity)
	return id, ok
}
