package httpx

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aussiebroadwan/orgtab/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

type stubResolver struct {
	identity Identity
	err      error
}

func (s stubResolver) ResolveIdentity(_ context.Context, _ jwtx.Claims) (Identity, error) {
	return s.identity, s.err
}

func TestAuthnMiddleware(t *testing.T) {
	signer, err := jwtx.NewHS256([]byte("authn-test-secret"), "test-issuer")
	require.NoError(t, err)

	token, err := signer.Sign(jwtx.NewAccessClaims("user-1", "u@example.com", "test-issuer", time.Minute, time.Now()))
	require.NoError(t, err)

	newGuarded := func(resolver IdentityResolver) (http.Handler, *Identity) {
		var seen Identity
		inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := IdentityFromContext(r.Context())
			require.True(t, ok)
			seen = id
			w.WriteHeader(http.StatusOK)
		})
		return Chain(inner, AuthnMiddleware(signer, resolver)), &seen
	}

	t.Run("valid token passes identity to the handler", func(t *testing.T) {
		handler, seen := newGuarded(stubResolver{identity: Identity{UserID: "user-1", Email: "u@example.com"}})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "user-1", seen.UserID)
	})

	t.Run("missing header rejected", func(t *testing.T) {
		handler, _ := newGuarded(stubResolver{})

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Contains(t, rec.Header().Get("WWW-Authenticate"), "invalid_token")
	})

	t.Run("empty bearer rejected", func(t *testing.T) {
		handler, _ := newGuarded(stubResolver{})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer ")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("malformed token rejected", func(t *testing.T) {
		handler, _ := newGuarded(stubResolver{})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer not-a-jwt")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("unresolvable subject rejected", func(t *testing.T) {
		handler, _ := newGuarded(stubResolver{err: errors.New("user gone")})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
