package orgsdk

import (
	"context"
	"net/http"
)

// Session represents an authenticated caller. It carries the bearer token
// returned by Register or Login and exposes the protected operations.
type Session struct {
	client      *SDKClient
	accessToken string
	user        User
}

func newSession(c *SDKClient, data AuthData) *Session {
	return &Session{
		client:      c,
		accessToken: data.AccessToken,
		user:        data.User,
	}
}

// AccessToken returns the raw bearer token for this session.
func (s *Session) AccessToken() string {
	return s.accessToken
}

// User returns the account details captured at authentication time. It is
// the zero value for sessions built from a bare token.
func (s *Session) User() User {
	return s.user
}

// doAuthJSON performs an authenticated JSON request with this session's
// bearer token.
func (s *Session) doAuthJSON(
	ctx context.Context,
	method, path string,
	payload any,
) (*http.Response, error) {
	return s.client.doJSON(ctx, method, path, s.accessToken, payload)
}
