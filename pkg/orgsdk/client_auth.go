package orgsdk

import (
	"context"
	"net/http"
)

// Register creates a new account plus its default organisation and returns
// an authenticated session for the new user.
func (c *SDKClient) Register(ctx context.Context, req RegisterRequest) (*Session, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/auth/register", "", req)
	if err != nil {
		return nil, err
	}

	var envelope successEnvelope[AuthData]
	if err := decodeJSON(resp, &envelope, http.StatusCreated); err != nil {
		return nil, err
	}

	return newSession(c, envelope.Data), nil
}

// Login authenticates an existing account and returns a session.
func (c *SDKClient) Login(ctx context.Context, req LoginRequest) (*Session, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/auth/login", "", req)
	if err != nil {
		return nil, err
	}

	var envelope successEnvelope[AuthData]
	if err := decodeJSON(resp, &envelope, http.StatusOK); err != nil {
		return nil, err
	}

	return newSession(c, envelope.Data), nil
}

// NewSessionFromToken creates a session from an existing bearer token, for
// callers that persisted a token from an earlier authentication.
func (c *SDKClient) NewSessionFromToken(accessToken string) *Session {
	return &Session{client: c, accessToken: accessToken}
}
