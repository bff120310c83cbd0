package jwtx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultAccessTokenTTL is the default lifetime for access tokens. Tokens
// are stateless and cannot be revoked, so keep this short.
const DefaultAccessTokenTTL = time.Hour

// Claims are the access-token claims carried by every bearer token. The
// custom fields mirror the registered ones (sub == userId) so consumers that
// only understand the flat payload keep working.
type Claims struct {
	jwt.RegisteredClaims

	// UserID is the stable public identifier of the authenticated user.
	UserID string `json:"userId,omitempty"`

	// Email of the authenticated user at issuance time.
	Email string `json:"email,omitempty"`
}

// NewAccessClaims builds minimally-correct claims for a user access token.
func NewAccessClaims(userID, email, issuer string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID: userID,
		Email:  email,
	}
}

// ValidateExpiry ensures the token hasn't expired (exp) and isn't used
// before it becomes valid (nbf).
func (c *Claims) ValidateExpiry() error {
	now := time.Now().UTC()

	if c.ExpiresAt != nil && now.After(c.ExpiresAt.Time) {
		return ErrExpired
	}
	if c.NotBefore != nil && now.Before(c.NotBefore.Time) {
		return ErrNotYetValid
	}

	return nil
}
