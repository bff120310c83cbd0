package service

import (
	"time"

	"github.com/aussiebroadwan/orgtab/pkg/jwtx"
)

// TokenService issues stateless bearer tokens. Verification happens in the
// HTTP guard via the matching jwtx.Verifier; there is no revocation, a
// token stays valid until its expiry.
type TokenService struct {
	Signer    jwtx.Signer
	Issuer    string
	AccessTTL time.Duration
}

// Issue signs an access token binding the user's id and email.
func (s *TokenService) Issue(userID, email string) (string, error) {
	ttl := s.AccessTTL
	if ttl <= 0 {
		ttl = jwtx.DefaultAccessTokenTTL
	}

	claims := jwtx.NewAccessClaims(userID, email, s.Issuer, ttl, time.Now().UTC())
	return s.Signer.Sign(claims)
}
