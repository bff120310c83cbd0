package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/aussiebroadwan/orgtab/internal/org/domain"
	"github.com/aussiebroadwan/orgtab/internal/org/store"
	"github.com/aussiebroadwan/orgtab/pkg/httpx"
	"github.com/aussiebroadwan/orgtab/pkg/jwtx"
)

type UserService struct {
	Store store.Store
}

// GetUserByID fetches a user by its public id.
func (s *UserService) GetUserByID(ctx context.Context, userID string) (domain.User, error) {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

// ResolveIdentity maps verified token claims to a live user. Tokens for
// accounts that no longer exist fail here, even though their signature and
// expiry still check out.
func (s *UserService) ResolveIdentity(ctx context.Context, claims jwtx.Claims) (httpx.Identity, error) {
	userID := claims.UserID
	if userID == "" {
		userID = claims.Subject
	}

	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return httpx.Identity{}, ErrUserNotFound
		}
		return httpx.Identity{}, fmt.Errorf("resolve identity: %w", err)
	}

	return httpx.Identity{UserID: user.ID, Email: user.Email}, nil
}
