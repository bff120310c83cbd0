package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aussiebroadwan/orgtab/internal/org/domain"
	"github.com/aussiebroadwan/orgtab/internal/org/store"
	"github.com/aussiebroadwan/orgtab/pkg/idx"
	"github.com/aussiebroadwan/orgtab/pkg/slogx"
)

// OrganisationService owns organisation and membership operations. Every
// read on behalf of a caller is scoped to the caller's memberships.
type OrganisationService struct {
	Store store.Store
}

// Create makes a new organisation with the caller as its first member. The
// organisation insert and the membership insert share a transaction.
func (s *OrganisationService) Create(ctx context.Context, callerID, name, description string) (domain.Organisation, error) {
	if strings.TrimSpace(name) == "" {
		return domain.Organisation{}, &ValidationError{Fields: []FieldError{
			{Field: "name", Message: "Organisation name is required"},
		}}
	}

	org := domain.Organisation{
		ID:          idx.New().String(),
		Name:        name,
		Description: description,
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Organisations().CreateOrganisation(ctx, org); err != nil {
			return err
		}
		return tx.Memberships().AddMember(ctx, domain.Membership{
			UserID: callerID,
			OrgID:  org.ID,
		})
	})
	if err != nil {
		return domain.Organisation{}, fmt.Errorf("create organisation: %w", err)
	}

	slogx.FromContext(ctx).Info("organisation created", "org_id", org.ID, "user_id", callerID)
	return org, nil
}

// ListForUser returns the caller's organisations in membership insertion
// order. A user with no memberships gets an empty list, not an error.
func (s *OrganisationService) ListForUser(ctx context.Context, userID string) ([]domain.Organisation, error) {
	orgs, err := s.Store.Organisations().ListOrganisationsForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list organisations: %w", err)
	}
	return orgs, nil
}

// GetScoped fetches one organisation through the caller's membership. An
// organisation the caller doesn't belong to and one that doesn't exist both
// come back as ErrOrganisationNotFound; nothing leaks about other tenants.
func (s *OrganisationService) GetScoped(ctx context.Context, orgID, callerID string) (domain.Organisation, error) {
	org, err := s.Store.Organisations().GetOrganisationForMember(ctx, orgID, callerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Organisation{}, ErrOrganisationNotFound
		}
		return domain.Organisation{}, fmt.Errorf("get organisation: %w", err)
	}
	return org, nil
}

// AddMember links userID to the organisation. Both sides are validated
// before the insert; adding an existing member is a no-op.
func (s *OrganisationService) AddMember(ctx context.Context, orgID, userID string) error {
	if _, err := s.Store.Organisations().GetOrganisationByID(ctx, orgID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrOrganisationNotFound
		}
		return fmt.Errorf("get organisation: %w", err)
	}

	if _, err := s.Store.Users().GetUserByID(ctx, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("get user: %w", err)
	}

	if err := s.Store.Memberships().AddMember(ctx, domain.Membership{UserID: userID, OrgID: orgID}); err != nil {
		return fmt.Errorf("add member: %w", err)
	}

	slogx.FromContext(ctx).Info("member added", "org_id", orgID, "user_id", userID)
	return nil
}
