package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/aussiebroadwan/orgtab/internal/org/domain"
	"github.com/stretchr/testify/require"
)

// registerTestUser creates an account directly through AuthService so every
// user starts with their default organisation, same as production.
func registerTestUser(t *testing.T, auth *AuthService, firstName, email string) domain.User {
	t.Helper()

	result, err := auth.Register(context.Background(), RegisterInput{
		FirstName: firstName,
		LastName:  "Tester",
		Email:     email,
		Password:  "Sup3rSecret!",
	})
	require.NoError(t, err)
	return result.User
}

func TestOrganisationCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("caller becomes the first member", func(t *testing.T) {
		auth, _ := newAuthService(t)
		svc := &OrganisationService{Store: auth.Store}
		user := registerTestUser(t, auth, "Alice", "alice@example.com")

		org, err := svc.Create(ctx, user.ID, "Engineering", "Builds things")
		require.NoError(t, err)
		require.NotEmpty(t, org.ID)

		fetched, err := svc.GetScoped(ctx, org.ID, user.ID)
		require.NoError(t, err)
		require.Equal(t, "Engineering", fetched.Name)
		require.Equal(t, "Builds things", fetched.Description)
	})

	t.Run("empty name rejected", func(t *testing.T) {
		auth, _ := newAuthService(t)
		svc := &OrganisationService{Store: auth.Store}
		user := registerTestUser(t, auth, "Alice", "alice@example.com")

		_, err := svc.Create(ctx, user.ID, "   ", "")

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		require.Len(t, verr.Fields, 1)
		require.Equal(t, "name", verr.Fields[0].Field)
	})

	t.Run("duplicate names across tenants allowed", func(t *testing.T) {
		auth, _ := newAuthService(t)
		svc := &OrganisationService{Store: auth.Store}
		alice := registerTestUser(t, auth, "Alice", "alice@example.com")
		bob := registerTestUser(t, auth, "Bob", "bob@example.com")

		_, err := svc.Create(ctx, alice.ID, "Engineering", "")
		require.NoError(t, err)
		_, err = svc.Create(ctx, bob.ID, "Engineering", "")
		require.NoError(t, err)
	})
}

func TestOrganisationListForUser(t *testing.T) {
	ctx := context.Background()

	t.Run("returns memberships in insertion order", func(t *testing.T) {
		auth, _ := newAuthService(t)
		svc := &OrganisationService{Store: auth.Store}
		user := registerTestUser(t, auth, "Alice", "alice@example.com")

		names := []string{"First", "Second", "Third"}
		for _, name := range names {
			_, err := svc.Create(ctx, user.ID, name, "")
			require.NoError(t, err)
		}

		orgs, err := svc.ListForUser(ctx, user.ID)
		require.NoError(t, err)
		require.Len(t, orgs, 4)
		require.Equal(t, "Alice's Organisation", orgs[0].Name)
		for i, name := range names {
			require.Equal(t, name, orgs[i+1].Name)
		}
	})

	t.Run("listing is scoped to the caller", func(t *testing.T) {
		auth, _ := newAuthService(t)
		svc := &OrganisationService{Store: auth.Store}
		alice := registerTestUser(t, auth, "Alice", "alice@example.com")
		bob := registerTestUser(t, auth, "Bob", "bob@example.com")

		for i := 0; i < 3; i++ {
			_, err := svc.Create(ctx, alice.ID, fmt.Sprintf("Alice Org %d", i), "")
			require.NoError(t, err)
		}

		bobOrgs, err := svc.ListForUser(ctx, bob.ID)
		require.NoError(t, err)
		require.Len(t, bobOrgs, 1)
		require.Equal(t, "Bob's Organisation", bobOrgs[0].Name)
	})
}

func TestOrganisationGetScoped(t *testing.T) {
	ctx := context.Background()

	t.Run("nonexistent and foreign organisations report the same error", func(t *testing.T) {
		auth, _ := newAuthService(t)
		svc := &OrganisationService{Store: auth.Store}
		alice := registerTestUser(t, auth, "Alice", "alice@example.com")
		bob := registerTestUser(t, auth, "Bob", "bob@example.com")

		org, err := svc.Create(ctx, alice.ID, "Private", "")
		require.NoError(t, err)

		_, errForeign := svc.GetScoped(ctx, org.ID, bob.ID)
		_, errMissing := svc.GetScoped(ctx, "no-such-org", bob.ID)

		require.ErrorIs(t, errForeign, ErrOrganisationNotFound)
		require.ErrorIs(t, errMissing, ErrOrganisationNotFound)
	})
}

func TestOrganisationAddMember(t *testing.T) {
	ctx := context.Background()

	t.Run("grants the target access", func(t *testing.T) {
		auth, _ := newAuthService(t)
		svc := &OrganisationService{Store: auth.Store}
		alice := registerTestUser(t, auth, "Alice", "alice@example.com")
		bob := registerTestUser(t, auth, "Bob", "bob@example.com")

		org, err := svc.Create(ctx, alice.ID, "Shared", "")
		require.NoError(t, err)

		require.NoError(t, svc.AddMember(ctx, org.ID, bob.ID))

		fetched, err := svc.GetScoped(ctx, org.ID, bob.ID)
		require.NoError(t, err)
		require.Equal(t, "Shared", fetched.Name)
	})

	t.Run("re-adding a member is a no-op", func(t *testing.T) {
		auth, _ := newAuthService(t)
		svc := &OrganisationService{Store: auth.Store}
		alice := registerTestUser(t, auth, "Alice", "alice@example.com")
		bob := registerTestUser(t, auth, "Bob", "bob@example.com")

		org, err := svc.Create(ctx, alice.ID, "Shared", "")
		require.NoError(t, err)

		require.NoError(t, svc.AddMember(ctx, org.ID, bob.ID))
		require.NoError(t, svc.AddMember(ctx, org.ID, bob.ID))

		orgs, err := svc.ListForUser(ctx, bob.ID)
		require.NoError(t, err)
		require.Len(t, orgs, 2)
	})

	t.Run("unknown organisation rejected", func(t *testing.T) {
		auth, _ := newAuthService(t)
		svc := &OrganisationService{Store: auth.Store}
		alice := registerTestUser(t, auth, "Alice", "alice@example.com")

		err := svc.AddMember(ctx, "no-such-org", alice.ID)
		require.ErrorIs(t, err, ErrOrganisationNotFound)
	})

	t.Run("unknown user rejected", func(t *testing.T) {
		auth, _ := newAuthService(t)
		svc := &OrganisationService{Store: auth.Store}
		alice := registerTestUser(t, auth, "Alice", "alice@example.com")

		org, err := svc.Create(ctx, alice.ID, "Shared", "")
		require.NoError(t, err)

		err = svc.AddMember(ctx, org.ID, "no-such-user")
		require.ErrorIs(t, err, ErrUserNotFound)
	})
}
