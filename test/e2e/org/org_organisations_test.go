package org_test

import (
	"testing"

	"github.com/aussiebroadwan/orgtab/pkg/orgsdk"
	"github.com/stretchr/testify/require"
)

// TestCreateAndListOrganisations verifies created organisations appear in
// the caller's listing in creation order.
func TestCreateAndListOrganisations(t *testing.T) {
	baseURL, cleanup := setupOrgContainer(t)
	defer cleanup()

	client := orgsdk.NewSDKClient(baseURL)
	session := registerUser(t, client, "Olive", "Owner")

	first, err := session.CreateOrganisation(t.Context(), orgsdk.CreateOrganisationRequest{
		Name:        "Engineering",
		Description: "Builds things",
	})
	require.NoError(t, err)
	require.NotEmpty(t, first.OrgID)
	require.Equal(t, "Engineering", first.Name)

	second, err := session.CreateOrganisation(t.Context(), orgsdk.CreateOrganisationRequest{
		Name: "Design",
	})
	require.NoError(t, err)

	orgs, err := session.ListOrganisations(t.Context())
	require.NoError(t, err)
	require.Len(t, orgs, 3, "default organisation plus the two created")
	require.Equal(t, "Olive's Organisation", orgs[0].Name)
	require.Equal(t, first.OrgID, orgs[1].OrgID)
	require.Equal(t, second.OrgID, orgs[2].OrgID)
}

// TestGetOrganisationScopedToMembership verifies members can fetch an
// organisation while non-members get a 404.
func TestGetOrganisationScopedToMembership(t *testing.T) {
	baseURL, cleanup := setupOrgContainer(t)
	defer cleanup()

	client := orgsdk.NewSDKClient(baseURL)
	owner := registerUser(t, client, "Alice", "Able")
	outsider := registerUser(t, client, "Bob", "Baker")

	org, err := owner.CreateOrganisation(t.Context(), orgsdk.CreateOrganisationRequest{
		Name: "Private Club",
	})
	require.NoError(t, err)

	fetched, err := owner.GetOrganisation(t.Context(), org.OrgID)
	require.NoError(t, err)
	require.Equal(t, org.OrgID, fetched.OrgID)

	_, err = outsider.GetOrganisation(t.Context(), org.OrgID)
	assertNotFound(t, err, "non-member fetch")
}

// TestAddMemberGrantsAccess verifies adding a user makes the organisation
// visible to them, and that re-adding is a no-op.
func TestAddMemberGrantsAccess(t *testing.T) {
	baseURL, cleanup := setupOrgContainer(t)
	defer cleanup()

	client := orgsdk.NewSDKClient(baseURL)
	owner := registerUser(t, client, "Carol", "Chief")
	member := registerUser(t, client, "Dave", "Dev")

	org, err := owner.CreateOrganisation(t.Context(), orgsdk.CreateOrganisationRequest{
		Name: "Shared Space",
	})
	require.NoError(t, err)

	require.NoError(t, owner.AddMember(t.Context(), org.OrgID, member.User().UserID))

	fetched, err := member.GetOrganisation(t.Context(), org.OrgID)
	require.NoError(t, err)
	require.Equal(t, "Shared Space", fetched.Name)

	// Idempotent re-add.
	require.NoError(t, owner.AddMember(t.Context(), org.OrgID, member.User().UserID))

	orgs, err := member.ListOrganisations(t.Context())
	require.NoError(t, err)

	count := 0
	for _, o := range orgs {
		if o.OrgID == org.OrgID {
			count++
		}
	}
	require.Equal(t, 1, count, "membership should appear exactly once")
}

// TestAddMemberUnknownTargets verifies adding to a missing organisation or
// adding a missing user both report 404.
func TestAddMemberUnknownTargets(t *testing.T) {
	baseURL, cleanup := setupOrgContainer(t)
	defer cleanup()

	client := orgsdk.NewSDKClient(baseURL)
	owner := registerUser(t, client, "Erin", "Exec")

	org, err := owner.CreateOrganisation(t.Context(), orgsdk.CreateOrganisationRequest{
		Name: "Lonely Org",
	})
	require.NoError(t, err)

	err = owner.AddMember(t.Context(), "01INVALIDORGIDXXXXXXXXXXXX", owner.User().UserID)
	assertNotFound(t, err, "unknown organisation")

	err = owner.AddMember(t.Context(), org.OrgID, "01INVALIDUSERIDXXXXXXXXXXX")
	assertNotFound(t, err, "unknown user")
}
