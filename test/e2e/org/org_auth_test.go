package org_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/aussiebroadwan/orgtab/pkg/orgsdk"
	"github.com/stretchr/testify/require"
)

// TestRegisterCreatesDefaultOrganisation verifies registration returns a
// token and seeds the user's first organisation.
func TestRegisterCreatesDefaultOrganisation(t *testing.T) {
	baseURL, cleanup := setupOrgContainer(t)
	defer cleanup()

	client := orgsdk.NewSDKClient(baseURL)
	session := registerUser(t, client, "John", "Doe")

	require.Equal(t, "John", session.User().FirstName)
	require.Equal(t, "Doe", session.User().LastName)

	orgs, err := session.ListOrganisations(t.Context())
	require.NoError(t, err)
	require.Len(t, orgs, 1)
	require.Equal(t, "John's Organisation", orgs[0].Name)
	require.NotEmpty(t, orgs[0].OrgID)
}

// TestRegisterDuplicateEmail verifies re-registering an email is rejected
// with a field-level error.
func TestRegisterDuplicateEmail(t *testing.T) {
	baseURL, cleanup := setupOrgContainer(t)
	defer cleanup()

	client := orgsdk.NewSDKClient(baseURL)

	email := fmt.Sprintf("dup.%d@example.com", time.Now().UnixNano())
	req := orgsdk.RegisterRequest{
		FirstName: "First",
		LastName:  "User",
		Email:     email,
		Password:  "Sup3rSecret!",
	}

	_, err := client.Register(t.Context(), req)
	require.NoError(t, err)

	_, err = client.Register(t.Context(), req)
	var valErr *orgsdk.ValidationError
	require.ErrorAs(t, err, &valErr)
	require.Len(t, valErr.Errors, 1)
	require.Equal(t, "email", valErr.Errors[0].Field)
}

// TestRegisterMissingFields verifies every missing required field is
// reported in one response.
func TestRegisterMissingFields(t *testing.T) {
	baseURL, cleanup := setupOrgContainer(t)
	defer cleanup()

	client := orgsdk.NewSDKClient(baseURL)

	_, err := client.Register(t.Context(), orgsdk.RegisterRequest{})

	var valErr *orgsdk.ValidationError
	require.ErrorAs(t, err, &valErr)

	fields := make([]string, 0, len(valErr.Errors))
	for _, fe := range valErr.Errors {
		fields = append(fields, fe.Field)
	}
	require.ElementsMatch(t, []string{"firstName", "lastName", "email", "password"}, fields)
}

// TestLoginRoundTrip verifies a registered user can log back in and use the
// new token.
func TestLoginRoundTrip(t *testing.T) {
	baseURL, cleanup := setupOrgContainer(t)
	defer cleanup()

	client := orgsdk.NewSDKClient(baseURL)

	email := fmt.Sprintf("login.%d@example.com", time.Now().UnixNano())
	_, err := client.Register(t.Context(), orgsdk.RegisterRequest{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     email,
		Password:  "Sup3rSecret!",
	})
	require.NoError(t, err)

	session, err := client.Login(t.Context(), orgsdk.LoginRequest{
		Email:    email,
		Password: "Sup3rSecret!",
	})
	require.NoError(t, err)

	user, err := session.GetUser(t.Context(), session.User().UserID)
	require.NoError(t, err)
	require.Equal(t, email, user.Email)
}

// TestLoginFailuresAreUniform verifies an unknown email and a wrong password
// produce byte-identical error responses.
func TestLoginFailuresAreUniform(t *testing.T) {
	baseURL, cleanup := setupOrgContainer(t)
	defer cleanup()

	client := orgsdk.NewSDKClient(baseURL)

	email := fmt.Sprintf("uniform.%d@example.com", time.Now().UnixNano())
	_, err := client.Register(t.Context(), orgsdk.RegisterRequest{
		FirstName: "Uni",
		LastName:  "Form",
		Email:     email,
		Password:  "Sup3rSecret!",
	})
	require.NoError(t, err)

	_, errUnknown := client.Login(t.Context(), orgsdk.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	_, errBadPass := client.Login(t.Context(), orgsdk.LoginRequest{
		Email:    email,
		Password: "wrong-password",
	})

	assertUnauthorized(t, errUnknown, "unknown email")
	assertUnauthorized(t, errBadPass, "wrong password")

	var apiUnknown, apiBadPass *orgsdk.APIError
	require.True(t, errors.As(errUnknown, &apiUnknown))
	require.True(t, errors.As(errBadPass, &apiBadPass))
	require.Equal(t, *apiUnknown, *apiBadPass, "failure responses must not reveal which credential was wrong")
}
