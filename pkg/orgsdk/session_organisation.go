package orgsdk

import (
	"context"
	"fmt"
	"net/http"
)

// CreateOrganisation creates a new organisation owned by the session user,
// who becomes its first member.
func (s *Session) CreateOrganisation(ctx context.Context, req CreateOrganisationRequest) (*Organisation, error) {
	resp, err := s.doAuthJSON(ctx, http.MethodPost, "/organisations", req)
	if err != nil {
		return nil, err
	}

	var envelope successEnvelope[Organisation]
	if err := decodeJSON(resp, &envelope, http.StatusCreated); err != nil {
		return nil, fmt.Errorf("create organisation: %w", err)
	}

	return &envelope.Data, nil
}

// ListOrganisations returns the organisations the session user belongs to,
// oldest membership first.
func (s *Session) ListOrganisations(ctx context.Context) ([]Organisation, error) {
	resp, err := s.doAuthJSON(ctx, http.MethodGet, "/organisations", nil)
	if err != nil {
		return nil, err
	}

	var envelope successEnvelope[OrganisationList]
	if err := decodeJSON(resp, &envelope, http.StatusOK); err != nil {
		return nil, fmt.Errorf("list organisations: %w", err)
	}

	return envelope.Data.Organisations, nil
}

// GetOrganisation fetches one organisation by id. Organisations the session
// user is not a member of report not found.
func (s *Session) GetOrganisation(ctx context.Context, orgID string) (*Organisation, error) {
	resp, err := s.doAuthJSON(ctx, http.MethodGet, "/organisations/"+orgID, nil)
	if err != nil {
		return nil, err
	}

	var envelope successEnvelope[Organisation]
	if err := decodeJSON(resp, &envelope, http.StatusOK); err != nil {
		return nil, fmt.Errorf("get organisation: %w", err)
	}

	return &envelope.Data, nil
}

// AddMember adds an existing user to an organisation. Adding a user twice
// is a no-op.
func (s *Session) AddMember(ctx context.Context, orgID, userID string) error {
	resp, err := s.doAuthJSON(ctx, http.MethodPost, "/organisations/"+orgID+"/users", AddMemberRequest{UserID: userID})
	if err != nil {
		return err
	}

	var envelope successEnvelope[map[string]any]
	if err := decodeJSON(resp, &envelope, http.StatusOK); err != nil {
		return fmt.Errorf("add member: %w", err)
	}

	return nil
}
