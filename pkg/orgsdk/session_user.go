package orgsdk

import (
	"context"
	"fmt"
	"net/http"
)

// GetUser fetches any registered user's public projection by id.
func (s *Session) GetUser(ctx context.Context, userID string) (*User, error) {
	resp, err := s.doAuthJSON(ctx, http.MethodGet, "/users/"+userID, nil)
	if err != nil {
		return nil, err
	}

	var envelope successEnvelope[User]
	if err := decodeJSON(resp, &envelope, http.StatusOK); err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	return &envelope.Data, nil
}
