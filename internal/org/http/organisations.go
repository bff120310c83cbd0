package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aussiebroadwan/orgtab/internal/org/service"
	"github.com/aussiebroadwan/orgtab/pkg/httpx"
)

type OrganisationsHandler struct {
	OrganisationService *service.OrganisationService
}

type createOrganisationRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// HandleCreate makes a new organisation with the caller as first member.
func (h *OrganisationsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	identity, ok := httpx.IdentityFromContext(ctx)
	if !ok {
		writeStatus(w, http.StatusUnauthorized, "Unauthorized", "invalid token")
		return
	}

	var req createOrganisationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeStatus(w, http.StatusBadRequest, "Bad Request", "Client error")
		return
	}

	org, err := h.OrganisationService.Create(ctx, identity.UserID, req.Name, req.Description)
	if err != nil {
		// Unlike registration, this endpoint reports validation failures
		// with the status envelope rather than the field-errors array.
		var verr *service.ValidationError
		if errors.As(err, &verr) && len(verr.Fields) > 0 {
			writeStatus(w, http.StatusUnprocessableEntity, "Bad Request", verr.Fields[0].Message)
			return
		}
		writeServiceError(ctx, w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, "Organisation created successfully", newOrgPayload(org))
}

// HandleList returns every organisation the caller is a member of.
func (h *OrganisationsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	identity, ok := httpx.IdentityFromContext(ctx)
	if !ok {
		writeStatus(w, http.StatusUnauthorized, "Unauthorized", "invalid token")
		return
	}

	orgs, err := h.OrganisationService.ListForUser(ctx, identity.UserID)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	payload := make([]orgPayload, 0, len(orgs))
	for _, o := range orgs {
		payload = append(payload, newOrgPayload(o))
	}

	writeSuccess(w, http.StatusOK, "Organisations retrieved successfully", map[string]any{
		"organisations": payload,
	})
}

// HandleGet fetches one organisation scoped to the caller's memberships. A
// missing organisation and one the caller doesn't belong to produce the
// same 404.
func (h *OrganisationsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	identity, ok := httpx.IdentityFromContext(ctx)
	if !ok {
		writeStatus(w, http.StatusUnauthorized, "Unauthorized", "invalid token")
		return
	}

	org, err := h.OrganisationService.GetScoped(ctx, r.PathValue("orgId"), identity.UserID)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	writeSuccess(w, http.StatusOK, "Organisation details retrieved successfully", newOrgPayload(org))
}

type addMemberRequest struct {
	UserID string `json:"userId"`
}

// HandleAddMember links the supplied user to the organisation.
//
// TODO: require the caller to be a member of the target organisation before
// granting add-rights; today any authenticated caller may add members.
func (h *OrganisationsHandler) HandleAddMember(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if _, ok := httpx.IdentityFromContext(ctx); !ok {
		writeStatus(w, http.StatusUnauthorized, "Unauthorized", "invalid token")
		return
	}

	var req addMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeStatus(w, http.StatusBadRequest, "Bad Request", "Client error")
		return
	}

	if err := h.OrganisationService.AddMember(ctx, r.PathValue("orgId"), req.UserID); err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	writeSuccess(w, http.StatusOK, "User added to organisation successfully", nil)
}
