package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/aussiebroadwan/orgtab/internal/org/domain"
	"github.com/aussiebroadwan/orgtab/internal/org/service"
	"github.com/aussiebroadwan/orgtab/pkg/httpx"
	"github.com/aussiebroadwan/orgtab/pkg/slogx"
)

// userPayload is the public projection of a user. The password hash is not
// part of this struct so it can never be serialised by accident.
type userPayload struct {
	UserID    string `json:"userId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
}

func newUserPayload(u domain.User) userPayload {
	return userPayload{
		UserID:    u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Phone:     u.Phone,
	}
}

type orgPayload struct {
	OrgID       string `json:"orgId"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func newOrgPayload(o domain.Organisation) orgPayload {
	return orgPayload{OrgID: o.ID, Name: o.Name, Description: o.Description}
}

type successEnvelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func writeSuccess(w http.ResponseWriter, code int, message string, data any) {
	httpx.WriteJSON(w, code, successEnvelope{Status: "success", Message: message, Data: data})
}

type statusEnvelope struct {
	Status     string `json:"status"`
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
}

func writeStatus(w http.ResponseWriter, code int, status, message string) {
	httpx.WriteJSON(w, code, statusEnvelope{Status: status, Message: message, StatusCode: code})
}

type fieldErrorsEnvelope struct {
	Errors []service.FieldError `json:"errors"`
}

func writeFieldErrors(w http.ResponseWriter, fields []service.FieldError) {
	httpx.WriteJSON(w, http.StatusUnprocessableEntity, fieldErrorsEnvelope{Errors: fields})
}

// writeServiceError maps the service error taxonomy onto the wire contract.
// Anything unrecognised is logged and becomes a generic 500; internal
// detail never reaches the client.
func writeServiceError(ctx context.Context, w http.ResponseWriter, err error) {
	var verr *service.ValidationError
	var dup *service.DuplicateError

	switch {
	case errors.As(err, &verr):
		writeFieldErrors(w, verr.Fields)
	case errors.As(err, &dup):
		writeFieldErrors(w, []service.FieldError{dup.FieldError()})
	case errors.Is(err, service.ErrAuthenticationFailed):
		writeStatus(w, http.StatusUnauthorized, "Bad request", "Authentication failed")
	case errors.Is(err, service.ErrUserNotFound):
		writeStatus(w, http.StatusNotFound, "Not Found", "User not found")
	case errors.Is(err, service.ErrOrganisationNotFound):
		writeStatus(w, http.StatusNotFound, "Not Found", "Organisation not found")
	default:
		slogx.FromContext(ctx).Error("request failed", "err", err)
		writeStatus(w, http.StatusInternalServerError, "error", "Server error")
	}
}
