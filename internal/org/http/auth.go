package http

import (
	"encoding/json"
	"net/http"

	"github.com/aussiebroadwan/orgtab/internal/org/service"
)

type AuthHandler struct {
	AuthService *service.AuthService
}

type registerRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Phone     string `json:"phone"`
}

type authData struct {
	AccessToken string      `json:"accessToken"`
	User        userPayload `json:"user"`
}

// HandleRegister creates a user plus their personal organisation and
// returns a bearer token.
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeStatus(w, http.StatusBadRequest, "Bad request", "Registration unsuccessful")
		return
	}

	result, err := h.AuthService.Register(ctx, service.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		Phone:     req.Phone,
	})
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, "Registration successful", authData{
		AccessToken: result.AccessToken,
		User:        newUserPayload(result.User),
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleLogin verifies credentials and returns a bearer token. Every
// failure mode shares the one authentication-failed body.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeStatus(w, http.StatusUnauthorized, "Bad request", "Authentication failed")
		return
	}

	result, err := h.AuthService.Login(ctx, req.Email, req.Password)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	writeSuccess(w, http.StatusOK, "Login successful", authData{
		AccessToken: result.AccessToken,
		User:        newUserPayload(result.User),
	})
}
