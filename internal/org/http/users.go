package http

import (
	"net/http"

	"github.com/aussiebroadwan/orgtab/internal/org/service"
	"github.com/aussiebroadwan/orgtab/pkg/httpx"
)

type UsersHandler struct {
	UserService *service.UserService
}

// HandleGet returns the public projection of a single user. Any
// authenticated caller may look up any registered user; the projection
// never includes the password hash.
func (h *UsersHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if _, ok := httpx.IdentityFromContext(ctx); !ok {
		writeStatus(w, http.StatusUnauthorized, "Unauthorized", "invalid token")
		return
	}

	user, err := h.UserService.GetUserByID(ctx, r.PathValue("userId"))
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	writeSuccess(w, http.StatusOK, "User details retrieved successfully", newUserPayload(user))
}
