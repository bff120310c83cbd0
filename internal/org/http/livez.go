package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/orgtab/pkg/httpx"
	"github.com/aussiebroadwan/orgtab/pkg/orgsdk"
)

// LivezHandler is the liveness probe: always 200 while the process runs.
func LivezHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, orgsdk.HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).String(),
			Version: version,
		})
	}
}
