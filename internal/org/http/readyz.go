package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/orgtab/internal/org/store"
	"github.com/aussiebroadwan/orgtab/pkg/httpx"
	"github.com/aussiebroadwan/orgtab/pkg/orgsdk"
)

// ReadyzHandler is the readiness probe; it checks the database connection
// and degrades to 503 when it is unreachable.
func ReadyzHandler(startTime time.Time, version string, st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &orgsdk.HealthChecks{Database: "ok"}
		overallStatus := "ok"
		statusCode := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, statusCode, orgsdk.HealthResponse{
			Status:  overallStatus,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		})
	}
}
