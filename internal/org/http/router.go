package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/orgtab/internal/org/service"
	"github.com/aussiebroadwan/orgtab/internal/org/store"
	"github.com/aussiebroadwan/orgtab/pkg/httpx"
	"github.com/aussiebroadwan/orgtab/pkg/jwtx"
	"github.com/aussiebroadwan/orgtab/pkg/slogx"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store store.Store

	AuthService         *service.AuthService
	UserService         *service.UserService
	OrganisationService *service.OrganisationService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerUsers()
	r.registerOrganisations()
	r.registerSystem()
}

// ServeHTTP implements http.Handler for Router and applies the global
// middleware chain.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// guard is the access guard applied to every protected route: it verifies
// the bearer token and resolves it to a live identity before the handler
// runs.
func (r *Router) guard(h http.Handler) http.Handler {
	return httpx.Chain(h, httpx.AuthnMiddleware(r.verifier, r.UserService))
}

func (r *Router) registerAuth() {
	h := &AuthHandler{AuthService: r.AuthService}

	r.Mux.Handle("POST /auth/register", http.HandlerFunc(h.HandleRegister))
	r.Mux.Handle("POST /auth/login", http.HandlerFunc(h.HandleLogin))
}

func (r *Router) registerUsers() {
	h := &UsersHandler{UserService: r.UserService}

	r.Mux.Handle("GET /users/{userId}", r.guard(http.HandlerFunc(h.HandleGet)))
}

func (r *Router) registerOrganisations() {
	h := &OrganisationsHandler{OrganisationService: r.OrganisationService}

	r.Mux.Handle("POST /organisations", r.guard(http.HandlerFunc(h.HandleCreate)))
	r.Mux.Handle("GET /organisations", r.guard(http.HandlerFunc(h.HandleList)))
	r.Mux.Handle("GET /organisations/{orgId}", r.guard(http.HandlerFunc(h.HandleGet)))
	r.Mux.Handle("POST /organisations/{orgId}/users", r.guard(http.HandlerFunc(h.HandleAddMember)))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
}
