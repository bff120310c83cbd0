package orgsdk

// User is the public representation of an account.
type User struct {
	UserID    string `json:"userId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
}

// Organisation is the public representation of an organisation.
type Organisation struct {
	OrgID       string `json:"orgId"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// RegisterRequest is the payload for creating a new account.
type RegisterRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Phone     string `json:"phone,omitempty"`
}

// LoginRequest is the payload for authenticating an existing account.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateOrganisationRequest is the payload for creating an organisation.
type CreateOrganisationRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// AddMemberRequest is the payload for adding a user to an organisation.
type AddMemberRequest struct {
	UserID string `json:"userId"`
}

// AuthData is the data section of a successful register or login response.
type AuthData struct {
	AccessToken string `json:"accessToken"`
	User        User   `json:"user"`
}

// OrganisationList is the data section of the organisation listing response.
type OrganisationList struct {
	Organisations []Organisation `json:"organisations"`
}

// successEnvelope wraps every 2xx response body.
type successEnvelope[T any] struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

// HealthResponse is returned by the /livez and /readyz probes.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports per-dependency health for the readiness probe.
type HealthChecks struct {
	Database string `json:"database"`
}
