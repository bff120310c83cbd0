package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/orgtab/internal/org/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// DuplicateError reports which unique column was violated so the service
// layer can name the offending field in its response. It matches
// ErrAlreadyExists under errors.Is.
type DuplicateError struct {
	Field string // "email" or "userId"
}

func (e *DuplicateError) Error() string { return "store: duplicate " + e.Field }

func (e *DuplicateError) Is(target error) bool { return target == ErrAlreadyExists }

// Store is the root data access interface. Concrete drivers (sqlite today)
// implement this. Sub-repositories keep concerns tidy and testable.
type Store interface {
	Users() Users
	Organisations() Organisations
	Memberships() Memberships

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction, committing when fn returns
	// nil and rolling back otherwise. Registration's three writes go
	// through this so a half-registered user can never be observed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// CreateUser inserts a new user (id is provided by the app via ULID).
	// Returns a *DuplicateError naming the violated column when the email
	// or user id is already taken.
	CreateUser(ctx context.Context, u domain.User) error

	// GetUserByID returns a user by its public id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail looks a user up by exact email match. Matching is
	// case-sensitive, mirroring the unique index.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)
}

type Organisations interface {
	// CreateOrganisation inserts a new organisation (id is a ULID).
	CreateOrganisation(ctx context.Context, o domain.Organisation) error

	// GetOrganisationByID fetches an organisation regardless of who asks.
	// Only safe for internal checks; request paths must use
	// GetOrganisationForMember to preserve tenant isolation.
	GetOrganisationByID(ctx context.Context, orgID string) (domain.Organisation, error)

	// GetOrganisationForMember returns the organisation only when a
	// membership row links userID to orgID. A missing org and a
	// non-membership are both ErrNotFound.
	GetOrganisationForMember(ctx context.Context, orgID, userID string) (domain.Organisation, error)

	// ListOrganisationsForUser returns every organisation the user is a
	// member of, in membership insertion order.
	ListOrganisationsForUser(ctx context.Context, userID string) ([]domain.Organisation, error)
}

type Memberships interface {
	// AddMember inserts a membership row. Inserting an existing
	// (user, org) pair is a no-op rather than an error.
	AddMember(ctx context.Context, m domain.Membership) error

	// HasMember reports whether a membership row links userID to orgID.
	HasMember(ctx context.Context, orgID, userID string) (bool, error)
}
