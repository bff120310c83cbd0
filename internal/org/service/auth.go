package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/aussiebroadwan/orgtab/internal/org/domain"
	"github.com/aussiebroadwan/orgtab/internal/org/store"
	"github.com/aussiebroadwan/orgtab/pkg/cryptox"
	"github.com/aussiebroadwan/orgtab/pkg/idx"
	"github.com/aussiebroadwan/orgtab/pkg/slogx"
)

// AuthService orchestrates registration and login.
type AuthService struct {
	Store  store.Store
	Tokens *TokenService
}

type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Phone     string
}

// AuthResult is what both registration and login hand back: a bearer token
// plus the user it authenticates.
type AuthResult struct {
	AccessToken string
	User        domain.User
}

// Register creates a user, bootstraps their personal organisation and
// membership, and issues a token. The three writes run in a single
// transaction: either the user ends up with their organisation or nothing
// is persisted at all.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (AuthResult, error) {
	l := slogx.FromContext(ctx)

	if verr := validateRegistration(in); verr != nil {
		return AuthResult{}, verr
	}

	hash, err := cryptox.HashPassword(in.Password)
	if err != nil {
		return AuthResult{}, fmt.Errorf("hash password: %w", err)
	}

	user := domain.User{
		ID:           idx.New().String(),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		PasswordHash: hash,
		Phone:        in.Phone,
	}
	org := domain.Organisation{
		ID:          idx.New().String(),
		Name:        in.FirstName + "'s Organisation",
		Description: "",
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().CreateUser(ctx, user); err != nil {
			return err
		}
		if err := tx.Organisations().CreateOrganisation(ctx, org); err != nil {
			return err
		}
		return tx.Memberships().AddMember(ctx, domain.Membership{
			UserID: user.ID,
			OrgID:  org.ID,
		})
	})
	if err != nil {
		var dup *store.DuplicateError
		if errors.As(err, &dup) {
			return AuthResult{}, &DuplicateError{Field: dup.Field}
		}
		return AuthResult{}, fmt.Errorf("register: %w", err)
	}

	token, err := s.Tokens.Issue(user.ID, user.Email)
	if err != nil {
		return AuthResult{}, fmt.Errorf("issue token: %w", err)
	}

	l.Info("user registered", "user_id", user.ID, "org_id", org.ID)
	return AuthResult{AccessToken: token, User: user}, nil
}

// Login verifies the credential pair and issues a token. Unknown email and
// wrong password both map to ErrAuthenticationFailed; the distinction only
// exists in the server-side log.
func (s *AuthService) Login(ctx context.Context, email, password string) (AuthResult, error) {
	l := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			l.Info("login failed", "reason", "unknown_email")
			return AuthResult{}, ErrAuthenticationFailed
		}
		return AuthResult{}, fmt.Errorf("lookup user: %w", err)
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		l.Info("login failed", "reason", "bad_password", "user_id", user.ID)
		return AuthResult{}, ErrAuthenticationFailed
	}

	token, err := s.Tokens.Issue(user.ID, user.Email)
	if err != nil {
		return AuthResult{}, fmt.Errorf("issue token: %w", err)
	}

	l.Info("user logged in", "user_id", user.ID)
	return AuthResult{AccessToken: token, User: user}, nil
}

func validateRegistration(in RegisterInput) *ValidationError {
	var fields []FieldError
	if in.FirstName == "" {
		fields = append(fields, FieldError{Field: "firstName", Message: "First name is required"})
	}
	if in.LastName == "" {
		fields = append(fields, FieldError{Field: "lastName", Message: "Last name is required"})
	}
	if in.Email == "" {
		fields = append(fields, FieldError{Field: "email", Message: "Email is required"})
	}
	if in.Password == "" {
		fields = append(fields, FieldError{Field: "password", Message: "Password is required"})
	}
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}
