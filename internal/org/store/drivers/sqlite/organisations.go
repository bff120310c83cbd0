package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/aussiebroadwan/orgtab/internal/org/domain"
	"github.com/aussiebroadwan/orgtab/internal/org/store"
)

type organisationsRepo struct {
	db dbtx
}

func (r *organisationsRepo) CreateOrganisation(ctx context.Context, o domain.Organisation) error {
	now := time.Now().UTC()
	if o.CreatedAt.IsZero() {
		o.CreatedAt = now
	}
	if o.UpdatedAt.IsZero() {
		o.UpdatedAt = o.CreatedAt
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO organisations (org_id, name, description, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`,
		o.ID, o.Name, o.Description, toMillis(o.CreatedAt), toMillis(o.UpdatedAt),
	)
	if err != nil {
		if isUniqueViolation(err, "organisations.org_id") {
			return &store.DuplicateError{Field: "orgId"}
		}
		return fmt.Errorf("insert organisation: %w", err)
	}
	return nil
}

func (r *organisationsRepo) GetOrganisationByID(ctx context.Context, orgID string) (domain.Organisation, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT org_id, name, description, created_at, updated_at
		FROM organisations WHERE org_id = ?`, orgID)
	return scanOrganisation(row)
}

// GetOrganisationForMember joins through the membership table, so an
// organisation the caller does not belong to is indistinguishable from one
// that does not exist.
func (r *organisationsRepo) GetOrganisationForMember(ctx context.Context, orgID, userID string) (domain.Organisation, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT o.org_id, o.name, o.description, o.created_at, o.updated_at
		FROM organisations o
		JOIN organisation_members m ON m.org_id = o.org_id
		WHERE o.org_id = ? AND m.user_id = ?`, orgID, userID)
	return scanOrganisation(row)
}

// ListOrganisationsForUser orders by the membership row id, which is the
// insertion order of the memberships rather than anything about the
// organisations themselves.
func (r *organisationsRepo) ListOrganisationsForUser(ctx context.Context, userID string) ([]domain.Organisation, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT o.org_id, o.name, o.description, o.created_at, o.updated_at
		FROM organisations o
		JOIN organisation_members m ON m.org_id = o.org_id
		WHERE m.user_id = ?
		ORDER BY m.id`, userID)
	if err != nil {
		return nil, fmt.Errorf("list organisations: %w", err)
	}
	defer rows.Close()

	var out []domain.Organisation
	for rows.Next() {
		o, err := scanOrganisation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list organisations: %w", err)
	}
	return out, nil
}

func scanOrganisation(row rowScanner) (domain.Organisation, error) {
	var o domain.Organisation
	var createdAt, updatedAt int64

	err := row.Scan(&o.ID, &o.Name, &o.Description, &createdAt, &updatedAt)
	if err != nil {
		return domain.Organisation{}, mapNotFound(err)
	}

	o.CreatedAt = fromMillis(createdAt)
	o.UpdatedAt = fromMillis(updatedAt)
	return o, nil
}
