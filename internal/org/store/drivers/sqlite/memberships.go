package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/aussiebroadwan/orgtab/internal/org/domain"
)

type membershipsRepo struct {
	db dbtx
}

// AddMember is idempotent: the (user_id, org_id) pair is unique and
// re-inserting an existing membership is silently ignored.
func (r *membershipsRepo) AddMember(ctx context.Context, m domain.Membership) error {
	createdAt := m.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO organisation_members (user_id, org_id, created_at)
		VALUES (?, ?, ?)
		ON CONFLICT (user_id, org_id) DO NOTHING`,
		m.UserID, m.OrgID, toMillis(createdAt),
	)
	if err != nil {
		return fmt.Errorf("insert membership: %w", err)
	}
	return nil
}

func (r *membershipsRepo) HasMember(ctx context.Context, orgID, userID string) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(1) FROM organisation_members
		WHERE org_id = ? AND user_id = ?`, orgID, userID).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("count membership: %w", err)
	}
	return count > 0, nil
}
