package domain

import "time"

// Organisation is a tenant record. ID is the stable public orgId.
type Organisation struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Membership links one user to one organisation. It owns neither side's
// lifecycle; a row is only meaningful while both referenced records exist.
type Membership struct {
	UserID    string
	OrgID     string
	CreatedAt time.Time
}
