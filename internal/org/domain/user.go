package domain

import "time"

// User is an identity record. ID is the stable public identifier handed out
// at registration (a ULID, distinct from the storage primary key) and never
// changes. PasswordHash is a bcrypt hash and must never appear in any
// response payload.
type User struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	Phone        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
