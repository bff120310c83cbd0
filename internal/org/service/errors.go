package service

import (
	"errors"
	"strings"
)

var (
	// ErrAuthenticationFailed covers both an unknown email and a wrong
	// password. Callers must not be able to tell the two apart.
	ErrAuthenticationFailed = errors.New("service: authentication failed")

	ErrUserNotFound         = errors.New("service: user not found")
	ErrOrganisationNotFound = errors.New("service: organisation not found")
)

// FieldError qualifies a validation failure with the offending field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries one entry per invalid field, never just the first
// one encountered.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Field+": "+f.Message)
	}
	return "service: validation failed: " + strings.Join(msgs, "; ")
}

// DuplicateError reports a uniqueness violation on a single field.
type DuplicateError struct {
	Field string // "email" or "userId"
}

func (e *DuplicateError) Error() string {
	return "service: duplicate " + e.Field
}

// FieldError renders the duplicate as a field-qualified message in the form
// "<Field> already exists".
func (e *DuplicateError) FieldError() FieldError {
	label := e.Field
	if label != "" {
		label = strings.ToUpper(label[:1]) + label[1:]
	}
	return FieldError{Field: e.Field, Message: label + " already exists"}
}
