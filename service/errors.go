package service

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnauthorized gates writes that arrive without a valid session.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrEmailTaken rejects registration for an email that already has an account.
	ErrEmailTaken = errors.New("user already exists")
	// ErrNoSuchAccount and ErrPasswordMismatch are kept distinct for
	// logs and tests; handlers collapse both into one generic 401.
	ErrNoSuchAccount    = errors.New("no account with that email")
	ErrPasswordMismatch = errors.New("password mismatch")
)

// ValidationError reports invalid or missing input.
type ValidationError struct {
	Message string
	Fields  []string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Fields, ", "))
}

// IsAuthError reports whether err should surface as 401.
func IsAuthError(err error) bool {
	return errors.Is(err, ErrUnauthorized) ||
		errors.Is(err, ErrNoSuchAccount) ||
		errors.Is(err, ErrPasswordMismatch)
}
