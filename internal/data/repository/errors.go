package repository

import "errors"

var (
	// ErrDuplicateEmail is returned by UserRepository.Create when the email is taken.
	ErrDuplicateEmail = errors.New("email already exists")
	// ErrSessionNotFound is returned when revoking a token that is unknown or already revoked.
	ErrSessionNotFound = errors.New("session not found or already revoked")
)
