package repo

import "errors"

var (
	// ErrAccountNotFound is returned when no account matches the given credentials.
	ErrAccountNotFound = errors.New("account not found")

	// ErrDuplicatedValueUnique is returned when seed data repeats a unique key.
	ErrDuplicatedValueUnique = errors.New("unique constraint violation")
)
