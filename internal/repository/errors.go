package repository

import "errors"

var (
	// ErrNotFound - the requested document does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate - a uniqueness constraint was violated.
	ErrDuplicate = errors.New("duplicate")
)
