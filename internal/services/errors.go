package services

import "errors"

var (
	ErrNotAuthorized   = errors.New("not authorized")
	ErrProfileNotFound = errors.New("profile not found")
	ErrNotFound        = errors.New("not found")
	ErrInvalidInput    = errors.New("invalid input")
)
