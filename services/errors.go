package services

import "errors"

var (
	// ErrNotFound: the referenced order, item or currency does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict: a status guard failed or a write could not be persisted.
	ErrConflict = errors.New("invalid state or already updated")
)
