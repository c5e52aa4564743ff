package service

import "errors"

var (
	// ErrInvalidName is returned when a create or update carries a missing or
	// blank name. It is raised before the store is touched.
	ErrInvalidName = errors.New("name is required")

	// ErrNotFound is returned when an update targets an id that does not exist.
	ErrNotFound = errors.New("record not found")
)
