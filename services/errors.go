package services

import (
	"fmt"

	"inventory-backend/store"
)

// NotFoundError reports a missing record of a named entity. It matches
// store.ErrNotFound with errors.Is.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

func (e *NotFoundError) Unwrap() error {
	return store.ErrNotFound
}
