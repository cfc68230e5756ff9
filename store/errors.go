package store

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an operation targets a record that does
	// not exist.
	ErrNotFound = errors.New("record not found")

	// ErrEmptyFilter is returned by UpdateOne when called without a filter.
	ErrEmptyFilter = errors.New("update requires a filter")

	// ErrUnknownColumn is returned by the memory backend for filters or sets
	// naming a column the record type does not have.
	ErrUnknownColumn = errors.New("unknown column")
)

// OpError wraps a storage failure with the collection and operation.
type OpError struct {
	Op         string
	Collection string
	Err        error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("store: %s on %s failed: %v", e.Op, e.Collection, e.Err)
}

func (e *OpError) Unwrap() error {
	return e.Err
}

func wrap(op, collection string, err error) error {
	if err == nil {
		return nil
	}
	var opErr *OpError
	if errors.As(err, &opErr) {
		return err
	}
	return &OpError{Op: op, Collection: collection, Err: err}
}
