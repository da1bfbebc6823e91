package models

import "errors"

// ErrIDAlreadyAssigned is returned when inserting a project that already carries an id
var ErrIDAlreadyAssigned = errors.New("project id is already assigned")

// StoreError is the single failure kind surfaced by the persistence layer.
// It always carries the underlying cause.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return "store failure: " + e.Op + ": " + e.Err.Error()
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// IsStoreError reports whether err is, or wraps, a StoreError
func IsStoreError(err error) bool {
	var se *StoreError
	return errors.As(err, &se)
}
