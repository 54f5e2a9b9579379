// File: /models/errors.go
package models

import "fmt"

// ValidationError indicates malformed or missing input, detected before any write.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// DuplicateKeyError indicates a uniqueness violation (e.g. vehicle plate).
type DuplicateKeyError struct {
	Field   string
	Message string
}

func (e *DuplicateKeyError) Error() string {
	return e.Message
}

// NotFoundError indicates that a referenced record does not exist.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

// InvalidTransitionError indicates an illegal status change. The only way into
// the Sold status is the sale operation, and nothing leaves it.
type InvalidTransitionError struct {
	Message string
}

func (e *InvalidTransitionError) Error() string {
	return e.Message
}

// InvalidAmountError indicates a non-positive monetary amount where a positive
// one is required.
type InvalidAmountError struct {
	Field   string
	Message string
}

func (e *InvalidAmountError) Error() string {
	return e.Message
}

// InternalStoreError wraps an unexpected datastore failure.
type InternalStoreError struct {
	Err error
}

func (e *InternalStoreError) Error() string {
	return fmt.Sprintf("datastore failure: %v", e.Err)
}

func (e *InternalStoreError) Unwrap() error {
	return e.Err
}
