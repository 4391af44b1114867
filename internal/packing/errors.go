package packing

import (
	"errors"
	"fmt"
)

// ValidationError rejects user input before any state change.
// Field is "name" or "date"; Title/Message are ready for display.
type ValidationError struct {
	Field   string
	Title   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NotFoundError means an id no longer matches anything in the collection.
type NotFoundError struct {
	Kind string // trip | category | item
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.ID)
}

// PersistenceError wraps a failed read or write of the backing store.
// After a failed write the in-memory change has already been applied.
type PersistenceError struct {
	Op  string // load | decode | save
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s trips: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// ErrUndoUsed is returned when an undo token is applied a second time.
var ErrUndoUsed = errors.New("undo already applied")

func notFound(kind, id string) error { return &NotFoundError{Kind: kind, ID: id} }

func invalid(field, title, msg string) error {
	return &ValidationError{Field: field, Title: title, Message: msg}
}
