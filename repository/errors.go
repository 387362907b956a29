package repository

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record already exists")
)

// PersistenceError wraps any failure of the backing store. Message is safe to
// show to the user.
type PersistenceError struct {
	Op      string
	Message string
	Err     error
}

func (e *PersistenceError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

func persistErr(op, message string, err error) error {
	return &PersistenceError{Op: op, Message: message, Err: err}
}
