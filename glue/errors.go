package glue

import (
	"errors"
	"fmt"
)

var (
	// ErrTypeMismatch is returned when an observable is used as a type it
	// does not hold.
	ErrTypeMismatch = errors.New("observable type mismatch")

	// ErrMemberNotFound is returned when a view model has no member with the
	// requested name.
	ErrMemberNotFound = errors.New("view model member not found")
	// ErrNotCommand is returned when a property is run as a command.
	ErrNotCommand = errors.New("view model member is not a command")
	// ErrNotProperty is returned when a command is read as a property.
	ErrNotProperty = errors.New("view model member is not a property")
)

// TypeMismatchError describes a failed As or AsViewModel.
type TypeMismatchError struct {
	Want string
	Got  string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("observable type mismatch: want %s, got %s", e.Want, e.Got)
}

func (e *TypeMismatchError) Unwrap() error {
	return ErrTypeMismatch
}
