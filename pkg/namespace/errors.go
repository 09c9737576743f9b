package namespace

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidName matches any *InvalidNameError via errors.Is.
	ErrInvalidName = errors.New("invalid name")
	// ErrAliasConflict matches any *AliasConflictError via errors.Is.
	ErrAliasConflict = errors.New("alias conflict")
)

// InvalidNameError is returned when a namespace identity, import name, alias
// or declaration name fails identifier syntax, or is a reserved word where a
// bare identifier is required.
type InvalidNameError struct {
	// What describes the rejected value, e.g. "alias".
	What string
	// Value is the rejected input.
	Value string
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("value %q is not a valid %s", e.Value, e.What)
}

// Is implements errors.Is support for ErrInvalidName.
func (e *InvalidNameError) Is(target error) bool {
	return target == ErrInvalidName
}

// AliasConflictError is returned when an alias already denotes a different
// fully-qualified name within the same kind.
type AliasConflictError struct {
	Kind Kind
	// Alias is the requested alias.
	Alias string
	// Existing is the name the alias is already bound to.
	Existing string
	// Requested is the name the caller tried to bind.
	Requested string
}

func (e *AliasConflictError) Error() string {
	return fmt.Sprintf("%s alias %q used already for %q, cannot use for %q", e.Kind, e.Alias, e.Existing, e.Requested)
}

// Is implements errors.Is support for ErrAliasConflict.
func (e *AliasConflictError) Is(target error) bool {
	return target == ErrAliasConflict
}
