// Package apperr defines the typed error taxonomy shared by the color engine packages.
//
// All errors are matchable with errors.As, so callers can branch on the
// failure class without parsing messages.
package apperr

import "fmt"

// NotFoundError reports that a requested color name or palette membership does not exist.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%q not found", e.Name)
}

// FormatError reports a value of the wrong shape: bad tuple arity, non-numeric
// components, or a malformed hex string.
type FormatError struct {
	Reason string
}

func (e *FormatError) Error() string {
	return e.Reason
}

// ConfigError reports invalid construction or configuration arguments.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return e.Reason
}

// ConflictError reports a rejected add against an existing name. The
// dictionary state is left unchanged when it is returned.
type ConflictError struct {
	Name     string
	Existing []float64
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%q was not added because it already exists with value %v", e.Name, e.Existing)
}

// StateError reports a lifecycle misuse, such as restoring without a prior backup.
type StateError struct {
	Reason string
}

func (e *StateError) Error() string {
	return e.Reason
}

// StorageError wraps an I/O failure from the persistence provider.
type StorageError struct {
	Op      string
	Palette string
	Err     error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s palette %q: %v", e.Op, e.Palette, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
