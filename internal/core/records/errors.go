package records

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by store operations. Callers match them with errors.Is.
var (
	// ErrInvalidArgument is returned when a required argument is missing,
	// out of range, or not a member of a required enumerated set.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound is returned when an operation targets an ID the store does not hold.
	ErrNotFound = errors.New("not found")
)

// InvalidArgument wraps ErrInvalidArgument with a formatted reason.
func InvalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// NotFound wraps ErrNotFound for the given record ID.
func NotFound(kind, id string) error {
	return fmt.Errorf("%s %s %w", kind, id, ErrNotFound)
}
