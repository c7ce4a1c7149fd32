package secondary

import "context"

// ChangeLog defines the interface for recording successful store changes.
// Implementations extract the session from context.
type ChangeLog interface {
	// LogUpdate logs a field change on a record.
	// fieldName, oldValue, newValue describe what changed.
	LogUpdate(ctx context.Context, variant, recordID, fieldName, oldValue, newValue string) error

	// LogMerge logs a record arriving from the pending store.
	// replaced is true when the record overwrote one with the same ID.
	LogMerge(ctx context.Context, variant, recordID string, replaced bool) error
}
