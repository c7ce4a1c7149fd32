// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import "context"

// ChangeLogRepository defines the secondary port for the session change history.
// Entries are immutable - no Update or Delete operations.
type ChangeLogRepository interface {
	// Create persists a new change entry.
	Create(ctx context.Context, change *ChangeRecord) error

	// GetByID retrieves a change entry by its ID.
	GetByID(ctx context.Context, id string) (*ChangeRecord, error)

	// List retrieves change entries matching the given filters, newest first.
	List(ctx context.Context, filters ChangeFilters) ([]*ChangeRecord, error)

	// GetNextID returns the next available change ID.
	GetNextID(ctx context.Context) (string, error)
}

// ChangeRecord represents a change entry as stored in persistence.
type ChangeRecord struct {
	ID        string
	SessionID string // Empty string means null
	Variant   string // "species" or "product"
	RecordID  string
	Action    string // "update", "merge" or "replace"
	FieldName string // Empty string means null
	OldValue  string // Empty string means null
	NewValue  string // Empty string means null
	CreatedAt string
}

// ChangeFilters contains filter options for querying the change history.
type ChangeFilters struct {
	SessionID string
	Variant   string
	RecordID  string
	Action    string
	Limit     int
}
