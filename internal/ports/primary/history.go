package primary

import "context"

// HistoryService defines the primary port for the session change history.
type HistoryService interface {
	// ListChanges returns recorded changes, newest first.
	ListChanges(ctx context.Context, filters ChangeFilters) ([]*Change, error)
}

// ChangeFilters narrows ListChanges. Zero values are ignored.
type ChangeFilters struct {
	Variant  string
	RecordID string
	Limit    int
}

// Change represents a change entry at the port boundary.
type Change struct {
	ID        string
	Variant   string
	RecordID  string
	Action    string
	FieldName string
	OldValue  string
	NewValue  string
	CreatedAt string
}
