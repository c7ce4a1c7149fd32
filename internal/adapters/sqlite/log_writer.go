package sqlite

import (
	"context"

	"github.com/example/keeper/internal/ctxutil"
	"github.com/example/keeper/internal/ports/secondary"
)

// Change actions.
const (
	ActionUpdate  = "update"
	ActionMerge   = "merge"
	ActionReplace = "replace"
)

// LogWriterAdapter implements secondary.ChangeLog using ChangeLogRepository.
type LogWriterAdapter struct {
	changeRepo secondary.ChangeLogRepository
}

// NewLogWriterAdapter creates a new LogWriterAdapter.
func NewLogWriterAdapter(changeRepo secondary.ChangeLogRepository) *LogWriterAdapter {
	return &LogWriterAdapter{
		changeRepo: changeRepo,
	}
}

// LogUpdate logs a field change on a record.
func (w *LogWriterAdapter) LogUpdate(ctx context.Context, variant, recordID, fieldName, oldValue, newValue string) error {
	return w.writeLog(ctx, variant, recordID, ActionUpdate, fieldName, oldValue, newValue)
}

// LogMerge logs a record merged from pending. replaced marks an ID that
// already existed and was overwritten.
func (w *LogWriterAdapter) LogMerge(ctx context.Context, variant, recordID string, replaced bool) error {
	action := ActionMerge
	if replaced {
		action = ActionReplace
	}
	return w.writeLog(ctx, variant, recordID, action, "", "", "")
}

func (w *LogWriterAdapter) writeLog(ctx context.Context, variant, recordID, action, fieldName, oldValue, newValue string) error {
	id, err := w.changeRepo.GetNextID(ctx)
	if err != nil {
		return err
	}

	return w.changeRepo.Create(ctx, &secondary.ChangeRecord{
		ID:        id,
		SessionID: ctxutil.SessionFromContext(ctx),
		Variant:   variant,
		RecordID:  recordID,
		Action:    action,
		FieldName: fieldName,
		OldValue:  oldValue,
		NewValue:  newValue,
	})
}

// Ensure LogWriterAdapter implements the interface
var _ secondary.ChangeLog = (*LogWriterAdapter)(nil)
