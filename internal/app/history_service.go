package app

import (
	"context"
	"fmt"

	"github.com/example/keeper/internal/ctxutil"
	"github.com/example/keeper/internal/ports/primary"
	"github.com/example/keeper/internal/ports/secondary"
)

// HistoryServiceImpl implements the HistoryService interface.
type HistoryServiceImpl struct {
	changeRepo secondary.ChangeLogRepository
}

// NewHistoryService creates a new HistoryService with injected dependencies.
func NewHistoryService(changeRepo secondary.ChangeLogRepository) *HistoryServiceImpl {
	return &HistoryServiceImpl{
		changeRepo: changeRepo,
	}
}

// ListChanges retrieves the current session's changes matching the given filters.
func (s *HistoryServiceImpl) ListChanges(ctx context.Context, filters primary.ChangeFilters) ([]*primary.Change, error) {
	records, err := s.changeRepo.List(ctx, secondary.ChangeFilters{
		SessionID: ctxutil.SessionFromContext(ctx),
		Variant:   filters.Variant,
		RecordID:  filters.RecordID,
		Limit:     filters.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list changes: %w", err)
	}

	changes := make([]*primary.Change, len(records))
	for i, r := range records {
		changes[i] = s.recordToChange(r)
	}
	return changes, nil
}

func (s *HistoryServiceImpl) recordToChange(r *secondary.ChangeRecord) *primary.Change {
	return &primary.Change{
		ID:        r.ID,
		Variant:   r.Variant,
		RecordID:  r.RecordID,
		Action:    r.Action,
		FieldName: r.FieldName,
		OldValue:  r.OldValue,
		NewValue:  r.NewValue,
		CreatedAt: r.CreatedAt,
	}
}

// Ensure HistoryServiceImpl implements the interface
var _ primary.HistoryService = (*HistoryServiceImpl)(nil)
