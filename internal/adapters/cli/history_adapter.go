package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/example/keeper/internal/ports/primary"
)

// HistoryAdapter prints the session change history.
type HistoryAdapter struct {
	service primary.HistoryService
	out     io.Writer
}

// NewHistoryAdapter creates a new HistoryAdapter with the given service.
func NewHistoryAdapter(service primary.HistoryService, out io.Writer) *HistoryAdapter {
	return &HistoryAdapter{
		service: service,
		out:     out,
	}
}

// List prints changes for variant (all variants when empty), newest first.
func (a *HistoryAdapter) List(ctx context.Context, variant string, limit int) error {
	changes, err := a.service.ListChanges(ctx, primary.ChangeFilters{
		Variant: variant,
		Limit:   limit,
	})
	if err != nil {
		return err
	}

	if len(changes) == 0 {
		fmt.Fprintln(a.out, "No changes recorded this session")
		return nil
	}

	fmt.Fprintf(a.out, "\n%-9s %-8s %-7s %-8s %s\n", "ID", "VARIANT", "RECORD", "ACTION", "CHANGE")
	fmt.Fprintln(a.out, rule)
	for _, c := range changes {
		fmt.Fprintf(a.out, "%-9s %-8s %-7s %-8s %s\n", c.ID, c.Variant, c.RecordID, c.Action, describeChange(c))
	}
	fmt.Fprintln(a.out)
	return nil
}

func describeChange(c *primary.Change) string {
	if c.FieldName == "" {
		return ""
	}
	return fmt.Sprintf("%s: %s → %s", c.FieldName, c.OldValue, c.NewValue)
}
