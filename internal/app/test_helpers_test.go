package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/example/keeper/internal/ports/secondary"
)

// Ensure the mocks implement the interfaces
var (
	_ secondary.ChangeLog           = (*mockChangeLog)(nil)
	_ secondary.MetricsRecorder     = (*captureMetricsRecorder)(nil)
	_ secondary.ChangeLogRepository = (*mockChangeLogRepository)(nil)
)

type loggedChange struct {
	recordID string
	action   string
	field    string
	oldValue string
	newValue string
}

// mockChangeLog implements secondary.ChangeLog for testing.
type mockChangeLog struct {
	changes []loggedChange
	err     error
}

func (m *mockChangeLog) LogUpdate(ctx context.Context, variant, recordID, fieldName, oldValue, newValue string) error {
	if m.err != nil {
		return m.err
	}
	m.changes = append(m.changes, loggedChange{recordID: recordID, action: "update", field: fieldName, oldValue: oldValue, newValue: newValue})
	return nil
}

func (m *mockChangeLog) LogMerge(ctx context.Context, variant, recordID string, replaced bool) error {
	if m.err != nil {
		return m.err
	}
	action := "merge"
	if replaced {
		action = "replace"
	}
	m.changes = append(m.changes, loggedChange{recordID: recordID, action: action})
	return nil
}

type metricsCall struct {
	op      string
	success bool
}

// captureMetricsRecorder implements secondary.MetricsRecorder for testing.
type captureMetricsRecorder struct {
	calls []metricsCall
}

func (c *captureMetricsRecorder) Observe(_ context.Context, op string, success bool, _ time.Duration) {
	c.calls = append(c.calls, metricsCall{op: op, success: success})
}

func (c *captureMetricsRecorder) has(op string, success bool) bool {
	for _, call := range c.calls {
		if call.op == op && call.success == success {
			return true
		}
	}
	return false
}

// mockChangeLogRepository implements secondary.ChangeLogRepository for testing.
type mockChangeLogRepository struct {
	changes     []*secondary.ChangeRecord
	lastFilters secondary.ChangeFilters
	listErr     error
	nextID      int
}

func (m *mockChangeLogRepository) Create(ctx context.Context, change *secondary.ChangeRecord) error {
	m.changes = append(m.changes, change)
	return nil
}

func (m *mockChangeLogRepository) GetByID(ctx context.Context, id string) (*secondary.ChangeRecord, error) {
	for _, c := range m.changes {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, errors.New("not found")
}

func (m *mockChangeLogRepository) List(ctx context.Context, filters secondary.ChangeFilters) ([]*secondary.ChangeRecord, error) {
	m.lastFilters = filters
	if m.listErr != nil {
		return nil, m.listErr
	}
	var result []*secondary.ChangeRecord
	for _, c := range m.changes {
		if filters.SessionID != "" && c.SessionID != filters.SessionID {
			continue
		}
		if filters.Variant != "" && c.Variant != filters.Variant {
			continue
		}
		if filters.RecordID != "" && c.RecordID != filters.RecordID {
			continue
		}
		result = append(result, c)
	}

	if filters.Limit > 0 && len(result) > filters.Limit {
		result = result[:filters.Limit]
	}

	return result, nil
}

func (m *mockChangeLogRepository) GetNextID(ctx context.Context) (string, error) {
	m.nextID++
	return fmt.Sprintf("CHG-%03d", m.nextID), nil
}

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }
