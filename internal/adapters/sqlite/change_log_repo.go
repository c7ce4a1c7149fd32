// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/example/keeper/internal/core/records"
	"github.com/example/keeper/internal/ports/secondary"
)

const changeIDPrefix = "CHG-"

const changeColumns = `id, session_id, variant, record_id, action, field_name, old_value, new_value, created_at`

// ChangeLogRepository implements secondary.ChangeLogRepository with SQLite.
type ChangeLogRepository struct {
	db *sql.DB
}

// NewChangeLogRepository creates a new SQLite change log repository.
func NewChangeLogRepository(db *sql.DB) *ChangeLogRepository {
	return &ChangeLogRepository{db: db}
}

// Create persists a new change entry.
func (r *ChangeLogRepository) Create(ctx context.Context, change *secondary.ChangeRecord) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO change_log (id, session_id, variant, record_id, action, field_name, old_value, new_value) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		change.ID,
		nullString(change.SessionID),
		change.Variant,
		change.RecordID,
		change.Action,
		nullString(change.FieldName),
		nullString(change.OldValue),
		nullString(change.NewValue),
	)
	if err != nil {
		return fmt.Errorf("failed to create change: %w", err)
	}

	return nil
}

// GetByID retrieves a change entry by its ID.
func (r *ChangeLogRepository) GetByID(ctx context.Context, id string) (*secondary.ChangeRecord, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+changeColumns+` FROM change_log WHERE id = ?`,
		id,
	)

	record, err := scanChange(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, records.NotFound("change", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get change: %w", err)
	}
	return record, nil
}

// List retrieves change entries matching the given filters, newest first.
func (r *ChangeLogRepository) List(ctx context.Context, filters secondary.ChangeFilters) ([]*secondary.ChangeRecord, error) {
	query := `SELECT ` + changeColumns + ` FROM change_log WHERE 1=1`
	args := []any{}

	if filters.SessionID != "" {
		query += " AND session_id = ?"
		args = append(args, filters.SessionID)
	}

	if filters.Variant != "" {
		query += " AND variant = ?"
		args = append(args, filters.Variant)
	}

	if filters.RecordID != "" {
		query += " AND record_id = ?"
		args = append(args, filters.RecordID)
	}

	if filters.Action != "" {
		query += " AND action = ?"
		args = append(args, filters.Action)
	}

	// created_at has second resolution; the numeric ID suffix breaks ties.
	query += fmt.Sprintf(" ORDER BY created_at DESC, CAST(SUBSTR(id, %d) AS INTEGER) DESC", len(changeIDPrefix)+1)

	if filters.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filters.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list changes: %w", err)
	}
	defer rows.Close()

	var changes []*secondary.ChangeRecord
	for rows.Next() {
		record, err := scanChange(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan change: %w", err)
		}
		changes = append(changes, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list changes: %w", err)
	}

	return changes, nil
}

// GetNextID returns the next available change ID.
func (r *ChangeLogRepository) GetNextID(ctx context.Context) (string, error) {
	var maxID int
	err := r.db.QueryRowContext(ctx,
		fmt.Sprintf("SELECT COALESCE(MAX(CAST(SUBSTR(id, %d) AS INTEGER)), 0) FROM change_log", len(changeIDPrefix)+1),
	).Scan(&maxID)
	if err != nil {
		return "", fmt.Errorf("failed to get next change ID: %w", err)
	}

	return fmt.Sprintf("%s%03d", changeIDPrefix, maxID+1), nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanChange(row rowScanner) (*secondary.ChangeRecord, error) {
	var (
		sessionID sql.NullString
		fieldName sql.NullString
		oldValue  sql.NullString
		newValue  sql.NullString
		createdAt time.Time
	)

	record := &secondary.ChangeRecord{}
	err := row.Scan(&record.ID,
		&sessionID,
		&record.Variant,
		&record.RecordID,
		&record.Action,
		&fieldName,
		&oldValue,
		&newValue,
		&createdAt)
	if err != nil {
		return nil, err
	}
	record.SessionID = sessionID.String
	record.FieldName = fieldName.String
	record.OldValue = oldValue.String
	record.NewValue = newValue.String
	record.CreatedAt = createdAt.Format(time.RFC3339)

	return record, nil
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// Ensure ChangeLogRepository implements the interface
var _ secondary.ChangeLogRepository = (*ChangeLogRepository)(nil)
