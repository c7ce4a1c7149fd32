package db

import "database/sql"

// SchemaSQL is the complete schema of the session database.
//
// Tests use this schema via GetSchemaSQL() instead of hardcoding their own,
// so a repository that references a missing column fails immediately with
// "no such column".
const SchemaSQL = `
-- Change history (one row per applied update or merged record)
CREATE TABLE IF NOT EXISTS change_log (
	id TEXT PRIMARY KEY,
	session_id TEXT,
	variant TEXT NOT NULL CHECK (variant IN ('species', 'product')),
	record_id TEXT NOT NULL,
	action TEXT NOT NULL CHECK (action IN ('update', 'merge', 'replace')),
	field_name TEXT,
	old_value TEXT,
	new_value TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_change_log_session ON change_log(session_id);
CREATE INDEX IF NOT EXISTS idx_change_log_record ON change_log(variant, record_id);
`

// InitSchema creates every table on the given connection.
func InitSchema(conn *sql.DB) error {
	_, err := conn.Exec(SchemaSQL)
	return err
}

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
// Tests should use this instead of hardcoding their own schema to prevent drift.
func GetSchemaSQL() string {
	return SchemaSQL
}
