// Package sqlite_test contains integration tests for SQLite repositories.
//
// # Schema Protection
//
// This file is the SINGLE POINT where the database schema is loaded for tests.
// All test setup functions use db.GetSchemaSQL() to ensure tests run against
// the authoritative schema, preventing drift between test and production.
package sqlite_test

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/keeper/internal/ctxutil"
	"github.com/example/keeper/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	testDB.SetMaxOpenConns(1)

	_, err = testDB.Exec(db.GetSchemaSQL())
	if err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedChange inserts a change row directly and returns its ID.
func seedChange(t *testing.T, db *sql.DB, id, sessionID, variant, recordID, action string) string {
	t.Helper()
	_, err := db.Exec(
		"INSERT INTO change_log (id, session_id, variant, record_id, action) VALUES (?, ?, ?, ?, ?)",
		id, sessionID, variant, recordID, action)
	if err != nil {
		t.Fatalf("failed to seed change: %v", err)
	}
	return id
}

func sessionContext(sessionID string) context.Context {
	return ctxutil.WithSessionID(context.Background(), sessionID)
}
