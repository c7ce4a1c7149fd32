// Package db opens the session database. It lives in memory and is gone
// when the process exits.
package db

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// DSN addresses a private in-memory database.
const DSN = ":memory:"

// Open creates a fresh in-memory database with the schema applied.
func Open() (*sql.DB, error) {
	conn, err := sql.Open("sqlite3", DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Every connection to :memory: is a separate database.
	conn.SetMaxOpenConns(1)

	if err := InitSchema(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return conn, nil
}
