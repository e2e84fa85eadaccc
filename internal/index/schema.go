// Package index provides a SQLite-backed mirror of the current item
// snapshot for field search and category lookups.
package index

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS fields (
	item_id  TEXT NOT NULL,
	field_id TEXT NOT NULL,
	title    TEXT NOT NULL DEFAULT '',
	text     TEXT NOT NULL DEFAULT '',
	type     TEXT NOT NULL DEFAULT '',
	category TEXT NOT NULL DEFAULT '',
	position INTEGER NOT NULL DEFAULT 0,
	PRIMARY KEY (item_id, field_id)
);

CREATE INDEX IF NOT EXISTS idx_fields_category ON fields(category);
`

// DB wraps a sql.DB with index-specific operations.
type DB struct {
	conn *sql.DB
}

// Open opens (or creates) the SQLite database and applies the schema.
// The default DSN ":memory:" matches the snapshot lifecycle: the index
// holds no state that outlives the process.
func Open(dsn string) (*DB, error) {
	conn, err := sql.Open("sqlite3", dsn+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("index: open db: %w", err)
	}
	// One connection, so an in-memory database is not silently
	// duplicated per pool connection.
	conn.SetMaxOpenConns(1)
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("index: ping: %w", err)
	}
	if _, err := conn.Exec(schemaSQL); err != nil {
		conn.Close()
		return nil, fmt.Errorf("index: apply schema: %w", err)
	}
	return &DB{conn: conn}, nil
}

// Close closes the underlying database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}
