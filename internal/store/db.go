package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const schema = `
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA busy_timeout = 5000;

CREATE TABLE IF NOT EXISTS chats (
    chat_id      TEXT PRIMARY KEY,
    name         TEXT NOT NULL,
    source_path  TEXT NOT NULL DEFAULT '',
    imported_at  TEXT NOT NULL,
    record_count INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS records (
    chat_id   TEXT NOT NULL,
    seq       INTEGER NOT NULL,
    speaker   TEXT NOT NULL,
    body      TEXT NOT NULL,
    ts        TEXT NOT NULL,
    year      INTEGER NOT NULL,
    month_num INTEGER NOT NULL,
    month     TEXT NOT NULL,
    day       INTEGER NOT NULL,
    day_name  TEXT NOT NULL,
    hour      INTEGER NOT NULL,
    minute    INTEGER NOT NULL,
    period    TEXT NOT NULL,
    sentiment TEXT NOT NULL DEFAULT '',
    PRIMARY KEY (chat_id, seq)
);

CREATE INDEX IF NOT EXISTS idx_records_speaker ON records (chat_id, speaker);
`

type DB struct {
	db *sql.DB
}

func OpenDB(dbPath string) (*DB, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &DB{db: db}, nil
}

func (d *DB) Close() error {
	return d.db.Close()
}

func (d *DB) Raw() *sql.DB {
	return d.db
}

func (d *DB) ChatCount() (int, error) {
	var n int
	err := d.db.QueryRow("SELECT COUNT(*) FROM chats").Scan(&n)
	return n, err
}

func (d *DB) RecordCount() (int, error) {
	var n int
	err := d.db.QueryRow("SELECT COUNT(*) FROM records").Scan(&n)
	return n, err
}
