package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/chatlens/chatlens/internal/transcript"
)

const tsLayout = "2006-01-02T15:04:05"

// Chat is one imported transcript.
type Chat struct {
	ID         string
	Name       string
	SourcePath string
	ImportedAt time.Time
	Records    int
}

// SaveChat persists a record set under a fresh chat ID. Records are
// written in one transaction so a failed import leaves nothing behind.
func (d *DB) SaveChat(name, sourcePath string, records []transcript.Record) (string, error) {
	id := uuid.NewString()

	tx, err := d.db.Begin()
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO chats (chat_id, name, source_path, imported_at, record_count)
		 VALUES (?, ?, ?, ?, ?)`,
		id, name, sourcePath, time.Now().Format(tsLayout), len(records),
	)
	if err != nil {
		return "", fmt.Errorf("insert chat: %w", err)
	}

	stmt, err := tx.Prepare(
		`INSERT INTO records (chat_id, seq, speaker, body, ts, year, month_num, month, day, day_name, hour, minute, period, sentiment)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return "", err
	}
	defer stmt.Close()

	for i, r := range records {
		_, err := stmt.Exec(
			id, i, r.Speaker, r.Body, r.Timestamp.Format(tsLayout),
			r.Year, r.MonthNum, r.Month, r.Day, r.DayName,
			r.Hour, r.Minute, r.Period, r.Sentiment,
		)
		if err != nil {
			return "", fmt.Errorf("insert record %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}
	return id, nil
}

// DeleteChat removes a chat and its records.
func (d *DB) DeleteChat(chatID string) error {
	tx, err := d.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM records WHERE chat_id = ?", chatID); err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM chats WHERE chat_id = ?", chatID); err != nil {
		return err
	}
	return tx.Commit()
}

// GetChat returns a chat by ID, or nil when absent.
func (d *DB) GetChat(chatID string) (*Chat, error) {
	var c Chat
	var imported string
	err := d.db.QueryRow(
		"SELECT chat_id, name, source_path, imported_at, record_count FROM chats WHERE chat_id = ?",
		chatID,
	).Scan(&c.ID, &c.Name, &c.SourcePath, &imported, &c.Records)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	c.ImportedAt, _ = time.ParseInLocation(tsLayout, imported, time.Local)
	return &c, nil
}

// ListChats returns all chats, newest import first.
func (d *DB) ListChats() ([]Chat, error) {
	rows, err := d.db.Query(
		"SELECT chat_id, name, source_path, imported_at, record_count FROM chats ORDER BY imported_at DESC",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var chats []Chat
	for rows.Next() {
		var c Chat
		var imported string
		if err := rows.Scan(&c.ID, &c.Name, &c.SourcePath, &imported, &c.Records); err != nil {
			return nil, err
		}
		c.ImportedAt, _ = time.ParseInLocation(tsLayout, imported, time.Local)
		chats = append(chats, c)
	}
	return chats, rows.Err()
}

// LoadRecords returns a chat's record set in original order.
func (d *DB) LoadRecords(chatID string) ([]transcript.Record, error) {
	rows, err := d.db.Query(
		`SELECT speaker, body, ts, year, month_num, month, day, day_name, hour, minute, period, sentiment
		 FROM records WHERE chat_id = ? ORDER BY seq`,
		chatID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []transcript.Record
	for rows.Next() {
		var r transcript.Record
		var ts string
		if err := rows.Scan(
			&r.Speaker, &r.Body, &ts, &r.Year, &r.MonthNum, &r.Month,
			&r.Day, &r.DayName, &r.Hour, &r.Minute, &r.Period, &r.Sentiment,
		); err != nil {
			return nil, err
		}
		r.Timestamp, _ = time.ParseInLocation(tsLayout, ts, time.Local)
		r.Date = time.Date(r.Timestamp.Year(), r.Timestamp.Month(), r.Timestamp.Day(), 0, 0, 0, 0, r.Timestamp.Location())
		records = append(records, r)
	}
	return records, rows.Err()
}

// Speakers returns the distinct non-notification speakers of a chat.
func (d *DB) Speakers(chatID string) ([]string, error) {
	rows, err := d.db.Query(
		"SELECT DISTINCT speaker FROM records WHERE chat_id = ? AND speaker != ? ORDER BY speaker",
		chatID, transcript.Notification,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var speakers []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		speakers = append(speakers, s)
	}
	return speakers, rows.Err()
}
