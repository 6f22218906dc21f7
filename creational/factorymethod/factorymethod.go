// Package factorymethod demonstrates the Factory Method pattern.
//
// Factory.CreateLogger hides which Logger implementation is built for a given
// LoggerType. FileLogger writes to a stream; DatabaseLogger persists every
// message into a log_entries table through sqlx before echoing it.
package factorymethod

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
)

var (
	// ErrInvalidLoggerType is returned for LoggerType values the factory does not know.
	ErrInvalidLoggerType = errors.New("factorymethod: invalid logger type")

	// ErrNoDatabase is returned when a database logger is requested without a DB handle.
	ErrNoDatabase = errors.New("factorymethod: database logger requires a DB")
)

// LoggerType selects the Logger implementation.
type LoggerType int

const (
	File LoggerType = iota
	Database
)

// String returns the lowercase name used in configuration.
func (t LoggerType) String() string {
	switch t {
	case File:
		return "file"
	case Database:
		return "database"
	default:
		return fmt.Sprintf("LoggerType(%d)", int(t))
	}
}

// ParseLoggerType parses "file" or "database" (case-insensitive).
func ParseLoggerType(s string) (LoggerType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "file":
		return File, nil
	case "database", "db":
		return Database, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidLoggerType, s)
	}
}

// Logger is the product interface.
type Logger interface {
	Log(ctx context.Context, message string) error
}

// FileLogger writes "File: <message>" lines.
type FileLogger struct {
	out io.Writer
}

// Log implements Logger.
func (l *FileLogger) Log(_ context.Context, message string) error {
	_, err := fmt.Fprintf(l.out, "File: %s\n", message)
	return err
}

// Schema creates the table used by DatabaseLogger.
const Schema = `CREATE TABLE IF NOT EXISTS log_entries (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	message    TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL
)`

const insertEntrySQL = `INSERT INTO log_entries (message, created_at) VALUES (?, ?)`

const selectEntriesSQL = `SELECT id, message, created_at FROM log_entries ORDER BY id`

// Entry is a persisted log line.
type Entry struct {
	ID        int64     `db:"id"`
	Message   string    `db:"message"`
	CreatedAt time.Time `db:"created_at"`
}

// DatabaseLogger stores messages in log_entries and writes "Database: <message>".
type DatabaseLogger struct {
	db  *sqlx.DB
	out io.Writer
	now func() time.Time
}

// EnsureSchema creates the log_entries table if it is missing.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("factorymethod: create schema: %w", err)
	}
	return nil
}

// Log implements Logger.
func (l *DatabaseLogger) Log(ctx context.Context, message string) error {
	if _, err := l.db.ExecContext(ctx, insertEntrySQL, message, l.now().UTC()); err != nil {
		return fmt.Errorf("factorymethod: insert log entry: %w", err)
	}
	_, err := fmt.Fprintf(l.out, "Database: %s\n", message)
	return err
}

// Entries returns every persisted entry, oldest first.
func (l *DatabaseLogger) Entries(ctx context.Context) ([]Entry, error) {
	var entries []Entry
	if err := l.db.SelectContext(ctx, &entries, selectEntriesSQL); err != nil {
		return nil, fmt.Errorf("factorymethod: select log entries: %w", err)
	}
	return entries, nil
}

// Factory is the creator. DB is only needed for Database loggers; a nil Out
// discards logger output.
type Factory struct {
	Out io.Writer
	DB  *sqlx.DB
	// Now stamps database entries; defaults to time.Now.
	Now func() time.Time
}

// CreateLogger is the factory method.
func (f Factory) CreateLogger(t LoggerType) (Logger, error) {
	out := f.Out
	if out == nil {
		out = io.Discard
	}
	switch t {
	case File:
		return &FileLogger{out: out}, nil
	case Database:
		if f.DB == nil {
			return nil, ErrNoDatabase
		}
		now := f.Now
		if now == nil {
			now = time.Now
		}
		return &DatabaseLogger{db: f.DB, out: out, now: now}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidLoggerType, t)
	}
}

// Demo creates a logger of type t and logs "Hello World!" with it.
func Demo(ctx context.Context, f Factory, t LoggerType) error {
	logger, err := f.CreateLogger(t)
	if err != nil {
		return err
	}
	return logger.Log(ctx, "Hello World!")
}
