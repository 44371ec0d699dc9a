package verification

import "context"

// LogRepository defines the interface for the verification audit log.
type LogRepository interface {
	// Append stores a new log entry.
	Append(ctx context.Context, entry *LogEntry) error

	// FindByUser returns the user's most recent entries, newest first,
	// capped at limit.
	FindByUser(ctx context.Context, userID uint, limit int) ([]*LogEntry, error)
}
