package store

import "strings"

// SQLite reports errors through the driver's message text; matching on it
// keeps this file free of cgo-only driver symbols.
const (
	sqliteUniqueViolationMsg = "UNIQUE constraint failed"
	sqliteBusyMsg            = "database is busy"
	sqliteLockedMsg          = "database is locked"
	sqliteTableLockedMsg     = "database table is locked"
)

// SQLiteErrorClassifier implements [ErrorClassificator] for mattn/go-sqlite3.
// Busy and locked databases are retryable, everything else is not.
type SQLiteErrorClassifier struct{}

func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return NonRetryable
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, sqliteBusyMsg),
		strings.Contains(msg, sqliteLockedMsg),
		strings.Contains(msg, sqliteTableLockedMsg):
		return Retryable
	}

	return NonRetryable
}

func isSQLiteUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), sqliteUniqueViolationMsg)
}
