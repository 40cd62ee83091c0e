package repository

import (
	"database/sql"
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// parseNullableTime parses a sql.NullString into a *time.Time using the given
// layout. Returns nil for NULL, empty, or unparseable values.
func parseNullableTime(s sql.NullString, layout string) *time.Time {
	if !s.Valid || s.String == "" {
		return nil
	}
	t, err := time.Parse(layout, s.String)
	if err != nil {
		return nil
	}
	return &t
}

// nullableTimeToString converts a *time.Time to a SQLite storage value.
// Returns nil (SQL NULL) when the pointer is nil.
func nullableTimeToString(t *time.Time, layout string) interface{} {
	if t == nil {
		return nil
	}
	return t.Format(layout)
}

// nullableString stores the empty string as SQL NULL.
func nullableString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// parseTimestamps parses the created_at and updated_at columns into their
// destination fields.
func parseTimestamps(createdAt, updatedAt *time.Time, createdAtStr, updatedAtStr string) error {
	var err error
	*createdAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return fmt.Errorf("parsing created_at: %w", err)
	}
	*updatedAt, err = time.Parse(time.RFC3339, updatedAtStr)
	if err != nil {
		return fmt.Errorf("parsing updated_at: %w", err)
	}
	return nil
}

