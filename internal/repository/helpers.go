package repository

import (
	"database/sql"
	"strings"
	"time"
)

// dateLayout is the storage format for calendar dates (date-only columns).
const dateLayout = "2006-01-02"

// parseNullableString converts a sql.NullString into a *string.
func parseNullableString(s sql.NullString) *string {
	if !s.Valid || s.String == "" {
		return nil
	}
	v := s.String
	return &v
}

// nullableStringToValue converts a *string to a value suitable for SQLite
// storage. Returns nil (SQL NULL) if the pointer is nil.
func nullableStringToValue(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}

// boolToInt converts a Go bool to an integer (0 or 1) for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// intToBool converts a SQLite integer (0 or 1) to a Go bool.
func intToBool(i int) bool {
	return i != 0
}

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// escapeLike escapes LIKE wildcards in a user-supplied search term so the
// term matches literally. The query must declare ESCAPE '\'.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
