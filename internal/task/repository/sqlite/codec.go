package sqlite

import (
	"database/sql"
	"strings"
	"time"
)

// Column encodings: instants as RFC3339, due dates as "2006-01-02"
// (lexicographic order matches chronological order), string slices as
// comma-joined text.

const dayFormat = "2006-01-02"

func encodeInstant(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC().Format(time.RFC3339)
}

func decodeInstant(s sql.NullString) *time.Time {
	if !s.Valid || s.String == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, s.String)
	if err != nil {
		return nil
	}
	return &t
}

func encodeDay(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Format(dayFormat)
}

func decodeDay(s sql.NullString) *time.Time {
	if !s.Valid || s.String == "" {
		return nil
	}
	t, err := time.Parse(dayFormat, s.String)
	if err != nil {
		return nil
	}
	return &t
}

func encodeList(items []string) string {
	return strings.Join(items, ",")
}

func decodeList(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}
