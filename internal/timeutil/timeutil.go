package timeutil

import (
	"fmt"
	"time"
)

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// jsDateLayout matches the verbose JavaScript Date string found in older
// player documents, e.g. "Mon Apr 10 2000 00:00:00 GMT+0200".
const jsDateLayout = "Mon Jan 02 2006"

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseBirthDate parses the string-serialized birth dates stored in the
// players collection. Canonical documents use YYYY-MM-DD; documents written
// by the legacy client carry RFC3339 or a full JavaScript Date string, so
// those are accepted too.
func ParseBirthDate(value string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	if len(value) >= len(jsDateLayout) {
		if t, err := time.Parse(jsDateLayout, value[:len(jsDateLayout)]); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized birth date %q", value)
}
