package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// Date is a calendar date without a time component. It marshals to and from
// the "YYYY-MM-DD" form used by the HTTP API and scans directly from a SQL
// DATE column, so vacation date ranges stay typed end to end instead of
// passing through as opaque strings.
type Date struct {
	time.Time
}

// NewDate builds a Date from year, month and day in UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// MarshalJSON renders the date as "YYYY-MM-DD".
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(time.DateOnly) + `"`), nil
}

// UnmarshalJSON accepts "YYYY-MM-DD" and, for tolerance toward clients that
// serialize full timestamps, any RFC 3339 value (the time component is kept
// but ignored by formatting).
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}

	parsed, err := time.Parse(time.DateOnly, s)
	if err != nil {
		parsed, err = time.Parse(time.RFC3339, s)
	}
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", s, err)
	}

	d.Time = parsed
	return nil
}

// Scan implements [database/sql.Scanner] for DATE columns.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		d.Time = time.Time{}
		return nil
	case time.Time:
		d.Time = v
		return nil
	case string:
		parsed, err := time.Parse(time.DateOnly, v)
		if err != nil {
			return fmt.Errorf("scanning date %q: %w", v, err)
		}
		d.Time = parsed
		return nil
	case []byte:
		return d.Scan(string(v))
	default:
		return fmt.Errorf("cannot scan %T into Date", src)
	}
}

// Value implements [database/sql/driver.Valuer].
func (d Date) Value() (driver.Value, error) {
	return d.Time, nil
}

// IsZero reports whether the date is unset.
func (d Date) IsZero() bool {
	return d.Time.IsZero()
}
