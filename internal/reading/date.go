// Copyright (c) 2026 Daily Scripture Path. All rights reserved.
// Author: blessy228@gmail.com

package reading

import (
	"fmt"
	"strings"
	"time"
)

// Date is a calendar day with no time-of-day component.
//
// Reading entries are stamped with local calendar days, not instants: the
// progress ledger has no timezone database and never interprets hours or
// minutes. Internally every Date is normalized to midnight UTC so that a
// whole-day difference is always an exact multiple of 24 hours.
//
// It marshals to and from the "YYYY-MM-DD" wire format.
type Date struct {
	time.Time
}

// NewDate builds a Date from the calendar day of t, read in t's location.
func NewDate(t time.Time) Date {
	year, month, day := t.Date()
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf builds a Date from explicit calendar components.
func DateOf(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a "YYYY-MM-DD" string.
func ParseDate(value string) (Date, error) {
	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return Date{}, fmt.Errorf("reading: invalid date %q: %w", value, err)
	}
	return Date{t}, nil
}

// AddDays returns the Date n calendar days after d (negative n goes back).
func (d Date) AddDays(n int) Date {
	return Date{d.Time.AddDate(0, 0, n)}
}

// DaysSince returns the whole-day difference d - other.
func (d Date) DaysSince(other Date) int {
	return int(d.Time.Sub(other.Time) / (24 * time.Hour))
}

// Equal reports whether two Dates name the same calendar day.
func (d Date) Equal(other Date) bool {
	return d.Time.Equal(other.Time)
}

// String renders the "YYYY-MM-DD" form.
func (d Date) String() string {
	return d.Time.Format(time.DateOnly)
}

// MarshalJSON implements [encoding/json.Marshaler].
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON implements [encoding/json.Unmarshaler]. It accepts the
// "YYYY-MM-DD" form only.
func (d *Date) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	parsed, err := ParseDate(raw)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
