package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// Date is a calendar day with no time component, serialized as "2006-01-02".
// Dates are normalized to midnight UTC, so they compare with == and can key
// maps.
type Date struct {
	t time.Time
}

// NewDate returns the Date for the given year, month, and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates t to its calendar day in t's location.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// ParseDate parses a "2006-01-02" date string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, fmt.Errorf("parsing date %q: %w", s, err)
	}
	return DateOf(t), nil
}

func (d Date) String() string { return d.t.Format("2006-01-02") }

// Time returns the date as midnight UTC.
func (d Date) Time() time.Time { return d.t }

func (d Date) IsZero() bool            { return d.t.IsZero() }
func (d Date) Weekday() time.Weekday   { return d.t.Weekday() }
func (d Date) Before(other Date) bool  { return d.t.Before(other.t) }
func (d Date) After(other Date) bool   { return d.t.After(other.t) }
func (d Date) AddDays(n int) Date      { return Date{t: d.t.AddDate(0, 0, n)} }

// DaysBetween returns the number of whole days from a to b, positive when b
// is the later date.
func DaysBetween(a, b Date) int {
	return int(b.t.Sub(a.t) / (24 * time.Hour))
}

// MarshalJSON encodes the date as a quoted "2006-01-02" string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON decodes a quoted "2006-01-02" string. An empty string yields
// the zero Date.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
