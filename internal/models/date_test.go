package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-03-15")
	if err != nil {
		t.Fatalf("ParseDate error: %v", err)
	}
	if got := d.String(); got != "2026-03-15" {
		t.Errorf("String() = %q, want %q", got, "2026-03-15")
	}
	if d.Weekday() != time.Sunday {
		t.Errorf("Weekday() = %v, want Sunday", d.Weekday())
	}

	if _, err := ParseDate("15/03/2026"); err == nil {
		t.Error("ParseDate accepted a non-ISO date")
	}
}

// TestDateComparable verifies dates normalize to the same instant regardless
// of the source time's clock or zone, so == and map keys work.
func TestDateComparable(t *testing.T) {
	zone := time.FixedZone("UTC+5", 5*3600)
	morning := DateOf(time.Date(2026, 3, 15, 8, 30, 0, 0, zone))
	evening := DateOf(time.Date(2026, 3, 15, 23, 45, 12, 0, time.Local))

	if morning != evening {
		t.Errorf("dates from different clocks differ: %v vs %v", morning, evening)
	}

	m := map[Date]int{morning: 1}
	if m[evening] != 1 {
		t.Error("date did not work as a map key")
	}
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"2026-03-15", "2026-03-15", 0},
		{"2026-03-15", "2026-03-16", 1},
		{"2026-03-15", "2026-03-22", 7},
		{"2026-03-16", "2026-03-15", -1},
		{"2026-02-28", "2026-03-01", 1},
	}
	for _, tt := range tests {
		a, _ := ParseDate(tt.a)
		b, _ := ParseDate(tt.b)
		if got := DaysBetween(a, b); got != tt.want {
			t.Errorf("DaysBetween(%s, %s) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestAddDays(t *testing.T) {
	d := NewDate(2026, time.February, 28)
	if got := d.AddDays(1).String(); got != "2026-03-01" {
		t.Errorf("AddDays(1) = %s, want 2026-03-01", got)
	}
	if got := d.AddDays(-28).String(); got != "2026-01-31" {
		t.Errorf("AddDays(-28) = %s, want 2026-01-31", got)
	}
}

func TestDateJSON(t *testing.T) {
	d := NewDate(2026, time.March, 15)
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}
	if string(data) != `"2026-03-15"` {
		t.Errorf("marshaled = %s, want %q", data, `"2026-03-15"`)
	}

	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	if back != d {
		t.Errorf("round trip = %v, want %v", back, d)
	}

	var zero Date
	if err := json.Unmarshal([]byte(`""`), &zero); err != nil {
		t.Fatalf("unmarshal empty string error: %v", err)
	}
	if !zero.IsZero() {
		t.Error("empty string did not yield the zero Date")
	}

	if err := json.Unmarshal([]byte(`"not-a-date"`), &zero); err == nil {
		t.Error("unmarshal accepted a malformed date")
	}
}
