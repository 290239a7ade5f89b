package dateutil

import (
	"fmt"
	"time"
)

// Month is a calendar month encoded as year*12 + (month-1). Projection and
// target dates are always compared at this granularity; comparing raw
// timestamps drifts when "now" is re-sampled between recalculations.
type Month int

// MonthOf returns the Month containing the given instant.
func MonthOf(t time.Time) Month {
	return Month(t.Year()*12 + int(t.Month()) - 1)
}

// NewMonth creates a Month from a year and a calendar month.
func NewMonth(year int, month time.Month) Month {
	return Month(year*12 + int(month) - 1)
}

// Year returns the calendar year of the month.
func (m Month) Year() int {
	return int(m) / 12
}

// Month returns the calendar month (January..December).
func (m Month) Month() time.Month {
	return time.Month(int(m)%12 + 1)
}

// Add advances the month by n calendar months. Negative n moves backwards.
func (m Month) Add(n int) Month {
	return m + Month(n)
}

// MonthsUntil returns the number of whole calendar months from m to other.
// Negative when other precedes m.
func (m Month) MonthsUntil(other Month) int {
	return int(other - m)
}

// Before reports whether m precedes other.
func (m Month) Before(other Month) bool {
	return m < other
}

// After reports whether m follows other.
func (m Month) After(other Month) bool {
	return m > other
}

// Date returns the first day of the month in UTC.
func (m Month) Date() time.Time {
	return time.Date(m.Year(), m.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// String formats the month as YYYY-MM.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year(), int(m.Month()))
}

// MarshalText implements encoding.TextMarshaler so Month renders as YYYY-MM
// in JSON and YAML output.
func (m Month) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText parses a YYYY-MM month.
func (m *Month) UnmarshalText(text []byte) error {
	t, err := time.Parse("2006-01", string(text))
	if err != nil {
		return fmt.Errorf("invalid month %q: %w", string(text), err)
	}
	*m = MonthOf(t)
	return nil
}
