// Package types implements special types for the ledger.
package types

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Period is a budgeting period, a month in a specific year.
type Period time.Time

// NewPeriod returns a new Period.
func NewPeriod(year int, month time.Month) Period {
	return Period(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))
}

// PeriodOf returns the Period in which a time occurs in that time's location.
func PeriodOf(t time.Time) Period {
	year, month, _ := t.Date()
	return NewPeriod(year, month)
}

// ParsePeriod parses a "YYYY-MM" string and returns the Period value it represents.
func ParsePeriod(s string) (Period, error) {
	if len(s) != len("2006-01") {
		return Period{}, fmt.Errorf("period %q is not in YYYY-MM format", s)
	}

	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Period{}, fmt.Errorf("period %q is not in YYYY-MM format", s)
	}

	return PeriodOf(t), nil
}

// String returns the period formatted as YYYY-MM.
func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", time.Time(p).Year(), time.Time(p).Month())
}

// Title returns the period in a human readable format, e.g. "October 2025".
func (p Period) Title() string {
	return time.Time(p).Format("January 2006")
}

// MarshalJSON implements the json.Marshaler interface.
// The output is the period in YYYY-MM format.
func (p Period) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// The period is expected to be a string in YYYY-MM format.
func (p *Period) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`) // get rid of "
	if value == "" || value == "null" {
		return nil
	}

	period, err := ParsePeriod(value)
	if err != nil {
		return err
	}

	*p = period
	return nil
}

// IsZero reports if the period is the zero value.
func (p Period) IsZero() bool {
	return time.Time(p).IsZero()
}

// AddMonths adds a number of months to the period.
func (p Period) AddMonths(months int) Period {
	return Period(time.Time(p).AddDate(0, months, 0))
}

// Start returns the first date of the period in YYYY-MM-DD format.
func (p Period) Start() string {
	return time.Time(p).Format(time.DateOnly)
}

// End returns the last date of the period in YYYY-MM-DD format.
func (p Period) End() string {
	return time.Time(p).AddDate(0, 1, -1).Format(time.DateOnly)
}

// Contains reports whether a date in YYYY-MM-DD format is in the period.
func (p Period) Contains(date string) bool {
	return strings.HasPrefix(date, p.String()+"-")
}
