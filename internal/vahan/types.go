// Package vahan defines the domain model for vehicle-registration data:
// the registration record itself, vehicle category constants, quarter
// helpers, a CSV codec, and a synthetic sample-data generator for
// development and testing.
package vahan

import (
	"fmt"
	"strconv"
	"time"
)

// Vehicle categories as reported by the registration portal.
const (
	TwoWheeler   = "2W"
	ThreeWheeler = "3W"
	FourWheeler  = "4W"
)

// Categories returns the standard vehicle categories in display order.
func Categories() []string {
	return []string{TwoWheeler, ThreeWheeler, FourWheeler}
}

// Record is a single vehicle-registration count: how many vehicles of one
// category a manufacturer registered on a given date. Records are immutable
// once stored.
type Record struct {
	Date          string // ISO-8601, e.g. "2023-04-01"
	Year          int
	Quarter       string // "Q1".."Q4"
	Month         int    // 1-12
	Category      string // "2W", "3W", "4W"
	Manufacturer  string
	Registrations int
	FuelType      string // optional, empty when the source has no fuel data
}

// Validate checks that all required fields are present and well-formed.
// Aggregation cannot proceed meaningfully over a malformed record, so
// ingestion fails fast on the first invalid one.
func (r Record) Validate() error {
	if r.Date == "" {
		return fmt.Errorf("record missing date")
	}
	if _, err := time.Parse("2006-01-02", r.Date); err != nil {
		return fmt.Errorf("invalid date %q: %w", r.Date, err)
	}
	if r.Year <= 0 {
		return fmt.Errorf("record %s: invalid year %d", r.Date, r.Year)
	}
	if QuarterIndex(r.Quarter) == 0 {
		return fmt.Errorf("record %s: invalid quarter %q", r.Date, r.Quarter)
	}
	if r.Month < 1 || r.Month > 12 {
		return fmt.Errorf("record %s: invalid month %d", r.Date, r.Month)
	}
	if r.Category == "" {
		return fmt.Errorf("record %s: missing vehicle category", r.Date)
	}
	if r.Manufacturer == "" {
		return fmt.Errorf("record %s: missing manufacturer", r.Date)
	}
	if r.Registrations < 0 {
		return fmt.Errorf("record %s/%s: negative registration count %d",
			r.Date, r.Manufacturer, r.Registrations)
	}
	return nil
}

// QuarterIndex returns 1-4 for "Q1".."Q4", or 0 for anything else.
func QuarterIndex(quarter string) int {
	if len(quarter) != 2 || quarter[0] != 'Q' {
		return 0
	}
	n := int(quarter[1] - '0')
	if n < 1 || n > 4 {
		return 0
	}
	return n
}

// QuarterOf returns the quarter label ("Q1".."Q4") for a month 1-12.
func QuarterOf(month int) string {
	return "Q" + strconv.Itoa((month-1)/3+1)
}

// PeriodIndex returns a sequential quarter index (year*4 + quarter - 1)
// suitable for chronological sorting and trend fitting.
func (r Record) PeriodIndex() int {
	return r.Year*4 + QuarterIndex(r.Quarter) - 1
}

// PeriodLabel returns the record's quarter label, e.g. "2023-Q2".
func (r Record) PeriodLabel() string {
	return fmt.Sprintf("%d-%s", r.Year, r.Quarter)
}
