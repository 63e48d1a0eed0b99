// Package types implements special types for LMNP Books.
package types

import (
	"fmt"
	"strconv"
	"time"
)

// FiscalYear is a French fiscal year, which is always a calendar year.
type FiscalYear int

// FiscalYearOf returns the FiscalYear a time occurs in, in UTC.
func FiscalYearOf(t time.Time) FiscalYear {
	return FiscalYear(t.UTC().Year())
}

// String returns the year formatted as YYYY.
func (y FiscalYear) String() string {
	return fmt.Sprintf("%04d", int(y))
}

// Start returns the first instant of the fiscal year.
func (y FiscalYear) Start() time.Time {
	return time.Date(int(y), time.January, 1, 0, 0, 0, 0, time.UTC)
}

// End returns the last day of the fiscal year.
func (y FiscalYear) End() time.Time {
	return time.Date(int(y), time.December, 31, 0, 0, 0, 0, time.UTC)
}

// ParseFiscalYear parses a "YYYY" string and returns the FiscalYear it
// represents.
func ParseFiscalYear(s string) (FiscalYear, error) {
	year, err := strconv.Atoi(s)
	if err != nil || year < 1 || year > 9999 {
		return 0, fmt.Errorf("parsing fiscal year: %q is not a valid year", s)
	}

	return FiscalYear(year), nil
}

// WholeYearsSince returns the number of complete years between a reference
// date and asOf. A year only counts once its anniversary has passed, so an
// asset acquired on 2020-06-01 has one whole year of service on 2021-06-01,
// not on 2021-01-01. Never negative.
func WholeYearsSince(reference, asOf time.Time) int {
	reference = reference.UTC()
	asOf = asOf.UTC()

	years := asOf.Year() - reference.Year()

	// The anniversary has not happened yet this year
	if asOf.Month() < reference.Month() ||
		(asOf.Month() == reference.Month() && asOf.Day() < reference.Day()) {
		years--
	}

	if years < 0 {
		return 0
	}

	return years
}
