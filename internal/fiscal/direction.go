package fiscal

import (
	"fmt"
	"strings"
)

// From identifies the coordinate system conversion inputs are expressed in.
type From string

// To identifies the coordinate system conversion results are expressed in.
type To string

const (
	FromDate       From = "date"
	FromFiscalWeek From = "fiscal week"
)

const (
	ToWeekBeginning To = "week beginning"
	ToWeekEnding    To = "week ending"
	ToFiscalWeek    To = "fiscal week"
	ToFiscalMonth   To = "fiscal month"
	ToFiscalYear    To = "fiscal year"
)

// ParseFrom reads a source coordinate name, ignoring case and surrounding
// whitespace.
func ParseFrom(s string) (From, error) {
	switch From(normalizeDirection(s)) {
	case FromDate:
		return FromDate, nil
	case FromFiscalWeek:
		return FromFiscalWeek, nil
	}
	return "", fmt.Errorf("%w: unknown source coordinate %q (want %q or %q)",
		ErrInvalidDirection, s, FromDate, FromFiscalWeek)
}

// ParseTo reads a target coordinate name, ignoring case and surrounding
// whitespace.
func ParseTo(s string) (To, error) {
	switch To(normalizeDirection(s)) {
	case ToWeekBeginning:
		return ToWeekBeginning, nil
	case ToWeekEnding:
		return ToWeekEnding, nil
	case ToFiscalWeek:
		return ToFiscalWeek, nil
	case ToFiscalMonth:
		return ToFiscalMonth, nil
	case ToFiscalYear:
		return ToFiscalYear, nil
	}
	return "", fmt.Errorf("%w: unknown target coordinate %q", ErrInvalidDirection, s)
}

func normalizeDirection(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ValidateDirection checks that the from/to pair is one of the supported
// conversions. Dates convert to any target; fiscal weeks convert to week
// boundaries and fiscal months only, since their week and year are already
// spelled out in the label.
func ValidateDirection(from From, to To) error {
	switch from {
	case FromDate:
		switch to {
		case ToWeekBeginning, ToWeekEnding, ToFiscalWeek, ToFiscalMonth, ToFiscalYear:
			return nil
		}
	case FromFiscalWeek:
		switch to {
		case ToWeekBeginning, ToWeekEnding, ToFiscalMonth:
			return nil
		}
	}
	return fmt.Errorf("%w: cannot convert from %q to %q", ErrInvalidDirection, from, to)
}
