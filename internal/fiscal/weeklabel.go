package fiscal

import (
	"fmt"
	"regexp"
	"strconv"
)

// WeekLabel is a fiscal week coordinate in WW.YYYY form: a zero-padded
// two-digit week number, a dot, and a four-digit fiscal year.
type WeekLabel struct {
	Week int
	Year int
}

var weekLabelPattern = regexp.MustCompile(`^([0-9]{2})\.([0-9]{4})$`)

// ParseWeekLabel reads a WW.YYYY fiscal week label. The shape is strict:
// exactly two digits, a dot, four digits, with the week between 1 and 53.
func ParseWeekLabel(s string) (WeekLabel, error) {
	m := weekLabelPattern.FindStringSubmatch(s)
	if m == nil {
		return WeekLabel{}, fmt.Errorf("%w: %q is not a WW.YYYY fiscal week label", ErrMalformedInput, s)
	}

	week, _ := strconv.Atoi(m[1])
	year, _ := strconv.Atoi(m[2])

	if week < 1 || week > 53 {
		return WeekLabel{}, fmt.Errorf("%w: week %d in %q outside 1-53", ErrMalformedInput, week, s)
	}

	return WeekLabel{Week: week, Year: year}, nil
}

// String renders the label back into WW.YYYY form
func (l WeekLabel) String() string {
	return fmt.Sprintf("%02d.%04d", l.Week, l.Year)
}
