package fiscal

import (
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/username/fiscal-calendar/pkg/dateutil"
)

// Converter translates values between calendar dates and fiscal
// coordinates using a fixed alignment table. It holds no mutable state
// and is safe for concurrent use.
type Converter struct {
	table  *Table
	logger *zap.Logger
}

// NewConverter creates a new Converter instance. A nil table selects the
// built-in reference table; a nil logger disables logging.
func NewConverter(table *Table, logger *zap.Logger) *Converter {
	if table == nil {
		table = DefaultTable()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Converter{
		table:  table,
		logger: logger,
	}
}

// Table returns the alignment table the converter was built with
func (c *Converter) Table() *Table {
	return c.table
}

// Convert translates a single value between the given coordinate systems.
func (c *Converter) Convert(value string, from From, to To) (string, error) {
	results, err := c.ConvertAll([]string{value}, from, to)
	if err != nil {
		return "", err
	}
	return results[0], nil
}

// ConvertAll translates a batch of values, preserving input order. Every
// element is parsed and range-checked before any conversion arithmetic
// runs; the first invalid element fails the whole batch and no partial
// results are returned.
func (c *Converter) ConvertAll(values []string, from From, to To) ([]string, error) {
	if err := ValidateDirection(from, to); err != nil {
		return nil, err
	}

	c.logger.Debug("Converting values",
		zap.Int("count", len(values)),
		zap.String("from", string(from)),
		zap.String("to", string(to)))

	if from == FromDate {
		dates, err := c.parseDates(values)
		if err != nil {
			return nil, err
		}
		return c.resolveDates(dates, to)
	}

	labels, err := c.parseWeekLabels(values)
	if err != nil {
		return nil, err
	}
	return c.resolveWeekLabels(labels, to)
}

// parseDates validates a batch of YYYY-MM-DD values against the supported
// date range
func (c *Converter) parseDates(values []string) ([]time.Time, error) {
	dates := make([]time.Time, len(values))
	for i, v := range values {
		d, err := dateutil.ParseDate(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a calendar date in YYYY-MM-DD form", ErrMalformedInput, v)
		}
		if !c.table.Contains(d) {
			return nil, fmt.Errorf("%w: date %q outside supported range %s to %s",
				ErrOutOfRange, v,
				dateutil.FormatDate(c.table.MinDate()),
				dateutil.FormatDate(c.table.MaxDate()))
		}
		dates[i] = d
	}
	return dates, nil
}

// parseWeekLabels validates a batch of WW.YYYY values against the
// supported years and each year's week count
func (c *Converter) parseWeekLabels(values []string) ([]WeekLabel, error) {
	labels := make([]WeekLabel, len(values))
	for i, v := range values {
		l, err := ParseWeekLabel(v)
		if err != nil {
			return nil, err
		}
		if !c.table.ContainsYear(l.Year) {
			return nil, fmt.Errorf("%w: fiscal year %d in %q outside supported years %d-%d",
				ErrOutOfRange, l.Year, v, c.table.MinYear(), c.table.MaxYear())
		}
		if l.Week > c.table.WeeksIn(l.Year) {
			return nil, fmt.Errorf("%w: fiscal year %d has %d weeks, %q names week %d",
				ErrOutOfRange, l.Year, c.table.WeeksIn(l.Year), v, l.Week)
		}
		labels[i] = l
	}
	return labels, nil
}

func (c *Converter) resolveDates(dates []time.Time, to To) ([]string, error) {
	results := make([]string, len(dates))
	for i, d := range dates {
		r, err := c.resolveDate(d, to)
		if err != nil {
			return nil, err
		}
		results[i] = r
	}
	return results, nil
}

func (c *Converter) resolveDate(d time.Time, to To) (string, error) {
	switch to {
	case ToWeekBeginning:
		return dateutil.FormatDate(dateutil.WeekBeginning(d)), nil
	case ToWeekEnding:
		return dateutil.FormatDate(dateutil.WeekEnding(d)), nil
	}

	week, year, err := c.fiscalWeekYear(d)
	if err != nil {
		return "", err
	}

	switch to {
	case ToFiscalWeek:
		return WeekLabel{Week: week, Year: year}.String(), nil
	case ToFiscalYear:
		return strconv.Itoa(year), nil
	case ToFiscalMonth:
		month, err := monthOfWeek(week, c.table.Has53Weeks(year))
		if err != nil {
			return "", err
		}
		return dateutil.FormatDate(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)), nil
	}

	return "", fmt.Errorf("%w: cannot convert from %q to %q", ErrInvalidDirection, FromDate, to)
}

// fiscalWeekYear resolves a calendar date to its corrected fiscal
// (week, year) pair. Shifting the date by its year's offset aligns fiscal
// weeks with plain seven-day blocks counted from January 1; the rules
// below then repair coordinates for dates whose shifted image crosses a
// calendar year boundary. The rules read only the raw shifted values and
// the first match wins.
func (c *Converter) fiscalWeekYear(d time.Time) (int, int, error) {
	calYear := d.Year()
	offset, err := c.table.OffsetFor(calYear)
	if err != nil {
		return 0, 0, err
	}

	shifted := d.AddDate(0, 0, offset)
	rawWeek := dateutil.WeekOfYear(shifted)
	rawYear := shifted.Year()

	switch {
	case rawYear < calYear && c.table.Has53Weeks(rawYear):
		// Tail of a long prior fiscal year.
		return 53, rawYear, nil
	case rawYear < calYear:
		// Tail of a regular prior fiscal year.
		return 52, rawYear, nil
	case rawWeek == 53 && !c.table.Has53Weeks(calYear):
		// A 53rd seven-day block only exists in long years; elsewhere it
		// already belongs to week 1 of the next fiscal year.
		return 1, calYear + 1, nil
	case rawYear > calYear && c.table.Has53Weeks(calYear):
		// Dates spilling forward out of a long year stay in its week 53.
		return 53, calYear, nil
	default:
		return rawWeek, rawYear, nil
	}
}

func (c *Converter) resolveWeekLabels(labels []WeekLabel, to To) ([]string, error) {
	results := make([]string, len(labels))
	for i, l := range labels {
		r, err := c.resolveWeekLabel(l, to)
		if err != nil {
			return nil, err
		}
		results[i] = r
	}
	return results, nil
}

func (c *Converter) resolveWeekLabel(l WeekLabel, to To) (string, error) {
	start, err := c.table.YearStart(l.Year)
	if err != nil {
		return "", err
	}

	switch to {
	case ToWeekBeginning:
		return dateutil.FormatDate(start.AddDate(0, 0, (l.Week-1)*7)), nil
	case ToWeekEnding:
		return dateutil.FormatDate(start.AddDate(0, 0, l.Week*7-1)), nil
	case ToFiscalMonth:
		month, err := monthOfWeek(l.Week, c.table.Has53Weeks(l.Year))
		if err != nil {
			return "", err
		}
		return dateutil.FormatDate(time.Date(l.Year, month, 1, 0, 0, 0, 0, time.UTC)), nil
	}

	return "", fmt.Errorf("%w: cannot convert from %q to %q", ErrInvalidDirection, FromFiscalWeek, to)
}
