package fiscal

import (
	"fmt"
	"sort"
	"time"
)

// Reference alignment data for fiscal years 2014 through 2021. The offset
// is the signed number of days between January 1 and the Sunday the fiscal
// year starts on: fiscal year Y begins on January 1 of Y minus offset(Y).
// 2013 carries 53 weeks even though it is below the convertible range;
// early-January 2014 dates resolve into its final week.
var (
	referenceOffsets = map[int]int{
		2014: -4,
		2015: -3,
		2016: -2,
		2017: 0,
		2018: 1,
		2019: 2,
		2020: -4,
		2021: -2,
	}

	referenceWeeks53 = []int{2013, 2019}
)

// Table holds the fiscal alignment for a contiguous run of calendar years:
// one day offset per year plus the set of 53-week fiscal years. A Table is
// immutable once built and safe for concurrent use.
type Table struct {
	offsets map[int]int
	weeks53 map[int]bool
	minYear int
	maxYear int
}

// YearInfo describes one configured fiscal year.
type YearInfo struct {
	Year   int       `json:"year"`
	Offset int       `json:"offset"`
	Weeks  int       `json:"weeks"`
	Start  time.Time `json:"start"`
}

// NewTable builds an alignment table from a year→offset mapping and a list
// of 53-week fiscal years. The offset years must form a contiguous run, and
// every offset must place its fiscal year start on a Sunday spaced exactly
// 52 or 53 weeks from its neighbours.
func NewTable(offsets map[int]int, weeks53 []int) (*Table, error) {
	if len(offsets) == 0 {
		return nil, fmt.Errorf("alignment table needs at least one year offset")
	}

	t := &Table{
		offsets: make(map[int]int, len(offsets)),
		weeks53: make(map[int]bool, len(weeks53)),
	}
	for year, offset := range offsets {
		if year <= 0 {
			return nil, fmt.Errorf("invalid year %d in alignment table", year)
		}
		t.offsets[year] = offset
	}
	for _, year := range weeks53 {
		if year <= 0 {
			return nil, fmt.Errorf("invalid 53-week year %d", year)
		}
		t.weeks53[year] = true
	}

	years := t.Years()
	t.minYear = years[0]
	t.maxYear = years[len(years)-1]

	for i, year := range years {
		if i > 0 && year != years[i-1]+1 {
			return nil, fmt.Errorf("alignment table has a gap between years %d and %d", years[i-1], year)
		}

		start := t.yearStart(year)
		if start.Weekday() != time.Sunday {
			return nil, fmt.Errorf("offset %d puts the start of fiscal year %d on a %s, want Sunday",
				t.offsets[year], year, start.Weekday())
		}

		if i > 0 {
			gap := int(start.Sub(t.yearStart(years[i-1])).Hours() / 24)
			want := 52 * 7
			if t.weeks53[years[i-1]] {
				want = 53 * 7
			}
			if gap != want {
				return nil, fmt.Errorf("fiscal year %d starts %d days after %d, want %d",
					year, gap, years[i-1], want)
			}
		}
	}

	return t, nil
}

// DefaultTable returns the built-in reference table covering fiscal years
// 2014 through 2021.
func DefaultTable() *Table {
	t, err := NewTable(referenceOffsets, referenceWeeks53)
	if err != nil {
		// The reference constants satisfy every NewTable invariant.
		panic(err)
	}
	return t
}

// Extend returns a new table with extra year offsets merged in. Extra
// entries are additive: an existing year may be repeated verbatim but not
// redefined, and the merged run must still satisfy every NewTable invariant.
func (t *Table) Extend(offsets map[int]int, weeks53 []int) (*Table, error) {
	merged := make(map[int]int, len(t.offsets)+len(offsets))
	for year, offset := range t.offsets {
		merged[year] = offset
	}
	for year, offset := range offsets {
		if existing, ok := t.offsets[year]; ok && existing != offset {
			return nil, fmt.Errorf("year %d already has day offset %d, cannot redefine to %d",
				year, existing, offset)
		}
		merged[year] = offset
	}

	mergedWeeks53 := make([]int, 0, len(t.weeks53)+len(weeks53))
	for year := range t.weeks53 {
		mergedWeeks53 = append(mergedWeeks53, year)
	}
	for _, year := range weeks53 {
		if t.ContainsYear(year) && !t.weeks53[year] {
			return nil, fmt.Errorf("year %d is configured with 52 weeks, cannot redefine to 53", year)
		}
		if !t.weeks53[year] {
			mergedWeeks53 = append(mergedWeeks53, year)
		}
	}

	return NewTable(merged, mergedWeeks53)
}

// OffsetFor returns the day offset configured for the given calendar year
func (t *Table) OffsetFor(year int) (int, error) {
	offset, ok := t.offsets[year]
	if !ok {
		return 0, fmt.Errorf("%w: no day offset for year %d", ErrNotConfigured, year)
	}
	return offset, nil
}

// Has53Weeks reports whether the given fiscal year carries 53 weeks
func (t *Table) Has53Weeks(year int) bool {
	return t.weeks53[year]
}

// WeeksIn returns the number of weeks in the given fiscal year (52 or 53)
func (t *Table) WeeksIn(year int) int {
	if t.weeks53[year] {
		return 53
	}
	return 52
}

// YearStart returns the Sunday the given fiscal year begins on.
func (t *Table) YearStart(year int) (time.Time, error) {
	if _, err := t.OffsetFor(year); err != nil {
		return time.Time{}, err
	}
	return t.yearStart(year), nil
}

func (t *Table) yearStart(year int) time.Time {
	return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -t.offsets[year])
}

// MinYear returns the first convertible calendar year
func (t *Table) MinYear() int {
	return t.minYear
}

// MaxYear returns the last convertible calendar year
func (t *Table) MaxYear() int {
	return t.maxYear
}

// MinDate returns the first supported calendar date (January 1 of MinYear)
func (t *Table) MinDate() time.Time {
	return time.Date(t.minYear, time.January, 1, 0, 0, 0, 0, time.UTC)
}

// MaxDate returns the last supported calendar date (December 31 of MaxYear)
func (t *Table) MaxDate() time.Time {
	return time.Date(t.maxYear, time.December, 31, 0, 0, 0, 0, time.UTC)
}

// Contains reports whether the date lies inside the supported range
func (t *Table) Contains(date time.Time) bool {
	return !date.Before(t.MinDate()) && !date.After(t.MaxDate())
}

// ContainsYear reports whether the year has an offset entry
func (t *Table) ContainsYear(year int) bool {
	_, ok := t.offsets[year]
	return ok
}

// Years returns the configured calendar years in ascending order.
func (t *Table) Years() []int {
	years := make([]int, 0, len(t.offsets))
	for year := range t.offsets {
		years = append(years, year)
	}
	sort.Ints(years)
	return years
}

// Info returns a per-year summary of the table in ascending year order.
func (t *Table) Info() []YearInfo {
	years := t.Years()
	info := make([]YearInfo, 0, len(years))
	for _, year := range years {
		info = append(info, YearInfo{
			Year:   year,
			Offset: t.offsets[year],
			Weeks:  t.WeeksIn(year),
			Start:  t.yearStart(year),
		})
	}
	return info
}
