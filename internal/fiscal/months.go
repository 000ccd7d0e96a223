package fiscal

import (
	"fmt"
	"time"
)

// Cumulative closing weeks for fiscal months 01 through 12 under the 4-4-5
// quarter pattern: each quarter spans 13 weeks split four, four and five.
// Week 13 belongs to month 03, week 26 to month 06, and so on.
var monthEndWeeks = [12]int{4, 8, 13, 17, 21, 26, 30, 34, 39, 43, 47, 52}

// monthEndWeek returns the last fiscal week of the given month (1-12).
// In a 53-week year the extra week is absorbed by month 08, pushing that
// threshold and every later one up by one.
func monthEndWeek(month int, long bool) int {
	end := monthEndWeeks[month-1]
	if long && month >= 8 {
		end++
	}
	return end
}

// monthOfWeek maps a fiscal week to its fiscal month. long selects the
// 53-week variant of the pattern.
func monthOfWeek(week int, long bool) (time.Month, error) {
	if week >= 1 {
		for m := 1; m <= 12; m++ {
			if week <= monthEndWeek(m, long) {
				return time.Month(m), nil
			}
		}
	}
	return 0, fmt.Errorf("%w: fiscal week %d maps to no month", ErrOutOfRange, week)
}
