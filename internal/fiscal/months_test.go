package fiscal

import (
	"errors"
	"testing"
	"time"
)

func TestMonthOfWeek_RegularYear(t *testing.T) {
	tests := []struct {
		week int
		want time.Month
	}{
		{1, time.January},
		{4, time.January},
		{5, time.February},
		{8, time.February},
		{9, time.March},
		{13, time.March},
		{14, time.April},
		{17, time.April},
		{21, time.May},
		{26, time.June},
		{27, time.July},
		{30, time.July},
		{34, time.August},
		{35, time.September},
		{39, time.September},
		{43, time.October},
		{47, time.November},
		{48, time.December},
		{52, time.December},
	}

	for _, tt := range tests {
		got, err := monthOfWeek(tt.week, false)
		if err != nil {
			t.Fatalf("monthOfWeek(%d, false) error = %v", tt.week, err)
		}
		if got != tt.want {
			t.Errorf("monthOfWeek(%d, false) = %v, want %v", tt.week, got, tt.want)
		}
	}
}

func TestMonthOfWeek_LongYear(t *testing.T) {
	// The extra week goes to month 08: its closing week moves from 34 to
	// 35 and every later threshold shifts by one.
	tests := []struct {
		week int
		want time.Month
	}{
		{30, time.July},
		{34, time.August},
		{35, time.August},
		{36, time.September},
		{40, time.September},
		{44, time.October},
		{48, time.November},
		{49, time.December},
		{53, time.December},
	}

	for _, tt := range tests {
		got, err := monthOfWeek(tt.week, true)
		if err != nil {
			t.Fatalf("monthOfWeek(%d, true) error = %v", tt.week, err)
		}
		if got != tt.want {
			t.Errorf("monthOfWeek(%d, true) = %v, want %v", tt.week, got, tt.want)
		}
	}

	// Months 01-07 are untouched by the long-year variant.
	for week := 1; week <= 30; week++ {
		short, _ := monthOfWeek(week, false)
		long, _ := monthOfWeek(week, true)
		if short != long {
			t.Errorf("monthOfWeek(%d) differs between variants: %v vs %v", week, short, long)
		}
	}
}

func TestMonthOfWeek_OutOfPattern(t *testing.T) {
	if _, err := monthOfWeek(53, false); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("monthOfWeek(53, false) error = %v, want ErrOutOfRange", err)
	}
	if _, err := monthOfWeek(54, true); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("monthOfWeek(54, true) error = %v, want ErrOutOfRange", err)
	}
	if _, err := monthOfWeek(0, false); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("monthOfWeek(0, false) error = %v, want ErrOutOfRange", err)
	}
}

func TestMonthEndWeeks_Monotonic(t *testing.T) {
	for _, long := range []bool{false, true} {
		last := 0
		for m := 1; m <= 12; m++ {
			end := monthEndWeek(m, long)
			if end <= last {
				t.Errorf("monthEndWeek(%d, %v) = %d, not above previous %d", m, long, end, last)
			}
			last = end
		}

		wantFinal := 52
		if long {
			wantFinal = 53
		}
		if last != wantFinal {
			t.Errorf("final threshold (long=%v) = %d, want %d", long, last, wantFinal)
		}
	}
}
