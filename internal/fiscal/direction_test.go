package fiscal

import (
	"errors"
	"testing"
)

func TestParseFrom(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    From
		wantErr bool
	}{
		{"lowercase date", "date", FromDate, false},
		{"uppercase date", "DATE", FromDate, false},
		{"mixed case fiscal week", "Fiscal Week", FromFiscalWeek, false},
		{"surrounding whitespace", "  date ", FromDate, false},
		{"unknown coordinate", "week", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFrom(tt.input)

			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFrom(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, ErrInvalidDirection) {
				t.Errorf("ParseFrom(%q) error = %v, want ErrInvalidDirection", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseFrom(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseTo(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    To
		wantErr bool
	}{
		{"week beginning", "week beginning", ToWeekBeginning, false},
		{"week ending capitalized", "Week Ending", ToWeekEnding, false},
		{"fiscal week upper", "FISCAL WEEK", ToFiscalWeek, false},
		{"fiscal month", "fiscal month", ToFiscalMonth, false},
		{"fiscal year padded", " fiscal year", ToFiscalYear, false},
		{"unknown coordinate", "calendar month", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTo(tt.input)

			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseTo(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, ErrInvalidDirection) {
				t.Errorf("ParseTo(%q) error = %v, want ErrInvalidDirection", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseTo(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidateDirection(t *testing.T) {
	valid := map[From][]To{
		FromDate:       {ToWeekBeginning, ToWeekEnding, ToFiscalWeek, ToFiscalMonth, ToFiscalYear},
		FromFiscalWeek: {ToWeekBeginning, ToWeekEnding, ToFiscalMonth},
	}

	targets := []To{ToWeekBeginning, ToWeekEnding, ToFiscalWeek, ToFiscalMonth, ToFiscalYear}

	for from, allowed := range valid {
		allowedSet := make(map[To]bool, len(allowed))
		for _, to := range allowed {
			allowedSet[to] = true
		}

		for _, to := range targets {
			err := ValidateDirection(from, to)
			if allowedSet[to] && err != nil {
				t.Errorf("ValidateDirection(%q, %q) error = %v, want nil", from, to, err)
			}
			if !allowedSet[to] && !errors.Is(err, ErrInvalidDirection) {
				t.Errorf("ValidateDirection(%q, %q) error = %v, want ErrInvalidDirection", from, to, err)
			}
		}
	}

	if err := ValidateDirection("meeting", ToWeekEnding); !errors.Is(err, ErrInvalidDirection) {
		t.Errorf("ValidateDirection(meeting) error = %v, want ErrInvalidDirection", err)
	}
}
