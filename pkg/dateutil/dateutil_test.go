package dateutil

import (
	"errors"
	"testing"
	"time"
)

func TestStartOfDay(t *testing.T) {
	input := time.Date(2025, 1, 15, 14, 30, 45, 123456789, time.UTC)
	expected := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

	result := StartOfDay(input)

	if !result.Equal(expected) {
		t.Errorf("StartOfDay(%v) = %v, want %v", input, result, expected)
	}
}

func TestStartOfDay_SkippedMidnight(t *testing.T) {
	loc, err := time.LoadLocation("America/Santiago")
	if err != nil {
		t.Skipf("zone unavailable: %v", err)
	}
	// 2026-09-06 has no local midnight in Santiago
	input := time.Date(2026, 9, 6, 12, 0, 0, 0, loc)

	start := StartOfDay(input)
	if got := ISODate(start); got != "2026-09-06" {
		t.Errorf("StartOfDay(%v) = %s, want 2026-09-06", input, got)
	}
	if start.Location() != time.UTC || start.Hour() != 0 {
		t.Errorf("StartOfDay(%v) = %v, want midnight UTC", input, start)
	}
	if got := ISODate(AddDays(input, -1)); got != "2026-09-05" {
		t.Errorf("AddDays(%v, -1) = %s, want 2026-09-05", input, got)
	}
	if got := ISODate(FirstOfMonth(input)); got != "2026-09-01" {
		t.Errorf("FirstOfMonth(%v) = %s, want 2026-09-01", input, got)
	}
}

func TestFirstOfMonth(t *testing.T) {
	input := time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)
	expected := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	if result := FirstOfMonth(input); !result.Equal(expected) {
		t.Errorf("FirstOfMonth(%v) = %v, want %v", input, result, expected)
	}
}

func TestAddDays(t *testing.T) {
	tests := []struct {
		name  string
		input time.Time
		n     int
		want  string
	}{
		{"Back across year boundary", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), -3, "2025-12-29"},
		{"Forward across leap day", time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC), 1, "2024-02-29"},
		{"Forward past leap day", time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC), 2, "2024-03-01"},
		{"Zero", time.Date(2024, 7, 4, 15, 0, 0, 0, time.UTC), 0, "2024-07-04"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := AddDays(tt.input, tt.n)

			if got := ISODate(result); got != tt.want {
				t.Errorf("AddDays(%v, %d) = %v, want %v", tt.input, tt.n, got, tt.want)
			}
			if result.Hour() != 0 || result.Minute() != 0 {
				t.Errorf("AddDays(%v, %d) is not midnight: %v", tt.input, tt.n, result)
			}
		})
	}
}

func TestAddMonths(t *testing.T) {
	tests := []struct {
		name  string
		input time.Time
		n     int
		want  string
	}{
		{"Next month", time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), 1, "2026-02-15"},
		{"Clamp to short February", time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC), 1, "2026-02-28"},
		{"Clamp to leap February", time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC), -1, "2024-02-29"},
		{"Previous year", time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC), -1, "2025-12-10"},
		{"Twelve months", time.Date(2026, 5, 5, 0, 0, 0, 0, time.UTC), 12, "2027-05-05"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ISODate(AddMonths(tt.input, tt.n)); got != tt.want {
				t.Errorf("AddMonths(%v, %d) = %v, want %v", ISODate(tt.input), tt.n, got, tt.want)
			}
		})
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month time.Month
		want  int
	}{
		{"January", 2026, time.January, 31},
		{"April", 2026, time.April, 30},
		{"February leap", 2024, time.February, 29},
		{"February common", 2023, time.February, 28},
		{"February century", 1900, time.February, 28},
		{"February 400", 2000, time.February, 29},
		{"December", 2025, time.December, 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysInMonth(tt.year, tt.month); got != tt.want {
				t.Errorf("DaysInMonth(%d, %v) = %d, want %d", tt.year, tt.month, got, tt.want)
			}
		})
	}
}

func TestIsLeapYear(t *testing.T) {
	tests := []struct {
		year int
		want bool
	}{
		{2024, true},
		{2023, false},
		{1900, false},
		{2000, true},
	}

	for _, tt := range tests {
		if got := IsLeapYear(tt.year); got != tt.want {
			t.Errorf("IsLeapYear(%d) = %v, want %v", tt.year, got, tt.want)
		}
		if got := DaysInMonth(tt.year, time.February) == 29; got != tt.want {
			t.Errorf("DaysInMonth(%d, February) disagrees with IsLeapYear", tt.year)
		}
	}
}

func TestIsSameDay(t *testing.T) {
	tests := []struct {
		name  string
		date1 time.Time
		date2 time.Time
		want  bool
	}{
		{
			"Same date different time",
			time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC),
			time.Date(2025, 1, 15, 20, 0, 0, 0, time.UTC),
			true,
		},
		{
			"Different date",
			time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC),
			time.Date(2025, 1, 16, 10, 0, 0, 0, time.UTC),
			false,
		},
		{
			"Same day number different month",
			time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC),
			time.Date(2025, 2, 15, 10, 0, 0, 0, time.UTC),
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsSameDay(tt.date1, tt.date2)

			if result != tt.want {
				t.Errorf("IsSameDay(%v, %v) = %v, want %v",
					tt.date1, tt.date2, result, tt.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	if err := Validate(time.Time{}); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("Validate(zero) error = %v, want ErrInvalidDate", err)
	}
	if err := Validate(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)); err != nil {
		t.Errorf("Validate(2026-01-01) error = %v, want nil", err)
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"ISO format YYYY-MM-DD", "2025-01-15", "2025-01-15", false},
		{"Dotted format DD.MM.YYYY", "15.01.2025", "2025-01-15", false},
		{"ISO with time", "2025-01-15T10:30:00", "2025-01-15", false},
		{"Garbage", "not-a-date", "", true},
		{"Impossible day", "2023-02-29", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseDate(tt.input)

			if (err != nil) != tt.wantErr {
				t.Errorf("ParseDate(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				return
			}
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidDate) {
					t.Errorf("ParseDate(%v) error = %v, want ErrInvalidDate", tt.input, err)
				}
				return
			}
			if got := ISODate(result); got != tt.want {
				t.Errorf("ParseDate(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
