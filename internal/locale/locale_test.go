package locale

import (
	"errors"
	"testing"
	"time"

	"golang.org/x/text/language"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name         string
		requested    string
		wantBase     string
		wantFallback bool
	}{
		{"Exact British English", "en-GB", "en", false},
		{"Regional German", "de-AT", "de", false},
		{"Canadian French", "fr-CA", "fr", false},
		{"Russian", "ru", "ru", false},
		{"Spanish", "es-MX", "es", false},
		{"Empty uses default", "", "en", false},
		{"Unsupported language", "ja-JP", "en", true},
		{"Malformed identifier", "!!not a locale", "en", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Resolve(tt.requested)

			base, _ := r.Tag.Base()
			if base.String() != tt.wantBase {
				t.Errorf("Resolve(%q).Tag = %v, want base %s", tt.requested, r.Tag, tt.wantBase)
			}
			if r.Fallback != tt.wantFallback {
				t.Errorf("Resolve(%q).Fallback = %v, want %v (reason %q)",
					tt.requested, r.Fallback, tt.wantFallback, r.Reason)
			}
			if r.Fallback && r.Reason == "" {
				t.Errorf("Resolve(%q) fell back without a reason", tt.requested)
			}
			if r.Requested != tt.requested {
				t.Errorf("Resolve(%q).Requested = %q", tt.requested, r.Requested)
			}
		})
	}
}

func TestResolve_FallbackIsDefault(t *testing.T) {
	r := Resolve("zz-ZZ-invalid-tag-!!")
	if r.Tag != language.BritishEnglish {
		t.Errorf("fallback tag = %v, want %v", r.Tag, language.BritishEnglish)
	}
}

func TestMonthName(t *testing.T) {
	en := Resolve("en-GB")
	de := Resolve("de")

	tests := []struct {
		name    string
		r       Resolved
		index   int
		want    string
		wantErr bool
	}{
		{"January", en, 0, "January", false},
		{"December", en, 11, "December", false},
		{"German March", de, 2, "März", false},
		{"Negative index", en, -1, "", true},
		{"Index twelve", en, 12, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.r.MonthName(tt.index)
			if (err != nil) != tt.wantErr {
				t.Fatalf("MonthName(%d) error = %v, wantErr %v", tt.index, err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, ErrMonthOutOfRange) {
				t.Errorf("MonthName(%d) error = %v, want ErrMonthOutOfRange", tt.index, err)
			}
			if got != tt.want {
				t.Errorf("MonthName(%d) = %q, want %q", tt.index, got, tt.want)
			}
		})
	}

	if _, err := en.ShortMonthName(12); !errors.Is(err, ErrMonthOutOfRange) {
		t.Errorf("ShortMonthName(12) error = %v, want ErrMonthOutOfRange", err)
	}
	if got, _ := en.ShortMonthName(8); got != "Sep" {
		t.Errorf("ShortMonthName(8) = %q, want Sep", got)
	}
}

func TestWeekdayName(t *testing.T) {
	en := Resolve("en-GB")

	for _, idx := range []int{-1, 7, 100} {
		if _, err := en.WeekdayName(idx); !errors.Is(err, ErrWeekdayOutOfRange) {
			t.Errorf("WeekdayName(%d) error = %v, want ErrWeekdayOutOfRange", idx, err)
		}
		if _, err := en.ShortWeekdayName(idx); !errors.Is(err, ErrWeekdayOutOfRange) {
			t.Errorf("ShortWeekdayName(%d) error = %v, want ErrWeekdayOutOfRange", idx, err)
		}
	}

	if got, _ := en.WeekdayName(int(time.Sunday)); got != "Sunday" {
		t.Errorf("WeekdayName(Sunday) = %q, want Sunday", got)
	}
	if got, _ := en.ShortWeekdayName(int(time.Saturday)); got != "Sat" {
		t.Errorf("ShortWeekdayName(Saturday) = %q, want Sat", got)
	}
}

func TestWeekdayLabels(t *testing.T) {
	en := Resolve("en-GB")

	tests := []struct {
		name         string
		weekStartsOn int
		want         []string
	}{
		{"Monday start", 1, []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}},
		{"Sunday start", 0, []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}},
		{"Saturday start", 6, []string{"Sat", "Sun", "Mon", "Tue", "Wed", "Thu", "Fri"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := en.WeekdayLabels(tt.weekStartsOn)
			if err != nil {
				t.Fatalf("WeekdayLabels(%d) error = %v", tt.weekStartsOn, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("WeekdayLabels(%d) = %v, want %v", tt.weekStartsOn, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("WeekdayLabels(%d)[%d] = %q, want %q", tt.weekStartsOn, i, got[i], tt.want[i])
				}
			}
		})
	}

	if _, err := en.WeekdayLabels(7); !errors.Is(err, ErrWeekdayOutOfRange) {
		t.Errorf("WeekdayLabels(7) error = %v, want ErrWeekdayOutOfRange", err)
	}
}

func TestMonthYear(t *testing.T) {
	tests := []struct {
		locale string
		date   time.Time
		want   string
	}{
		{"en-GB", time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), "January 2026"},
		{"de-DE", time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), "März 2026"},
		{"es", time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC), "mayo de 2026"},
	}

	for _, tt := range tests {
		got, err := Resolve(tt.locale).MonthYear(tt.date)
		if err != nil {
			t.Errorf("MonthYear(%v) error = %v", tt.date, err)
			continue
		}
		if got != tt.want {
			t.Errorf("[%s] MonthYear(%v) = %q, want %q", tt.locale, tt.date, got, tt.want)
		}
	}

	if _, err := Resolve("en-GB").MonthYear(time.Time{}); err == nil {
		t.Error("MonthYear(zero) error = nil, want error")
	}
}

func TestZeroResolvedUsesDefaultTable(t *testing.T) {
	var r Resolved
	if got, err := r.MonthName(0); err != nil || got != "January" {
		t.Errorf("zero Resolved MonthName(0) = %q, %v", got, err)
	}
}
