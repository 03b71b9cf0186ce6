// Package monthgrid builds the 6x7 day-cell model of a calendar month page.
package monthgrid

import (
	"fmt"
	"time"

	"github.com/Rillus/Calendar-sub001/internal/locale"
	"github.com/Rillus/Calendar-sub001/pkg/dateutil"
)

const (
	// WeeksPerGrid is the fixed number of rows
	WeeksPerGrid = 6
	// DaysPerWeek is the fixed number of columns
	DaysPerWeek = 7
	// CellsPerGrid is the total cell count of every grid
	CellsPerGrid = WeeksPerGrid * DaysPerWeek

	// DefaultWeekStartsOn is Monday
	DefaultWeekStartsOn = int(time.Monday)
)

// DayCell is one day of the grid. Date is the civil day at midnight UTC.
type DayCell struct {
	Date       time.Time `json:"-" yaml:"-"`
	ISODate    string    `json:"iso_date" yaml:"iso_date"`
	DayNumber  int       `json:"day_number" yaml:"day_number"`
	InMonth    bool      `json:"in_month" yaml:"in_month"`
	IsToday    bool      `json:"is_today" yaml:"is_today"`
	IsSelected bool      `json:"is_selected" yaml:"is_selected"`
}

// Week is one row of seven cells
type Week [DaysPerWeek]DayCell

// MonthViewModel is the model of one month page
type MonthViewModel struct {
	MonthLabel    string    `json:"month_label" yaml:"month_label"`
	WeekdayLabels []string  `json:"weekday_labels" yaml:"weekday_labels"`
	Weeks         []Week    `json:"weeks" yaml:"weeks"`
	Locale        string    `json:"locale" yaml:"locale"`
	Month         time.Time `json:"-" yaml:"-"` // first of the target month
	Prev          string    `json:"prev" yaml:"prev"`
	Next          string    `json:"next" yaml:"next"`
}

// Options controls grid construction
type Options struct {
	// WeekStartsOn is 0 (Sunday) through 6 (Saturday)
	WeekStartsOn int
	// Today is the reference for IsToday. Zero means the current day.
	Today time.Time
	// Locale supplies month and weekday names
	Locale locale.Resolved
}

// DefaultOptions returns Monday-first options in the default locale
func DefaultOptions() Options {
	return Options{
		WeekStartsOn: DefaultWeekStartsOn,
		Locale:       locale.Resolve(locale.DefaultLocale),
	}
}

// Cells returns the grid cells in row-major order
func (m *MonthViewModel) Cells() []DayCell {
	cells := make([]DayCell, 0, CellsPerGrid)
	for _, w := range m.Weeks {
		cells = append(cells, w[:]...)
	}
	return cells
}

// Build returns the grid for the month containing selected
func Build(selected time.Time, opts Options) (*MonthViewModel, error) {
	if err := dateutil.Validate(selected); err != nil {
		return nil, fmt.Errorf("failed to build month grid: %w", err)
	}
	if opts.WeekStartsOn < 0 || opts.WeekStartsOn > 6 {
		return nil, fmt.Errorf("failed to build month grid: %w: week start %d",
			locale.ErrWeekdayOutOfRange, opts.WeekStartsOn)
	}

	selected = dateutil.StartOfDay(selected)
	today := opts.Today
	if today.IsZero() {
		today = dateutil.Today()
	}
	today = dateutil.StartOfDay(today)

	firstOfMonth := dateutil.FirstOfMonth(selected)
	offset := (int(firstOfMonth.Weekday()) - opts.WeekStartsOn + DaysPerWeek) % DaysPerWeek
	gridStart := dateutil.AddDays(firstOfMonth, -offset)

	weeks := make([]Week, WeeksPerGrid)
	for i := 0; i < CellsPerGrid; i++ {
		date := dateutil.AddDays(gridStart, i)
		weeks[i/DaysPerWeek][i%DaysPerWeek] = DayCell{
			Date:       date,
			ISODate:    dateutil.ISODate(date),
			DayNumber:  date.Day(),
			InMonth:    dateutil.IsSameMonth(date, firstOfMonth),
			IsToday:    dateutil.IsSameDay(date, today),
			IsSelected: dateutil.IsSameDay(date, selected),
		}
	}

	monthLabel, err := opts.Locale.MonthYear(firstOfMonth)
	if err != nil {
		return nil, fmt.Errorf("failed to format month label: %w", err)
	}
	weekdayLabels, err := opts.Locale.WeekdayLabels(opts.WeekStartsOn)
	if err != nil {
		return nil, fmt.Errorf("failed to build weekday labels: %w", err)
	}

	return &MonthViewModel{
		MonthLabel:    monthLabel,
		WeekdayLabels: weekdayLabels,
		Weeks:         weeks,
		Locale:        opts.Locale.String(),
		Month:         firstOfMonth,
		Prev:          dateutil.ISODate(dateutil.AddMonths(firstOfMonth, -1)),
		Next:          dateutil.ISODate(dateutil.AddMonths(firstOfMonth, 1)),
	}, nil
}
