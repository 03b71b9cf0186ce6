package calendar

import (
	"fmt"
	"time"

	"github.com/Rillus/Calendar-sub001/internal/locale"
	"github.com/Rillus/Calendar-sub001/pkg/dateutil"
)

// MonthsPerYear is the fixed ring size
const MonthsPerYear = 12

// MonthInfo represents calendar information for a month
type MonthInfo struct {
	Index      int        `json:"index" yaml:"index"` // 0 = January
	Year       int        `json:"year" yaml:"year"`
	Month      time.Month `json:"month" yaml:"month"`
	Days       int        `json:"days" yaml:"days"`
	Label      string     `json:"label" yaml:"label"`
	ShortLabel string     `json:"short_label" yaml:"short_label"`
}

// YearMonths returns the twelve months of year with localized labels
func YearMonths(year int, loc locale.Resolved) ([]MonthInfo, error) {
	months := make([]MonthInfo, 0, MonthsPerYear)
	for i := 0; i < MonthsPerYear; i++ {
		info, err := Month(year, i, loc)
		if err != nil {
			return nil, err
		}
		months = append(months, info)
	}
	return months, nil
}

// Month returns calendar info for the month at index (0 = January) of year
func Month(year, index int, loc locale.Resolved) (MonthInfo, error) {
	label, err := loc.MonthName(index)
	if err != nil {
		return MonthInfo{}, fmt.Errorf("failed to resolve month label: %w", err)
	}
	short, err := loc.ShortMonthName(index)
	if err != nil {
		return MonthInfo{}, fmt.Errorf("failed to resolve short month label: %w", err)
	}

	month := time.Month(index + 1)
	return MonthInfo{
		Index:      index,
		Year:       year,
		Month:      month,
		Days:       dateutil.DaysInMonth(year, month),
		Label:      label,
		ShortLabel: short,
	}, nil
}

// TotalDays sums the day counts of months
func TotalDays(months []MonthInfo) int {
	total := 0
	for _, m := range months {
		total += m.Days
	}
	return total
}
