// Package render turns ring segments and month view models into SVG
// documents and terminal text.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Rillus/Calendar-sub001/internal/monthgrid"
	"github.com/Rillus/Calendar-sub001/internal/ring"
	"github.com/Rillus/Calendar-sub001/pkg/anglemath"
	"github.com/charmbracelet/lipgloss"
)

const cellWidth = 4

// Styles are the terminal styles of the month grid
type Styles struct {
	Header   lipgloss.Style
	Weekday  lipgloss.Style
	Day      lipgloss.Style
	Outside  lipgloss.Style
	Today    lipgloss.Style
	Selected lipgloss.Style
}

// DefaultStyles returns the standard month grid styles
func DefaultStyles() Styles {
	cell := lipgloss.NewStyle().Width(cellWidth).Align(lipgloss.Right)
	return Styles{
		Header:   lipgloss.NewStyle().Bold(true).Width(cellWidth * monthgrid.DaysPerWeek).Align(lipgloss.Center),
		Weekday:  cell.Foreground(lipgloss.Color("244")),
		Day:      cell,
		Outside:  cell.Faint(true),
		Today:    cell.Underline(true).Foreground(lipgloss.Color("214")),
		Selected: cell.Reverse(true).Bold(true),
	}
}

// MonthGrid renders model as a calendar page
func MonthGrid(model *monthgrid.MonthViewModel, styles Styles) string {
	lines := []string{styles.Header.Render(model.MonthLabel)}

	headers := make([]string, len(model.WeekdayLabels))
	for i, label := range model.WeekdayLabels {
		headers[i] = styles.Weekday.Render(label)
	}
	lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, headers...))

	for _, week := range model.Weeks {
		cells := make([]string, len(week))
		for i, c := range week {
			cells[i] = cellStyle(c, styles).Render(strconv.Itoa(c.DayNumber))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func cellStyle(c monthgrid.DayCell, styles Styles) lipgloss.Style {
	switch {
	case c.IsSelected:
		return styles.Selected
	case c.IsToday:
		return styles.Today
	case !c.InMonth:
		return styles.Outside
	default:
		return styles.Day
	}
}

// SegmentTable renders one line per segment with a colour swatch
func SegmentTable(segments []ring.Segment) string {
	var sb strings.Builder
	for _, s := range segments {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(s.Colour.Hex())).Render("██")
		fmt.Fprintf(&sb, "%s %2d %-6s %3dd  ratio %.2f  %8.2f° .. %8.2f°  label %7.2f°\n",
			swatch,
			s.Index,
			s.Label,
			s.Days,
			s.OuterRadiusRatio,
			anglemath.RadiansToDegrees(s.StartAngle),
			anglemath.RadiansToDegrees(s.EndAngle),
			s.LabelRotationDegrees)
	}
	return sb.String()
}
