// Package locale resolves a requested locale identifier to one of the
// built-in name tables and formats month and weekday names from it.
package locale

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Rillus/Calendar-sub001/pkg/dateutil"
	"golang.org/x/text/language"
)

var (
	// ErrMonthOutOfRange is returned for a month index outside [0,11]
	ErrMonthOutOfRange = errors.New("month index out of range")
	// ErrWeekdayOutOfRange is returned for a weekday index outside [0,6]
	ErrWeekdayOutOfRange = errors.New("weekday index out of range")
)

// DefaultLocale is used when the requested locale cannot be resolved
const DefaultLocale = "en-GB"

type names struct {
	months      [12]string
	shortMonths [12]string
	// weekdays are ordered Sunday first, matching time.Weekday
	weekdays      [7]string
	shortWeekdays [7]string
	monthYear     string
}

// supported is ordered as the matcher tags; the first entry is the fallback
var supported = []struct {
	tag   language.Tag
	names names
}{
	{language.BritishEnglish, names{
		months:        [12]string{"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"},
		shortMonths:   [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
		weekdays:      [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
		shortWeekdays: [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
		monthYear:     "%s %d",
	}},
	{language.AmericanEnglish, names{
		months:        [12]string{"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"},
		shortMonths:   [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
		weekdays:      [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
		shortWeekdays: [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
		monthYear:     "%s %d",
	}},
	{language.German, names{
		months:        [12]string{"Januar", "Februar", "März", "April", "Mai", "Juni", "Juli", "August", "September", "Oktober", "November", "Dezember"},
		shortMonths:   [12]string{"Jan", "Feb", "Mär", "Apr", "Mai", "Jun", "Jul", "Aug", "Sep", "Okt", "Nov", "Dez"},
		weekdays:      [7]string{"Sonntag", "Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag"},
		shortWeekdays: [7]string{"So", "Mo", "Di", "Mi", "Do", "Fr", "Sa"},
		monthYear:     "%s %d",
	}},
	{language.French, names{
		months:        [12]string{"janvier", "février", "mars", "avril", "mai", "juin", "juillet", "août", "septembre", "octobre", "novembre", "décembre"},
		shortMonths:   [12]string{"janv.", "févr.", "mars", "avr.", "mai", "juin", "juil.", "août", "sept.", "oct.", "nov.", "déc."},
		weekdays:      [7]string{"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi"},
		shortWeekdays: [7]string{"dim.", "lun.", "mar.", "mer.", "jeu.", "ven.", "sam."},
		monthYear:     "%s %d",
	}},
	{language.Spanish, names{
		months:        [12]string{"enero", "febrero", "marzo", "abril", "mayo", "junio", "julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"},
		shortMonths:   [12]string{"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sept", "oct", "nov", "dic"},
		weekdays:      [7]string{"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"},
		shortWeekdays: [7]string{"dom", "lun", "mar", "mié", "jue", "vie", "sáb"},
		monthYear:     "%s de %d",
	}},
	{language.Russian, names{
		months:        [12]string{"Январь", "Февраль", "Март", "Апрель", "Май", "Июнь", "Июль", "Август", "Сентябрь", "Октябрь", "Ноябрь", "Декабрь"},
		shortMonths:   [12]string{"янв", "фев", "мар", "апр", "май", "июн", "июл", "авг", "сен", "окт", "ноя", "дек"},
		weekdays:      [7]string{"воскресенье", "понедельник", "вторник", "среда", "четверг", "пятница", "суббота"},
		shortWeekdays: [7]string{"Вс", "Пн", "Вт", "Ср", "Чт", "Пт", "Сб"},
		monthYear:     "%s %d",
	}},
}

var matcher = language.NewMatcher(supportedTags())

func supportedTags() []language.Tag {
	tags := make([]language.Tag, len(supported))
	for i, s := range supported {
		tags[i] = s.tag
	}
	return tags
}

// Resolved is the outcome of locale resolution. Fallback is set when the
// requested identifier was unparseable or matched none of the tables.
type Resolved struct {
	Requested string
	Tag       language.Tag
	Fallback  bool
	Reason    string
	names     *names
}

// Resolve parses the requested identifier and matches it against the
// supported tables. It never fails: unresolvable input yields the default
// table with Fallback set.
func Resolve(requested string) Resolved {
	if strings.TrimSpace(requested) == "" {
		r := Resolve(DefaultLocale)
		r.Requested = requested
		return r
	}

	tag, err := language.Parse(requested)
	if err != nil {
		return fallback(requested, fmt.Sprintf("failed to parse locale: %v", err))
	}

	_, index, confidence := matcher.Match(tag)
	if confidence == language.No {
		return fallback(requested, fmt.Sprintf("no table for locale %s", tag))
	}

	return Resolved{
		Requested: requested,
		Tag:       supported[index].tag,
		names:     &supported[index].names,
	}
}

func fallback(requested, reason string) Resolved {
	return Resolved{
		Requested: requested,
		Tag:       supported[0].tag,
		Fallback:  true,
		Reason:    reason,
		names:     &supported[0].names,
	}
}

func (r Resolved) table() *names {
	if r.names == nil {
		return &supported[0].names
	}
	return r.names
}

// String returns the BCP 47 form of the resolved tag
func (r Resolved) String() string {
	return r.Tag.String()
}

// MonthName returns the full name of the month at index (0 = January)
func (r Resolved) MonthName(index int) (string, error) {
	if index < 0 || index > 11 {
		return "", fmt.Errorf("%w: %d", ErrMonthOutOfRange, index)
	}
	return r.table().months[index], nil
}

// ShortMonthName returns the abbreviated name of the month at index (0 = January)
func (r Resolved) ShortMonthName(index int) (string, error) {
	if index < 0 || index > 11 {
		return "", fmt.Errorf("%w: %d", ErrMonthOutOfRange, index)
	}
	return r.table().shortMonths[index], nil
}

// WeekdayName returns the full name of the weekday at index (0 = Sunday)
func (r Resolved) WeekdayName(index int) (string, error) {
	if index < 0 || index > 6 {
		return "", fmt.Errorf("%w: %d", ErrWeekdayOutOfRange, index)
	}
	return r.table().weekdays[index], nil
}

// ShortWeekdayName returns the abbreviated name of the weekday at index (0 = Sunday)
func (r Resolved) ShortWeekdayName(index int) (string, error) {
	if index < 0 || index > 6 {
		return "", fmt.Errorf("%w: %d", ErrWeekdayOutOfRange, index)
	}
	return r.table().shortWeekdays[index], nil
}

// WeekdayLabels returns the seven short weekday names starting at weekStartsOn
func (r Resolved) WeekdayLabels(weekStartsOn int) ([]string, error) {
	if weekStartsOn < 0 || weekStartsOn > 6 {
		return nil, fmt.Errorf("%w: week start %d", ErrWeekdayOutOfRange, weekStartsOn)
	}
	labels := make([]string, 7)
	for i := range labels {
		labels[i] = r.table().shortWeekdays[(weekStartsOn+i)%7]
	}
	return labels, nil
}

// MonthYear formats date as the localized "Month Year" heading
func (r Resolved) MonthYear(date time.Time) (string, error) {
	if err := dateutil.Validate(date); err != nil {
		return "", err
	}
	month, err := r.MonthName(int(date.Month()) - 1)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(r.table().monthYear, month, date.Year()), nil
}
