package face

import (
	"fmt"
	"time"

	"github.com/Rillus/Calendar-sub001/internal/calendar"
	"github.com/Rillus/Calendar-sub001/internal/config"
	"github.com/Rillus/Calendar-sub001/internal/locale"
	"github.com/Rillus/Calendar-sub001/internal/monthgrid"
	"github.com/Rillus/Calendar-sub001/internal/ring"
	"go.uber.org/zap"
)

// Face builds the ring and month views from one configuration
type Face struct {
	config *config.Config
	locale locale.Resolved
	logger *zap.Logger
}

// NewFace creates a new face for cfg
func NewFace(cfg *config.Config, logger *zap.Logger) *Face {
	resolved := locale.Resolve(cfg.Month.Locale)
	if resolved.Fallback {
		logger.Warn("Locale not supported, falling back",
			zap.String("requested", resolved.Requested),
			zap.String("locale", resolved.String()),
			zap.String("reason", resolved.Reason))
	}

	return &Face{
		config: cfg,
		locale: resolved,
		logger: logger,
	}
}

// Locale returns the resolved locale
func (f *Face) Locale() locale.Resolved {
	return f.locale
}

// Ring lays out the ring for year. Explicit months in the config take
// precedence over the calendar months of year.
func (f *Face) Ring(year int) ([]ring.Segment, error) {
	inputs, err := f.ringInputs(year)
	if err != nil {
		return nil, err
	}

	segments := ring.Layout(inputs, f.config.Ring.GetGeometry())

	f.logger.Debug("Ring laid out",
		zap.Int("year", year),
		zap.Int("segments", len(segments)),
		zap.String("large_arc_mode", f.config.Ring.GetLargeArcMode().String()))

	return segments, nil
}

func (f *Face) ringInputs(year int) ([]ring.SegmentInput, error) {
	rc := f.config.Ring
	policy := rc.GetRadiusPolicy()

	if len(rc.Months) == 0 {
		months, err := calendar.YearMonths(year, f.locale)
		if err != nil {
			return nil, fmt.Errorf("failed to build months: %w", err)
		}
		return ring.MonthInputs(months, rc.GetColours(), policy), nil
	}

	sizes := ring.EqualSizes(len(rc.Months))
	inputs := make([]ring.SegmentInput, len(rc.Months))
	for i, m := range rc.Months {
		colour := ring.DefaultPalette[i%len(ring.DefaultPalette)]
		if m.Colour != nil {
			c, err := ring.RGBFromInts(m.Colour)
			if err != nil {
				return nil, fmt.Errorf("invalid colour for month %q: %w", m.Label, err)
			}
			colour = c
		}
		inputs[i] = ring.SegmentInput{
			Label:            m.Label,
			Colour:           colour,
			SizeDegrees:      sizes[i],
			OuterRadiusRatio: policy.Ratio(m.Days),
			Days:             m.Days,
		}
	}
	return inputs, nil
}

// Month builds the month view for the month containing selected
func (f *Face) Month(selected time.Time) (*monthgrid.MonthViewModel, error) {
	model, err := monthgrid.Build(selected, monthgrid.Options{
		WeekStartsOn: f.config.Month.WeekStartsOn,
		Today:        f.config.Month.GetToday(),
		Locale:       f.locale,
	})
	if err != nil {
		return nil, err
	}

	f.logger.Debug("Month view built",
		zap.Time("selected", selected),
		zap.String("month", model.MonthLabel),
		zap.Int("week_starts_on", f.config.Month.WeekStartsOn))

	return model, nil
}
