// Package ring lays out the circular month face: one notched wedge per
// month with its arc path and a tangential label placement.
package ring

import (
	"math"

	"github.com/Rillus/Calendar-sub001/internal/calendar"
	"github.com/Rillus/Calendar-sub001/pkg/anglemath"
	"github.com/Rillus/Calendar-sub001/pkg/arcpath"
)

const (
	// DefaultRotationDegrees anchors the start of segment 0
	DefaultRotationDegrees = 45
	// labelInset pulls labels slightly inside the outer edge
	labelInset = 0.95
)

// RadiusPolicy picks the outer radius ratio from a segment's day count.
// Only a count equal to FullThresholdDays gets the full radius.
type RadiusPolicy struct {
	FullThresholdDays int
	FullRadius        float64
	NotchedRadius     float64
}

// DefaultRadiusPolicy returns the 31-day threshold policy
func DefaultRadiusPolicy() RadiusPolicy {
	return RadiusPolicy{
		FullThresholdDays: 31,
		FullRadius:        1.0,
		NotchedRadius:     0.95,
	}
}

// Ratio returns the outer radius ratio for a segment of days units
func (p RadiusPolicy) Ratio(days int) float64 {
	if days == p.FullThresholdDays {
		return p.FullRadius
	}
	return p.NotchedRadius
}

// Geometry is the drawing frame shared by every segment of one layout
type Geometry struct {
	CenterX         float64
	CenterY         float64
	Radius          float64
	InnerRadius     float64
	RotationDegrees float64
	LargeArcMode    arcpath.LargeArcMode
}

// DefaultGeometry returns a 400x400 frame centered on (200, 200)
func DefaultGeometry() Geometry {
	return Geometry{
		CenterX:         200,
		CenterY:         200,
		Radius:          200,
		RotationDegrees: DefaultRotationDegrees,
		LargeArcMode:    arcpath.LargeArcLegacy,
	}
}

// SegmentInput is the source configuration of one wedge
type SegmentInput struct {
	Label            string
	Colour           RGB
	SizeDegrees      float64
	OuterRadiusRatio float64
	Days             int
}

// Segment is one laid-out wedge ready for a renderer. Angles are radians.
type Segment struct {
	Index                int             `json:"index" yaml:"index"`
	Label                string          `json:"label" yaml:"label"`
	Colour               RGB             `json:"colour" yaml:"colour"`
	SizeDegrees          float64         `json:"size_degrees" yaml:"size_degrees"`
	Days                 int             `json:"days,omitempty" yaml:"days,omitempty"`
	StartAngle           float64         `json:"start_angle" yaml:"start_angle"`
	EndAngle             float64         `json:"end_angle" yaml:"end_angle"`
	OuterRadiusRatio     float64         `json:"outer_radius_ratio" yaml:"outer_radius_ratio"`
	Path                 arcpath.Path    `json:"path" yaml:"path"`
	LabelAngle           float64         `json:"label_angle" yaml:"label_angle"`
	LabelPosition        anglemath.Point `json:"label_position" yaml:"label_position"`
	LabelRotationDegrees float64         `json:"label_rotation_degrees" yaml:"label_rotation_degrees"`
}

// Layout computes every segment in input order. Sizes are expected to sum to
// 360 for a closed ring; that is not checked. Each call returns a new slice.
func Layout(inputs []SegmentInput, g Geometry) []Segment {
	sizes := make([]float64, len(inputs))
	for i, in := range inputs {
		sizes[i] = in.SizeDegrees
	}

	rotation := anglemath.DegreesToRadians(g.RotationDegrees)
	segments := make([]Segment, 0, len(inputs))
	for i, in := range inputs {
		start := -anglemath.DegreesToRadians(anglemath.CumulativeSize(sizes, i)) + rotation
		end := start + anglemath.DegreesToRadians(in.SizeDegrees)

		labelAngle := anglemath.Midpoint(start, end)
		labelRadius := g.Radius * in.OuterRadiusRatio * labelInset

		segments = append(segments, Segment{
			Index:            i,
			Label:            in.Label,
			Colour:           in.Colour,
			SizeDegrees:      in.SizeDegrees,
			Days:             in.Days,
			StartAngle:       start,
			EndAngle:         end,
			OuterRadiusRatio: in.OuterRadiusRatio,
			Path: arcpath.Wedge(arcpath.WedgeSpec{
				CenterX:          g.CenterX,
				CenterY:          g.CenterY,
				Radius:           g.Radius,
				StartAngle:       start,
				EndAngle:         end,
				OuterRadiusRatio: in.OuterRadiusRatio,
				InnerRadius:      g.InnerRadius,
				Mode:             g.LargeArcMode,
			}),
			LabelAngle:           labelAngle,
			LabelPosition:        anglemath.PolarToCartesian(g.CenterX, g.CenterY, labelRadius, labelAngle),
			LabelRotationDegrees: LabelRotation(labelAngle),
		})
	}
	return segments
}

// LabelRotation returns the text rotation in degrees for a label at angle
// (radians). Labels on the left half are turned a further 180° to stay upright.
// The flip test uses angle normalized into [0, 2π), so negative and wrapped
// angles flip the same way as their normalized equivalents.
func LabelRotation(angle float64) float64 {
	rotation := anglemath.RadiansToDegrees(angle) + 90
	if a := anglemath.Normalize(angle); a > math.Pi/2 && a < 3*math.Pi/2 {
		rotation += 180
	}
	return rotation
}

// EqualSizes divides the full circle into n equal sizes
func EqualSizes(n int) []float64 {
	if n <= 0 {
		return nil
	}
	sizes := make([]float64, n)
	for i := range sizes {
		sizes[i] = 360 / float64(n)
	}
	return sizes
}

// MonthInputs turns calendar months into equal-sized segment inputs. Months
// without a colour in colours take the default palette entry.
func MonthInputs(months []calendar.MonthInfo, colours []RGB, policy RadiusPolicy) []SegmentInput {
	sizes := EqualSizes(len(months))
	inputs := make([]SegmentInput, len(months))
	for i, m := range months {
		colour := DefaultPalette[i%len(DefaultPalette)]
		if i < len(colours) {
			colour = colours[i]
		}
		inputs[i] = SegmentInput{
			Label:            m.ShortLabel,
			Colour:           colour,
			SizeDegrees:      sizes[i],
			OuterRadiusRatio: policy.Ratio(m.Days),
			Days:             m.Days,
		}
	}
	return inputs
}
