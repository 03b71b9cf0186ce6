package arcpath

import (
	"fmt"
	"math"
	"strings"

	"github.com/Rillus/Calendar-sub001/pkg/anglemath"
)

// LargeArcMode selects how the large-arc flag is derived from the angular span
type LargeArcMode int

const (
	// LargeArcLegacy compares the span in radians against 180, so the flag
	// stays 0 for every span up to a full turn.
	LargeArcLegacy LargeArcMode = iota
	// LargeArcRadians sets the flag when the span exceeds π.
	LargeArcRadians
)

// legacyLargeArcThreshold is compared against a radian span in LargeArcLegacy mode
const legacyLargeArcThreshold = 180

// String returns the config name of the mode
func (m LargeArcMode) String() string {
	switch m {
	case LargeArcLegacy:
		return "legacy"
	case LargeArcRadians:
		return "radians"
	default:
		return fmt.Sprintf("LargeArcMode(%d)", int(m))
	}
}

// ParseLargeArcMode maps a config name to a mode. Empty selects legacy.
func ParseLargeArcMode(s string) (LargeArcMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "legacy":
		return LargeArcLegacy, nil
	case "radians":
		return LargeArcRadians, nil
	default:
		return LargeArcLegacy, fmt.Errorf("unknown large arc mode %q (want legacy or radians)", s)
	}
}

// LargeArc reports whether an arc spanning the given radians takes the long way round
func LargeArc(span float64, mode LargeArcMode) bool {
	if mode == LargeArcRadians {
		return span > math.Pi
	}
	return span > legacyLargeArcThreshold
}

// WedgeSpec describes one wedge. Angles are radians. A zero InnerRadius
// yields a filled wedge from the center, a positive one an annular wedge.
type WedgeSpec struct {
	CenterX          float64
	CenterY          float64
	Radius           float64
	StartAngle       float64
	EndAngle         float64
	OuterRadiusRatio float64
	InnerRadius      float64
	Mode             LargeArcMode
}

// Wedge builds the path for spec. The outer arc runs from the point at
// EndAngle back to the point at StartAngle.
func Wedge(spec WedgeSpec) Path {
	outerRadius := spec.Radius * spec.OuterRadiusRatio
	from := anglemath.PolarToCartesian(spec.CenterX, spec.CenterY, outerRadius, spec.EndAngle)
	to := anglemath.PolarToCartesian(spec.CenterX, spec.CenterY, outerRadius, spec.StartAngle)
	large := LargeArc(spec.EndAngle-spec.StartAngle, spec.Mode)

	if spec.InnerRadius <= 0 {
		return BuildPath().
			MoveTo(anglemath.Point{X: spec.CenterX, Y: spec.CenterY}).
			LineTo(from).
			ArcTo(outerRadius, large, false, to).
			Close().
			Build()
	}

	innerStart := anglemath.PolarToCartesian(spec.CenterX, spec.CenterY, spec.InnerRadius, spec.StartAngle)
	innerEnd := anglemath.PolarToCartesian(spec.CenterX, spec.CenterY, spec.InnerRadius, spec.EndAngle)

	return BuildPath().
		MoveTo(from).
		ArcTo(outerRadius, large, false, to).
		LineTo(innerStart).
		ArcTo(spec.InnerRadius, large, true, innerEnd).
		Close().
		Build()
}
