// Package anglemath holds the angle and polar primitives shared by the ring geometry.
package anglemath

import "math"

// Point is a Cartesian coordinate in drawing space (y grows downwards)
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// DegreesToRadians converts degrees to radians
func DegreesToRadians(d float64) float64 {
	return d * math.Pi / 180
}

// RadiansToDegrees converts radians to degrees
func RadiansToDegrees(r float64) float64 {
	return r * 180 / math.Pi
}

// CumulativeSize returns the sum of sizes[0..i-1], the offset at which element i begins.
// Indices past the end sum the whole slice; negative indices sum nothing.
func CumulativeSize(sizes []float64, i int) float64 {
	if i > len(sizes) {
		i = len(sizes)
	}
	total := 0.0
	for j := 0; j < i; j++ {
		total += sizes[j]
	}
	return total
}

// PolarToCartesian projects (radius, angle) around the center. No normalization of the angle is applied.
func PolarToCartesian(centerX, centerY, radius, angle float64) Point {
	return Point{
		X: centerX + radius*math.Cos(angle),
		Y: centerY + radius*math.Sin(angle),
	}
}

// Midpoint returns the angle halfway between start and end
func Midpoint(start, end float64) float64 {
	return (start + end) / 2
}

// Normalize wraps an angle in radians into [0, 2π)
func Normalize(angle float64) float64 {
	a := math.Mod(angle, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}
