package geometry

import "math"

// AngleFromTo returns the direction from a to b in degrees, in the usual
// mathematical orientation: y is negated because screen y grows downward.
// The result lies in [-180, 180].
func AngleFromTo(a, b Point) float64 {
	return math.Atan2(-(b.Y-a.Y), b.X-a.X) * 180 / math.Pi
}

// RoundToMultiple rounds |v| to the nearest multiple of |mult| and restores
// the sign. Halfway cases go to the larger magnitude. A zero mult returns v.
func RoundToMultiple(v, mult float64) float64 {
	mult = math.Abs(mult)
	if mult == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	base := math.Abs(v)
	mod := math.Mod(base, mult)
	if mod < mult/2 {
		base -= mod
	} else {
		base += mult - mod
	}
	if v < 0 {
		return -base
	}
	return base
}

// RoundToGrid snaps a coordinate to the nearest multiple of grid.
func RoundToGrid(v, grid float64) float64 {
	return RoundToMultiple(v, grid)
}

// Snap rounds an angle to a multiple of step degrees. -180 is reported as
// 180 and negative zero as zero, so that a full turn has one spelling.
func Snap(angle, step float64) float64 {
	s := RoundToMultiple(angle, step)
	if s == -180 {
		s = 180
	}
	if s == 0 {
		s = 0
	}
	return s
}

// IsHorizontalOrVertical reports whether angle is within tolerance degrees
// of a multiple of 90.
func IsHorizontalOrVertical(angle, tolerance float64) bool {
	a := math.Mod(math.Abs(angle), 90)
	return a < tolerance || a > 90-tolerance
}
