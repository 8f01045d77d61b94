package chart

import "math"

// Scale maps the 90s-played count to a bubble diameter in pixels.
type Scale struct {
	MaxDiameter float64
	MinDiameter float64
}

// DefaultScale gives the largest player a 40px bubble and nobody less than 6px.
func DefaultScale() Scale {
	return Scale{MaxDiameter: 40, MinDiameter: 6}
}

// legendFloor is the minimum diameter of the size legend bubbles.
const legendFloor = 5

// Diameter scales v linearly against peak so that v == peak maps to
// s.MaxDiameter, then clamps to [s.MinDiameter, s.MaxDiameter]. A zero or
// non-finite peak puts every point at the floor.
func Diameter(v, peak float64, s Scale) float64 {
	if peak <= 0 || math.IsNaN(peak) || math.IsInf(peak, 0) || math.IsNaN(v) {
		return s.MinDiameter
	}
	d := v / peak * s.MaxDiameter
	if d < s.MinDiameter {
		return s.MinDiameter
	}
	if d > s.MaxDiameter {
		return s.MaxDiameter
	}
	return d
}

// LegendLevels picks three distinct, ascending, whole-number sizes to explain
// the bubble scale: a quarter, a half and all of peak.
func LegendLevels(peak float64) []float64 {
	if peak <= 0 || math.IsNaN(peak) || math.IsInf(peak, 0) {
		return []float64{1, 2, 3}
	}
	levels := []float64{math.Round(peak / 4), math.Round(peak / 2), math.Round(peak)}
	prev := 0.0
	for i, l := range levels {
		if l <= prev {
			l = prev + 1
		}
		levels[i] = l
		prev = l
	}
	return levels
}
