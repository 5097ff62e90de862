// Package intmath holds the integer-only helpers used by the shows: a
// rational sine approximation and saturating parameter adjustment.
package intmath

// Sin returns multiplier*sin(deg) using Bhaskara I's approximation.
// deg is in whole degrees and may be any value; it is folded into [0,180]
// through the odd symmetry of sine.
func Sin(deg, multiplier int) int {
	deg %= 360
	if deg < 0 {
		return -Sin(-deg, multiplier)
	}
	if deg > 180 {
		return -Sin(360-deg, multiplier)
	}
	p := deg * (180 - deg)
	return multiplier * 4 * p / (40500 - p)
}

// Cos returns multiplier*cos(deg).
func Cos(deg, multiplier int) int {
	return Sin(90-deg%360, multiplier)
}
