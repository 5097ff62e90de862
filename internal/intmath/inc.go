package intmath

import "math"

// Inc8 adds delta to *x without wrapping and clamps the result to [min, max].
func Inc8(x *int8, delta, min, max int8) {
	*x = clamp8(int(*x)+int(delta), min, max)
}

// Inc32 is Inc8 for int32 fields such as delays and angles.
func Inc32(x *int32, delta, min, max int32) {
	sum := int64(*x) + int64(delta)
	switch {
	case sum < int64(min):
		*x = min
	case sum > int64(max):
		*x = max
	default:
		*x = int32(sum)
	}
}

// Scale8 multiplies a knob click count by a per-click step, saturating at
// the int8 limits.
func Scale8(clicks, step int) int8 {
	return clamp8(saturatingMul(clicks, step), math.MinInt8, math.MaxInt8)
}

// Scale32 is Scale8 for int32 parameters.
func Scale32(clicks, step int) int32 {
	v := saturatingMul(clicks, step)
	switch {
	case v < math.MinInt32:
		return math.MinInt32
	case v > math.MaxInt32:
		return math.MaxInt32
	}
	return int32(v)
}

// CeilDiv returns ⌈n/d⌉ for non-negative n and positive d.
func CeilDiv(n, d int) int {
	return (n + d - 1) / d
}

func clamp8(v int, min, max int8) int8 {
	if v < int(min) {
		return min
	}
	if v > int(max) {
		return max
	}
	return int8(v)
}

func saturatingMul(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	p := a * b
	if p/b != a {
		if (a < 0) != (b < 0) {
			return math.MinInt
		}
		return math.MaxInt
	}
	return p
}
