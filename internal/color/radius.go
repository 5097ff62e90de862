package color

//go:generate go run gentables.go

// The radius grid samples L in [8,96] and A, B in [-88,80], all in steps of
// 1<<radiusStepBits. Points between samples are interpolated.
const (
	radiusStepBits = 3
	radiusStep     = 1 << radiusStepBits
	radiusMinL     = 8
	radiusMinAB    = -88
	radiusGridL    = 12
	radiusGridAB   = 22
)

// MaxRadius returns the radius, in LAB a/b units, of the largest disk around c
// (at constant L) that stays inside the sRGB gamut. It interpolates the eight
// surrounding grid samples of radiusTable with integer weights. Points outside
// the sampled range report 0.
func (c Lab) MaxRadius() int8 {
	li, lf, ok := gridIndex(int32(c.L)-radiusMinL, radiusGridL)
	if !ok {
		return 0
	}
	ai, af, ok := gridIndex(int32(c.A)-radiusMinAB, radiusGridAB)
	if !ok {
		return 0
	}
	bi, bf, ok := gridIndex(int32(c.B)-radiusMinAB, radiusGridAB)
	if !ok {
		return 0
	}

	lw := [2]int32{radiusStep - lf, lf}
	aw := [2]int32{radiusStep - af, af}
	bw := [2]int32{radiusStep - bf, bf}
	var sum int32
	for dl := 0; dl < 2; dl++ {
		for da := 0; da < 2; da++ {
			for db := 0; db < 2; db++ {
				w := lw[dl] * aw[da] * bw[db]
				if w == 0 {
					continue
				}
				sum += int32(radiusTable[li+dl][ai+da][bi+db]) * w
			}
		}
	}
	return int8(sum >> (3 * radiusStepBits))
}

// gridIndex splits an offset from the grid origin into a cell index and a
// fractional part. ok is false when the offset lies outside the grid, which
// includes any point past the last sample.
func gridIndex(offset int32, n int) (i int, frac int32, ok bool) {
	if offset < 0 {
		return 0, 0, false
	}
	i = int(offset >> radiusStepBits)
	frac = offset & (radiusStep - 1)
	if i >= n || (i == n-1 && frac != 0) {
		return 0, 0, false
	}
	return i, frac, true
}
