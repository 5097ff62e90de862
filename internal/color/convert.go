package color

// Fractional bits carried by every fixed-point intermediate.
const fracBits = 12

// delta is the CIELAB ε boundary 6/29 at the fixed-point scale.
const delta int32 = (6 << fracBits) / 29

type xyz struct {
	x, y, z int32
}

type linearRGB struct {
	r, g, b int32
}

// fInv is the inverse of the CIELAB companding function f, cubic above delta
// and linear below. Input and output are scaled by 12 bits.
func fInv(t int32) int32 {
	if t > delta {
		return (((t * t) >> fracBits) * t) >> fracBits
	}
	return ((3 * (delta >> 6) * (delta >> 6)) >> 6) * ((t >> 6) - (4<<6)/29)
}

// labToXYZ converts against the D65 white point (95.047, 100, 108.883),
// rounded to whole percent. The result is scaled by 12 bits.
func labToXYZ(c Lab) xyz {
	l := ((int32(c.L) + 16) << fracBits) / 116
	a := (int32(c.A) << fracBits) / 500
	b := -(int32(c.B) << fracBits) / 200
	return xyz{
		x: 95 * fInv(l+a),
		y: 100 * fInv(l),
		z: 109 * fInv(l+b),
	}
}

// linear applies the XYZ → linear sRGB matrix. The coefficients are the
// standard matrix scaled by 12 bits; the input is pre-shifted so the largest
// product over the whole int8 LAB domain stays well inside int32.
func (v xyz) linear() linearRGB {
	x, y, z := v.x>>8, v.y>>8, v.z>>8
	return linearRGB{
		r: (13273*x - 6296*y - 2042*z) >> 4,
		g: (-3969*x + 7683*y + 170*z) >> 4,
		b: (228*x - 836*y + 4329*z) >> 4,
	}
}

// gamma maps a linear channel to its sRGB code by binary search in
// gammaThresholds. Each threshold marks the start of an 8-bit bucket. ok is
// false when u lies below the first or beyond the last threshold.
func gamma(u int32) (code uint8, ok bool) {
	lo, hi := 0, len(gammaThresholds)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if gammaThresholds[mid] < u {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	switch {
	case lo < len(gammaThresholds) && gammaThresholds[lo] == u:
		return uint8(lo), true
	case lo == 0:
		return 0, false
	case lo == len(gammaThresholds):
		return 255, false
	}
	return uint8(lo - 1), true
}

// gammaThresholds[i] is the smallest linear value, at the scale produced by
// xyz.linear, that encodes to sRGB code i.
var gammaThresholds = [256]int32{
	0, 123, 247, 371, 495, 619, 743, 866,
	990, 1114, 1238, 1365, 1499, 1641, 1790, 1947,
	2111, 2284, 2464, 2652, 2849, 3054, 3267, 3489,
	3719, 3957, 4205, 4461, 4726, 5000, 5283, 5576,
	5877, 6188, 6508, 6838, 7177, 7526, 7884, 8252,
	8631, 9019, 9416, 9825, 10243, 10671, 11110, 11559,
	12018, 12488, 12969, 13460, 13961, 14474, 14997, 15531,
	16076, 16632, 17200, 17778, 18367, 18968, 19580, 20203,
	20838, 21484, 22142, 22812, 23493, 24186, 24890, 25607,
	26335, 27075, 27827, 28592, 29368, 30157, 30957, 31770,
	32596, 33434, 34284, 35146, 36021, 36909, 37810, 38723,
	39648, 40587, 41539, 42503, 43480, 44470, 45474, 46490,
	47519, 48562, 49618, 50687, 51769, 52865, 53974, 55097,
	56233, 57383, 58546, 59723, 60914, 62119, 63337, 64569,
	65815, 67074, 68348, 69636, 70938, 72254, 73584, 74928,
	76286, 77659, 79046, 80447, 81863, 83293, 84737, 86196,
	87670, 89158, 90661, 92179, 93711, 95258, 96820, 98396,
	99988, 101594, 103216, 104852, 106504, 108170, 109852, 111548,
	113260, 114988, 116730, 118488, 120261, 122049, 123853, 125672,
	127507, 129358, 131224, 133105, 135002, 136915, 138844, 140788,
	142748, 144724, 146716, 148724, 150748, 152787, 154843, 156915,
	159002, 161106, 163226, 165362, 167515, 169684, 171869, 174070,
	176288, 178522, 180772, 183039, 185322, 187622, 189939, 192272,
	194622, 196988, 199372, 201771, 204188, 206622, 209072, 211539,
	214023, 216524, 219042, 221577, 224129, 226698, 229284, 231887,
	234508, 237145, 239800, 242472, 245162, 247868, 250592, 253334,
	256093, 258869, 261663, 264474, 267303, 270149, 273013, 275895,
	278794, 281711, 284646, 287599, 290569, 293557, 296563, 299587,
	302628, 305688, 308766, 311861, 314975, 318107, 321257, 324425,
	327611, 330815, 334037, 337278, 340537, 343814, 347110, 350424,
	353756, 357107, 360476, 363864, 367270, 370695, 374138, 377600,
	381080, 384579, 388097, 391633, 395189, 398763, 402355, 405967,
}
