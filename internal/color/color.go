// Package color converts perceptual CIE-LAB colors into 8-bit sRGB using
// only 32-bit integer arithmetic.
//
// The pipeline is LAB → XYZ (D65) → linear RGB → sRGB, with every
// intermediate carried at a 12-bit fractional scale. The final step is a
// binary search in a precomputed gamma threshold table, so no floating point
// is needed anywhere on the conversion path.
//
// Not every LAB triple is displayable. ToSRGB reports whether any channel had
// to be clamped; MaxRadius gives shows a cheap way to stay inside the gamut
// when they walk hues around a center color.
package color

import "fmt"

// Lab is a CIE-LAB color. L is lightness in [0,99]; A runs green to red and
// B runs blue to yellow. Which (A,B) pairs are displayable depends on L.
type Lab struct {
	L, A, B int8
}

// RGB is an 8-bit device color.
type RGB struct {
	R, G, B uint8
}

// Black is the zero RGB value.
var Black = RGB{}

// ToSRGB converts c to sRGB. ok is false when at least one channel fell
// outside the displayable range; the returned color is then the channel-wise
// clamped conversion.
func (c Lab) ToSRGB() (rgb RGB, ok bool) {
	lin := labToXYZ(c).linear()
	r, okR := gamma(lin.r)
	g, okG := gamma(lin.g)
	b, okB := gamma(lin.b)
	return RGB{R: r, G: g, B: b}, okR && okG && okB
}

// ToSRGBClamped converts c to sRGB, discarding the validity flag.
func (c Lab) ToSRGBClamped() RGB {
	rgb, _ := c.ToSRGB()
	return rgb
}

// IsValid reports whether c converts to sRGB without clamping.
func (c Lab) IsValid() bool {
	_, ok := c.ToSRGB()
	return ok
}

func (c Lab) String() string {
	return fmt.Sprintf("lab(%d, %d, %d)", c.L, c.A, c.B)
}

// Hex returns the color as a CSS hex string.
func (c RGB) Hex() string {
	return "#" + hexByte(c.R) + hexByte(c.G) + hexByte(c.B)
}

func hexByte(b uint8) string {
	const hex = "0123456789abcdef"
	return string([]byte{hex[b>>4], hex[b&0x0f]})
}
