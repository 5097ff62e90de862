package color

import (
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
	"pgregory.net/rapid"
)

var conversionFixtures = []struct {
	lab  Lab
	want RGB
}{
	{Lab{0, 0, 0}, RGB{0, 0, 0}},
	{Lab{20, 0, 0}, RGB{48, 47, 47}},
	{Lab{25, 0, 0}, RGB{58, 59, 59}},
	{Lab{30, 0, 0}, RGB{70, 70, 70}},
	{Lab{40, 0, 0}, RGB{94, 94, 94}},
	{Lab{50, 0, 0}, RGB{118, 119, 119}},
	{Lab{60, 0, 0}, RGB{144, 145, 144}},
	{Lab{70, 0, 0}, RGB{171, 171, 171}},
	{Lab{75, 0, 0}, RGB{185, 185, 185}},
	{Lab{80, 0, 0}, RGB{198, 199, 199}},
	{Lab{90, 0, 0}, RGB{226, 227, 227}},
	{Lab{99, 0, 0}, RGB{252, 253, 253}},
	{Lab{70, 30, 0}, RGB{223, 151, 172}},
	{Lab{50, 35, 5}, RGB{175, 94, 112}},
	{Lab{70, 0, 30}, RGB{190, 169, 116}},
	{Lab{60, -20, 20}, RGB{121, 153, 109}},
	{Lab{40, 10, -30}, RGB{79, 91, 143}},
	{Lab{80, -10, -10}, RGB{167, 205, 217}},
	{Lab{65, 20, -20}, RGB{177, 147, 194}},
	{Lab{55, -30, -10}, RGB{21, 146, 148}},
	{Lab{75, 10, 40}, RGB{225, 176, 111}},
	{Lab{45, 25, 25}, RGB{155, 89, 65}},
}

func TestToSRGBFixtures(t *testing.T) {
	for _, tt := range conversionFixtures {
		got, ok := tt.lab.ToSRGB()
		if !ok {
			t.Errorf("%v.ToSRGB() ok = false, want true", tt.lab)
		}
		if got != tt.want {
			t.Errorf("%v.ToSRGB() = %v, want %v", tt.lab, got, tt.want)
		}
	}
}

func TestToSRGBInvalid(t *testing.T) {
	tests := []struct {
		lab  Lab
		want RGB
	}{
		{Lab{100, 0, 0}, RGB{255, 255, 255}},
		{Lab{-128, -128, -128}, RGB{0, 0, 0}},
		{Lab{127, 127, 127}, RGB{255, 188, 54}},
		{Lab{53, 80, 67}, RGB{254, 0, 0}},
	}
	for _, tt := range tests {
		got, ok := tt.lab.ToSRGB()
		if ok {
			t.Errorf("%v.ToSRGB() ok = true, want false", tt.lab)
		}
		if got != tt.want {
			t.Errorf("%v.ToSRGB() = %v, want %v", tt.lab, got, tt.want)
		}
		if tt.lab.IsValid() {
			t.Errorf("%v.IsValid() = true, want false", tt.lab)
		}
		if clamped := tt.lab.ToSRGBClamped(); clamped != tt.want {
			t.Errorf("%v.ToSRGBClamped() = %v, want %v", tt.lab, clamped, tt.want)
		}
	}
}

// The integer pipeline should track a floating point conversion to within
// one code per channel for ordinary in-gamut colors.
func TestToSRGBMatchesFloatReference(t *testing.T) {
	for _, tt := range conversionFixtures {
		if tt.lab.L < 20 {
			continue
		}
		ref := colorful.Lab(float64(tt.lab.L)/100, float64(tt.lab.A)/100, float64(tt.lab.B)/100)
		r, g, b := ref.Clamped().RGB255()
		got := tt.lab.ToSRGBClamped()
		if absDiff(got.R, r) > 1 || absDiff(got.G, g) > 1 || absDiff(got.B, b) > 1 {
			t.Errorf("%v.ToSRGB() = %v, float reference (%d, %d, %d)", tt.lab, got, r, g, b)
		}
	}
}

func TestToSRGBTotal(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c := Lab{L: rapid.Int8().Draw(t, "l"), A: rapid.Int8().Draw(t, "a"), B: rapid.Int8().Draw(t, "b")}
		rgb, ok := c.ToSRGB()
		if ok != c.IsValid() {
			t.Fatalf("%v: ToSRGB ok=%v but IsValid=%v", c, ok, c.IsValid())
		}
		if rgb != c.ToSRGBClamped() {
			t.Fatalf("%v: ToSRGB %v differs from ToSRGBClamped %v", c, rgb, c.ToSRGBClamped())
		}
	})
}

func TestToSRGBGrayIsNeutral(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		l := rapid.Int8Range(25, 99).Draw(t, "l")
		rgb, ok := Lab{L: l}.ToSRGB()
		if !ok {
			t.Fatalf("gray L=%d reported out of gamut", l)
		}
		if absDiff(rgb.R, rgb.G) > 1 || absDiff(rgb.G, rgb.B) > 1 {
			t.Fatalf("gray L=%d converted to tinted %v", l, rgb)
		}
	})
}

func TestToSRGBGrayMonotone(t *testing.T) {
	prev := Lab{}.ToSRGBClamped()
	for l := int8(1); l < 100; l++ {
		cur := Lab{L: l}.ToSRGBClamped()
		if cur.G < prev.G {
			t.Fatalf("L=%d green %d below L=%d green %d", l, cur.G, l-1, prev.G)
		}
		prev = cur
	}
}

func TestLabString(t *testing.T) {
	if got := (Lab{70, -5, 12}).String(); got != "lab(70, -5, 12)" {
		t.Errorf("String() = %q", got)
	}
}

func TestRGBHex(t *testing.T) {
	tests := []struct {
		c    RGB
		want string
	}{
		{Black, "#000000"},
		{RGB{255, 255, 255}, "#ffffff"},
		{RGB{223, 151, 172}, "#df97ac"},
		{RGB{1, 2, 16}, "#010210"},
	}
	for _, tt := range tests {
		if got := tt.c.Hex(); got != tt.want {
			t.Errorf("%v.Hex() = %q, want %q", tt.c, got, tt.want)
		}
	}
}

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}
