//go:build ignore

// gentables regenerates radius_table.go and led_gamma_table.go from the
// conversion code in this package.
package main

import (
	"bytes"
	"fmt"
	"go/format"
	"math"
	"os"
	"sort"

	"github.com/olivier-w/dotstar/internal/color"
)

const (
	stepBits  = 3
	minL      = 8
	minAB     = -88
	gridL     = 12
	gridAB    = 22
	searchBox = 50
	capRadius = 100
	ledExp    = 2.8
)

type offset struct {
	radius, da, db int
}

func main() {
	if err := write("radius_table.go", radiusTable()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := write("led_gamma_table.go", ledGammaTable()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func write(name string, src []byte) error {
	formatted, err := format.Source(src)
	if err != nil {
		return fmt.Errorf("formatting %s: %w", name, err)
	}
	return os.WriteFile(name, formatted, 0o644)
}

func header(buf *bytes.Buffer) {
	buf.WriteString("// Code generated by gentables.go; DO NOT EDIT.\n\npackage color\n\n")
}

func radiusTable() []byte {
	offsets := searchOffsets()
	var buf bytes.Buffer
	header(&buf)
	buf.WriteString("// radiusTable[l][a][b] is the largest gamut-safe chroma radius around the\n")
	buf.WriteString("// grid point (radiusMinL+8l, radiusMinAB+8a, radiusMinAB+8b).\n")
	buf.WriteString("var radiusTable = [radiusGridL][radiusGridAB][radiusGridAB]int8{\n")
	for li := 0; li < gridL; li++ {
		buf.WriteString("{\n")
		for ai := 0; ai < gridAB; ai++ {
			buf.WriteString("{")
			for bi := 0; bi < gridAB; bi++ {
				c := color.Lab{
					L: int8(minL + li<<stepBits),
					A: int8(minAB + ai<<stepBits),
					B: int8(minAB + bi<<stepBits),
				}
				if bi > 0 {
					buf.WriteString(", ")
				}
				fmt.Fprintf(&buf, "%d", searchRadius(c, offsets))
			}
			buf.WriteString("},\n")
		}
		buf.WriteString("},\n")
	}
	buf.WriteString("}\n")
	return buf.Bytes()
}

// searchOffsets lists every (da, db) in the search box ordered by integer
// distance, so the first invalid neighbour found is the nearest one.
func searchOffsets() []offset {
	var out []offset
	for da := -searchBox; da < searchBox; da++ {
		for db := -searchBox; db < searchBox; db++ {
			out = append(out, offset{radius: isqrt(da*da + db*db), da: da, db: db})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].radius < out[j].radius })
	return out
}

func searchRadius(c color.Lab, offsets []offset) int {
	for _, o := range offsets {
		if o.radius >= capRadius {
			break
		}
		n := color.Lab{L: c.L, A: saturate(int(c.A) + o.da), B: saturate(int(c.B) + o.db)}
		if !n.IsValid() {
			return o.radius
		}
	}
	return capRadius
}

func ledGammaTable() []byte {
	var buf bytes.Buffer
	header(&buf)
	buf.WriteString("// ledGamma maps an sRGB code to the PWM duty the LED driver needs for the\n")
	buf.WriteString("// same perceived brightness (exponent 2.8).\n")
	buf.WriteString("var ledGamma = [256]uint8{\n")
	for i := 0; i < 256; i++ {
		v := int(math.Pow(float64(i)/255.0, ledExp)*255.0 + 0.5)
		fmt.Fprintf(&buf, "%d,", v)
		if i%16 == 15 {
			buf.WriteString("\n")
		} else {
			buf.WriteString(" ")
		}
	}
	buf.WriteString("}\n")
	return buf.Bytes()
}

func saturate(v int) int8 {
	if v < math.MinInt8 {
		return math.MinInt8
	}
	if v > math.MaxInt8 {
		return math.MaxInt8
	}
	return int8(v)
}

func isqrt(n int) int {
	return int(math.Sqrt(float64(n)))
}
