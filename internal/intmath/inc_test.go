package intmath

import (
	"math"
	"testing"

	"pgregory.net/rapid"
)

func TestInc8Clamps(t *testing.T) {
	x := int8(90)
	Inc8(&x, 20, 0, 99)
	if x != 99 {
		t.Fatalf("expected clamp to 99, got %d", x)
	}
	Inc8(&x, -128, 0, 99)
	if x != 0 {
		t.Fatalf("expected clamp to 0, got %d", x)
	}
}

func TestInc8DoesNotWrap(t *testing.T) {
	x := int8(120)
	Inc8(&x, 120, -128, 127)
	if x != 127 {
		t.Fatalf("expected saturation at 127, got %d", x)
	}
}

func TestInc8StaysInBounds(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lo := rapid.Int8().Draw(t, "min")
		hi := rapid.Int8Min(lo).Draw(t, "max")
		x := rapid.Int8Range(lo, hi).Draw(t, "x")
		delta := rapid.Int8().Draw(t, "delta")

		Inc8(&x, delta, lo, hi)
		if x < lo || x > hi {
			t.Fatalf("Inc8 escaped [%d, %d]: %d", lo, hi, x)
		}
	})
}

func TestInc32StaysInBounds(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		x := rapid.Int32Range(5, 1000).Draw(t, "x")
		delta := rapid.Int32().Draw(t, "delta")

		Inc32(&x, delta, 5, 1000)
		if x < 5 || x > 1000 {
			t.Fatalf("Inc32 escaped [5, 1000]: %d", x)
		}
	})
}

func TestScaleSaturates(t *testing.T) {
	if got := Scale8(3, 10); got != 30 {
		t.Fatalf("Scale8(3, 10) = %d, want 30", got)
	}
	if got := Scale8(20, 10); got != math.MaxInt8 {
		t.Fatalf("Scale8(20, 10) = %d, want %d", got, math.MaxInt8)
	}
	if got := Scale8(-20, 10); got != math.MinInt8 {
		t.Fatalf("Scale8(-20, 10) = %d, want %d", got, math.MinInt8)
	}
	if got := Scale32(math.MaxInt, 50); got != math.MaxInt32 {
		t.Fatalf("Scale32 overflow = %d, want %d", got, int32(math.MaxInt32))
	}
	if got := Scale32(-2, 50); got != -100 {
		t.Fatalf("Scale32(-2, 50) = %d, want -100", got)
	}
}

func TestCeilDiv(t *testing.T) {
	tests := []struct{ n, d, want int }{
		{0, 8, 0}, {1, 8, 1}, {3, 8, 1}, {8, 8, 1}, {9, 8, 2}, {64, 8, 8},
	}
	for _, tt := range tests {
		if got := CeilDiv(tt.n, tt.d); got != tt.want {
			t.Errorf("CeilDiv(%d, %d) = %d, want %d", tt.n, tt.d, got, tt.want)
		}
	}
}
