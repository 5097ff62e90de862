package color

import (
	"testing"

	"pgregory.net/rapid"
)

func TestGammaBoundaries(t *testing.T) {
	tests := []struct {
		u      int32
		want   uint8
		wantOK bool
	}{
		{-1, 0, false},
		{-100000, 0, false},
		{0, 0, true},
		{122, 0, true},
		{123, 1, true},
		{124, 1, true},
		{405966, 254, true},
		{405967, 255, true},
		{405968, 255, false},
		{1 << 30, 255, false},
	}
	for _, tt := range tests {
		got, ok := gamma(tt.u)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("gamma(%d) = (%d, %v), want (%d, %v)", tt.u, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestGammaEveryCodeReachable(t *testing.T) {
	for i, th := range gammaThresholds {
		got, ok := gamma(th)
		if !ok || int(got) != i {
			t.Errorf("gamma(threshold[%d]=%d) = (%d, %v)", i, th, got, ok)
		}
		if i > 0 {
			if got, _ := gamma(th - 1); int(got) != i-1 {
				t.Errorf("gamma(threshold[%d]-1) = %d, want %d", i, got, i-1)
			}
		}
	}
}

func TestGammaThresholdsIncreasing(t *testing.T) {
	for i := 1; i < len(gammaThresholds); i++ {
		if gammaThresholds[i] <= gammaThresholds[i-1] {
			t.Fatalf("threshold[%d]=%d not above threshold[%d]=%d", i, gammaThresholds[i], i-1, gammaThresholds[i-1])
		}
	}
}

func TestGammaMonotone(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := rapid.Int32Range(-1000, 420000).Draw(t, "a")
		b := rapid.Int32Range(a, 420000).Draw(t, "b")
		ga, _ := gamma(a)
		gb, _ := gamma(b)
		if ga > gb {
			t.Fatalf("gamma(%d)=%d > gamma(%d)=%d", a, ga, b, gb)
		}
	})
}

func TestFInvContinuousAtDelta(t *testing.T) {
	below := fInv(delta)
	above := fInv(delta + 1)
	if d := above - below; d < 0 || d > 8 {
		t.Errorf("fInv jumps by %d across delta", d)
	}
}
