package show

import (
	"testing"

	"github.com/olivier-w/dotstar/internal/color"
)

func TestDemoStartsSolid(t *testing.T) {
	d := NewDemo()
	if d.Mode() != ModeSolid {
		t.Fatalf("Mode() = %v, want solid", d.Mode())
	}
	frame := frameOf(3)
	if got := d.Next(frame); got != Forever {
		t.Fatalf("Next() = %v, want Forever", got)
	}
	assertFrame(t, frame, uniform(3, color.RGB{R: 171, G: 171, B: 171}))
}

func TestDemoSetMode(t *testing.T) {
	tests := []struct {
		n       uint8
		want    Mode
		changed bool
	}{
		{1, ModeSolid, false},
		{2, ModeCircle, true},
		{2, ModeCircle, false},
		{3, ModeWave, true},
		{4, ModeStrobe, true},
		{0, ModeOff, true},
		{9, ModeOff, false},
		{255, ModeOff, false},
		{1, ModeSolid, true},
		{7, ModeOff, true},
	}
	d := NewDemo()
	for _, tt := range tests {
		if got := d.SetMode(tt.n); got != tt.changed {
			t.Errorf("SetMode(%d) = %v, want %v", tt.n, got, tt.changed)
		}
		if d.Mode() != tt.want {
			t.Errorf("after SetMode(%d) mode = %v, want %v", tt.n, d.Mode(), tt.want)
		}
	}
}

func TestDemoOffIgnoresInput(t *testing.T) {
	d := NewDemo()
	d.SetMode(0)
	frame := frameOf(4)
	if got := d.Next(frame); got != Forever {
		t.Fatalf("Next() = %v, want Forever", got)
	}
	assertFrame(t, frame, uniform(4, color.Black))

	d.ButtonPressed(frame, Knob1)
	d.KnobTurned(frame, Knob0, 5)
	if changed := d.Handle(frame, Button(Knob2)); changed {
		t.Error("button in off mode reported a mode change")
	}
	if d.Mode() != ModeOff {
		t.Fatalf("mode = %v, want off", d.Mode())
	}
	assertFrame(t, frame, uniform(4, color.Black))

	// Input while off must not reach the shows.
	d.SetMode(1)
	d.Update(frame)
	assertFrame(t, frame, uniform(4, color.RGB{R: 171, G: 171, B: 171}))
}

func TestDemoOffUpdateClearsFrame(t *testing.T) {
	d := NewDemo()
	frame := uniform(3, color.RGB{R: 1, G: 2, B: 3})
	d.SetMode(0)
	d.Update(frame)
	assertFrame(t, frame, uniform(3, color.Black))
}

func TestDemoPreservesShowState(t *testing.T) {
	d := NewDemo()
	ref := NewCircle()
	frame, want := frameOf(8), frameOf(8)

	d.SetMode(uint8(ModeCircle))
	d.Next(frame)
	d.Next(frame)
	ref.Next(want)
	ref.Next(want)

	d.SetMode(uint8(ModeWave))
	d.Next(frame)
	d.SetMode(uint8(ModeOff))
	d.Next(frame)

	d.SetMode(uint8(ModeCircle))
	d.Next(frame)
	ref.Next(want)
	assertFrame(t, frame, want)
}

func TestDemoButtonRerenders(t *testing.T) {
	d := NewDemo()
	frame := frameOf(2)
	d.Next(frame)
	d.ButtonPressed(frame, Knob1)
	assertFrame(t, frame, uniform(2, color.RGB{R: 223, G: 151, B: 172}))
}

func TestDemoKnobRerendersWithoutAdvancing(t *testing.T) {
	d := NewDemo()
	d.SetMode(uint8(ModeStrobe))
	frame := frameOf(2)
	d.Next(frame)
	// Brightness knob changes the lit phase in place; the flash must not toggle.
	d.KnobTurned(frame, Knob0, -7)
	want := color.Lab{L: 0, A: 0, B: 40}.ToSRGBClamped()
	assertFrame(t, frame, uniform(2, want))
}

func TestDemoHandle(t *testing.T) {
	d := NewDemo()
	frame := frameOf(2)

	if !d.Handle(frame, Event{Kind: ModeNext}) || d.Mode() != ModeCircle {
		t.Fatalf("ModeNext: mode = %v", d.Mode())
	}
	if !d.Handle(frame, Event{Kind: ModePrev}) || d.Mode() != ModeSolid {
		t.Fatalf("ModePrev: mode = %v", d.Mode())
	}
	if d.Handle(frame, Select(ModeSolid)) {
		t.Fatal("selecting the current mode reported a change")
	}
	if !d.Handle(frame, Select(ModeOff)) {
		t.Fatal("selecting off reported no change")
	}
	assertFrame(t, frame, uniform(2, color.Black))

	d.Handle(frame, Select(ModeSolid))
	if d.Handle(frame, Right(Knob2)) {
		t.Fatal("knob turn reported a mode change")
	}
	if got := d.Show(ModeSolid).(*Solid).Color(); got != (color.Lab{L: 70, B: 10}) {
		t.Fatalf("solid color = %v", got)
	}
	d.Handle(frame, Left(Knob2))
	d.Handle(frame, Left(Knob2))
	if got := d.Show(ModeSolid).(*Solid).Color(); got != (color.Lab{L: 70, B: -10}) {
		t.Fatalf("solid color = %v", got)
	}
	d.Handle(frame, Button(Knob0))
	assertFrame(t, frame, uniform(2, color.RGB{R: 171, G: 171, B: 171}))
}

func TestDemoModeCycle(t *testing.T) {
	d := NewDemo()
	want := []Mode{ModeCircle, ModeWave, ModeStrobe, ModeOff, ModeSolid}
	for _, m := range want {
		d.NextMode()
		if d.Mode() != m {
			t.Fatalf("NextMode() -> %v, want %v", d.Mode(), m)
		}
	}
	for i := len(want) - 2; i >= 0; i-- {
		d.PrevMode()
		if d.Mode() != want[i] {
			t.Fatalf("PrevMode() -> %v, want %v", d.Mode(), want[i])
		}
	}
}

func TestDemoUnmappedKnobPanics(t *testing.T) {
	d := NewDemo()
	frame := frameOf(1)
	for _, n := range []uint8{1, 2, 3, 4} {
		d.SetMode(n)
		assertPanics(t, d.Mode().String(), func() { d.ButtonPressed(frame, Knob(3)) })
		assertPanics(t, d.Mode().String(), func() { d.KnobTurned(frame, Knob(-2), 1) })
	}
	assertPanics(t, "event kind", func() { d.Handle(frame, Event{Kind: EventKind(42)}) })
}

func TestDemoActive(t *testing.T) {
	d := NewDemo()
	if d.Active().Name() != "Solid" {
		t.Errorf("Active() = %s", d.Active().Name())
	}
	d.SetMode(0)
	if d.Active() != nil {
		t.Error("Active() in off mode should be nil")
	}
	if d.Show(ModeOff) != nil {
		t.Error("Show(ModeOff) should be nil")
	}
}
