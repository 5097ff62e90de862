package show

import "testing"

func TestModeString(t *testing.T) {
	tests := []struct {
		m    Mode
		want string
	}{
		{ModeOff, "off"},
		{ModeSolid, "solid"},
		{ModeCircle, "circle"},
		{ModeWave, "wave"},
		{ModeStrobe, "strobe"},
		{Mode(200), "off"},
	}
	for _, tt := range tests {
		if got := tt.m.String(); got != tt.want {
			t.Errorf("Mode(%d).String() = %q, want %q", tt.m, got, tt.want)
		}
	}
}

func TestModeNextPrev(t *testing.T) {
	if ModeStrobe.Next() != ModeOff {
		t.Errorf("strobe.Next() = %v", ModeStrobe.Next())
	}
	if ModeOff.Prev() != ModeStrobe {
		t.Errorf("off.Prev() = %v", ModeOff.Prev())
	}
	if Mode(9).Next() != ModeSolid {
		t.Errorf("Mode(9).Next() = %v", Mode(9).Next())
	}
	for _, m := range Modes {
		if m.Next().Prev() != m {
			t.Errorf("%v.Next().Prev() = %v", m, m.Next().Prev())
		}
	}
}

func TestParseMode(t *testing.T) {
	for _, m := range Modes {
		got, err := ParseMode(m.String())
		if err != nil || got != m {
			t.Errorf("ParseMode(%q) = %v, %v", m.String(), got, err)
		}
	}
	if got, err := ParseMode("Wave"); err != nil || got != ModeWave {
		t.Errorf("ParseMode(Wave) = %v, %v", got, err)
	}
	if _, err := ParseMode("disco"); err == nil {
		t.Error("ParseMode(disco) should fail")
	}
}

func TestEventString(t *testing.T) {
	tests := []struct {
		ev   Event
		want string
	}{
		{Select(ModeWave), "mode-select wave"},
		{Event{Kind: ModeNext}, "mode-next"},
		{Left(Knob1), "knob-left 1"},
		{Right(Knob0), "knob-right 0"},
		{Button(Knob2), "knob-button 2"},
		{Event{Kind: EventKind(9)}, "EventKind(9)"},
	}
	for _, tt := range tests {
		if got := tt.ev.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
