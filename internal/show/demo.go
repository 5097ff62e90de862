package show

import (
	"fmt"
	"time"

	"github.com/olivier-w/dotstar/internal/color"
)

// Demo owns one instance of every show and forwards events and ticks to the
// one selected by the current mode. Switching modes never resets a show.
type Demo struct {
	mode  Mode
	shows [numModes]Show
}

// NewDemo returns a Demo in solid mode.
func NewDemo() *Demo {
	return &Demo{
		mode: ModeSolid,
		shows: [numModes]Show{
			ModeSolid:  NewSolid(),
			ModeCircle: NewCircle(),
			ModeWave:   NewWave(),
			ModeStrobe: NewStrobe(),
		},
	}
}

// Mode returns the current mode.
func (d *Demo) Mode() Mode { return d.mode }

// Active returns the show for the current mode, or nil when off.
func (d *Demo) Active() Show { return d.shows[d.mode] }

// Show returns the instance that backs mode m, or nil for ModeOff.
func (d *Demo) Show(m Mode) Show { return d.shows[m.normalize()] }

// SetMode selects a mode by switch position: 1 solid, 2 circle, 3 wave,
// 4 strobe, anything else off. It reports whether the mode changed.
func (d *Demo) SetMode(n uint8) bool {
	m := Mode(n).normalize()
	if m == d.mode {
		return false
	}
	d.mode = m
	return true
}

func (d *Demo) NextMode() { d.mode = d.mode.Next() }
func (d *Demo) PrevMode() { d.mode = d.mode.Prev() }

// ButtonPressed forwards a button press to the active show and re-renders
// frame. It does nothing when off.
func (d *Demo) ButtonPressed(frame []color.RGB, k Knob) {
	s := d.Active()
	if s == nil {
		return
	}
	s.Press(k)
	s.Update(frame)
}

// KnobTurned forwards a knob turn to the active show and re-renders frame.
// It does nothing when off.
func (d *Demo) KnobTurned(frame []color.RGB, k Knob, clicks int) {
	s := d.Active()
	if s == nil {
		return
	}
	s.Turn(k, clicks)
	s.Update(frame)
}

// Next advances the active show. When off the frame is black and Forever
// is returned.
func (d *Demo) Next(frame []color.RGB) time.Duration {
	s := d.Active()
	if s == nil {
		fill(frame, color.Black)
		return Forever
	}
	return s.Next(frame)
}

// Update re-renders the active show without advancing it.
func (d *Demo) Update(frame []color.RGB) {
	s := d.Active()
	if s == nil {
		fill(frame, color.Black)
		return
	}
	s.Update(frame)
}

// Handle applies one control event and reports whether it changed the mode.
// Mode events always re-render frame; knob events behave like ButtonPressed
// and KnobTurned.
func (d *Demo) Handle(frame []color.RGB, ev Event) bool {
	changed := false
	switch ev.Kind {
	case ModeSelect:
		changed = d.SetMode(uint8(ev.Mode))
	case ModeNext:
		d.NextMode()
		changed = true
	case ModePrev:
		d.PrevMode()
		changed = true
	case KnobLeft:
		d.KnobTurned(frame, ev.Knob, -1)
		return false
	case KnobRight:
		d.KnobTurned(frame, ev.Knob, 1)
		return false
	case KnobButton:
		d.ButtonPressed(frame, ev.Knob)
		return false
	default:
		panic(fmt.Sprintf("show: unknown event kind %d", ev.Kind))
	}
	d.Update(frame)
	return changed
}
