package show

import (
	"time"

	"github.com/olivier-w/dotstar/internal/color"
	"github.com/olivier-w/dotstar/internal/intmath"
)

// Solid shows one color on every light.
type Solid struct {
	color color.Lab
}

// NewSolid returns a Solid show set to a neutral white.
func NewSolid() *Solid {
	s := &Solid{}
	s.PresetBright()
	return s
}

func (s *Solid) Name() string { return "Solid" }

func (s *Solid) Settings() string { return s.color.String() }

// Color returns the current color.
func (s *Solid) Color() color.Lab { return s.color }

func (s *Solid) PresetBright() { s.color = color.Lab{L: 70} }
func (s *Solid) PresetRed()    { s.color = color.Lab{L: 70, A: 30} }
func (s *Solid) PresetYellow() { s.color = color.Lab{L: 70, B: 30} }

func (s *Solid) ChangeBrightness(delta int8) { intmath.Inc8(&s.color.L, delta, 0, 99) }
func (s *Solid) ChangeRed(delta int8)        { intmath.Inc8(&s.color.A, delta, -60, 60) }
func (s *Solid) ChangeYellow(delta int8)     { intmath.Inc8(&s.color.B, delta, -60, 60) }

// Next renders the color. A solid color never needs another tick.
func (s *Solid) Next(frame []color.RGB) time.Duration {
	s.Update(frame)
	return Forever
}

func (s *Solid) Update(frame []color.RGB) {
	fill(frame, s.color.ToSRGBClamped())
}

func (s *Solid) Press(k Knob) {
	switch k {
	case Knob0:
		s.PresetBright()
	case Knob1:
		s.PresetRed()
	case Knob2:
		s.PresetYellow()
	default:
		unmapped(s.Name(), k)
	}
}

func (s *Solid) Turn(k Knob, clicks int) {
	delta := intmath.Scale8(clicks, 10)
	switch k {
	case Knob0:
		s.ChangeBrightness(delta)
	case Knob1:
		s.ChangeRed(delta)
	case Knob2:
		s.ChangeYellow(delta)
	default:
		unmapped(s.Name(), k)
	}
}
