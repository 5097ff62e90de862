package show

import (
	"fmt"
	"time"

	"github.com/olivier-w/dotstar/internal/color"
	"github.com/olivier-w/dotstar/internal/intmath"
)

const (
	strobeChroma = 40
	// strobeAltL is the lightness of the complementary flash.
	strobeAltL = 70
)

// Strobe flashes the whole strip between a color and its complement.
type Strobe struct {
	brightness int8
	hue        int32 // degrees
	delay      int32 // ms per flash
	on         bool
}

// NewStrobe returns a Strobe show using the first preset.
func NewStrobe() *Strobe {
	s := &Strobe{}
	s.Preset1()
	return s
}

func (s *Strobe) Name() string { return "Strobe" }

func (s *Strobe) Settings() string {
	return fmt.Sprintf("L=%d hue=%d° %dms", s.brightness, s.hue, s.delay)
}

func (s *Strobe) Preset1() { s.preset(70, 0, 40) }
func (s *Strobe) Preset2() { s.preset(70, 90, 40) }
func (s *Strobe) Preset3() { s.preset(0, 0, 40) }

func (s *Strobe) preset(brightness int8, hue, delay int32) {
	s.brightness = brightness
	s.hue = hue
	s.delay = delay
}

func (s *Strobe) ChangeBrightness(delta int8) { intmath.Inc8(&s.brightness, delta, 0, 99) }
func (s *Strobe) ChangeHue(delta int32)       { intmath.Inc32(&s.hue, delta, -180, 180) }
func (s *Strobe) ChangeDelay(delta int32)     { intmath.Inc32(&s.delay, delta, 5, 1000) }

func (s *Strobe) Next(frame []color.RGB) time.Duration {
	s.on = !s.on
	s.Update(frame)
	return millis(s.delay)
}

func (s *Strobe) Update(frame []color.RGB) {
	hue := int(s.hue)
	c := color.Lab{
		L: strobeAltL,
		A: int8(intmath.Sin(180+hue, strobeChroma)),
		B: int8(intmath.Cos(180+hue, strobeChroma)),
	}
	if s.on {
		c = color.Lab{
			L: s.brightness,
			A: int8(intmath.Sin(hue, strobeChroma)),
			B: int8(intmath.Cos(hue, strobeChroma)),
		}
	}
	fill(frame, c.ToSRGBClamped())
}

func (s *Strobe) Press(k Knob) {
	switch k {
	case Knob0:
		s.Preset1()
	case Knob1:
		s.Preset2()
	case Knob2:
		s.Preset3()
	default:
		unmapped(s.Name(), k)
	}
}

func (s *Strobe) Turn(k Knob, clicks int) {
	switch k {
	case Knob0:
		s.ChangeBrightness(intmath.Scale8(clicks, 10))
	case Knob1:
		s.ChangeHue(intmath.Scale32(clicks, 10))
	case Knob2:
		s.ChangeDelay(intmath.Scale32(clicks, 5))
	default:
		unmapped(s.Name(), k)
	}
}
