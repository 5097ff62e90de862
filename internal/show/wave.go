package show

import (
	"fmt"
	"time"

	"github.com/olivier-w/dotstar/internal/color"
	"github.com/olivier-w/dotstar/internal/intmath"
)

// Wave shows a hue gradient that travels down the strip. Curvature is the
// hue difference between adjacent lights, in degrees.
type Wave struct {
	center    color.Lab
	radius    int
	delay     int32 // ms between ticks
	curvature int32
	phase     int // ticks mod 360
}

// NewWave returns a Wave show using the slow preset.
func NewWave() *Wave {
	w := &Wave{}
	w.PresetSlow()
	return w
}

func (w *Wave) Name() string { return "Wave" }

func (w *Wave) Settings() string {
	return fmt.Sprintf("%v %dms %d°/light", w.center, w.delay, w.curvature)
}

func (w *Wave) PresetSlow()   { w.preset(color.Lab{L: 70}, 50, 1) }
func (w *Wave) PresetFast()   { w.preset(color.Lab{L: 70, B: 10}, 50, 17) }
func (w *Wave) PresetGolden() { w.preset(color.Lab{L: 70, B: 10}, 400, 137) }

func (w *Wave) preset(center color.Lab, delay, curvature int32) {
	w.setCenter(center)
	w.delay = delay
	w.curvature = curvature
}

func (w *Wave) setCenter(center color.Lab) {
	w.center = center
	w.radius = int(center.MaxRadius())
}

func (w *Wave) ChangeBrightness(delta int8) {
	intmath.Inc8(&w.center.L, delta, 0, 99)
	w.setCenter(w.center)
}

func (w *Wave) ChangeDelay(delta int32)     { intmath.Inc32(&w.delay, delta, 50, 4000) }
func (w *Wave) ChangeCurvature(delta int32) { intmath.Inc32(&w.curvature, delta, -180, 180) }

func (w *Wave) Next(frame []color.RGB) time.Duration {
	w.phase = (w.phase + 1) % 360
	w.Update(frame)
	return millis(w.delay)
}

func (w *Wave) Update(frame []color.RGB) {
	curv := int(w.curvature)
	start := w.phase * curv
	for i := range frame {
		deg := (start + i*curv) % 360
		frame[i] = color.Lab{
			L: w.center.L,
			A: w.center.A + int8(intmath.Sin(deg, w.radius)),
			B: w.center.B + int8(intmath.Cos(deg, w.radius)),
		}.ToSRGBClamped()
	}
}

func (w *Wave) Press(k Knob) {
	switch k {
	case Knob0:
		w.PresetSlow()
	case Knob1:
		w.PresetFast()
	case Knob2:
		w.PresetGolden()
	default:
		unmapped(w.Name(), k)
	}
}

func (w *Wave) Turn(k Knob, clicks int) {
	switch k {
	case Knob0:
		w.ChangeBrightness(intmath.Scale8(clicks, 10))
	case Knob1:
		w.ChangeDelay(intmath.Scale32(clicks, 50))
	case Knob2:
		w.ChangeCurvature(intmath.Scale32(clicks, 1))
	default:
		unmapped(w.Name(), k)
	}
}
