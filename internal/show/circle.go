package show

import (
	"fmt"
	"time"

	"github.com/olivier-w/dotstar/internal/color"
	"github.com/olivier-w/dotstar/internal/intmath"
	"github.com/olivier-w/dotstar/internal/rng"
)

const (
	// circleSize is the number of independent hue walkers. Longer strips
	// repeat them.
	circleSize = 64

	circleDelay int32 = 50

	// circleRate bounds each walker's velocity, in degrees per tick.
	circleRate int32 = 3

	circleSeed uint32 = 161051
)

// Circle shows lights whose hues take independent random walks around a
// circle centered on an adjustable color.
type Circle struct {
	center color.Lab
	radius int
	rng    *rng.Rng
	pos    [circleSize]int32
	vel    [circleSize]int32
}

// NewCircle returns a Circle show with a fixed seed, so two fresh instances
// animate identically.
func NewCircle() *Circle {
	c := &Circle{rng: rng.New(circleSeed)}
	for i := range c.pos {
		c.pos[i] = c.rng.InRange(0, 360)
		c.vel[i] = c.rng.InRange(-circleRate, circleRate+1)
	}
	c.PresetBright()
	return c
}

func (c *Circle) Name() string { return "Circle" }

func (c *Circle) Settings() string {
	return fmt.Sprintf("%v r=%d", c.center, c.radius)
}

// Center returns the color the walkers circle around.
func (c *Circle) Center() color.Lab { return c.center }

func (c *Circle) PresetBright() { c.setCenter(color.Lab{L: 70}) }
func (c *Circle) PresetRed()    { c.setCenter(color.Lab{L: 50, A: 35, B: 5}) }
func (c *Circle) PresetYellow() { c.setCenter(color.Lab{L: 70, B: 30}) }

func (c *Circle) ChangeBrightness(delta int8) {
	intmath.Inc8(&c.center.L, delta, 0, 99)
	c.setCenter(c.center)
}

func (c *Circle) ChangeRed(delta int8) {
	intmath.Inc8(&c.center.A, delta, -60, 60)
	c.setCenter(c.center)
}

func (c *Circle) ChangeYellow(delta int8) {
	intmath.Inc8(&c.center.B, delta, -60, 60)
	c.setCenter(c.center)
}

func (c *Circle) setCenter(center color.Lab) {
	c.center = center
	c.radius = int(center.MaxRadius())
}

func (c *Circle) Next(frame []color.RGB) time.Duration {
	for i := range c.pos {
		dv := c.rng.InRange(-1, 2) * c.rng.InRange(-1, 2) * c.rng.InRange(-1, 2)
		c.vel[i] = min(max(c.vel[i]+dv, -circleRate), circleRate)
		c.pos[i] = ((c.pos[i]+c.vel[i])%360 + 360) % 360
	}
	c.Update(frame)
	return millis(circleDelay)
}

func (c *Circle) Update(frame []color.RGB) {
	for i := range frame {
		deg := int(c.pos[i%circleSize])
		frame[i] = color.Lab{
			L: c.center.L,
			A: int8(intmath.Sin(deg, c.radius)) + c.center.A,
			B: int8(intmath.Cos(deg, c.radius)) + c.center.B,
		}.ToSRGBClamped()
	}
}

func (c *Circle) Press(k Knob) {
	switch k {
	case Knob0:
		c.PresetBright()
	case Knob1:
		c.PresetRed()
	case Knob2:
		c.PresetYellow()
	default:
		unmapped(c.Name(), k)
	}
}

func (c *Circle) Turn(k Knob, clicks int) {
	delta := intmath.Scale8(clicks, 10)
	switch k {
	case Knob0:
		c.ChangeBrightness(delta)
	case Knob1:
		c.ChangeRed(delta)
	case Knob2:
		c.ChangeYellow(delta)
	default:
		unmapped(c.Name(), k)
	}
}
