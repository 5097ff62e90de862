// Package show implements the animated light shows and the mode selector
// that routes knob and button events to whichever show is active.
//
// A show renders into a caller-owned frame. The frame length is the strip
// length and need not match any show's internal state; shows cycle their
// state over the frame.
package show

import (
	"fmt"
	"time"

	"github.com/olivier-w/dotstar/internal/color"
)

// Forever is returned by Next when the frame will not change again until an
// external event arrives.
const Forever time.Duration = -1

// Knob identifies one of the three physical rotary encoders. Each knob can
// also be pressed as a button.
type Knob int

const (
	Knob0 Knob = iota
	Knob1
	Knob2
)

// NumKnobs is the size of the control surface.
const NumKnobs = 3

// Show is a single animation.
type Show interface {
	// Name is the display name of the show.
	Name() string

	// Settings summarizes the adjustable parameters.
	Settings() string

	// Next advances the animation by one tick, renders into frame and
	// returns how long to wait before the next call.
	Next(frame []color.RGB) time.Duration

	// Update re-renders the current state without advancing time.
	Update(frame []color.RGB)

	// Press selects the preset bound to knob k's button.
	Press(k Knob)

	// Turn adjusts the parameter bound to knob k. Negative clicks turn left.
	Turn(k Knob, clicks int)
}

func fill(frame []color.RGB, c color.RGB) {
	for i := range frame {
		frame[i] = c
	}
}

func millis(ms int32) time.Duration {
	return time.Duration(ms) * time.Millisecond
}

// unmapped reports a knob outside the control surface. The set of knobs is
// closed, so reaching this is a wiring bug.
func unmapped(show string, k Knob) {
	panic(fmt.Sprintf("show: %s has no control for knob %d", show, k))
}
