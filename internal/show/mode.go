package show

import (
	"fmt"
	"strings"
)

// Mode selects which show the Demo drives. The numeric values match the
// mode switch positions; anything above ModeStrobe means off.
type Mode uint8

const (
	ModeOff Mode = iota
	ModeSolid
	ModeCircle
	ModeWave
	ModeStrobe
)

const numModes = 5

// Modes lists every mode in cycling order.
var Modes = []Mode{ModeOff, ModeSolid, ModeCircle, ModeWave, ModeStrobe}

// Next cycles to the next mode, wrapping from Strobe back to Off.
func (m Mode) Next() Mode {
	return (m.normalize() + 1) % numModes
}

// Prev cycles to the previous mode, wrapping from Off to Strobe.
func (m Mode) Prev() Mode {
	return (m.normalize() + numModes - 1) % numModes
}

func (m Mode) normalize() Mode {
	if m >= numModes {
		return ModeOff
	}
	return m
}

// String returns the lower-case name of the mode.
func (m Mode) String() string {
	switch m.normalize() {
	case ModeSolid:
		return "solid"
	case ModeCircle:
		return "circle"
	case ModeWave:
		return "wave"
	case ModeStrobe:
		return "strobe"
	default:
		return "off"
	}
}

// ParseMode accepts a mode name, case-insensitively.
func ParseMode(name string) (Mode, error) {
	for _, m := range Modes {
		if strings.EqualFold(name, m.String()) {
			return m, nil
		}
	}
	return ModeOff, fmt.Errorf("unknown mode %q", name)
}
