// Package strip pushes frames to something that can display them: a DotStar
// (APA102) strip over SPI, or a terminal.
package strip

import (
	"errors"

	"github.com/olivier-w/dotstar/internal/color"
)

// ErrShortWrite is returned when a writer accepts fewer bytes than it was
// given without reporting an error.
var ErrShortWrite = errors.New("strip: short write")

// Sink displays frames. A failed Show means the frame may be torn; callers
// should not retry it.
type Sink interface {
	Show(frame []color.RGB) error
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(frame []color.RGB) error

func (f SinkFunc) Show(frame []color.RGB) error { return f(frame) }
