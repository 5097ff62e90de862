package strip

import (
	"fmt"
	"io"

	"github.com/olivier-w/dotstar/internal/color"
	"github.com/olivier-w/dotstar/internal/intmath"
)

// ledHeader is the 0b111 frame marker followed by full global brightness.
const ledHeader = 0xFF

var startFrame = [4]byte{}

// Dotstar encodes frames in the APA102 wire format:
//
//	00 00 00 00 | FF b g r | ... | ⌈n/8⌉ × 00
//
// Colors are gamma corrected for the LEDs before encoding.
type Dotstar struct {
	w   io.Writer
	led [4]byte
	end []byte
}

// NewDotstar returns an encoder writing to w.
func NewDotstar(w io.Writer) *Dotstar {
	return &Dotstar{w: w}
}

// Send writes one complete frame. The first write error aborts the frame
// and is returned.
func (d *Dotstar) Send(frame []color.RGB) error {
	if err := d.write(startFrame[:]); err != nil {
		return fmt.Errorf("writing start frame: %w", err)
	}
	for i, c := range frame {
		c = c.CorrectGamma()
		d.led = [4]byte{ledHeader, c.B, c.G, c.R}
		if err := d.write(d.led[:]); err != nil {
			return fmt.Errorf("writing led %d: %w", i, err)
		}
	}
	n := intmath.CeilDiv(len(frame), 8)
	if cap(d.end) < n {
		d.end = make([]byte, n)
	}
	if err := d.write(d.end[:n]); err != nil {
		return fmt.Errorf("writing end frame: %w", err)
	}
	return nil
}

// Show implements Sink.
func (d *Dotstar) Show(frame []color.RGB) error {
	return d.Send(frame)
}

func (d *Dotstar) write(p []byte) error {
	if len(p) == 0 {
		return nil
	}
	n, err := d.w.Write(p)
	if err != nil {
		return err
	}
	if n < len(p) {
		return ErrShortWrite
	}
	return nil
}
