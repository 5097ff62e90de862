package strip

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/olivier-w/dotstar/internal/color"
)

// Profile is the color depth a terminal supports.
type Profile uint8

const (
	ProfileNone Profile = iota
	ProfileANSI16
	ProfileANSI256
	ProfileTrueColor
)

const dot = "⬤"

var (
	profileOnce sync.Once
	profile     Profile
	seqCache    sync.Map
)

// DetectProfile inspects NO_COLOR, COLORTERM and TERM once per process.
func DetectProfile() Profile {
	profileOnce.Do(func() {
		profile = profileFromEnv(os.LookupEnv)
	})
	return profile
}

func profileFromEnv(lookup func(string) (string, bool)) Profile {
	if _, disabled := lookup("NO_COLOR"); disabled {
		return ProfileNone
	}
	term, _ := lookup("TERM")
	colorTerm, _ := lookup("COLORTERM")
	term = strings.ToLower(term)
	colorTerm = strings.ToLower(colorTerm)
	switch {
	case strings.Contains(colorTerm, "truecolor"), strings.Contains(colorTerm, "24bit"):
		return ProfileTrueColor
	case strings.Contains(term, "256color"):
		return ProfileANSI256
	case term == "", term == "dumb":
		return ProfileNone
	}
	return ProfileANSI16
}

// ANSI draws each frame as one line of colored dots, redrawn in place.
type ANSI struct {
	w       io.Writer
	profile Profile
	sb      strings.Builder
}

// NewANSI returns a terminal sink for w using the detected color profile.
func NewANSI(w io.Writer) *ANSI {
	return NewANSIProfile(w, DetectProfile())
}

// NewANSIProfile returns a terminal sink with a fixed color profile.
func NewANSIProfile(w io.Writer, p Profile) *ANSI {
	return &ANSI{w: w, profile: p}
}

func (a *ANSI) Show(frame []color.RGB) error {
	a.sb.Reset()
	a.sb.WriteString("\r")
	current := ^uint32(0)
	for i, c := range frame {
		if i > 0 {
			a.sb.WriteByte(' ')
		}
		if a.profile != ProfileNone {
			key := uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
			if key != current {
				a.sb.WriteString(sequence(a.profile, c))
				current = key
			}
		}
		a.sb.WriteString(dot)
	}
	if a.profile != ProfileNone && current != ^uint32(0) {
		a.sb.WriteString("\x1b[0m")
	}
	if _, err := io.WriteString(a.w, a.sb.String()); err != nil {
		return fmt.Errorf("drawing frame: %w", err)
	}
	return nil
}

// Close ends the line so the shell prompt starts below the strip.
func (a *ANSI) Close() error {
	_, err := io.WriteString(a.w, "\n")
	return err
}

var palette16 = [8]color.RGB{
	{R: 0, G: 0, B: 0},
	{R: 205, G: 49, B: 49},
	{R: 13, G: 188, B: 121},
	{R: 229, G: 229, B: 16},
	{R: 36, G: 114, B: 200},
	{R: 188, G: 63, B: 188},
	{R: 17, G: 168, B: 205},
	{R: 229, G: 229, B: 229},
}

func sequence(p Profile, c color.RGB) string {
	key := uint32(p)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
	if seq, ok := seqCache.Load(key); ok {
		return seq.(string)
	}

	var seq string
	switch p {
	case ProfileTrueColor:
		seq = fmt.Sprintf("\x1b[38;2;%d;%d;%dm", c.R, c.G, c.B)
	case ProfileANSI256:
		r := int(c.R) * 5 / 255
		g := int(c.G) * 5 / 255
		b := int(c.B) * 5 / 255
		seq = fmt.Sprintf("\x1b[38;5;%dm", 16+36*r+6*g+b)
	case ProfileANSI16:
		best, bestDist := 0, -1
		for i, q := range palette16 {
			dr := int(c.R) - int(q.R)
			dg := int(c.G) - int(q.G)
			db := int(c.B) - int(q.B)
			if d := dr*dr + dg*dg + db*db; bestDist < 0 || d < bestDist {
				best, bestDist = i, d
			}
		}
		seq = fmt.Sprintf("\x1b[%dm", 30+best)
	}

	seqCache.Store(key, seq)
	return seq
}
