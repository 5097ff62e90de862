package strip

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olivier-w/dotstar/internal/color"
)

func TestProfileFromEnv(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want Profile
	}{
		{"no color wins", map[string]string{"NO_COLOR": "", "COLORTERM": "truecolor"}, ProfileNone},
		{"truecolor", map[string]string{"COLORTERM": "truecolor", "TERM": "xterm"}, ProfileTrueColor},
		{"24bit", map[string]string{"COLORTERM": "24BIT"}, ProfileTrueColor},
		{"256", map[string]string{"TERM": "xterm-256color"}, ProfileANSI256},
		{"dumb", map[string]string{"TERM": "dumb"}, ProfileNone},
		{"unset", map[string]string{}, ProfileNone},
		{"basic", map[string]string{"TERM": "vt100"}, ProfileANSI16},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lookup := func(k string) (string, bool) {
				v, ok := tt.env[k]
				return v, ok
			}
			assert.Equal(t, tt.want, profileFromEnv(lookup))
		})
	}
}

func TestANSITrueColor(t *testing.T) {
	var buf bytes.Buffer
	a := NewANSIProfile(&buf, ProfileTrueColor)
	frame := []color.RGB{{R: 1, G: 2, B: 3}, {R: 1, G: 2, B: 3}, {R: 255}}
	require.NoError(t, a.Show(frame))
	assert.Equal(t, "\r\x1b[38;2;1;2;3m⬤ ⬤ \x1b[38;2;255;0;0m⬤\x1b[0m", buf.String())
}

func TestANSINoColor(t *testing.T) {
	var buf bytes.Buffer
	a := NewANSIProfile(&buf, ProfileNone)
	require.NoError(t, a.Show(make([]color.RGB, 3)))
	assert.Equal(t, "\r⬤ ⬤ ⬤", buf.String())
	require.NoError(t, a.Close())
	assert.Equal(t, "\r⬤ ⬤ ⬤\n", buf.String())
}

func TestANSISequences(t *testing.T) {
	assert.Equal(t, "\x1b[38;5;196m", sequence(ProfileANSI256, color.RGB{R: 255}))
	assert.Equal(t, "\x1b[38;5;16m", sequence(ProfileANSI256, color.Black))
	assert.Equal(t, "\x1b[31m", sequence(ProfileANSI16, color.RGB{R: 200, G: 50, B: 50}))
	assert.Equal(t, "\x1b[37m", sequence(ProfileANSI16, color.RGB{R: 250, G: 250, B: 250}))
	assert.Equal(t, "", sequence(ProfileNone, color.RGB{R: 9}))
}

func TestANSIWriteError(t *testing.T) {
	boom := errors.New("closed")
	a := NewANSIProfile(&failingWriter{err: boom}, ProfileTrueColor)
	require.ErrorIs(t, a.Show(make([]color.RGB, 2)), boom)
}
