package ui

import (
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"

	"github.com/olivier-w/dotstar/internal/color"
)

const dot = "⬤"

// renderLights draws the frame as rows of colored dots that fit in width
// columns. Each dot takes two columns.
func renderLights(frame []color.RGB, width int) string {
	perRow := max(width/2, 1)
	var sb strings.Builder
	for i, c := range frame {
		if i > 0 {
			if i%perRow == 0 {
				sb.WriteString("\n  ")
			} else {
				sb.WriteByte(' ')
			}
		}
		sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Render(dot))
	}
	return sb.String()
}

const (
	gaugeStep   = 0.1
	gaugeCenter = 0.5
	settleEps   = 1e-3
)

// gauge is a bar that springs toward the position of an emulated knob.
// Turning moves the target a step; pressing recenters it.
type gauge struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
	target float64
	bar    progress.Model
}

func newGauge() gauge {
	return gauge{
		spring: harmonica.NewSpring(harmonica.FPS(animFPS), 6.0, 0.5),
		pos:    gaugeCenter,
		target: gaugeCenter,
		bar: progress.New(
			progress.WithScaledGradient("#FF8C00", "#FF5F1F"),
			progress.WithoutPercentage(),
		),
	}
}

func (g *gauge) turn(clicks int) {
	g.target = math.Min(1, math.Max(0, g.target+float64(clicks)*gaugeStep))
}

func (g *gauge) press() {
	g.target = gaugeCenter
}

// step advances the spring one animation frame and reports whether the
// gauge is still moving.
func (g *gauge) step() bool {
	g.pos, g.vel = g.spring.Update(g.pos, g.vel, g.target)
	if math.Abs(g.pos-g.target) < settleEps && math.Abs(g.vel) < settleEps {
		g.pos, g.vel = g.target, 0
		return false
	}
	return true
}

func (g gauge) view(width int) string {
	g.bar.Width = max(width, 10)
	return g.bar.ViewAs(math.Min(1, math.Max(0, g.pos)))
}
