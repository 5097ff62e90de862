package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/olivier-w/dotstar/internal/color"
	"github.com/olivier-w/dotstar/internal/show"
	"github.com/olivier-w/dotstar/internal/strip"
)

// Model is the Bubbletea model for the interactive demo. Keys emulate the
// mode switch and the three knobs; the strip is drawn as a row of dots.
type Model struct {
	demo   *show.Demo
	frame  []color.RGB
	delay  time.Duration
	gen    int
	mirror strip.Sink
	log    logrus.FieldLogger

	keys      keyMap
	help      help.Model
	gauges    [show.NumKnobs]gauge
	animating bool

	width    int
	err      error
	quitting bool
}

// New creates a Model driving demo over a strip of the given length. When
// mirror is non-nil every frame is also sent to it, so the demo can drive
// real hardware.
func New(demo *show.Demo, lights int, mirror strip.Sink, log logrus.FieldLogger) Model {
	m := Model{
		demo:   demo,
		frame:  make([]color.RGB, lights),
		mirror: mirror,
		log:    log,
		keys:   defaultKeyMap(),
		help:   help.New(),
	}
	for i := range m.gauges {
		m.gauges[i] = newGauge()
	}
	return m
}

// Err returns the sink error that ended the program, if any.
func (m Model) Err() error { return m.err }

func (m Model) Init() tea.Cmd {
	return func() tea.Msg { return tickMsg{gen: 0} }
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
		}
		if msg.String() == "?" {
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
		ev, ok := m.keys.eventFor(msg)
		if !ok {
			return m, nil
		}
		return m.handleEvent(ev)

	case tickMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		return m.advance()

	case animMsg:
		moving := false
		for i := range m.gauges {
			if m.gauges[i].step() {
				moving = true
			}
		}
		m.animating = moving
		if moving {
			return m, animCmd()
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	}
	return m, nil
}

// advance renders the next frame and schedules the tick after it.
func (m Model) advance() (Model, tea.Cmd) {
	m.delay = m.demo.Next(m.frame)
	if err := m.show(); err != nil {
		return m.fail(err)
	}
	m.gen++
	return m, m.schedule()
}

func (m Model) schedule() tea.Cmd {
	if m.delay == show.Forever {
		return nil
	}
	return tickCmd(m.delay, m.gen)
}

func (m Model) handleEvent(ev show.Event) (Model, tea.Cmd) {
	switch ev.Kind {
	case show.KnobLeft:
		m.gauges[ev.Knob].turn(-1)
	case show.KnobRight:
		m.gauges[ev.Knob].turn(1)
	case show.KnobButton:
		m.gauges[ev.Knob].press()
	}
	var anim tea.Cmd
	if ev.Kind >= show.KnobLeft && !m.animating {
		m.animating = true
		anim = animCmd()
	}

	if m.demo.Handle(m.frame, ev) {
		if m.log != nil {
			m.log.WithField("mode", m.demo.Mode()).Info("mode changed")
		}
		next, cmd := m.advance()
		return next, tea.Batch(cmd, anim, tea.SetWindowTitle(windowTitle(next.demo.Mode())))
	}
	if err := m.show(); err != nil {
		return m.fail(err)
	}
	return m, anim
}

func (m Model) show() error {
	if m.mirror == nil {
		return nil
	}
	return m.mirror.Show(m.frame)
}

func (m Model) fail(err error) (Model, tea.Cmd) {
	if m.log != nil {
		m.log.WithError(err).WithField("mode", m.demo.Mode()).Error("sink failed")
	}
	m.err = fmt.Errorf("showing frame: %w", err)
	m.quitting = true
	return m, tea.Quit
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	w := m.width
	if w < 30 {
		w = 60
	}

	var b strings.Builder
	b.WriteString("\n  " + headerStyle.Render("dotstar") + "\n\n")
	b.WriteString("  " + renderLights(m.frame, w-4) + "\n\n")

	status := modeStyle.Render(m.demo.Mode().String())
	if s := m.demo.Active(); s != nil {
		status += "  " + settingsStyle.Render(s.Settings())
	}
	status += "  " + timeStyle.Render(formatDelay(m.delay))
	b.WriteString("  " + status + "\n\n")

	barWidth := min(w-14, 40)
	for i, g := range m.gauges {
		fmt.Fprintf(&b, "  %s %s\n", labelStyle.Render(fmt.Sprintf("knob %d", i)), g.view(barWidth))
	}

	if m.err != nil {
		b.WriteString("\n  " + errStyle.Render(m.err.Error()) + "\n")
	}
	b.WriteString("\n  " + m.help.View(m.keys) + "\n")
	return b.String()
}

func formatDelay(d time.Duration) string {
	if d == show.Forever {
		return "static"
	}
	return d.String()
}

func windowTitle(mode show.Mode) string {
	return "dotstar · " + mode.String()
}
