package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// tickMsg advances the show. gen ties it to the schedule that created it;
// a mode change starts a new schedule and older ticks are dropped.
type tickMsg struct {
	gen int
}

type animMsg time.Time

const animFPS = 30

func tickCmd(d time.Duration, gen int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

func animCmd() tea.Cmd {
	return tea.Tick(time.Second/animFPS, func(t time.Time) tea.Msg {
		return animMsg(t)
	})
}
