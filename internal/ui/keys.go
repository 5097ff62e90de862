package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/olivier-w/dotstar/internal/show"
)

// knobKeys binds one knob's left turn, right turn and press.
type knobKeys struct {
	Left, Right, Press key.Binding
}

type keyMap struct {
	NextMode key.Binding
	PrevMode key.Binding
	Select   [5]key.Binding
	Knobs    [show.NumKnobs]knobKeys
	Quit     key.Binding
}

func newKnobKeys(n int, left, right, press string) knobKeys {
	label := string(rune('0' + n))
	return knobKeys{
		Left:  key.NewBinding(key.WithKeys(left), key.WithHelp(left, "knob "+label+" ←")),
		Right: key.NewBinding(key.WithKeys(right), key.WithHelp(right, "knob "+label+" →")),
		Press: key.NewBinding(key.WithKeys(press), key.WithHelp(press, "knob "+label+" press")),
	}
}

func defaultKeyMap() keyMap {
	km := keyMap{
		NextMode: key.NewBinding(key.WithKeys("m", "tab"), key.WithHelp("m", "next mode")),
		PrevMode: key.NewBinding(key.WithKeys("n", "shift+tab"), key.WithHelp("n", "prev mode")),
		Knobs: [show.NumKnobs]knobKeys{
			newKnobKeys(0, "q", "w", "e"),
			newKnobKeys(1, "a", "s", "d"),
			newKnobKeys(2, "z", "x", "c"),
		},
		Quit: key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
	}
	for i, m := range show.Modes {
		k := string(rune('0' + i))
		km.Select[i] = key.NewBinding(key.WithKeys(k), key.WithHelp(k, m.String()))
	}
	return km
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.NextMode,
		k.PrevMode,
		key.NewBinding(key.WithKeys("0"), key.WithHelp("0-4", "mode")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q/w/e a/s/d z/x/c", "knobs ← → press")),
		k.Quit,
	}
}

func (k keyMap) FullHelp() [][]key.Binding {
	rows := [][]key.Binding{{k.NextMode, k.PrevMode, k.Quit}, k.Select[:]}
	for _, kk := range k.Knobs {
		rows = append(rows, []key.Binding{kk.Left, kk.Right, kk.Press})
	}
	return rows
}

// eventFor translates a key press into a control event.
func (k keyMap) eventFor(msg tea.KeyMsg) (show.Event, bool) {
	switch {
	case key.Matches(msg, k.NextMode):
		return show.Event{Kind: show.ModeNext}, true
	case key.Matches(msg, k.PrevMode):
		return show.Event{Kind: show.ModePrev}, true
	}
	for i, b := range k.Select {
		if key.Matches(msg, b) {
			return show.Select(show.Modes[i]), true
		}
	}
	for i, kk := range k.Knobs {
		knob := show.Knob(i)
		switch {
		case key.Matches(msg, kk.Left):
			return show.Left(knob), true
		case key.Matches(msg, kk.Right):
			return show.Right(knob), true
		case key.Matches(msg, kk.Press):
			return show.Button(knob), true
		}
	}
	return show.Event{}, false
}

// EventForRune maps a single typed character to a control event using the
// demo key bindings. The line-mode front ends read commands this way.
func EventForRune(r rune) (show.Event, bool) {
	return defaultKeyMap().eventFor(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}
