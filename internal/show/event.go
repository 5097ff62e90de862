package show

import "fmt"

// EventKind enumerates the control surface.
type EventKind uint8

const (
	ModeSelect EventKind = iota
	ModeNext
	ModePrev
	KnobLeft
	KnobRight
	KnobButton
)

func (k EventKind) String() string {
	switch k {
	case ModeSelect:
		return "mode-select"
	case ModeNext:
		return "mode-next"
	case ModePrev:
		return "mode-prev"
	case KnobLeft:
		return "knob-left"
	case KnobRight:
		return "knob-right"
	case KnobButton:
		return "knob-button"
	}
	return fmt.Sprintf("EventKind(%d)", uint8(k))
}

// Event is one control input. Knob is used by the knob kinds and Mode by
// ModeSelect.
type Event struct {
	Kind EventKind
	Knob Knob
	Mode Mode
}

func (e Event) String() string {
	switch e.Kind {
	case ModeSelect:
		return fmt.Sprintf("%v %v", e.Kind, e.Mode)
	case KnobLeft, KnobRight, KnobButton:
		return fmt.Sprintf("%v %d", e.Kind, e.Knob)
	}
	return e.Kind.String()
}

// Select returns a ModeSelect event for m.
func Select(m Mode) Event { return Event{Kind: ModeSelect, Mode: m} }

// Left returns a one-click left turn of k.
func Left(k Knob) Event { return Event{Kind: KnobLeft, Knob: k} }

// Right returns a one-click right turn of k.
func Right(k Knob) Event { return Event{Kind: KnobRight, Knob: k} }

// Button returns a press of k.
func Button(k Knob) Event { return Event{Kind: KnobButton, Knob: k} }
