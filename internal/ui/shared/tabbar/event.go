package tabbar

import (
	"fmt"

	"github.com/zjrosen/tabbar/internal/ui/canvas"
)

// EventKind is the kind of input delivered to OnEvent.
type EventKind int

const (
	MousePressed EventKind = iota
	MouseReleased
	MouseMoved
	FingerPressed
	KeyPressed
)

// Button is a mouse button.
type Button int

const (
	ButtonNone Button = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
)

// Cursor is the pointer position in screen cells. Available is false when
// the position is unknown, for example before the first mouse event.
type Cursor struct {
	X, Y      int
	Available bool
}

// CursorAt returns an available cursor at (x, y).
func CursorAt(x, y int) Cursor {
	return Cursor{X: x, Y: y, Available: true}
}

// Point returns the cursor's cell.
func (c Cursor) Point() canvas.Point {
	return canvas.Point{X: c.X, Y: c.Y}
}

// In reports whether the cursor is known and inside r.
func (c Cursor) In(r canvas.Rect) bool {
	return c.Available && r.ContainsPoint(c.Point())
}

// Event is one input event in screen cells.
type Event struct {
	Kind   EventKind
	Button Button
	Cursor Cursor
}

// OutcomeKind is what a handled event asks the caller to do.
type OutcomeKind int

const (
	OutcomeNone OutcomeKind = iota
	OutcomeSelect
	OutcomeClose
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSelect:
		return "select"
	case OutcomeClose:
		return "close"
	default:
		return "none"
	}
}

// Outcome is the result of a handled event.
type Outcome[ID comparable] struct {
	Kind OutcomeKind
	ID   ID
}

// Select is the outcome of picking the tab with id.
func Select[ID comparable](id ID) Outcome[ID] {
	return Outcome[ID]{Kind: OutcomeSelect, ID: id}
}

// Close is the outcome of pressing the close glyph of the tab with id.
func Close[ID comparable](id ID) Outcome[ID] {
	return Outcome[ID]{Kind: OutcomeClose, ID: id}
}

// IsNone reports whether o asks for nothing.
func (o Outcome[ID]) IsNone() bool { return o.Kind == OutcomeNone }

// Status tells the caller whether the event was consumed.
type Status int

const (
	Ignored Status = iota
	Captured
)

func (s Status) String() string {
	if s == Captured {
		return "captured"
	}
	return "ignored"
}

// Interaction is the pointer shape the bar asks for.
type Interaction int

const (
	InteractionDefault Interaction = iota
	InteractionPointer
)

func (i Interaction) String() string {
	if i == InteractionPointer {
		return "pointer"
	}
	return "default"
}

// OnEvent hit-tests a press against layout. A left mouse press or a finger
// press inside a tab selects it, or closes it when the press lands on the
// tab's close glyph and a close callback is registered. Everything else,
// including a press without a known cursor position, is ignored.
//
// OnEvent panics if a close callback is registered and the hit tab's layout
// has no close area: layout must come from Layout on the same configuration.
func (m Model[ID]) OnEvent(ev Event, layout Layout) (Outcome[ID], Status) {
	var none Outcome[ID]

	pressed := (ev.Kind == MousePressed && ev.Button == ButtonLeft) || ev.Kind == FingerPressed
	if !pressed || !ev.Cursor.Available {
		return none, Ignored
	}

	if !ev.Cursor.In(layout.Bounds) {
		return none, Ignored
	}

	for i, tl := range layout.Tabs {
		if !ev.Cursor.In(tl.Bounds) {
			continue
		}
		if i >= len(m.entries) {
			panic(fmt.Sprintf("tabbar: layout has %d tabs, bar has %d", len(layout.Tabs), len(m.entries)))
		}
		id := m.entries[i].ID
		if m.onClose != nil {
			if !tl.HasClose {
				panic(fmt.Sprintf("tabbar: tab %d has no close area but closing is enabled", i))
			}
			if ev.Cursor.In(tl.Close) {
				return Close(id), Captured
			}
		}
		return Select(id), Captured
	}
	return none, Ignored
}

// MouseInteraction reports InteractionPointer when cursor is over a tab.
func (m Model[ID]) MouseInteraction(layout Layout, cursor Cursor) Interaction {
	for _, tl := range layout.Tabs {
		if cursor.In(tl.Bounds) {
			return InteractionPointer
		}
	}
	return InteractionDefault
}
