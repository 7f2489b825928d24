package tabbar

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/tabbar/internal/log"
	"github.com/zjrosen/tabbar/internal/pubsub"
	"github.com/zjrosen/tabbar/internal/ui/canvas"
)

// Zone sets the bubblezone id the bar is marked with in View. While set,
// Update reads the bar's screen position from the zone instead of the
// origin passed to SetOrigin.
func (m Model[ID]) Zone(id string) Model[ID] {
	m.zoneID = id
	return m
}

// ZoneID returns the bubblezone id, or "" when zones are not used.
func (m Model[ID]) ZoneID() string { return m.zoneID }

// syncZone moves the origin to where the zone manager last saw the bar.
func (m Model[ID]) syncZone() Model[ID] {
	if m.zoneID == "" {
		return m
	}
	z := zone.Get(m.zoneID)
	if z == nil || z.IsZero() {
		return m
	}
	m.origin = canvas.Point{X: z.StartX, Y: z.StartY}
	return m
}

// Update handles mouse and, while focused, key input. The bar never changes
// its own selection; outcomes become messages from the select and close
// callbacks.
func (m Model[ID]) Update(msg tea.Msg) (Model[ID], tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model[ID]) handleMouse(msg tea.MouseMsg) (Model[ID], tea.Cmd) {
	m = m.syncZone()
	m.cursor = CursorAt(msg.X, msg.Y)

	ev, ok := translateMouse(msg)
	if !ok {
		return m, nil
	}

	outcome, status := m.OnEvent(ev, m.Layout(m.limits()))
	if status == Ignored {
		return m, nil
	}
	return m, m.emit(outcome)
}

func translateMouse(msg tea.MouseMsg) (Event, bool) {
	ev := Event{Cursor: CursorAt(msg.X, msg.Y)}

	switch msg.Button {
	case tea.MouseButtonLeft:
		ev.Button = ButtonLeft
	case tea.MouseButtonMiddle:
		ev.Button = ButtonMiddle
	case tea.MouseButtonRight:
		ev.Button = ButtonRight
	case tea.MouseButtonNone:
		ev.Button = ButtonNone
	default:
		return Event{}, false
	}

	switch msg.Action {
	case tea.MouseActionPress:
		ev.Kind = MousePressed
	case tea.MouseActionRelease:
		ev.Kind = MouseReleased
	case tea.MouseActionMotion:
		ev.Kind = MouseMoved
	default:
		return Event{}, false
	}
	return ev, true
}

func (m Model[ID]) handleKey(msg tea.KeyMsg) (Model[ID], tea.Cmd) {
	n := len(m.entries)
	if !m.focused || n == 0 {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Prev):
		return m, m.emit(Select(m.entries[(m.activeTab-1+n)%n].ID))
	case key.Matches(msg, m.keys.Next):
		return m, m.emit(Select(m.entries[(m.activeTab+1)%n].ID))
	case key.Matches(msg, m.keys.Close):
		if m.onClose == nil {
			return m, nil
		}
		return m, m.emit(Close(m.entries[m.activeTab].ID))
	}
	return m, nil
}

// emit publishes o and returns the command delivering the callback's
// message.
func (m Model[ID]) emit(o Outcome[ID]) tea.Cmd {
	var (
		fn        func(ID) tea.Msg
		eventType pubsub.EventType
	)
	switch o.Kind {
	case OutcomeSelect:
		fn, eventType = m.onSelect, pubsub.SelectedEvent
	case OutcomeClose:
		fn, eventType = m.onClose, pubsub.ClosedEvent
	default:
		return nil
	}

	log.Debug(log.CatTabs, "tab outcome", "kind", o.Kind, "id", o.ID)
	if m.publisher != nil {
		m.publisher.Publish(eventType, o)
	}
	if fn == nil {
		return nil
	}
	id := o.ID
	return func() tea.Msg { return fn(id) }
}

// View renders the bar at the size given to SetSize.
func (m Model[ID]) View() string {
	layout := m.Layout(m.limits())
	if layout.Bounds.Empty() {
		return ""
	}

	c := canvas.New(layout.Bounds)
	m.Draw(c, layout, m.cursor)

	out := c.String()
	if m.zoneID != "" {
		out = zone.Mark(m.zoneID, out)
	}
	return out
}

// Interaction reports the pointer shape for the last cursor Update saw.
func (m Model[ID]) Interaction() Interaction {
	return m.MouseInteraction(m.Layout(m.limits()), m.cursor)
}
