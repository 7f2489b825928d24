package tabbar

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/zjrosen/tabbar/internal/ui/canvas"
)

// closableBar is three shrink tabs laid out at x=0..7, 7..14, 14..21 with
// close slots at 4..6, 11..13, 18..20.
func closableBar() (Model[string], Layout) {
	m := New[string](nil).
		Width(Shrink).
		OnClose(Closed[string]).
		Push("a", TextLabel("aaa")).
		Push("b", TextLabel("bbb")).
		Push("c", TextLabel("ccc"))
	return m, m.Layout(Limits{})
}

func press(x, y int) Event {
	return Event{Kind: MousePressed, Button: ButtonLeft, Cursor: CursorAt(x, y)}
}

func TestOnEvent_SelectsTab(t *testing.T) {
	m, l := closableBar()

	outcome, status := m.OnEvent(press(8, 0), l)

	require.Equal(t, Captured, status)
	require.Equal(t, Select("b"), outcome)
}

func TestOnEvent_ClosesTab(t *testing.T) {
	m, l := closableBar()

	outcome, status := m.OnEvent(press(11, 0), l)

	require.Equal(t, Captured, status)
	require.Equal(t, Close("b"), outcome)
}

func TestOnEvent_CloseDisabledSelects(t *testing.T) {
	m := New[string](nil).Width(Shrink).Push("a", TextLabel("aaa"))
	l := m.Layout(Limits{})

	for x := range l.Tabs[0].Bounds.W {
		outcome, status := m.OnEvent(press(x, 0), l)
		require.Equal(t, Captured, status)
		require.Equal(t, Select("a"), outcome, "x=%d", x)
	}
}

func TestOnEvent_FingerPress(t *testing.T) {
	m, l := closableBar()

	outcome, status := m.OnEvent(Event{Kind: FingerPressed, Cursor: CursorAt(15, 0)}, l)

	require.Equal(t, Captured, status)
	require.Equal(t, Select("c"), outcome)
}

func TestOnEvent_Ignored(t *testing.T) {
	m, l := closableBar()

	tests := []struct {
		name string
		ev   Event
	}{
		{name: "release", ev: Event{Kind: MouseReleased, Button: ButtonLeft, Cursor: CursorAt(1, 0)}},
		{name: "move", ev: Event{Kind: MouseMoved, Cursor: CursorAt(1, 0)}},
		{name: "key", ev: Event{Kind: KeyPressed, Cursor: CursorAt(1, 0)}},
		{name: "right button", ev: Event{Kind: MousePressed, Button: ButtonRight, Cursor: CursorAt(1, 0)}},
		{name: "no cursor", ev: Event{Kind: MousePressed, Button: ButtonLeft}},
		{name: "no cursor at a tab position", ev: Event{Kind: MousePressed, Button: ButtonLeft, Cursor: Cursor{X: 1, Y: 0}}},
		{name: "outside bar", ev: press(30, 0)},
		{name: "below bar", ev: press(1, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome, status := m.OnEvent(tt.ev, l)
			require.Equal(t, Ignored, status)
			require.True(t, outcome.IsNone())
		})
	}
}

func TestOnEvent_InsideBarBetweenTabs(t *testing.T) {
	m := New[string](nil).
		Width(Fixed(30)).
		Spacing(2).
		Push("a", TextLabel("a")).
		Push("b", TextLabel("b"))
	l := m.Layout(Limits{})

	_, status := m.OnEvent(press(3, 0), l)
	require.Equal(t, Ignored, status, "gap between tabs")

	_, status = m.OnEvent(press(20, 0), l)
	require.Equal(t, Ignored, status, "empty bar space")
}

func TestOnEvent_ClippedTabNeverHit(t *testing.T) {
	m := New[string](nil).
		Width(Fixed(4)).
		Push("a", TextLabel("aa")).
		Push("b", TextLabel("bb"))
	l := m.Layout(Limits{})

	outcome, status := m.OnEvent(press(3, 0), l)

	require.Equal(t, Captured, status)
	require.Equal(t, Select("a"), outcome)
}

func TestOnEvent_FirstHitWins(t *testing.T) {
	m := New[string](nil).Push("a", TextLabel("a")).Push("b", TextLabel("b"))
	l := Layout{
		Bounds: rect(0, 0, 10, 1),
		Tabs: []TabLayout{
			{Bounds: rect(0, 0, 5, 1)},
			{Bounds: rect(0, 0, 5, 1)},
		},
	}

	outcome, _ := m.OnEvent(press(2, 0), l)

	require.Equal(t, Select("a"), outcome)
}

func TestOnEvent_MissingCloseAreaPanics(t *testing.T) {
	m := New[string](nil).OnClose(Closed[string]).Push("a", TextLabel("a"))
	l := Layout{
		Bounds: rect(0, 0, 5, 1),
		Tabs:   []TabLayout{{Bounds: rect(0, 0, 5, 1), HasText: true}},
	}

	require.Panics(t, func() { m.OnEvent(press(1, 0), l) })
}

func TestOnEvent_DoesNotChangeSelection(t *testing.T) {
	m, l := closableBar()

	_, _ = m.OnEvent(press(15, 0), l)

	require.Equal(t, 0, m.ActiveIndex())
}

func TestMouseInteraction(t *testing.T) {
	m, l := closableBar()

	require.Equal(t, InteractionPointer, m.MouseInteraction(l, CursorAt(1, 0)))
	require.Equal(t, InteractionPointer, m.MouseInteraction(l, CursorAt(12, 0)), "close glyph is part of the tab")
	require.Equal(t, InteractionDefault, m.MouseInteraction(l, CursorAt(40, 0)))
	require.Equal(t, InteractionDefault, m.MouseInteraction(l, Cursor{X: 1}), "unavailable cursor")
	require.Equal(t, "pointer", InteractionPointer.String())
}

func TestCursorIn(t *testing.T) {
	r := canvas.Rect{X: 2, Y: 1, W: 3, H: 2}

	require.True(t, CursorAt(2, 1).In(r))
	require.True(t, CursorAt(4, 2).In(r))
	require.False(t, CursorAt(5, 1).In(r), "right edge is exclusive")
	require.False(t, Cursor{X: 3, Y: 1}.In(r), "unavailable cursor is never inside")
	require.Equal(t, canvas.Point{X: 4, Y: 2}, CursorAt(4, 2).Point())
}

func TestOnEvent_HitMatchesInteraction(t *testing.T) {
	m, l := closableBar()

	rapid.Check(t, func(t *rapid.T) {
		x := rapid.IntRange(-2, 25).Draw(t, "x")
		y := rapid.IntRange(-1, 2).Draw(t, "y")

		_, status := m.OnEvent(press(x, y), l)
		pointer := m.MouseInteraction(l, CursorAt(x, y)) == InteractionPointer
		if (status == Captured) != pointer {
			t.Fatalf("at (%d,%d) status=%v pointer=%v", x, y, status, pointer)
		}
	})
}
