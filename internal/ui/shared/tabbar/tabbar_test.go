package tabbar

import (
	"os"
	"testing"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/tabbar/internal/ui/icons"
	"github.com/zjrosen/tabbar/internal/ui/styles"
)

// TestMain initializes the global zone manager and pins the color profile
// for all tests in this package.
func TestMain(m *testing.M) {
	zone.NewGlobal()
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func threeTabs() Model[string] {
	return New[string](nil).
		Push("one", TextLabel("abc")).
		Push("two", IconLabel(icons.Star)).
		Push("three", IconTextLabel(icons.File, "xyz"))
}

func TestNew_Defaults(t *testing.T) {
	m := New[int](nil)

	require.Equal(t, 0, m.Size())
	require.Equal(t, 0, m.ActiveIndex())
	require.True(t, m.GetWidth().IsFill())
	require.True(t, m.GetHeight().IsShrink())
	require.False(t, m.Closable())
	require.False(t, m.Focused())
	require.Equal(t, DefaultIconSize, m.iconSize)
	require.Equal(t, DefaultTextSize, m.textSize)
	require.Equal(t, DefaultCloseSize, m.closeSize)
	require.Equal(t, DefaultPadding, m.padding)
	require.Equal(t, 0, m.verticalPadding)
	require.Equal(t, 0, m.spacing)
	require.Equal(t, styles.TabBarDefault, m.style)

	_, ok := m.ActiveID()
	require.False(t, ok, "empty bar has no active id")
}

func TestNew_DefaultSelectMessage(t *testing.T) {
	m := New[int](nil)
	require.Equal(t, SelectedMsg[int]{ID: 7}, m.onSelect(7))
}

func TestWithTabLabels(t *testing.T) {
	entries := []Entry[int]{
		{ID: 1, Label: TextLabel("a")},
		{ID: 2, Label: TextLabel("b")},
	}
	m := WithTabLabels(entries, nil)

	entries[0].ID = 99
	require.Equal(t, 2, m.Size())
	require.Equal(t, 1, m.Entries()[0].ID, "bar keeps its own copy of the entries")
}

func TestPush_AppendsInOrder(t *testing.T) {
	m := threeTabs()

	require.Equal(t, 3, m.Size())
	ids := make([]string, 0, 3)
	for _, e := range m.Entries() {
		ids = append(ids, e.ID)
	}
	require.Equal(t, []string{"one", "two", "three"}, ids)
	require.Equal(t, KindIconText, m.Entries()[2].Label.Kind())
}

func TestPush_DoesNotAliasEarlierCopies(t *testing.T) {
	base := New[int](nil).Push(1, TextLabel("a"))
	left := base.Push(2, TextLabel("b"))
	right := base.Push(3, TextLabel("c"))

	require.Equal(t, 1, base.Size())
	require.Equal(t, 2, left.Entries()[1].ID)
	require.Equal(t, 3, right.Entries()[1].ID)
}

func TestSetActiveTab(t *testing.T) {
	m := threeTabs().SetActiveTab("three")
	require.Equal(t, 2, m.ActiveIndex())

	id, ok := m.ActiveID()
	require.True(t, ok)
	require.Equal(t, "three", id)
}

func TestSetActiveTab_UnknownIDSelectsFirst(t *testing.T) {
	m := threeTabs().SetActiveTab("two").SetActiveTab("missing")
	require.Equal(t, 0, m.ActiveIndex())
}

func TestSetActiveTab_FirstMatchingDuplicate(t *testing.T) {
	m := New[string](nil).
		Push("a", TextLabel("1")).
		Push("b", TextLabel("2")).
		Push("b", TextLabel("3")).
		SetActiveTab("b")
	require.Equal(t, 1, m.ActiveIndex())
}

func TestSetActiveTab_EmptyBar(t *testing.T) {
	m := New[string](nil).SetActiveTab("x")
	require.Equal(t, 0, m.ActiveIndex())
}

func TestRemove(t *testing.T) {
	tests := []struct {
		name       string
		active     string
		remove     string
		wantActive string
		wantSize   int
	}{
		{name: "before active keeps identity", active: "three", remove: "one", wantActive: "three", wantSize: 2},
		{name: "after active keeps identity", active: "one", remove: "three", wantActive: "one", wantSize: 2},
		{name: "active moves left", active: "two", remove: "two", wantActive: "one", wantSize: 2},
		{name: "first active moves to new first", active: "one", remove: "one", wantActive: "two", wantSize: 2},
		{name: "unknown is a no-op", active: "two", remove: "nope", wantActive: "two", wantSize: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := threeTabs().SetActiveTab(tt.active).Remove(tt.remove)
			require.Equal(t, tt.wantSize, m.Size())
			id, ok := m.ActiveID()
			require.True(t, ok)
			require.Equal(t, tt.wantActive, id)
		})
	}
}

func TestRemove_LastTab(t *testing.T) {
	m := New[int](nil).Push(1, TextLabel("a")).Remove(1)
	require.Equal(t, 0, m.Size())
	require.Equal(t, 0, m.ActiveIndex())
}

func TestSetters_ReturnCopies(t *testing.T) {
	base := threeTabs()
	changed := base.
		Padding(3).
		Spacing(2).
		IconSize(4).
		TextSize(0).
		CloseSize(2).
		VerticalPadding(1).
		MaxHeight(5).
		Width(Fixed(40)).
		Height(Fixed(3)).
		TabWidth(Fill).
		Style(styles.TabBarBlue).
		Orientation(OrientationVertical).
		Focus()

	require.Equal(t, DefaultPadding, base.padding, "original untouched")
	require.False(t, base.Focused())
	require.Equal(t, 3, changed.padding)
	require.Equal(t, 2, changed.spacing)
	require.Equal(t, 4, changed.iconSize)
	require.Equal(t, 0, changed.textSize)
	require.Equal(t, 2, changed.closeSize)
	require.Equal(t, 1, changed.verticalPadding)
	require.Equal(t, 5, changed.maxHeight)
	require.Equal(t, Fixed(40), changed.GetWidth())
	require.Equal(t, Fixed(3), changed.GetHeight())
	require.True(t, changed.tabWidth.IsFill())
	require.Equal(t, styles.TabBarBlue, changed.style)
	require.Equal(t, OrientationVertical, changed.orientation)
	require.True(t, changed.Focused())
	require.False(t, changed.Blur().Focused())
}

func TestSetters_ClampNegative(t *testing.T) {
	m := New[int](nil).Padding(-1).Spacing(-3).IconSize(-2).SetSize(-5, -5)
	require.Equal(t, 0, m.padding)
	require.Equal(t, 0, m.spacing)
	require.Equal(t, 0, m.iconSize)
	require.Equal(t, Limits{}, m.limits())
}

func TestOnClose_TogglesClosable(t *testing.T) {
	m := threeTabs().OnClose(Closed[string])
	require.True(t, m.Closable())
	require.Equal(t, ClosedMsg[string]{ID: "two"}, m.onClose("two"))

	require.False(t, m.OnClose(nil).Closable())
}

func TestStyleProvider_NilRestoresDefault(t *testing.T) {
	m := New[int](nil).StyleProvider(nil)
	require.NotNil(t, m.provider)
}

func TestLabel_Accessors(t *testing.T) {
	icon, ok := IconLabel(icons.Gear).Icon()
	require.True(t, ok)
	require.Equal(t, icons.Gear, icon)
	_, ok = IconLabel(icons.Gear).Text()
	require.False(t, ok)

	text, ok := TextLabel("hi").Text()
	require.True(t, ok)
	require.Equal(t, "hi", text)
	_, ok = TextLabel("hi").Icon()
	require.False(t, ok)

	l := IconTextLabel(icons.Gear, "hi")
	_, hasIcon := l.Icon()
	_, hasText := l.Text()
	require.True(t, hasIcon)
	require.True(t, hasText)
	require.Equal(t, "icon+text", l.Kind().String())
}

func TestLabel_String(t *testing.T) {
	icons.SetASCII(true)
	t.Cleanup(func() { icons.SetASCII(false) })

	require.Equal(t, "*", IconLabel(icons.Gear).String())
	require.Equal(t, "docs", TextLabel("docs").String())
	require.Equal(t, "* docs", IconTextLabel(icons.Gear, "docs").String())
}

func TestParseLength(t *testing.T) {
	tests := []struct {
		in      string
		want    Length
		wantErr bool
	}{
		{in: "", want: Shrink},
		{in: "shrink", want: Shrink},
		{in: "fill", want: Fill},
		{in: "fill-portion(3)", want: FillPortion(3)},
		{in: "fixed(12)", want: Fixed(12)},
		{in: "12", want: Fixed(12)},
		{in: "12abc", wantErr: true},
		{in: "wide", wantErr: true},
		{in: "0", want: Fixed(0)},
		{in: "fixed(0)", want: Fixed(0)},
		{in: "fill-portion(3)garbage", wantErr: true},
		{in: "fixed(4)xyz", wantErr: true},
		{in: "xfixed(4)", wantErr: true},
		{in: "fixed()", wantErr: true},
		{in: "fixed(-2)", wantErr: true},
		{in: "-3", wantErr: true},
		{in: "+3", wantErr: true},
		{in: "fill-portion(0)", wantErr: true},
		{in: "fill-portion(-1)", wantErr: true},
		{in: " fill", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLength(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestLength(t *testing.T) {
	require.Equal(t, 1, Fill.Portion())
	require.Equal(t, 4, FillPortion(4).Portion())
	require.Equal(t, 1, FillPortion(0).Portion())
	require.Equal(t, 0, Shrink.Portion())
	require.True(t, FillPortion(2).IsFill())

	cells, ok := Fixed(-3).Cells()
	require.True(t, ok)
	require.Equal(t, 0, cells)

	require.Equal(t, "fixed(5)", Fixed(5).String())
	require.Equal(t, "fill-portion(2)", FillPortion(2).String())
}
