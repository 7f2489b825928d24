// Package tabbar provides a horizontal strip of selectable tab labels.
//
// Each tab shows an icon, text, or both, and may carry a close glyph. One tab
// is marked active. The bar does not change its own selection: a press
// produces a Select or Close outcome that is turned into a message by the
// caller's callbacks, and the caller decides what to do with it (typically
// SetActiveTab or removing the entry).
//
// Geometry is computed by Layout, hit-tested by OnEvent and painted by Draw
// through a canvas.Renderer. Update and View wrap that cycle for Bubble Tea.
package tabbar

import (
	"slices"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/tabbar/internal/pubsub"
	"github.com/zjrosen/tabbar/internal/ui/canvas"
	"github.com/zjrosen/tabbar/internal/ui/styles"
)

// Default sizes, in cells.
const (
	DefaultIconSize  = 2
	DefaultTextSize  = 16
	DefaultCloseSize = 1
	DefaultPadding   = 1
)

// Orientation arranges the icon and text of an icon+text label.
type Orientation int

const (
	// OrientationHorizontal puts the icon left of the text on one row.
	OrientationHorizontal Orientation = iota
	// OrientationVertical puts the icon above the text.
	OrientationVertical
)

// StyleProvider resolves the appearance of the bar (selected is always false)
// or of one tab. It must be deterministic.
type StyleProvider func(style styles.TabBarStyle, hovered, selected bool) styles.TabBarAppearance

// Entry is one tab: the caller's identifier and its label.
type Entry[ID comparable] struct {
	ID    ID
	Label Label
}

// SelectedMsg is the default message for a selected tab.
type SelectedMsg[ID comparable] struct {
	ID ID
}

// ClosedMsg is the default message for a tab whose close glyph was pressed.
type ClosedMsg[ID comparable] struct {
	ID ID
}

// Selected wraps id in a SelectedMsg. It is the default select callback.
func Selected[ID comparable](id ID) tea.Msg {
	return SelectedMsg[ID]{ID: id}
}

// Closed wraps id in a ClosedMsg. Pass it to OnClose to enable closing with
// the default message.
func Closed[ID comparable](id ID) tea.Msg {
	return ClosedMsg[ID]{ID: id}
}

// Model is the tab bar. All setters use value receivers and return the
// modified copy.
type Model[ID comparable] struct {
	entries   []Entry[ID]
	activeTab int

	onSelect func(ID) tea.Msg
	onClose  func(ID) tea.Msg

	width     Length
	height    Length
	tabWidth  Length
	maxHeight int

	iconSize        int
	textSize        int
	closeSize       int
	padding         int
	verticalPadding int
	spacing         int

	iconFont    canvas.Font
	textFont    canvas.Font
	shaping     canvas.Shaping
	style       styles.TabBarStyle
	orientation Orientation
	provider    StyleProvider

	publisher pubsub.Publisher[Outcome[ID]]
	zoneID    string
	keys      KeyMap
	focused   bool

	cursor     Cursor
	origin     canvas.Point
	viewWidth  int
	viewHeight int
}

// New returns an empty tab bar. onSelect turns a selected id into a message;
// nil uses Selected.
func New[ID comparable](onSelect func(ID) tea.Msg) Model[ID] {
	if onSelect == nil {
		onSelect = Selected[ID]
	}
	return Model[ID]{
		onSelect:  onSelect,
		width:     Fill,
		height:    Shrink,
		tabWidth:  Shrink,
		iconSize:  DefaultIconSize,
		textSize:  DefaultTextSize,
		closeSize: DefaultCloseSize,
		padding:   DefaultPadding,
		shaping:   canvas.ShapingAdvanced,
		style:     styles.TabBarDefault,
		provider:  styles.ResolveTabBar,
		keys:      DefaultKeyMap(),
	}
}

// WithTabLabels returns a tab bar pre-filled with entries, in order. The
// first tab is active.
func WithTabLabels[ID comparable](entries []Entry[ID], onSelect func(ID) tea.Msg) Model[ID] {
	m := New(onSelect)
	m.entries = slices.Clone(entries)
	return m
}

// Push appends a tab.
func (m Model[ID]) Push(id ID, label Label) Model[ID] {
	m.entries = append(slices.Clip(m.entries), Entry[ID]{ID: id, Label: label})
	return m
}

// Remove drops the first tab with id. The active tab keeps its identity when
// it survives; removing the active tab activates its left neighbour, or the
// new first tab.
func (m Model[ID]) Remove(id ID) Model[ID] {
	i := m.indexOf(id)
	if i < 0 {
		return m
	}
	m.entries = slices.Delete(slices.Clone(m.entries), i, i+1)
	if i <= m.activeTab {
		m.activeTab = max(m.activeTab-1, 0)
	}
	return m
}

// SetActiveTab marks the first tab with id as active. An unknown id
// activates the first tab.
func (m Model[ID]) SetActiveTab(id ID) Model[ID] {
	m.activeTab = max(m.indexOf(id), 0)
	return m
}

func (m Model[ID]) indexOf(id ID) int {
	return slices.IndexFunc(m.entries, func(e Entry[ID]) bool { return e.ID == id })
}

// ActiveIndex returns the index of the active tab; 0 for an empty bar.
func (m Model[ID]) ActiveIndex() int { return m.activeTab }

// ActiveID returns the id of the active tab, or false for an empty bar.
func (m Model[ID]) ActiveID() (ID, bool) {
	if len(m.entries) == 0 {
		var zero ID
		return zero, false
	}
	return m.entries[m.activeTab].ID, true
}

// Size returns the number of tabs.
func (m Model[ID]) Size() int { return len(m.entries) }

// Entries returns a copy of the tabs in order.
func (m Model[ID]) Entries() []Entry[ID] { return slices.Clone(m.entries) }

// OnClose registers the close callback. A non-nil fn enables the close glyph
// on every tab; nil disables it.
func (m Model[ID]) OnClose(fn func(ID) tea.Msg) Model[ID] {
	m.onClose = fn
	return m
}

// Closable reports whether a close callback is registered.
func (m Model[ID]) Closable() bool { return m.onClose != nil }

// Width sets the bar width.
func (m Model[ID]) Width(l Length) Model[ID] {
	m.width = l
	return m
}

// Height sets the bar height.
func (m Model[ID]) Height(l Length) Model[ID] {
	m.height = l
	return m
}

// TabWidth sets the width of every tab.
func (m Model[ID]) TabWidth(l Length) Model[ID] {
	m.tabWidth = l
	return m
}

// MaxHeight caps the bar height. 0 means no cap.
func (m Model[ID]) MaxHeight(cells int) Model[ID] {
	m.maxHeight = max(cells, 0)
	return m
}

// IconSize sets the cells reserved for an icon. 0 sizes each icon to its
// glyph's own width.
func (m Model[ID]) IconSize(cells int) Model[ID] {
	m.iconSize = max(cells, 0)
	return m
}

// TextSize caps the cells a label's text may use; longer text is truncated
// with an ellipsis. 0 means no cap.
func (m Model[ID]) TextSize(cells int) Model[ID] {
	m.textSize = max(cells, 0)
	return m
}

// CloseSize sets the size of the close glyph. Its slot is one cell wider.
func (m Model[ID]) CloseSize(cells int) Model[ID] {
	m.closeSize = max(cells, 0)
	return m
}

// Padding sets the columns between a tab's edge and its content.
func (m Model[ID]) Padding(cells int) Model[ID] {
	m.padding = max(cells, 0)
	return m
}

// VerticalPadding sets the rows above and below a tab's content.
func (m Model[ID]) VerticalPadding(cells int) Model[ID] {
	m.verticalPadding = max(cells, 0)
	return m
}

// Spacing sets the columns between adjacent tabs.
func (m Model[ID]) Spacing(cells int) Model[ID] {
	m.spacing = max(cells, 0)
	return m
}

// IconFont sets the attributes icons are drawn with.
func (m Model[ID]) IconFont(f canvas.Font) Model[ID] {
	m.iconFont = f
	return m
}

// TextFont sets the attributes label text is drawn with.
func (m Model[ID]) TextFont(f canvas.Font) Model[ID] {
	m.textFont = f
	return m
}

// Shaping sets how label text is split into cells.
func (m Model[ID]) Shaping(s canvas.Shaping) Model[ID] {
	m.shaping = s
	return m
}

// Style sets the style token handed to the style provider.
func (m Model[ID]) Style(s styles.TabBarStyle) Model[ID] {
	m.style = s
	return m
}

// Orientation sets how icon+text labels are arranged.
func (m Model[ID]) Orientation(o Orientation) Model[ID] {
	m.orientation = o
	return m
}

// StyleProvider replaces the appearance resolver. nil restores the default.
func (m Model[ID]) StyleProvider(p StyleProvider) Model[ID] {
	if p == nil {
		p = styles.ResolveTabBar
	}
	m.provider = p
	return m
}

// Publisher sets where Update publishes outcomes. nil disables publishing.
func (m Model[ID]) Publisher(p pubsub.Publisher[Outcome[ID]]) Model[ID] {
	m.publisher = p
	return m
}

// KeyMap replaces the key bindings.
func (m Model[ID]) KeyMap(k KeyMap) Model[ID] {
	m.keys = k
	return m
}

// Keys returns the key bindings, for help rendering.
func (m Model[ID]) Keys() KeyMap { return m.keys }

// Focus makes Update respond to key bindings.
func (m Model[ID]) Focus() Model[ID] {
	m.focused = true
	return m
}

// Blur stops Update responding to key bindings.
func (m Model[ID]) Blur() Model[ID] {
	m.focused = false
	return m
}

// Focused reports whether the bar takes key input.
func (m Model[ID]) Focused() bool { return m.focused }

// SetOrigin places the bar's top-left corner on screen. It is overridden by
// the zone position when a zone is set.
func (m Model[ID]) SetOrigin(x, y int) Model[ID] {
	m.origin = canvas.Point{X: x, Y: y}
	return m
}

// Origin returns the bar's top-left corner on screen.
func (m Model[ID]) Origin() canvas.Point { return m.origin }

// SetSize sets the space View lays the bar out in. 0 means unbounded.
func (m Model[ID]) SetSize(width, height int) Model[ID] {
	m.viewWidth = max(width, 0)
	m.viewHeight = max(height, 0)
	return m
}

// GetWidth returns the configured bar width.
func (m Model[ID]) GetWidth() Length { return m.width }

// GetHeight returns the configured bar height.
func (m Model[ID]) GetHeight() Length { return m.height }

// Cursor returns the last pointer position Update saw.
func (m Model[ID]) Cursor() Cursor { return m.cursor }

// limits are the bounds View and Update lay the bar out in.
func (m Model[ID]) limits() Limits {
	return Limits{MaxWidth: m.viewWidth, MaxHeight: m.viewHeight}
}
