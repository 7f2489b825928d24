package tabbar

import (
	"github.com/charmbracelet/x/ansi"

	"github.com/zjrosen/tabbar/internal/ui/canvas"
	"github.com/zjrosen/tabbar/internal/ui/icons"
)

// Limits is the space offered to the bar. A zero field means unbounded.
type Limits struct {
	MaxWidth  int
	MaxHeight int
}

// Layout is the computed geometry of the bar, in screen cells.
type Layout struct {
	Bounds canvas.Rect
	// Tabs has one entry per tab, in order.
	Tabs []TabLayout
}

// TabLayout is the geometry of one tab. Label is the block holding the icon
// and text; Icon, Text and Close are only meaningful when the matching Has
// flag is set. A tab pushed entirely past the bar's right edge has empty
// rects.
type TabLayout struct {
	Bounds canvas.Rect
	Label  canvas.Rect
	Icon   canvas.Rect
	Text   canvas.Rect
	Close  canvas.Rect

	HasIcon  bool
	HasText  bool
	HasClose bool
}

// labelSize is the natural size of a label's content.
func (m Model[ID]) labelSize(l Label) (w, h int) {
	iw := m.iconWidth(l)
	switch l.Kind() {
	case KindIcon:
		return iw, 1
	case KindText:
		return m.textWidth(l), 1
	default:
		tw := m.textWidth(l)
		if m.orientation == OrientationVertical {
			return max(iw, tw), 2
		}
		return iw + 1 + tw, 1
	}
}

// iconWidth is IconSize, or the glyph's own width when IconSize is 0.
func (m Model[ID]) iconWidth(l Label) int {
	if m.iconSize > 0 {
		return m.iconSize
	}
	icon, ok := l.Icon()
	if !ok {
		return 0
	}
	return icons.Width(icon)
}

func (m Model[ID]) textWidth(l Label) int {
	text, _ := l.Text()
	w := ansi.StringWidth(text)
	if m.textSize > 0 {
		w = min(w, m.textSize)
	}
	return w
}

// closeSlot is the width reserved for the close glyph, 0 when closing is
// disabled.
func (m Model[ID]) closeSlot() int {
	if m.onClose == nil {
		return 0
	}
	return m.closeSize + 1
}

// Layout computes the bar's geometry within limits, anchored at the origin.
func (m Model[ID]) Layout(limits Limits) Layout {
	n := len(m.entries)

	natural := make([]int, n)
	tallest := 0
	for i, e := range m.entries {
		w, h := m.labelSize(e.Label)
		natural[i] = w + 2*m.padding + m.closeSlot()
		tallest = max(tallest, h)
	}

	height := m.barHeight(tallest, limits)
	barWidth, known := m.barWidth(limits)
	gaps := m.spacing * max(n-1, 0)

	widths := make([]int, n)
	switch {
	case m.tabWidth.IsFill() && known:
		share := distribute(max(barWidth-gaps, 0), n)
		copy(widths, share)
	default:
		for i := range widths {
			if cells, ok := m.tabWidth.Cells(); ok {
				widths[i] = cells
			} else {
				widths[i] = natural[i]
			}
		}
	}

	if !known {
		barWidth = gaps
		for _, w := range widths {
			barWidth += w
		}
		if limits.MaxWidth > 0 {
			barWidth = min(barWidth, limits.MaxWidth)
		}
	}

	bar := canvas.Rect{W: barWidth, H: height}.Translate(m.origin.X, m.origin.Y)
	out := Layout{Bounds: bar, Tabs: make([]TabLayout, n)}

	x := bar.X
	for i, e := range m.entries {
		tab := canvas.Rect{X: x, Y: bar.Y, W: widths[i], H: height}
		out.Tabs[i] = m.layoutTab(e.Label, tab, bar)
		x += widths[i] + m.spacing
	}
	return out
}

// barWidth resolves the bar width when it does not depend on the tabs.
func (m Model[ID]) barWidth(limits Limits) (int, bool) {
	if cells, ok := m.width.Cells(); ok {
		if limits.MaxWidth > 0 {
			cells = min(cells, limits.MaxWidth)
		}
		return cells, true
	}
	if m.width.IsFill() && limits.MaxWidth > 0 {
		return limits.MaxWidth, true
	}
	return 0, false
}

func (m Model[ID]) barHeight(tallest int, limits Limits) int {
	h := tallest + 2*m.verticalPadding
	if cells, ok := m.height.Cells(); ok {
		h = cells
	} else if m.height.IsFill() && limits.MaxHeight > 0 {
		h = limits.MaxHeight
	}
	if m.maxHeight > 0 {
		h = min(h, m.maxHeight)
	}
	if limits.MaxHeight > 0 {
		h = min(h, limits.MaxHeight)
	}
	return h
}

// distribute splits total into n near-equal parts; the leftmost parts get
// the remainder.
func distribute(total, n int) []int {
	parts := make([]int, n)
	if n == 0 {
		return parts
	}
	base, rest := total/n, total%n
	for i := range parts {
		parts[i] = base
		if i < rest {
			parts[i]++
		}
	}
	return parts
}

func (m Model[ID]) layoutTab(l Label, tab, bar canvas.Rect) TabLayout {
	tl := TabLayout{
		HasIcon:  l.hasIcon(),
		HasText:  l.hasText(),
		HasClose: m.onClose != nil,
	}

	visible := tab.Intersect(bar)
	if visible.Empty() {
		return tl
	}

	inner := tab.Shrink(m.padding, m.verticalPadding)

	block := inner
	if tl.HasClose {
		cw := min(m.closeSlot(), inner.W)
		ch := min(m.closeSize+1, inner.H)
		tl.Close = canvas.Rect{
			X: inner.Right() - cw,
			Y: inner.Y + (inner.H-ch)/2,
			W: cw,
			H: ch,
		}
		block.W -= cw
	}

	tw := m.textWidth(l)
	iw := m.iconWidth(l)
	switch l.Kind() {
	case KindIcon:
		tl.Label = block.Center(iw, 1)
		tl.Icon = tl.Label
	case KindText:
		tl.Label = block.Center(tw, 1)
		tl.Text = tl.Label
	default:
		if m.orientation == OrientationVertical {
			tl.Label = block.Center(max(iw, tw), 2)
			tl.Icon = tl.Label.Center(iw, tl.Label.H)
			tl.Icon.H = min(tl.Label.H, 1)
			tl.Text = canvas.Rect{X: tl.Label.X, Y: tl.Label.Y + 1, W: tl.Label.W, H: max(tl.Label.H-1, 0)}
			tl.Text = tl.Text.Center(tw, 1)
		} else {
			tl.Label = block.Center(iw+1+tw, 1)
			tl.Icon = canvas.Rect{X: tl.Label.X, Y: tl.Label.Y, W: min(iw, tl.Label.W), H: tl.Label.H}
			tl.Text = canvas.Rect{
				X: tl.Label.X + iw + 1,
				Y: tl.Label.Y,
				W: max(tl.Label.W-iw-1, 0),
				H: tl.Label.H,
			}
		}
	}

	tl.Bounds = visible
	tl.Label = tl.Label.Intersect(bar)
	tl.Icon = tl.Icon.Intersect(bar)
	tl.Text = tl.Text.Intersect(bar)
	tl.Close = tl.Close.Intersect(bar)
	return tl
}
