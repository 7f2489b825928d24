package tabbar

import (
	"github.com/zjrosen/tabbar/internal/ui/canvas"
	"github.com/zjrosen/tabbar/internal/ui/icons"
)

// Draw paints the bar, then each tab's background, icon, text and close
// glyph. Hover state comes from cursor.
func (m Model[ID]) Draw(r canvas.Renderer, layout Layout, cursor Cursor) {
	bar := m.provider(m.style, cursor.In(layout.Bounds), false)
	r.FillQuad(canvas.Quad{
		Bounds:      layout.Bounds,
		Background:  bar.Background,
		BorderWidth: bar.BorderWidth,
		BorderColor: bar.BorderColor,
	})

	for i, tl := range layout.Tabs {
		if i >= len(m.entries) || tl.Bounds.Empty() {
			continue
		}
		label := m.entries[i].Label
		look := m.provider(m.style, cursor.In(tl.Bounds), i == m.activeTab)

		r.FillQuad(canvas.Quad{
			Bounds:      tl.Bounds,
			Background:  look.TabLabelBackground,
			BorderWidth: look.TabLabelBorderWidth,
			BorderColor: look.TabLabelBorderColor,
		})

		if icon, ok := label.Icon(); ok && tl.HasIcon {
			r.FillText(canvas.Text{
				Content:    icons.Glyph(icon),
				Bounds:     tl.Icon,
				Size:       m.iconSize,
				Color:      look.IconColor,
				Font:       m.iconFont,
				HAlign:     canvas.AlignCenter,
				VAlign:     canvas.AlignCenter,
				LineHeight: 1,
				Shaping:    canvas.ShapingAdvanced,
			})
		}

		if text, ok := label.Text(); ok && tl.HasText {
			r.FillText(canvas.Text{
				Content:    text,
				Bounds:     tl.Text,
				Size:       m.textSize,
				Color:      look.TextColor,
				Font:       m.textFont,
				HAlign:     canvas.AlignCenter,
				VAlign:     canvas.AlignCenter,
				LineHeight: 1,
				Shaping:    m.shaping,
			})
		}

		if tl.HasClose && m.onClose != nil {
			size, font := m.closeSize, m.iconFont
			if cursor.In(tl.Close) {
				size = m.closeSize + 1
				font.Bold = true
			}
			r.FillText(canvas.Text{
				Content:    icons.Glyph(icons.X),
				Bounds:     tl.Close,
				Size:       size,
				Color:      look.IconColor,
				Font:       font,
				HAlign:     canvas.AlignCenter,
				VAlign:     canvas.AlignCenter,
				LineHeight: 1,
				Shaping:    canvas.ShapingAdvanced,
			})
		}
	}
}
