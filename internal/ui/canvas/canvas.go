package canvas

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
	"github.com/rivo/uniseg"
)

const ellipsis = "…"

// attrs is everything a cell carries besides its content. It must stay
// comparable: String groups runs of equal attrs.
type attrs struct {
	fg, bg lipgloss.TerminalColor
	font   Font
}

type cell struct {
	content string
	// width is 1 or 2 for a lead cell and 0 for the cell covered by the
	// right half of a wide glyph.
	width int
	attrs attrs
}

// Canvas is a Renderer backed by a grid of terminal cells covering Bounds.
// Coordinates passed to FillQuad/FillText are absolute; anything outside
// Bounds is clipped.
type Canvas struct {
	bounds Rect
	cells  []cell
}

var _ Renderer = (*Canvas)(nil)

// New returns a blank canvas covering bounds.
func New(bounds Rect) *Canvas {
	bounds.W, bounds.H = max(bounds.W, 0), max(bounds.H, 0)
	c := &Canvas{bounds: bounds, cells: make([]cell, bounds.W*bounds.H)}
	for i := range c.cells {
		c.cells[i] = cell{content: " ", width: 1}
	}
	return c
}

// Bounds returns the area the canvas covers.
func (c *Canvas) Bounds() Rect { return c.bounds }

func (c *Canvas) at(x, y int) *cell {
	if !c.bounds.Contains(x, y) {
		return nil
	}
	return &c.cells[(y-c.bounds.Y)*c.bounds.W+(x-c.bounds.X)]
}

// put writes content into (x, y), repairing any wide glyph it splits.
func (c *Canvas) put(x, y int, content string, width int, a attrs) {
	target := c.at(x, y)
	if target == nil {
		return
	}
	if target.width == 0 {
		if lead := c.at(x-1, y); lead != nil && lead.width == 2 {
			lead.content, lead.width = " ", 1
		}
	}
	if target.width == 2 {
		if tail := c.at(x+1, y); tail != nil && tail.width == 0 {
			tail.content, tail.width = " ", 1
		}
	}
	*target = cell{content: content, width: width, attrs: a}
	if width == 2 {
		if tail := c.at(x+1, y); tail != nil {
			if tail.width == 2 {
				if after := c.at(x+2, y); after != nil && after.width == 0 {
					after.content, after.width = " ", 1
				}
			}
			*tail = cell{content: "", width: 0, attrs: a}
		}
	}
}

// FillQuad paints q's background over the cells it covers, blanking their
// content, then draws a rounded (BorderWidth 1) or thick (BorderWidth >= 2)
// border when q is at least 2 columns by 3 rows.
func (c *Canvas) FillQuad(q Quad) {
	area := q.Bounds.Intersect(c.bounds)
	if area.Empty() {
		return
	}

	if q.Background != nil {
		for y := area.Y; y < area.Bottom(); y++ {
			for x := area.X; x < area.Right(); x++ {
				c.put(x, y, " ", 1, attrs{bg: q.Background})
			}
		}
	}

	if q.BorderWidth <= 0 || q.BorderColor == nil || q.Bounds.W < 2 || q.Bounds.H < 3 {
		return
	}

	border := lipgloss.RoundedBorder()
	if q.BorderWidth >= 2 {
		border = lipgloss.ThickBorder()
	}

	b := q.Bounds
	edge := func(x, y int, glyph string) {
		cur := c.at(x, y)
		if cur == nil {
			return
		}
		c.put(x, y, glyph, 1, attrs{fg: q.BorderColor, bg: cur.attrs.bg})
	}
	for x := b.X + 1; x < b.Right()-1; x++ {
		edge(x, b.Y, border.Top)
		edge(x, b.Bottom()-1, border.Bottom)
	}
	for y := b.Y + 1; y < b.Bottom()-1; y++ {
		edge(b.X, y, border.Left)
		edge(b.Right()-1, y, border.Right)
	}
	edge(b.X, b.Y, border.TopLeft)
	edge(b.Right()-1, b.Y, border.TopRight)
	edge(b.X, b.Bottom()-1, border.BottomLeft)
	edge(b.Right()-1, b.Bottom()-1, border.BottomRight)
}

// FillText draws t on one row of its bounds, keeping the background of the
// cells it lands on.
func (c *Canvas) FillText(t Text) {
	if t.Bounds.Empty() || t.Content == "" {
		return
	}

	limit := t.Bounds.W
	if t.Size > 0 {
		limit = min(limit, t.Size)
	}
	content := fit(t.Content, limit)
	width := ansi.StringWidth(content)

	x := align(t.Bounds.X, t.Bounds.W, width, t.HAlign)
	y := align(t.Bounds.Y, t.Bounds.H, 1, t.VAlign)
	clip := t.Bounds.Intersect(c.bounds)

	for _, g := range segments(content, t.Shaping) {
		w := runewidth.StringWidth(g)
		if w == 0 {
			continue
		}
		if x+w > clip.Right() {
			break
		}
		if x >= clip.X {
			bg := lipgloss.TerminalColor(nil)
			if cur := c.at(x, y); cur != nil {
				bg = cur.attrs.bg
			}
			c.put(x, y, g, w, attrs{fg: t.Color, bg: bg, font: t.Font})
		}
		x += w
	}
}

// fit truncates s to at most limit cells, marking the cut with an ellipsis
// when there is room for one.
func fit(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	if ansi.StringWidth(s) <= limit {
		return s
	}
	if limit == 1 {
		return truncate.String(s, 1)
	}
	return truncate.StringWithTail(s, uint(limit), ellipsis) //nolint:gosec // limit > 1
}

func align(start, span, size int, a Alignment) int {
	switch a {
	case AlignCenter:
		return start + (span-size)/2
	case AlignEnd:
		return start + span - size
	default:
		return start
	}
}

func segments(s string, shaping Shaping) []string {
	var out []string
	if shaping == ShapingBasic {
		for _, r := range s {
			if runewidth.RuneWidth(r) == 0 && len(out) > 0 {
				out[len(out)-1] += string(r)
				continue
			}
			out = append(out, string(r))
		}
		return out
	}
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Content returns the glyph at (x, y): "" for the right half of a wide
// glyph or for a point outside the canvas.
func (c *Canvas) Content(x, y int) string {
	if cur := c.at(x, y); cur != nil {
		return cur.content
	}
	return ""
}

// Background returns the background color at (x, y).
func (c *Canvas) Background(x, y int) lipgloss.TerminalColor {
	if cur := c.at(x, y); cur != nil {
		return cur.attrs.bg
	}
	return nil
}

// Foreground returns the foreground color at (x, y).
func (c *Canvas) Foreground(x, y int) lipgloss.TerminalColor {
	if cur := c.at(x, y); cur != nil {
		return cur.attrs.fg
	}
	return nil
}

// FontAt returns the text attributes at (x, y).
func (c *Canvas) FontAt(x, y int) Font {
	if cur := c.at(x, y); cur != nil {
		return cur.attrs.font
	}
	return Font{}
}

// Plain returns the canvas text without styling, one line per row.
func (c *Canvas) Plain() string {
	lines := make([]string, 0, c.bounds.H)
	for y := c.bounds.Y; y < c.bounds.Bottom(); y++ {
		var b strings.Builder
		for x := c.bounds.X; x < c.bounds.Right(); x++ {
			b.WriteString(c.at(x, y).content)
		}
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n")
}

// String renders the canvas with Lip Gloss, one styled run per stretch of
// cells sharing attributes.
func (c *Canvas) String() string {
	lines := make([]string, 0, c.bounds.H)
	for y := c.bounds.Y; y < c.bounds.Bottom(); y++ {
		var (
			line strings.Builder
			run  strings.Builder
			cur  attrs
		)
		flush := func() {
			if run.Len() == 0 {
				return
			}
			line.WriteString(render(cur, run.String()))
			run.Reset()
		}
		for x := c.bounds.X; x < c.bounds.Right(); x++ {
			cl := c.at(x, y)
			if cl.width == 0 {
				continue
			}
			if cl.attrs != cur {
				flush()
				cur = cl.attrs
			}
			run.WriteString(cl.content)
		}
		flush()
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}

func render(a attrs, s string) string {
	if a == (attrs{}) {
		return s
	}
	style := a.font.Apply(lipgloss.NewStyle())
	if a.fg != nil {
		style = style.Foreground(a.fg)
	}
	if a.bg != nil {
		style = style.Background(a.bg)
	}
	return style.Render(s)
}
