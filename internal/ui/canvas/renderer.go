package canvas

import "github.com/charmbracelet/lipgloss"

// Renderer is the painting capability widgets draw through.
type Renderer interface {
	// FillQuad paints a rectangle's background and optional border.
	FillQuad(q Quad)
	// FillText draws a single line of text inside a rectangle.
	FillText(t Text)
}

// Quad is a filled rectangle. A nil Background leaves the cells underneath
// untouched; a BorderWidth of 0 or a nil BorderColor draws no border.
type Quad struct {
	Bounds      Rect
	Background  lipgloss.TerminalColor
	BorderWidth int
	BorderColor lipgloss.TerminalColor
}

// Alignment positions content inside its bounds along one axis.
type Alignment int

const (
	AlignStart Alignment = iota
	AlignCenter
	AlignEnd
)

// Shaping selects how text is split into cells.
type Shaping int

const (
	// ShapingBasic places one rune per cell slot. Zero-width runes such as
	// combining marks ride along with the rune before them; a leading one
	// has nothing to attach to and is dropped.
	ShapingBasic Shaping = iota
	// ShapingAdvanced keeps grapheme clusters (emoji sequences, combining
	// marks) together in one slot.
	ShapingAdvanced
)

// Font is the terminal rendition of a typeface: the attributes a cell can
// carry.
type Font struct {
	Bold      bool
	Italic    bool
	Faint     bool
	Underline bool
}

// Apply sets f's attributes on s.
func (f Font) Apply(s lipgloss.Style) lipgloss.Style {
	return s.Bold(f.Bold).Italic(f.Italic).Faint(f.Faint).Underline(f.Underline)
}

// Text is one line of content. Size caps the number of cells the content
// may occupy (0 means the bounds width); longer content is truncated with
// an ellipsis. LineHeight is accepted for API parity with pixel renderers
// and ignored by cell renderers, where every line is one row.
type Text struct {
	Content    string
	Bounds     Rect
	Size       int
	Color      lipgloss.TerminalColor
	Font       Font
	HAlign     Alignment
	VAlign     Alignment
	LineHeight float64
	Shaping    Shaping
}
