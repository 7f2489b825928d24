// Package toaster shows short-lived notices, such as save or reload results,
// in the bottom-right corner of the screen.
package toaster

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/zjrosen/tabbar/internal/ui/icons"
	"github.com/zjrosen/tabbar/internal/ui/styles"
)

// Level picks the notice's glyph and border color.
type Level int

const (
	LevelInfo Level = iota
	LevelSuccess
	LevelWarn
	LevelError
)

// DefaultDuration is how long a notice stays up.
const DefaultDuration = 3 * time.Second

// Model holds the current notice. The zero value shows nothing.
type Model struct {
	message string
	level   Level
	seq     int
}

// New creates an empty toaster.
func New() Model {
	return Model{}
}

// Show replaces the current notice and returns the command that dismisses
// it after d.
func (m Model) Show(message string, level Level, d time.Duration) (Model, tea.Cmd) {
	m.seq++
	m.message = message
	m.level = level
	seq := m.seq
	return m, tea.Tick(d, func(time.Time) tea.Msg {
		return DismissMsg{seq: seq}
	})
}

// DismissMsg hides the notice it was scheduled for.
type DismissMsg struct {
	seq int
}

// Update handles DismissMsg. A dismissal scheduled for an older notice
// leaves a newer one in place.
func (m Model) Update(msg tea.Msg) Model {
	if d, ok := msg.(DismissMsg); ok && d.seq == m.seq {
		m.message = ""
	}
	return m
}

// Visible reports whether a notice is showing.
func (m Model) Visible() bool { return m.message != "" }

// Message returns the notice text, or "".
func (m Model) Message() string { return m.message }

// View renders the notice box, or "" when hidden.
func (m Model) View() string {
	if !m.Visible() {
		return ""
	}

	var (
		glyph string
		color lipgloss.TerminalColor
	)
	switch m.level {
	case LevelSuccess:
		glyph, color = icons.Glyph(icons.Star), styles.StatusSuccessColor
	case LevelWarn:
		glyph, color = icons.Glyph(icons.Warning), styles.StatusWarningColor
	case LevelError:
		glyph, color = icons.Glyph(icons.X), styles.StatusErrorColor
	default:
		glyph, color = icons.Glyph(icons.Info), styles.AccentBlueColor
	}

	return lipgloss.NewStyle().
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Render(glyph + " " + m.message)
}

// Overlay draws the notice over the bottom-right corner of bg, which is
// padded out to width x height first.
func (m Model) Overlay(bg string, width, height int) string {
	fg := m.View()
	if fg == "" {
		return bg
	}

	bgLines := strings.Split(bg, "\n")
	for len(bgLines) < height {
		bgLines = append(bgLines, "")
	}
	fgLines := strings.Split(fg, "\n")

	x := max(width-lipgloss.Width(fg)-1, 0)
	y := max(len(bgLines)-len(fgLines), 0)

	for i, line := range fgLines {
		row := y + i
		if row >= len(bgLines) {
			break
		}
		bgLines[row] = splice(bgLines[row], line, x)
	}
	return strings.Join(bgLines, "\n")
}

// splice writes fg into bg starting at column x, keeping bg's styling on
// both sides.
func splice(bg, fg string, x int) string {
	left := ansi.Truncate(bg, x, "")
	if w := ansi.StringWidth(left); w < x {
		left += strings.Repeat(" ", x-w)
	}
	var right string
	if end := x + ansi.StringWidth(fg); end < ansi.StringWidth(bg) {
		right = ansi.TruncateLeft(bg, end, "")
	}
	return left + fg + right
}
