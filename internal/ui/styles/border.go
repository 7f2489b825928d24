// Package styles contains Lip Gloss style definitions.
package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

// RenderWithTitleBorder renders content inside a rounded border with the
// title embedded in the top edge: ╭─ Title ─────╮
// The border uses focusedBorderColor when focused, BorderDefaultColor otherwise.
func RenderWithTitleBorder(content, title string, width, height int, focused bool, titleColor, focusedBorderColor lipgloss.TerminalColor) string {
	var borderColor lipgloss.TerminalColor = BorderDefaultColor
	if focused {
		borderColor = focusedBorderColor
	}

	border := lipgloss.RoundedBorder()
	borderStyle := lipgloss.NewStyle().Foreground(borderColor)
	titleStyle := lipgloss.NewStyle().Foreground(titleColor)

	innerWidth := max(width-2, 1)
	contentHeight := max(height-2, 1)

	body := lipgloss.NewStyle().
		Width(innerWidth).
		Height(contentHeight).
		MaxHeight(contentHeight).
		Render(content)

	lines := strings.Split(body, "\n")
	var b strings.Builder
	b.WriteString(buildTopBorder(title, innerWidth, border, borderStyle, titleStyle))
	for _, line := range lines {
		if pad := innerWidth - lipgloss.Width(line); pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		b.WriteString("\n")
		b.WriteString(borderStyle.Render(border.Left) + line + borderStyle.Render(border.Right))
	}
	b.WriteString("\n")
	b.WriteString(borderStyle.Render(border.BottomLeft + strings.Repeat(border.Bottom, innerWidth) + border.BottomRight))
	return b.String()
}

// buildTopBorder needs at least 4 inner cells ("─ " + " ─") to fit a title;
// anything narrower gets a plain edge.
func buildTopBorder(title string, innerWidth int, border lipgloss.Border, borderStyle, titleStyle lipgloss.Style) string {
	if title == "" || innerWidth < 4 {
		return borderStyle.Render(border.TopLeft + strings.Repeat(border.Top, innerWidth) + border.TopRight)
	}

	display := truncate.StringWithTail(title, uint(innerWidth-4), "...") //nolint:gosec // innerWidth >= 4
	remaining := max(innerWidth-3-lipgloss.Width(display), 0)

	return borderStyle.Render(border.TopLeft+border.Top+" ") +
		titleStyle.Render(display) +
		borderStyle.Render(" "+strings.Repeat(border.Top, remaining)+border.TopRight)
}
