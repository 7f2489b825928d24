package styles

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testColorGreen = lipgloss.Color("#00FF00")

func TestRenderWithTitleBorder_Structure(t *testing.T) {
	result := RenderWithTitleBorder("content", "Status", 20, 4, false, testColorGreen, testColorGreen)
	lines := strings.Split(ansi.Strip(result), "\n")

	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "╭─ Status "), "top border: %q", lines[0])
	assert.True(t, strings.HasSuffix(lines[0], "╮"))
	assert.True(t, strings.HasPrefix(lines[3], "╰"))
	assert.True(t, strings.HasSuffix(lines[3], "╯"))
	for i, line := range lines {
		assert.Equal(t, 20, ansi.StringWidth(line), "line %d width", i)
	}
	assert.Contains(t, lines[1], "content")
}

func TestRenderWithTitleBorder_LongTitleTruncated(t *testing.T) {
	result := RenderWithTitleBorder("x", "A title that is far too long to fit", 16, 3, true, testColorGreen, testColorGreen)
	top := strings.Split(ansi.Strip(result), "\n")[0]

	assert.Equal(t, 16, ansi.StringWidth(top))
	assert.Contains(t, top, "...")
}

func TestRenderWithTitleBorder_NarrowDropsTitle(t *testing.T) {
	result := RenderWithTitleBorder("", "Title", 5, 3, false, testColorGreen, testColorGreen)
	top := strings.Split(ansi.Strip(result), "\n")[0]

	assert.Equal(t, "╭───╮", top)
}
