// Package icons maps semantic icon identifiers to terminal glyphs.
package icons

import (
	"sync/atomic"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Icon identifies a glyph. Built-in identifiers resolve through the glyph
// tables below; any other value is drawn verbatim, so callers can pass a
// literal glyph such as Icon("λ").
type Icon string

// Built-in icons.
const (
	X        Icon = "x"
	Plus     Icon = "plus"
	File     Icon = "file"
	Folder   Icon = "folder"
	Terminal Icon = "terminal"
	Gear     Icon = "gear"
	Home     Icon = "home"
	Star     Icon = "star"
	Info     Icon = "info"
	Warning  Icon = "warning"
	Search   Icon = "search"
	Bell     Icon = "bell"
)

var unicodeGlyphs = map[Icon]string{
	X:        "×",
	Plus:     "+",
	File:     "▤",
	Folder:   "▣",
	Terminal: "▶",
	Gear:     "⚙",
	Home:     "⌂",
	Star:     "★",
	Info:     "ℹ",
	Warning:  "⚠",
	Search:   "⌕",
	Bell:     "♪",
}

var asciiGlyphs = map[Icon]string{
	X:        "x",
	Plus:     "+",
	File:     "f",
	Folder:   "d",
	Terminal: ">",
	Gear:     "*",
	Home:     "~",
	Star:     "*",
	Info:     "i",
	Warning:  "!",
	Search:   "?",
	Bell:     "b",
}

var asciiOnly atomic.Bool

// SetASCII switches every built-in icon to its ASCII fallback.
func SetASCII(enabled bool) {
	asciiOnly.Store(enabled)
}

// ASCII reports whether ASCII fallbacks are active.
func ASCII() bool {
	return asciiOnly.Load()
}

// Builtin reports whether icon is one of the named identifiers.
func Builtin(icon Icon) bool {
	_, ok := unicodeGlyphs[icon]
	return ok
}

// Names lists the built-in identifiers in a stable order.
func Names() []Icon {
	return []Icon{X, Plus, File, Folder, Terminal, Gear, Home, Star, Info, Warning, Search, Bell}
}

// Glyph returns the string drawn for icon.
func Glyph(icon Icon) string {
	table := unicodeGlyphs
	if asciiOnly.Load() {
		table = asciiGlyphs
	}
	if g, ok := table[icon]; ok {
		return g
	}
	return string(icon)
}

// Width returns the number of terminal cells the icon's glyph occupies.
func Width(icon Icon) int {
	return runewidth.StringWidth(Glyph(icon))
}

// IsSingleGlyph reports whether icon draws as exactly one grapheme cluster.
// Multi-cluster custom icons are still drawn, but layout reserves IconSize
// cells and truncates the rest.
func IsSingleGlyph(icon Icon) bool {
	return uniseg.GraphemeClusterCount(Glyph(icon)) == 1
}
