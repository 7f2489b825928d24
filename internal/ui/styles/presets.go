// Package styles contains Lip Gloss style definitions.
package styles

import (
	"maps"
	"slices"
)

// Preset represents a complete color theme.
type Preset struct {
	Name        string
	Description string
	Colors      map[ColorToken]string
}

// Presets contains all built-in theme presets.
var Presets = map[string]Preset{
	"default":          DefaultPreset,
	"catppuccin-mocha": CatppuccinMochaPreset,
	"catppuccin-latte": CatppuccinLattePreset,
	"dracula":          DraculaPreset,
	"nord":             NordPreset,
	"high-contrast":    HighContrastPreset,
}

// PresetNames returns preset names sorted alphabetically.
func PresetNames() []string {
	return slices.Sorted(maps.Keys(Presets))
}

// DefaultPreset mirrors the Dark values in styles.go.
var DefaultPreset = Preset{
	Name:        "default",
	Description: "Default tabbar theme",
	Colors: map[ColorToken]string{
		TokenTextPrimary:   "#CCCCCC",
		TokenTextSecondary: "#BBBBBB",
		TokenTextMuted:     "#696969",

		TokenBorderDefault: "#696969",
		TokenBorderFocus:   "#FFFFFF",

		TokenStatusSuccess: "#73F59F",
		TokenStatusWarning: "#FECA57",
		TokenStatusError:   "#FF8787",

		TokenTabBarBackground:      "#1E1E1E",
		TokenTabBarBackgroundHover: "#252525",
		TokenTabBarBorder:          "#3A3A3A",

		TokenTabBackground:       "#2D3436",
		TokenTabBackgroundHover:  "#636E72",
		TokenTabBackgroundActive: "#1A5276",
		TokenTabBorder:           "#444444",
		TokenTabBorderActive:     "#3498DB",
		TokenTabText:             "#BBBBBB",
		TokenTabTextActive:       "#FFFFFF",
		TokenTabIcon:             "#999999",
		TokenTabIconActive:       "#FFFFFF",

		TokenAccentBlue:   "#54A0FF",
		TokenAccentGreen:  "#239B56",
		TokenAccentPurple: "#7D56F4",
		TokenAccentRed:    "#C0392B",
	},
}

// CatppuccinMochaPreset is the warm dark Catppuccin flavour.
var CatppuccinMochaPreset = Preset{
	Name:        "catppuccin-mocha",
	Description: "Warm, cozy dark theme",
	Colors: map[ColorToken]string{
		TokenTextPrimary:   "#CDD6F4", // text
		TokenTextSecondary: "#BAC2DE", // subtext1
		TokenTextMuted:     "#6C7086", // overlay0

		TokenBorderDefault: "#585B70", // surface2
		TokenBorderFocus:   "#B4BEFE", // lavender

		TokenStatusSuccess: "#A6E3A1", // green
		TokenStatusWarning: "#F9E2AF", // yellow
		TokenStatusError:   "#F38BA8", // red

		TokenTabBarBackground:      "#181825", // mantle
		TokenTabBarBackgroundHover: "#1E1E2E", // base
		TokenTabBarBorder:          "#313244", // surface0

		TokenTabBackground:       "#313244", // surface0
		TokenTabBackgroundHover:  "#45475A", // surface1
		TokenTabBackgroundActive: "#89B4FA", // blue
		TokenTabBorder:           "#45475A",
		TokenTabBorderActive:     "#B4BEFE",
		TokenTabText:             "#BAC2DE",
		TokenTabTextActive:       "#11111B", // crust
		TokenTabIcon:             "#9399B2", // overlay2
		TokenTabIconActive:       "#11111B",

		TokenAccentBlue:   "#89B4FA",
		TokenAccentGreen:  "#A6E3A1",
		TokenAccentPurple: "#CBA6F7", // mauve
		TokenAccentRed:    "#F38BA8",
	},
}

// CatppuccinLattePreset is the light Catppuccin flavour.
var CatppuccinLattePreset = Preset{
	Name:        "catppuccin-latte",
	Description: "Warm, cozy light theme",
	Colors: map[ColorToken]string{
		TokenTextPrimary:   "#4C4F69",
		TokenTextSecondary: "#5C5F77",
		TokenTextMuted:     "#9CA0B0",

		TokenBorderDefault: "#ACB0BE",
		TokenBorderFocus:   "#7287FD",

		TokenStatusSuccess: "#40A02B",
		TokenStatusWarning: "#DF8E1D",
		TokenStatusError:   "#D20F39",

		TokenTabBarBackground:      "#E6E9EF",
		TokenTabBarBackgroundHover: "#DCE0E8",
		TokenTabBarBorder:          "#CCD0DA",

		TokenTabBackground:       "#CCD0DA",
		TokenTabBackgroundHover:  "#BCC0CC",
		TokenTabBackgroundActive: "#1E66F5",
		TokenTabBorder:           "#BCC0CC",
		TokenTabBorderActive:     "#7287FD",
		TokenTabText:             "#5C5F77",
		TokenTabTextActive:       "#EFF1F5",
		TokenTabIcon:             "#7C7F93",
		TokenTabIconActive:       "#EFF1F5",

		TokenAccentBlue:   "#1E66F5",
		TokenAccentGreen:  "#40A02B",
		TokenAccentPurple: "#8839EF",
		TokenAccentRed:    "#D20F39",
	},
}

// DraculaPreset follows the Dracula palette.
var DraculaPreset = Preset{
	Name:        "dracula",
	Description: "Dark theme with vibrant colors",
	Colors: map[ColorToken]string{
		TokenTextPrimary:   "#F8F8F2",
		TokenTextSecondary: "#E2E2DC",
		TokenTextMuted:     "#6272A4",

		TokenBorderDefault: "#6272A4",
		TokenBorderFocus:   "#BD93F9",

		TokenStatusSuccess: "#50FA7B",
		TokenStatusWarning: "#F1FA8C",
		TokenStatusError:   "#FF5555",

		TokenTabBarBackground:      "#21222C",
		TokenTabBarBackgroundHover: "#282A36",
		TokenTabBarBorder:          "#44475A",

		TokenTabBackground:       "#44475A",
		TokenTabBackgroundHover:  "#6272A4",
		TokenTabBackgroundActive: "#BD93F9",
		TokenTabBorder:           "#6272A4",
		TokenTabBorderActive:     "#FF79C6",
		TokenTabText:             "#E2E2DC",
		TokenTabTextActive:       "#282A36",
		TokenTabIcon:             "#8BE9FD",
		TokenTabIconActive:       "#282A36",

		TokenAccentBlue:   "#8BE9FD",
		TokenAccentGreen:  "#50FA7B",
		TokenAccentPurple: "#BD93F9",
		TokenAccentRed:    "#FF5555",
	},
}

// NordPreset follows the Nord palette.
var NordPreset = Preset{
	Name:        "nord",
	Description: "Arctic, north-bluish palette",
	Colors: map[ColorToken]string{
		TokenTextPrimary:   "#ECEFF4", // snow storm 3
		TokenTextSecondary: "#E5E9F0",
		TokenTextMuted:     "#4C566A", // polar night 4

		TokenBorderDefault: "#4C566A",
		TokenBorderFocus:   "#88C0D0", // frost 2

		TokenStatusSuccess: "#A3BE8C",
		TokenStatusWarning: "#EBCB8B",
		TokenStatusError:   "#BF616A",

		TokenTabBarBackground:      "#2E3440", // polar night 1
		TokenTabBarBackgroundHover: "#3B4252",
		TokenTabBarBorder:          "#434C5E",

		TokenTabBackground:       "#3B4252",
		TokenTabBackgroundHover:  "#434C5E",
		TokenTabBackgroundActive: "#5E81AC", // frost 4
		TokenTabBorder:           "#4C566A",
		TokenTabBorderActive:     "#88C0D0",
		TokenTabText:             "#D8DEE9",
		TokenTabTextActive:       "#ECEFF4",
		TokenTabIcon:             "#81A1C1",
		TokenTabIconActive:       "#ECEFF4",

		TokenAccentBlue:   "#81A1C1",
		TokenAccentGreen:  "#A3BE8C",
		TokenAccentPurple: "#B48EAD",
		TokenAccentRed:    "#BF616A",
	},
}

// HighContrastPreset maximises contrast for accessibility.
var HighContrastPreset = Preset{
	Name:        "high-contrast",
	Description: "High contrast for accessibility",
	Colors: map[ColorToken]string{
		TokenTextPrimary:   "#FFFFFF",
		TokenTextSecondary: "#FFFFFF",
		TokenTextMuted:     "#C0C0C0",

		TokenBorderDefault: "#FFFFFF",
		TokenBorderFocus:   "#FFFF00",

		TokenStatusSuccess: "#00FF00",
		TokenStatusWarning: "#FFFF00",
		TokenStatusError:   "#FF0000",

		TokenTabBarBackground:      "#000000",
		TokenTabBarBackgroundHover: "#000000",
		TokenTabBarBorder:          "#FFFFFF",

		TokenTabBackground:       "#000000",
		TokenTabBackgroundHover:  "#333333",
		TokenTabBackgroundActive: "#0000FF",
		TokenTabBorder:           "#FFFFFF",
		TokenTabBorderActive:     "#FFFF00",
		TokenTabText:             "#FFFFFF",
		TokenTabTextActive:       "#FFFF00",
		TokenTabIcon:             "#FFFFFF",
		TokenTabIconActive:       "#FFFF00",

		TokenAccentBlue:   "#0000FF",
		TokenAccentGreen:  "#008000",
		TokenAccentPurple: "#800080",
		TokenAccentRed:    "#FF0000",
	},
}
