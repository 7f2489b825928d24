// Package styles contains Lip Gloss style definitions.
package styles

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// styleRebuilders holds callbacks to rebuild styles in other packages.
// Packages that cache lipgloss.Style values built from these colors
// register here so a theme change reaches them.
var styleRebuilders []func()

// RegisterStyleRebuilder adds a callback that will be called after ApplyTheme
// updates colors.
func RegisterStyleRebuilder(fn func()) {
	styleRebuilders = append(styleRebuilders, fn)
}

// ThemeConfig mirrors config.ThemeConfig to avoid circular imports.
type ThemeConfig struct {
	Preset string
	Mode   string
	Colors map[string]string
}

// ApplyTheme applies a complete theme configuration.
// Order of application:
// 1. Start with default colors
// 2. Apply preset (if specified)
// 3. Apply individual color overrides
// 4. Rebuild all Style objects
func ApplyTheme(cfg ThemeConfig) error {
	colors, err := ResolveColors(cfg)
	if err != nil {
		return err
	}

	applyColors(colors)
	rebuildStyles()
	return nil
}

// ResolveColors computes the final token→hex map for cfg without touching
// the package-level colors.
func ResolveColors(cfg ThemeConfig) (map[ColorToken]string, error) {
	colors := maps.Clone(DefaultPreset.Colors)

	if cfg.Preset != "" && cfg.Preset != "default" {
		preset, ok := Presets[cfg.Preset]
		if !ok {
			return nil, fmt.Errorf("unknown theme preset: %s", cfg.Preset)
		}
		maps.Copy(colors, preset.Colors)
	}

	switch cfg.Mode {
	case "", "light", "dark":
	default:
		return nil, fmt.Errorf("invalid theme mode %q (must be \"light\" or \"dark\")", cfg.Mode)
	}

	for key, value := range cfg.Colors {
		token := ColorToken(key)
		if !isValidToken(token) {
			return nil, fmt.Errorf("unknown color token: %s", key)
		}
		if !isValidHexColor(value) {
			return nil, fmt.Errorf("invalid hex color for %s: %s", key, value)
		}
		colors[token] = value
	}

	return colors, nil
}

func applyColors(colors map[ColorToken]string) {
	// Same color for both modes once a theme is applied
	makeColor := func(hex string) lipgloss.AdaptiveColor {
		return lipgloss.AdaptiveColor{Light: hex, Dark: hex}
	}

	targets := map[ColorToken]*lipgloss.AdaptiveColor{
		TokenTextPrimary:   &TextPrimaryColor,
		TokenTextSecondary: &TextSecondaryColor,
		TokenTextMuted:     &TextMutedColor,

		TokenBorderDefault: &BorderDefaultColor,
		TokenBorderFocus:   &BorderFocusColor,

		TokenStatusSuccess: &StatusSuccessColor,
		TokenStatusWarning: &StatusWarningColor,
		TokenStatusError:   &StatusErrorColor,

		TokenTabBarBackground:      &TabBarBackgroundColor,
		TokenTabBarBackgroundHover: &TabBarBackgroundHoverColor,
		TokenTabBarBorder:          &TabBarBorderColor,

		TokenTabBackground:       &TabBackgroundColor,
		TokenTabBackgroundHover:  &TabBackgroundHoverColor,
		TokenTabBackgroundActive: &TabBackgroundActiveColor,
		TokenTabBorder:           &TabBorderColor,
		TokenTabBorderActive:     &TabBorderActiveColor,
		TokenTabText:             &TabTextColor,
		TokenTabTextActive:       &TabTextActiveColor,
		TokenTabIcon:             &TabIconColor,
		TokenTabIconActive:       &TabIconActiveColor,

		TokenAccentBlue:   &AccentBlueColor,
		TokenAccentGreen:  &AccentGreenColor,
		TokenAccentPurple: &AccentPurpleColor,
		TokenAccentRed:    &AccentRedColor,
	}

	for token, target := range targets {
		if c, ok := colors[token]; ok {
			*target = makeColor(c)
		}
	}
}

// rebuildStyles recreates all Style objects with updated colors.
// lipgloss.Style captures colors at creation time.
func rebuildStyles() {
	StatusBarStyle = lipgloss.NewStyle().
		Foreground(TextSecondaryColor).
		Padding(0, 1)

	HelpStyle = lipgloss.NewStyle().
		Foreground(TextMutedColor).
		Padding(0, 1)

	ErrorStyle = lipgloss.NewStyle().
		Foreground(StatusErrorColor).
		Bold(true).
		Padding(0, 1)

	for _, fn := range styleRebuilders {
		fn()
	}
}

func isValidToken(token ColorToken) bool {
	return slices.Contains(AllTokens(), token)
}

func isValidHexColor(s string) bool {
	if !strings.HasPrefix(s, "#") {
		return false
	}
	hex := s[1:]
	if len(hex) != 3 && len(hex) != 6 {
		return false
	}
	_, err := strconv.ParseUint(hex, 16, 64)
	return err == nil
}
