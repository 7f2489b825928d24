// Package styles contains Lip Gloss style definitions.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Text hierarchy
	TextPrimaryColor   = lipgloss.AdaptiveColor{Light: "#2D3436", Dark: "#CCCCCC"}
	TextSecondaryColor = lipgloss.AdaptiveColor{Light: "#555555", Dark: "#BBBBBB"}
	TextMutedColor     = lipgloss.AdaptiveColor{Light: "#999999", Dark: "#696969"} // Hints, help text

	// Borders
	BorderDefaultColor = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#696969"}
	BorderFocusColor   = lipgloss.AdaptiveColor{Light: "#54A0FF", Dark: "#FFFFFF"}

	// Status
	StatusSuccessColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	StatusWarningColor = lipgloss.AdaptiveColor{Light: "#FECA57", Dark: "#FECA57"}
	StatusErrorColor   = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"}

	// Tab bar strip
	TabBarBackgroundColor      = lipgloss.AdaptiveColor{Light: "#EEEEEE", Dark: "#1E1E1E"}
	TabBarBackgroundHoverColor = lipgloss.AdaptiveColor{Light: "#E4E4E4", Dark: "#252525"}
	TabBarBorderColor          = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#3A3A3A"}

	// Tabs
	TabBackgroundColor       = lipgloss.AdaptiveColor{Light: "#DDDDDD", Dark: "#2D3436"}
	TabBackgroundHoverColor  = lipgloss.AdaptiveColor{Light: "#CCCCCC", Dark: "#636E72"}
	TabBackgroundActiveColor = lipgloss.AdaptiveColor{Light: "#1A5276", Dark: "#1A5276"}
	TabBorderColor           = lipgloss.AdaptiveColor{Light: "#BBBBBB", Dark: "#444444"}
	TabBorderActiveColor     = lipgloss.AdaptiveColor{Light: "#3498DB", Dark: "#3498DB"}
	TabTextColor             = lipgloss.AdaptiveColor{Light: "#444444", Dark: "#BBBBBB"}
	TabTextActiveColor       = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}
	TabIconColor             = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"}
	TabIconActiveColor       = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}

	// Accents
	AccentBlueColor   = lipgloss.AdaptiveColor{Light: "#1E66F5", Dark: "#54A0FF"}
	AccentGreenColor  = lipgloss.AdaptiveColor{Light: "#1E8449", Dark: "#239B56"}
	AccentPurpleColor = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	AccentRedColor    = lipgloss.AdaptiveColor{Light: "#922B21", Dark: "#C0392B"}

	// Status line under the tab bar
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(TextSecondaryColor).
			Padding(0, 1)

	// Help footer
	HelpStyle = lipgloss.NewStyle().
			Foreground(TextMutedColor).
			Padding(0, 1)

	// Error display
	ErrorStyle = lipgloss.NewStyle().
			Foreground(StatusErrorColor).
			Bold(true).
			Padding(0, 1)
)
