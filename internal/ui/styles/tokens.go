// Package styles contains Lip Gloss style definitions.
package styles

// ColorToken represents a named, themeable color.
type ColorToken string

// Color tokens organized by category.
// These are the keys users can override in their config.
const (
	// Text hierarchy
	TokenTextPrimary   ColorToken = "text.primary"
	TokenTextSecondary ColorToken = "text.secondary"
	TokenTextMuted     ColorToken = "text.muted"

	// Borders
	TokenBorderDefault ColorToken = "border.default"
	TokenBorderFocus   ColorToken = "border.focus"

	// Status indicators
	TokenStatusSuccess ColorToken = "status.success"
	TokenStatusWarning ColorToken = "status.warning"
	TokenStatusError   ColorToken = "status.error"

	// Tab bar strip
	TokenTabBarBackground      ColorToken = "tabbar.background"
	TokenTabBarBackgroundHover ColorToken = "tabbar.background.hover"
	TokenTabBarBorder          ColorToken = "tabbar.border"

	// Individual tabs
	TokenTabBackground       ColorToken = "tab.background"
	TokenTabBackgroundHover  ColorToken = "tab.background.hover"
	TokenTabBackgroundActive ColorToken = "tab.background.active"
	TokenTabBorder           ColorToken = "tab.border"
	TokenTabBorderActive     ColorToken = "tab.border.active"
	TokenTabText             ColorToken = "tab.text"
	TokenTabTextActive       ColorToken = "tab.text.active"
	TokenTabIcon             ColorToken = "tab.icon"
	TokenTabIconActive       ColorToken = "tab.icon.active"

	// Accents used by the colored tab bar variants
	TokenAccentBlue   ColorToken = "accent.blue"
	TokenAccentGreen  ColorToken = "accent.green"
	TokenAccentPurple ColorToken = "accent.purple"
	TokenAccentRed    ColorToken = "accent.red"
)

// AllTokens returns all valid color tokens for validation.
func AllTokens() []ColorToken {
	return []ColorToken{
		TokenTextPrimary,
		TokenTextSecondary,
		TokenTextMuted,

		TokenBorderDefault,
		TokenBorderFocus,

		TokenStatusSuccess,
		TokenStatusWarning,
		TokenStatusError,

		TokenTabBarBackground,
		TokenTabBarBackgroundHover,
		TokenTabBarBorder,

		TokenTabBackground,
		TokenTabBackgroundHover,
		TokenTabBackgroundActive,
		TokenTabBorder,
		TokenTabBorderActive,
		TokenTabText,
		TokenTabTextActive,
		TokenTabIcon,
		TokenTabIconActive,

		TokenAccentBlue,
		TokenAccentGreen,
		TokenAccentPurple,
		TokenAccentRed,
	}
}
