package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TabBarStyle selects a themed appearance variant of the tab bar.
type TabBarStyle string

// Tab bar style variants. They differ in the active tab's background.
const (
	TabBarDefault TabBarStyle = "default"
	TabBarBlue    TabBarStyle = "blue"
	TabBarGreen   TabBarStyle = "green"
	TabBarPurple  TabBarStyle = "purple"
	TabBarRed     TabBarStyle = "red"
)

// TabBarStyles lists every variant in display order.
func TabBarStyles() []TabBarStyle {
	return []TabBarStyle{TabBarDefault, TabBarBlue, TabBarGreen, TabBarPurple, TabBarRed}
}

// ParseTabBarStyle maps a config value to a variant. Empty means default.
func ParseTabBarStyle(s string) (TabBarStyle, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return TabBarDefault, nil
	}
	for _, v := range TabBarStyles() {
		if string(v) == s {
			return v, nil
		}
	}
	return TabBarDefault, fmt.Errorf("unknown tab bar style %q", s)
}

// TabBarAppearance is the resolved look of the bar or of one tab.
// A nil color means transparent: whatever is underneath stays visible.
type TabBarAppearance struct {
	Background  lipgloss.TerminalColor
	BorderWidth int
	BorderColor lipgloss.TerminalColor

	TabLabelBackground  lipgloss.TerminalColor
	TabLabelBorderWidth int
	TabLabelBorderColor lipgloss.TerminalColor

	IconColor lipgloss.TerminalColor
	TextColor lipgloss.TerminalColor
}

// ResolveTabBar is the default tab bar style provider. The result depends
// only on its arguments and the currently applied theme.
func ResolveTabBar(style TabBarStyle, hovered, selected bool) TabBarAppearance {
	a := TabBarAppearance{
		Background:          TabBarBackgroundColor,
		BorderWidth:         0,
		BorderColor:         TabBarBorderColor,
		TabLabelBackground:  TabBackgroundColor,
		TabLabelBorderWidth: 1,
		TabLabelBorderColor: TabBorderColor,
		IconColor:           TabIconColor,
		TextColor:           TabTextColor,
	}

	if hovered {
		a.Background = TabBarBackgroundHoverColor
		a.TabLabelBackground = TabBackgroundHoverColor
	}

	if selected {
		a.TabLabelBackground = activeBackground(style)
		a.TabLabelBorderColor = TabBorderActiveColor
		a.IconColor = TabIconActiveColor
		a.TextColor = TabTextActiveColor
		if hovered {
			a.TabLabelBorderWidth = 2
		}
	}

	return a
}

func activeBackground(style TabBarStyle) lipgloss.TerminalColor {
	switch style {
	case TabBarBlue:
		return AccentBlueColor
	case TabBarGreen:
		return AccentGreenColor
	case TabBarPurple:
		return AccentPurpleColor
	case TabBarRed:
		return AccentRedColor
	default:
		return TabBackgroundActiveColor
	}
}
