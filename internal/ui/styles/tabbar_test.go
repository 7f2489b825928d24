package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"
)

func TestResolveTabBar_Deterministic(t *testing.T) {
	require.NoError(t, ApplyTheme(ThemeConfig{}))

	for _, style := range TabBarStyles() {
		for _, hovered := range []bool{false, true} {
			for _, selected := range []bool{false, true} {
				a := ResolveTabBar(style, hovered, selected)
				b := ResolveTabBar(style, hovered, selected)
				require.Equal(t, a, b, "style=%s hovered=%v selected=%v", style, hovered, selected)
			}
		}
	}
}

func TestResolveTabBar_States(t *testing.T) {
	require.NoError(t, ApplyTheme(ThemeConfig{}))

	idle := ResolveTabBar(TabBarDefault, false, false)
	require.Equal(t, TabBarBackgroundColor, idle.Background)
	require.Equal(t, TabBackgroundColor, idle.TabLabelBackground)
	require.Equal(t, TabTextColor, idle.TextColor)

	hovered := ResolveTabBar(TabBarDefault, true, false)
	require.Equal(t, TabBarBackgroundHoverColor, hovered.Background)
	require.Equal(t, TabBackgroundHoverColor, hovered.TabLabelBackground)

	active := ResolveTabBar(TabBarDefault, false, true)
	require.Equal(t, TabBackgroundActiveColor, active.TabLabelBackground)
	require.Equal(t, TabTextActiveColor, active.TextColor)
	require.Equal(t, TabIconActiveColor, active.IconColor)
	require.Equal(t, TabBorderActiveColor, active.TabLabelBorderColor)

	activeHovered := ResolveTabBar(TabBarDefault, true, true)
	require.Equal(t, TabBackgroundActiveColor, activeHovered.TabLabelBackground, "selection wins over hover")
	require.Equal(t, 2, activeHovered.TabLabelBorderWidth)
}

func TestResolveTabBar_VariantAccents(t *testing.T) {
	require.NoError(t, ApplyTheme(ThemeConfig{}))

	tests := []struct {
		style TabBarStyle
		want  any
	}{
		{TabBarDefault, TabBackgroundActiveColor},
		{TabBarBlue, AccentBlueColor},
		{TabBarGreen, AccentGreenColor},
		{TabBarPurple, AccentPurpleColor},
		{TabBarRed, AccentRedColor},
	}
	for _, tt := range tests {
		t.Run(string(tt.style), func(t *testing.T) {
			got := ResolveTabBar(tt.style, false, true)
			require.Equal(t, tt.want, got.TabLabelBackground)

			// Variants only affect the selected tab
			idle := ResolveTabBar(tt.style, false, false)
			require.Equal(t, TabBackgroundColor, idle.TabLabelBackground)
		})
	}
}

func TestResolveTabBar_FollowsTheme(t *testing.T) {
	t.Cleanup(func() { _ = ApplyTheme(ThemeConfig{}) })

	require.NoError(t, ApplyTheme(ThemeConfig{
		Colors: map[string]string{"tab.background.active": "#123456"},
	}))

	got := ResolveTabBar(TabBarDefault, false, true)
	bg, ok := got.TabLabelBackground.(lipgloss.AdaptiveColor)
	require.True(t, ok)
	require.Equal(t, "#123456", bg.Dark)
}

func TestParseTabBarStyle(t *testing.T) {
	got, err := ParseTabBarStyle(" Purple ")
	require.NoError(t, err)
	require.Equal(t, TabBarPurple, got)

	got, err = ParseTabBarStyle("")
	require.NoError(t, err)
	require.Equal(t, TabBarDefault, got)

	_, err = ParseTabBarStyle("plaid")
	require.Error(t, err)
}
