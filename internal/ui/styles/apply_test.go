package styles

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApplyTheme_Default(t *testing.T) {
	err := ApplyTheme(ThemeConfig{})
	require.NoError(t, err)
	require.Equal(t, DefaultPreset.Colors[TokenTextPrimary], TextPrimaryColor.Dark)
	require.Equal(t, DefaultPreset.Colors[TokenTabBackgroundActive], TabBackgroundActiveColor.Dark)
}

func TestApplyTheme_Preset(t *testing.T) {
	t.Cleanup(func() { _ = ApplyTheme(ThemeConfig{}) })

	err := ApplyTheme(ThemeConfig{Preset: "nord"})
	require.NoError(t, err)
	require.Equal(t, NordPreset.Colors[TokenTabBackgroundActive], TabBackgroundActiveColor.Dark)
	require.Equal(t, NordPreset.Colors[TokenTabBarBackground], TabBarBackgroundColor.Dark)
}

func TestApplyTheme_PresetWithOverride(t *testing.T) {
	t.Cleanup(func() { _ = ApplyTheme(ThemeConfig{}) })

	err := ApplyTheme(ThemeConfig{
		Preset: "dracula",
		Colors: map[string]string{
			"tab.text": "#00FF00",
		},
	})
	require.NoError(t, err)
	require.Equal(t, "#00FF00", TabTextColor.Dark)
	require.Equal(t, "#00FF00", TabTextColor.Light)
	require.Equal(t, DraculaPreset.Colors[TokenTabIcon], TabIconColor.Dark)
}

func TestApplyTheme_Errors(t *testing.T) {
	tests := []struct {
		name    string
		cfg     ThemeConfig
		wantErr string
	}{
		{
			name:    "unknown preset",
			cfg:     ThemeConfig{Preset: "nonexistent"},
			wantErr: "unknown theme preset",
		},
		{
			name:    "unknown token",
			cfg:     ThemeConfig{Colors: map[string]string{"invalid.token": "#FF0000"}},
			wantErr: "unknown color token",
		},
		{
			name:    "bad hex",
			cfg:     ThemeConfig{Colors: map[string]string{"tab.text": "not-a-color"}},
			wantErr: "invalid hex color",
		},
		{
			name:    "bad mode",
			cfg:     ThemeConfig{Mode: "sepia"},
			wantErr: "invalid theme mode",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ApplyTheme(tt.cfg)
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestApplyTheme_RunsRebuilders(t *testing.T) {
	t.Cleanup(func() { _ = ApplyTheme(ThemeConfig{}) })

	saved := styleRebuilders
	t.Cleanup(func() { styleRebuilders = saved })

	calls := 0
	RegisterStyleRebuilder(func() { calls++ })

	require.NoError(t, ApplyTheme(ThemeConfig{Preset: "nord"}))
	require.Equal(t, 1, calls)
}

func TestResolveColors_DoesNotMutate(t *testing.T) {
	require.NoError(t, ApplyTheme(ThemeConfig{}))

	colors, err := ResolveColors(ThemeConfig{Preset: "dracula"})
	require.NoError(t, err)
	require.Equal(t, DraculaPreset.Colors[TokenTabText], colors[TokenTabText])
	require.Equal(t, DefaultPreset.Colors[TokenTabText], TabTextColor.Dark)
}

func TestIsValidToken(t *testing.T) {
	tests := []struct {
		token ColorToken
		valid bool
	}{
		{TokenTextPrimary, true},
		{TokenTabBackgroundActive, true},
		{ColorToken("tabbar.background"), true},
		{ColorToken("invalid.token"), false},
		{ColorToken(""), false},
	}
	for _, tt := range tests {
		t.Run(string(tt.token), func(t *testing.T) {
			require.Equal(t, tt.valid, isValidToken(tt.token))
		})
	}
}

func TestIsValidHexColor(t *testing.T) {
	tests := []struct {
		color string
		valid bool
	}{
		{"#FFF", true},
		{"#FFFFFF", true},
		{"#abc", true},
		{"#AbCdEf", true},
		{"FFFFFF", false},   // Missing #
		{"#FF", false},      // Too short
		{"#FFFFFFF", false}, // Too long
		{"#GGGGGG", false},  // Invalid chars
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.color, func(t *testing.T) {
			require.Equal(t, tt.valid, isValidHexColor(tt.color))
		})
	}
}
