// Package config provides configuration types and defaults for tabbar.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/zjrosen/tabbar/internal/log"
	"github.com/zjrosen/tabbar/internal/ui/icons"
	"github.com/zjrosen/tabbar/internal/ui/shared/tabbar"
	"github.com/zjrosen/tabbar/internal/ui/styles"
)

// TabConfig defines a single tab.
type TabConfig struct {
	ID    string `mapstructure:"id"`
	Label string `mapstructure:"label"` // Text shown on the tab; empty for icon-only tabs
	Icon  string `mapstructure:"icon"`  // Built-in icon name or a literal glyph
}

// LayoutConfig holds tab bar sizing options. Lengths are "shrink", "fill",
// "fill-portion(n)" or a number of cells.
type LayoutConfig struct {
	Width           string `mapstructure:"width"`
	Height          string `mapstructure:"height"`
	TabWidth        string `mapstructure:"tab_width"`
	MaxHeight       int    `mapstructure:"max_height"`
	IconSize        int    `mapstructure:"icon_size"`
	TextSize        int    `mapstructure:"text_size"`
	CloseSize       int    `mapstructure:"close_size"`
	Padding         int    `mapstructure:"padding"`
	VerticalPadding int    `mapstructure:"vertical_padding"`
	Spacing         int    `mapstructure:"spacing"`
}

// Config holds all configuration options for tabbar.
type Config struct {
	Tabs        []TabConfig  `mapstructure:"tabs"`
	Active      string       `mapstructure:"active"`      // ID of the tab active at startup
	Closable    bool         `mapstructure:"closable"`    // Show a close glyph on every tab
	Style       string       `mapstructure:"style"`       // default, blue, green, purple, red
	Orientation string       `mapstructure:"orientation"` // horizontal (default) or vertical
	Layout      LayoutConfig `mapstructure:"layout"`
	UI          UIConfig     `mapstructure:"ui"`
	Theme       ThemeConfig  `mapstructure:"theme"`
}

// UIConfig holds user interface configuration options.
type UIConfig struct {
	ASCIIIcons    bool `mapstructure:"ascii_icons"`     // Draw icons with ASCII fallbacks
	ShowStatusBar bool `mapstructure:"show_status_bar"` // Show the last tab event below the bar
	ShowHelp      bool `mapstructure:"show_help"`       // Show the key binding footer
}

// ThemeConfig holds all theme customization options.
type ThemeConfig struct {
	// Preset loads a built-in theme as the base (optional).
	// Valid values: "default", "catppuccin-mocha", "catppuccin-latte",
	// "dracula", "nord", "high-contrast"
	Preset string `mapstructure:"preset"`

	// Mode forces light or dark mode. If empty, uses terminal detection.
	// Valid values: "light", "dark", ""
	Mode string `mapstructure:"mode"`

	// Colors allows overriding individual color tokens.
	// Supports both nested YAML structure and dot notation.
	// Example YAML:
	//   colors:
	//     tab:
	//       background: "#FF0000"
	// Or quoted dot notation:
	//   colors:
	//     "tab.background": "#FF0000"
	Colors map[string]any `mapstructure:"colors"`
}

// FlattenedColors returns the Colors map flattened to dot-notation keys.
// This handles both nested YAML structures and already-flat keys.
func (t ThemeConfig) FlattenedColors() map[string]string {
	result := make(map[string]string)
	flattenColors("", t.Colors, result)
	return result
}

// flattenColors recursively flattens a nested map into dot-notation keys.
func flattenColors(prefix string, m map[string]any, result map[string]string) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}

		switch val := v.(type) {
		case string:
			result[key] = val
		case map[string]any:
			flattenColors(key, val, result)
		case map[any]any:
			// YAML sometimes produces map[any]any instead of map[string]any
			converted := make(map[string]any)
			for mk, mv := range val {
				if strKey, ok := mk.(string); ok {
					converted[strKey] = mv
				}
			}
			flattenColors(key, converted, result)
		}
	}
}

// StylesTheme converts the theme section into the styles package's form.
func (t ThemeConfig) StylesTheme() styles.ThemeConfig {
	return styles.ThemeConfig{
		Preset: t.Preset,
		Mode:   t.Mode,
		Colors: t.FlattenedColors(),
	}
}

// TabLabel builds the tab label: icon+text, icon only or text only.
func (t TabConfig) TabLabel() tabbar.Label {
	switch {
	case t.Icon != "" && t.Label != "":
		return tabbar.IconTextLabel(icons.Icon(t.Icon), t.Label)
	case t.Icon != "":
		return tabbar.IconLabel(icons.Icon(t.Icon))
	default:
		return tabbar.TextLabel(t.Label)
	}
}

// DefaultTabs returns the tabs written to a fresh config.
func DefaultTabs() []TabConfig {
	return []TabConfig{
		{ID: "home", Label: "Home", Icon: string(icons.Home)},
		{ID: "files", Label: "Files", Icon: string(icons.Folder)},
		{ID: "shell", Label: "Shell", Icon: string(icons.Terminal)},
		{ID: "settings", Icon: string(icons.Gear)},
	}
}

// DefaultLayout returns the default sizing options.
func DefaultLayout() LayoutConfig {
	return LayoutConfig{
		Width:     "fill",
		Height:    "shrink",
		TabWidth:  "shrink",
		IconSize:  tabbar.DefaultIconSize,
		TextSize:  tabbar.DefaultTextSize,
		CloseSize: tabbar.DefaultCloseSize,
		Padding:   tabbar.DefaultPadding,
	}
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		Tabs:        DefaultTabs(),
		Active:      "home",
		Closable:    true,
		Style:       string(styles.TabBarDefault),
		Orientation: "horizontal",
		Layout:      DefaultLayout(),
		UI: UIConfig{
			ShowStatusBar: true,
			ShowHelp:      true,
		},
	}
}

// ValidateTabs checks the tab list for errors.
// Returns nil if tabs are valid or empty (will use defaults).
func ValidateTabs(tabs []TabConfig) error {
	seen := make(map[string]int, len(tabs))
	for i, tab := range tabs {
		if tab.ID == "" {
			return fmt.Errorf("tab %d: id is required", i)
		}
		if prev, ok := seen[tab.ID]; ok {
			return fmt.Errorf("tab %d (%s): duplicate id, first used by tab %d", i, tab.ID, prev)
		}
		seen[tab.ID] = i
		if tab.Label == "" && tab.Icon == "" {
			return fmt.Errorf("tab %d (%s): label or icon is required", i, tab.ID)
		}
		if tab.Icon != "" && !icons.IsSingleGlyph(icons.Icon(tab.Icon)) {
			return fmt.Errorf("tab %d (%s): icon %q is not a built-in name or a single glyph", i, tab.ID, tab.Icon)
		}
	}
	return nil
}

// ValidateLayout checks sizing options for errors.
func ValidateLayout(l LayoutConfig) error {
	for name, value := range map[string]string{"width": l.Width, "height": l.Height, "tab_width": l.TabWidth} {
		if _, err := tabbar.ParseLength(value); err != nil {
			return fmt.Errorf("layout.%s: %w", name, err)
		}
	}
	sizes := []struct {
		name  string
		value int
	}{
		{"max_height", l.MaxHeight},
		{"icon_size", l.IconSize},
		{"text_size", l.TextSize},
		{"close_size", l.CloseSize},
		{"padding", l.Padding},
		{"vertical_padding", l.VerticalPadding},
		{"spacing", l.Spacing},
	}
	for _, s := range sizes {
		if s.value < 0 {
			return fmt.Errorf("layout.%s must not be negative, got %d", s.name, s.value)
		}
	}
	return nil
}

// Validate checks the whole configuration.
func Validate(c Config) error {
	if err := ValidateTabs(c.Tabs); err != nil {
		return err
	}
	if c.Active != "" && len(c.Tabs) > 0 {
		found := false
		for _, tab := range c.Tabs {
			if tab.ID == c.Active {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("active tab %q is not in tabs", c.Active)
		}
	}
	if _, err := styles.ParseTabBarStyle(c.Style); err != nil {
		return fmt.Errorf("style: %w", err)
	}
	if _, err := ParseOrientation(c.Orientation); err != nil {
		return err
	}
	if err := ValidateLayout(c.Layout); err != nil {
		return err
	}
	return nil
}

// ParseOrientation maps the config value to a label orientation.
func ParseOrientation(s string) (tabbar.Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "horizontal":
		return tabbar.OrientationHorizontal, nil
	case "vertical":
		return tabbar.OrientationVertical, nil
	default:
		return tabbar.OrientationHorizontal, fmt.Errorf("orientation must be \"horizontal\" or \"vertical\", got %q", s)
	}
}

// GetTabs returns the configured tabs, or DefaultTabs() if none configured.
func (c Config) GetTabs() []TabConfig {
	if len(c.Tabs) > 0 {
		return c.Tabs
	}
	return DefaultTabs()
}

// KeyDelimiter separates nested viper keys. It is not "." so that dotted
// color tokens like "tab.background" stay single keys under theme.colors.
const KeyDelimiter = "::"

// NewViper returns a viper instance using KeyDelimiter with every default
// registered, so keys missing from the file keep their defaults on Unmarshal.
func NewViper() *viper.Viper {
	v := viper.NewWithOptions(viper.KeyDelimiter(KeyDelimiter))
	d := Defaults()
	key := func(parts ...string) string { return strings.Join(parts, KeyDelimiter) }
	v.SetDefault("closable", d.Closable)
	v.SetDefault("style", d.Style)
	v.SetDefault("orientation", d.Orientation)
	v.SetDefault(key("layout", "width"), d.Layout.Width)
	v.SetDefault(key("layout", "height"), d.Layout.Height)
	v.SetDefault(key("layout", "tab_width"), d.Layout.TabWidth)
	v.SetDefault(key("layout", "icon_size"), d.Layout.IconSize)
	v.SetDefault(key("layout", "text_size"), d.Layout.TextSize)
	v.SetDefault(key("layout", "close_size"), d.Layout.CloseSize)
	v.SetDefault(key("layout", "padding"), d.Layout.Padding)
	v.SetDefault(key("ui", "show_status_bar"), d.UI.ShowStatusBar)
	v.SetDefault(key("ui", "show_help"), d.UI.ShowHelp)
	return v
}

// Decode unmarshals and validates whatever v has read.
func Decode(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Load reads and validates the config file at path.
func Load(path string) (Config, error) {
	v := NewViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	cfg, err := Decode(v)
	if err != nil {
		return Config{}, err
	}
	log.Debug(log.CatConfig, "Loaded config", "path", path, "tabs", len(cfg.Tabs))
	return cfg, nil
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# Tabbar Configuration

# Tabs, left to right. Each tab needs an id and a label, an icon, or both.
# Icons are built-in names (run 'tabbar themes --icons' to list them)
# or any literal glyph.
tabs:
  - id: home
    label: Home
    icon: home
  - id: files
    label: Files
    icon: folder
  - id: shell
    label: Shell
    icon: terminal
  - id: settings
    icon: gear

# Tab active at startup (updated by ctrl+s)
active: home

# Show a close glyph on every tab
closable: true

# Tab bar style: default, blue, green, purple, red
style: default

# Icon and text arrangement: horizontal (side by side) or vertical (icon above)
orientation: horizontal

# Sizes are in terminal cells.
# Lengths: shrink, fill, fill-portion(n), fixed(n), or a number of cells.
layout:
  width: fill
  height: shrink
  tab_width: shrink
  # max_height: 3
  icon_size: 2         # 0 sizes each icon to its glyph
  text_size: 16        # Longer labels are truncated with an ellipsis (0 = no limit)
  close_size: 1
  padding: 1
  # vertical_padding: 1  # Rows above and below the label; 1 draws tab borders
  # spacing: 1

# UI settings
ui:
  ascii_icons: false      # Use ASCII fallbacks for built-in icons
  show_status_bar: true   # Show the last tab event below the bar
  show_help: true         # Show the key binding footer

# Theme configuration
# Use a preset theme or customize individual colors
theme:
  # Use a preset (run 'tabbar themes' to see available presets):
  # preset: catppuccin-mocha
  #
  # Available presets:
  #   default           - Default tabbar theme
  #   catppuccin-mocha  - Warm, cozy dark theme
  #   catppuccin-latte  - Warm, cozy light theme
  #   dracula           - Dark theme with vibrant colors
  #   nord              - Arctic, north-bluish palette
  #   high-contrast     - High contrast for accessibility
  #
  # Override specific colors (works with or without preset):
  # colors:
  #   tab.background.active: "#7D56F4"
  #   tabbar.background: "#1E1E2E"
  #
  # See all available color tokens with 'tabbar themes --tokens'
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	// Create parent directory if needed
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	// Write the template
	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
