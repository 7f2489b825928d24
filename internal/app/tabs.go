package app

import (
	"fmt"

	"github.com/zjrosen/tabbar/internal/config"
	"github.com/zjrosen/tabbar/internal/pubsub"
	"github.com/zjrosen/tabbar/internal/ui/shared/tabbar"
	"github.com/zjrosen/tabbar/internal/ui/styles"
)

// TabZoneID is the bubblezone id the tab bar is marked with.
const TabZoneID = "tabbar"

// buildTabBar turns a validated config into a tab bar publishing its
// outcomes on pub.
func buildTabBar(cfg config.Config, pub pubsub.Publisher[tabbar.Outcome[string]]) (tabbar.Model[string], error) {
	width, err := tabbar.ParseLength(cfg.Layout.Width)
	if err != nil {
		return tabbar.Model[string]{}, fmt.Errorf("layout.width: %w", err)
	}
	height, err := tabbar.ParseLength(cfg.Layout.Height)
	if err != nil {
		return tabbar.Model[string]{}, fmt.Errorf("layout.height: %w", err)
	}
	tabWidth, err := tabbar.ParseLength(cfg.Layout.TabWidth)
	if err != nil {
		return tabbar.Model[string]{}, fmt.Errorf("layout.tab_width: %w", err)
	}
	style, err := styles.ParseTabBarStyle(cfg.Style)
	if err != nil {
		return tabbar.Model[string]{}, err
	}
	orientation, err := config.ParseOrientation(cfg.Orientation)
	if err != nil {
		return tabbar.Model[string]{}, err
	}

	tabs := cfg.GetTabs()
	entries := make([]tabbar.Entry[string], 0, len(tabs))
	for _, t := range tabs {
		entries = append(entries, tabbar.Entry[string]{ID: t.ID, Label: t.TabLabel()})
	}

	m := tabbar.WithTabLabels(entries, nil).
		Width(width).
		Height(height).
		TabWidth(tabWidth).
		MaxHeight(cfg.Layout.MaxHeight).
		IconSize(cfg.Layout.IconSize).
		TextSize(cfg.Layout.TextSize).
		CloseSize(cfg.Layout.CloseSize).
		Padding(cfg.Layout.Padding).
		VerticalPadding(cfg.Layout.VerticalPadding).
		Spacing(cfg.Layout.Spacing).
		Style(style).
		Orientation(orientation).
		Zone(TabZoneID).
		Publisher(pub).
		Focus()
	if cfg.Closable {
		m = m.OnClose(tabbar.Closed[string])
	}
	if cfg.Active != "" {
		m = m.SetActiveTab(cfg.Active)
	}
	return m, nil
}

// tabConfigs converts the bar's current entries back to config form,
// keeping the icon names and labels of tabs that came from cfg.
func tabConfigs(entries []tabbar.Entry[string], known []config.TabConfig) []config.TabConfig {
	byID := make(map[string]config.TabConfig, len(known))
	for _, t := range known {
		byID[t.ID] = t
	}
	out := make([]config.TabConfig, 0, len(entries))
	for _, e := range entries {
		if t, ok := byID[e.ID]; ok {
			out = append(out, t)
			continue
		}
		t := config.TabConfig{ID: e.ID}
		if icon, ok := e.Label.Icon(); ok {
			t.Icon = string(icon)
		}
		if text, ok := e.Label.Text(); ok {
			t.Label = text
		}
		out = append(out, t)
	}
	return out
}
