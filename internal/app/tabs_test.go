package app

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/tabbar/internal/config"
	"github.com/zjrosen/tabbar/internal/pubsub"
	"github.com/zjrosen/tabbar/internal/ui/icons"
	"github.com/zjrosen/tabbar/internal/ui/shared/tabbar"
)

func TestBuildTabBar_AppliesLayout(t *testing.T) {
	cfg := testConfig()
	cfg.Layout.Width = "fixed(30)"
	cfg.Layout.TabWidth = "fill"
	cfg.Layout.Spacing = 1
	broker := pubsub.NewBroker[tabbar.Outcome[string]]()
	defer broker.Close()

	m, err := buildTabBar(cfg, broker)
	require.NoError(t, err)

	l := m.Layout(tabbar.Limits{MaxWidth: 80})
	require.Equal(t, 30, l.Bounds.W)
	require.Len(t, l.Tabs, 2)
	require.Equal(t, 16, l.Tabs[1].Bounds.X, "two fill tabs share 29 cells around one gap")
	require.Equal(t, tabbar.Fixed(30), m.GetWidth())
}

func TestBuildTabBar_DefaultTabsWhenEmpty(t *testing.T) {
	cfg := config.Defaults()
	cfg.Tabs = nil

	m, err := buildTabBar(cfg, nil)
	require.NoError(t, err)

	require.Equal(t, len(config.DefaultTabs()), m.Size())
	id, _ := m.ActiveID()
	require.Equal(t, "home", id)
}

func TestBuildTabBar_RejectsBadLength(t *testing.T) {
	cfg := testConfig()
	cfg.Layout.Height = "tall"

	_, err := buildTabBar(cfg, nil)
	require.ErrorContains(t, err, "layout.height")
}

func TestTabConfigs_KeepsKnownAndConvertsNew(t *testing.T) {
	known := []config.TabConfig{{ID: "a", Label: "Alpha", Icon: "home"}}
	entries := []tabbar.Entry[string]{
		{ID: "a", Label: tabbar.IconTextLabel(icons.Home, "Alpha")},
		{ID: "n", Label: tabbar.IconLabel(icons.Star)},
		{ID: "t", Label: tabbar.TextLabel("Text")},
	}

	got := tabConfigs(entries, known)

	require.Equal(t, []config.TabConfig{
		{ID: "a", Label: "Alpha", Icon: "home"},
		{ID: "n", Icon: "star"},
		{ID: "t", Label: "Text"},
	}, got)
}
