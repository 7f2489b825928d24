// Package app contains the root Bubble Tea model hosting the tab bar.
package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/tabbar/internal/config"
	"github.com/zjrosen/tabbar/internal/keys"
	"github.com/zjrosen/tabbar/internal/log"
	"github.com/zjrosen/tabbar/internal/pubsub"
	"github.com/zjrosen/tabbar/internal/ui/icons"
	"github.com/zjrosen/tabbar/internal/ui/shared/tabbar"
	"github.com/zjrosen/tabbar/internal/ui/styles"
	"github.com/zjrosen/tabbar/internal/ui/toaster"
	"github.com/zjrosen/tabbar/internal/watcher"
)

// statusHeight is the status box height including its border.
const statusHeight = 3

// configReloadedMsg carries the result of re-reading the config file.
type configReloadedMsg struct {
	cfg config.Config
	err error
}

// Model is the root application model.
type Model struct {
	cfg        config.Config
	configPath string

	tabs   tabbar.Model[string]
	keys   keys.KeyMap
	help   help.Model
	toast  toaster.Model
	width  int
	height int

	showStatus bool
	created    int
	lastEvent  string
	lastLog    string
	err        error

	cancel context.CancelFunc

	outcomes        *pubsub.Broker[tabbar.Outcome[string]]
	outcomeListener *pubsub.ContinuousListener[tabbar.Outcome[string]]
	logListener     *log.LogListener

	// File watcher for config reload (pubsub-based)
	watcherHandle   *watcher.Watcher
	watcherListener *pubsub.ContinuousListener[watcher.WatcherEvent]
}

// Options tunes optional behaviour of the application.
type Options struct {
	// Watch reloads the config when configPath changes on disk.
	Watch bool
	// Debug shows the most recent log line below the status box.
	Debug bool
}

// NewWithConfig creates the application model from a validated config.
// configPath is where tab changes are saved; "" disables saving.
func NewWithConfig(cfg config.Config, configPath string, opts Options) (Model, error) {
	ctx, cancel := context.WithCancel(context.Background())

	outcomes := pubsub.NewBroker[tabbar.Outcome[string]]()
	tabs, err := buildTabBar(cfg, outcomes)
	if err != nil {
		cancel()
		outcomes.Close()
		return Model{}, err
	}
	icons.SetASCII(cfg.UI.ASCIIIcons)

	h := help.New()
	h.Styles.ShortKey = styles.HelpStyle
	h.Styles.ShortDesc = styles.HelpStyle

	m := Model{
		cfg:             cfg,
		configPath:      configPath,
		tabs:            tabs,
		keys:            keys.DefaultKeyMap(),
		help:            h,
		showStatus:      cfg.UI.ShowStatusBar,
		cancel:          cancel,
		outcomes:        outcomes,
		outcomeListener: pubsub.NewContinuousListener(ctx, outcomes),
	}
	m.keys.Tabs = tabs.Keys()

	if opts.Debug {
		m.logListener = log.NewListener(ctx)
	}

	if opts.Watch && configPath != "" {
		w, err := watcher.New(watcher.DefaultConfig(configPath))
		if err == nil {
			if err := w.Start(); err == nil {
				m.watcherHandle = w
				m.watcherListener = pubsub.NewContinuousListener(ctx, w.Broker())
			} else {
				_ = w.Stop()
				log.Warn(log.CatWatcher, "Config watcher disabled", "error", err)
			}
		}
	}

	return m, nil
}

// Init implements tea.Model. It starts the outcome, log and watcher listeners.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.outcomeListener.Listen()}
	if m.logListener != nil {
		cmds = append(cmds, m.logListener.Listen())
	}
	if m.watcherListener != nil {
		cmds = append(cmds, m.watcherListener.Listen())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.tabs = m.tabs.SetSize(msg.Width, 0)
		m.help.Width = msg.Width
		return m, nil

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.tabs, cmd = m.tabs.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tabbar.SelectedMsg[string]:
		m.tabs = m.tabs.SetActiveTab(msg.ID)
		return m, nil

	case tabbar.ClosedMsg[string]:
		return m.handleClosed(msg.ID)

	case toaster.DismissMsg:
		m.toast = m.toast.Update(msg)
		return m, nil

	case pubsub.Event[tabbar.Outcome[string]]:
		m.lastEvent = fmt.Sprintf("%s %s", msg.Type, m.tabTitle(msg.Payload.ID))
		return m, m.outcomeListener.Listen()

	case log.LogEvent:
		m.lastLog = strings.TrimRight(msg.Payload, "\n")
		return m, m.logListener.Listen()

	case pubsub.Event[watcher.WatcherEvent]:
		switch msg.Payload.Type {
		case watcher.ConfigChanged:
			log.Debug(log.CatWatcher, "Config changed, reloading", "path", msg.Payload.Path)
			return m, tea.Batch(m.reloadCmd(), m.watcherListener.Listen())
		case watcher.WatcherError:
			log.Warn(log.CatWatcher, "Watcher error received", "error", msg.Payload.Error)
		}
		return m, m.watcherListener.Listen()

	case configReloadedMsg:
		return m.handleReloaded(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.ToggleStatus):
		m.showStatus = !m.showStatus
		return m, nil

	case key.Matches(msg, m.keys.ToggleFocus):
		if m.tabs.Focused() {
			m.tabs = m.tabs.Blur()
		} else {
			m.tabs = m.tabs.Focus()
		}
		return m, nil

	case key.Matches(msg, m.keys.ToggleASCII):
		icons.SetASCII(!icons.ASCII())
		return m, nil

	case key.Matches(msg, m.keys.NewTab):
		m.created++
		id := uuid.NewString()
		m.tabs = m.tabs.Push(id, tabbar.IconTextLabel(icons.File, fmt.Sprintf("New %d", m.created)))
		log.Debug(log.CatTabs, "Created tab", "id", id)
		return m, nil

	case key.Matches(msg, m.keys.Save):
		return m.save()

	case key.Matches(msg, m.keys.Reload):
		if m.configPath == "" {
			return m, nil
		}
		return m, m.reloadCmd()
	}

	var cmd tea.Cmd
	m.tabs, cmd = m.tabs.Update(msg)
	return m, cmd
}

// handleClosed removes the tab and persists the shorter list.
func (m Model) handleClosed(id string) (Model, tea.Cmd) {
	m.tabs = m.tabs.Remove(id)
	m.cfg.Tabs = tabConfigs(m.tabs.Entries(), m.cfg.GetTabs())
	// A saved active id must name a saved tab or the next load fails.
	activeMoved := m.cfg.Active == id
	if activeMoved {
		m.cfg.Active, _ = m.tabs.ActiveID()
	}
	if m.configPath == "" {
		return m, nil
	}
	if err := config.SaveTabs(m.configPath, m.cfg.Tabs); err != nil {
		return m.fail(log.CatConfig, "Failed to save tabs", err)
	}
	if activeMoved {
		if err := config.SaveActive(m.configPath, m.cfg.Active); err != nil {
			return m.fail(log.CatConfig, "Failed to save active tab", err)
		}
	}
	return m, nil
}

// save writes the tab list and the active tab.
func (m Model) save() (Model, tea.Cmd) {
	m.cfg.Tabs = tabConfigs(m.tabs.Entries(), m.cfg.GetTabs())
	if id, ok := m.tabs.ActiveID(); ok {
		m.cfg.Active = id
	}
	if m.configPath == "" {
		return m, nil
	}
	if err := config.SaveTabs(m.configPath, m.cfg.Tabs); err != nil {
		return m.fail(log.CatConfig, "Failed to save tabs", err)
	}
	if err := config.SaveActive(m.configPath, m.cfg.Active); err != nil {
		return m.fail(log.CatConfig, "Failed to save active tab", err)
	}
	m.err = nil
	m.lastEvent = "saved " + m.configPath
	return m.notify(fmt.Sprintf("Saved %d tabs", len(m.cfg.Tabs)), toaster.LevelSuccess)
}

// fail logs err, keeps it in the status box and shows it as a notice.
func (m Model) fail(cat log.Category, msg string, err error) (Model, tea.Cmd) {
	log.ErrorErr(cat, msg, err, "path", m.configPath)
	m.err = err
	return m.notify(msg, toaster.LevelError)
}

func (m Model) notify(msg string, level toaster.Level) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.toast, cmd = m.toast.Show(msg, level, toaster.DefaultDuration)
	return m, cmd
}

func (m Model) reloadCmd() tea.Cmd {
	path := m.configPath
	return func() tea.Msg {
		cfg, err := config.Load(path)
		return configReloadedMsg{cfg: cfg, err: err}
	}
}

// handleReloaded swaps in a reloaded config, keeping the active tab when it
// still exists.
func (m Model) handleReloaded(msg configReloadedMsg) (Model, tea.Cmd) {
	if msg.err != nil {
		return m.fail(log.CatConfig, "Config reload failed", msg.err)
	}
	if err := styles.ApplyTheme(msg.cfg.Theme.StylesTheme()); err != nil {
		return m.fail(log.CatTheme, "Theme reload failed", err)
	}

	active, hasActive := m.tabs.ActiveID()
	tabs, err := buildTabBar(msg.cfg, m.outcomes)
	if err != nil {
		return m.fail(log.CatConfig, "Config reload failed", err)
	}
	if hasActive {
		tabs = tabs.SetActiveTab(active)
	}
	if !m.tabs.Focused() {
		tabs = tabs.Blur()
	}
	icons.SetASCII(msg.cfg.UI.ASCIIIcons)

	m.cfg = msg.cfg
	m.tabs = tabs.SetSize(m.width, 0)
	m.keys.Tabs = tabs.Keys()
	m.err = nil
	m.lastEvent = "reloaded " + m.configPath
	log.Info(log.CatConfig, "Config reloaded", "path", m.configPath, "tabs", tabs.Size())
	return m.notify("Config reloaded", toaster.LevelInfo)
}

// tabTitle is the display name of a tab, falling back to its id.
func (m Model) tabTitle(id string) string {
	for _, e := range m.tabs.Entries() {
		if e.ID == id {
			if s := e.Label.String(); s != "" {
				return s
			}
		}
	}
	return id
}

// View implements tea.Model.
func (m Model) View() string {
	parts := []string{m.tabs.View()}

	if m.showStatus {
		parts = append(parts, m.statusView())
	}
	if m.lastLog != "" {
		parts = append(parts, styles.HelpStyle.Render(m.lastLog))
	}
	if m.cfg.UI.ShowHelp {
		parts = append(parts, m.help.View(m.keys))
	}

	view := zone.Scan(lipgloss.JoinVertical(lipgloss.Left, parts...))
	return m.toast.Overlay(view, m.width, m.height)
}

func (m Model) statusView() string {
	var content string
	switch {
	case m.err != nil:
		content = styles.ErrorStyle.Render(m.err.Error())
	default:
		event := m.lastEvent
		if event == "" {
			event = "none"
		}
		active, _ := m.tabs.ActiveID()
		content = styles.StatusBarStyle.Render(fmt.Sprintf(
			"active: %s  last: %s  cursor: %s",
			m.tabTitle(active), event, m.tabs.Interaction(),
		))
	}

	width := m.width
	if width <= 0 {
		width = lipgloss.Width(content) + 2
	}
	return styles.RenderWithTitleBorder(content, "Status", width, statusHeight, m.tabs.Focused(),
		styles.TextSecondaryColor, styles.BorderFocusColor)
}

// Tabs returns the hosted tab bar.
func (m Model) Tabs() tabbar.Model[string] { return m.tabs }

// Config returns the configuration as last loaded or saved.
func (m Model) Config() config.Config { return m.cfg }

// Close releases resources held by the application.
func (m *Model) Close() error {
	if m.cancel != nil {
		m.cancel()
	}
	if m.outcomes != nil {
		m.outcomes.Close()
	}
	if m.watcherHandle != nil {
		if err := m.watcherHandle.Stop(); err != nil {
			return err
		}
	}
	return nil
}
