package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/tabbar/internal/app"
	"github.com/zjrosen/tabbar/internal/config"
	"github.com/zjrosen/tabbar/internal/log"
	"github.com/zjrosen/tabbar/internal/ui/styles"
)

func init() {
	// Force lipgloss/termenv to query terminal background color BEFORE
	// any Bubble Tea program starts, so the OSC 11 response cannot race
	// with Bubble Tea's input loop.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

// localConfigPath is both the first lookup location and where a default
// config is written on first run.
var localConfigPath = filepath.Join(".tabbar", "config.yaml")

const debugLogPath = "tabbar-debug.log"

var (
	version = "dev"
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:     "tabbar",
	Short:   "A clickable tab bar for the terminal",
	Long:    `A terminal tab bar with mouse selection, close buttons, themes and live config reload.`,
	Version: version,
	RunE:    runApp,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: .tabbar/config.yaml, then ~/.config/tabbar/config.yaml)")
	rootCmd.Flags().Bool("debug", false,
		"write a debug log to "+debugLogPath+" (also enabled by TABBAR_DEBUG)")
	rootCmd.Flags().Bool("ascii", false,
		"use ASCII fallbacks for built-in icons")
	rootCmd.Flags().Bool("no-watch", false,
		"do not reload when the config file changes")
	rootCmd.Flags().String("color", "auto",
		"color profile: auto, ascii, ansi, ansi256, truecolor")
}

// resolveConfigPath returns the config file to use. An explicit path wins;
// otherwise .tabbar/config.yaml, then ~/.config/tabbar/config.yaml. When
// neither exists a default config is written to .tabbar/config.yaml.
func resolveConfigPath(explicit, home string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if _, err := os.Stat(localConfigPath); err == nil {
		return localConfigPath, nil
	}

	v := config.NewViper()
	v.AddConfigPath(filepath.Join(home, ".config", "tabbar"))
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return "", fmt.Errorf("reading config: %w", err)
		}
		if err := config.WriteDefaultConfig(localConfigPath); err != nil {
			return "", err
		}
		return localConfigPath, nil
	}
	return v.ConfigFileUsed(), nil
}

// parseColorProfile maps the --color flag to a termenv profile. ok is false
// for "auto", which keeps the detected profile.
func parseColorProfile(s string) (termenv.Profile, bool, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return termenv.Ascii, false, nil
	case "ascii", "none":
		return termenv.Ascii, true, nil
	case "ansi":
		return termenv.ANSI, true, nil
	case "ansi256":
		return termenv.ANSI256, true, nil
	case "truecolor":
		return termenv.TrueColor, true, nil
	}
	return termenv.Ascii, false, fmt.Errorf("unknown color profile %q", s)
}

func debugEnabled(cmd *cobra.Command) bool {
	if on, _ := cmd.Flags().GetBool("debug"); on {
		return true
	}
	v := os.Getenv("TABBAR_DEBUG")
	return v != "" && v != "0" && v != "false"
}

func runApp(cmd *cobra.Command, args []string) error {
	debug := debugEnabled(cmd)
	if debug {
		cleanup, err := log.InitWithTeaLog(debugLogPath, "tabbar")
		if err != nil {
			return err
		}
		defer cleanup()
	}

	colorFlag, _ := cmd.Flags().GetString("color")
	profile, force, err := parseColorProfile(colorFlag)
	if err != nil {
		return err
	}
	if force {
		lipgloss.SetColorProfile(profile)
	}

	home, _ := os.UserHomeDir()
	configPath, err := resolveConfigPath(cfgFile, home)
	if err != nil {
		return err
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if ascii, _ := cmd.Flags().GetBool("ascii"); ascii {
		cfg.UI.ASCIIIcons = true
	}
	if err := styles.ApplyTheme(cfg.Theme.StylesTheme()); err != nil {
		return fmt.Errorf("applying theme: %w", err)
	}
	log.Info(log.CatUI, "Starting", "config", configPath, "version", version)

	zone.NewGlobal()
	defer zone.Close()

	noWatch, _ := cmd.Flags().GetBool("no-watch")
	model, err := app.NewWithConfig(cfg, configPath, app.Options{Watch: !noWatch, Debug: debug})
	if err != nil {
		return err
	}
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	_, err = p.Run()

	// Clean up watcher and listener resources
	if closeErr := model.Close(); closeErr != nil && err == nil {
		err = closeErr
	}

	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
