package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/zjrosen/tabbar/internal/ui/icons"
	"github.com/zjrosen/tabbar/internal/ui/styles"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List theme presets, color tokens and built-in icons",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		showTokens, _ := cmd.Flags().GetBool("tokens")
		showIcons, _ := cmd.Flags().GetBool("icons")

		switch {
		case showTokens:
			writeTokens(out)
		case showIcons:
			writeIcons(out)
		default:
			writePresets(out)
		}
		return nil
	},
}

func init() {
	themesCmd.Flags().Bool("tokens", false, "list color tokens usable under theme.colors")
	themesCmd.Flags().Bool("icons", false, "list built-in icon names")
	rootCmd.AddCommand(themesCmd)
}

func writePresets(w io.Writer) {
	swatch := lipgloss.NewStyle().Padding(0, 1)
	for _, name := range styles.PresetNames() {
		p := styles.Presets[name]
		sample := swatch.
			Background(lipgloss.Color(p.Colors[styles.TokenTabBackgroundActive])).
			Foreground(lipgloss.Color(p.Colors[styles.TokenTabTextActive])).
			Render("tab")
		_, _ = fmt.Fprintf(w, "%-18s %s  %s\n", name, sample, p.Description)
	}
}

func writeTokens(w io.Writer) {
	for _, token := range styles.AllTokens() {
		_, _ = fmt.Fprintln(w, token)
	}
}

func writeIcons(w io.Writer) {
	for _, name := range icons.Names() {
		_, _ = fmt.Fprintf(w, "%-10s %s\n", name, icons.Glyph(name))
	}
}
