package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cosmicstudio/cs-stellar/internal/evolution"
	"github.com/cosmicstudio/cs-stellar/internal/preset"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the built-in star scenarios",
	Long: `Lists the compiled-in scenario catalog. A preset fixes the initial mass
and, for some scenarios, a non-solar composition; pass its key to the track,
state or trace command via --preset.`,
	RunE: runPresets,
}

func init() {
	rootCmd.AddCommand(presetsCmd)
}

func runPresets(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%-16s %-20s %-8s %-14s %s\n", "Key", "Name", "Msun", "Regime", "Ends as")
	fmt.Fprintln(out, strings.Repeat("─", 78))

	for _, sc := range preset.Scenarios {
		regime := evolution.ClassifyRegime(sc.Mass)
		fmt.Fprintf(out, "%-16s %-20s %-8.2f %-14s %s\n",
			sc.Key, sc.Name, sc.Mass, regime, regime.TerminalPhase().Label())
		fmt.Fprintf(out, "  %s\n", sc.Description)
	}
	return nil
}
