package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cosmicstudio/cs-stellar/internal/evolution"
)

var traceCmd = &cobra.Command{
	Use:   "trace",
	Short: "Sparkline of luminosity across a track",
	Long: `Downsamples log luminosity over the whole track into a fixed-width
sparkline. Columns without a photosphere, such as a black-hole tail, render
blank. Star selection flags match the track command.`,
	RunE: runTrace,
}

func init() {
	addStarFlags(traceCmd)
	traceCmd.Flags().Int("width", 0, "columns in the sparkline (default from config)")
	rootCmd.AddCommand(traceCmd)
}

func runTrace(cmd *cobra.Command, _ []string) error {
	track, err := starFromFlags(cmd)
	if err != nil {
		return err
	}

	width, _ := cmd.Flags().GetInt("width")
	if width == 0 {
		width = cfg.TraceWidth
	}
	tr := evolution.ComputeLuminosityTrace(track, width)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, renderSparkline(tr.Sparkline()))
	fmt.Fprintf(out, "log L in [%.3g, %.3g] over %s, ends as %s\n",
		tr.MinLogL, tr.MaxLogL,
		evolution.FormatAge(track.FinalAge()), track.FinalState().Phase.Label())
	return nil
}
