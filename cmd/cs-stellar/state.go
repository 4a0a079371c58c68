package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cosmicstudio/cs-stellar/internal/evolution"
)

var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Inspect one moment of a track",
	Long: `Computes a track and prints a detail card for the state at a given age,
or at a fraction of the total track span.

  --age       age in years since formation
  --fraction  position in [0, 1] along the whole track

Exactly one of the two must be given. Ages outside [0, final age] are an
error, never clamped.`,
	RunE: runState,
}

func init() {
	addStarFlags(stateCmd)
	stateCmd.Flags().Float64("age", 0, "age in years")
	stateCmd.Flags().Float64("fraction", 0, "track fraction in [0, 1]")
	rootCmd.AddCommand(stateCmd)
}

func runState(cmd *cobra.Command, _ []string) error {
	hasAge := cmd.Flags().Changed("age")
	hasFraction := cmd.Flags().Changed("fraction")
	if hasAge == hasFraction {
		return fmt.Errorf("give exactly one of --age or --fraction")
	}

	track, err := starFromFlags(cmd)
	if err != nil {
		return err
	}

	var s evolution.State
	if hasAge {
		age, _ := cmd.Flags().GetFloat64("age")
		s, err = track.StateAtAge(age)
	} else {
		fraction, _ := cmd.Flags().GetFloat64("fraction")
		s, err = track.StateAtFraction(fraction)
	}
	if err != nil {
		return err
	}

	evolution.WriteStateCard(cmd.OutOrStdout(), track, s)
	return nil
}
