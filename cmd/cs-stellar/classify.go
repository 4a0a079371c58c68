package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cosmicstudio/cs-stellar/internal/evolution"
	"github.com/cosmicstudio/cs-stellar/internal/stellar"
)

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Spectral class and color for a temperature",
	Long: `Maps an effective temperature to its spectral class and prints the
catalog entry together with the blackbody display color. A temperature
exactly on a class boundary belongs to the hotter class.

With --luminosity and --radius instead of --temperature, the temperature is
derived from the Stefan-Boltzmann law first.`,
	RunE: runClassify,
}

func init() {
	classifyCmd.Flags().Float64("temperature", 0, "effective temperature in K")
	classifyCmd.Flags().Float64("luminosity", 0, "luminosity in solar units")
	classifyCmd.Flags().Float64("radius", 0, "radius in solar units")
	rootCmd.AddCommand(classifyCmd)
}

func runClassify(cmd *cobra.Command, _ []string) error {
	temp, _ := cmd.Flags().GetFloat64("temperature")

	if !cmd.Flags().Changed("temperature") {
		if !cmd.Flags().Changed("luminosity") || !cmd.Flags().Changed("radius") {
			return fmt.Errorf("give --temperature, or both --luminosity and --radius")
		}
		lum, _ := cmd.Flags().GetFloat64("luminosity")
		radius, _ := cmd.Flags().GetFloat64("radius")
		var err error
		temp, err = stellar.EffectiveTemperature(lum, radius)
		if err != nil {
			return err
		}
	}

	class := stellar.ClassFromTemperature(temp)
	ci, ok := stellar.GetClassInfo(class)
	if !ok {
		return fmt.Errorf("no catalog entry for class %s", class)
	}
	blackbody := stellar.ColorForTemperature(temp)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%-18s %s\n", "Temperature", evolution.FormatTemperature(temp))
	fmt.Fprintf(out, "%-18s %s (%s)\n", "Class", ci.Class, ci.Name)
	fmt.Fprintf(out, "%-18s %s\n", "Class range", formatClassRange(ci))
	fmt.Fprintf(out, "%-18s %s %s\n", "Catalog color", ci.Hex, swatch(ci.Hex))
	fmt.Fprintf(out, "%-18s %s %s\n", "Blackbody color", blackbody.Hex(), swatch(blackbody.Hex()))
	return nil
}

// formatClassRange renders a catalog temperature band, where a zero bound
// means the band is open on that side.
func formatClassRange(ci stellar.ClassInfo) string {
	switch {
	case ci.MaxTemp == 0:
		return fmt.Sprintf("%.0f K and hotter", ci.MinTemp)
	case ci.MinTemp == 0:
		return fmt.Sprintf("below %.0f K", ci.MaxTemp)
	default:
		return fmt.Sprintf("%.0f K to %.0f K", ci.MinTemp, ci.MaxTemp)
	}
}
