package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cosmicstudio/cs-stellar/internal/stellar"
)

var constantsCmd = &cobra.Command{
	Use:   "constants",
	Short: "Print the physical constants behind the calculator",
	RunE:  runConstants,
}

func init() {
	rootCmd.AddCommand(constantsCmd)
}

func runConstants(cmd *cobra.Command, _ []string) error {
	rows := []struct {
		name  string
		value float64
		unit  string
	}{
		{"Gravitational constant G", stellar.G, "m^3 kg^-1 s^-2"},
		{"Speed of light c", stellar.SpeedOfLight, "m/s"},
		{"Stefan-Boltzmann sigma", stellar.StefanBoltzmann, "W m^-2 K^-4"},
		{"Boltzmann constant k", stellar.Boltzmann, "J/K"},
		{"Hydrogen atom mass", stellar.HydrogenMass, "kg"},
		{"Radiation constant a", stellar.RadiationConstant, "J m^-3 K^-4"},
		{"Solar mass", stellar.SolarMass, "kg"},
		{"Solar radius", stellar.SolarRadius, "m"},
		{"Solar luminosity", stellar.SolarLuminosity, "W"},
		{"Solar effective temperature", stellar.SolarTemperature, "K"},
		{"Julian year", stellar.Year, "s"},
	}

	out := cmd.OutOrStdout()
	for _, r := range rows {
		fmt.Fprintf(out, "%-28s %-15.6g %s\n", r.name, r.value, r.unit)
	}
	fmt.Fprintf(out, "%-28s X=%.4f Y=%.4f Z=%.4f\n", "Solar composition",
		stellar.SolarX, stellar.SolarY, stellar.SolarZ)
	return nil
}
