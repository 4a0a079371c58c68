// Command cs-stellar computes closed-form stellar evolutionary tracks, from
// pre-main-sequence contraction through the giant stages to the terminal
// remnant, for initial masses between 0.1 and 100 solar masses.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cosmicstudio/cs-stellar/internal/config"
	"github.com/cosmicstudio/cs-stellar/internal/logging"
	"github.com/cosmicstudio/cs-stellar/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "cs-stellar",
	Short: "Closed-form stellar evolution tracks",
	Long: `cs-stellar computes the life of a star from textbook scaling relations:
pre-main-sequence contraction, the main sequence, the giant stages, and the
terminal remnant. Tracks are deterministic; the same inputs always yield the
same snapshots and the same track ID.`,
	Version: version.Version,
}

// Populated by initConfig before any command runs.
var (
	cfgFile string
	cfg     config.Config
	logger  *logging.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default .cosmicstudio.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("color", "", "colored output: auto, always, never")
	_ = viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("color", rootCmd.PersistentFlags().Lookup("color"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".cosmicstudio")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("COSMIC")
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()

	cfg = config.Load()
	logger = logging.New(cfg.LogLevel)
}
