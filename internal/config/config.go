package config

import "github.com/spf13/viper"

// Config holds runtime configuration for the cs-stellar CLI.
// Values are populated from .cosmicstudio.yaml, COSMIC_* env vars, and flags.
type Config struct {
	LogLevel   string `mapstructure:"log_level"`
	Format     string `mapstructure:"format"`      // summary, json or csv
	Color      string `mapstructure:"color"`       // auto, always or never
	TraceWidth int    `mapstructure:"trace_width"` // sparkline columns
	Precision  int    `mapstructure:"precision"`   // significant digits in tabular output
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() Config {
	viper.SetDefault("log_level", "info")
	viper.SetDefault("format", "summary")
	viper.SetDefault("color", "auto")
	viper.SetDefault("trace_width", 60)
	viper.SetDefault("precision", 4)

	var cfg Config
	_ = viper.Unmarshal(&cfg)
	return cfg
}
