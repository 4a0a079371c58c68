package config

import (
	"testing"

	"github.com/spf13/viper"
)

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	cfg := Load()
	if cfg.LogLevel != "info" {
		t.Errorf("log level = %q", cfg.LogLevel)
	}
	if cfg.Format != "summary" {
		t.Errorf("format = %q", cfg.Format)
	}
	if cfg.Color != "auto" {
		t.Errorf("color = %q", cfg.Color)
	}
	if cfg.TraceWidth != 60 {
		t.Errorf("trace width = %d", cfg.TraceWidth)
	}
	if cfg.Precision != 4 {
		t.Errorf("precision = %d", cfg.Precision)
	}
}

func TestLoadOverrides(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	viper.Set("format", "json")
	viper.Set("trace_width", 100)

	cfg := Load()
	if cfg.Format != "json" {
		t.Errorf("format = %q, want json", cfg.Format)
	}
	if cfg.TraceWidth != 100 {
		t.Errorf("trace width = %d, want 100", cfg.TraceWidth)
	}
}
