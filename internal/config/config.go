// Package config provides configuration loading and defaults for i3bar-info.
//
// No configuration file is required: DefaultConfig describes a typical laptop
// and every value can be overridden from a YAML file or the environment.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Environment variables recognised by ApplyEnvOverrides and the entry point.
const (
	EnvConfigPath  = "I3BAR_INFO_CONFIG_PATH"
	EnvBatteryPath = "I3BAR_INFO_BATTERY_PATH"
	EnvThermalPath = "I3BAR_INFO_THERMAL_PATH"
	EnvTimezone    = "I3BAR_INFO_TIMEZONE"
	EnvLogLevel    = "I3BAR_INFO_LOG_LEVEL"
)

// PathsConfig holds the sysfs pseudo-files read by the providers.
type PathsConfig struct {
	Battery string `yaml:"battery"`
	Thermal string `yaml:"thermal"`
}

// ClockConfig controls the datetime block.
type ClockConfig struct {
	// Timezone is an IANA zone name. Empty means the process local zone.
	Timezone string `yaml:"timezone"`
}

// LogConfig controls diagnostic logging on stderr.
type LogConfig struct {
	// Level is one of debug, info, warn or error.
	Level string `yaml:"level"`
}

// Config is the top-level configuration structure for i3bar-info.
type Config struct {
	Paths PathsConfig `yaml:"paths"`
	Clock ClockConfig `yaml:"clock"`
	Log   LogConfig   `yaml:"log"`
}

// LoadConfig reads a YAML configuration file from path. Keys absent from the
// file keep their DefaultConfig values. On error, nil is returned for the
// config pointer.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// DefaultConfig returns a new Config populated with default values. Each call
// returns a distinct instance.
func DefaultConfig() *Config {
	return &Config{
		Paths: PathsConfig{
			Battery: "/sys/class/power_supply/BAT1/capacity",
			Thermal: "/sys/class/thermal/thermal_zone0/temp",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// ApplyEnvOverrides updates cfg in place with values from environment
// variables. Empty variables are ignored.
//   - I3BAR_INFO_BATTERY_PATH overrides cfg.Paths.Battery
//   - I3BAR_INFO_THERMAL_PATH overrides cfg.Paths.Thermal
//   - I3BAR_INFO_TIMEZONE overrides cfg.Clock.Timezone
//   - I3BAR_INFO_LOG_LEVEL overrides cfg.Log.Level
func ApplyEnvOverrides(cfg *Config) {
	if v := os.Getenv(EnvBatteryPath); v != "" {
		cfg.Paths.Battery = v
	}
	if v := os.Getenv(EnvThermalPath); v != "" {
		cfg.Paths.Thermal = v
	}
	if v := os.Getenv(EnvTimezone); v != "" {
		cfg.Clock.Timezone = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = v
	}
}

// Validate reports the first invalid setting in cfg.
func (c *Config) Validate() error {
	if c.Paths.Battery == "" {
		return fmt.Errorf("paths.battery must not be empty")
	}
	if c.Paths.Thermal == "" {
		return fmt.Errorf("paths.thermal must not be empty")
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

// Location resolves the configured time zone.
func (c *Config) Location() (*time.Location, error) {
	if c.Clock.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Clock.Timezone)
	if err != nil {
		return nil, fmt.Errorf("clock.timezone %q: %w", c.Clock.Timezone, err)
	}
	return loc, nil
}

// LogLevel parses the configured log level.
func (c *Config) LogLevel() (slog.Level, error) {
	switch strings.ToLower(c.Log.Level) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("log.level %q: want debug, info, warn or error", c.Log.Level)
	}
}
