// Package config provides centralized configuration constants for Sejong.
// All default values should be defined here to ensure a single source of truth.
package config

import "github.com/spf13/viper"

const (
	// ConfigName is the config file base name searched for in the working
	// and home directories (.sejong.yaml).
	ConfigName = ".sejong"

	// EnvPrefix prefixes environment overrides, e.g. SEJONG_DATA_FILE.
	EnvPrefix = "SEJONG"
)

// Defaults for the task file
const (
	// DefaultDataFile is the task file used when none is configured
	DefaultDataFile = "./data/sejong.txt"
)

// Defaults for the rotating log file
const (
	DefaultLogLevel      = "info"
	DefaultLogMaxSizeMB  = 10
	DefaultLogMaxBackups = 3
	DefaultLogMaxAgeDays = 28
)

// DefaultTheme selects colored output in the TUI.
const DefaultTheme = "color"

// SetDefaults registers every default on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("verbose", false)
	v.SetDefault("data.file", DefaultDataFile)
	v.SetDefault("data.lock", true)
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.maxSizeMB", DefaultLogMaxSizeMB)
	v.SetDefault("log.maxBackups", DefaultLogMaxBackups)
	v.SetDefault("log.maxAgeDays", DefaultLogMaxAgeDays)
	v.SetDefault("ui.theme", DefaultTheme)
}
