/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package types

// AppConfig represents the complete application configuration
type AppConfig struct {
	Verbose bool       `mapstructure:"verbose" yaml:"verbose"`
	Config  string     `mapstructure:"config" yaml:"-"`
	Data    DataConfig `mapstructure:"data" yaml:"data" validate:"required"`
	Log     LogConfig  `mapstructure:"log" yaml:"log" validate:"required"`
	UI      UIConfig   `mapstructure:"ui" yaml:"ui"`
}

// DataConfig holds data storage configuration
type DataConfig struct {
	// File is the flat task file, created with its parent directory on first save.
	File string `mapstructure:"file" yaml:"file" validate:"required"`
	// Lock enables an advisory lock file next to File while saving.
	Lock bool `mapstructure:"lock" yaml:"lock"`
}

// LogConfig holds the rotating log file settings
type LogConfig struct {
	File       string `mapstructure:"file" yaml:"file"`
	Level      string `mapstructure:"level" yaml:"level" validate:"required,oneof=debug info warn error"`
	MaxSizeMB  int    `mapstructure:"maxSizeMB" yaml:"maxSizeMB" validate:"min=1,max=1024"`
	MaxBackups int    `mapstructure:"maxBackups" yaml:"maxBackups" validate:"min=0,max=100"`
	MaxAgeDays int    `mapstructure:"maxAgeDays" yaml:"maxAgeDays" validate:"min=0,max=3650"`
}

// UIConfig holds presentation settings
type UIConfig struct {
	Theme string `mapstructure:"theme" yaml:"theme" validate:"omitempty,oneof=plain color"`
}
