package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/josephgoksu/sejong/types"
	"gopkg.in/yaml.v3"
)

const fileHeader = "# Sejong configuration\n# Environment variables override these values, e.g. SEJONG_DATA_FILE.\n\n"

// DefaultAppConfig returns the configuration used when nothing is set.
func DefaultAppConfig() types.AppConfig {
	return types.AppConfig{
		Data: types.DataConfig{
			File: DefaultDataFile,
			Lock: true,
		},
		Log: types.LogConfig{
			Level:      DefaultLogLevel,
			MaxSizeMB:  DefaultLogMaxSizeMB,
			MaxBackups: DefaultLogMaxBackups,
			MaxAgeDays: DefaultLogMaxAgeDays,
		},
		UI: types.UIConfig{Theme: DefaultTheme},
	}
}

// WriteConfig writes cfg as YAML to path. An existing file is only replaced
// when force is set.
func WriteConfig(path string, cfg types.AppConfig, force bool) error {
	if path == "" {
		return fmt.Errorf("config path cannot be empty")
	}
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config file %s already exists (use --force to overwrite)", path)
	}

	if err := validate.Struct(&cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, append([]byte(fileHeader), data...), 0o644)
}
