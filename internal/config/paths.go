package config

import (
	"os"
	"path/filepath"
)

// GetGlobalConfigDir returns the directory holding the user-wide config file
// (the home directory). It's a variable to allow overriding in tests.
var GetGlobalConfigDir = func() (string, error) {
	return os.UserHomeDir()
}

// GlobalConfigPath returns ~/.sejong.yaml.
func GlobalConfigPath() (string, error) {
	dir, err := GetGlobalConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigName+".yaml"), nil
}

// DataDir returns the directory of the task file. Crash logs are kept
// beneath it.
func DataDir(dataFile string) string {
	if dataFile == "" {
		dataFile = DefaultDataFile
	}
	return filepath.Dir(dataFile)
}
