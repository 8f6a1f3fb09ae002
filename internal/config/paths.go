package config

import (
	"os"
	"path/filepath"
)

const appName = "areatext"

// GetAppDir returns the directory holding settings, logs and lock files.
// It honours XDG_CONFIG_HOME through os.UserConfigDir.
func GetAppDir() string {
	base, err := os.UserConfigDir()
	if err != nil || base == "" {
		home, herr := os.UserHomeDir()
		if herr != nil {
			home = "."
		}
		base = filepath.Join(home, ".config")
	}
	dir := filepath.Join(base, appName)
	if abs, err := filepath.Abs(dir); err == nil {
		return abs
	}
	return dir
}

// GetLogsDir returns the directory for debug logs
func GetLogsDir() string {
	return filepath.Join(GetAppDir(), "logs")
}

// GetSettingsPath returns the path of the YAML settings file
func GetSettingsPath() string {
	return filepath.Join(GetAppDir(), "settings.yaml")
}

// EnsureDirs creates the app and logs directories
func EnsureDirs() error {
	if err := os.MkdirAll(GetAppDir(), 0755); err != nil {
		return err
	}
	return os.MkdirAll(GetLogsDir(), 0755)
}
