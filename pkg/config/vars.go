package config

import (
	"path/filepath"
)

var (
	// AppName is used in generating file system paths.
	AppName = "lpodata"
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/lpodata by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/lpodata/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/lpodata/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// TaxaFilePath returns the full path to the taxa.yaml file that keeps the
// known labels of every taxonomic rank.
// Returns ~/.config/lpodata/taxa.yaml by default.
func TaxaFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "taxa.yaml")
}
