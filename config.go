package main

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the user-tunable settings read from ~/.stet.toml.
type Config struct {
	TabWidth     int    `toml:"tab_width"`     // Spaces inserted by Tab
	RecentFiles  string `toml:"recent_files"`  // Path of the recent-files registry
	BackupSuffix string `toml:"backup_suffix"` // Appended to the pre-save backup name
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return Config{
		TabWidth:     4,
		RecentFiles:  filepath.Join(home, ".stet_recent"),
		BackupSuffix: "~",
	}
}

// DefaultConfigPath returns the path checked for a config file.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".stet.toml"
	}
	return filepath.Join(home, ".stet.toml")
}

// LoadConfig reads a TOML config file over the defaults. A missing file is
// not an error; a malformed one returns the defaults alongside the parse
// error so the caller can warn and continue.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), err
	}
	if cfg.TabWidth < 1 {
		cfg.TabWidth = 1
	}
	if cfg.BackupSuffix == "" {
		cfg.BackupSuffix = "~"
	}
	return cfg, nil
}
