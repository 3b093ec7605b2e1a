// Package config defines hoopmetrics configuration and its layered loader.
package config

import (
	"os"
	"path/filepath"
)

// Config contains process configuration.
type Config struct {
	// DBPath is the SQLite game store.
	DBPath string `koanf:"db_path"`

	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFile, when set, receives a copy of every log line.
	LogFile string `koanf:"log_file"`

	// DefaultSort is the column player tables sort by when --sort is not given.
	DefaultSort string `koanf:"default_sort"`

	// TopPlayers caps the rows printed by the players command; 0 prints all.
	TopPlayers int `koanf:"top_players"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		DBPath:      filepath.Join(userHome(), ".hoopmetrics", "games.db"),
		LogLevel:    "warn",
		DefaultSort: "points",
		TopPlayers:  0,
	}
}

func userHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
