// Package config resolves runtime settings and builds the process logger.
// Precedence, lowest to highest: built-in defaults, ptm.toml, environment
// variables (a .env file is folded into the environment first).
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config holds every runtime setting of the ptm binary.
type Config struct {
	// DBPath is the SQLite database file.
	DBPath string `toml:"db_path"`
	// Addr is the HTTP listen address for `ptm serve`.
	Addr string `toml:"addr"`
	// LogFile enables rotating file logging when set; empty logs to stderr.
	LogFile string `toml:"log_file"`
	// LogLevel is a logrus level name (debug, info, warn, error).
	LogLevel string `toml:"log_level"`
}

func defaults() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("finding home directory: %w", err)
	}
	return Config{
		DBPath:   filepath.Join(home, ".ptm", "ptm.db"),
		Addr:     ":8080",
		LogLevel: "info",
	}, nil
}

// Load resolves the effective configuration. The TOML file path comes from
// PTM_CONFIG or falls back to ./ptm.toml; a missing file is not an error.
func Load() (Config, error) {
	// Fold a local .env into the environment before reading it. Absence is
	// the normal case outside development.
	_ = godotenv.Load()

	cfg, err := defaults()
	if err != nil {
		return Config{}, err
	}

	tomlPath := os.Getenv("PTM_CONFIG")
	if tomlPath == "" {
		tomlPath = "ptm.toml"
	}
	if _, statErr := os.Stat(tomlPath); statErr == nil {
		if _, err := toml.DecodeFile(tomlPath, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing %s: %w", tomlPath, err)
		}
	}

	if v := os.Getenv("PTM_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("PTM_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("PTM_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv("PTM_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	return cfg, nil
}
