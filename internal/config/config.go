// Package config handles configuration loading and defaults.
package config

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Default values.
const (
	DefaultDataPath = "./data.json"
	DefaultLogLevel = "info"
)

// Config holds the full configuration for tudu.
type Config struct {
	// DataPath is the JSON file holding the todo list.
	DataPath string `toml:"data_path"`

	// LogFile receives diagnostics; empty disables logging entirely
	// (the interactive screen owns the terminal).
	LogFile string `toml:"log_file"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level"`
}

// Load loads configuration from multiple sources in priority order:
// 1. Defaults
// 2. Config file (TOML)
// 3. Environment variables
// 4. CLI flags
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	cfg := &Config{}

	setDefaults(cfg)

	configFile := findConfigFile()
	if configFile != "" {
		if err := loadConfigFile(cfg, configFile); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", configFile, err)
		}
	}

	loadFromEnv(cfg)

	if err := parseFlags(cfg, fs, args); err != nil {
		return nil, fmt.Errorf("parsing flags: %w", err)
	}

	if err := finalizeConfig(cfg); err != nil {
		return nil, fmt.Errorf("finalizing config: %w", err)
	}

	return cfg, nil
}

func setDefaults(cfg *Config) {
	cfg.DataPath = DefaultDataPath
	cfg.LogFile = ""
	cfg.LogLevel = DefaultLogLevel
}

// findConfigFile looks for a config file in the current directory,
// then under the user's config directory.
func findConfigFile() string {
	names := []string{"tudu.toml"}
	if home, err := os.UserHomeDir(); err == nil {
		names = append(names, filepath.Join(home, ".config", "tudu", "tudu.toml"))
	}
	for _, name := range names {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// loadConfigFile loads TOML config from the given file.
func loadConfigFile(cfg *Config, path string) error {
	_, err := toml.DecodeFile(path, cfg)
	return err
}

// loadFromEnv overrides config from environment variables.
func loadFromEnv(cfg *Config) {
	if v := os.Getenv("TUDU_DATA_PATH"); v != "" {
		cfg.DataPath = v
	}
	if v := os.Getenv("TUDU_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv("TUDU_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}

// parseFlags defines and parses CLI flags.
func parseFlags(cfg *Config, fs *flag.FlagSet, args []string) error {
	if fs == nil {
		fs = flag.NewFlagSet("tudu", flag.ContinueOnError)
	}

	fs.StringVar(&cfg.DataPath, "data-path", cfg.DataPath, "Path to the todo JSON file")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "Write diagnostics to this file")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug|info|warn|error)")

	return fs.Parse(args)
}

// finalizeConfig expands paths and validates values.
func finalizeConfig(cfg *Config) error {
	cfg.DataPath = expandPath(cfg.DataPath)
	cfg.LogFile = expandPath(cfg.LogFile)

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	switch cfg.LogLevel {
	case "debug", "info", "warn", "warning", "error", "fatal":
	default:
		return fmt.Errorf("invalid log_level %q", cfg.LogLevel)
	}

	return nil
}

// expandPath expands a leading ~ to the user's home directory.
func expandPath(p string) string {
	if strings.HasPrefix(p, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, p[2:])
		}
	}
	return p
}
