// Package config provides configuration loading for prj.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/fyrsmithlabs/prj/internal/logging"
)

const (
	maxConfigFileSize = 1024 * 1024 // 1MB

	// BackendFile stores records as one file per record in a directory.
	BackendFile = "file"
	// BackendMemory keeps records in memory for the process lifetime.
	BackendMemory = "memory"
)

// Config is the root configuration.
type Config struct {
	Store StoreConfig     `koanf:"store"`
	Log   *logging.Config `koanf:"log"`
}

// StoreConfig selects and configures the storage backend.
type StoreConfig struct {
	// Backend is "file" or "memory".
	Backend string `koanf:"backend"`
	// Dir is the record directory for the file backend.
	Dir string `koanf:"dir"`
}

// Load reads configuration from a YAML file, then overrides with PRJ_*
// environment variables.
//
// Precedence (highest to lowest):
//  1. Environment variables (PRJ_STORE_BACKEND, PRJ_LOG_LEVEL, ...)
//  2. YAML config file (~/.config/prj/config.yaml by default)
//  3. Defaults
//
// A missing config file is not an error; defaults apply.
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	if configPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		configPath = filepath.Join(home, ".config", "prj", "config.yaml")
	}

	if _, err := os.Stat(configPath); err == nil {
		f, err := os.Open(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open config file: %w", err)
		}
		defer f.Close()

		info, err := f.Stat()
		if err != nil {
			return nil, fmt.Errorf("failed to stat config file: %w", err)
		}
		if info.Size() > maxConfigFileSize {
			return nil, fmt.Errorf("config file too large: %d bytes (max %d)", info.Size(), maxConfigFileSize)
		}

		content, err := io.ReadAll(f)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Environment overrides: PRJ_STORE_BACKEND -> store.backend,
	// PRJ_LOG_LEVEL -> log.level. Split on first underscore only after the
	// prefix (section.field_name pattern).
	if err := k.Load(env.Provider("PRJ_", ".", func(s string) string {
		lower := strings.ToLower(strings.TrimPrefix(s, "PRJ_"))
		parts := strings.SplitN(lower, "_", 2)
		if len(parts) == 1 {
			return lower
		}
		return parts[0] + "." + parts[1]
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := applyDefaults(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// applyDefaults sets default values for missing configuration fields.
func applyDefaults(cfg *Config) error {
	if cfg.Store.Backend == "" {
		cfg.Store.Backend = BackendFile
	}
	if cfg.Store.Dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		cfg.Store.Dir = filepath.Join(home, ".config", "prj", "data")
	}
	if cfg.Log == nil {
		cfg.Log = logging.NewDefaultConfig()
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
	return nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	switch c.Store.Backend {
	case BackendFile, BackendMemory:
	default:
		return fmt.Errorf("unknown store backend %q (want %q or %q)", c.Store.Backend, BackendFile, BackendMemory)
	}
	if c.Store.Backend == BackendFile && c.Store.Dir == "" {
		return fmt.Errorf("store dir is required for the file backend")
	}
	if err := c.Log.Validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	return nil
}
