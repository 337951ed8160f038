// Package config loads and validates the cleaner's YAML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/ham-zax/AppData-Cleaner/pkg/utils"
)

// Config is the application configuration.
type Config struct {
	Roots     []RootConfig `yaml:"roots,omitempty"`
	MinSize   string       `yaml:"min_size"`
	Whitelist []string     `yaml:"whitelist,omitempty"`
	Auto      bool         `yaml:"auto"`
	Workers   int          `yaml:"workers"`
	Verbose   bool         `yaml:"verbose"`
}

// RootConfig is one caller-supplied scan root. Label defaults to the
// directory name when empty.
type RootConfig struct {
	Path  string `yaml:"path"`
	Label string `yaml:"label,omitempty"`
}

// Load loads configuration from a file, falling back to defaults when the
// file does not exist.
func Load(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return GetDefault(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Save writes the configuration to a file, creating parent directories.
func Save(cfg *Config, configPath string) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate checks the configuration for values the pipeline cannot use.
func (c *Config) Validate() error {
	if c.MinSize != "" {
		if _, err := utils.ParseSize(c.MinSize); err != nil {
			return fmt.Errorf("invalid min_size %q: %w", c.MinSize, err)
		}
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must be >= 0")
	}
	for _, r := range c.Roots {
		if !filepath.IsAbs(r.Path) {
			return fmt.Errorf("scan root must be absolute: %s", r.Path)
		}
	}
	return nil
}

// MinSizeBytes resolves the configured threshold to bytes.
func (c *Config) MinSizeBytes() (int64, error) {
	if c.MinSize == "" {
		return utils.ParseSize(DefaultMinSize)
	}
	return utils.ParseSize(c.MinSize)
}

// GetConfigPath returns the default config path.
func GetConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "appdata-cleaner", "config.yaml"), nil
}

// GetLockPath returns the path of the lock file guarding the deletion phase.
func GetLockPath() (string, error) {
	cfgPath, err := GetConfigPath()
	if err != nil {
		return "", err
	}
	return filepath.Join(filepath.Dir(cfgPath), "cleaner.lock"), nil
}
