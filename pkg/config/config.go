// Package config provides configuration management for the seedphrase CLI.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/viper"

	"github.com/Davincible/seedphrase/pkg/crypto/mnemonic"
)

// EnvPrefix is prepended to environment overrides, e.g. SEEDPHRASE_UI_USE_COLOR.
const EnvPrefix = "SEEDPHRASE"

// LogLevels lists the accepted log levels.
var LogLevels = []string{"debug", "info", "warn", "error"}

// Config represents the main configuration structure
type Config struct {
	Defaults DefaultSettings `json:"defaults" mapstructure:"defaults"`
	Security SecurityConfig  `json:"security" mapstructure:"security"`
	UI       UIConfig        `json:"ui" mapstructure:"ui"`
}

// DefaultSettings contains default values for generation
type DefaultSettings struct {
	WordCount int  `json:"word_count" mapstructure:"word_count"` // Default: 24
	ShowSteps bool `json:"show_steps" mapstructure:"show_steps"` // Print derivation stages
}

// SecurityConfig contains security-related settings
type SecurityConfig struct {
	WipeMemory bool `json:"wipe_memory" mapstructure:"wipe_memory"` // Zero secrets after use
}

// UIConfig contains user interface settings
type UIConfig struct {
	UseColor bool   `json:"use_color" mapstructure:"use_color"` // Enable colored output
	LogLevel string `json:"log_level" mapstructure:"log_level"` // debug, info, warn, error
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Defaults: DefaultSettings{
			WordCount: 24,
			ShowSteps: false,
		},
		Security: SecurityConfig{
			WipeMemory: true,
		},
		UI: UIConfig{
			UseColor: true,
			LogLevel: "warn",
		},
	}
}

// Load reads the configuration from path, or from the default location when
// path is empty. A missing file is not an error: defaults apply, overridden by
// SEEDPHRASE_* environment variables.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	if path == "" {
		var err error
		if path, err = Path(); err != nil {
			return nil, err
		}
	}
	v.SetConfigFile(path)
	v.SetConfigType("json")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("defaults.word_count", cfg.Defaults.WordCount)
	v.SetDefault("defaults.show_steps", cfg.Defaults.ShowSteps)
	v.SetDefault("security.wipe_memory", cfg.Security.WipeMemory)
	v.SetDefault("ui.use_color", cfg.UI.UseColor)
	v.SetDefault("ui.log_level", cfg.UI.LogLevel)
}

// Validate checks the configuration values
func (c *Config) Validate() error {
	if !mnemonic.ValidateWordCount(c.Defaults.WordCount) {
		return fmt.Errorf("defaults.word_count must be 12, 15, 18, 21, or 24 (got %d)", c.Defaults.WordCount)
	}

	if !ValidLogLevel(c.UI.LogLevel) {
		return fmt.Errorf("ui.log_level must be one of %s (got %q)", strings.Join(LogLevels, ", "), c.UI.LogLevel)
	}
	return nil
}

// ValidLogLevel reports whether level is one of LogLevels.
func ValidLogLevel(level string) bool {
	return slices.Contains(LogLevels, level)
}

// Save writes cfg to path as indented JSON
func Save(path string, cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Ensure config directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Path returns the configuration file path
func Path() (string, error) {
	// Check for custom config path
	if customPath := os.Getenv(EnvPrefix + "_CONFIG"); customPath != "" {
		return customPath, nil
	}

	// Use XDG_CONFIG_HOME if set
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "seedphrase", "config.json"), nil
	}

	// Default to ~/.config/seedphrase/config.json
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(homeDir, ".config", "seedphrase", "config.json"), nil
}
