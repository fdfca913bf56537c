package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/iancoleman/strcase"
	"gopkg.in/yaml.v3"

	"github.com/mcncl/jsonfmt/internal/errors"
)

// Color output modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Key case styles applied to object keys before formatting
const (
	KeyCaseNone   = "none"
	KeyCaseCamel  = "camel"
	KeyCasePascal = "pascal"
	KeyCaseSnake  = "snake"
	KeyCaseKebab  = "kebab"
)

// MaxIndent caps the configurable indent width.
const MaxIndent = 16

// Config represents the complete configuration for jsonfmt
type Config struct {
	// Indent is the number of spaces written per nesting level.
	Indent int `yaml:"indent"`
	// Color controls terminal coloring: auto, always or never.
	Color string `yaml:"color"`
	// KeyCase rewrites object keys to a naming style before output.
	KeyCase string `yaml:"key_case"`
}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		Indent:  2,
		Color:   ColorAuto,
		KeyCase: KeyCaseNone,
	}
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(path string) (*Config, error) {
	// Read file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewConfigError(fmt.Sprintf("failed to read config file '%s'", path), err)
	}

	// Start with defaults
	cfg := NewConfig()

	// Parse YAML
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.NewConfigError(fmt.Sprintf("failed to parse config file '%s'", path), err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// FindConfigFile searches for a config file in current directory and parents
func FindConfigFile() string {
	configNames := []string{".jsonfmt.yml", ".jsonfmt.yaml", "jsonfmt.yml", "jsonfmt.yaml"}

	// Start from current directory
	currentDir, err := os.Getwd()
	if err != nil {
		return ""
	}

	// Search up the directory tree
	for {
		for _, name := range configNames {
			configPath := filepath.Join(currentDir, name)
			if _, err := os.Stat(configPath); err == nil {
				return configPath
			}
		}

		// Move up one directory
		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root directory
			break
		}
		currentDir = parentDir
	}

	return ""
}

// Validate checks that every field holds a supported value
func (c *Config) Validate() error {
	if c.Indent < 0 || c.Indent > MaxIndent {
		return errors.NewConfigError(
			fmt.Sprintf("indent must be between 0 and %d, got %d", MaxIndent, c.Indent),
			nil,
		)
	}

	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return errors.NewConfigError(
			fmt.Sprintf("color must be one of auto, always, never, got '%s'", c.Color),
			nil,
		)
	}

	switch c.KeyCase {
	case KeyCaseNone, KeyCaseCamel, KeyCasePascal, KeyCaseSnake, KeyCaseKebab:
	default:
		return errors.NewConfigError(
			fmt.Sprintf("key_case must be one of none, camel, pascal, snake, kebab, got '%s'", c.KeyCase),
			nil,
		)
	}

	return nil
}

// IndentUnit returns the string written once per nesting level
func (c *Config) IndentUnit() string {
	return strings.Repeat(" ", c.Indent)
}

// TransformsKeys reports whether a key case rewrite is configured
func (c *Config) TransformsKeys() bool {
	return c.KeyCase != "" && c.KeyCase != KeyCaseNone
}

// TransformKey returns the key rewritten to the configured style
func (c *Config) TransformKey(key string) string {
	switch c.KeyCase {
	case KeyCaseCamel:
		return strcase.ToLowerCamel(key)
	case KeyCasePascal:
		return strcase.ToCamel(key)
	case KeyCaseSnake:
		return strcase.ToSnake(key)
	case KeyCaseKebab:
		return strcase.ToKebab(key)
	default:
		return key
	}
}

// MergeConfigs merges overrides into a base config
// Zero values in override leave the base value in place
func MergeConfigs(base, override *Config) *Config {
	merged := *base // Start with a copy of base

	if override.Indent != 0 {
		merged.Indent = override.Indent
	}
	if override.Color != "" {
		merged.Color = override.Color
	}
	if override.KeyCase != "" {
		merged.KeyCase = override.KeyCase
	}

	return &merged
}

// LoadConfigWithCLI loads config with CLI argument precedence
// CLI values override the file only when they differ from the defaults
func LoadConfigWithCLI(configPath string, cliIndent int, cliColor, cliKeyCase string) (*Config, error) {
	// Start with defaults
	cfg := NewConfig()

	// Load config file if provided
	if configPath != "" {
		fileConfig, err := LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = fileConfig
	}

	// Apply CLI overrides only if they're not the default values
	// This allows config file values to be used when CLI args are defaults
	if cliIndent != 2 {
		cfg.Indent = cliIndent
	}
	if cliColor != "" && cliColor != ColorAuto {
		cfg.Color = cliColor
	}
	if cliKeyCase != "" && cliKeyCase != KeyCaseNone {
		cfg.KeyCase = cliKeyCase
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
