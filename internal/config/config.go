package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"golang.org/x/text/encoding/ianaindex"
)

// ConfigFileName is the name of the configuration file looked up in the
// current and home directories
const ConfigFileName = ".commitbuddy.yaml"

const (
	// DefaultStyle is the style used when none is configured
	DefaultStyle = "conventional_jira"
	// DefaultEncoding is the charset used to read style resources
	DefaultEncoding = "utf-8"
)

// Config represents the application configuration
type Config struct {
	// Style selects the commit style used for the interview
	Style string `yaml:"style" mapstructure:"style"`

	// BreakingChangeExclamationInTitle appends "!" to the title of
	// breaking-change commits
	BreakingChangeExclamationInTitle bool `yaml:"breaking_change_exclamation_in_title" mapstructure:"breaking_change_exclamation_in_title"`

	// Encoding is the charset of external style resources such as an
	// info_path file
	Encoding string `yaml:"encoding" mapstructure:"encoding"`

	// InfoPath overrides the bundled style description text
	InfoPath string `yaml:"info_path" mapstructure:"info_path"`
}

// DefaultConfig returns the configuration used when no file exists
func DefaultConfig() *Config {
	return &Config{
		Style:    DefaultStyle,
		Encoding: DefaultEncoding,
	}
}

// Validate validates the entire configuration
func (c *Config) Validate() error {
	if c.Encoding != "" {
		if _, err := ianaindex.IANA.Encoding(c.Encoding); err != nil {
			return fmt.Errorf("unsupported encoding: %s", c.Encoding)
		}
	}
	return nil
}

// GetStyle returns the style name to use
// Priority: parameter > env variable (COMMITBUDDY_STYLE) > config file > default
func (c *Config) GetStyle(styleParam string) string {
	// Parameter has highest priority
	if styleParam != "" {
		return styleParam
	}

	// Check env variable
	if envStyle := os.Getenv("COMMITBUDDY_STYLE"); envStyle != "" {
		return envStyle
	}

	// Use config file value
	if c.Style != "" {
		return c.Style
	}

	return DefaultStyle
}

// GetEncoding returns the charset used to read style resources
func (c *Config) GetEncoding() string {
	if c.Encoding != "" {
		return c.Encoding
	}
	return DefaultEncoding
}

// GetInfoPath returns the override path for the style description text,
// with a leading ~ expanded to the home directory. Empty means the bundled
// text should be used.
func (c *Config) GetInfoPath() (string, error) {
	if c.InfoPath == "" {
		return "", nil
	}

	filePath := c.InfoPath
	if strings.HasPrefix(filePath, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		filePath = filepath.Join(homeDir, filePath[2:])
	}
	return filePath, nil
}

// LoadFromFile loads configuration from a file
func LoadFromFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}

// Load loads configuration with the following priority:
// 1. Custom path if provided
// 2. Current directory .commitbuddy.yaml
// 3. Home directory ~/.commitbuddy.yaml
// Every option has a default, so a missing file yields the default
// configuration rather than an error.
func Load(customPath string) (*Config, error) {
	// If custom path is provided, use it exclusively
	if customPath != "" {
		return LoadFromFile(customPath)
	}

	// Try current directory first
	if cfg, err := LoadFromFile(ConfigFileName); err == nil {
		return cfg, nil
	}

	// Try home directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}

	homeCfgPath := filepath.Join(homeDir, ConfigFileName)
	if cfg, err := LoadFromFile(homeCfgPath); err == nil {
		return cfg, nil
	}

	return DefaultConfig(), nil
}
