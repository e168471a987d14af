// Package config loads the binstream CLI configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds defaults for the binstream CLI tool.
type Config struct {
	PageSize  uint64  `yaml:"page_size"`
	Alignment uint64  `yaml:"alignment"`
	Metrics   Metrics `yaml:"metrics"`
}

// Metrics contains the metrics endpoint configuration used by bench.
type Metrics struct {
	Bind string `yaml:"bind"`
}

// DefaultConfig returns a default configuration.
func DefaultConfig() *Config {
	return &Config{
		PageSize:  4096,
		Alignment: 8,
		Metrics: Metrics{
			Bind: "127.0.0.1:9311",
		},
	}
}

// LoadConfig loads configuration from the specified path.
func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	// Validate path to prevent directory traversal
	cleanPath := filepath.Clean(configPath)
	if strings.Contains(cleanPath, "..") {
		return nil, fmt.Errorf("invalid config path: %s", configPath)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.PageSize == 0 {
		return fmt.Errorf("page_size must be greater than zero")
	}
	if c.Alignment == 0 {
		return fmt.Errorf("alignment must be greater than zero")
	}
	if c.PageSize%c.Alignment != 0 {
		return fmt.Errorf("page_size %d must be a multiple of alignment %d", c.PageSize, c.Alignment)
	}
	return nil
}
