// Package config manages the user configuration stored alongside the database
// in ~/.caexinspect.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config holds the user-level defaults applied by the CLI.
type Config struct {
	Version           string `json:"version"`
	DefaultInspector  string `json:"default_inspector,omitempty"`
	DefaultSupervisor string `json:"default_supervisor,omitempty"`
	ReportDir         string `json:"report_dir,omitempty"`
}

// DefaultConfigDir returns the directory holding config.json.
func DefaultConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".caexinspect"), nil
}

// LoadConfig reads config.json from the specified directory. A missing file is
// not an error: it returns an empty config the caller can fill in.
func LoadConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, "config.json")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{Version: "1.0"}, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// SaveConfig writes config.json to the specified directory.
func SaveConfig(dir string, cfg *Config) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	if cfg.Version == "" {
		cfg.Version = "1.0"
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// ReportOutputDir returns the directory reports are written to when the user
// gives a bare file name. Falls back to ~/.caexinspect/reports.
func (c *Config) ReportOutputDir() (string, error) {
	if c.ReportDir != "" {
		return c.ReportDir, nil
	}
	dir, err := DefaultConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "reports"), nil
}
