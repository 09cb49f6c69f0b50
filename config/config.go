// Package config provides configuration parsing for sysfetch.
package config

import (
	"fmt"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultIPProbeTarget is a documentation-range address; it is only used to
// select a route and is never contacted.
const DefaultIPProbeTarget = "192.0.2.1:80"

// Config represents the sysfetch configuration.
type Config struct {
	// Logging controls where diagnostics go.
	Logging LoggingConfig `yaml:"logging"`

	// Collector holds snapshot probing settings.
	Collector CollectorConfig `yaml:"collector"`
}

// LoggingConfig holds log sink settings.
type LoggingConfig struct {
	// File receives logs while the dashboard owns the terminal. Empty
	// discards them.
	File string `yaml:"file"`

	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`
}

// CollectorConfig holds settings for the snapshot collector.
type CollectorConfig struct {
	// GPUProbe enables the external GPU query command.
	GPUProbe bool `yaml:"gpu_probe"`

	// ProbeTimeout bounds each external probe (e.g. "2s"). Empty means
	// no bound.
	ProbeTimeout string `yaml:"probe_timeout"`

	// IPProbeTarget is the host:port used to pick the outbound interface.
	IPProbeTarget string `yaml:"ip_probe_target"`
}

// DefaultPath returns ~/.config/sysfetch/config.yaml.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "sysfetch", "config.yaml")
}

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			File:  "",
			Level: "info",
		},
		Collector: CollectorConfig{
			GPUProbe:      true,
			ProbeTimeout:  "",
			IPProbeTarget: DefaultIPProbeTarget,
		},
	}
}

// LoadConfig loads configuration from a YAML file, merging with defaults.
// A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return config, nil
}

var levels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// Validate checks the configuration for required fields and logical consistency.
func (c *Config) Validate() error {
	if _, ok := levels[c.Logging.Level]; !ok {
		return fmt.Errorf("logging.level must be 'debug', 'info', 'warn', or 'error', got %q", c.Logging.Level)
	}

	if _, err := c.ProbeTimeoutDuration(); err != nil {
		return err
	}

	if c.Collector.IPProbeTarget == "" {
		return fmt.Errorf("collector.ip_probe_target is required")
	}
	host, port, err := net.SplitHostPort(c.Collector.IPProbeTarget)
	if err != nil {
		return fmt.Errorf("collector.ip_probe_target must be host:port: %w", err)
	}
	if host == "" || port == "" {
		return fmt.Errorf("collector.ip_probe_target must be host:port, got %q", c.Collector.IPProbeTarget)
	}

	return nil
}

// ProbeTimeoutDuration parses collector.probe_timeout. Empty yields zero,
// meaning no timeout.
func (c *Config) ProbeTimeoutDuration() (time.Duration, error) {
	if c.Collector.ProbeTimeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Collector.ProbeTimeout)
	if err != nil {
		return 0, fmt.Errorf("collector.probe_timeout: %w", err)
	}
	if d < 0 {
		return 0, fmt.Errorf("collector.probe_timeout must be non-negative, got %s", d)
	}
	return d, nil
}

// LogLevel returns the slog level for logging.level, defaulting to info.
func (c *Config) LogLevel() slog.Level {
	if l, ok := levels[c.Logging.Level]; ok {
		return l
	}
	return slog.LevelInfo
}

// SaveConfig saves configuration to a YAML file.
func SaveConfig(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
