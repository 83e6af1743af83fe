// Package config loads shelfctl configuration: defaults, then the yaml
// config file, then environment overrides, in that order.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all shelfctl settings.
type Config struct {
	API     APIConfig     `yaml:"api"`
	UI      UIConfig      `yaml:"ui"`
	Logging LoggingConfig `yaml:"logging"`
}

// APIConfig configures the catalog API connection.
type APIConfig struct {
	BaseURL string `yaml:"base_url"`
	Timeout string `yaml:"timeout"`
}

// UIConfig configures the terminal UI.
type UIConfig struct {
	Theme string `yaml:"theme"` // dark or light
}

// LoggingConfig configures file logging. Logs go to files, never to the
// terminal, so the UI stays intact.
type LoggingConfig struct {
	Enabled bool   `yaml:"enabled"`
	Level   string `yaml:"level"` // debug, info, warn, error
	Dir     string `yaml:"dir"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL: "http://localhost:5255/api",
			Timeout: "15s",
		},
		UI: UIConfig{Theme: "dark"},
		Logging: LoggingConfig{
			Enabled: false,
			Level:   "info",
			Dir:     defaultLogDir(),
		},
	}
}

// DefaultPath returns the standard config file location.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".shelfctl", "config.yaml")
}

func defaultLogDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "logs"
	}
	return filepath.Join(home, ".shelfctl", "logs")
}

// Load reads the config at path (DefaultPath when empty). A missing file is
// not an error; the defaults apply. A .env file in the working directory is
// loaded first so SHELFCTL_* variables can live there.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	if path == "" {
		path = DefaultPath()
	}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// defaults
		case err != nil:
			return nil, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("SHELFCTL_API_URL"); v != "" {
		c.API.BaseURL = v
	}
	if v := os.Getenv("SHELFCTL_TIMEOUT"); v != "" {
		c.API.Timeout = v
	}
	if v := os.Getenv("SHELFCTL_THEME"); v != "" {
		c.UI.Theme = v
	}
	if v := os.Getenv("SHELFCTL_LOG_DIR"); v != "" {
		c.Logging.Dir = v
		c.Logging.Enabled = true
	}
}

// TimeoutDuration parses the API timeout, falling back to 15s on bad input.
func (c *APIConfig) TimeoutDuration() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil || d <= 0 {
		return 15 * time.Second
	}
	return d
}
